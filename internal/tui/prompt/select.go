package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"notecli/internal/tui/theme"
)

// SelectModel is a single-choice list. Typing filters the choices fuzzily.
type SelectModel struct {
	message  string
	choices  []Choice
	filtered []int // indices into choices
	cursor   int
	filter   textinput.Model
	chosen   string
	done     bool
	aborted  bool
}

// NewSelectModel creates a select prompt over choices.
func NewSelectModel(message string, choices []Choice) SelectModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Focus()

	m := SelectModel{
		message: message,
		choices: choices,
		filter:  ti,
	}
	m.applyFilter()
	return m
}

func (m SelectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.chosen = m.choices[m.filtered[m.cursor]].Value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *SelectModel) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.filtered = make([]int, len(m.choices))
		for i := range m.choices {
			m.filtered[i] = i
		}
	} else {
		values := make([]string, len(m.choices))
		for i, c := range m.choices {
			values[i] = c.Value
		}
		matches := fuzzy.Find(query, values)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m SelectModel) View() string {
	if m.done {
		return answered(m.message, m.chosen)
	}

	var s strings.Builder
	s.WriteString(theme.Question.String() + " " + theme.Bold.Render(m.message) + "\n")
	s.WriteString(m.filter.View() + "\n")

	if len(m.filtered) == 0 {
		s.WriteString(theme.Muted.Render("  no matches") + "\n")
	}

	for i, idx := range m.filtered {
		choice := m.choices[idx]
		line := "  " + choice.Value
		if i == m.cursor {
			line = theme.Cursor.Render("❯ ") + theme.Selected.Render(choice.Value)
		}
		if choice.Description != "" {
			line += "  " + theme.Muted.Render(choice.Description)
		}
		s.WriteString(line + "\n")
	}

	s.WriteString(theme.HelpHint.Render("↑/↓: navigate • enter: select • esc: cancel"))
	return s.String()
}

// Chosen returns the selected value, "" until enter is pressed.
func (m SelectModel) Chosen() string {
	return m.chosen
}

// Aborted reports whether the prompt was cancelled.
func (m SelectModel) Aborted() bool {
	return m.aborted
}

func answered(message, answer string) string {
	return theme.Question.String() + " " + theme.Bold.Render(message) + " " + theme.Answer.Render(answer) + "\n"
}
