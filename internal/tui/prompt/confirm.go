package prompt

import (
	tea "github.com/charmbracelet/bubbletea"

	"notecli/internal/tui/theme"
)

// ConfirmModel is a yes/no question; enter takes the default.
type ConfirmModel struct {
	Message string
	Default bool

	answer  bool
	done    bool
	aborted bool
}

// NewConfirmModel creates a confirmation prompt
func NewConfirmModel(message string, def bool) ConfirmModel {
	return ConfirmModel{Message: message, Default: def}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.answer = true
	case "n", "N":
		m.answer = false
	case "enter":
		m.answer = m.Default
	case "ctrl+c", "esc":
		m.aborted = true
	default:
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}
		return answered(m.Message, answer)
	}

	hint := "(y/N)"
	if m.Default {
		hint = "(Y/n)"
	}
	return theme.Question.String() + " " + theme.Bold.Render(m.Message) + " " + theme.Muted.Render(hint) + "\n"
}

// Answer returns the chosen value.
func (m ConfirmModel) Answer() bool {
	return m.answer
}

// Aborted reports whether the prompt was cancelled.
func (m ConfirmModel) Aborted() bool {
	return m.aborted
}
