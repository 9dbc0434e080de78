package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notecli/internal/tui/theme"
)

// InputModel wraps bubbles/textinput with a default, validation and a
// display transform.
type InputModel struct {
	Input     textinput.Model
	Message   string
	Default   string
	Validator func(string) error
	Transform func(string) string
	Error     string

	answer  string
	done    bool
	aborted bool
}

// NewInputModel creates an input prompt for q.
func NewInputModel(q Question) *InputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	return &InputModel{
		Input:     ti,
		Message:   q.Message,
		Default:   q.Default,
		Validator: q.Validate,
		Transform: q.Transform,
	}
}

// Init implements tea.Model
func (m *InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			value := m.Input.Value()
			if value == "" {
				value = m.Default
			}
			// Validate before accepting
			if m.Validator != nil {
				if err := m.Validator(value); err != nil {
					m.Error = err.Error()
					return m, nil
				}
			}
			m.answer = value
			m.done = true
			return m, tea.Quit

		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	// Clear error when user types
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Error = ""
	}

	return m, cmd
}

// View implements tea.Model
func (m *InputModel) View() string {
	if m.done {
		return answered(m.Message, m.answer)
	}

	content := theme.Question.String() + " " + theme.Bold.Render(m.Message) + " "
	if m.Default != "" {
		content += theme.Muted.Render("("+m.Default+") ")
	}
	content += m.Input.View() + "\n"

	if value := m.Input.Value(); value != "" && m.Transform != nil {
		content += theme.Muted.Render("  → "+m.Transform(value)) + "\n"
	}

	if m.Error != "" {
		content += theme.Error.Render(">> "+m.Error) + "\n"
	}

	return content
}

// Answer returns the accepted value.
func (m *InputModel) Answer() string {
	return m.answer
}

// Aborted reports whether the prompt was cancelled.
func (m *InputModel) Aborted() bool {
	return m.aborted
}
