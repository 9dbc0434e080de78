// Package prompt renders the interactive questions notecli asks. Each
// question runs as its own short-lived bubbletea program and leaves a one
// line summary of the answer behind in the terminal.
package prompt

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrAborted is returned when the user cancels a prompt with esc or ctrl+c.
	ErrAborted   = errors.New("prompt aborted")
	ErrNoChoices = errors.New("no choices available")
)

// Choice is one option of a single-choice prompt.
type Choice struct {
	Value       string
	Description string // Shown dimmed next to the value (optional)
}

// Question describes a free-text prompt.
type Question struct {
	Message   string
	Default   string              // Used when the answer is left empty
	Validate  func(string) error  // Rejections re-prompt with the error
	Transform func(string) string // Display only, never changes the answer
}

// Terminal asks questions on a terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal creates a Terminal reading from in and drawing on out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.In), tea.WithOutput(t.Out))
	return p.Run()
}

// Select asks the user to pick one of choices and returns its Value.
func (t *Terminal) Select(message string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	final, err := t.run(NewSelectModel(message, choices))
	if err != nil {
		return "", err
	}

	m := final.(SelectModel)
	if m.Aborted() {
		return "", ErrAborted
	}
	return m.Chosen(), nil
}

// Input asks a free-text question, re-prompting until q.Validate accepts.
func (t *Terminal) Input(q Question) (string, error) {
	final, err := t.run(NewInputModel(q))
	if err != nil {
		return "", err
	}

	m := final.(*InputModel)
	if m.Aborted() {
		return "", ErrAborted
	}
	return m.Answer(), nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	final, err := t.run(NewConfirmModel(message, def))
	if err != nil {
		return false, err
	}

	m := final.(ConfirmModel)
	if m.Aborted() {
		return false, ErrAborted
	}
	return m.Answer(), nil
}
