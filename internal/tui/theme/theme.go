package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette — ANSI 0-15
// ---------------------------------------------------------------------------

var (
	Text      = lipgloss.Color("7")
	TextMuted = lipgloss.Color("8")

	Primary   = lipgloss.Color("4") // blue
	Secondary = lipgloss.Color("6") // cyan
	Success   = lipgloss.Color("2") // green
	Warning   = lipgloss.Color("3") // yellow
	Danger    = lipgloss.Color("1") // red
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted  = lipgloss.NewStyle().Foreground(TextMuted)
	Bold   = lipgloss.NewStyle().Bold(true)
	Answer = lipgloss.NewStyle().Foreground(Secondary)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor   = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	// Question marker shown before every prompt, inquirer style
	Question = lipgloss.NewStyle().Bold(true).Foreground(Success).SetString("?")

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)
