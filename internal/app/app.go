package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"notecli/internal/config"
	"notecli/internal/logs"
	"notecli/internal/notebook"
	"notecli/internal/tui/prompt"
)

// NewNotebookChoice is listed after the discovered notebooks.
const NewNotebookChoice = "New Notebook"

// Prompter answers the questions asked while creating notebooks and notes.
type Prompter interface {
	Select(message string, choices []prompt.Choice) (string, error)
	Input(q prompt.Question) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// App routes between creating a notebook and adding a note.
type App struct {
	prompter Prompter
	cfg      *config.Config
	cwd      string
	out      io.Writer
	now      func() time.Time
}

// New creates an App working in cwd.
func New(p Prompter, cfg *config.Config, cwd string, out io.Writer) *App {
	return &App{
		prompter: p,
		cfg:      cfg,
		cwd:      cwd,
		out:      out,
		now:      time.Now,
	}
}

// Run discovers notebooks in the working directory and asks what to do.
func (a *App) Run() error {
	dir, err := notebook.Discover(a.cwd)
	if err != nil {
		return fmt.Errorf("discover notebooks: %w", err)
	}
	logs.Logger.Printf("Discovered %d notebooks in %s", len(dir), a.cwd)

	answer, err := a.prompter.Select("What notebook would you like make your new note in?", notebookChoices(dir))
	if err != nil {
		return err
	}

	if answer == NewNotebookChoice {
		return a.initNotebook()
	}

	nb, err := notebook.Load(answer, dir[answer])
	if err != nil {
		return err
	}
	return a.newNote(nb)
}

func notebookChoices(dir notebook.Directory) []prompt.Choice {
	names := dir.Names()
	choices := make([]prompt.Choice, 0, len(names)+1)
	for _, name := range names {
		description := abbreviatePath(dir[name])
		nb, err := notebook.Load(name, dir[name])
		if err == nil {
			if title := nb.IndexTitle(); title != "" && title != name {
				description = title + "  " + description
			}
		}
		choices = append(choices, prompt.Choice{Value: name, Description: description})
	}
	return append(choices, prompt.Choice{Value: NewNotebookChoice})
}

// abbreviatePath replaces home directory with ~
func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}

func (a *App) relPath(path string) string {
	if rel, err := filepath.Rel(a.cwd, path); err == nil {
		return rel
	}
	return path
}
