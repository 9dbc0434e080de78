package app

import (
	"fmt"

	"notecli/internal/notebook"
	"notecli/internal/tui/prompt"
	"notecli/internal/tui/theme"
)

func (a *App) newNote(nb *notebook.Notebook) error {
	classes, err := nb.ClassChoices(a.cwd)
	if err != nil {
		return err
	}

	choices := make([]prompt.Choice, len(classes))
	for i, class := range classes {
		choices[i] = prompt.Choice{Value: class}
	}

	className, err := a.prompter.Select("What class would you like to make your note in?", choices)
	if err != nil {
		return err
	}

	ext := nb.Extension()
	noteName, err := a.prompter.Input(prompt.Question{
		Message:   "What would you like to call this note?",
		Default:   notebook.DefaultNoteName(a.now(), ext),
		Transform: func(s string) string { return s + "." + ext },
	})
	if err != nil {
		return err
	}

	path, err := nb.CreateNote(className, noteName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", theme.Ok.Render("Created"), a.relPath(path))
	return nil
}
