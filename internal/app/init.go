package app

import (
	"errors"
	"fmt"

	"notecli/internal/notebook"
	"notecli/internal/tui/prompt"
	"notecli/internal/tui/theme"
)

var (
	errNameRejected    = errors.New("Invalid Notebook Name!")
	errClassesRejected = errors.New("Invalid Class Name(s)!")
)

func (a *App) initNotebook() error {
	name, err := a.prompter.Input(prompt.Question{
		Message:   "What would you like to name the notebook?",
		Default:   a.cfg.NotebookName,
		Transform: notebook.NormalizeName,
		Validate: func(s string) error {
			if notebook.ValidateName(s) != nil {
				return errNameRejected
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	classes, err := a.prompter.Input(prompt.Question{
		Message:   "Enter the classes that you have, separated by commas (,)?",
		Default:   a.cfg.Classes,
		Transform: notebook.NormalizeClasses,
		Validate: func(s string) error {
			if notebook.ValidateClasses(s) != nil {
				return errClassesRejected
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	ext, err := a.prompter.Input(prompt.Question{
		Message: "What extension for your note files?",
		Default: a.cfg.Extension,
	})
	if err != nil {
		return err
	}

	template, err := a.prompter.Confirm("Would you like to make a template for your notes?", a.cfg.Template)
	if err != nil {
		return err
	}

	nb, err := notebook.Create(a.cwd, notebook.CreateOptions{
		Name:          name,
		Classes:       classes,
		FileExtension: ext,
		Template:      template,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s notebook %s with %d classes in %s\n",
		theme.Ok.Render("Created"), nb.NotebookName, len(nb.Classes), a.relPath(nb.Path))
	return nil
}
