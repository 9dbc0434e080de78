package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notecli/internal/app"
	"notecli/internal/config"
	"notecli/internal/logs"
	"notecli/internal/tui/prompt"
)

// Version is set at build time with -ldflags "-X notecli/internal/cli.Version=..."
var Version = "dev"

var ErrNotTerminal = errors.New("notecli needs an interactive terminal")

var isTerminal = term.IsTerminal

// NewRootCommand builds the notecli command. It takes no arguments: every
// answer comes from the interactive prompts.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notecli",
		Short: "Create notebooks and class notes from the terminal",
		Long: `notecli manages notebooks in the current directory.

Pick an existing notebook to add a note to one of its classes, or choose
"New Notebook" to scaffold a notebook with one folder per class. If you ask
for a note template, note-template.md must exist in the current directory;
%NOTEBOOK_NAME% in it is replaced with the notebook name.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Printf("Warning: could not create config file: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	p := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	return app.New(p, cfg, cwd, cmd.OutOrStdout()).Run()
}

// Execute runs notecli with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logs.Logger.Printf("Exiting with error: %v", err)
		if errors.Is(err, prompt.ErrAborted) {
			return 130
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
