package notebook

import (
	"path/filepath"
	"testing"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"first occurrence only", "# %NOTEBOOK_NAME%\n%NOTEBOOK_NAME%", "# Bio\n%NOTEBOOK_NAME%"},
		{"no placeholder", "# Plain\n", "# Plain\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.template, "Bio"); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIndexTitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Physics.md"), "Intro line\n\n## Sub\n\n# Quantum Physics\n")

	nb := &Notebook{Name: "Physics", Path: root, Info: Info{NotebookName: "Physics"}}
	if got := nb.IndexTitle(); got != "Quantum Physics" {
		t.Errorf("expected 'Quantum Physics', got %q", got)
	}
}

func TestIndexTitle_MissingIndex(t *testing.T) {
	nb := &Notebook{Name: "Physics", Path: t.TempDir()}
	if got := nb.IndexTitle(); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}
