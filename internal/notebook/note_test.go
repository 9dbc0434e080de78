package notebook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotebook(t *testing.T, classes ...string) *Notebook {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Notebook")
	for _, class := range classes {
		require.NoError(t, os.MkdirAll(filepath.Join(root, class), 0755))
	}
	require.NoError(t, os.MkdirAll(root, 0755))
	return &Notebook{Name: "Notebook", Path: root, Info: Info{NotebookName: "Notebook", FileExtension: "md"}}
}

func TestDefaultNoteName(t *testing.T) {
	tests := []struct {
		date     time.Time
		ext      string
		expected string
	}{
		{time.Date(2024, time.June, 5, 9, 0, 0, 0, time.Local), "md", "Note_5Jun24.md"},
		{time.Date(2023, time.December, 31, 23, 59, 0, 0, time.Local), "txt", "Note_31Dec23.txt"},
		{time.Date(2005, time.January, 1, 0, 0, 0, 0, time.Local), "", "Note_1Jan05.md"},
	}

	for _, tt := range tests {
		if got := DefaultNoteName(tt.date, tt.ext); got != tt.expected {
			t.Errorf("DefaultNoteName(%v, %q): expected %q, got %q", tt.date, tt.ext, tt.expected, got)
		}
	}
}

func TestUniqueNoteName(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "Note.md", UniqueNoteName(dir, "Note.md"))

	writeFile(t, filepath.Join(dir, "Note.md"), "")
	assert.Equal(t, "1Note.md", UniqueNoteName(dir, "Note.md"))

	writeFile(t, filepath.Join(dir, "1Note.md"), "")
	writeFile(t, filepath.Join(dir, "3Note.md"), "")
	// First fit: 2 is free even though 3 is taken
	assert.Equal(t, "2Note.md", UniqueNoteName(dir, "Note.md"))
}

func TestCreateNote_Collisions(t *testing.T) {
	nb := newTestNotebook(t, "Math")
	writeFile(t, filepath.Join(nb.Path, "Math", "Note.md"), "original")

	first, err := nb.CreateNote("Math", "Note.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nb.Path, "Math", "1Note.md"), first)

	second, err := nb.CreateNote("Math", "Note.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nb.Path, "Math", "2Note.md"), second)

	original, err := os.ReadFile(filepath.Join(nb.Path, "Math", "Note.md"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(original))
}

func TestCreateNote_EmptyWithoutTemplate(t *testing.T) {
	nb := newTestNotebook(t, "CS")

	path, err := nb.CreateNote("CS", "lecture1.md")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestCreateNote_CopiesTemplateVerbatim(t *testing.T) {
	nb := newTestNotebook(t, "CS")
	writeFile(t, filepath.Join(nb.Path, TemplateFile), "# Notebook\n\n%NOTEBOOK_NAME% stays\n")

	path, err := nb.CreateNote("CS", "lecture1.md")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Notebook\n\n%NOTEBOOK_NAME% stays\n", string(content))
}

func TestCreateNote_MissingClassDir(t *testing.T) {
	nb := newTestNotebook(t)

	_, err := nb.CreateNote("Ghost", "Note.md")
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestClassChoices(t *testing.T) {
	nb := newTestNotebook(t, "Math", "CS", ".git")
	writeFile(t, filepath.Join(nb.Path, InfoFile), "{}")

	classes, err := nb.ClassChoices(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS", "Math"}, classes)
}

func TestClassChoices_FromInsideNotebook(t *testing.T) {
	nb := newTestNotebook(t, "Math")
	// cwd named like the notebook lists its own subdirectories
	inside := filepath.Join(t.TempDir(), "Notebook")
	require.NoError(t, os.MkdirAll(filepath.Join(inside, "Art"), 0755))

	classes, err := nb.ClassChoices(inside)
	require.NoError(t, err)
	assert.Equal(t, []string{"Art"}, classes)
}

func TestClassChoices_Empty(t *testing.T) {
	nb := newTestNotebook(t)

	_, err := nb.ClassChoices(t.TempDir())
	assert.ErrorIs(t, err, ErrNoClasses)
}
