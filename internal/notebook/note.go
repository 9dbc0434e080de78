package notebook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"notecli/internal/logs"
)

var ErrNoClasses = errors.New("notebook has no class directories")

// DefaultNoteName is "Note_<day><Mon><yy>.<ext>", e.g. "Note_5Jun24.md"
func DefaultNoteName(now time.Time, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return fmt.Sprintf("Note_%d%s%02d.%s", now.Day(), now.Format("Jan"), now.Year()%100, ext)
}

// ClassChoices lists the class directories a note can go in: the notebook
// root's subdirectories, or cwd's when cwd is the notebook itself.
func (nb *Notebook) ClassChoices(cwd string) ([]string, error) {
	dir := nb.Path
	if filepath.Base(cwd) == nb.Name {
		dir = cwd
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	var classes []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		classes = append(classes, entry.Name())
	}

	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoClasses, dir)
	}
	return classes, nil
}

// UniqueNoteName finds a free filename in dir.
// If name is taken, tries 1name, 2name, etc.
func UniqueNoteName(dir, name string) string {
	candidate := name
	for prefix := 1; fileExists(filepath.Join(dir, candidate)); prefix++ {
		candidate = strconv.Itoa(prefix) + name
	}
	return candidate
}

// CreateNote writes a new note into the class directory and returns its path.
// The notebook's note-template.md is copied verbatim when present, otherwise
// the note starts empty. Existing files are never overwritten.
func (nb *Notebook) CreateNote(className, noteName string) (string, error) {
	classDir := filepath.Join(nb.Path, className)

	content, err := os.ReadFile(filepath.Join(nb.Path, TemplateFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read note template: %w", err)
	}

	path := filepath.Join(classDir, UniqueNoteName(classDir, noteName))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create note: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return "", fmt.Errorf("write note: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	logs.Logger.Printf("Created note: %s", path)
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
