package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// InfoFile marks a directory as a notebook and records its configuration.
	InfoFile = "notes-info.json"
	// TemplateFile is the note template, both as the init-time source in the
	// working directory and as the per-notebook copy.
	TemplateFile = "note-template.md"
	// Placeholder is replaced with the notebook name when a template is created.
	Placeholder = "%NOTEBOOK_NAME%"

	DefaultExtension = "md"
)

// Info is the metadata persisted in notes-info.json
type Info struct {
	Classes       []string `json:"classes"`
	ClassDirs     []string `json:"class_dirs"`
	NotebookName  string   `json:"notebookName"`
	FileExtension string   `json:"file_extension"`
}

// Notebook is a discovered notebook: its metadata plus where it lives.
type Notebook struct {
	Info
	Name string // Key it was discovered under
	Path string // Absolute path to the notebook root
}

// Load reads the metadata of the notebook rooted at path.
func Load(name, path string) (*Notebook, error) {
	info, err := ReadInfo(path)
	if err != nil {
		return nil, err
	}
	return &Notebook{Info: *info, Name: name, Path: path}, nil
}

// ReadInfo parses <root>/notes-info.json
func ReadInfo(root string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(root, InfoFile))
	if err != nil {
		return nil, fmt.Errorf("read notebook info: %w", err)
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse %s in %s: %w", InfoFile, root, err)
	}
	return &info, nil
}

// WriteInfo writes info to <root>/notes-info.json, indented by four spaces.
func WriteInfo(root string, info Info) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(info); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, InfoFile), bytes.TrimRight(buf.Bytes(), "\n"), 0644)
}

// Extension returns the configured note extension, falling back to md.
func (nb *Notebook) Extension() string {
	if nb.FileExtension == "" {
		return DefaultExtension
	}
	return nb.FileExtension
}
