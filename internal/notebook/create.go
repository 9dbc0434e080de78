package notebook

import (
	"fmt"
	"os"
	"path/filepath"

	"notecli/internal/logs"
)

// CreateOptions are the answers collected when creating a notebook.
type CreateOptions struct {
	Name          string
	Classes       string // Comma-separated, unnormalized
	FileExtension string
	Template      bool
}

// Create builds a notebook under cwd. An existing directory of the same name
// is merged into. When opts.Template is set, cwd/note-template.md must exist;
// if it does not, the directories and index file written so far are left in
// place and the metadata file is not written.
func Create(cwd string, opts CreateOptions) (*Notebook, error) {
	if err := ValidateName(opts.Name); err != nil {
		return nil, fmt.Errorf("%w: %q", err, opts.Name)
	}
	if err := ValidateClasses(opts.Classes); err != nil {
		return nil, fmt.Errorf("%w: %q", err, opts.Classes)
	}

	name := NormalizeName(opts.Name)
	classes := SplitClasses(opts.Classes)

	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, err
	}
	root := filepath.Join(absCwd, name)

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create notebook dir: %w", err)
	}
	logs.Logger.Printf("Notebook dir ready: %s", root)

	classDirs := make([]string, len(classes))
	for i, class := range classes {
		classDirs[i] = filepath.Join(name, class)
		if err := os.MkdirAll(filepath.Join(absCwd, classDirs[i]), 0755); err != nil {
			return nil, fmt.Errorf("create class dir %s: %w", class, err)
		}
	}

	info := Info{
		Classes:       classes,
		ClassDirs:     classDirs,
		NotebookName:  name,
		FileExtension: opts.FileExtension,
	}

	indexPath := filepath.Join(root, name+".md")
	if err := os.WriteFile(indexPath, IndexMarkdown(name), 0644); err != nil {
		return nil, fmt.Errorf("write index file: %w", err)
	}
	logs.Logger.Printf("Wrote index file: %s", indexPath)

	if opts.Template {
		if err := writeTemplate(absCwd, root, name); err != nil {
			return nil, err
		}
	}

	if err := WriteInfo(root, info); err != nil {
		return nil, fmt.Errorf("write notebook info: %w", err)
	}
	logs.Logger.Printf("Created notebook %s with %d classes", name, len(classes))

	return &Notebook{Info: info, Name: name, Path: root}, nil
}

func writeTemplate(cwd, root, name string) error {
	src, err := os.ReadFile(filepath.Join(cwd, TemplateFile))
	if err != nil {
		return fmt.Errorf("read template source: %w", err)
	}

	dst := filepath.Join(root, TemplateFile)
	if err := os.WriteFile(dst, []byte(Substitute(string(src), name)), 0644); err != nil {
		return fmt.Errorf("write note template: %w", err)
	}
	logs.Logger.Printf("Wrote note template: %s", dst)
	return nil
}
