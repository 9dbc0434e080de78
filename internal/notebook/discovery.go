package notebook

import (
	"os"
	"path/filepath"
	"sort"
)

// Directory maps notebook names to absolute notebook roots.
type Directory map[string]string

// Names returns the notebook names in sorted order
func (d Directory) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Discover finds notebooks in cwd itself and in its immediate subdirectories.
// cwd is registered under its base name; subdirectories under their own name.
func Discover(cwd string) (Directory, error) {
	absRoot, err := filepath.Abs(cwd)
	if err != nil {
		return nil, err
	}

	dir := Directory{}

	if hasInfoFile(absRoot) {
		dir[filepath.Base(absRoot)] = absRoot
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		nbPath := filepath.Join(absRoot, entry.Name())
		if hasInfoFile(nbPath) {
			dir[entry.Name()] = nbPath
		}
	}

	return dir, nil
}

func hasInfoFile(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, InfoFile))
	return err == nil
}
