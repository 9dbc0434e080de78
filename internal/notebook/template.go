package notebook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Substitute replaces the first placeholder occurrence with the notebook name.
func Substitute(template, notebookName string) string {
	return strings.Replace(template, Placeholder, notebookName, 1)
}

// IndexMarkdown renders the generated <name>.md index file.
func IndexMarkdown(notebookName string) []byte {
	var buf bytes.Buffer

	buf.WriteString("# ")
	buf.WriteString(notebookName)
	buf.WriteString("\n\n")
	buf.WriteString("Make a note in each of your classes with `note-cli`!\n\n")

	return buf.Bytes()
}

// IndexTitle returns the first level-1 heading of the notebook's index file,
// or "" when the file is missing or has none.
func (nb *Notebook) IndexTitle() string {
	name := nb.NotebookName
	if name == "" {
		name = nb.Name
	}

	content, err := os.ReadFile(filepath.Join(nb.Path, name+".md"))
	if err != nil {
		return ""
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(content))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = string(heading.Text(content))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}
