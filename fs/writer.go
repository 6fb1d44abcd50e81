package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/confindex"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of an exported confession.
type frontMatter struct {
	Title     string `yaml:"title"`
	Source    string `yaml:"source"`
	Country   string `yaml:"country,omitempty"`
	Tradition string `yaml:"tradition,omitempty"`
	Year      int    `yaml:"year,omitempty"`
	Quiz      bool   `yaml:"quiz,omitempty"`
}

// ExportPath returns the markdown file name for a confession source file.
// Example: heidelberg.html → heidelberg.md
func ExportPath(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
}

// FormatIndex formats a confession as markdown with YAML front matter.
// Each unit becomes a section followed by the scripture it cites.
func FormatIndex(idx *confindex.Index) (string, error) {
	c := idx.Confession
	header, err := yaml.Marshal(frontMatter{
		Title:     c.Title,
		Source:    c.FileName,
		Country:   c.Country,
		Tradition: c.Tradition,
		Year:      c.Year,
		Quiz:      c.Quiz,
	})
	if err != nil {
		return "", err
	}

	refs := make(map[int64][]string)
	for _, ref := range idx.ScriptureIndex {
		refs[ref.SearchIndexID] = append(refs[ref.SearchIndexID], ref.Reference)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n")
	for _, unit := range idx.SearchIndex {
		b.WriteString("\n## ")
		b.WriteString(unit.Title)
		b.WriteString("\n\n")
		b.WriteString(unit.Contents)
		b.WriteString("\n")
		if cited := refs[unit.ID]; len(cited) > 0 {
			b.WriteString("\nScripture: ")
			b.WriteString(strings.Join(cited, "; "))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Ensure Writer implements confindex.IndexWriter at compile time.
var _ confindex.IndexWriter = (*Writer)(nil)

// Writer exports indexes as markdown files with atomic update semantics.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// WriteIndex writes a confession to disk as a markdown file.
func (w *Writer) WriteIndex(ctx context.Context, idx *confindex.Index) error {
	if idx.Confession == nil {
		return confindex.Errorf(confindex.EINVALID, "index confession required")
	}
	if err := idx.Confession.Validate(); err != nil {
		return err
	}

	content, err := FormatIndex(idx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.tempDir(), ExportPath(idx.Confession.FileName)), []byte(content), 0644)
}

// Commit replaces the output directory with everything written so far.
func (w *Writer) Commit() error {
	// Nothing written still produces an empty output directory.
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}

	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort removes everything written so far.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
