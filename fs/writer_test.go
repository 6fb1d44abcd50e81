package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *confindex.Index {
	return &confindex.Index{
		Confession: &confindex.Confession{
			ID:        1,
			FileName:  "heidelberg.html",
			Title:     "Heidelberg Catechism",
			Country:   "Germany",
			Tradition: "Reformed",
			Year:      1563,
			Quiz:      true,
		},
		SearchIndex: []*confindex.SearchIndex{
			{ID: 1, FileName: "heidelberg.html#q1", Title: "Heidelberg Catechism: Question & Answer 1", Contents: "What is your only comfort in life and in death?"},
			{ID: 2, FileName: "heidelberg.html#q2", Title: "Heidelberg Catechism: Question & Answer 2", Contents: "How many things are necessary for you to know?"},
		},
		ScriptureIndex: []*confindex.ScriptureIndex{
			{SearchIndexID: 1, Reference: "Rom. 14:7", Book: "Romans", ChapterNumber: 14},
			{SearchIndexID: 1, Reference: "1 Cor. 6:19", Book: "1 Corinthians", ChapterNumber: 6},
		},
	}
}

func TestExportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{name: "html file", fileName: "heidelberg.html", want: "heidelberg.md"},
		{name: "nested path", fileName: "docs/westminster.html", want: "westminster.md"},
		{name: "no extension", fileName: "belgic", want: "belgic.md"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.ExportPath(tt.fileName))
		})
	}
}

func TestFormatIndex(t *testing.T) {
	t.Parallel()

	got, err := fs.FormatIndex(testIndex())
	require.NoError(t, err)

	want := `---
title: Heidelberg Catechism
source: heidelberg.html
country: Germany
tradition: Reformed
year: 1563
quiz: true
---

## Heidelberg Catechism: Question & Answer 1

What is your only comfort in life and in death?

Scripture: Rom. 14:7; 1 Cor. 6:19

## Heidelberg Catechism: Question & Answer 2

How many things are necessary for you to know?
`
	assert.Equal(t, want, got)
}

func TestFormatIndex_QuotesTitle(t *testing.T) {
	t.Parallel()

	idx := testIndex()
	idx.Confession.Title = "Canons of Dort: First Head"

	got, err := fs.FormatIndex(idx)

	require.NoError(t, err)
	assert.Contains(t, got, "title: 'Canons of Dort: First Head'\n")
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ confindex.IndexWriter = (*fs.Writer)(nil)
}

func TestWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("writes nothing visible before commit", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, "export")

		require.NoError(t, w.WriteIndex(context.Background(), testIndex()))

		assert.NoFileExists(t, filepath.Join(dir, "export", "heidelberg.md"))
		assert.FileExists(t, filepath.Join(dir, "export.tmp", "heidelberg.md"))
	})

	t.Run("commit replaces previous export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stale := filepath.Join(dir, "export", "stale.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

		w := fs.NewWriter(dir, "export")
		require.NoError(t, w.WriteIndex(context.Background(), testIndex()))
		require.NoError(t, w.Commit())

		assert.NoFileExists(t, stale)
		assert.NoDirExists(t, filepath.Join(dir, "export.tmp"))
		content, err := os.ReadFile(filepath.Join(dir, "export", "heidelberg.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "## Heidelberg Catechism: Question & Answer 1")
	})

	t.Run("commit without writes creates empty directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, "export")

		require.NoError(t, w.Commit())

		assert.DirExists(t, filepath.Join(dir, "export"))
	})

	t.Run("abort removes temporary files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, "export")
		require.NoError(t, w.WriteIndex(context.Background(), testIndex()))

		require.NoError(t, w.Abort())

		assert.NoDirExists(t, filepath.Join(dir, "export.tmp"))
		assert.NoDirExists(t, filepath.Join(dir, "export"))
	})

	t.Run("validates confession", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), "export")

		err := w.WriteIndex(context.Background(), &confindex.Index{Confession: &confindex.Confession{}})

		assert.Equal(t, confindex.EINVALID, confindex.ErrorCode(err))
	})
}
