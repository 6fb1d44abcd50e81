package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/confindex"
	main "github.com/fwojciec/confindex/cmd/confindex"
	"github.com/fwojciec/confindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	newIndex := func() *mock.IndexService {
		return &mock.IndexService{
			FindConfessionsFn: func(_ context.Context, _ confindex.ConfessionFilter) ([]*confindex.Confession, error) {
				return []*confindex.Confession{{ID: 1, FileName: "heidelberg.html", Title: "Heidelberg Catechism"}}, nil
			},
			FindScriptureIndexFn: func(_ context.Context, _ confindex.ScriptureIndexFilter) ([]*confindex.ScriptureIndex, error) {
				return []*confindex.ScriptureIndex{
					{ID: 1, SearchIndexID: 1, Reference: "Rom. 14:7"},
					{ID: 2, SearchIndexID: 9, Reference: "Gen. 1:1"},
				}, nil
			},
			FindSearchIndexFn: func(_ context.Context, filter confindex.SearchIndexFilter) ([]*confindex.SearchIndex, error) {
				return []*confindex.SearchIndex{{ID: 1, ConfessionID: *filter.ConfessionID, Contents: "comfort"}}, nil
			},
		}
	}

	t.Run("writes every confession and commits", func(t *testing.T) {
		t.Parallel()

		var written []*confindex.Index
		var committed bool
		writer := &mock.IndexWriter{
			WriteIndexFn: func(_ context.Context, idx *confindex.Index) error {
				written = append(written, idx)
				return nil
			},
			CommitFn: func() error {
				committed = true
				return nil
			},
		}

		var gotDir string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Index:  newIndex(),
			NewWriter: func(dir string) confindex.IndexWriter {
				gotDir = dir
				return writer
			},
		}

		err := (&main.ExportCmd{Dir: "/tmp/export"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/export", gotDir)
		assert.True(t, committed)
		require.Len(t, written, 1)
		assert.Equal(t, "heidelberg.html", written[0].Confession.FileName)
		require.Len(t, written[0].ScriptureIndex, 1)
		assert.Equal(t, "Rom. 14:7", written[0].ScriptureIndex[0].Reference)
		assert.Contains(t, stdout.String(), "Exported 1 confessions to /tmp/export")
	})

	t.Run("aborts when a write fails", func(t *testing.T) {
		t.Parallel()

		var aborted bool
		writer := &mock.IndexWriter{
			WriteIndexFn: func(_ context.Context, _ *confindex.Index) error {
				return errors.New("disk full")
			},
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Index:     newIndex(),
			NewWriter: func(string) confindex.IndexWriter { return writer },
		}

		err := (&main.ExportCmd{Dir: "/tmp/export"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
	})
}
