package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/confindex"
	main "github.com/fwojciec/confindex/cmd/confindex"
	"github.com/fwojciec/confindex/fs"
	"github.com/fwojciec/confindex/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWatcher replays a fixed list of events.
type fakeWatcher struct {
	dir    string
	events []fs.Event
}

func (w *fakeWatcher) Watch(_ context.Context, dir string) (<-chan fs.Event, error) {
	w.dir = dir
	ch := make(chan fs.Event, len(w.events))
	for _, ev := range w.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func TestWatchCmd_Run(t *testing.T) {
	t.Parallel()

	dir := docsDir(t, map[string]string{"belgic.html": "one"})
	added := filepath.Join(dir, "dort.html")
	require.NoError(t, os.WriteFile(added, []byte("two"), 0644))

	rec := &recorder{}
	svc := rec.service()
	var deleted []int64
	svc.FindConfessionsFn = func(_ context.Context, filter confindex.ConfessionFilter) ([]*confindex.Confession, error) {
		if *filter.FileName == "westminster.html" {
			return []*confindex.Confession{{ID: 5, FileName: "westminster.html"}}, nil
		}
		return nil, nil
	}
	svc.DeleteConfessionFn = func(_ context.Context, id int64) error {
		deleted = append(deleted, id)
		return nil
	}

	watcher := &fakeWatcher{events: []fs.Event{
		{Path: added, Op: fs.OpCreate},
		{Path: filepath.Join(dir, "westminster.html"), Op: fs.OpRemove},
		{Path: filepath.Join(dir, "gone.html"), Op: fs.OpWrite},
	}}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.NewTextHandler(stderr, nil)),
		Index:   svc,
		Indexer: &indexer.Indexer{Parser: lineParser, Index: svc},
		Watcher: watcher,
	}

	err := (&main.WatchCmd{Path: dir}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, dir, watcher.dir)
	assert.Equal(t, []string{"last", "synonyms", "create belgic.html", "create dort.html", "last", "create dort.html", "last"}, rec.calls)
	assert.Equal(t, []int64{5}, deleted)
	output := stdout.String()
	assert.Contains(t, output, "Watching "+dir)
	assert.Contains(t, output, "indexed "+added)
	assert.Contains(t, output, "removed "+filepath.Join(dir, "westminster.html"))
	assert.Contains(t, stderr.String(), "failed "+filepath.Join(dir, "gone.html"))
}
