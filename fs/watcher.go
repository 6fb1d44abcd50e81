package fs

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Op describes a change to a watched document.
type Op int

const (
	OpCreate Op = iota + 1
	OpWrite
	OpRemove
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	}
	return "unknown"
}

// Event reports a change to a document, or a watch error in Err.
type Event struct {
	Path string
	Op   Op
	Err  error
}

// Watcher reports changes to the documents of a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
}

// NewWatcher creates a new Watcher.
func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: w}, nil
}

// Watch starts monitoring dir. The returned channel is closed when ctx is
// done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan Event, 100)

	go func() {
		defer close(events)
		for {
			var ev Event
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !IsDocument(event.Name) {
					continue
				}
				switch {
				case event.Has(fsnotify.Create):
					ev = Event{Path: event.Name, Op: OpCreate}
				case event.Has(fsnotify.Write):
					ev = Event{Path: event.Name, Op: OpWrite}
				case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
					ev = Event{Path: event.Name, Op: OpRemove}
				default:
					continue
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				ev = Event{Err: err}
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
