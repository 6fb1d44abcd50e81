package mock

import (
	"context"

	"github.com/fwojciec/confindex"
)

var _ confindex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of confindex.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, idx *confindex.Index) error
	CommitFn     func() error
	AbortFn      func() error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, idx *confindex.Index) error {
	return w.WriteIndexFn(ctx, idx)
}

func (w *IndexWriter) Commit() error {
	return w.CommitFn()
}

func (w *IndexWriter) Abort() error {
	return w.AbortFn()
}
