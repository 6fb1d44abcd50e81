// Package indexer orchestrates indexing of confession documents.
// It coordinates loading, parsing and storage of each document and threads
// unit numbering from one document to the next.
package indexer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/confindex"
	"golang.org/x/sync/errgroup"
)

// Indexer indexes confession documents into an IndexService.
type Indexer struct {
	Parser      confindex.Parser
	Index       confindex.IndexService
	Concurrency int
}

// Result holds the outcome of an indexing run.
type Result struct {
	Confessions int
	Skipped     int
	Units       int
	References  int
	Bytes       int
	LastID      int64
}

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Units     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressIndexed
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds the contents of a single file.
type loadResult struct {
	path string
	data []byte
	hash string
	err  error
}

// IndexPaths indexes the documents at paths in order. Unit numbering
// starts after lastID. Files are read concurrently but parsed and stored
// one at a time, and the run stops at the first document that fails.
// The returned Result covers the documents indexed before the failure.
func (x *Indexer) IndexPaths(ctx context.Context, paths []string, lastID int64, progress ProgressFunc) (*Result, error) {
	concurrency := x.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Load every file; read errors are reported in path order below.
	loaded := make([]loadResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				loaded[i] = loadResult{path: path, err: err}
				return nil
			}
			loaded[i] = load(path)
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{LastID: lastID}
	for i, l := range loaded {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		idx, err := x.index(ctx, l, result.LastID)
		if err != nil {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i, Total: total, Path: l.path, Error: err})
			}
			return result, fmt.Errorf("%s: %w", l.path, err)
		}

		if idx == nil {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, Path: l.path})
			}
			continue
		}

		result.add(idx, len(l.data))
		if progress != nil {
			progress(ProgressEvent{Type: ProgressIndexed, Completed: i + 1, Total: total, Path: l.path, Units: len(idx.SearchIndex)})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

// IndexFile indexes a single document, continuing the stored numbering.
// A document whose content is unchanged since it was stored is skipped.
func (x *Indexer) IndexFile(ctx context.Context, path string) (*Result, error) {
	lastID, err := x.Index.LastSearchIndexID(ctx)
	if err != nil {
		return nil, err
	}

	l := load(path)
	result := &Result{LastID: lastID}
	idx, err := x.index(ctx, l, lastID)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	if idx == nil {
		result.Skipped++
		return result, nil
	}
	result.add(idx, len(l.data))
	return result, nil
}

// RemoveFile deletes the stored confession for the document at path.
// It is not an error if the document was never indexed.
func (x *Indexer) RemoveFile(ctx context.Context, path string) error {
	existing, err := x.find(ctx, filepath.Base(path))
	if err != nil || existing == nil {
		return err
	}
	return x.Index.DeleteConfession(ctx, existing.ID)
}

// index parses and stores one loaded document. It returns a nil Index
// when the stored copy of the document is current.
func (x *Indexer) index(ctx context.Context, l loadResult, lastID int64) (*confindex.Index, error) {
	if l.err != nil {
		return nil, l.err
	}

	fileName := filepath.Base(l.path)
	existing, err := x.find(ctx, fileName)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ContentHash == l.hash {
		return nil, nil
	}

	idx, err := x.Parser.Parse(fileName, bytes.NewReader(l.data), lastID)
	if err != nil {
		return nil, err
	}
	idx.Confession.ContentHash = l.hash

	if existing != nil {
		if err := x.Index.DeleteConfession(ctx, existing.ID); err != nil {
			return nil, err
		}
	}
	if err := x.Index.CreateIndex(ctx, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// find returns the stored confession for fileName, or nil.
func (x *Indexer) find(ctx context.Context, fileName string) (*confindex.Confession, error) {
	confessions, err := x.Index.FindConfessions(ctx, confindex.ConfessionFilter{FileName: &fileName, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(confessions) == 0 {
		return nil, nil
	}
	return confessions[0], nil
}

func (r *Result) add(idx *confindex.Index, size int) {
	r.Confessions++
	r.Units += len(idx.SearchIndex)
	r.References += len(idx.ScriptureIndex)
	r.Bytes += size
	r.LastID = idx.LastID
}

func load(path string) loadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return loadResult{path: path, err: err}
	}
	return loadResult{path: path, data: data, hash: ComputeHash(data)}
}
