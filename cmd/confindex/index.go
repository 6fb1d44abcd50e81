package main

import (
	"fmt"

	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/fs"
	"github.com/fwojciec/confindex/indexer"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	result, err := indexPath(deps, c.Path, c.Keep, c.Concurrency)
	if err != nil {
		return err
	}
	printResult(deps, result)
	return nil
}

// indexPath indexes the documents at path. Unless keep is set the index
// is rebuilt from scratch.
func indexPath(deps *Dependencies, path string, keep bool, concurrency int) (*indexer.Result, error) {
	paths, err := fs.Discover(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return nil, err
	}

	var lastID int64
	if keep {
		if lastID, err = deps.Index.LastSearchIndexID(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
			return nil, err
		}
	} else if err := deps.Index.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return nil, err
	}

	if err := deps.Index.ReplaceSynonyms(deps.Ctx, deps.Synonyms); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return nil, err
	}

	progress := func(event indexer.ProgressEvent) {
		switch event.Type {
		case indexer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d documents\n", event.Total)
		case indexer.ProgressIndexed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d units)\n", event.Completed, event.Total, indexer.TruncatePath(event.Path, 60), event.Units)
		case indexer.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s unchanged\n", event.Completed, event.Total, indexer.TruncatePath(event.Path, 60))
		case indexer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", event.Path, confindex.ErrorMessage(event.Error))
		}
	}

	deps.Indexer.Concurrency = concurrency
	result, err := deps.Indexer.IndexPaths(deps.Ctx, paths, lastID, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		fmt.Fprintln(deps.Stderr, "Fix the document and index again.")
		return result, err
	}
	return result, nil
}

func printResult(deps *Dependencies, result *indexer.Result) {
	fmt.Fprintf(deps.Stdout, "Indexed %d confessions (%d units, %d scripture references, %s)",
		result.Confessions, result.Units, result.References, indexer.FormatBytes(result.Bytes))
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, ", %d unchanged", result.Skipped)
	}
	fmt.Fprintln(deps.Stdout)
}
