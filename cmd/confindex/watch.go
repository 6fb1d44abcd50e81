package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/fs"
)

// Run executes the watch command. It returns when the context is canceled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	result, err := indexPath(deps, c.Path, true, c.Concurrency)
	if err != nil {
		return err
	}
	printResult(deps, result)

	dir := c.Path
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	events, err := deps.Watcher.Watch(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Watching %s for changes\n", dir)

	for ev := range events {
		if ev.Err != nil {
			deps.Logger.Error("watch", "dir", dir, "err", ev.Err)
			continue
		}

		switch ev.Op {
		case fs.OpCreate, fs.OpWrite:
			result, err := deps.Indexer.IndexFile(deps.Ctx, ev.Path)
			if err != nil {
				// Keep watching; the next write to the file retries it.
				fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", ev.Path, confindex.ErrorMessage(err))
				continue
			}
			if result.Confessions > 0 {
				fmt.Fprintf(deps.Stdout, "  indexed %s (%d units)\n", ev.Path, result.Units)
			}
		case fs.OpRemove:
			if err := deps.Indexer.RemoveFile(deps.Ctx, ev.Path); err != nil {
				fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", ev.Path, confindex.ErrorMessage(err))
				continue
			}
			fmt.Fprintf(deps.Stdout, "  removed %s\n", ev.Path)
		}
	}

	return nil
}
