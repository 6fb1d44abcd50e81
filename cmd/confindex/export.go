package main

import (
	"fmt"

	"github.com/fwojciec/confindex"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	confessions, err := deps.Index.FindConfessions(deps.Ctx, confindex.ConfessionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	refs, err := deps.Index.FindScriptureIndex(deps.Ctx, confindex.ScriptureIndexFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}
	byUnit := make(map[int64][]*confindex.ScriptureIndex)
	for _, ref := range refs {
		byUnit[ref.SearchIndexID] = append(byUnit[ref.SearchIndexID], ref)
	}

	w := deps.NewWriter(c.Dir)
	for _, conf := range confessions {
		units, err := deps.Index.FindSearchIndex(deps.Ctx, confindex.SearchIndexFilter{ConfessionID: &conf.ID})
		if err != nil {
			_ = w.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
			return err
		}

		idx := &confindex.Index{Confession: conf, SearchIndex: units}
		for _, u := range units {
			idx.ScriptureIndex = append(idx.ScriptureIndex, byUnit[u.ID]...)
		}

		if err := w.WriteIndex(deps.Ctx, idx); err != nil {
			_ = w.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
			return err
		}
	}

	if err := w.Commit(); err != nil {
		_ = w.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d confessions to %s\n", len(confessions), c.Dir)
	return nil
}
