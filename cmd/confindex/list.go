package main

import (
	"fmt"

	"github.com/fwojciec/confindex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter confindex.ConfessionFilter
	if c.Tradition != "" {
		filter.Tradition = &c.Tradition
	}

	confessions, err := deps.Index.FindConfessions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	if len(confessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No confessions found. Use 'confindex index' to build the index.")
		return nil
	}

	for _, conf := range confessions {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s, %s %d\n", conf.ID, conf.FileName, conf.Title, conf.Tradition, conf.Country, conf.Year)
	}

	return nil
}
