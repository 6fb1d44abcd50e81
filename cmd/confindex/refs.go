package main

import (
	"fmt"

	"github.com/fwojciec/confindex"
)

// Run executes the refs command.
func (c *RefsCmd) Run(deps *Dependencies) error {
	chapter, err := deps.Resolver.ResolveChapter(fmt.Sprintf("%s %d", c.Book, c.Chapter))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	refs, err := deps.Index.FindScriptureIndex(deps.Ctx, confindex.ScriptureIndexFilter{
		Book:          &chapter.Book,
		ChapterNumber: &chapter.ChapterNumber,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintf(deps.Stdout, "No units cite %s %d\n", chapter.Book, chapter.ChapterNumber)
		return nil
	}

	for _, ref := range refs {
		units, err := deps.Index.FindSearchIndex(deps.Ctx, confindex.SearchIndexFilter{ID: &ref.SearchIndexID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
			return err
		}
		if len(units) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  (%s)\n", ref.Reference, units[0].Title, units[0].FileName)
	}

	return nil
}
