package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/confindex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.TrimSpace(c.Query)
	if query == "" {
		fmt.Fprintln(deps.Stderr, "error: search query required")
		return confindex.Errorf(confindex.EINVALID, "search query required")
	}

	units, err := deps.Index.FindSearchIndex(deps.Ctx, confindex.SearchIndexFilter{Query: &query, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", confindex.ErrorMessage(err))
		return err
	}

	if len(units) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches for %q\n", query)
		return nil
	}

	for _, u := range units {
		fmt.Fprintf(deps.Stdout, "%s\n  %s\n  %s\n", u.Title, u.FileName, excerpt(u.Contents, query, 80))
	}

	return nil
}

// excerpt returns up to width bytes of contents around the first
// case-insensitive match of query.
func excerpt(contents, query string, width int) string {
	if len(contents) <= width {
		return contents
	}
	start := strings.Index(strings.ToLower(contents), strings.ToLower(query))
	if start < 0 {
		start = 0
	}
	start = max(0, start-width/4)
	end := min(len(contents), start+width)

	// Avoid cutting through a multi-byte character.
	for start > 0 && !utf8.RuneStart(contents[start]) {
		start--
	}
	for end < len(contents) && !utf8.RuneStart(contents[end]) {
		end++
	}

	s := contents[start:end]
	if start > 0 {
		s = "..." + s
	}
	if end < len(contents) {
		s += "..."
	}
	return s
}
