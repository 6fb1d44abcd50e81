package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/fs"
	"github.com/fwojciec/confindex/indexer"
)

// Watcher reports changes to the documents of a directory.
type Watcher interface {
	Watch(ctx context.Context, dir string) (<-chan fs.Event, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Synonyms  []confindex.Synonym
	Index     confindex.IndexService
	Resolver  confindex.ChapterResolver
	Indexer   *indexer.Indexer
	Watcher   Watcher
	NewWriter func(dir string) confindex.IndexWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Synonyms string `help:"YAML synonym table to use instead of the built-in one" type:"path"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Index  IndexCmd  `cmd:"" help:"Rebuild the index from confession documents"`
	Watch  WatchCmd  `cmd:"" help:"Index documents and keep the index up to date"`
	List   ListCmd   `cmd:"" help:"List indexed confessions"`
	Search SearchCmd `cmd:"" help:"Search indexed confessions"`
	Refs   RefsCmd   `cmd:"" help:"List units citing a scripture chapter"`
	Export ExportCmd `cmd:"" help:"Export indexed confessions as markdown"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Path        string `arg:"" optional:"" default:"." help:"Document or directory of documents" type:"path"`
	Keep        bool   `short:"k" help:"Keep the existing index and only add changed documents"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent file read limit"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Path        string `arg:"" optional:"" default:"." help:"Directory of documents" type:"path"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent file read limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Tradition string `short:"t" help:"Only list confessions of this tradition"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to search for"`
	Limit int    `short:"n" default:"20" help:"Maximum number of results"`
}

// RefsCmd is the "refs" subcommand.
type RefsCmd struct {
	Book    string `arg:"" help:"Book of the Bible, e.g. Romans or Rom"`
	Chapter int    `arg:"" help:"Chapter number"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory (replaced on success)" type:"path"`
}
