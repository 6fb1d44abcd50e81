package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/bible"
	"github.com/fwojciec/confindex/fs"
	"github.com/fwojciec/confindex/goquery"
	"github.com/fwojciec/confindex/indexer"
	cislog "github.com/fwojciec/confindex/slog"
	"github.com/fwojciec/confindex/sqlite"
	"github.com/fwojciec/confindex/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	IndexService confindex.IndexService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("confindex"),
		kong.Description("Index creeds, confessions and catechisms for search."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'confindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())
	deps.Logger = logger

	synonyms := confindex.DefaultSynonyms
	if cli.Synonyms != "" {
		if synonyms, err = yaml.LoadSynonymsFile(cli.Synonyms); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", confindex.ErrorMessage(err))
			return err
		}
	}
	deps.Synonyms = synonyms

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CONFINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire services into dependencies
	m.IndexService = cislog.NewLoggingIndexService(sqlite.NewIndexService(m.DB), logger)
	deps.Index = m.IndexService
	deps.Resolver = bible.NewResolver()
	deps.Indexer = &indexer.Indexer{
		Parser: cislog.NewLoggingParser(goquery.NewParser(confindex.NewNormalizer(synonyms), deps.Resolver), logger),
		Index:  m.IndexService,
	}
	deps.NewWriter = func(dir string) confindex.IndexWriter {
		dir = filepath.Clean(dir)
		return fs.NewWriter(filepath.Dir(dir), filepath.Base(dir))
	}

	if strings.HasPrefix(kongCtx.Command(), "watch") {
		watcher, err := fs.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer watcher.Close()
		deps.Watcher = watcher
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CONFINDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "confindex.db"
	}
	dir := filepath.Join(home, ".confindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "confindex.db")
}
