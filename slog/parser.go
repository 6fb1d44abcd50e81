// Package slog provides logging decorators for confindex services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/confindex"
)

// Ensure LoggingParser implements confindex.Parser.
var _ confindex.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   confindex.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next confindex.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(fileName string, r io.Reader, lastID int64) (idx *confindex.Index, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Error("parse",
				"file", fileName,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logger.Info("parse",
			"file", fileName,
			"units", len(idx.SearchIndex),
			"references", len(idx.ScriptureIndex),
			"last_id", idx.LastID,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(fileName, r, lastID)
}
