package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/confindex"
)

// Ensure LoggingIndexService implements confindex.IndexService.
var _ confindex.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging of writes and
// debug logging of queries.
type LoggingIndexService struct {
	next   confindex.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next confindex.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// CreateIndex delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) CreateIndex(ctx context.Context, idx *confindex.Index) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create index",
			"file", idx.Confession.FileName,
			"confession_id", idx.Confession.ID,
			"units", len(idx.SearchIndex),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateIndex(ctx, idx)
}

func (s *LoggingIndexService) FindConfessions(ctx context.Context, filter confindex.ConfessionFilter) (confessions []*confindex.Confession, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find confessions",
			"count", len(confessions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindConfessions(ctx, filter)
}

func (s *LoggingIndexService) FindSearchIndex(ctx context.Context, filter confindex.SearchIndexFilter) (units []*confindex.SearchIndex, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find search index",
			"count", len(units),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearchIndex(ctx, filter)
}

func (s *LoggingIndexService) FindScriptureIndex(ctx context.Context, filter confindex.ScriptureIndexFilter) (refs []*confindex.ScriptureIndex, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find scripture index",
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindScriptureIndex(ctx, filter)
}

// DeleteConfession delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) DeleteConfession(ctx context.Context, id int64) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete confession",
			"confession_id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteConfession(ctx, id)
}

func (s *LoggingIndexService) LastSearchIndexID(ctx context.Context) (int64, error) {
	return s.next.LastSearchIndexID(ctx)
}

// ReplaceSynonyms delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) ReplaceSynonyms(ctx context.Context, synonyms []confindex.Synonym) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace synonyms",
			"count", len(synonyms),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceSynonyms(ctx, synonyms)
}

func (s *LoggingIndexService) FindSynonyms(ctx context.Context) ([]confindex.Synonym, error) {
	return s.next.FindSynonyms(ctx)
}

// Reset delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("reset index",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reset(ctx)
}
