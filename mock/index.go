package mock

import (
	"context"

	"github.com/fwojciec/confindex"
)

var _ confindex.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of confindex.IndexService.
type IndexService struct {
	CreateIndexFn        func(ctx context.Context, idx *confindex.Index) error
	FindConfessionsFn    func(ctx context.Context, filter confindex.ConfessionFilter) ([]*confindex.Confession, error)
	FindSearchIndexFn    func(ctx context.Context, filter confindex.SearchIndexFilter) ([]*confindex.SearchIndex, error)
	FindScriptureIndexFn func(ctx context.Context, filter confindex.ScriptureIndexFilter) ([]*confindex.ScriptureIndex, error)
	DeleteConfessionFn   func(ctx context.Context, id int64) error
	LastSearchIndexIDFn  func(ctx context.Context) (int64, error)
	ReplaceSynonymsFn    func(ctx context.Context, synonyms []confindex.Synonym) error
	FindSynonymsFn       func(ctx context.Context) ([]confindex.Synonym, error)
	ResetFn              func(ctx context.Context) error
}

func (s *IndexService) CreateIndex(ctx context.Context, idx *confindex.Index) error {
	return s.CreateIndexFn(ctx, idx)
}

func (s *IndexService) FindConfessions(ctx context.Context, filter confindex.ConfessionFilter) ([]*confindex.Confession, error) {
	return s.FindConfessionsFn(ctx, filter)
}

func (s *IndexService) FindSearchIndex(ctx context.Context, filter confindex.SearchIndexFilter) ([]*confindex.SearchIndex, error) {
	return s.FindSearchIndexFn(ctx, filter)
}

func (s *IndexService) FindScriptureIndex(ctx context.Context, filter confindex.ScriptureIndexFilter) ([]*confindex.ScriptureIndex, error) {
	return s.FindScriptureIndexFn(ctx, filter)
}

func (s *IndexService) DeleteConfession(ctx context.Context, id int64) error {
	return s.DeleteConfessionFn(ctx, id)
}

func (s *IndexService) LastSearchIndexID(ctx context.Context) (int64, error) {
	return s.LastSearchIndexIDFn(ctx)
}

func (s *IndexService) ReplaceSynonyms(ctx context.Context, synonyms []confindex.Synonym) error {
	return s.ReplaceSynonymsFn(ctx, synonyms)
}

func (s *IndexService) FindSynonyms(ctx context.Context) ([]confindex.Synonym, error) {
	return s.FindSynonymsFn(ctx)
}

func (s *IndexService) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}
