package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/confindex"
	"github.com/fwojciec/confindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ confindex.IndexService = &mock.IndexService{}
}

func TestIndexService_CreateIndex(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateIndexFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *confindex.Index
		s := &mock.IndexService{
			CreateIndexFn: func(_ context.Context, idx *confindex.Index) error {
				calledWith = idx
				return nil
			},
		}

		idx := &confindex.Index{
			Confession: &confindex.Confession{FileName: "heidelberg.html", Title: "Heidelberg Catechism"},
		}

		err := s.CreateIndex(context.Background(), idx)

		require.NoError(t, err)
		assert.Equal(t, idx, calledWith)
	})
}

func TestIndexService_FindSynonyms(t *testing.T) {
	t.Parallel()

	s := &mock.IndexService{
		FindSynonymsFn: func(_ context.Context) ([]confindex.Synonym, error) {
			return confindex.DefaultSynonyms, nil
		},
	}

	got, err := s.FindSynonyms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, confindex.DefaultSynonyms, got)
}

func TestIndexWriter_Delegates(t *testing.T) {
	t.Parallel()

	var _ confindex.IndexWriter = &mock.IndexWriter{}

	var calls []string
	w := &mock.IndexWriter{
		WriteIndexFn: func(_ context.Context, _ *confindex.Index) error {
			calls = append(calls, "write")
			return nil
		},
		CommitFn: func() error {
			calls = append(calls, "commit")
			return nil
		},
		AbortFn: func() error {
			calls = append(calls, "abort")
			return nil
		},
	}

	require.NoError(t, w.WriteIndex(context.Background(), &confindex.Index{}))
	require.NoError(t, w.Commit())
	require.NoError(t, w.Abort())
	assert.Equal(t, []string{"write", "commit", "abort"}, calls)
}
