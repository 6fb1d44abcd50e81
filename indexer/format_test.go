package indexer_test

import (
	"testing"

	"github.com/fwojciec/confindex/indexer"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "belgic.html", indexer.TruncatePath("belgic.html", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := indexer.TruncatePath("/home/user/confessions/westminster-larger.html", 20)
		assert.Equal(t, "...nster-larger.html", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, indexer.TruncatePath("belgic.html", 0))
		assert.Empty(t, indexer.TruncatePath("belgic.html", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "bel", indexer.TruncatePath("belgic.html", 3))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", indexer.FormatBytes(512))
	assert.Equal(t, "1.5 KB", indexer.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", indexer.FormatBytes(2*1024*1024))
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("returns consistent hash for same content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, indexer.ComputeHash([]byte("content")), indexer.ComputeHash([]byte("content")))
	})

	t.Run("returns different hashes for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, indexer.ComputeHash([]byte("content a")), indexer.ComputeHash([]byte("content b")))
	})

	t.Run("returns fixed width hex string", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, `^[0-9a-f]{16}$`, indexer.ComputeHash([]byte("test")))
	})
}
