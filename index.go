package confindex

import (
	"context"
	"io"
)

// Index is the result of parsing one confession document.
type Index struct {
	Confession     *Confession       `json:"confession"`
	SearchIndex    []*SearchIndex    `json:"searchIndex"`
	ScriptureIndex []*ScriptureIndex `json:"scriptureIndex"`

	// LastID is the last unit identifier assigned while parsing.
	// Pass it to the next Parse call to continue the numbering.
	LastID int64 `json:"lastId"`
}

// Validate returns an error if the index violates its invariants.
func (idx *Index) Validate() error {
	if idx.Confession == nil {
		return Errorf(EINVALID, "index confession required")
	}
	if err := idx.Confession.Validate(); err != nil {
		return err
	}

	units := make(map[int64]bool, len(idx.SearchIndex))
	var prev int64
	for _, s := range idx.SearchIndex {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.ID <= prev {
			return Errorf(EINVALID, "search index ID %d out of order", s.ID)
		}
		prev = s.ID
		units[s.ID] = true
	}

	for _, ref := range idx.ScriptureIndex {
		if !units[ref.SearchIndexID] {
			return Errorf(EINVALID, "scripture index %q refers to unknown search index %d", ref.Reference, ref.SearchIndexID)
		}
	}
	return nil
}

// Parser splits a confession document into search and scripture index entries.
type Parser interface {
	// Parse reads the HTML document named fileName from r. Unit identifiers
	// start at lastID+1; the last identifier assigned is returned in
	// Index.LastID. Returns EINVALID if the document is malformed.
	Parse(fileName string, r io.Reader, lastID int64) (*Index, error)
}

// IndexService represents a service for storing and querying the index.
type IndexService interface {
	// CreateIndex stores a confession with its search and scripture index
	// entries in a single transaction. Assigns Confession.ID.
	CreateIndex(ctx context.Context, idx *Index) error

	// FindConfessions retrieves confessions matching the filter.
	FindConfessions(ctx context.Context, filter ConfessionFilter) ([]*Confession, error)

	// FindSearchIndex retrieves units matching the filter, ordered by ID.
	FindSearchIndex(ctx context.Context, filter SearchIndexFilter) ([]*SearchIndex, error)

	// FindScriptureIndex retrieves scripture references matching the filter.
	FindScriptureIndex(ctx context.Context, filter ScriptureIndexFilter) ([]*ScriptureIndex, error)

	// DeleteConfession removes a confession and all of its index entries.
	// Returns ENOTFOUND if the confession does not exist.
	DeleteConfession(ctx context.Context, id int64) error

	// LastSearchIndexID returns the highest stored unit identifier, or 0.
	LastSearchIndexID(ctx context.Context) (int64, error)

	// ReplaceSynonyms replaces the stored synonym table.
	ReplaceSynonyms(ctx context.Context, synonyms []Synonym) error

	// FindSynonyms returns the stored synonym table in order.
	FindSynonyms(ctx context.Context) ([]Synonym, error)

	// Reset drops and recreates all index tables.
	Reset(ctx context.Context) error
}

// IndexWriter exports indexes to an external location. Written indexes
// become visible only once Commit succeeds.
type IndexWriter interface {
	// WriteIndex writes one confession with its units and references.
	WriteIndex(ctx context.Context, idx *Index) error

	// Commit publishes everything written so far.
	Commit() error

	// Abort discards everything written so far.
	Abort() error
}
