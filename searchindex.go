package confindex

import "strings"

// SearchIndex represents one indexable unit of a confession.
//
// FileName is the document file name, suffixed with "#id" when the unit
// starts at an element carrying an id. Title is the page title followed by
// the heading or question the unit belongs to.
type SearchIndex struct {
	ID           int64  `json:"id"`
	ConfessionID int64  `json:"confessionId"`
	FileName     string `json:"fileName"`
	Title        string `json:"title"`
	Contents     string `json:"contents"`
}

// Validate returns an error if the unit contains invalid fields.
func (s *SearchIndex) Validate() error {
	if s.ID <= 0 {
		return Errorf(EINVALID, "search index ID required")
	}
	if strings.TrimSpace(s.Contents) == "" {
		return Errorf(EINVALID, "search index contents required")
	}
	return nil
}

// SearchIndexFilter represents a filter for FindSearchIndex.
type SearchIndexFilter struct {
	ID           *int64 `json:"id"`
	ConfessionID *int64 `json:"confessionId"`

	// Query matches units whose title or contents contain the text.
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
