package confindex

// ScriptureOrigin is the address prefix identifying scripture citation links.
const ScriptureOrigin = "https://goto.bible/"

// ScriptureIndex represents a scripture chapter cited by a unit.
// A unit cites each book and chapter at most once.
type ScriptureIndex struct {
	ID            int64  `json:"id"`
	SearchIndexID int64  `json:"searchIndexId"`
	Address       string `json:"address"`
	Reference     string `json:"reference"`
	Book          string `json:"book"`
	ChapterNumber int    `json:"chapterNumber"`
}

// ScriptureIndexFilter represents a filter for FindScriptureIndex.
type ScriptureIndexFilter struct {
	SearchIndexID *int64  `json:"searchIndexId"`
	Book          *string `json:"book"`
	ChapterNumber *int    `json:"chapterNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ChapterReference identifies a chapter of a book of the Bible.
type ChapterReference struct {
	Book          string
	ChapterNumber int
}

// ChapterResolver maps the visible text of a citation to a book and chapter.
type ChapterResolver interface {
	// ResolveChapter parses a citation such as "Rom. 3:23".
	// Returns EINVALID if the book cannot be identified.
	ResolveChapter(reference string) (ChapterReference, error)
}
