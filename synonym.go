package confindex

// Synonym maps a non-preferred spelling to the preferred one.
type Synonym struct {
	AlternateWord string `json:"alternateWord"`
	PreferredWord string `json:"preferredWord"`
}

// DefaultSynonyms is the synonym table applied when no other table is configured.
// Substitution is case-sensitive, so each capitalisation needs its own entry.
var DefaultSynonyms = []Synonym{
	{AlternateWord: "catholick", PreferredWord: "catholic"},
	{AlternateWord: "Catholick", PreferredWord: "Catholic"},
}
