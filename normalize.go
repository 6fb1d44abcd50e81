package confindex

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// emDashRe matches an em-dash with at most one space on either side.
var emDashRe = regexp.MustCompile(" ?— ?")

// typographicReplacer maps curly quotes to their plain forms.
var typographicReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
)

// cleanupReplacements repair the punctuation left behind in the prose once
// citation links have been lifted out of it. Applied in order.
var cleanupReplacements = [][2]string{
	{" - .", ""},
	{" ().", "."},
	{" ()", ""},
	{"(; ).", "."},
	{" , ", ", "},
	{"?.", "."},
	{"..", "."},
	{",.", "."},
}

// Normalizer cleans text extracted from confession documents.
type Normalizer struct {
	synonyms []Synonym
}

// NewNormalizer creates a Normalizer that applies the given synonym table.
func NewNormalizer(synonyms []Synonym) *Normalizer {
	return &Normalizer{synonyms: synonyms}
}

// Normalize decodes entities, collapses whitespace, applies synonyms and
// tidies typography and punctuation.
func (n *Normalizer) Normalize(raw string) string {
	s := collapseSpace(html.UnescapeString(raw))

	for _, syn := range n.synonyms {
		if syn.AlternateWord == "" {
			continue
		}
		s = strings.ReplaceAll(s, syn.AlternateWord, syn.PreferredWord)
	}

	s = typographicReplacer.Replace(s)
	s = emDashRe.ReplaceAllString(s, " - ")

	// Removing one artifact can expose another, e.g. "..." or "?..".
	// Dash spacing and removals can leave doubled or edge spaces, so
	// whitespace is collapsed again on every pass.
	for {
		prev := s
		for _, r := range cleanupReplacements {
			s = strings.ReplaceAll(s, r[0], r[1])
		}
		s = collapseSpace(s)
		if s == prev {
			return s
		}
	}
}

// collapseSpace replaces every whitespace run with one space and trims the
// ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
