// Package bible resolves scripture citations to a book and chapter.
package bible

import (
	"strings"
	"unicode"

	"github.com/fwojciec/confindex"
)

// Ensure Resolver implements confindex.ChapterResolver at compile time.
var _ confindex.ChapterResolver = (*Resolver)(nil)

// ordinals maps the spellings of a numbered book's prefix to its digit.
var ordinals = map[string]string{
	"1": "1", "i": "1", "first": "1", "1st": "1",
	"2": "2", "ii": "2", "second": "2", "2nd": "2",
	"3": "3", "iii": "3", "third": "3", "3rd": "3",
}

// Resolver resolves citations such as "Rom. 3:23", "1 Cor 15:3-4" or
// "Psalm 51" using the book names and common abbreviations of the
// Protestant canon.
type Resolver struct {
	books map[string]*book
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	r := &Resolver{books: make(map[string]*book)}
	for i := range books {
		b := &books[i]
		r.books[strings.ToLower(b.name)] = b
		for _, alias := range b.aliases {
			r.books[alias] = b
		}
	}
	return r
}

// ResolveChapter returns the book and chapter cited by reference.
// Only the first citation of a list ("Rom. 3:23; 5:12") is considered.
// A citation without a chapter, or of a single-chapter book, resolves to
// chapter 1.
func (r *Resolver) ResolveChapter(reference string) (confindex.ChapterReference, error) {
	s := reference
	if i := strings.Index(s, ";"); i >= 0 {
		s = s[:i]
	}
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(s, ".", " ")))
	if len(fields) == 0 {
		return confindex.ChapterReference{}, confindex.Errorf(confindex.EINVALID, "empty scripture reference")
	}

	// Split a prefix written without a space, e.g. "1cor".
	if first := fields[0]; len(first) > 1 && first[0] >= '1' && first[0] <= '3' && unicode.IsLetter(rune(first[1])) {
		fields = append([]string{first[:1], first[1:]}, fields[1:]...)
	}

	var name []string
	if len(fields) > 1 && startsWithLetter(fields[1]) {
		if digit, ok := ordinals[fields[0]]; ok {
			name = append(name, digit)
			fields = fields[1:]
		}
	}
	for len(fields) > 0 && startsWithLetter(fields[0]) {
		name = append(name, fields[0])
		fields = fields[1:]
	}

	b, ok := r.books[strings.Join(name, " ")]
	if !ok {
		return confindex.ChapterReference{}, confindex.Errorf(confindex.EINVALID, "unknown book in scripture reference %q", reference)
	}

	chapter := 1
	if b.chapters > 1 && len(fields) > 0 {
		n := leadingNumber(fields[0])
		if n < 1 || n > b.chapters {
			return confindex.ChapterReference{}, confindex.Errorf(confindex.EINVALID, "invalid chapter in scripture reference %q", reference)
		}
		chapter = n
	}

	return confindex.ChapterReference{Book: b.name, ChapterNumber: chapter}, nil
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}

// leadingNumber parses the digits at the start of s, or returns 0.
func leadingNumber(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1000 {
			return 0
		}
	}
	return n
}
