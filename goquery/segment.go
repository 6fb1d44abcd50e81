package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/confindex"
)

// unit is a search index entry under construction.
type unit struct {
	fileName string
	title    string
	contents string
	refs     []*confindex.ScriptureIndex
}

func (u *unit) append(text string) {
	if text == "" {
		return
	}
	if strings.TrimSpace(u.contents) != "" {
		u.contents += " "
	}
	u.contents += text
}

// addReference records ref unless the unit already cites the same chapter.
func (u *unit) addReference(ref *confindex.ScriptureIndex) {
	for _, r := range u.refs {
		if r.Book == ref.Book && r.ChapterNumber == ref.ChapterNumber {
			return
		}
	}
	u.refs = append(u.refs, ref)
}

// segmenter walks the flattened article and cuts it into units.
//
// A unit is closed whenever an element with an id yields a key different
// from the current unit's file name. List items are the exception to the
// usual order: their text belongs to the unit that is open when they are
// reached, and that unit then takes the item's key and title.
type segmenter struct {
	normalizer *confindex.Normalizer
	resolver   confindex.ChapterResolver
	fileName   string
	title      string

	runningTitle string
	current      *unit
	lastID       int64

	units []*confindex.SearchIndex
	refs  []*confindex.ScriptureIndex
}

func (s *segmenter) run(nodes []*goquery.Selection) error {
	s.runningTitle = s.title
	s.current = &unit{fileName: s.fileName, title: s.title}

	for _, sel := range nodes {
		if err := s.visit(sel); err != nil {
			return err
		}
	}

	s.emit(s.current)
	return nil
}

func (s *segmenter) visit(sel *goquery.Selection) error {
	r := roleOf(sel)
	if id := strings.TrimSpace(sel.AttrOr("id", "")); id != "" {
		return s.visitKeyed(sel, r, id)
	}

	switch r {
	case roleParagraph, roleListItem, roleSubheading:
		if sel.HasClass("noindex") {
			return nil
		}
		return s.appendContent(sel)
	case roleContainer:
		return s.extractReferences(s.current, sel)
	}
	return nil
}

func (s *segmenter) visitKeyed(sel *goquery.Selection, r role, id string) error {
	key := s.fileName + "#" + id

	switch r {
	case roleHeading, roleSubheading:
		s.runningTitle = s.title + ": " + headingText(sel)
	case roleListItem:
		if number := digits(id); number != "" {
			s.runningTitle = s.title + ": " + s.itemLabel(sel, number)
		}
		if err := s.appendContent(sel); err != nil {
			return err
		}
		s.current.fileName = key
		s.current.title = s.runningTitle

		// The item's unit is complete; whatever follows starts a unit whose
		// key is not known yet.
		key = ""
	}

	if override := strings.TrimSpace(sel.AttrOr("data-title", "")); override != "" {
		s.runningTitle = s.title + ": " + override
	}

	if key != s.current.fileName {
		s.emit(s.current)
		s.current = &unit{fileName: key, title: s.runningTitle}
	}
	return nil
}

// itemLabel names a numbered list item, e.g. "Article 12" in a confession
// of articles or "Question & Answer 1" in a catechism.
func (s *segmenter) itemLabel(sel *goquery.Selection, number string) string {
	if override := strings.TrimSpace(sel.AttrOr("data-title", "")); override != "" {
		return override
	}
	title := strings.ToLower(s.title)
	if strings.Contains(title, "articles") || strings.Contains(title, "confession") {
		return "Article " + number
	}
	return "Question & Answer " + number
}

// appendContent adds the element's text, the text of any nested list items
// and their citations to the current unit.
func (s *segmenter) appendContent(sel *goquery.Selection) error {
	s.current.append(s.normalizer.Normalize(directText(sel)))

	for _, item := range nestedItems(sel) {
		s.current.append(s.normalizer.Normalize(directText(item)))
		if err := s.extractReferences(s.current, item); err != nil {
			return err
		}
	}

	return s.extractReferences(s.current, sel)
}

// extractReferences records the scripture citations among sel's children.
// Reference containers and inline formatting are searched recursively.
func (s *segmenter) extractReferences(u *unit, sel *goquery.Selection) error {
	var err error
	sel.Children().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		err = s.extractReference(u, c)
		return err == nil
	})
	return err
}

func (s *segmenter) extractReference(u *unit, sel *goquery.Selection) error {
	if sel.HasClass("references") || isFormatting(sel) {
		return s.extractReferences(u, sel)
	}

	if goquery.NodeName(sel) != "a" {
		return nil
	}
	href := strings.TrimSpace(sel.AttrOr("href", ""))
	if !hasPrefixFold(href, confindex.ScriptureOrigin) {
		return nil
	}

	reference := strings.TrimSpace(sel.Text())
	chapter, err := s.resolver.ResolveChapter(reference)
	if err != nil {
		return fmt.Errorf("%s: resolve scripture reference %q: %w", s.fileName, reference, err)
	}

	u.addReference(&confindex.ScriptureIndex{
		Address:       href,
		Reference:     reference,
		Book:          chapter.Book,
		ChapterNumber: chapter.ChapterNumber,
	})
	return nil
}

// emit finalizes u if it has any contents. Identifiers are assigned here so
// that discarded empty units do not leave gaps in the numbering.
func (s *segmenter) emit(u *unit) {
	if strings.TrimSpace(u.contents) == "" {
		return
	}

	s.lastID++
	fileName := u.fileName
	if fileName == "" {
		fileName = s.fileName
	}

	s.units = append(s.units, &confindex.SearchIndex{
		ID:       s.lastID,
		FileName: fileName,
		Title:    u.title,
		Contents: u.contents,
	})
	for _, ref := range u.refs {
		ref.SearchIndexID = s.lastID
		s.refs = append(s.refs, ref)
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
