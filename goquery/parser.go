// Package goquery implements confindex.Parser on top of goquery.
package goquery

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/confindex"
)

// Ensure Parser implements confindex.Parser at compile time.
var _ confindex.Parser = (*Parser)(nil)

// Parser splits confession HTML documents into index entries.
//
// A document must have a title element and an article#main element whose
// data-country, data-tradition, data-year and data-quiz attributes describe
// the confession.
type Parser struct {
	normalizer *confindex.Normalizer
	resolver   confindex.ChapterResolver
}

// NewParser creates a new Parser.
func NewParser(normalizer *confindex.Normalizer, resolver confindex.ChapterResolver) *Parser {
	return &Parser{normalizer: normalizer, resolver: resolver}
}

// Parse reads a confession document and returns its index entries.
func (p *Parser) Parse(fileName string, r io.Reader, lastID int64) (*confindex.Index, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, confindex.Errorf(confindex.EINVALID, "failed to parse HTML: %v", err)
	}

	titleSel := doc.Find("title").First()
	if titleSel.Length() == 0 {
		return nil, confindex.Errorf(confindex.EINVALID, "%s: element title not found", fileName)
	}
	title := strings.TrimSpace(titleSel.Text())

	article := doc.Find("article#main").First()
	if article.Length() == 0 {
		return nil, confindex.Errorf(confindex.EINVALID, "%s: element article#main not found", fileName)
	}

	confession, err := newConfession(fileName, title, article)
	if err != nil {
		return nil, err
	}

	s := &segmenter{
		normalizer: p.normalizer,
		resolver:   p.resolver,
		fileName:   fileName,
		title:      title,
		lastID:     lastID,
	}
	if err := s.run(flatten(article)); err != nil {
		return nil, err
	}

	return &confindex.Index{
		Confession:     confession,
		SearchIndex:    s.units,
		ScriptureIndex: s.refs,
		LastID:         s.lastID,
	}, nil
}

// newConfession reads the confession metadata from the article element.
func newConfession(fileName, title string, article *goquery.Selection) (*confindex.Confession, error) {
	c := &confindex.Confession{
		Country:   strings.TrimSpace(article.AttrOr("data-country", "")),
		FileName:  fileName,
		Title:     title,
		Tradition: strings.TrimSpace(article.AttrOr("data-tradition", "")),
	}

	year, ok := article.Attr("data-year")
	if !ok {
		return nil, confindex.Errorf(confindex.EINVALID, "%s: data-year attribute required", fileName)
	}
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return nil, confindex.Errorf(confindex.EINVALID, "%s: invalid data-year %q", fileName, year)
	}
	c.Year = n

	if quiz, ok := article.Attr("data-quiz"); ok && strings.TrimSpace(quiz) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(quiz))
		if err != nil {
			return nil, confindex.Errorf(confindex.EINVALID, "%s: invalid data-quiz %q", fileName, quiz)
		}
		c.Quiz = b
	}

	return c, nil
}
