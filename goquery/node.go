package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// role classifies an element for segmentation.
type role int

const (
	roleOther role = iota
	roleHeading
	roleSubheading
	roleListItem
	roleParagraph
	roleContainer
)

// roleOf returns the segmentation role of an element.
func roleOf(sel *goquery.Selection) role {
	switch goquery.NodeName(sel) {
	case "h3":
		return roleHeading
	case "h4", "h5":
		return roleSubheading
	case "li":
		return roleListItem
	case "p":
		return roleParagraph
	case "div":
		return roleContainer
	default:
		return roleOther
	}
}

// formattingTags are unwrapped when collecting an element's own text, so the
// text they wrap counts as the element's direct text.
var formattingTags = map[string]bool{
	"b":      true,
	"strong": true,
	"i":      true,
	"em":     true,
	"table":  true,
	"thead":  true,
	"tbody":  true,
	"tfoot":  true,
	"tr":     true,
	"th":     true,
	"td":     true,
}

// cellTags separate their text from the neighbouring cell or row.
var cellTags = map[string]bool{
	"tr": true,
	"th": true,
	"td": true,
}

func isFormatting(sel *goquery.Selection) bool {
	return formattingTags[goquery.NodeName(sel)]
}

// flatten returns the children of article in document order, with every
// ordered list and block quote followed by its own children, so list items
// and quoted paragraphs become siblings of the elements around them.
// The tree itself is left untouched.
func flatten(article *goquery.Selection) []*goquery.Selection {
	var nodes []*goquery.Selection
	var visit func(sel *goquery.Selection)
	visit = func(sel *goquery.Selection) {
		nodes = append(nodes, sel)
		if sel.Is("ol, blockquote") {
			sel.Children().Each(func(_ int, c *goquery.Selection) {
				visit(c)
			})
		}
	}
	article.Children().Each(func(_ int, c *goquery.Selection) {
		visit(c)
	})
	return nodes
}

// directText returns the text of the element's own text nodes, ignoring
// child elements other than inline formatting and table markup. The text is
// returned escaped as it appears in the document source, so entities are
// decoded once, by the normalizer.
func directText(sel *goquery.Selection) string {
	var sb strings.Builder
	var walk func(sel *goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			switch {
			case name == "#text":
				sb.WriteString(html.EscapeString(c.Text()))
			case name == "br":
				sb.WriteByte(' ')
			case formattingTags[name]:
				walk(c)
				if cellTags[name] {
					sb.WriteByte(' ')
				}
			}
		})
	}
	walk(sel)
	return sb.String()
}

// headingText returns the heading's text without the brackets and trailing
// full stop some documents put around headings.
func headingText(sel *goquery.Selection) string {
	text := strings.Join(strings.Fields(sel.Text()), " ")
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	text = strings.TrimSuffix(text, ".")
	return text
}

// nestedItems returns the list items of lists nested in sel, in document
// order, each followed by the items nested below it.
func nestedItems(sel *goquery.Selection) []*goquery.Selection {
	var items []*goquery.Selection
	sel.ChildrenFiltered("ol, ul").Each(func(_ int, list *goquery.Selection) {
		list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, li)
			items = append(items, nestedItems(li)...)
		})
	})
	return items
}

// digits returns the decimal digits in s.
func digits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
