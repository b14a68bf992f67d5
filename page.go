package keytopics

import "strings"

// Page holds the parsed form of a fetched web page.
type Page struct {
	URL  string
	HTML string

	// Title is the normalized page title with non-word runs collapsed.
	Title string

	// Keywords, Description and Abstract are the normalized content of the
	// matching <meta name="..."> tags, empty when absent.
	Keywords    string
	Description string
	Abstract    string

	// Headers holds the normalized text of the first h1, h2, h3 and h4, in
	// that order. Missing levels are skipped.
	Headers []string

	// Root is the document tree the density walk starts from.
	Root Node
}

// SignalText joins the title, keywords and headers with single spaces.
func (p *Page) SignalText() string {
	parts := make([]string, 0, len(p.Headers)+2)
	parts = append(parts, p.Title, p.Keywords)
	parts = append(parts, p.Headers...)
	return strings.Join(parts, " ")
}

// Parser builds a Page from raw HTML.
type Parser interface {
	// Parse returns EPARSE when the markup cannot be turned into a tree.
	Parse(html string) (*Page, error)
}

// BodyExtractor isolates the prose of a page as normalized text.
type BodyExtractor interface {
	ExtractBody(page *Page) (string, error)
}
