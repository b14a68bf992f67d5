// Package goquery builds keytopics pages from raw HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/keytopics"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Parser implements keytopics.Parser at compile time.
var _ keytopics.Parser = (*Parser)(nil)

// removedAtoms are replaced by a single space before extraction.
// They contribute markup but no prose.
var removedAtoms = map[atom.Atom]bool{
	atom.Script: true,
	atom.Link:   true,
	atom.Style:  true,
}

// unwrappedAtoms are replaced by their children so inline formatting does
// not lower the density of the paragraph containing it.
var unwrappedAtoms = map[atom.Atom]bool{
	atom.B:      true,
	atom.I:      true,
	atom.U:      true,
	atom.Strong: true,
	atom.A:      true,
}

// Parser parses HTML into a keytopics.Page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse cleans rawHTML and extracts the page fields and document tree.
func (p *Parser) Parse(rawHTML string) (*keytopics.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, keytopics.Errorf(keytopics.EPARSE, "unable to parse the downloaded content: %v", err)
	}

	clean(doc.Selection)

	return &keytopics.Page{
		HTML:        rawHTML,
		Title:       Title(doc),
		Keywords:    MetaContent(doc, "keywords"),
		Description: MetaContent(doc, "description"),
		Abstract:    MetaContent(doc, "abstract"),
		Headers:     Headers(doc),
		Root:        NewNode(doc.Selection),
	}, nil
}

// clean removes noise elements and unwraps inline formatting in place.
func clean(sel *goquery.Selection) {
	var removed, unwrapped []*html.Node
	for _, root := range sel.Nodes {
		walk(root, func(n *html.Node) {
			if n.Type != html.ElementNode {
				return
			}
			switch {
			case removedAtoms[n.DataAtom]:
				removed = append(removed, n)
			case unwrappedAtoms[n.DataAtom]:
				unwrapped = append(unwrapped, n)
			}
		})
	}

	for _, n := range removed {
		replaceWithSpace(n)
	}
	for _, n := range unwrapped {
		unwrap(n)
	}
}

// walk calls fn for n and its descendants in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func replaceWithSpace(n *html.Node) {
	if n.Parent == nil {
		return
	}
	n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: " "}, n)
	n.Parent.RemoveChild(n)
}

// unwrap moves the children of n into its parent and removes n.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}
