package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/keytopics"
)

// Ensure Node implements keytopics.Node at compile time.
var _ keytopics.Node = (*Node)(nil)

// Node adapts a single-node goquery selection to keytopics.Node.
// Lengths are counted in characters, not bytes.
type Node struct {
	sel  *goquery.Selection
	text *string
}

// NewNode wraps the first node of sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// MarkupLen returns the length of the node rendered as HTML, tags included.
// A node that cannot be rendered has no markup.
func (n *Node) MarkupLen() int {
	markup, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return 0
	}
	return utf8.RuneCountInString(markup)
}

// TextLen returns the length of the node's text.
func (n *Node) TextLen() int {
	return utf8.RuneCountInString(n.Text())
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	if n.text == nil {
		text := n.sel.Text()
		n.text = &text
	}
	return *n.text
}

// Children returns the direct element children of the node.
func (n *Node) Children() []keytopics.Node {
	children := n.sel.Children()
	nodes := make([]keytopics.Node, 0, children.Length())
	children.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &Node{sel: sel})
	})
	return nodes
}
