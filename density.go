package keytopics

import "strings"

// DefaultDensityThreshold is the text-to-markup ratio above which a node is
// taken whole as prose instead of being descended into.
const DefaultDensityThreshold = 0.75

// Node is a read-only view of an element in a parsed document tree.
type Node interface {
	// MarkupLen is the length of the node serialized with its tags.
	MarkupLen() int

	// TextLen is the length of the node's rendered text.
	TextLen() int

	// Text is the node's rendered text, descendants included.
	Text() string

	// Children returns the direct element children in document order.
	Children() []Node
}

// Ensure DensityExtractor implements BodyExtractor at compile time.
var _ BodyExtractor = (*DensityExtractor)(nil)

// DensityExtractor selects the prose of a page by text density.
type DensityExtractor struct {
	// Threshold overrides DefaultDensityThreshold when positive.
	Threshold float64
}

// NewDensityExtractor creates a DensityExtractor using DefaultDensityThreshold.
func NewDensityExtractor() *DensityExtractor {
	return &DensityExtractor{Threshold: DefaultDensityThreshold}
}

// ExtractBody returns the normalized dense text of page.Root.
func (e *DensityExtractor) ExtractBody(page *Page) (string, error) {
	if page == nil {
		return "", Errorf(EDOCUMENT, "no page to extract from")
	}
	return e.ExtractDenseText(page.Root)
}

// ExtractDenseText walks the tree rooted at root in pre-order. A node whose
// text length over markup length exceeds the threshold contributes its
// normalized text followed by a space, and its subtree is not visited. Any
// other node is descended into. Nodes with no markup contribute nothing.
func (e *DensityExtractor) ExtractDenseText(root Node) (string, error) {
	if root == nil {
		return "", Errorf(EDOCUMENT, "document tree is nil")
	}

	threshold := e.Threshold
	if threshold <= 0 {
		threshold = DefaultDensityThreshold
	}

	var b strings.Builder
	stack := []Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		markupLen := node.MarkupLen()
		if markupLen == 0 {
			continue
		}

		if float64(node.TextLen())/float64(markupLen) > threshold {
			b.WriteString(Normalize(node.Text()))
			b.WriteByte(' ')
			continue
		}

		// Push in reverse so the leftmost child is visited first.
		children := node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != nil {
				stack = append(stack, children[i])
			}
		}
	}
	return b.String(), nil
}
