package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Document is a parsed marl program: the root element's children are
// the top-level nodes, and the root's attributes carry presentation
// configuration (color, font-family, font-size).
type Document struct {
	Root *Node
}

// Nodes returns the top-level program nodes in document order.
func (d *Document) Nodes() []*Node {
	if d.Root == nil {
		return nil
	}
	return d.Root.Children
}

// ParseDocument decodes a marl document from markup. The markup must
// have a single root element; every element below it becomes a Node.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("markup: document has no root element")
	}
	return &Document{Root: fromElement(root)}, nil
}

// ParseString decodes a document held in a string.
func ParseString(src string) (*Document, error) {
	return ParseDocument(strings.NewReader(src))
}

// fromElement converts one etree element. When an element has child
// elements they win and any interleaved text is dropped, preserving the
// text-or-children-never-both shape.
func fromElement(el *etree.Element) *Node {
	node := &Node{Tag: strings.ToLower(el.Tag)}
	if len(el.Attr) > 0 {
		node.Attrs = make(map[string]string, len(el.Attr))
		for _, attr := range el.Attr {
			node.Attrs[strings.ToLower(attr.Key)] = attr.Value
		}
	}
	children := el.ChildElements()
	if len(children) > 0 {
		node.Children = make([]*Node, 0, len(children))
		for _, child := range children {
			node.Children = append(node.Children, fromElement(child))
		}
		return node
	}
	node.Text = el.Text()
	return node
}
