package markup

import "strings"

// Node is one element of a marl program tree. A node carries either raw
// text or an ordered list of child nodes, never both.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// El constructs an interior node. Tags are case-insensitive identifiers
// and are normalized to lower case on construction.
func El(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Tag:      strings.ToLower(tag),
		Attrs:    attrs,
		Children: children,
	}
}

// Leaf constructs a text-only node.
func Leaf(tag, text string) *Node {
	return &Node{Tag: strings.ToLower(tag), Text: text}
}

// Attrs builds an attribute map from alternating key/value pairs.
func Attrs(pairs ...string) map[string]string {
	attrs := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[strings.ToLower(pairs[i])] = pairs[i+1]
	}
	return attrs
}

// HasChildren reports whether the node is an interior node.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Attr returns the named attribute, or fallback when it is absent.
func (n *Node) Attr(name, fallback string) string {
	if n.Attrs == nil {
		return fallback
	}
	if v, ok := n.Attrs[strings.ToLower(name)]; ok {
		return v
	}
	return fallback
}
