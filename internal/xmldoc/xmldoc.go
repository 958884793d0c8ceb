// Package xmldoc parses game client XML into a generic element tree.
//
// The client data formats share no schema, so documents are decoded
// into untyped nodes and inspected structurally: classification and
// extraction both work by looking for known element shapes anywhere in
// the tree.
package xmldoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Node is one element in a parsed document.
type Node struct {
	// XMLName is the element name.
	XMLName xml.Name

	// Attrs are the element's attributes.
	Attrs []xml.Attr `xml:",any,attr"`

	// Nodes are the child elements in document order.
	Nodes []Node `xml:",any"`

	// Text is the element's character data. Whitespace is preserved;
	// use ChildText for trimmed access.
	Text string `xml:",chardata"`
}

// Parse decodes a UTF-8 XML document from r.
func Parse(r io.Reader) (*Node, error) {
	var root Node
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &root, nil
}

// ParseFile decodes the document at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Find returns the first descendant element with the given local name,
// in document order, or nil. The receiver itself is not considered.
func (n *Node) Find(name string) *Node {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given local name,
// in document order.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			out = append(out, child)
		}
		out = append(out, child.FindAll(name)...)
	}
	return out
}

// Child returns the first direct child with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first direct child with the
// given local name. The second result is false when the child is absent
// or its text is empty.
func (n *Node) ChildText(name string) (string, bool) {
	child := n.Child(name)
	if child == nil {
		return "", false
	}
	text := strings.TrimSpace(child.Text)
	return text, text != ""
}

// Attr returns the value of the named attribute. The second result is
// false when the attribute is absent.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
