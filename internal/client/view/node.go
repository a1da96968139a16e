// Package view turns card entities into Node trees and serializes them to
// HTML. Every function here is pure: equal input gives equal output.
package view

import (
	"strings"

	"golang.org/x/net/html"
)

// Node is an element (Tag set) or a text node (Tag empty)
type Node struct {
	Tag      string
	Attrs    []html.Attribute
	Text     string
	Children []Node
}

// El builds an element node
func El(tag string, attrs []html.Attribute, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node
func Text(s string) Node {
	return Node{Text: s}
}

// IsText reports a text node
func (n Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of key and whether it is set
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates every text node below n in document order
func (n Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n Node) writeText(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Find returns the first node, depth first, whose class list contains name
func (n Node) Find(name string) (Node, bool) {
	if hasClass(n, name) {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Node{}, false
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func class(names string) []html.Attribute {
	return []html.Attribute{attr("class", names)}
}

func hasClass(n Node, name string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}
