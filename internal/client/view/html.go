package view

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DocumentTitle is the <title> of rendered documents
const DocumentTitle = "cardtable"

// HTML serializes n. Text is escaped.
func HTML(n Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(n)); err != nil {
		return "", fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return buf.String(), nil
}

// Document renders body as a complete page, optionally with Stylesheet()
// inlined in the head.
func Document(body Node, withStylesheet bool) (string, error) {
	head := El("head", nil,
		El("meta", []html.Attribute{attr("charset", "utf-8")}),
		El("title", nil, Text(DocumentTitle)),
	)
	if withStylesheet {
		head.Children = append(head.Children, El("style", nil, Text(Stylesheet())))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(toHTML(El("html", nil, head, El("body", nil, body))))

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}

func toHTML(n Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     append([]html.Attribute(nil), n.Attrs...),
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}
