package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// SetText replaces the children of n with a single text node containing s.
// It reports whether the tree was mutated; when the existing content already
// equals s the call is a no-op.
func SetText(n *html.Node, s string) bool {
	if n.FirstChild != nil && n.FirstChild.NextSibling == nil &&
		n.FirstChild.Type == html.TextNode && n.FirstChild.Data == s {
		return false
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return true
}

// RenderString serializes n as HTML.
func RenderString(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
