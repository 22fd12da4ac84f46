package dom

import (
	"golang.org/x/net/html"
)

// FindByID returns the first element in depth-first document order whose id
// attribute equals id, or nil if no such element exists.
func FindByID(root *html.Node, id string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && Attr(root, "id") == id {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindElement returns the first element with the given tag name, or nil.
func FindElement(root *html.Node, tag string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && root.Data == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of the named attribute on n, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets the named attribute on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// NewElement constructs a detached element node. Attributes are given as
// alternating key, value pairs; a trailing unpaired key is ignored.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type: html.ElementNode,
		Data: tag,
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Append adds child as the last child of parent.
func Append(parent, child *html.Node) {
	parent.AppendChild(child)
}

// InsertBefore inserts node into parent immediately before ref. A nil ref
// appends node as the last child.
func InsertBefore(parent, node, ref *html.Node) {
	if ref == nil {
		parent.AppendChild(node)
		return
	}
	parent.InsertBefore(node, ref)
}

// InsertAfter inserts node as the next sibling of ref. The ref node must be
// attached to a parent; a parentless ref leaves node detached, so callers
// needing a hard guarantee must check ref.Parent first.
func InsertAfter(ref, node *html.Node) {
	if ref.Parent == nil {
		return
	}
	if ref.NextSibling == nil {
		ref.Parent.AppendChild(node)
		return
	}
	ref.Parent.InsertBefore(node, ref.NextSibling)
}
