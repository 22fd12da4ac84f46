package scaffold

import (
	"errors"

	"golang.org/x/net/html"

	"github.com/tsawler/umbra/dom"
	"github.com/tsawler/umbra/region"
)

// ErrDetachedCanvas is returned when the canvas element cannot be located
// under the builder's root, typically because the host removed it.
var ErrDetachedCanvas = errors.New("scaffold: canvas element not found")

// ErrUnanchoredCanvas is returned when a label region is requested for a
// canvas element that has no parent. Label containers live as siblings of
// the canvas, so a parentless canvas offers no slot to attach one.
var ErrUnanchoredCanvas = errors.New("scaffold: canvas element has no parent to anchor a label region")

// HiddenStyle is the inline style applied to fallback containers. It keeps
// the region out of the visual layout while leaving it exposed to assistive
// technology (display:none would hide it from screen readers too).
const HiddenStyle = "position:absolute;left:-10000px;top:auto;width:1px;height:1px;overflow:hidden"

// LabelClass marks visible label containers so host CSS can target them.
const LabelClass = "umbra-label"

// HiddenClass marks fallback containers.
const HiddenClass = "umbra-hidden"

// Builder constructs shadow regions beneath a fixed document root.
type Builder struct {
	root *html.Node
}

// New returns a Builder that resolves canvases under root.
func New(root *html.Node) *Builder {
	return &Builder{root: root}
}

// Resolve locates or creates the leaf node for the given region: the
// description paragraph for description regions, or the table row for key in
// table regions. Construction either completes fully or, when the canvas
// element is missing, fails with [ErrDetachedCanvas] before any node is
// attached.
func (b *Builder) Resolve(canvasID string, r region.Region, key string) (*html.Node, error) {
	canvas := dom.FindByID(b.root, canvasID)
	if canvas == nil {
		return nil, ErrDetachedCanvas
	}

	container, err := b.container(canvas, canvasID, r)
	if err != nil {
		return nil, err
	}

	switch r {
	case region.FallbackDescription, region.LabelDescription:
		return descriptionLeaf(container, canvasID, r), nil
	default:
		table := elementTable(container, canvasID, r)
		return tableRow(table, canvasID, r, key), nil
	}
}

// container locates the region's container, creating and anchoring it on
// first use. For label regions the canvas must be anchored in a parent;
// the check runs before any node is constructed so a failed resolution
// leaves no detached structure behind.
func (b *Builder) container(canvas *html.Node, canvasID string, r region.Region) (*html.Node, error) {
	id := region.ContainerID(canvasID, r)
	if c := dom.FindByID(b.root, id); c != nil {
		return c, nil
	}

	if r.Label() {
		if canvas.Parent == nil {
			return nil, ErrUnanchoredCanvas
		}
		// The builder root may be the canvas element itself, in which
		// case the label container sits outside the root subtree and
		// the id lookup above cannot see it.
		if c := externalSibling(canvas, id); c != nil {
			return c, nil
		}
		c := dom.NewElement("div", "id", id, "class", LabelClass)
		// Anchor before an external visible output if one follows the
		// canvas, otherwise directly after the canvas element.
		if ext := externalSibling(canvas, region.AccessibleOutputID(canvasID, true)); ext != nil {
			dom.InsertBefore(canvas.Parent, c, ext)
		} else {
			dom.InsertAfter(canvas, c)
		}
		return c, nil
	}

	c := dom.NewElement("div", "id", id, "class", HiddenClass, "style", HiddenStyle)
	// Anchor before an external hidden output inside the canvas, otherwise
	// append without disturbing existing canvas content.
	if ext := externalChild(canvas, region.AccessibleOutputID(canvasID, false)); ext != nil {
		dom.InsertBefore(canvas, c, ext)
	} else {
		dom.Append(canvas, c)
	}
	return c, nil
}

// descriptionLeaf locates the description paragraph, creating it before any
// existing element table so the paragraph always precedes the table.
func descriptionLeaf(container *html.Node, canvasID string, r region.Region) *html.Node {
	id := region.LeafID(canvasID, r)
	if p := dom.FindByID(container, id); p != nil {
		return p
	}

	p := dom.NewElement("p", "id", id)
	tableRegion := region.FallbackTable
	if r.Label() {
		tableRegion = region.LabelTable
	}
	dom.InsertBefore(container, p, dom.FindByID(container, region.LeafID(canvasID, tableRegion)))
	return p
}

// elementTable locates the element table, creating it after an existing
// description paragraph when one is present.
func elementTable(container *html.Node, canvasID string, r region.Region) *html.Node {
	id := region.LeafID(canvasID, r)
	if t := dom.FindByID(container, id); t != nil {
		return t
	}

	t := dom.NewElement("table", "id", id)
	descRegion := region.FallbackDescription
	if r.Label() {
		descRegion = region.LabelDescription
	}
	if desc := dom.FindByID(container, region.LeafID(canvasID, descRegion)); desc != nil {
		dom.InsertAfter(desc, t)
	} else {
		dom.Append(container, t)
	}
	return t
}

// tableRow locates the row for key, appending a new row as the table's last
// child on first use.
func tableRow(table *html.Node, canvasID string, r region.Region, key string) *html.Node {
	id := region.RowID(canvasID, r, key)
	if row := dom.FindByID(table, id); row != nil {
		return row
	}

	row := dom.NewElement("tr", "id", id)
	dom.Append(table, row)
	return row
}

// externalChild returns the direct child of parent carrying the given id,
// or nil.
func externalChild(parent *html.Node, id string) *html.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && dom.Attr(c, "id") == id {
			return c
		}
	}
	return nil
}

// externalSibling returns the sibling following n that carries the given id,
// or nil.
func externalSibling(n *html.Node, id string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && dom.Attr(s, "id") == id {
			return s
		}
	}
	return nil
}
