package umbra

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/umbra/dom"
	"github.com/tsawler/umbra/normalize"
	"github.com/tsawler/umbra/region"
	"github.com/tsawler/umbra/scaffold"
)

// Describer maintains the accessibility shadow of one canvas. It owns the
// per-canvas store of node handles, so repeated calls upsert content in
// place rather than re-creating structure.
//
// A Describer is bound to a single logical thread of control; calls must
// arrive sequentially and the final state always reflects the most recent
// call (last write wins per element key).
type Describer struct {
	root     *html.Node
	canvasID string
	store    *region.Store
	builder  *scaffold.Builder
	warnings []Warning
}

// NewDescriber returns a Describer for the canvas addressed by canvasID
// under root. The canvas element need not exist yet; calls made while it is
// absent are recorded as warnings and have no effect.
func NewDescriber(root *html.Node, canvasID string) *Describer {
	return &Describer{
		root:     root,
		canvasID: canvasID,
		store:    region.NewStore(),
		builder:  scaffold.New(root),
	}
}

// CanvasID returns the canvas id this describer is bound to.
func (d *Describer) CanvasID() string {
	return d.canvasID
}

// Warnings returns the non-fatal issues accumulated so far.
func (d *Describer) Warnings() []Warning {
	return append([]Warning(nil), d.warnings...)
}

func (d *Describer) warn(code WarningCode, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// DescribeCanvas sets the whole-canvas description. The text is normalized
// to end with sentence punctuation. Empty or blank text is ignored (a
// warning, not an error, so absent captions stay tolerated); passing the
// literal "label" or "fallback" is a hard error since it almost always
// means swapped arguments.
//
// With no mode argument only the hidden fallback region is updated; with
// [Label] the visible caption next to the canvas is updated as well.
func (d *Describer) DescribeCanvas(text string, mode ...Mode) error {
	if strings.TrimSpace(text) == "" {
		d.warn(WarnEmptyText, "canvas %s: empty description ignored", d.canvasID)
		return nil
	}

	normalized, err := normalize.Description(text)
	if err != nil {
		return fmt.Errorf("umbra: canvas description: %w", err)
	}

	if ok := d.upsertDescription(region.FallbackDescription, normalized); !ok {
		return nil
	}
	if modeOf(mode) == Label {
		d.upsertDescription(region.LabelDescription, normalized)
	}
	return nil
}

// DescribeElement sets the description of a named sub-part of the canvas,
// rendered as a table row with a name cell and a text cell. The row is keyed
// by a sanitized form of name; distinct names that sanitize alike share a
// row and the later call wins.
//
// Mode semantics match [Describer.DescribeCanvas].
func (d *Describer) DescribeElement(name, text string, mode ...Mode) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		d.warn(WarnEmptyText, "canvas %s: empty element description ignored", d.canvasID)
		return nil
	}

	normName, err := normalize.ElementName(name)
	if err != nil {
		return fmt.Errorf("umbra: element name: %w", err)
	}
	normText, err := normalize.Description(text)
	if err != nil {
		return fmt.Errorf("umbra: element description: %w", err)
	}
	key := normalize.Key(name)

	if ok := d.upsertRow(region.FallbackTable, key, normName, normText); !ok {
		return nil
	}
	if modeOf(mode) == Label {
		d.upsertRow(region.LabelTable, key, normName, normText)
	}
	return nil
}

// resolve returns the leaf node for (r, key), consulting the store before
// the scaffold. On a detached canvas it records a warning and returns false;
// nothing is cached in that case, so a later call retries cleanly.
func (d *Describer) resolve(r region.Region, key string) (*html.Node, bool) {
	if n, ok := d.store.Get(r, key); ok {
		return n, true
	}
	n, err := d.builder.Resolve(d.canvasID, r, key)
	if err != nil {
		switch {
		case errors.Is(err, scaffold.ErrDetachedCanvas):
			d.warn(WarnDetachedCanvas, "canvas %s: element not found, description skipped", d.canvasID)
		case errors.Is(err, scaffold.ErrUnanchoredCanvas):
			d.warn(WarnUnanchoredCanvas, "canvas %s: no parent to anchor a label, caption skipped", d.canvasID)
		}
		return nil, false
	}
	d.store.Set(r, key, n)
	return n, true
}

func (d *Describer) upsertDescription(r region.Region, text string) bool {
	leaf, ok := d.resolve(r, "")
	if !ok {
		return false
	}
	dom.SetText(leaf, text)
	return true
}

func (d *Describer) upsertRow(r region.Region, key, name, text string) bool {
	row, ok := d.resolve(r, key)
	if !ok {
		return false
	}
	setRowContent(row, name, text)
	return true
}

// setRowContent upserts the two cells of an element row. When the rendered
// cells already match, the row is left untouched.
func setRowContent(row *html.Node, name, text string) {
	if th := row.FirstChild; th != nil && th.Type == html.ElementNode && th.Data == "th" {
		if td := th.NextSibling; td != nil && td.Type == html.ElementNode && td.Data == "td" &&
			td.NextSibling == nil &&
			dom.TextContent(th) == name && dom.TextContent(td) == text {
			return
		}
	}
	for row.FirstChild != nil {
		row.RemoveChild(row.FirstChild)
	}
	th := dom.NewElement("th", "scope", "row")
	dom.Append(th, &html.Node{Type: html.TextNode, Data: name})
	td := dom.NewElement("td")
	dom.Append(td, &html.Node{Type: html.TextNode, Data: text})
	dom.Append(row, th)
	dom.Append(row, td)
}

// Render serializes the document this describer mutates. It is a
// convenience for hosts that emit markup after each update cycle.
func (d *Describer) Render() (string, error) {
	return dom.RenderString(d.root)
}
