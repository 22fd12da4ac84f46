// Package umbra maintains an accessible textual shadow of a visual canvas:
// a whole-canvas description and per-element descriptions, mirrored into a
// visually hidden region for screen readers and, optionally, a visible
// caption region next to the canvas.
//
// The host owns a golang.org/x/net/html document containing a canvas element
// addressable by id. umbra mutates that tree in place; the host re-renders
// it whenever convenient.
//
// Basic usage:
//
//	doc, _ := html.Parse(strings.NewReader(page))
//	d := umbra.NewDescriber(doc, "cnv1")
//	if err := d.DescribeCanvas("Red circle on a white background"); err != nil {
//	    // handle error
//	}
//	if err := d.DescribeElement("Circle", "red, centered", umbra.Label); err != nil {
//	    // handle error
//	}
//
// Calls are idempotent: repeating a description refreshes content in place
// without duplicating structure, and identical content skips the DOM write
// entirely. Non-fatal conditions (missing canvas, empty text) become silent
// no-ops recorded as warnings:
//
//	if ws := d.Warnings(); len(ws) > 0 {
//	    log.Println("Warnings:", umbra.FormatWarnings(ws))
//	}
package umbra

import (
	"github.com/google/uuid"
)

// NewCanvasID returns a fresh canvas id. Every id the shadow emits derives
// from the canvas id, so two canvases sharing one would collide; hosts that
// do not already manage unique ids can mint them here.
func NewCanvasID() string {
	return "umbra-" + uuid.NewString()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
