// Package region defines the four accessibility regions of a canvas shadow,
// the deterministic id scheme that addresses their markup, and the per-canvas
// store of node handles.
//
// # Regions
//
// Every canvas has up to four shadow regions:
//
//   - [FallbackDescription] - hidden whole-canvas description paragraph
//   - [FallbackTable] - hidden per-element description table
//   - [LabelDescription] - visible whole-canvas caption paragraph
//   - [LabelTable] - visible per-element caption table
//
// Fallback regions live inside the canvas element and are exposed only to
// assistive technology; label regions are rendered as visible captions
// adjacent to the canvas.
//
// # Identity
//
// Internally, nodes are addressed by (region, key) handles held in a
// [Store]. String ids exist only at the markup boundary; the id derivation
// functions in this package are the single place they are generated, so the
// scheme stays stable across refreshes for CSS selectors and assistive
// technology keyed on it.
package region
