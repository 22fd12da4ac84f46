// Package scaffold builds the minimal HTML structure backing a canvas's
// accessibility regions.
//
// The single entry point, [Builder.Resolve], follows a locate-before-create
// discipline: the expected node is first looked up by its deterministic id,
// and construction happens only when the lookup misses. Resolving the same
// (canvas, region, key) twice therefore never duplicates structure.
//
// # Placement
//
// Fallback containers are created inside the canvas element's own subtree;
// label containers are created as a DOM sibling immediately after the canvas
// element. When an external accessible-output region already occupies the
// slot, the new container is inserted immediately before it instead — the
// external region is an anchor, never something this package owns or edits.
//
// Inside a container, the whole-canvas description paragraph always precedes
// the element table in document order, whichever of the two is created
// first. Order is established at insertion and never reshuffled.
package scaffold
