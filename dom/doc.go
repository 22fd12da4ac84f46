// Package dom provides small helpers for locating, building, and mutating
// golang.org/x/net/html node trees.
//
// The helpers cover the handful of operations the shadow scaffold needs:
// id lookup ([FindByID]), element construction ([NewElement]), positional
// insertion ([InsertBefore], [InsertAfter], [Append]), text upsert
// ([SetText], [TextContent]), and serialization ([RenderString]).
//
// Nothing here is specific to accessibility regions; the package knows only
// about nodes, attributes, and document order.
package dom
