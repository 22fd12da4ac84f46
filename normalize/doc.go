// Package normalize canonicalizes caller-supplied description text before it
// enters the shadow tree.
//
// Three operations are provided:
//
//   - [Description] - whole-canvas caption text (terminal punctuation)
//   - [ElementName] - element names (trailing colon)
//   - [Key] - DOM-id-safe token derived from an element name
//
// Description and ElementName reject the reserved mode keywords "label" and
// "fallback" with [ErrReservedValue]; passing one as content almost always
// means the caller swapped argument positions, and tolerating it would hide
// the mistake. Both functions are idempotent: normalizing already-normalized
// input returns it unchanged.
//
// Key performs no collision detection. Two distinct names that sanitize to
// the same token address the same table row, and the later write wins.
package normalize
