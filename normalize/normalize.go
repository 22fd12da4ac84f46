package normalize

import (
	"errors"
)

// ErrReservedValue is returned when description content equals one of the
// mode keywords. Comparison is case-sensitive: "Label" is ordinary text.
var ErrReservedValue = errors.New("normalize: text is a reserved mode keyword")

// reserved reports whether s collides with a mode keyword.
func reserved(s string) bool {
	return s == "label" || s == "fallback"
}

// Description canonicalizes whole-canvas caption text. A terminating "." is
// appended unless the text already ends with sentence punctuation
// (. ; , ? !). Idempotent.
func Description(text string) (string, error) {
	if reserved(text) {
		return "", ErrReservedValue
	}
	if text == "" {
		return "", nil
	}
	switch text[len(text)-1] {
	case '.', ';', ',', '?', '!':
		return text, nil
	}
	return text + ".", nil
}

// ElementName canonicalizes an element name for rendering in a name cell.
// A trailing . ; or , is replaced with ":"; otherwise ":" is appended unless
// the name already ends with one. Idempotent.
func ElementName(name string) (string, error) {
	if reserved(name) {
		return "", ErrReservedValue
	}
	if name == "" {
		return "", nil
	}
	switch name[len(name)-1] {
	case '.', ';', ',':
		return name[:len(name)-1] + ":", nil
	case ':':
		return name, nil
	}
	return name + ":", nil
}
