package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Key derives a DOM-id-safe token from an element name. The name is NFKD
// decomposed so accented letters contribute their base letter, combining
// marks are dropped, and every remaining rune that is not an ASCII letter,
// digit, or space is stripped. The input is the original caller-supplied
// name, not the output of ElementName.
//
// Key performs no collision detection: "Sun!" and "Sun?" both map to "Sun".
func Key(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range norm.NFKD.String(name) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
