package umbra

import (
	"strings"
)

// WarningCode classifies non-fatal conditions encountered while describing.
type WarningCode int

const (
	// WarnEmptyText means a describe call carried empty or blank content
	// and was ignored.
	WarnEmptyText WarningCode = iota

	// WarnDetachedCanvas means the canvas element could not be located and
	// the call had no effect.
	WarnDetachedCanvas

	// WarnUnanchoredCanvas means the canvas element has no parent, so a
	// requested visible caption had nowhere to attach and was skipped.
	WarnUnanchoredCanvas
)

// Warning records a non-fatal issue. Accessibility output is decorative to
// the primary rendering pipeline, so these conditions never fail a call;
// they accumulate on the Describer instead.
type Warning struct {
	Code    WarningCode
	Message string
}

// FormatWarnings formats warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
