package umbra

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCanvasID(t *testing.T) {
	a := NewCanvasID()
	b := NewCanvasID()

	if a == b {
		t.Error("NewCanvasID() returned the same id twice")
	}
	if !strings.HasPrefix(a, "umbra-") {
		t.Errorf("NewCanvasID() = %q, want umbra- prefix", a)
	}
	// Derived markup ids concatenate suffixes onto the canvas id, so it
	// must itself be usable as an HTML id.
	if strings.ContainsAny(a, " \t\n") {
		t.Errorf("NewCanvasID() = %q contains whitespace", a)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Fallback, "Fallback"},
		{Label, "Label"},
		{Mode(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.m), got, tt.want)
		}
	}
}

func TestModeOf(t *testing.T) {
	if modeOf(nil) != Fallback {
		t.Error("omitted mode must default to Fallback")
	}
	if modeOf([]Mode{Label}) != Label {
		t.Error("explicit Label mode not honored")
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	ws := []Warning{
		{Code: WarnEmptyText, Message: "one"},
		{Code: WarnDetachedCanvas, Message: "two"},
	}
	if got := FormatWarnings(ws); got != "one; two" {
		t.Errorf("FormatWarnings() = %q, want \"one; two\"", got)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must() = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
