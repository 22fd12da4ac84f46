package normalize

import (
	"errors"
	"testing"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text gains period", "Blue square", "Blue square."},
		{"existing period kept", "Blue square.", "Blue square."},
		{"exclamation kept", "Blue square!", "Blue square!"},
		{"question mark kept", "Really?", "Really?"},
		{"semicolon kept", "One; two;", "One; two;"},
		{"comma kept", "a, b,", "a, b,"},
		{"empty stays empty", "", ""},
		{"case-sensitive reserved check passes Label", "Label", "Label."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Description(tt.in)
			if err != nil {
				t.Fatalf("Description(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Description(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescription_Idempotent(t *testing.T) {
	once, err := Description("Red circle")
	if err != nil {
		t.Fatalf("Description() failed: %v", err)
	}
	twice, err := Description(once)
	if err != nil {
		t.Fatalf("Description() failed on normalized input: %v", err)
	}
	if twice != once {
		t.Errorf("Description not idempotent: %q then %q", once, twice)
	}
}

func TestDescription_Reserved(t *testing.T) {
	for _, in := range []string{"label", "fallback"} {
		_, err := Description(in)
		if !errors.Is(err, ErrReservedValue) {
			t.Errorf("Description(%q) error = %v, want ErrReservedValue", in, err)
		}
	}
}

func TestElementName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name gains colon", "Circle", "Circle:"},
		{"trailing comma replaced", "Circle,", "Circle:"},
		{"trailing period replaced", "Circle.", "Circle:"},
		{"trailing semicolon replaced", "Circle;", "Circle:"},
		{"existing colon kept", "Circle:", "Circle:"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElementName(tt.in)
			if err != nil {
				t.Fatalf("ElementName(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ElementName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestElementName_Reserved(t *testing.T) {
	for _, in := range []string{"label", "fallback"} {
		_, err := ElementName(in)
		if !errors.Is(err, ErrReservedValue) {
			t.Errorf("ElementName(%q) error = %v, want ErrReservedValue", in, err)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"letters pass through", "Sun", "Sun"},
		{"punctuation stripped", "Sun!", "Sun"},
		{"aliasing inputs collapse", "Sun?", "Sun"},
		{"spaces kept", "Big Sun", "Big Sun"},
		{"digits kept", "Sun 2", "Sun 2"},
		{"diacritics fold to base letters", "Café", "Cafe"},
		{"symbols removed", "a&b#c", "abc"},
		{"empty in empty out", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKey_Aliasing(t *testing.T) {
	if Key("Sun!") != Key("Sun?") {
		t.Error("expected Sun! and Sun? to alias the same key")
	}
}
