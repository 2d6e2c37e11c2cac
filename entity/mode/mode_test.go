package mode

import "testing"

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		text string
		want Mode
		ok   bool
	}{
		{"single", SingleSlit, true},
		{"s", SingleSlit, true},
		{"double", DoubleSlit, true},
		{"d", DoubleSlit, true},
		{"triple", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := UnmarshalText(tt.text)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", tt.text, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("UnmarshalText(%q) = %v, want error", tt.text, got)
		}
	}
}

func TestString(t *testing.T) {
	if got := SingleSlit.String(); got != "single" {
		t.Errorf("SingleSlit.String() = %q", got)
	}
	if got := DoubleSlit.String(); got != "double" {
		t.Errorf("DoubleSlit.String() = %q", got)
	}
}
