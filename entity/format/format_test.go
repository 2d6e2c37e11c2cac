package format

import "testing"

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		text string
		want Format
		ok   bool
	}{
		{"html", HTML, true},
		{"png", Png, true},
		{"csv", Csv, true},
		{"xlsx", Xlsx, true},
		{"gif", Gif, true},
		{"svg", 0, false},
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

func TestExt(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "html"},
		{Png, "png"},
		{Csv, "csv"},
		{Xlsx, "xlsx"},
		{Gif, "gif"},
	}
	for _, tt := range tests {
		if got := tt.format.Ext(); got != tt.want {
			t.Errorf("%v.Ext() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
