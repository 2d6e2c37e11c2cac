package render

import (
	"image/color"
	"math"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"hot", "viridis", "spectrum"} {
		c, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) = %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("Name() = %q, want %q", c.Name(), name)
		}
	}
	if _, err := ByName("plasma"); err == nil {
		t.Error(`ByName("plasma") = nil, want error`)
	}
}

func TestNames(t *testing.T) {
	want := []string{"hot", "spectrum", "viridis"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestColormapEndpoints(t *testing.T) {
	tests := []struct {
		name string
		dark color.RGBA
		full color.RGBA
	}{
		{"hot", color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}},
		{"viridis", color.RGBA{68, 1, 84, 255}, color.RGBA{255, 223, 4, 255}},
		{"spectrum", color.RGBA{0, 0, 0, 255}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ByName(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.At(0); got != tt.dark {
				t.Errorf("At(0) = %v, want %v", got, tt.dark)
			}
			if got := c.At(1); got != tt.full {
				t.Errorf("At(1) = %v, want %v", got, tt.full)
			}
		})
	}
}

func TestColormapIndexClamps(t *testing.T) {
	c, err := ByName("hot")
	if err != nil {
		t.Fatal(err)
	}
	if c.At(-0.5) != c.At(0) {
		t.Error("At(-0.5) must clamp to At(0)")
	}
	if c.At(42) != c.At(1) {
		t.Error("At(42) must clamp to At(1)")
	}
	if c.At(math.NaN()) != c.At(0) {
		t.Error("At(NaN) must map to the dark end")
	}
}

func TestHotBrightnessIsMonotonic(t *testing.T) {
	c, err := ByName("hot")
	if err != nil {
		t.Fatal(err)
	}
	prev := -1
	for i := 0; i <= 100; i++ {
		col := c.At(float64(i) / 100)
		sum := int(col.R) + int(col.G) + int(col.B)
		if sum < prev {
			t.Fatalf("brightness decreased at v=%v", float64(i)/100)
		}
		prev = sum
	}
}

func TestPaletteSize(t *testing.T) {
	c, err := ByName("viridis")
	if err != nil {
		t.Fatal(err)
	}
	if p := c.Palette(); len(p) != 256 {
		t.Fatalf("len(Palette()) = %d, want 256", len(p))
	}
}

func TestStops(t *testing.T) {
	c, err := ByName("hot")
	if err != nil {
		t.Fatal(err)
	}
	s := c.stops(16)
	if len(s) != 16 {
		t.Fatalf("len(stops(16)) = %d, want 16", len(s))
	}
	if s[0] != "#000000" {
		t.Errorf("s[0] = %q, want #000000", s[0])
	}
	if s[15] != "#ffffff" {
		t.Errorf("s[15] = %q, want #ffffff", s[15])
	}
}
