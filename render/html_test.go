package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/mode"
	"github.com/slitviz/slitviz/optics"
)

func testParams() *entity.Parameters {
	p := entity.Default()
	p.GridSize = 32
	return p
}

func testField(p *entity.Parameters) *optics.Field {
	if p.Mode == mode.DoubleSlit {
		return optics.DoubleSlit(p.Wavelength, p.SlitSeparation, p.ScreenDistance, p.GridSize)
	}
	return optics.SingleSlit(p.Wavelength, p.SlitWidth, p.ScreenDistance, p.GridSize)
}

func TestHTML(t *testing.T) {
	p := testParams()
	var buf bytes.Buffer
	if err := HTML(&buf, testField(p), p); err != nil {
		t.Fatalf("HTML() = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Single-Slit Diffraction Pattern",
		"Central intensity profile",
		"echarts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestHTMLDoubleSlitTitles(t *testing.T) {
	p := testParams()
	p.Mode = mode.DoubleSlit
	var buf bytes.Buffer
	if err := HTML(&buf, testField(p), p); err != nil {
		t.Fatalf("HTML() = %v", err)
	}
	if !strings.Contains(buf.String(), "Double-Slit Interference Pattern") {
		t.Error("output does not contain the double-slit title")
	}
}

func TestHTMLUnknownColormap(t *testing.T) {
	p := testParams()
	p.Colormap = "nope"
	var buf bytes.Buffer
	if err := HTML(&buf, testField(testParams()), p); err == nil {
		t.Error("HTML() = nil, want error")
	}
}

func TestHeatmapStride(t *testing.T) {
	tests := []struct{ n, want int }{
		{2, 1},
		{160, 1},
		{161, 2},
		{320, 2},
		{321, 3},
		{500, 4},
		{1000, 7},
	}
	for _, tt := range tests {
		if got := heatmapStride(tt.n); got != tt.want {
			t.Errorf("heatmapStride(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNormalizedAxis(t *testing.T) {
	axis := normalizedAxis(5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i, v := range want {
		if axis[i] != v {
			t.Errorf("axis[%d] = %v, want %v", i, axis[i], v)
		}
	}
}
