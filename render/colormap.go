package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/crazy3lf/colorconv"
)

const lutSize = 256

// Colormap maps normalized intensity in [0, 1] onto a fixed 256-entry
// color table.
type Colormap struct {
	name string
	lut  [lutSize]color.RGBA
}

func (c *Colormap) Name() string {
	return c.name
}

// At returns the color for v, clamping v into [0, 1].
func (c *Colormap) At(v float64) color.RGBA {
	return c.lut[c.index(v)]
}

func (c *Colormap) index(v float64) int {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return lutSize - 1
	}
	return int(v * lutSize)
}

// Palette returns the table as a 256-color palette for paletted images.
func (c *Colormap) Palette() color.Palette {
	p := make(color.Palette, lutSize)
	for i, rgba := range c.lut {
		p[i] = rgba
	}
	return p
}

// stops samples n evenly spaced CSS hex colors for chart gradients.
func (c *Colormap) stops(n int) []string {
	out := make([]string, n)
	for i := range out {
		rgba := c.lut[i*(lutSize-1)/(n-1)]
		out[i] = fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}
	return out
}

var colormaps = map[string]*Colormap{
	"hot":      build("hot", hot),
	"viridis":  build("viridis", viridis),
	"spectrum": build("spectrum", spectrum),
}

func build(name string, f func(v float64) color.RGBA) *Colormap {
	c := &Colormap{name: name}
	for i := range c.lut {
		c.lut[i] = f(float64(i) / (lutSize - 1))
	}
	return c
}

// ByName returns the named colormap.
func ByName(name string) (*Colormap, error) {
	c, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap: %q", name)
	}
	return c, nil
}

// Names lists the available colormaps in stable order.
func Names() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hot ramps black through red and yellow to white.
func hot(v float64) color.RGBA {
	return color.RGBA{
		R: scale255(v / 0.365),
		G: scale255((v - 0.365) / 0.381),
		B: scale255((v - 0.746) / 0.254),
		A: 255,
	}
}

var viridisAnchors = [5][3]float64{
	{68, 1, 84},
	{69, 56, 135},
	{21, 149, 128},
	{129, 200, 35},
	{255, 223, 4},
}

// viridis interpolates between fixed anchor colors of the perceptually
// uniform purple-green-yellow map.
func viridis(v float64) color.RGBA {
	t := clamp01(v) * 4
	seg := int(t)
	if seg > 3 {
		seg = 3
	}
	f := t - float64(seg)
	lo, hi := viridisAnchors[seg], viridisAnchors[seg+1]
	return color.RGBA{
		R: uint8(lo[0] + (hi[0]-lo[0])*f),
		G: uint8(lo[1] + (hi[1]-lo[1])*f),
		B: uint8(lo[2] + (hi[2]-lo[2])*f),
		A: 255,
	}
}

// spectrum sweeps hue from deep blue to red while brightness follows the
// intensity, with a square root boost for the dim fringes.
func spectrum(v float64) color.RGBA {
	v = clamp01(v)
	r, g, b, _ := colorconv.HSVToRGB(240*(1-v), 1, math.Sqrt(v))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func scale255(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
