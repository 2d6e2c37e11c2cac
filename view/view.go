// Package view opens an interactive window that renders the intensity
// pattern live and lets the user adjust the optical parameters with the
// keyboard.
package view

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/mode"
	"github.com/slitviz/slitviz/optics"
	"github.com/slitviz/slitviz/render"
)

// windowSide is the on-screen window size. The pattern itself is rendered
// at grid resolution and scaled by ebiten.
const windowSide = 640

// Selectable parameters, cycled with the up and down arrows.
const (
	selWavelength = iota
	selSlit
	selDistance
	selCount
)

type viewer struct {
	params      *entity.Parameters
	cmaps       []string
	cmapIdx     int
	selected    int
	field       *optics.Field
	frameBuffer []byte
	dirty       bool
}

// Run opens the window for the given parameters and blocks until the user
// quits. Left and right arrows step the selected parameter, up and down
// change the selection, tab switches between single and double slit, C
// cycles the colormap and escape closes the window.
func Run(params *entity.Parameters) error {
	v := &viewer{
		params:      params,
		cmaps:       render.Names(),
		frameBuffer: make([]byte, params.GridSize*params.GridSize*4),
		dirty:       true,
	}
	for i, name := range v.cmaps {
		if name == params.Colormap {
			v.cmapIdx = i
		}
	}
	// Unknown names fall back to the first colormap.
	params.Colormap = v.cmaps[v.cmapIdx]

	log.WithFields(log.Fields{
		"mode": params.Mode,
		"grid": params.GridSize,
	}).Info("Viewer opened")

	ebiten.SetWindowSize(windowSide, windowSide)
	ebiten.SetWindowTitle("slitviz")
	return ebiten.RunGame(v)
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.params.Mode == mode.SingleSlit {
			v.params.Mode = mode.DoubleSlit
		} else {
			v.params.Mode = mode.SingleSlit
		}
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.cmapIdx = (v.cmapIdx + 1) % len(v.cmaps)
		v.params.Colormap = v.cmaps[v.cmapIdx]
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.selected = (v.selected + selCount - 1) % selCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.selected = (v.selected + 1) % selCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.adjust(+1)
	}
	if v.dirty {
		v.recompute()
	}
	return nil
}

func (v *viewer) adjust(dir float64) {
	p := v.params
	switch v.selected {
	case selWavelength:
		p.Wavelength = clamp(p.Wavelength+dir*entity.WavelengthStep, entity.MinWavelength, entity.MaxWavelength)
	case selSlit:
		if p.Mode == mode.DoubleSlit {
			p.SlitSeparation = clamp(p.SlitSeparation+dir*entity.SeparationStep, entity.MinSeparation, entity.MaxSeparation)
		} else {
			p.SlitWidth = clamp(p.SlitWidth+dir*entity.SlitWidthStep, entity.MinSlitWidth, entity.MaxSlitWidth)
		}
	case selDistance:
		p.ScreenDistance = clamp(p.ScreenDistance+dir*entity.DistanceStep, entity.MinDistance, entity.MaxDistance)
	}
	v.dirty = true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (v *viewer) recompute() {
	p := v.params
	if p.Mode == mode.DoubleSlit {
		v.field = optics.DoubleSlit(p.Wavelength, p.SlitSeparation, p.ScreenDistance, p.GridSize)
	} else {
		v.field = optics.SingleSlit(p.Wavelength, p.SlitWidth, p.ScreenDistance, p.GridSize)
	}
	cm, _ := render.ByName(p.Colormap)

	// Row 0 of the field is the bottom of the screen.
	n := v.field.N()
	for i := 0; i < n; i++ {
		row := v.field.Row(i)
		y := n - 1 - i
		for j, val := range row {
			c := cm.At(val)
			idx := (y*n + j) * 4
			v.frameBuffer[idx] = c.R
			v.frameBuffer[idx+1] = c.G
			v.frameBuffer[idx+2] = c.B
			v.frameBuffer[idx+3] = 0xff
		}
	}
	v.dirty = false
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.frameBuffer)

	p := v.params
	marks := [selCount]string{" ", " ", " "}
	marks[v.selected] = ">"
	slitLine := fmt.Sprintf("%s slit width %.1f um\n", marks[selSlit], p.SlitWidth)
	if p.Mode == mode.DoubleSlit {
		slitLine = fmt.Sprintf("%s slit separation %.1f um\n", marks[selSlit], p.SlitSeparation)
	}

	debugInfo := fmt.Sprintf("%s slit  [tab mode, c colormap, esc quit]\n", p.Mode)
	debugInfo += fmt.Sprintf("%s wavelength %.0f nm\n", marks[selWavelength], p.Wavelength)
	debugInfo += slitLine
	debugInfo += fmt.Sprintf("%s screen distance %.0f mm\n", marks[selDistance], p.ScreenDistance)
	debugInfo += fmt.Sprintf("  colormap %s\n", p.Colormap)
	debugInfo += fmt.Sprintf("FPS: %0.4g\n", ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, debugInfo)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.params.GridSize, v.params.GridSize
}
