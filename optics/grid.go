// Package optics computes slit diffraction and interference intensity
// fields on a square screen patch using the Fraunhofer small-angle
// approximation.
package optics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	nmPerUM = 1000.0 // nanometres per micrometre
	umPerMM = 1000.0 // micrometres per millimetre

	// maxSinTheta bounds the small-angle term away from grazing incidence.
	maxSinTheta = 0.99
)

// Grid holds the per-cell small-angle sine shared by both slit models.
// All geometry is done in micrometres.
type Grid struct {
	SinTheta     *Field
	WavelengthUM float64
}

// NewGrid samples a centred square screen patch as wide as the screen
// distance itself, n points per axis, and stores sin theta = r/L for each
// cell, clipped to [-maxSinTheta, maxSinTheta]. Panics if n < 2.
func NewGrid(wavelengthNM, screenDistanceMM float64, n int) Grid {
	screenUM := screenDistanceMM * umPerMM
	half := 0.5 * screenUM

	axis := make([]float64, n)
	floats.Span(axis, -half, half)

	sinTheta := NewField(n)
	stripeRows(n, func(i int) {
		x2 := axis[i] * axis[i]
		row := sinTheta.Row(i)
		for j, y := range axis {
			r := math.Sqrt(x2 + y*y)
			row[j] = math.Min(maxSinTheta, math.Max(-maxSinTheta, r/screenUM))
		}
	})

	return Grid{
		SinTheta:     sinTheta,
		WavelengthUM: wavelengthNM / nmPerUM,
	}
}
