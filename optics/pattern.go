package optics

import "math"

// SingleSlit computes the Fraunhofer diffraction pattern of a slit of the
// given width, normalized so the brightest cell equals 1. The wavelength is
// in nanometres, the slit width in micrometres and the screen distance in
// millimetres. The returned field is gridSize by gridSize.
func SingleSlit(wavelengthNM, slitWidthUM, screenDistanceMM float64, gridSize int) *Field {
	grid := NewGrid(wavelengthNM, screenDistanceMM, gridSize)
	intensity := NewField(gridSize)
	stripeRows(gridSize, func(i int) {
		sin := grid.SinTheta.Row(i)
		row := intensity.Row(i)
		for j, s := range sin {
			beta := math.Pi * slitWidthUM * s / grid.WavelengthUM
			if beta == 0 {
				// sinc limit at the pattern center
				row[j] = 1
				continue
			}
			sb := math.Sin(beta) / beta
			row[j] = sb * sb
		}
	})
	intensity.normalizeMax()
	return intensity
}

// DoubleSlit computes the interference pattern of two ideal point slits
// separated by the given distance in micrometres, normalized like
// SingleSlit. Single-slit envelope modulation is deliberately left out.
func DoubleSlit(wavelengthNM, slitSeparationUM, screenDistanceMM float64, gridSize int) *Field {
	grid := NewGrid(wavelengthNM, screenDistanceMM, gridSize)
	intensity := NewField(gridSize)
	stripeRows(gridSize, func(i int) {
		sin := grid.SinTheta.Row(i)
		row := intensity.Row(i)
		for j, s := range sin {
			phase := math.Pi * slitSeparationUM * s / grid.WavelengthUM
			c := math.Cos(phase)
			row[j] = c * c
		}
	})
	intensity.normalizeMax()
	return intensity
}
