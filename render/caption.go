package render

import (
	"fmt"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/mode"
)

const pageTitle = "Wave Interference and Diffraction Visualizer"

func title(p *entity.Parameters) string {
	if p.Mode == mode.DoubleSlit {
		return "Double-Slit Interference Pattern"
	}
	return "Single-Slit Diffraction Pattern"
}

func description(p *entity.Parameters) string {
	if p.Mode == mode.DoubleSlit {
		return "Bright fringes occur where waves constructively interfere, " +
			"dark fringes where they destructively interfere. " +
			"Closer slits produce wider fringe spacing."
	}
	return "The central maximum is bright with progressively weaker " +
		"secondary maxima. Narrower slits produce wider diffraction patterns."
}

func formula(p *entity.Parameters) string {
	if p.Mode == mode.DoubleSlit {
		return "I = I₀ cos²(π d sinθ / λ)"
	}
	return "I = I₀ (sin β / β)², β = π a sinθ / λ"
}

// settings is the one line parameter summary used on captions. Only ASCII
// so it also renders with the bitmap caption font.
func settings(p *entity.Parameters) string {
	if p.Mode == mode.DoubleSlit {
		return fmt.Sprintf("wavelength %.0f nm | slit separation %.1f um | screen distance %.0f mm",
			p.Wavelength, p.SlitSeparation, p.ScreenDistance)
	}
	return fmt.Sprintf("wavelength %.0f nm | slit width %.1f um | screen distance %.0f mm",
		p.Wavelength, p.SlitWidth, p.ScreenDistance)
}
