package entity

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slitviz/slitviz/entity/format"
	"github.com/slitviz/slitviz/entity/mode"
)

// Recognized parameter ranges and the step each one is adjusted by.
const (
	MinWavelength = 400.0 // nm
	MaxWavelength = 700.0 // nm
	MinSlitWidth  = 0.5   // um
	MaxSlitWidth  = 10.0  // um
	MinSeparation = 1.0   // um
	MaxSeparation = 20.0  // um
	MinDistance   = 10.0  // mm
	MaxDistance   = 500.0 // mm
	MinGridSize   = 2

	WavelengthStep = 10.0
	SlitWidthStep  = 0.5
	SeparationStep = 0.5
	DistanceStep   = 10.0

	DefaultGridSize = 500
)

// Parameter names accepted for animated sweeps.
const (
	SweepWavelength = "wavelength"
	SweepWidth      = "width"
	SweepSeparation = "separation"
	SweepDistance   = "distance"
)

var (
	ErrParameterRange = errors.New("parameter out of range")
	ErrInvalidSweep   = errors.New("invalid sweep parameter")
)

type Parameters struct {
	Mode           mode.Mode     `yaml:"-"`
	Format         format.Format `yaml:"-"`
	Wavelength     float64       `yaml:"wavelength"` // nm
	SlitWidth      float64       `yaml:"width"`      // um
	SlitSeparation float64       `yaml:"separation"` // um
	ScreenDistance float64       `yaml:"distance"`   // mm
	GridSize       int           `yaml:"grid"`
	Colormap       string        `yaml:"colormap"`
	Sweep          string        `yaml:"sweep"`
	Frames         int           `yaml:"frames"`
}

func Default() *Parameters {
	return &Parameters{
		Mode:           mode.SingleSlit,
		Format:         format.HTML,
		Wavelength:     550,
		SlitWidth:      5,
		SlitSeparation: 10,
		ScreenDistance: 100,
		GridSize:       DefaultGridSize,
		Colormap:       "hot",
		Sweep:          SweepWavelength,
		Frames:         40,
	}
}

// LoadPreset overlays values from a YAML file onto p. Keys absent from the
// file keep their current values.
func (p *Parameters) LoadPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to parse preset: %w", err)
	}
	return nil
}

func (p *Parameters) Validate() error {
	if p.Wavelength < MinWavelength || p.Wavelength > MaxWavelength {
		return fmt.Errorf("wavelength %g nm outside [%g, %g]: %w",
			p.Wavelength, MinWavelength, MaxWavelength, ErrParameterRange)
	}
	if p.SlitWidth < MinSlitWidth || p.SlitWidth > MaxSlitWidth {
		return fmt.Errorf("slit width %g um outside [%g, %g]: %w",
			p.SlitWidth, MinSlitWidth, MaxSlitWidth, ErrParameterRange)
	}
	if p.SlitSeparation < MinSeparation || p.SlitSeparation > MaxSeparation {
		return fmt.Errorf("slit separation %g um outside [%g, %g]: %w",
			p.SlitSeparation, MinSeparation, MaxSeparation, ErrParameterRange)
	}
	if p.ScreenDistance < MinDistance || p.ScreenDistance > MaxDistance {
		return fmt.Errorf("screen distance %g mm outside [%g, %g]: %w",
			p.ScreenDistance, MinDistance, MaxDistance, ErrParameterRange)
	}
	if p.GridSize < MinGridSize {
		return fmt.Errorf("grid size %d below %d: %w",
			p.GridSize, MinGridSize, ErrParameterRange)
	}
	if p.Format == format.Gif {
		if _, _, err := p.SweepBounds(); err != nil {
			return err
		}
		if p.Frames < 2 {
			return fmt.Errorf("frames %d below 2: %w", p.Frames, ErrParameterRange)
		}
	}
	return nil
}

// SweepBounds returns the recognized range of the swept parameter. Sweeping
// a slit parameter the current mode does not use is rejected.
func (p *Parameters) SweepBounds() (min, max float64, err error) {
	switch p.Sweep {
	case SweepWavelength:
		return MinWavelength, MaxWavelength, nil
	case SweepWidth:
		if p.Mode != mode.SingleSlit {
			return 0, 0, fmt.Errorf("%q needs %s mode: %w", p.Sweep, mode.SingleSlit, ErrInvalidSweep)
		}
		return MinSlitWidth, MaxSlitWidth, nil
	case SweepSeparation:
		if p.Mode != mode.DoubleSlit {
			return 0, 0, fmt.Errorf("%q needs %s mode: %w", p.Sweep, mode.DoubleSlit, ErrInvalidSweep)
		}
		return MinSeparation, MaxSeparation, nil
	case SweepDistance:
		return MinDistance, MaxDistance, nil
	default:
		return 0, 0, fmt.Errorf("%q: %w", p.Sweep, ErrInvalidSweep)
	}
}

// WithSweepValue returns a copy of p with the swept parameter set to v.
func (p *Parameters) WithSweepValue(v float64) *Parameters {
	q := *p
	switch p.Sweep {
	case SweepWidth:
		q.SlitWidth = v
	case SweepSeparation:
		q.SlitSeparation = v
	case SweepDistance:
		q.ScreenDistance = v
	default:
		q.Wavelength = v
	}
	return &q
}
