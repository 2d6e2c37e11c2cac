package app

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/format"
	"github.com/slitviz/slitviz/entity/mode"
	"github.com/slitviz/slitviz/optics"
	"github.com/slitviz/slitviz/render"
)

type App struct {
	Output string
	Params *entity.Parameters
}

func New(output string, params *entity.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":     a.Output,
		"mode":       a.Params.Mode,
		"format":     a.Params.Format,
		"wavelength": a.Params.Wavelength,
		"distance":   a.Params.ScreenDistance,
		"grid":       a.Params.GridSize,
	}).Debug("App started")

	if a.Params.Format == format.Gif {
		return a.runSweep(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	computeTime := time.Now()
	field := compute(a.Params)
	log.WithField("time", time.Since(computeTime)).Info("Pattern computed")

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := a.renderTo(f, field); err != nil {
		return fmt.Errorf("failed to render pattern: %w", err)
	}
	log.WithField("time", time.Since(renderTime)).Info("Pattern rendered and saved")

	return nil
}

func compute(p *entity.Parameters) *optics.Field {
	if p.Mode == mode.DoubleSlit {
		return optics.DoubleSlit(p.Wavelength, p.SlitSeparation, p.ScreenDistance, p.GridSize)
	}
	return optics.SingleSlit(p.Wavelength, p.SlitWidth, p.ScreenDistance, p.GridSize)
}

func (a *App) renderTo(f *os.File, field *optics.Field) error {
	switch a.Params.Format {
	case format.Png:
		return render.PNG(f, field, a.Params)
	case format.Csv:
		return render.CSV(f, field, a.Params)
	case format.Xlsx:
		return render.XLSX(f, field, a.Params)
	default:
		return render.HTML(f, field, a.Params)
	}
}

func (a *App) runSweep(ctx context.Context) error {
	min, max, err := a.Params.SweepBounds()
	if err != nil {
		return fmt.Errorf("failed to resolve sweep: %w", err)
	}

	computeTime := time.Now()
	frames := make([]*optics.Field, 0, a.Params.Frames)
	step := (max - min) / float64(a.Params.Frames-1)
	for i := 0; i < a.Params.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		value := min + step*float64(i)
		frames = append(frames, compute(a.Params.WithSweepValue(value)))
		log.WithFields(log.Fields{
			"frame":        i,
			a.Params.Sweep: value,
		}).Debug("Frame computed")
	}
	log.WithFields(log.Fields{
		"time":   time.Since(computeTime),
		"frames": len(frames),
	}).Info("Sweep computed")

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := render.GIF(f, frames, a.Params); err != nil {
		return fmt.Errorf("failed to render sweep: %w", err)
	}
	log.WithField("time", time.Since(renderTime)).Info("Sweep rendered and saved")

	return nil
}
