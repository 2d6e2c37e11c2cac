package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/slitviz/slitviz/app"
	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/entity/format"
	"github.com/slitviz/slitviz/entity/mode"
	"github.com/slitviz/slitviz/render"
	"github.com/slitviz/slitviz/view"
)

var defaults = entity.Default()

var (
	modeFlag       = flag.String("mode", "single", "slit mode: single or double")
	formatFlag     = flag.String("format", "html", "output format: html, png, csv, xlsx or gif")
	outFlag        = flag.String("out", "", "output file (default <mode>_slit.<format>)")
	configFlag     = flag.String("config", "", "YAML preset file")
	wavelengthFlag = flag.Float64("wavelength", defaults.Wavelength, "wavelength in nm")
	widthFlag      = flag.Float64("width", defaults.SlitWidth, "slit width in um")
	separationFlag = flag.Float64("separation", defaults.SlitSeparation, "slit separation in um")
	distanceFlag   = flag.Float64("distance", defaults.ScreenDistance, "screen distance in mm")
	gridFlag       = flag.Int("grid", defaults.GridSize, "grid points per axis")
	cmapFlag       = flag.String("cmap", defaults.Colormap, "colormap: "+strings.Join(render.Names(), ", "))
	sweepFlag      = flag.String("sweep", defaults.Sweep, "swept parameter for gif output: wavelength, width, separation or distance")
	framesFlag     = flag.Int("frames", defaults.Frames, "frame count for gif output")
	viewFlag       = flag.Bool("view", false, "open an interactive window instead of writing a file")
	verboseFlag    = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	params, err := loadParameters()
	if err != nil {
		log.Fatal(err)
	}

	if *viewFlag {
		if err := view.Run(params); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Info("Shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	output := *outFlag
	if output == "" {
		output = fmt.Sprintf("%s_slit.%s", params.Mode, params.Format.Ext())
	}
	if err := app.New(output, params).Run(ctx); err != nil {
		log.Fatal(err)
	}
}

// loadParameters layers the three parameter sources: built-in defaults,
// then the preset file, then flags given explicitly on the command line.
func loadParameters() (*entity.Parameters, error) {
	params := entity.Default()
	if *configFlag != "" {
		if err := params.LoadPreset(*configFlag); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wavelength":
			params.Wavelength = *wavelengthFlag
		case "width":
			params.SlitWidth = *widthFlag
		case "separation":
			params.SlitSeparation = *separationFlag
		case "distance":
			params.ScreenDistance = *distanceFlag
		case "grid":
			params.GridSize = *gridFlag
		case "cmap":
			params.Colormap = *cmapFlag
		case "sweep":
			params.Sweep = *sweepFlag
		case "frames":
			params.Frames = *framesFlag
		}
	})

	m, err := mode.UnmarshalText(*modeFlag)
	if err != nil {
		return nil, err
	}
	params.Mode = m

	f, err := format.UnmarshalText(*formatFlag)
	if err != nil {
		return nil, err
	}
	params.Format = f

	if _, err := render.ByName(params.Colormap); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}
