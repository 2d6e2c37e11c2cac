package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/optics"
)

// maxHeatmapSide caps the heatmap cells per axis. Echarts keeps every cell
// interactive, so dense grids are thinned before charting.
const maxHeatmapSide = 160

// HTML writes an interactive page with the intensity heatmap and the
// central intensity profile.
func HTML(w io.Writer, f *optics.Field, p *entity.Parameters) error {
	cm, err := ByName(p.Colormap)
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(heatmapChart(f, p, cm), profileChart(f, p))
	return page.Render(w)
}

func heatmapChart(f *optics.Field, p *entity.Parameters, cm *Colormap) *charts.HeatMap {
	n := f.N()
	stride := heatmapStride(n)
	pos := normalizedAxis(n)

	labels := make([]string, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		labels = append(labels, fmt.Sprintf("%.3f", pos[i]))
	}
	data := make([]opts.HeatMapData, 0, len(labels)*len(labels))
	for yi, i := 0, 0; i < n; yi, i = yi+1, i+stride {
		for xi, j := 0, 0; j < n; xi, j = xi+1, j+stride {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, f.At(i, j)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title(p),
			Subtitle: description(p),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		toolbox(),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        0,
			Max:        1,
			Calculable: opts.Bool(true),
			Text:       []string{"1", "0"},
			InRange: &opts.VisualMapInRange{
				Color: cm.stops(16),
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Position (normalized)",
			Type: "category",
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Position (normalized)",
			Type: "category",
			Data: labels,
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
	)

	hm.SetXAxis(labels).AddSeries("intensity", data)
	return hm
}

func profileChart(f *optics.Field, p *entity.Parameters) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "400px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Central intensity profile",
			Subtitle: formula(p),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		toolbox(),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Position (normalized)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Normalized intensity",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	center := f.Row(f.N() / 2)
	series := make([]opts.LineData, len(center))
	for i, v := range center {
		series[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(normalizedAxis(f.N()))
	line.AddSeries(title(p), series)
	return line
}

func toolbox() charts.GlobalOpts {
	return charts.WithToolboxOpts(opts.Toolbox{
		Show: opts.Bool(true),
		Top:  "0%",
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  opts.Bool(true),
				Type:  "png",
				Name:  "pattern",
				Title: "Save as image",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show:       opts.Bool(true),
				YAxisIndex: "default",
				Title: map[string]string{
					"zoom": "area zooming",
					"back": "restore area zooming",
				},
			},
			DataView: &opts.ToolBoxFeatureDataView{
				Show:  opts.Bool(true),
				Title: "Data view",
				Lang:  []string{"data view", "turn off", "refresh"},
			},
			Restore: &opts.ToolBoxFeatureRestore{
				Show:  opts.Bool(true),
				Title: "refresh",
			},
		},
	})
}

func heatmapStride(n int) int {
	if n <= maxHeatmapSide {
		return 1
	}
	return (n + maxHeatmapSide - 1) / maxHeatmapSide
}

// normalizedAxis spans [-1, 1] like the pattern extent.
func normalizedAxis(n int) []float64 {
	axis := make([]float64, n)
	floats.Span(axis, -1, 1)
	return axis
}
