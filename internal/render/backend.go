package render

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anishnya/simple-grapher/internal/config"
	"github.com/anishnya/simple-grapher/internal/logger"
	"github.com/anishnya/simple-grapher/internal/style"
	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

// Renderer draws a plan batch with go-chart and writes the artifact to
// disk. It holds no figure state between calls; every Render starts from
// the plans alone.
type Renderer struct {
	log *logger.Logger
}

// New constructs a Renderer.
func New(log *logger.Logger) *Renderer {
	return &Renderer{log: log}
}

// Render draws the batch and saves it according to the output settings.
func (r *Renderer) Render(ctx context.Context, cfg *config.Config, plans []Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(plans) == 0 {
		return grapherrors.NewRenderError("figure", "no series to draw", nil)
	}

	var draw func(chart.RendererProvider, io.Writer) error
	switch cfg.Graph.Type {
	case style.TypeLine, style.TypeScatter:
		ch := buildXYChart(cfg, plans)
		draw = func(p chart.RendererProvider, w io.Writer) error { return ch.Render(p, w) }
	case style.TypeBar:
		ch := buildBarChart(cfg, plans)
		draw = func(p chart.RendererProvider, w io.Writer) error { return ch.Render(p, w) }
	default:
		return grapherrors.NewRenderError("figure",
			fmt.Sprintf("unsupported graph type %q, supported types: %s", cfg.Graph.Type, strings.Join(style.GraphTypes(), " ")), nil)
	}

	path, err := r.save(cfg.Output, draw)
	if err != nil {
		return err
	}

	r.log.WithFields(map[string]any{"path": path, "series": len(plans)}).Info("graph saved")
	return nil
}

func buildXYChart(cfg *config.Config, plans []Plan) *chart.Chart {
	st := cfg.Graph.Style
	width, height := figurePixels(st, cfg.Output.DPI)

	series := make([]chart.Series, 0, len(plans))
	for _, plan := range plans {
		series = append(series, chart.ContinuousSeries{
			Name:    plan.Label,
			XValues: plan.X,
			YValues: plan.Y,
			Style:   seriesStyle(plan, cfg.Graph.Type),
		})
	}

	xMin, xMax, yMin, yMax := dataBounds(plans)

	ch := &chart.Chart{
		Title:      cfg.Graph.Title,
		TitleStyle: chart.Style{FontSize: float64(st.Fonts.TitleSize)},
		Width:      width,
		Height:     height,
		DPI:        float64(cfg.Output.DPI),
		XAxis: chart.XAxis{
			Name:           cfg.Graph.XAxis.Label,
			NameStyle:      chart.Style{FontSize: float64(st.Fonts.LabelSize)},
			GridMajorStyle: gridStyle(st.Grid.Show),
			GridMinorStyle: gridStyle(st.Grid.Show),
		},
		YAxis: chart.YAxis{
			Name:           cfg.Graph.YAxis.Label,
			NameStyle:      chart.Style{FontSize: float64(st.Fonts.LabelSize)},
			GridMajorStyle: gridStyle(st.Grid.Show),
			GridMinorStyle: gridStyle(st.Grid.Show),
		},
		Series: series,
	}

	if rng := axisRange(cfg.Graph.XAxis, xMin, xMax); rng != nil {
		ch.XAxis.Range = rng
	}
	if rng := axisRange(cfg.Graph.YAxis, yMin, yMax); rng != nil {
		ch.YAxis.Range = rng
	}

	ch.Elements = []chart.Renderable{
		chart.Legend(ch, chart.Style{FontSize: float64(st.Fonts.LegendSize)}),
	}

	return ch
}

func buildBarChart(cfg *config.Config, plans []Plan) *chart.BarChart {
	st := cfg.Graph.Style
	width, height := figurePixels(st, cfg.Output.DPI)

	var bars []chart.Value
	for _, plan := range plans {
		color := seriesColor(plan)
		for i := range plan.X {
			bars = append(bars, chart.Value{
				Label: fmt.Sprintf("%g", plan.X[i]),
				Value: plan.Y[i],
				Style: chart.Style{FillColor: color, StrokeWidth: chart.Disabled},
			})
		}
	}

	// Size bars to the canvas so a long batch still fits.
	barWidth := 10
	if len(bars) > 0 {
		if w := width / (2 * len(bars)); w > barWidth {
			barWidth = w
		}
	}

	return &chart.BarChart{
		Title:      cfg.Graph.Title,
		TitleStyle: chart.Style{FontSize: float64(st.Fonts.TitleSize)},
		Width:      width,
		Height:     height,
		DPI:        float64(cfg.Output.DPI),
		BarWidth:   barWidth,
		XAxis:      chart.Style{FontSize: float64(st.Fonts.LabelSize)},
		YAxis: chart.YAxis{
			Name:      cfg.Graph.YAxis.Label,
			NameStyle: chart.Style{FontSize: float64(st.Fonts.LabelSize)},
		},
		Bars: bars,
	}
}

// seriesStyle translates a plan's symbolic attributes into go-chart stroke
// and dot options. Marker shapes collapse to dots: the backend cannot draw
// arbitrary glyphs, so any non-empty marker renders as a filled dot at
// marker size.
func seriesStyle(plan Plan, graphType style.GraphType) chart.Style {
	color := seriesColor(plan)

	if graphType == style.TypeScatter {
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    plan.MarkerSize,
			DotColor:    color,
		}
	}

	st := chart.Style{
		StrokeWidth:     plan.LineWidth,
		StrokeColor:     color,
		StrokeDashArray: dashArray(plan.Dash),
	}
	if plan.Marker != "" {
		st.DotWidth = plan.MarkerSize
		st.DotColor = color
	}
	return st
}

func seriesColor(plan Plan) drawing.Color {
	alpha := uint8(math.Round(plan.Opacity * 255))
	return chart.GetDefaultColor(plan.Index).WithAlpha(alpha)
}

// dashArray maps a dash symbol onto a stroke dash pattern. Solid maps to
// nil (continuous stroke).
func dashArray(dash string) []float64 {
	switch dash {
	case "--":
		return []float64{5.0, 5.0}
	case "-.":
		return []float64{5.0, 2.0, 1.0, 2.0}
	case ":":
		return []float64{1.0, 2.0}
	default:
		return nil
	}
}

func gridStyle(show bool) chart.Style {
	if !show {
		return chart.Style{Hidden: true}
	}
	return chart.Style{
		StrokeColor: chart.ColorAlternateGray.WithAlpha(77),
		StrokeWidth: 1.0,
	}
}

// axisRange returns a range only when the configuration pins at least one
// bound; a missing bound falls back to the data extreme.
func axisRange(axis config.AxisConfig, dataMin, dataMax float64) *chart.ContinuousRange {
	if axis.Min == nil && axis.Max == nil {
		return nil
	}

	rng := &chart.ContinuousRange{Min: dataMin, Max: dataMax}
	if axis.Min != nil {
		rng.Min = *axis.Min
	}
	if axis.Max != nil {
		rng.Max = *axis.Max
	}
	return rng
}

func dataBounds(plans []Plan) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, plan := range plans {
		for i := range plan.X {
			xMin = math.Min(xMin, plan.X[i])
			xMax = math.Max(xMax, plan.X[i])
			yMin = math.Min(yMin, plan.Y[i])
			yMax = math.Max(yMax, plan.Y[i])
		}
	}
	return xMin, xMax, yMin, yMax
}

// figurePixels converts the configured figure size in inches to pixels at
// the output DPI.
func figurePixels(st config.StyleConfig, dpi int) (int, int) {
	return int(st.Width * float64(dpi)), int(st.Height * float64(dpi))
}

// ResolveFormat returns the image format to encode: the explicit format
// when one was configured, otherwise the save path's extension, falling
// back to the default format when the extension is absent or unknown.
func ResolveFormat(out config.OutputConfig) string {
	if out.FormatSet {
		return out.Format
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(out.SavePath)), ".")
	if style.ValidFormat(ext) {
		return ext
	}
	return config.DefaultFormat
}

func (r *Renderer) save(out config.OutputConfig, draw func(chart.RendererProvider, io.Writer) error) (string, error) {
	format := ResolveFormat(out)
	switch format {
	case "png", "svg", "jpg", "jpeg":
	case "pdf":
		return "", grapherrors.NewRenderError("save", "pdf output is not supported by the chart backend", nil)
	default:
		return "", grapherrors.NewRenderError("save",
			fmt.Sprintf("invalid format %q, valid formats: %s", format, strings.Join(style.Formats(), " ")), nil)
	}

	if dir := filepath.Dir(out.SavePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", grapherrors.NewRenderError("save", fmt.Sprintf("cannot create output directory: %v", err), err)
		}
	}

	f, err := os.Create(out.SavePath)
	if err != nil {
		return "", grapherrors.NewRenderError("save", fmt.Sprintf("cannot create output file: %v", err), err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = draw(chart.PNG, f)
	case "svg":
		err = draw(chart.SVG, f)
	default:
		err = saveJPEG(f, draw)
	}
	if err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", grapherrors.NewRenderError("save", fmt.Sprintf("cannot finalize output file: %v", err), err)
	}

	return out.SavePath, nil
}

// saveJPEG re-encodes the PNG raster as JPEG; the backend has no native
// JPEG renderer.
func saveJPEG(w io.Writer, draw func(chart.RendererProvider, io.Writer) error) error {
	var buf bytes.Buffer
	if err := draw(chart.PNG, &buf); err != nil {
		return err
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return grapherrors.NewRenderError("save", fmt.Sprintf("cannot decode intermediate raster: %v", err), err)
	}

	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}
