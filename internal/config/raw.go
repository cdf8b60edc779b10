package config

import (
	"strings"

	"github.com/anishnya/simple-grapher/internal/style"
)

// Built-in defaults. Every leaf field applies its own default independently
// of whether sibling keys were supplied.
const (
	defaultWidth      = 10.0
	defaultHeight     = 10.0
	defaultTitleSize  = 16
	defaultLabelSize  = 12
	defaultLegendSize = 10
	defaultGridShow   = true
	defaultAutoCycle  = true
	defaultLineWidth  = 2.0
	defaultMarkerSize = 6.0

	// DefaultFormat is the first member of the output format set, used when
	// no format is configured and none can be inferred from the save path.
	DefaultFormat = "png"
	// DefaultDPI is the raster resolution applied when none is configured.
	DefaultDPI = 300
	// DefaultSavePath is where the artifact lands when no path is given.
	DefaultSavePath = "./output/graph.png"
)

func defaultLineStyles() []string {
	return []string{style.DashSolid}
}

// rawConfig is the typed intermediate the YAML document decodes into.
// Every field is a pointer so that "absent" and "explicit zero" stay
// distinguishable until defaults are applied.
type rawConfig struct {
	Graph  *rawGraph  `yaml:"graph"`
	Data   *rawData   `yaml:"data"`
	Output *rawOutput `yaml:"output"`
}

type rawGraph struct {
	Title *string   `yaml:"title"`
	Type  *string   `yaml:"type"`
	XAxis *rawAxis  `yaml:"x_axis"`
	YAxis *rawAxis  `yaml:"y_axis"`
	Style *rawStyle `yaml:"style"`
}

type rawAxis struct {
	Label *string  `yaml:"label"`
	Min   *float64 `yaml:"min"`
	Max   *float64 `yaml:"max"`
}

type rawStyle struct {
	Width     *float64      `yaml:"width"`
	Height    *float64      `yaml:"height"`
	Fonts     *rawFonts     `yaml:"fonts"`
	Grid      *rawGrid      `yaml:"grid"`
	LineStyle *rawLineStyle `yaml:"line_style"`
}

type rawFonts struct {
	TitleSize  *int `yaml:"title_size"`
	LabelSize  *int `yaml:"label_size"`
	LegendSize *int `yaml:"legend_size"`
}

type rawGrid struct {
	Show *bool `yaml:"show"`
}

type rawLineStyle struct {
	Markers    *[]string `yaml:"markers"`
	LineStyles *[]string `yaml:"line_styles"`
	AutoCycle  *bool     `yaml:"auto_cycle"`
	LineWidth  *float64  `yaml:"line_width"`
	MarkerSize *float64  `yaml:"marker_size"`
}

type rawData struct {
	Sources []rawSource `yaml:"sources"`
}

type rawSource struct {
	File  *string `yaml:"file"`
	Label *string `yaml:"label"`
}

type rawOutput struct {
	Format   *string `yaml:"format"`
	DPI      *int    `yaml:"dpi"`
	SavePath *string `yaml:"save_path"`
}

// resolve layers the raw document over the built-in defaults, leaf by leaf.
// It never fails; validation happens on the resolved result.
func (r *rawConfig) resolve() *Config {
	cfg := &Config{
		Graph:  resolveGraph(r.Graph),
		Data:   resolveData(r.Data),
		Output: resolveOutput(r.Output),
	}
	return cfg
}

func resolveGraph(r *rawGraph) GraphConfig {
	if r == nil {
		r = &rawGraph{}
	}
	return GraphConfig{
		Title: strOr(r.Title, ""),
		Type:  style.GraphType(strOr(r.Type, string(style.TypeLine))),
		XAxis: resolveAxis(r.XAxis),
		YAxis: resolveAxis(r.YAxis),
		Style: resolveStyle(r.Style),
	}
}

func resolveAxis(r *rawAxis) AxisConfig {
	if r == nil {
		r = &rawAxis{}
	}
	return AxisConfig{
		Label: strOr(r.Label, ""),
		Min:   r.Min,
		Max:   r.Max,
	}
}

func resolveStyle(r *rawStyle) StyleConfig {
	if r == nil {
		r = &rawStyle{}
	}
	return StyleConfig{
		Width:     floatOr(r.Width, defaultWidth),
		Height:    floatOr(r.Height, defaultHeight),
		Fonts:     resolveFonts(r.Fonts),
		Grid:      resolveGrid(r.Grid),
		LineStyle: resolveLineStyle(r.LineStyle),
	}
}

func resolveFonts(r *rawFonts) FontsConfig {
	if r == nil {
		r = &rawFonts{}
	}
	return FontsConfig{
		TitleSize:  intOr(r.TitleSize, defaultTitleSize),
		LabelSize:  intOr(r.LabelSize, defaultLabelSize),
		LegendSize: intOr(r.LegendSize, defaultLegendSize),
	}
}

func resolveGrid(r *rawGrid) GridConfig {
	if r == nil {
		r = &rawGrid{}
	}
	return GridConfig{Show: boolOr(r.Show, defaultGridShow)}
}

func resolveLineStyle(r *rawLineStyle) LineStyleConfig {
	if r == nil {
		r = &rawLineStyle{}
	}
	return LineStyleConfig{
		Markers:    sliceOr(r.Markers, nil),
		LineStyles: sliceOr(r.LineStyles, defaultLineStyles()),
		AutoCycle:  boolOr(r.AutoCycle, defaultAutoCycle),
		LineWidth:  floatOr(r.LineWidth, defaultLineWidth),
		MarkerSize: floatOr(r.MarkerSize, defaultMarkerSize),
	}
}

func resolveData(r *rawData) DataConfig {
	if r == nil {
		r = &rawData{}
	}
	data := DataConfig{}
	for _, src := range r.Sources {
		file := strOr(src.File, "")
		label := strOr(src.Label, "")
		if label == "" && file != "" {
			label = labelFromFile(file)
		}
		data.Sources = append(data.Sources, DataSource{File: file, Label: label})
	}
	return data
}

func resolveOutput(r *rawOutput) OutputConfig {
	if r == nil {
		r = &rawOutput{}
	}
	return OutputConfig{
		Format:    strings.ToLower(strOr(r.Format, DefaultFormat)),
		FormatSet: r.Format != nil,
		DPI:       intOr(r.DPI, DefaultDPI),
		SavePath:  strOr(r.SavePath, DefaultSavePath),
	}
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func sliceOr(p *[]string, def []string) []string {
	if p == nil {
		return def
	}
	return append([]string(nil), *p...)
}
