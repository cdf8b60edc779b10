// Package config resolves a YAML graph description into a fully-typed,
// validated configuration model. Defaulting is applied per leaf field: a
// document that supplies one field of a nested section still receives the
// documented defaults for every sibling it left out.
package config

import (
	"path/filepath"
	"strings"

	"github.com/anishnya/simple-grapher/internal/style"
)

// Config is the root of the resolved configuration document. It fully
// determines one rendering pass; nothing consults defaults after
// construction.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Data   DataConfig   `yaml:"data"`
	Output OutputConfig `yaml:"output"`
}

// GraphConfig describes the figure: title, chart family, axes and styling.
type GraphConfig struct {
	Title string          `yaml:"title"`
	Type  style.GraphType `yaml:"type" validate:"graphtype"`
	XAxis AxisConfig      `yaml:"x_axis"`
	YAxis AxisConfig      `yaml:"y_axis"`
	Style StyleConfig     `yaml:"style"`
}

// AxisConfig holds a label and optional advisory display bounds. Min and
// Max never filter data; they only clamp the visible range.
type AxisConfig struct {
	Label string   `yaml:"label"`
	Min   *float64 `yaml:"min"`
	Max   *float64 `yaml:"max"`
}

// StyleConfig groups figure-level visual settings.
type StyleConfig struct {
	Width     float64         `yaml:"width" validate:"gt=0"`
	Height    float64         `yaml:"height" validate:"gt=0"`
	Fonts     FontsConfig     `yaml:"fonts"`
	Grid      GridConfig      `yaml:"grid"`
	LineStyle LineStyleConfig `yaml:"line_style"`
}

// FontsConfig holds the three font point sizes used on a figure.
type FontsConfig struct {
	TitleSize  int `yaml:"title_size" validate:"gt=0"`
	LabelSize  int `yaml:"label_size" validate:"gt=0"`
	LegendSize int `yaml:"legend_size" validate:"gt=0"`
}

// GridConfig toggles background grid lines.
type GridConfig struct {
	Show bool `yaml:"show"`
}

// LineStyleConfig drives series style cycling. Markers defaults to empty
// ("no markers"); LineStyles always holds at least the solid pattern.
// Sequence order is cycling order.
type LineStyleConfig struct {
	Markers    []string `yaml:"markers" validate:"dive,marker"`
	LineStyles []string `yaml:"line_styles" validate:"min=1,dive,dashpattern"`
	AutoCycle  bool     `yaml:"auto_cycle"`
	LineWidth  float64  `yaml:"line_width" validate:"gt=0"`
	MarkerSize float64  `yaml:"marker_size" validate:"gt=0"`
}

// DataConfig lists the tabular sources to plot, in drawing order.
type DataConfig struct {
	Sources []DataSource `yaml:"sources" validate:"dive"`
}

// DataSource points at one tabular file. Label is derived from the file's
// base name exactly once, at construction, when not supplied.
type DataSource struct {
	File  string `yaml:"file" validate:"required"`
	Label string `yaml:"label"`
}

// OutputConfig describes the persisted artifact. FormatSet records whether
// the format was written in the document; when it was not, the renderer
// infers the format from the save path's extension instead.
type OutputConfig struct {
	Format    string `yaml:"format" validate:"imgformat"`
	FormatSet bool   `yaml:"-"`
	DPI       int    `yaml:"dpi" validate:"gt=0"`
	SavePath  string `yaml:"save_path"`
}

// AddSource appends a data source, deriving the label from the file name
// when label is empty.
func (d *DataConfig) AddSource(file, label string) {
	if label == "" {
		label = labelFromFile(file)
	}
	d.Sources = append(d.Sources, DataSource{File: file, Label: label})
}

// NewCycler builds the style cycler for this configuration's chart type.
func (c *Config) NewCycler() *style.Cycler {
	ls := c.Graph.Style.LineStyle
	return style.NewCycler(ls.Markers, ls.LineStyles, ls.AutoCycle, ls.LineWidth, ls.MarkerSize, c.Graph.Type)
}

func labelFromFile(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
