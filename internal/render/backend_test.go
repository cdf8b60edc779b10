package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishnya/simple-grapher/internal/config"
	"github.com/anishnya/simple-grapher/internal/style"
	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		out  config.OutputConfig
		want string
	}{
		{
			name: "explicit format wins over extension",
			out:  config.OutputConfig{Format: "svg", FormatSet: true, SavePath: "out/graph.png"},
			want: "svg",
		},
		{
			name: "inferred from extension when not explicit",
			out:  config.OutputConfig{Format: "png", SavePath: "out/graph.jpeg"},
			want: "jpeg",
		},
		{
			name: "extension case is folded",
			out:  config.OutputConfig{Format: "png", SavePath: "out/GRAPH.SVG"},
			want: "svg",
		},
		{
			name: "unknown extension falls back to default",
			out:  config.OutputConfig{Format: "png", SavePath: "out/graph.webp"},
			want: "png",
		},
		{
			name: "no extension falls back to default",
			out:  config.OutputConfig{Format: "png", SavePath: "out/graph"},
			want: "png",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ResolveFormat(tc.out))
		})
	}
}

func TestDashArrayMapping(t *testing.T) {
	t.Parallel()

	assert.Nil(t, dashArray("-"))
	assert.Equal(t, []float64{5.0, 5.0}, dashArray("--"))
	assert.Equal(t, []float64{5.0, 2.0, 1.0, 2.0}, dashArray("-."))
	assert.Equal(t, []float64{1.0, 2.0}, dashArray(":"))
}

func TestFigurePixels(t *testing.T) {
	t.Parallel()

	w, h := figurePixels(config.StyleConfig{Width: 10, Height: 6}, 100)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 600, h)
}

func TestAxisRange(t *testing.T) {
	t.Parallel()

	minV, maxV := 1.0, 9.0

	assert.Nil(t, axisRange(config.AxisConfig{}, 0, 10), "no bounds configured")

	rng := axisRange(config.AxisConfig{Min: &minV}, 0, 10)
	require.NotNil(t, rng)
	assert.Equal(t, 1.0, rng.Min)
	assert.Equal(t, 10.0, rng.Max, "missing max taken from data")

	rng = axisRange(config.AxisConfig{Min: &minV, Max: &maxV}, 0, 10)
	require.NotNil(t, rng)
	assert.Equal(t, 1.0, rng.Min)
	assert.Equal(t, 9.0, rng.Max)
}

func renderConfig(t *testing.T, graphType, format, savePath string) *config.Config {
	t.Helper()

	cfg, err := config.FromMap(map[string]any{
		"graph": map[string]any{
			"title": "Render Test",
			"type":  graphType,
			"x_axis": map[string]any{"label": "x"},
			"y_axis": map[string]any{"label": "y"},
			"style": map[string]any{
				"width":  4.0,
				"height": 3.0,
				"line_style": map[string]any{
					"markers": []any{"o", "s"},
				},
			},
		},
		"output": map[string]any{
			"format":    format,
			"dpi":       72,
			"save_path": savePath,
		},
	})
	require.NoError(t, err)
	return cfg
}

func renderPlans(t *testing.T, cfg *config.Config) []Plan {
	t.Helper()

	inputs := []SeriesInput{
		{Label: "a", Table: testTable([]float64{1, 2, 3}, []float64{2, 4, 1})},
		{Label: "b", Table: testTable([]float64{1, 2, 3}, []float64{1, 3, 5})},
	}
	log, _ := testLogger(t)
	plans, err := AssemblePlans(cfg, inputs, log)
	require.NoError(t, err)
	return plans
}

func TestRenderWritesArtifacts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		graphType string
		format    string
	}{
		{"line", "png"},
		{"line", "svg"},
		{"line", "jpeg"},
		{"scatter", "png"},
		{"bar", "png"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.graphType+"_"+tc.format, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out", "graph."+tc.format)
			cfg := renderConfig(t, tc.graphType, tc.format, path)
			plans := renderPlans(t, cfg)

			log, _ := testLogger(t)
			renderer := New(log)
			require.NoError(t, renderer.Render(context.Background(), cfg, plans))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRenderRejectsPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.pdf")
	cfg := renderConfig(t, "line", "pdf", path)
	plans := renderPlans(t, cfg)

	log, _ := testLogger(t)
	err := New(log).Render(context.Background(), cfg, plans)
	require.Error(t, err)

	var renderErr *grapherrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, renderErr.Message, "pdf")
}

func TestRenderRejectsEmptyBatch(t *testing.T) {
	t.Parallel()

	cfg := renderConfig(t, "line", "png", filepath.Join(t.TempDir(), "graph.png"))

	log, _ := testLogger(t)
	err := New(log).Render(context.Background(), cfg, nil)
	require.Error(t, err)

	var renderErr *grapherrors.RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestSeriesStyleGating(t *testing.T) {
	t.Parallel()

	plan := Plan{Index: 0, Marker: "o", Dash: "--", LineWidth: 2, MarkerSize: 6, Opacity: 1.0}

	lineStyle := seriesStyle(plan, style.TypeLine)
	assert.Equal(t, 2.0, lineStyle.StrokeWidth)
	assert.Equal(t, []float64{5.0, 5.0}, lineStyle.StrokeDashArray)
	assert.Equal(t, 6.0, lineStyle.DotWidth)

	noMarker := plan
	noMarker.Marker = ""
	lineStyle = seriesStyle(noMarker, style.TypeLine)
	assert.Zero(t, lineStyle.DotWidth, "no marker means no dots")

	scatterStyle := seriesStyle(plan, style.TypeScatter)
	assert.Equal(t, 6.0, scatterStyle.DotWidth)
	assert.Negative(t, scatterStyle.StrokeWidth, "scatter disables the stroke")
}
