// Package render turns a resolved configuration and loaded datasets into
// per-series drawing instructions and hands them to the chart backend.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/anishnya/simple-grapher/internal/config"
	"github.com/anishnya/simple-grapher/internal/dataset"
	"github.com/anishnya/simple-grapher/internal/logger"
	"github.com/anishnya/simple-grapher/internal/style"
	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

// Plan is the immutable per-series drawing instruction handed to the
// backend. An empty Marker means the series draws without markers.
type Plan struct {
	Index      int
	Label      string
	X          []float64
	Y          []float64
	Marker     string
	Dash       string
	LineWidth  float64
	MarkerSize float64
	Opacity    float64
}

// SeriesInput pairs a label with its loaded table, in caller order.
// Ordering matters: the cycle assignment for a series is derived from its
// position in this sequence.
type SeriesInput struct {
	Label string
	Table *dataset.Table
}

// NewPlan builds the drawing instruction for the series at the given
// index. It fails with a DataError when the table is empty or carried
// fewer than two columns.
func NewPlan(index int, label string, table *dataset.Table, a style.Assignment, graphType style.GraphType) (Plan, error) {
	source := label
	if table != nil && table.Path != "" {
		source = table.Path
	}

	if table == nil || table.Len() == 0 {
		return Plan{}, grapherrors.NewDataError(source, grapherrors.DataEmpty, errors.New("series has no data"))
	}
	if table.Columns < 2 {
		return Plan{}, grapherrors.NewDataError(source, grapherrors.DataSchema,
			fmt.Errorf("need at least 2 columns, found %d", table.Columns))
	}

	opacity := 1.0
	if graphType == style.TypeBar || graphType == style.TypeScatter {
		opacity = 0.7
	}

	return Plan{
		Index:      index,
		Label:      label,
		X:          table.X,
		Y:          table.Y,
		Marker:     a.Marker,
		Dash:       a.Dash,
		LineWidth:  a.LineWidth,
		MarkerSize: a.MarkerSize,
		Opacity:    opacity,
	}, nil
}

// AssemblePlans produces one Plan per input, assigning cycle indexes by
// input position. Inputs that fail plan construction are skipped with a
// warning; the batch only fails when nothing survives.
func AssemblePlans(cfg *config.Config, inputs []SeriesInput, log *logger.Logger) ([]Plan, error) {
	cycler := cfg.NewCycler()

	plans := make([]Plan, 0, len(inputs))
	for i, input := range inputs {
		plan, err := NewPlan(i, input.Label, input.Table, cycler.Resolve(i), cfg.Graph.Type)
		if err != nil {
			log.Warnf("skipping series %q: %v", input.Label, err)
			continue
		}
		plans = append(plans, plan)
	}

	if len(plans) == 0 {
		return nil, grapherrors.NewRenderError("series", "no renderable series in batch", nil)
	}

	return plans, nil
}

// BuildBatch loads every configured data source and assembles the plan
// batch. Sources that fail to load are skipped with a warning, matching
// the skip semantics of plan assembly.
func BuildBatch(ctx context.Context, cfg *config.Config, log *logger.Logger) ([]Plan, error) {
	inputs := make([]SeriesInput, 0, len(cfg.Data.Sources))
	for _, source := range cfg.Data.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := dataset.Load(source.File)
		if err != nil {
			log.Warnf("skipping data source %q: %v", source.File, err)
			continue
		}
		inputs = append(inputs, SeriesInput{Label: source.Label, Table: table})
	}

	return AssemblePlans(cfg, inputs, log)
}
