package config

// ToMap converts the resolved configuration back into a generic mapping.
// Every field appears with its resolved value, so feeding the result back
// through FromMap reproduces the configuration exactly.
func (c *Config) ToMap() map[string]any {
	sources := make([]any, 0, len(c.Data.Sources))
	for _, source := range c.Data.Sources {
		sources = append(sources, map[string]any{
			"file":  source.File,
			"label": source.Label,
		})
	}

	return map[string]any{
		"graph": map[string]any{
			"title":  c.Graph.Title,
			"type":   string(c.Graph.Type),
			"x_axis": axisToMap(c.Graph.XAxis),
			"y_axis": axisToMap(c.Graph.YAxis),
			"style": map[string]any{
				"width":  c.Graph.Style.Width,
				"height": c.Graph.Style.Height,
				"fonts": map[string]any{
					"title_size":  c.Graph.Style.Fonts.TitleSize,
					"label_size":  c.Graph.Style.Fonts.LabelSize,
					"legend_size": c.Graph.Style.Fonts.LegendSize,
				},
				"grid": map[string]any{
					"show": c.Graph.Style.Grid.Show,
				},
				"line_style": map[string]any{
					"markers":     stringsToAny(c.Graph.Style.LineStyle.Markers),
					"line_styles": stringsToAny(c.Graph.Style.LineStyle.LineStyles),
					"auto_cycle":  c.Graph.Style.LineStyle.AutoCycle,
					"line_width":  c.Graph.Style.LineStyle.LineWidth,
					"marker_size": c.Graph.Style.LineStyle.MarkerSize,
				},
			},
		},
		"data": map[string]any{
			"sources": sources,
		},
		"output": map[string]any{
			"format":    c.Output.Format,
			"dpi":       c.Output.DPI,
			"save_path": c.Output.SavePath,
		},
	}
}

func axisToMap(axis AxisConfig) map[string]any {
	m := map[string]any{"label": axis.Label}
	if axis.Min != nil {
		m["min"] = *axis.Min
	} else {
		m["min"] = nil
	}
	if axis.Max != nil {
		m["max"] = *axis.Max
	} else {
		m["max"] = nil
	}
	return m
}

func stringsToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
