package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate runs the advisory cross-field checks that construction cannot
// catch on its own and returns one human-readable problem per finding. An
// empty slice means the configuration is ready to render. Callers decide
// whether a non-empty result aborts; construction never does.
func (c *Config) Validate() []string {
	var problems []string

	if c.Graph.Title == "" {
		problems = append(problems, "graph title is required")
	}

	if len(c.Data.Sources) == 0 {
		problems = append(problems, "at least one data source is required")
	}

	for i, source := range c.Data.Sources {
		if _, err := os.Stat(source.File); err != nil {
			problems = append(problems, fmt.Sprintf("data source %d: file %q does not exist", i, source.File))
		}
	}

	if dir := filepath.Dir(c.Output.SavePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			problems = append(problems, fmt.Sprintf("cannot create output directory %q: %v", dir, err))
		}
	}

	return problems
}

// IsValid reports whether the advisory checks found no problems.
func (c *Config) IsValid() bool {
	return len(c.Validate()) == 0
}
