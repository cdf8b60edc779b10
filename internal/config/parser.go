package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, resolves defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, grapherrors.NewParseError(path, 0, err)
	}
	return parseBytes(data, path)
}

// ParseConfigBytes resolves a configuration from an in-memory YAML
// document.
func ParseConfigBytes(data []byte) (*Config, error) {
	return parseBytes(data, "<inline>")
}

// FromMap resolves a configuration from an already-deserialized generic
// mapping. Absent keys at any depth receive their documented defaults.
func FromMap(m map[string]any) (*Config, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, grapherrors.NewParseError("<mapping>", 0, err)
	}
	return parseBytes(data, "<mapping>")
}

func parseBytes(data []byte, path string) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, grapherrors.NewParseError(path, extractLine(err), err)
	}

	// An empty document resolves to all defaults; anything that is not a
	// mapping at the top level is rejected outright.
	var raw rawConfig
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return nil, grapherrors.NewParseError(path, root.Line,
				fmt.Errorf("top-level YAML value must be a mapping, got %s", nodeKindName(root.Kind)))
		}
		if err := root.Decode(&raw); err != nil {
			return nil, grapherrors.NewParseError(path, extractLine(err), err)
		}
	}

	cfg := raw.resolve()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
