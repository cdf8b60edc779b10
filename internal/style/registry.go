// Package style holds the closed sets of visual attribute symbols and the
// deterministic cycling algorithm that assigns a (marker, dash pattern)
// pair to each series of a chart.
package style

import "sort"

// GraphType identifies one of the supported chart families.
type GraphType string

const (
	TypeLine    GraphType = "line"
	TypeBar     GraphType = "bar"
	TypeScatter GraphType = "scatter"
)

// DashSolid is the built-in dash pattern applied when nothing else is
// configured.
const DashSolid = "-"

// ScatterDefaultMarker is used for scatter charts when the marker sequence
// is empty. Scatter points always have a marker; "no marker" is only legal
// for line charts.
const ScatterDefaultMarker = "o"

var markerSymbols = map[string]struct{}{
	"o": {}, "s": {}, "^": {}, "v": {}, "<": {}, ">": {},
	"p": {}, "*": {}, "+": {}, "x": {}, "D": {}, "h": {}, "H": {},
	"1": {}, "2": {}, "3": {}, "4": {}, "|": {}, "_": {}, ".": {}, ",": {},
}

var dashSymbols = map[string]struct{}{
	"-": {}, "--": {}, "-.": {}, ":": {},
}

var outputFormats = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "svg": {}, "pdf": {},
}

var graphTypes = map[GraphType]struct{}{
	TypeLine: {}, TypeBar: {}, TypeScatter: {},
}

// ValidMarker reports whether s is a member of the marker symbol set.
func ValidMarker(s string) bool {
	_, ok := markerSymbols[s]
	return ok
}

// ValidDashPattern reports whether s is a member of the dash pattern set.
func ValidDashPattern(s string) bool {
	_, ok := dashSymbols[s]
	return ok
}

// ValidFormat reports whether s is a supported output image format. The
// caller is expected to lower-case s first; format matching is
// case-insensitive at the configuration boundary.
func ValidFormat(s string) bool {
	_, ok := outputFormats[s]
	return ok
}

// ValidGraphType reports whether t names a supported chart family.
func ValidGraphType(t GraphType) bool {
	_, ok := graphTypes[t]
	return ok
}

// Markers returns the marker symbol set in sorted order, for error messages.
func Markers() []string {
	return sortedKeys(markerSymbols)
}

// DashPatterns returns the dash pattern set in sorted order.
func DashPatterns() []string {
	return sortedKeys(dashSymbols)
}

// Formats returns the output format set in sorted order.
func Formats() []string {
	return sortedKeys(outputFormats)
}

// GraphTypes returns the chart family set in sorted order.
func GraphTypes() []string {
	names := make([]string, 0, len(graphTypes))
	for t := range graphTypes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
