package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml")
}

func TestValidationErrorIncludesFieldPath(t *testing.T) {
	t.Parallel()

	err := NewValidationError("graph.style.line_style.markers[1]", "invalid marker \"q\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "graph.style.line_style.markers[1]", validationErr.Field)
	require.Contains(t, err.Error(), "invalid marker")
}

func TestDataErrorCarriesSourceAndKind(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file")
	err := NewDataError("data/results.csv", DataNotFound, underlying)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	require.Equal(t, "data/results.csv", dataErr.Source)
	require.Equal(t, DataNotFound, dataErr.Kind)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestRenderErrorIncludesStage(t *testing.T) {
	t.Parallel()

	err := NewRenderError("figure", "unsupported graph type \"pie\"", nil)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "figure", renderErr.Stage)
	require.Contains(t, err.Error(), "pie")
}
