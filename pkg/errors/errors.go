package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a field-level configuration failure. These are
// fatal: a configuration that produces one never reaches the renderer.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DataKind classifies why a tabular source could not be used.
type DataKind string

const (
	DataNotFound DataKind = "not_found"
	DataEmpty    DataKind = "empty"
	DataSchema   DataKind = "schema"
	DataParse    DataKind = "parse"
)

// DataError indicates a tabular source that is unreadable, empty or
// schema-insufficient. A DataError on one series is skippable; the batch
// only fails outright when no series survives.
type DataError struct {
	Source string
	Kind   DataKind
	Err    error
}

// NewDataError constructs a DataError for the given source file.
func NewDataError(source string, kind DataKind, err error) error {
	return &DataError{Source: source, Kind: kind, Err: err}
}

func (e *DataError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("data error [%s]: %s: %v", e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("data error [%s]: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DataError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while assembling or drawing a chart,
// such as an unsupported chart type or an empty series batch.
type RenderError struct {
	Stage   string
	Message string
	Err     error
}

// NewRenderError constructs a RenderError for the given pipeline stage.
func NewRenderError(stage, message string, err error) error {
	return &RenderError{Stage: stage, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
