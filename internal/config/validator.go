package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/anishnya/simple-grapher/internal/style"
	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("marker", func(fl validator.FieldLevel) bool {
			return style.ValidMarker(fl.Field().String())
		})

		_ = v.RegisterValidation("dashpattern", func(fl validator.FieldLevel) bool {
			return style.ValidDashPattern(fl.Field().String())
		})

		_ = v.RegisterValidation("imgformat", func(fl validator.FieldLevel) bool {
			return style.ValidFormat(strings.ToLower(fl.Field().String()))
		})

		_ = v.RegisterValidation("graphtype", func(fl validator.FieldLevel) bool {
			return style.ValidGraphType(style.GraphType(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs field-level validation on a resolved
// configuration. Any failure here is fatal: enumerated values outside their
// closed set, non-positive numerics, and data sources without a file all
// reject the configuration at construction time.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return grapherrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into grapher
// validation errors with a readable field path and, for enumerated fields,
// the closed set of accepted values.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return grapherrors.NewValidationError(field, messageForTag(ve), err)
	}

	return grapherrors.NewValidationError("config", err.Error(), err)
}

func messageForTag(ve validator.FieldError) string {
	value := fmt.Sprintf("%v", ve.Value())
	switch ve.Tag() {
	case "marker":
		return fmt.Sprintf("invalid marker %q, valid markers: %s", value, strings.Join(style.Markers(), " "))
	case "dashpattern":
		return fmt.Sprintf("invalid line style %q, valid line styles: %s", value, strings.Join(style.DashPatterns(), " "))
	case "imgformat":
		return fmt.Sprintf("invalid format %q, valid formats: %s", value, strings.Join(style.Formats(), " "))
	case "graphtype":
		return fmt.Sprintf("unsupported graph type %q, supported types: %s", value, strings.Join(style.GraphTypes(), " "))
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %s", ve.Param(), value)
	case "min":
		return fmt.Sprintf("must contain at least %s entries", ve.Param())
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
	}
}

// yamlishFieldName maps a validator namespace like
// Config.Graph.Style.LineStyle.Markers[1] onto the YAML key path the user
// actually wrote.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	ns = strings.TrimPrefix(ns, "Config.")

	replacer := strings.NewReplacer(
		"XAxis", "x_axis",
		"YAxis", "y_axis",
		"LineStyle", "line_style",
		"LineStyles", "line_styles",
		"LineWidth", "line_width",
		"MarkerSize", "marker_size",
		"AutoCycle", "auto_cycle",
		"TitleSize", "title_size",
		"LabelSize", "label_size",
		"LegendSize", "legend_size",
		"SavePath", "save_path",
	)
	ns = replacer.Replace(ns)

	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
