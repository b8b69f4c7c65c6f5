package config

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

func plainDef(name string, steps int, format color.Format, literals ...string) NamedConfig {
	stops := make(gradient.PlainColors, len(literals))
	for i, l := range literals {
		stops[i] = color.MustParse(l)
	}
	return NamedConfig{
		Name:   name,
		Config: gradient.Config{Steps: steps, Stops: stops},
		Format: format,
	}
}

func TestValidatorValidate(t *testing.T) {
	defs := []NamedConfig{
		plainDef("ok", 5, color.FormatHex, "#000", "#fff"),
		plainDef("too many stops", 2, color.FormatHex, "#000", "#888", "#fff"),
		plainDef("one stop", 4, color.FormatHex, "#000"),
		plainDef("bad format", 4, color.Format("cmyk"), "#000", "#fff"),
		plainDef("fast path", 2, color.FormatRGB, "#000", "#fff"),
	}

	result := NewValidator().Validate(defs)
	if result.IsValid() {
		t.Fatal("IsValid() = true, want false")
	}

	wantErrs := map[string]error{
		"too many stops": gradient.ErrTooManyStops,
		"one stop":       gradient.ErrInsufficientStops,
		"bad format":     gradient.ErrUnsupportedFormat,
	}
	if len(result.Errors) != len(wantErrs) {
		t.Fatalf("got %d errors, want %d: %v", len(result.Errors), len(wantErrs), result.Errors)
	}
	for _, ve := range result.Errors {
		want, ok := wantErrs[ve.Name]
		if !ok {
			t.Errorf("unexpected error for %q: %v", ve.Name, ve.Err)
			continue
		}
		if !errors.Is(ve, want) {
			t.Errorf("%q error = %v, want %v", ve.Name, ve.Err, want)
		}
	}

	if len(result.Warnings) != 1 || result.Warnings[0].Name != "fast path" {
		t.Errorf("Warnings = %v, want one for \"fast path\"", result.Warnings)
	}

	err := result.Error()
	if !errors.Is(err, gradient.ErrTooManyStops) || !errors.Is(err, gradient.ErrInsufficientStops) {
		t.Errorf("Error() = %v, want both sentinels reachable", err)
	}
}

func TestValidatorStrictMode(t *testing.T) {
	defs := []NamedConfig{plainDef("fast path", 2, color.FormatHex, "#000", "#fff")}

	if result := NewValidator().Validate(defs); !result.IsValid() {
		t.Errorf("default mode errors = %v, want none", result.Errors)
	}

	result := NewValidator().WithStrictMode(true).Validate(defs)
	if result.IsValid() || len(result.Warnings) != 0 {
		t.Errorf("strict mode = %+v, want the warning promoted to an error", result)
	}
}

func TestValidateDefinitions(t *testing.T) {
	if err := ValidateDefinitions([]NamedConfig{plainDef("ok", 3, color.FormatHSL, "red", "blue")}); err != nil {
		t.Errorf("ValidateDefinitions() error = %v", err)
	}
	if err := ValidateDefinitions(nil); err != nil {
		t.Errorf("ValidateDefinitions(nil) error = %v", err)
	}

	err := ValidateDefinitions([]NamedConfig{plainDef("steps", 0, color.FormatHex, "red", "blue")})
	if !errors.Is(err, gradient.ErrMissingSteps) {
		t.Errorf("ValidateDefinitions() error = %v, want ErrMissingSteps", err)
	}
}

func TestValidationErrorString(t *testing.T) {
	ve := ValidationError{Name: "sunset", Err: gradient.ErrInvalidModel}
	if got, want := ve.Error(), "sunset: "+gradient.ErrInvalidModel.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
