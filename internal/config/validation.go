package config

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// ValidationError ties a problem to the definition it was found in.
type ValidationError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ve.Name, ve.Err)
}

// Unwrap returns the underlying error.
func (ve ValidationError) Unwrap() error {
	return ve.Err
}

// ValidationResult holds the results of validating a set of definitions.
type ValidationResult struct {
	// Errors contains definitions that cannot be built.
	Errors []ValidationError
	// Warnings contains definitions that build but are probably mistakes.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns the joined validation errors, or nil.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	errs := make([]error, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		errs = append(errs, e)
	}
	return fmt.Errorf("validation failed: %w", errors.Join(errs...))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(name string, err error) {
	vr.Errors = append(vr.Errors, ValidationError{Name: name, Err: err})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(name, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Name: name, Err: errors.New(message)})
}

// Validator builds every definition and reports all failures at once,
// where gradient.New stops at the first.
type Validator struct {
	// strictMode turns warnings into errors.
	strictMode bool
}

// NewValidator creates a new Validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode enables strict validation where warnings are errors.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strictMode = strict
	return v
}

// Validate builds each definition and collects the outcome.
func (v *Validator) Validate(defs []NamedConfig) *ValidationResult {
	result := &ValidationResult{}

	for _, def := range defs {
		g, err := gradient.New(def.Config, nil)
		if err != nil {
			result.AddError(def.Name, err)
			continue
		}

		if _, err := g.Strings(def.Format); err != nil {
			result.AddError(def.Name, err)
			continue
		}

		if len(g.Stops()) == g.Steps() {
			v.warn(result, def.Name, "number of stops equals steps, no colours are interpolated")
		}
	}

	return result
}

func (v *Validator) warn(result *ValidationResult, name, message string) {
	if v.strictMode {
		result.AddError(name, errors.New(message))
		return
	}
	result.AddWarning(name, message)
}

// ValidateDefinitions validates definitions with default settings and
// returns an error if any cannot be built.
func ValidateDefinitions(defs []NamedConfig) error {
	return NewValidator().Validate(defs).Error()
}
