package forms

import (
	"fmt"
	"strings"
)

// FieldError describes a single validation failure attached to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes reported by the field helpers.
const (
	CodeRequired      = "required"
	CodeMaxLength     = "max_length"
	CodeMinValue      = "min_value"
	CodeMaxDigits     = "max_digits"
	CodeDecimalPlaces = "decimal_places"
	CodeInvalid       = "invalid"
	CodeInvalidChoice = "invalid_choice"
)

// ValidationError aggregates per-field errors and at most one form-level
// error for a single submission.
type ValidationError struct {
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	FormError   string       `json:"form_error,omitempty"`
}

func (e *ValidationError) AddFieldError(field, code, message string) {
	e.FieldErrors = append(e.FieldErrors, FieldError{Field: field, Code: code, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.FieldErrors) > 0 || e.FormError != ""
}

func (e *ValidationError) Error() string {
	if e.FormError != "" {
		return e.FormError
	}
	parts := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}
