package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryUsage     Category = "usage"
	CategoryPreflight Category = "preflight"
	CategorySetup     Category = "setup"
	CategoryConfig    Category = "config"
)

// ForgeError is a structured error with a fix suggestion and documentation link.
type ForgeError struct {
	// Code is a unique error identifier (e.g., "E102").
	Code string

	// Category is the error type (usage, preflight, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Step is the setup step that failed, if the error occurred mid-run.
	Step string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ForgeError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *ForgeError) WithDetail(d string) *ForgeError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *ForgeError) WithDetailf(format string, args ...any) *ForgeError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithStep records the setup step that produced the error.
func (e *ForgeError) WithStep(name string) *ForgeError {
	e.Step = name
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ForgeError) WithSuggestion(s string) *ForgeError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *ForgeError) Wrap(err error) *ForgeError {
	e.Wrapped = err
	return e
}

// New creates a ForgeError from a registered error code.
func New(code string) *ForgeError {
	template, ok := registry[code]
	if !ok {
		return &ForgeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ForgeError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new ForgeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ForgeError {
	return &ForgeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ForgeError.
func FromError(err error, code string) *ForgeError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*ForgeError); ok {
		return fe
	}
	return New(code).Wrap(err)
}
