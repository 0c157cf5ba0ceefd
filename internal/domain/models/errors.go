package models

import "fmt"

// ValidationError reports bad caller input, e.g. a non-positive lookback
// window. It never wraps transport failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a named field.
func NewValidationError(field, format string, a ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// FetchError reports a network or backend failure while fetching metrics.
// Empty result sets are valid and never produce a FetchError.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError wraps err with the source that failed.
func NewFetchError(source string, err error) *FetchError {
	return &FetchError{Source: source, Err: err}
}
