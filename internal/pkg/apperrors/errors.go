package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Session errors
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionLimit       = errors.New("too many active sessions")
	ErrCourseLimitReached = errors.New("course limit reached")
	ErrUnknownCourseField = errors.New("unknown course field")
)

// Calculation errors. Every one of them is a recoverable input problem.
var (
	ErrMinimumCourses        = errors.New("minimum one course")
	ErrEmptyInput            = errors.New("empty input")
	ErrMissingGrade          = errors.New("missing grade")
	ErrInvalidCredit         = errors.New("invalid credit")
	ErrInvalidGrade          = errors.New("invalid grade")
	ErrZeroCredits           = errors.New("zero credits")
	ErrMismatchedPriorFields = errors.New("mismatched prior fields")
	ErrInvalidPriorAggregate = errors.New("invalid prior aggregate")
	ErrInvalidPriorUnitCount = errors.New("invalid prior unit count")
	ErrCombinationFailed     = errors.New("combination failed")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// ValidationError is the user-facing outcome of a failed calculation. It keeps
// every message in the order it was produced together with the error kind
// behind it, so errors.Is matches any of the kinds.
type ValidationError struct {
	Kinds    []error
	Messages []string
}

// NewValidationError creates a ValidationError holding a single message
func NewValidationError(kind error, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(kind, message)
	return v
}

// Add appends a message of the given kind
func (v *ValidationError) Add(kind error, message string) {
	v.Kinds = append(v.Kinds, kind)
	v.Messages = append(v.Messages, message)
}

// HasErrors reports whether any message has been collected
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Messages) > 0
}

// Error joins the collected messages with a single space
func (v *ValidationError) Error() string {
	return strings.Join(v.Messages, " ")
}

// Unwrap exposes the collected kinds to errors.Is and errors.As
func (v *ValidationError) Unwrap() []error {
	return v.Kinds
}

// OrNil returns v as an error, or nil when nothing was collected.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}
