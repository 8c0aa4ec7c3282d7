package dto

import (
	"errors"
	"time"

	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Session errors
	ErrorCodeSessionNotFound    ErrorCode = "SES_001"
	ErrorCodeSessionLimit       ErrorCode = "SES_002"
	ErrorCodeCourseLimitReached ErrorCode = "SES_003"

	// Calculation errors
	ErrorCodeMinimumCourses        ErrorCode = "CALC_001"
	ErrorCodeEmptyInput            ErrorCode = "CALC_002"
	ErrorCodeMissingGrade          ErrorCode = "CALC_003"
	ErrorCodeInvalidCredit         ErrorCode = "CALC_004"
	ErrorCodeInvalidGrade          ErrorCode = "CALC_005"
	ErrorCodeZeroCredits           ErrorCode = "CALC_006"
	ErrorCodeMismatchedPriorFields ErrorCode = "CALC_007"
	ErrorCodeInvalidPriorAggregate ErrorCode = "CALC_008"
	ErrorCodeInvalidPriorUnitCount ErrorCode = "CALC_009"
	ErrorCodeCombinationFailed     ErrorCode = "CALC_010"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// calculationCodes maps calculation error kinds to codes, in report order
var calculationCodes = []struct {
	kind error
	code ErrorCode
}{
	{apperrors.ErrMinimumCourses, ErrorCodeMinimumCourses},
	{apperrors.ErrEmptyInput, ErrorCodeEmptyInput},
	{apperrors.ErrMissingGrade, ErrorCodeMissingGrade},
	{apperrors.ErrInvalidCredit, ErrorCodeInvalidCredit},
	{apperrors.ErrInvalidGrade, ErrorCodeInvalidGrade},
	{apperrors.ErrZeroCredits, ErrorCodeZeroCredits},
	{apperrors.ErrMismatchedPriorFields, ErrorCodeMismatchedPriorFields},
	{apperrors.ErrInvalidPriorAggregate, ErrorCodeInvalidPriorAggregate},
	{apperrors.ErrInvalidPriorUnitCount, ErrorCodeInvalidPriorUnitCount},
	{apperrors.ErrCombinationFailed, ErrorCodeCombinationFailed},
}

// CodeForKind returns the error code of a calculation error kind
func CodeForKind(kind error) (ErrorCode, bool) {
	for _, c := range calculationCodes {
		if errors.Is(kind, c.kind) {
			return c.code, true
		}
	}
	return "", false
}

// CodesFor returns the codes of every kind carried by a validation error
func CodesFor(verr *apperrors.ValidationError) []ErrorCode {
	if !verr.HasErrors() {
		return nil
	}
	codes := make([]ErrorCode, 0, len(verr.Kinds))
	for _, kind := range verr.Kinds {
		if code, ok := CodeForKind(kind); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning ErrorSeverity = "WARNING"
	ErrorSeverityError   ErrorSeverity = "ERROR"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"CALC_004"`
	Message  string        `json:"message" example:"Please enter a valid positive credit for all courses."`
	Field    string        `json:"field,omitempty" example:"credit"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// NewCalculationErrorDetail describes a validation error. The code is that of
// the first kind; every message and code is listed in Details.
func NewCalculationErrorDetail(verr *apperrors.ValidationError) *ErrorDetail {
	codes := CodesFor(verr)
	code := ErrorCodeValidationFailed
	if len(codes) > 0 {
		code = codes[0]
	}
	return NewErrorDetail(code, verr.Error()).
		WithSeverity(ErrorSeverityWarning).
		WithDetails(CalculationErrorDetails{Codes: codes, Messages: verr.Messages})
}

// CalculationErrorDetails lists each message of a calculation error
type CalculationErrorDetails struct {
	Codes    []ErrorCode `json:"codes" example:"CALC_007"`
	Messages []string    `json:"messages"`
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// WithData attaches data that is still valid despite the error
func (r *ErrorResponse) WithData(data interface{}) *ErrorResponse {
	r.Data = data
	return r
}

// ValidationErrors represents multiple request validation errors
type ValidationErrors struct {
	Errors []ErrorDetail `json:"errors"`
}

// NewValidationErrors creates a new validation errors container
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ErrorDetail, 0),
	}
}

// AddError adds a validation error to the container
func (v *ValidationErrors) AddError(field, message string) *ValidationErrors {
	v.Errors = append(v.Errors, ErrorDetail{
		Code:     ErrorCodeValidationFailed,
		Message:  message,
		Field:    field,
		Severity: ErrorSeverityError,
	})
	return v
}

// HasErrors checks if there are any validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}
