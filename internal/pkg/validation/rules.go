package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Decimal number, optionally signed, with an optional exponent.
	// Fractions ("1/3"), hex and base prefixes are not accepted.
	DecimalPattern = `^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d{1,3})?$`

	// Whole number without sign or decimal point
	WholeNumberPattern = `^\d+$`

	// Grade label: short printable token such as "A+" or "B-"
	GradeLabelPattern = `^[A-Za-z][A-Za-z0-9+\-]{0,7}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Decimal     *regexp.Regexp
	WholeNumber *regexp.Regexp
	GradeLabel  *regexp.Regexp
}{
	Decimal:     regexp.MustCompile(DecimalPattern),
	WholeNumber: regexp.MustCompile(WholeNumberPattern),
	GradeLabel:  regexp.MustCompile(GradeLabelPattern),
}

// TextValidation validates raw user text against a pattern
type TextValidation struct {
	Value    string
	Required bool
	Pattern  *regexp.Regexp
}

// NewTextValidation creates a new text validation. Surrounding whitespace is
// ignored.
func NewTextValidation(value string) *TextValidation {
	return &TextValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithPattern sets regex pattern
func (v *TextValidation) WithPattern(pattern *regexp.Regexp) *TextValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *TextValidation) WithRequired(required bool) *TextValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *TextValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsDecimal reports whether s is a plain decimal number
func IsDecimal(s string) bool {
	return NewTextValidation(s).WithPattern(CompiledPatterns.Decimal).Validate()
}

// IsWholeNumber reports whether s is a non-negative integer written without a
// sign or decimal point
func IsWholeNumber(s string) bool {
	return NewTextValidation(s).WithPattern(CompiledPatterns.WholeNumber).Validate()
}

// IsGradeLabel reports whether s is usable as a grade label
func IsGradeLabel(s string) bool {
	return NewTextValidation(s).WithPattern(CompiledPatterns.GradeLabel).Validate()
}
