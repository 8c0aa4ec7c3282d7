package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextValidation(t *testing.T) {
	assert.False(t, NewTextValidation("").Validate())
	assert.True(t, NewTextValidation("").WithRequired(false).Validate())
	assert.True(t, NewTextValidation("  anything ").Validate())
	assert.False(t, NewTextValidation("12a").WithPattern(CompiledPatterns.WholeNumber).Validate())
	assert.True(t, NewTextValidation(" 12 ").WithPattern(CompiledPatterns.WholeNumber).Validate())
}

func TestIsDecimal(t *testing.T) {
	for _, s := range []string{"3", "3.5", ".5", "5.", "-2", "+2", "1e3", "1E-3"} {
		assert.True(t, IsDecimal(s), s)
	}
	for _, s := range []string{"", "a", "3a", "1/2", ".", "1e", "1e1234", "0x1f"} {
		assert.False(t, IsDecimal(s), s)
	}
}

func TestIsWholeNumber(t *testing.T) {
	assert.True(t, IsWholeNumber("0"))
	assert.True(t, IsWholeNumber("42"))
	assert.False(t, IsWholeNumber("-1"))
	assert.False(t, IsWholeNumber("1.0"))
	assert.False(t, IsWholeNumber(""))
}

func TestIsGradeLabel(t *testing.T) {
	for _, s := range []string{"A", "A+", "B-", "AB", "P1"} {
		assert.True(t, IsGradeLabel(s), s)
	}
	for _, s := range []string{"", "+A", "1A", "A B", "ABCDEFGHI"} {
		assert.False(t, IsGradeLabel(s), s)
	}
}
