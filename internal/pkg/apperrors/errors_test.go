package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorCollectsInOrder(t *testing.T) {
	v := &ValidationError{}
	assert.False(t, v.HasErrors())
	assert.Nil(t, v.OrNil())

	v.Add(ErrInvalidPriorAggregate, "first.")
	v.Add(ErrInvalidPriorUnitCount, "second.")

	assert.True(t, v.HasErrors())
	assert.Equal(t, "first. second.", v.Error())
	assert.True(t, errors.Is(v, ErrInvalidPriorAggregate))
	assert.True(t, errors.Is(v, ErrInvalidPriorUnitCount))
	assert.False(t, errors.Is(v, ErrMissingGrade))
}

func TestNilValidationError(t *testing.T) {
	var v *ValidationError
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.OrNil())
}

func TestValidationErrorThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("calculate: %w", NewValidationError(ErrEmptyInput, "Please add at least one course."))

	var v *ValidationError
	assert.True(t, errors.As(wrapped, &v))
	assert.True(t, errors.Is(wrapped, ErrEmptyInput))
}

func TestCustomError(t *testing.T) {
	err := NewBadRequestError("Missing request body")
	assert.Equal(t, "Missing request body", err.Error())
	assert.True(t, errors.Is(err, ErrBadRequest))

	err = NewResourceNotFoundError("")
	assert.Equal(t, ErrResourceNotFound.Error(), err.Error())

	var custom *CustomError
	assert.True(t, errors.As(fmt.Errorf("update: %w", err), &custom))
	assert.True(t, errors.Is(custom, ErrResourceNotFound))
}
