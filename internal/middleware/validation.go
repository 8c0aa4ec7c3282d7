package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/spicalc/internal/app/models/dto"
)

// ValidatedBodyKey is the context key holding a request body bound by
// ValidateRequest
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh value made by newObj and
// validates it. The bound value is stored under ValidatedBodyKey.
func ValidateRequest(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(BindingErrorDetail(err)))
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// BindingErrorDetail describes a failed ShouldBindJSON call
func BindingErrorDetail(err error) *dto.ErrorDetail {
	if _, ok := err.(validator.ValidationErrors); ok {
		return dto.HandleValidationError(err)
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ValidatedBodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}
