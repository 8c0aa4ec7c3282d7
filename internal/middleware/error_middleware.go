package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/spicalc/internal/app/models/dto"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
	"github.com/yigit/spicalc/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an error to its HTTP status and writes a standard
// error response
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// HandleAPIErrorWithData is HandleAPIError carrying data that is still
// meaningful, such as a session snapshot after a rejected edit
func HandleAPIErrorWithData(c *gin.Context, err error, data interface{}) {
	status, detail := ErrorDetailFor(err)
	c.JSON(status, dto.NewErrorResponse(detail).WithData(data))
}

// ErrorDetailFor returns the HTTP status and error detail for err
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	var verr *apperrors.ValidationError
	var custom *apperrors.CustomError

	switch {
	case errors.As(err, &verr):
		if errors.Is(err, apperrors.ErrMinimumCourses) {
			return http.StatusConflict, dto.NewCalculationErrorDetail(verr)
		}
		return http.StatusUnprocessableEntity, dto.NewCalculationErrorDetail(verr)
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found")
	case errors.Is(err, apperrors.ErrSessionLimit):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeSessionLimit, "Too many active sessions, try again later")
	case errors.Is(err, apperrors.ErrCourseLimitReached):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeCourseLimitReached, err.Error())
	case errors.Is(err, apperrors.ErrUnknownCourseField):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Field must be one of: grade credit").WithField("field")
	case errors.As(err, &custom) && errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, custom.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

var errPanic = errors.New("panic")
