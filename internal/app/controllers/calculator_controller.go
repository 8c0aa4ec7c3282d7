package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/models/dto"
	"github.com/yigit/spicalc/internal/app/services"
	"github.com/yigit/spicalc/internal/middleware"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// CalculatorController handles calculator sessions and stateless calculations
type CalculatorController struct {
	calculatorService services.CalculatorService
}

// NewCalculatorController creates a new CalculatorController
func NewCalculatorController(calculatorService services.CalculatorService) *CalculatorController {
	return &CalculatorController{
		calculatorService: calculatorService,
	}
}

func (c *CalculatorController) respondState(ctx *gin.Context, status int, state models.SessionState, message string) {
	ctx.JSON(status, dto.NewSuccessResponse(dto.FromSessionState(state), message))
}

// Evaluate calculates SPI and CPI for the posted inputs
// @Summary Calculate SPI/CPI
// @Description Computes the credit-weighted SPI of the posted courses and, when both prior fields are given, the new CPI. No session is involved.
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Courses and optional prior history"
// @Success 200 {object} dto.APIResponse{data=dto.EvaluateResponse} "Calculation succeeded"
// @Failure 400 {object} dto.ErrorResponse "Malformed request"
// @Failure 422 {object} dto.ErrorResponse{data=dto.EvaluateResponse} "Invalid inputs; data carries the SPI when only prior history was invalid"
// @Router /calculate [post]
func (c *CalculatorController) Evaluate(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.EvaluateRequest](ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Missing request body"))
		return
	}

	result, err := c.calculatorService.Evaluate(ctx, dto.ToCourseEntries(req.Courses), models.PriorHistory{
		PriorAggregate: req.PriorAggregate,
		PriorUnitCount: req.PriorUnitCount,
	})
	if err != nil {
		if result != nil {
			middleware.HandleAPIErrorWithData(ctx, err, dto.EvaluateResponse{ResultResponse: *dto.FromResult(result)})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EvaluateResponse{ResultResponse: *dto.FromResult(result)}, "Calculation succeeded"))
}

// CreateSession starts a calculator session
// @Summary Create a session
// @Description Creates a calculator session holding one blank course row
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Session created"
// @Failure 503 {object} dto.ErrorResponse "Too many active sessions"
// @Router /sessions [post]
func (c *CalculatorController) CreateSession(ctx *gin.Context) {
	state, err := c.calculatorService.CreateSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusCreated, state, "Session created")
}

// GetSession returns a session
// @Summary Get a session
// @Description Returns the course rows, prior history, last result and error of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *CalculatorController) GetSession(ctx *gin.Context) {
	state, err := c.calculatorService.GetSession(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Session retrieved")
}

// DeleteSession drops a session
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *CalculatorController) DeleteSession(ctx *gin.Context) {
	if err := c.calculatorService.DeleteSession(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Session deleted"))
}

// ResetSession clears a session
// @Summary Reset a session
// @Description Returns the session to one blank course row with no prior history or result
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session reset"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/reset [post]
func (c *CalculatorController) ResetSession(ctx *gin.Context) {
	state, err := c.calculatorService.ResetSession(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Session reset")
}

// AddCourse appends a course row
// @Summary Add a course
// @Description Appends a blank course row; clears any result
// @Tags courses
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Course added"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Course limit reached"
// @Router /sessions/{id}/courses [post]
func (c *CalculatorController) AddCourse(ctx *gin.Context) {
	state, err := c.calculatorService.AddCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusCreated, state, "Course added")
}

// UpdateCourse edits a course row
// @Summary Update a course
// @Description Sets the grade or credit of a course row; clears any result. Unknown course IDs are ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param courseId path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Field and value"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/courses/{courseId} [patch]
func (c *CalculatorController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	state, err := c.calculatorService.UpdateCourse(ctx, ctx.Param("id"), ctx.Param("courseId"), models.CourseField(req.Field), req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Course updated")
}

// RemoveCourse deletes a course row
// @Summary Remove a course
// @Description Removes a course row; the last remaining row cannot be removed
// @Tags courses
// @Produce json
// @Param id path string true "Session ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Course removed"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse{data=dto.SessionResponse} "At least one course is required"
// @Router /sessions/{id}/courses/{courseId} [delete]
func (c *CalculatorController) RemoveCourse(ctx *gin.Context) {
	state, err := c.calculatorService.RemoveCourse(ctx, ctx.Param("id"), ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, apperrors.ErrMinimumCourses) {
			middleware.HandleAPIErrorWithData(ctx, err, dto.FromSessionState(state))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Course removed")
}

// SetPriorHistory replaces the prior-history fields
// @Summary Set prior history
// @Description Sets the previous CPI and number of previous semesters; clears any result. Send empty strings to clear them.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PriorHistoryRequest true "Prior history"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Prior history updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/prior [put]
func (c *CalculatorController) SetPriorHistory(ctx *gin.Context) {
	var req dto.PriorHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	state, err := c.calculatorService.SetPriorHistory(ctx, ctx.Param("id"), models.PriorHistory{
		PriorAggregate: req.PriorAggregate,
		PriorUnitCount: req.PriorUnitCount,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Prior history updated")
}

// Calculate runs the calculation for a session
// @Summary Calculate a session
// @Description Computes SPI (and CPI when prior history is set) over the session's current inputs. Input problems are reported in the session's error field, not as an HTTP error.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Calculation finished"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/calculate [post]
func (c *CalculatorController) Calculate(ctx *gin.Context) {
	state, err := c.calculatorService.Calculate(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondState(ctx, http.StatusOK, state, "Calculation finished")
}
