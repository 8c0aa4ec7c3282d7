package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/spicalc/internal/app/models/dto"
	"github.com/yigit/spicalc/internal/app/services"
)

// GradeController serves the grade table
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetGrades lists the grade table
// @Summary List grades
// @Description Returns every selectable grade with its points, in display order
// @Tags grades
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradeListResponse} "Grades retrieved successfully"
// @Router /grades [get]
func (c *GradeController) GetGrades(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromGrades(c.gradeService.ListGrades()), "Grades retrieved successfully"))
}
