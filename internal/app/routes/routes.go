package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/spicalc/internal/app/controllers"
	"github.com/yigit/spicalc/internal/app/models/dto"
	"github.com/yigit/spicalc/internal/middleware"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
	"github.com/yigit/spicalc/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	gradeController *controllers.GradeController,
	calculatorController *controllers.CalculatorController,
	wsHandler *websocket.Handler,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/grades", gradeController.GetGrades)

	// Stateless calculation for one-shot clients
	v1.POST("/calculate",
		middleware.ValidateRequest(func() interface{} { return &dto.EvaluateRequest{} }),
		calculatorController.Evaluate,
	)

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", calculatorController.CreateSession)
		sessions.GET("/:id", calculatorController.GetSession)
		sessions.DELETE("/:id", calculatorController.DeleteSession)
		sessions.POST("/:id/reset", calculatorController.ResetSession)
		sessions.PUT("/:id/prior", calculatorController.SetPriorHistory)
		sessions.POST("/:id/calculate", calculatorController.Calculate)

		courses := sessions.Group("/:id/courses")
		{
			courses.POST("", calculatorController.AddCourse)
			courses.PATCH("/:courseId", calculatorController.UpdateCourse)
			courses.DELETE("/:courseId", calculatorController.RemoveCourse)
		}

		// Live session feed
		sessions.GET("/:id/ws", wsHandler.HandleConnection)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, "Service is healthy"))
	})

	router.NoRoute(func(c *gin.Context) {
		middleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("No route for "+c.Request.Method+" "+c.Request.URL.Path))
	})
}
