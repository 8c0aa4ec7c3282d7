package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/spicalc/internal/app/controllers"
	"github.com/yigit/spicalc/internal/app/models"
	appRepos "github.com/yigit/spicalc/internal/app/repositories"
	appRoutes "github.com/yigit/spicalc/internal/app/routes"
	appServices "github.com/yigit/spicalc/internal/app/services"
	"github.com/yigit/spicalc/internal/config"
	appMiddleware "github.com/yigit/spicalc/internal/middleware"
	"github.com/yigit/spicalc/internal/pkg/logger"
	"github.com/yigit/spicalc/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	GradeTable           *models.GradeTable
	Aggregator           *appServices.Aggregator
	Repos                *appRepos.Repositories
	Hub                  *websocket.Hub
	GradeService         appServices.GradeService
	CalculatorService    appServices.CalculatorService
	GradeController      *appControllers.GradeController
	CalculatorController *appControllers.CalculatorController
	WebSocketHandler     *websocket.Handler
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
	})

	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the grade table, repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.GradeTable, err = models.NewGradeTable(cfg.Grading.Grades, cfg.Grading.MinPoints, cfg.Grading.MaxPoints)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build grade table")
		return nil, fmt.Errorf("failed to build grade table: %w", err)
	}

	deps.Aggregator, err = appServices.NewAggregator(deps.GradeTable, cfg.Grading.PriorMin, cfg.Grading.PriorMax)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build aggregator")
		return nil, fmt.Errorf("failed to build aggregator: %w", err)
	}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "websocket").Logger())

	deps.Repos = appRepos.NewRepositories(appRepos.SessionOptions{
		IdleTTL:     cfg.SessionIdleTTL(),
		MaxSessions: cfg.Session.MaxSessions,
		OnRemove:    deps.Hub.CloseSession,
	}, lgr.With().Str("component", "sessions").Logger())

	deps.GradeService = appServices.NewGradeService(deps.GradeTable)
	deps.CalculatorService = appServices.NewCalculatorService(
		deps.Repos.SessionRepository,
		deps.Aggregator,
		deps.Hub,
		cfg.Session.MaxCourses,
		lgr.With().Str("component", "calculator").Logger(),
	)

	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.CalculatorController = appControllers.NewCalculatorController(deps.CalculatorService)
	deps.WebSocketHandler = websocket.NewHandler(deps.Hub, deps.CalculatorService, lgr)

	lgr.Info().
		Int("grades", deps.GradeTable.Len()).
		Int("maxSessions", cfg.Session.MaxSessions).
		Int("maxCourses", cfg.Session.MaxCourses).
		Msg("Dependencies initialized")

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.GradeController,
		deps.CalculatorController,
		deps.WebSocketHandler,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
