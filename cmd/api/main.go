package main

import (
	"os"

	"github.com/yigit/spicalc/internal/pkg/logger"
	"github.com/yigit/spicalc/internal/server"
)

// @title SPI/CPI Calculator API
// @version 1.0
// @description Computes a student's Semester Performance Index from course grades and credits, and the updated Cumulative Performance Index from prior history.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@spicalc.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// The package default logger is usable before configuration
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
