package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/pkg/helpers"
	"github.com/yigit/spicalc/internal/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Session struct {
		IdleTTL       string `yaml:"idle_ttl" env:"SESSION_IDLE_TTL"`
		SweepInterval string `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
		MaxSessions   int    `yaml:"max_sessions" env:"SESSION_MAX_SESSIONS"`
		MaxCourses    int    `yaml:"max_courses" env:"SESSION_MAX_COURSES"`
	} `yaml:"session"`

	Grading struct {
		// Grades has no env override; set it in the config file.
		Grades    []models.Grade `yaml:"grades"`
		MinPoints int            `yaml:"min_points" env:"GRADING_MIN_POINTS"`
		MaxPoints int            `yaml:"max_points" env:"GRADING_MAX_POINTS"`
		PriorMin  float64        `yaml:"prior_min" env:"GRADING_PRIOR_MIN"`
		PriorMax  float64        `yaml:"prior_max" env:"GRADING_PRIOR_MAX"`
	} `yaml:"grading"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults and env still apply without it
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"
	config.Server.ShutdownTimeout = "10s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Session.IdleTTL = "30m"
	config.Session.SweepInterval = "1m"
	config.Session.MaxSessions = 10000
	config.Session.MaxCourses = 50

	config.Grading.Grades = append([]models.Grade(nil), models.DefaultGrades...)
	config.Grading.MinPoints = 0
	config.Grading.MaxPoints = 10
	config.Grading.PriorMin = 0
	config.Grading.PriorMax = 10
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric: %q", config.Server.Port)
	}

	durations := map[string]string{
		"server.read_timeout":     config.Server.ReadTimeout,
		"server.write_timeout":    config.Server.WriteTimeout,
		"server.idle_timeout":     config.Server.IdleTimeout,
		"server.shutdown_timeout": config.Server.ShutdownTimeout,
		"session.idle_ttl":        config.Session.IdleTTL,
		"session.sweep_interval":  config.Session.SweepInterval,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if config.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if config.Session.MaxCourses <= 0 {
		return fmt.Errorf("session.max_courses must be positive")
	}

	if config.Grading.MinPoints > config.Grading.MaxPoints {
		return fmt.Errorf("grading.min_points (%d) exceeds grading.max_points (%d)",
			config.Grading.MinPoints, config.Grading.MaxPoints)
	}
	if config.Grading.PriorMin > config.Grading.PriorMax {
		return fmt.Errorf("grading.prior_min (%v) exceeds grading.prior_max (%v)",
			config.Grading.PriorMin, config.Grading.PriorMax)
	}
	if len(config.Grading.Grades) == 0 {
		return fmt.Errorf("grading.grades must not be empty")
	}
	for _, g := range config.Grading.Grades {
		if !validation.IsGradeLabel(g.Label) {
			return fmt.Errorf("invalid grade label %q", g.Label)
		}
	}
	if _, err := models.NewGradeTable(config.Grading.Grades, config.Grading.MinPoints, config.Grading.MaxPoints); err != nil {
		return fmt.Errorf("invalid grading.grades: %w", err)
	}

	return nil
}

// ServerTimeouts returns the read, write, idle and shutdown timeouts
func (c *Config) ServerTimeouts() (read, write, idle, shutdown time.Duration) {
	return helpers.ParseDuration(c.Server.ReadTimeout, 10*time.Second),
		helpers.ParseDuration(c.Server.WriteTimeout, 10*time.Second),
		helpers.ParseDuration(c.Server.IdleTimeout, 120*time.Second),
		helpers.ParseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// SessionIdleTTL returns how long an untouched session is kept
func (c *Config) SessionIdleTTL() time.Duration {
	return helpers.ParseDuration(c.Session.IdleTTL, 30*time.Minute)
}

// SessionSweepInterval returns how often expired sessions are evicted
func (c *Config) SessionSweepInterval() time.Duration {
	return helpers.ParseDuration(c.Session.SweepInterval, time.Minute)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
