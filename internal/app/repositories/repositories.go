package repositories

import (
	"github.com/rs/zerolog"
)

// Repositories holds all the repository instances
type Repositories struct {
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(sessionOpts SessionOptions, logger zerolog.Logger) *Repositories {
	return &Repositories{
		SessionRepository: NewSessionRepository(sessionOpts, logger),
	}
}
