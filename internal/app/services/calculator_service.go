package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/repositories"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// StatePublisher receives a session snapshot after every change. It is called
// with the session locked and must not block.
type StatePublisher interface {
	PublishState(state models.SessionState)
}

// CalculatorService defines the session-scoped calculator operations
type CalculatorService interface {
	CreateSession(ctx context.Context) (models.SessionState, error)
	GetSession(ctx context.Context, sessionID string) (models.SessionState, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ResetSession(ctx context.Context, sessionID string) (models.SessionState, error)
	AddCourse(ctx context.Context, sessionID string) (models.SessionState, error)
	UpdateCourse(ctx context.Context, sessionID, courseID string, field models.CourseField, value string) (models.SessionState, error)
	RemoveCourse(ctx context.Context, sessionID, courseID string) (models.SessionState, error)
	SetPriorHistory(ctx context.Context, sessionID string, prior models.PriorHistory) (models.SessionState, error)
	Calculate(ctx context.Context, sessionID string) (models.SessionState, error)
	Evaluate(ctx context.Context, courses []models.CourseEntry, prior models.PriorHistory) (*models.CalculationResult, error)
	SessionExists(ctx context.Context, sessionID string) bool
}

// calculatorServiceImpl implements the CalculatorService interface
type calculatorServiceImpl struct {
	sessionRepo *repositories.SessionRepository
	aggregator  *Aggregator
	publisher   StatePublisher
	maxCourses  int
	logger      zerolog.Logger
}

// NewCalculatorService creates a new calculator service instance.
// publisher may be nil. maxCourses of zero means no cap.
func NewCalculatorService(
	sessionRepo *repositories.SessionRepository,
	aggregator *Aggregator,
	publisher StatePublisher,
	maxCourses int,
	logger zerolog.Logger,
) CalculatorService {
	return &calculatorServiceImpl{
		sessionRepo: sessionRepo,
		aggregator:  aggregator,
		publisher:   publisher,
		maxCourses:  maxCourses,
		logger:      logger,
	}
}

// mutate runs fn on the session and publishes the resulting state. Publishing
// happens under the session lock so snapshots leave in version order.
func (s *calculatorServiceImpl) mutate(ctx context.Context, sessionID string, fn func(session *models.Session) error) (models.SessionState, error) {
	var state models.SessionState
	var fnErr error
	err := s.sessionRepo.With(ctx, sessionID, func(session *models.Session) error {
		fnErr = fn(session)
		state = session.State()
		if s.publisher != nil {
			s.publisher.PublishState(state)
		}
		return nil
	})
	if err != nil {
		return models.SessionState{}, err
	}
	return state, fnErr
}

// CreateSession creates a session holding one blank course row
func (s *calculatorServiceImpl) CreateSession(ctx context.Context) (models.SessionState, error) {
	state, err := s.sessionRepo.Create(ctx)
	if err != nil {
		return models.SessionState{}, fmt.Errorf("error creating session: %w", err)
	}
	return state, nil
}

// GetSession returns the current state of a session
func (s *calculatorServiceImpl) GetSession(ctx context.Context, sessionID string) (models.SessionState, error) {
	var state models.SessionState
	err := s.sessionRepo.With(ctx, sessionID, func(session *models.Session) error {
		state = session.State()
		return nil
	})
	return state, err
}

// SessionExists reports whether the session is live
func (s *calculatorServiceImpl) SessionExists(ctx context.Context, sessionID string) bool {
	return s.sessionRepo.Exists(ctx, sessionID)
}

// DeleteSession drops a session
func (s *calculatorServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if !s.sessionRepo.Exists(ctx, sessionID) {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}
	s.sessionRepo.Delete(ctx, sessionID)
	return nil
}

// ResetSession returns a session to its pristine state
func (s *calculatorServiceImpl) ResetSession(ctx context.Context, sessionID string) (models.SessionState, error) {
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		session.Reset()
		return nil
	})
}

// AddCourse appends a blank course row
func (s *calculatorServiceImpl) AddCourse(ctx context.Context, sessionID string) (models.SessionState, error) {
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		if s.maxCourses > 0 && session.CourseCount() >= s.maxCourses {
			return fmt.Errorf("%w: at most %d courses", apperrors.ErrCourseLimitReached, s.maxCourses)
		}
		session.AddCourse()
		return nil
	})
}

// UpdateCourse sets the grade or credit of a course row
func (s *calculatorServiceImpl) UpdateCourse(ctx context.Context, sessionID, courseID string, field models.CourseField, value string) (models.SessionState, error) {
	if !field.Valid() {
		return models.SessionState{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownCourseField, field)
	}
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		session.UpdateCourse(courseID, field, value)
		return nil
	})
}

// RemoveCourse removes a course row. Removing the last row is rejected with
// ErrMinimumCourses; the returned state still carries the message.
func (s *calculatorServiceImpl) RemoveCourse(ctx context.Context, sessionID, courseID string) (models.SessionState, error) {
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		return session.RemoveCourse(courseID)
	})
}

// SetPriorHistory replaces the prior-history fields
func (s *calculatorServiceImpl) SetPriorHistory(ctx context.Context, sessionID string, prior models.PriorHistory) (models.SessionState, error) {
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		session.SetPriorHistory(prior)
		return nil
	})
}

// Calculate runs the aggregator over the session's current inputs. Validation
// failures are part of the returned state, not an error.
func (s *calculatorServiceImpl) Calculate(ctx context.Context, sessionID string) (models.SessionState, error) {
	return s.mutate(ctx, sessionID, func(session *models.Session) error {
		calc, verr := s.aggregator.Aggregate(session.Courses(), session.Prior())
		session.Record(calc.Result(), verr)
		if verr.HasErrors() {
			s.logger.Debug().Str("sessionID", sessionID).Strs("messages", verr.Messages).Msg("Calculation rejected")
		}
		return nil
	})
}

// Evaluate runs the aggregator over ad-hoc inputs without touching any
// session. The result is non-nil whenever the SPI succeeded, even if the
// returned error reports prior-history problems.
func (s *calculatorServiceImpl) Evaluate(ctx context.Context, courses []models.CourseEntry, prior models.PriorHistory) (*models.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.maxCourses > 0 && len(courses) > s.maxCourses {
		return nil, fmt.Errorf("%w: at most %d courses", apperrors.ErrCourseLimitReached, s.maxCourses)
	}

	calc, verr := s.aggregator.Aggregate(courses, prior)
	return calc.Result(), verr.OrNil()
}
