package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// SessionOptions configures a SessionRepository
type SessionOptions struct {
	// IdleTTL is how long a session survives without being touched
	IdleTTL time.Duration
	// MaxSessions caps the number of live sessions; zero means unlimited
	MaxSessions int
	// OnRemove, if set, is called after a session is deleted or evicted
	OnRemove func(sessionID string)
}

// sessionEntry serialises all operations on one session
type sessionEntry struct {
	mu       sync.Mutex
	session  *models.Session
	lastSeen time.Time
}

// SessionRepository keeps calculator sessions in process memory.
// Nothing is persisted; sessions expire after IdleTTL.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	opts     SessionOptions
	now      func() time.Time
	logger   zerolog.Logger
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(opts SessionOptions, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*sessionEntry),
		opts:     opts,
		now:      time.Now,
		logger:   logger,
	}
}

// Create stores a new pristine session and returns its state
func (r *SessionRepository) Create(ctx context.Context) (models.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return models.SessionState{}, err
	}

	r.mu.Lock()

	var evicted []string
	if r.opts.MaxSessions > 0 && len(r.sessions) >= r.opts.MaxSessions {
		evicted = r.evictExpiredLocked()
		if len(r.sessions) >= r.opts.MaxSessions {
			r.mu.Unlock()
			r.notifyRemoved(evicted...)
			r.logger.Warn().Int("maxSessions", r.opts.MaxSessions).Msg("Session capacity reached")
			return models.SessionState{}, apperrors.ErrSessionLimit
		}
	}

	session := models.NewSession(uuid.New().String())
	r.sessions[session.ID] = &sessionEntry{session: session, lastSeen: r.now()}
	active := len(r.sessions)
	r.mu.Unlock()

	r.notifyRemoved(evicted...)
	r.logger.Debug().Str("sessionID", session.ID).Int("activeSessions", active).Msg("Session created")
	return session.State(), nil
}

// With runs fn on the session with the given ID while holding its lock.
// Expired or unknown sessions yield ErrSessionNotFound.
func (r *SessionRepository) With(ctx context.Context, id string, fn func(s *models.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := r.now()
	if r.expired(entry, now) {
		r.Delete(ctx, id)
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	entry.lastSeen = now

	return fn(entry.session)
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		r.logger.Debug().Str("sessionID", id).Msg("Session deleted")
		r.notifyRemoved(id)
	}
}

// Exists reports whether a live session has the given ID
func (r *SessionRepository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[id]
	return ok
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes idle sessions and returns how many were evicted
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	evicted := r.evictExpiredLocked()
	r.mu.Unlock()

	r.notifyRemoved(evicted...)
	return len(evicted)
}

// StartJanitor sweeps idle sessions every interval until ctx is done
func (r *SessionRepository) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.opts.IdleTTL <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.logger.Debug().Msg("Session janitor stopped")
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.logger.Info().Int("evicted", n).Int("activeSessions", r.Count()).Msg("Evicted idle sessions")
				}
			}
		}
	}()
}

// evictExpiredLocked drops idle sessions and returns their IDs
func (r *SessionRepository) evictExpiredLocked() []string {
	now := r.now()
	var evicted []string
	for id, entry := range r.sessions {
		// Entries in use are skipped; they are touched on unlock anyway.
		if !entry.mu.TryLock() {
			continue
		}
		if r.expired(entry, now) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
		entry.mu.Unlock()
	}
	return evicted
}

func (r *SessionRepository) notifyRemoved(ids ...string) {
	if r.opts.OnRemove == nil {
		return
	}
	for _, id := range ids {
		r.opts.OnRemove(id)
	}
}

func (r *SessionRepository) expired(entry *sessionEntry, now time.Time) bool {
	return r.opts.IdleTTL > 0 && now.Sub(entry.lastSeen) > r.opts.IdleTTL
}
