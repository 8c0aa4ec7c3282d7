package models

import (
	"strings"
	"time"

	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

// PriorHistory holds the raw prior-history fields. Both or neither must be set.
type PriorHistory struct {
	PriorAggregate string `json:"priorAggregate" example:"8.00"`
	PriorUnitCount string `json:"priorUnitCount" example:"2"`
}

// IsEmpty reports whether neither field has been entered
func (p PriorHistory) IsEmpty() bool {
	return strings.TrimSpace(p.PriorAggregate) == "" && strings.TrimSpace(p.PriorUnitCount) == ""
}

// CalculationResult is the rendered output of a successful calculation.
// CombinedIndex is empty when no prior history was combined.
type CalculationResult struct {
	CurrentTermIndex string `json:"spi" example:"8.86"`
	CombinedIndex    string `json:"cpi,omitempty" example:"8.29"`
}

// outcome is what the last calculate (or rejected removal) produced, tagged
// with the input revision it belongs to.
type outcome struct {
	revision uint64
	result   *CalculationResult
	err      *apperrors.ValidationError
}

// Session is one calculator instance: its course list, prior history and the
// last outcome. A Session is not safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	courses  *CourseList
	prior    PriorHistory
	revision uint64
	version  uint64
	last     outcome
}

// NewSession returns a session in the pristine state
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		courses:   NewCourseList(),
	}
}

// inputsChanged bumps the input revision. An outcome recorded for an older
// revision is never shown again, so every edit clears result and error.
func (s *Session) inputsChanged() {
	s.revision++
	s.touch()
}

// touch marks a visible change of any kind
func (s *Session) touch() {
	s.version++
	s.UpdatedAt = time.Now()
}

// AddCourse appends a blank course entry
func (s *Session) AddCourse() CourseEntry {
	e := s.courses.Add()
	s.inputsChanged()
	return e
}

// UpdateCourse sets one field of a course entry. Unknown IDs are ignored.
func (s *Session) UpdateCourse(id string, field CourseField, value string) {
	if s.courses.Update(id, field, value) {
		s.inputsChanged()
	}
}

// RemoveCourse removes a course entry unless it would leave the list empty.
// A rejected removal records ErrMinimumCourses and keeps any current result.
func (s *Session) RemoveCourse(id string) error {
	if s.courses.Len() <= 1 {
		verr := apperrors.NewValidationError(apperrors.ErrMinimumCourses, MsgMinimumCourses)
		s.last = outcome{revision: s.revision, result: s.Result(), err: verr}
		s.touch()
		return verr
	}
	s.courses.Remove(id)
	s.inputsChanged()
	return nil
}

// SetPriorHistory replaces both prior-history fields
func (s *Session) SetPriorHistory(p PriorHistory) {
	if p == s.prior {
		return
	}
	s.prior = p
	s.inputsChanged()
}

// Reset returns the session to its initial state
func (s *Session) Reset() {
	s.courses = NewCourseList()
	s.prior = PriorHistory{}
	s.last = outcome{}
	s.inputsChanged()
}

// Record stores the outcome of a calculation over the current inputs
func (s *Session) Record(result *CalculationResult, verr *apperrors.ValidationError) {
	if !verr.HasErrors() {
		verr = nil
	}
	s.last = outcome{revision: s.revision, result: result, err: verr}
	s.touch()
}

// Courses returns the course entries in display order
func (s *Session) Courses() []CourseEntry {
	return s.courses.Entries()
}

// CourseCount returns the number of course entries
func (s *Session) CourseCount() int {
	return s.courses.Len()
}

// Prior returns the prior-history fields
func (s *Session) Prior() PriorHistory {
	return s.prior
}

// Revision returns the input revision
func (s *Session) Revision() uint64 {
	return s.revision
}

// Version counts every change to the session, including recorded outcomes.
// Snapshots with a higher version are newer.
func (s *Session) Version() uint64 {
	return s.version
}

// Result returns the result for the current inputs, or nil
func (s *Session) Result() *CalculationResult {
	if s.last.revision != s.revision || s.last.result == nil || s.courses.IsPristine() {
		return nil
	}
	r := *s.last.result
	return &r
}

// Err returns the validation error for the current inputs, or nil
func (s *Session) Err() *apperrors.ValidationError {
	if s.last.revision != s.revision {
		return nil
	}
	return s.last.err
}

// State returns a render-ready snapshot
func (s *Session) State() SessionState {
	st := SessionState{
		ID:             s.ID,
		Courses:        s.Courses(),
		PriorAggregate: s.prior.PriorAggregate,
		PriorUnitCount: s.prior.PriorUnitCount,
		Result:         s.Result(),
		Revision:       s.revision,
		Version:        s.version,
		UpdatedAt:      s.UpdatedAt,
	}
	if verr := s.Err(); verr.HasErrors() {
		st.Error = verr.Error()
		st.Errors = verr
	}
	return st
}

// SessionState is a point-in-time view of a session
type SessionState struct {
	ID             string
	Courses        []CourseEntry
	PriorAggregate string
	PriorUnitCount string
	Result         *CalculationResult
	Error          string
	Errors         *apperrors.ValidationError
	Revision       uint64
	Version        uint64
	UpdatedAt      time.Time
}
