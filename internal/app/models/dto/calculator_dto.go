package dto

import (
	"time"

	"github.com/yigit/spicalc/internal/app/models"
)

// CourseInput is one course row in a stateless calculation request
type CourseInput struct {
	Grade  string `json:"grade" example:"A"`
	Credit string `json:"credit" example:"3"`
}

// EvaluateRequest is a stateless calculation request
type EvaluateRequest struct {
	Courses        []CourseInput `json:"courses" binding:"max=100"`
	PriorAggregate string        `json:"priorAggregate" binding:"max=32" example:"8.00"`
	PriorUnitCount string        `json:"priorUnitCount" binding:"max=32" example:"2"`
}

// UpdateCourseRequest sets one field of a course row
type UpdateCourseRequest struct {
	Field string `json:"field" binding:"required,oneof=grade credit" example:"grade"`
	Value string `json:"value" binding:"max=32" example:"A-"`
}

// PriorHistoryRequest replaces the prior-history fields
type PriorHistoryRequest struct {
	PriorAggregate string `json:"priorAggregate" binding:"max=32" example:"8.00"`
	PriorUnitCount string `json:"priorUnitCount" binding:"max=32" example:"2"`
}

// GradeResponse is one grade table row
type GradeResponse struct {
	Label  string `json:"label" example:"A-"`
	Points int    `json:"points" example:"9"`
}

// GradeListResponse lists the grade table in display order
type GradeListResponse struct {
	Grades []GradeResponse `json:"grades"`
}

// CourseResponse is one course row of a session
type CourseResponse struct {
	ID     string `json:"id" example:"0b6f4c8e-6a57-4d7c-9a55-2b1e8f2f6c11"`
	Index  int    `json:"index" example:"1"`
	Grade  string `json:"grade" example:"A"`
	Credit string `json:"credit" example:"3"`
}

// ResultResponse carries SPI and, when prior history was combined, CPI
type ResultResponse struct {
	SPI string `json:"spi" example:"8.86"`
	CPI string `json:"cpi,omitempty" example:"8.29"`
}

// SessionResponse is a render-ready view of a calculator session
type SessionResponse struct {
	ID             string           `json:"id" example:"5d0c7f0a-3b61-4c1f-8f0e-7a2b8c9d0e1f"`
	Courses        []CourseResponse `json:"courses"`
	PriorAggregate string           `json:"priorAggregate" example:"8.00"`
	PriorUnitCount string           `json:"priorUnitCount" example:"2"`
	Result         *ResultResponse  `json:"result"`
	Error          string           `json:"error" example:""`
	ErrorCodes     []ErrorCode      `json:"errorCodes,omitempty"`
	Revision       uint64           `json:"revision" example:"3"`
	Version        uint64           `json:"version" example:"5"`
	UpdatedAt      time.Time        `json:"updatedAt" example:"2025-04-23T12:01:05.123Z"`
}

// EvaluateResponse is the outcome of a stateless calculation
type EvaluateResponse struct {
	ResultResponse
}

// Session update types
const (
	UpdateTypeState  = "state"
	UpdateTypeClosed = "closed"
)

// SessionUpdate is pushed to live session subscribers. Session is absent
// from the final "closed" update sent when the session is deleted or expires.
type SessionUpdate struct {
	Type      string           `json:"type" example:"state"`
	SessionID string           `json:"sessionId"`
	Session   *SessionResponse `json:"session,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// ToCourseEntries converts request rows into course entries
func ToCourseEntries(in []CourseInput) []models.CourseEntry {
	out := make([]models.CourseEntry, 0, len(in))
	for _, c := range in {
		out = append(out, models.CourseEntry{Grade: c.Grade, Credit: c.Credit})
	}
	return out
}

// FromGrades converts grade table rows
func FromGrades(grades []models.Grade) GradeListResponse {
	resp := GradeListResponse{Grades: make([]GradeResponse, 0, len(grades))}
	for _, g := range grades {
		resp.Grades = append(resp.Grades, GradeResponse{Label: g.Label, Points: g.Points})
	}
	return resp
}

// FromResult converts a calculation result; nil stays nil
func FromResult(r *models.CalculationResult) *ResultResponse {
	if r == nil {
		return nil
	}
	return &ResultResponse{SPI: r.CurrentTermIndex, CPI: r.CombinedIndex}
}

// FromSessionState converts a session snapshot
func FromSessionState(st models.SessionState) SessionResponse {
	resp := SessionResponse{
		ID:             st.ID,
		Courses:        make([]CourseResponse, 0, len(st.Courses)),
		PriorAggregate: st.PriorAggregate,
		PriorUnitCount: st.PriorUnitCount,
		Result:         FromResult(st.Result),
		Error:          st.Error,
		ErrorCodes:     CodesFor(st.Errors),
		Revision:       st.Revision,
		Version:        st.Version,
		UpdatedAt:      st.UpdatedAt,
	}
	for i, c := range st.Courses {
		resp.Courses = append(resp.Courses, CourseResponse{
			ID:     c.ID,
			Index:  i + 1,
			Grade:  c.Grade,
			Credit: c.Credit,
		})
	}
	return resp
}

// NewSessionUpdate wraps a session snapshot for live subscribers
func NewSessionUpdate(st models.SessionState) SessionUpdate {
	resp := FromSessionState(st)
	return SessionUpdate{
		Type:      UpdateTypeState,
		SessionID: st.ID,
		Session:   &resp,
		Timestamp: time.Now(),
	}
}

// NewSessionClosedUpdate tells subscribers the session is gone
func NewSessionClosedUpdate(sessionID string) SessionUpdate {
	return SessionUpdate{
		Type:      UpdateTypeClosed,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}
