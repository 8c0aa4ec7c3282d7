package models

import (
	"fmt"
	"strings"
)

// Grade is one row of the grade table
type Grade struct {
	Label  string `json:"label" yaml:"label" example:"A-"`
	Points int    `json:"points" yaml:"points" example:"9"`
}

// DefaultGrades is the grade scale used when configuration does not supply one
var DefaultGrades = []Grade{
	{Label: "A+", Points: 10},
	{Label: "A", Points: 10},
	{Label: "A-", Points: 9},
	{Label: "B", Points: 8},
	{Label: "B-", Points: 7},
	{Label: "C", Points: 6},
	{Label: "C-", Points: 5},
	{Label: "F", Points: 0},
}

// GradeTable maps grade labels to points. It is immutable once built.
type GradeTable struct {
	order  []Grade
	points map[string]int
}

// NewGradeTable builds a table from grades in display order. Labels must be
// unique and non-empty; points must lie within [minPoints, maxPoints].
func NewGradeTable(grades []Grade, minPoints, maxPoints int) (*GradeTable, error) {
	if len(grades) == 0 {
		return nil, fmt.Errorf("grade table is empty")
	}
	if minPoints > maxPoints {
		return nil, fmt.Errorf("grade points range [%d, %d] is empty", minPoints, maxPoints)
	}

	t := &GradeTable{
		order:  make([]Grade, 0, len(grades)),
		points: make(map[string]int, len(grades)),
	}
	for _, g := range grades {
		label := strings.TrimSpace(g.Label)
		if label == "" {
			return nil, fmt.Errorf("grade label cannot be empty")
		}
		if _, dup := t.points[label]; dup {
			return nil, fmt.Errorf("duplicate grade label %q", label)
		}
		if g.Points < minPoints || g.Points > maxPoints {
			return nil, fmt.Errorf("grade %q has %d points, outside [%d, %d]", label, g.Points, minPoints, maxPoints)
		}
		t.order = append(t.order, Grade{Label: label, Points: g.Points})
		t.points[label] = g.Points
	}
	return t, nil
}

// Lookup returns the points for label
func (t *GradeTable) Lookup(label string) (int, bool) {
	p, ok := t.points[label]
	return p, ok
}

// Grades returns a copy of the table in display order
func (t *GradeTable) Grades() []Grade {
	out := make([]Grade, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of grades
func (t *GradeTable) Len() int {
	return len(t.order)
}
