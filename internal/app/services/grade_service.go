package services

import (
	"github.com/yigit/spicalc/internal/app/models"
)

// GradeService exposes the grade table for selection widgets
type GradeService interface {
	ListGrades() []models.Grade
	PointsFor(label string) (int, bool)
}

type gradeServiceImpl struct {
	table *models.GradeTable
}

// NewGradeService creates a new grade service instance
func NewGradeService(table *models.GradeTable) GradeService {
	return &gradeServiceImpl{table: table}
}

// ListGrades returns every grade in display order
func (s *gradeServiceImpl) ListGrades() []models.Grade {
	return s.table.Grades()
}

// PointsFor looks up the points for a grade label
func (s *gradeServiceImpl) PointsFor(label string) (int, bool) {
	return s.table.Lookup(label)
}
