package models

// CourseField names an editable field of a course entry
type CourseField string

const (
	CourseFieldGrade  CourseField = "grade"
	CourseFieldCredit CourseField = "credit"
)

// Valid reports whether f names a known field
func (f CourseField) Valid() bool {
	return f == CourseFieldGrade || f == CourseFieldCredit
}
