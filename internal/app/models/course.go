package models

import "strings"

// CourseEntry represents one course row as typed by the user.
// Grade and Credit hold raw text until a calculation validates them.
type CourseEntry struct {
	ID     string `json:"id" example:"0b6f4c8e-6a57-4d7c-9a55-2b1e8f2f6c11"`
	Grade  string `json:"grade" example:"A-"`
	Credit string `json:"credit" example:"3"`
}

// IsBlank reports whether neither grade nor credit has been entered
func (c CourseEntry) IsBlank() bool {
	return strings.TrimSpace(c.Grade) == "" && strings.TrimSpace(c.Credit) == ""
}
