package models

import "github.com/google/uuid"

// CourseList is an ordered set of course entries addressed by ID.
// Entries live in an arena keyed by ID; order keeps display order.
type CourseList struct {
	entries map[string]*CourseEntry
	order   []string
	newID   func() string
}

// NewCourseList returns a list holding a single blank entry
func NewCourseList() *CourseList {
	return newCourseList(func() string { return uuid.New().String() })
}

func newCourseList(newID func() string) *CourseList {
	l := &CourseList{
		entries: make(map[string]*CourseEntry),
		newID:   newID,
	}
	l.Add()
	return l
}

// Add appends a blank entry and returns it
func (l *CourseList) Add() CourseEntry {
	e := &CourseEntry{ID: l.newID()}
	l.entries[e.ID] = e
	l.order = append(l.order, e.ID)
	return *e
}

// Update sets one field of the entry with the given ID. It reports false when
// the ID is unknown; nothing changes in that case.
func (l *CourseList) Update(id string, field CourseField, value string) bool {
	e, ok := l.entries[id]
	if !ok {
		return false
	}
	switch field {
	case CourseFieldGrade:
		e.Grade = value
	case CourseFieldCredit:
		e.Credit = value
	default:
		return false
	}
	return true
}

// Remove deletes the entry with the given ID. It reports false when the ID is
// unknown.
func (l *CourseList) Remove(id string) bool {
	if _, ok := l.entries[id]; !ok {
		return false
	}
	delete(l.entries, id)
	for i, key := range l.order {
		if key == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a copy of the entry with the given ID
func (l *CourseList) Get(id string) (CourseEntry, bool) {
	e, ok := l.entries[id]
	if !ok {
		return CourseEntry{}, false
	}
	return *e, true
}

// Len returns the number of entries
func (l *CourseList) Len() int {
	return len(l.order)
}

// Entries returns a snapshot of the entries in display order
func (l *CourseList) Entries() []CourseEntry {
	out := make([]CourseEntry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.entries[id])
	}
	return out
}

// IsPristine reports whether the list is a single blank entry
func (l *CourseList) IsPristine() bool {
	return IsPristine(l.Entries())
}

// IsPristine reports whether entries is exactly one blank entry
func IsPristine(entries []CourseEntry) bool {
	return len(entries) == 1 && entries[0].IsBlank()
}
