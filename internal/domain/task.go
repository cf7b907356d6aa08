package domain

import (
	"time"
)

// Task represents a single actionable item in the domain model.
// This is a pure domain model without storage-specific concerns.
//
// CategoryID is a weak reference: the category it names may be deleted, in
// which case the orchestration layer clears the field. RecurrenceID links
// every task generated from one recurring creation request; it is empty for
// non-recurring tasks.
type Task struct {
	ID           string
	Description  string
	Deadline     *time.Time
	Completed    bool
	CompletedAt  *time.Time
	CategoryID   string
	Recurrence   Recurrence
	RecurrenceID string
}

// NewTask creates a new non-recurring Task with the given description.
func NewTask(id string, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Recurrence:  Recurrence{Type: RecurrenceNone},
	}
}

// IsRecurring returns true if the task belongs to a recurrence batch.
func (t Task) IsRecurring() bool {
	return t.RecurrenceID != ""
}

// HasDeadline returns true if the task has a due date.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// HasCategory returns true if the task references a category.
func (t Task) HasCategory() bool {
	return t.CategoryID != ""
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Description != ""
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

// StartOfDay truncates a time to midnight of its calendar day, preserving
// the location. Deadlines carry date-only semantics, so every comparison
// against a deadline goes through this.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
