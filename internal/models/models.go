package models

import "time"

// Task represents a single work item. Completed tasks treat UpdatedAt as the
// completion timestamp.
type Task struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Completed          bool           `json:"completed"`
	Priority           Priority       `json:"priority"`
	DueDate            *time.Time     `json:"due_date,omitempty"`
	Tags               []string       `json:"tags"`
	IsRecurring        bool           `json:"is_recurring"`
	IsPattern          bool           `json:"is_pattern"`
	PatternID          string         `json:"pattern_id,omitempty"`
	RecurrenceType     RecurrenceType `json:"recurrence_type,omitempty"`
	RecurrenceInterval int            `json:"recurrence_interval,omitempty"`
	OccurrenceCount    int            `json:"occurrence_count,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all known levels from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is a known priority level.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// RecurrenceType defines how often a recurring task repeats
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
)

// RecurrenceTypes lists all known recurrence types.
var RecurrenceTypes = []RecurrenceType{RecurDaily, RecurWeekly, RecurMonthly, RecurYearly}

// Valid reports whether r is a known recurrence type.
func (r RecurrenceType) Valid() bool {
	switch r {
	case RecurDaily, RecurWeekly, RecurMonthly, RecurYearly:
		return true
	}
	return false
}

// NextDue returns the due date that follows from, advanced by the recurrence
// type and interval. The interval is clamped to a minimum of 1.
func (r RecurrenceType) NextDue(from time.Time, interval int) time.Time {
	if interval < 1 {
		interval = 1
	}
	switch r {
	case RecurDaily:
		return from.AddDate(0, 0, interval)
	case RecurWeekly:
		return from.AddDate(0, 0, 7*interval)
	case RecurMonthly:
		return from.AddDate(0, interval, 0)
	case RecurYearly:
		return from.AddDate(interval, 0, 0)
	}
	return from
}

// CompletionDate returns the task's completion timestamp and true when the
// task is completed.
func (t *Task) CompletionDate() (time.Time, bool) {
	if !t.Completed {
		return time.Time{}, false
	}
	return t.UpdatedAt, true
}

// CompletedOn reports whether the task was completed on the given UTC
// calendar day.
func (t *Task) CompletedOn(day time.Time) bool {
	done, ok := t.CompletionDate()
	if !ok {
		return false
	}
	y1, m1, d1 := done.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// IsOccurrence reports whether the task is a generated instance of a
// recurring pattern (as opposed to the pattern record itself).
func (t *Task) IsOccurrence() bool {
	return t.IsRecurring && !t.IsPattern
}
