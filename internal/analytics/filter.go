package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// DateField selects which task timestamp a date-range filter compares.
type DateField int

const (
	// DateFieldCreated filters on the task's creation timestamp.
	DateFieldCreated DateField = iota
	// DateFieldCompleted filters on the completion timestamp; tasks that are
	// not completed never match.
	DateFieldCompleted
	// DateFieldDue filters on the due date; tasks without one never match.
	DateFieldDue
)

// FilterByDateRange narrows tasks to those whose selected timestamp falls
// within [start, end] at calendar-day granularity (UTC). A nil start and nil
// end returns the input unchanged; an inverted range selects nothing. The
// input slice is never mutated.
func FilterByDateRange(tasks []models.Task, start, end *time.Time, field DateField) []models.Task {
	if start == nil && end == nil {
		return tasks
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		ts, ok := fieldTime(&task, field)
		if !ok {
			continue
		}
		day := startOfDay(ts)
		if start != nil && day.Before(startOfDay(*start)) {
			continue
		}
		if end != nil && day.After(startOfDay(*end)) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

func fieldTime(task *models.Task, field DateField) (time.Time, bool) {
	switch field {
	case DateFieldCompleted:
		return task.CompletionDate()
	case DateFieldDue:
		if task.DueDate == nil {
			return time.Time{}, false
		}
		return *task.DueDate, true
	default:
		return task.CreatedAt, true
	}
}
