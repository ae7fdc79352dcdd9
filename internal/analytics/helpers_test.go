package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// testToday is a fixed Wednesday so weekday-dependent results stay stable.
var testToday = time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

func pendingTask(created time.Time) models.Task {
	return models.Task{
		ID:        "pending-" + created.Format(time.RFC3339),
		Title:     "pending",
		Priority:  models.PriorityMedium,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func doneTask(created, done time.Time) models.Task {
	return models.Task{
		ID:        "done-" + done.Format(time.RFC3339),
		Title:     "done",
		Priority:  models.PriorityMedium,
		Completed: true,
		CreatedAt: created,
		UpdatedAt: done,
	}
}

func doneOn(day time.Time) models.Task {
	return doneTask(day, day)
}
