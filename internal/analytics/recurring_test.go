package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskpulse/taskpulse/internal/models"
)

func pattern(id string, rtype models.RecurrenceType) models.Task {
	return models.Task{
		ID:             id,
		Title:          "pattern " + id,
		IsRecurring:    true,
		IsPattern:      true,
		RecurrenceType: rtype,
		CreatedAt:      testToday.AddDate(0, 0, -30),
		UpdatedAt:      testToday.AddDate(0, 0, -30),
	}
}

func occurrence(patternID string, rtype models.RecurrenceType, done bool, when time.Time) models.Task {
	task := models.Task{
		ID:             "occ-" + patternID + "-" + when.Format(DayFormat),
		Title:          "occurrence of " + patternID,
		IsRecurring:    true,
		PatternID:      patternID,
		RecurrenceType: rtype,
		CreatedAt:      when,
		UpdatedAt:      when,
	}
	task.Completed = done
	return task
}

func TestGetRecurringTaskStats_Empty(t *testing.T) {
	stats := GetRecurringTaskStats(nil, testToday)

	assert.Zero(t, stats.TotalRecurringTasks)
	assert.Zero(t, stats.ActiveRecurringTasks)
	assert.Zero(t, stats.CompletedOccurrences)
	assert.Empty(t, stats.RecurringByType)
	assert.Empty(t, stats.CompletionRateByType)
}

func TestGetRecurringTaskStats_CountsPatternsByType(t *testing.T) {
	tasks := []models.Task{
		pattern("a", models.RecurDaily),
		pattern("b", models.RecurWeekly),
		pattern("c", models.RecurWeekly),
	}

	stats := GetRecurringTaskStats(tasks, testToday)

	assert.Equal(t, 3, stats.TotalRecurringTasks)
	assert.Equal(t, 1, stats.RecurringByType[models.RecurDaily])
	assert.Equal(t, 2, stats.RecurringByType[models.RecurWeekly])
}

func TestGetRecurringTaskStats_CompletionRateByType(t *testing.T) {
	tasks := []models.Task{
		pattern("w", models.RecurWeekly),
		occurrence("w", models.RecurWeekly, true, testToday.AddDate(0, 0, -28)),
		occurrence("w", models.RecurWeekly, true, testToday.AddDate(0, 0, -21)),
		occurrence("w", models.RecurWeekly, true, testToday.AddDate(0, 0, -14)),
		occurrence("w", models.RecurWeekly, true, testToday.AddDate(0, 0, -7)),
		occurrence("w", models.RecurWeekly, false, testToday),
	}

	stats := GetRecurringTaskStats(tasks, testToday)

	assert.Equal(t, 4, stats.CompletedOccurrences)
	assert.Equal(t, 80, stats.CompletionRateByType[models.RecurWeekly])
}

func TestGetRecurringTaskStats_ActiveRequiresPendingOccurrence(t *testing.T) {
	tasks := []models.Task{
		pattern("active", models.RecurDaily),
		occurrence("active", models.RecurDaily, false, testToday),
		pattern("idle", models.RecurDaily),
		occurrence("idle", models.RecurDaily, true, testToday.AddDate(0, 0, -1)),
	}

	stats := GetRecurringTaskStats(tasks, testToday)

	assert.Equal(t, 2, stats.TotalRecurringTasks)
	assert.Equal(t, 1, stats.ActiveRecurringTasks)
}

func TestGetRecurringTaskStats_StreakOverOccurrencesOnly(t *testing.T) {
	tasks := []models.Task{
		pattern("d", models.RecurDaily),
		occurrence("d", models.RecurDaily, true, testToday),
		occurrence("d", models.RecurDaily, true, testToday.AddDate(0, 0, -1)),
		// A plain completed task must not feed the recurring streak.
		doneOn(testToday.AddDate(0, 0, -2)),
	}

	stats := GetRecurringTaskStats(tasks, testToday)
	assert.Equal(t, 2, stats.StreakByRecurring.Current)
}

func TestGetRecurringTaskStats_PlainTasksIgnored(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday),
		pendingTask(testToday),
	}

	stats := GetRecurringTaskStats(tasks, testToday)
	assert.Zero(t, stats.TotalRecurringTasks)
	assert.Zero(t, stats.CompletedOccurrences)
}
