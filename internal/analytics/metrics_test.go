package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskpulse/taskpulse/internal/models"
)

func TestCalculateProductivityMetrics_Empty(t *testing.T) {
	m := CalculateProductivityMetrics(nil, testToday)

	assert.Zero(t, m.CompletionRate)
	assert.Zero(t, m.CompletionRateTrend)
	assert.Zero(t, m.CurrentStreak)
	assert.Zero(t, m.LongestStreak)
	assert.Zero(t, m.AvgCompletionTime)
	assert.Zero(t, m.TasksCompletedToday)
	assert.Zero(t, m.TasksCompletedThisWeek)
}

func TestCalculateProductivityMetrics_CompletionRate(t *testing.T) {
	tasks := make([]models.Task, 0, 10)
	for i := 0; i < 7; i++ {
		tasks = append(tasks, doneOn(testToday))
	}
	for i := 0; i < 3; i++ {
		tasks = append(tasks, pendingTask(testToday))
	}

	m := CalculateProductivityMetrics(tasks, testToday)

	assert.Equal(t, 70, m.CompletionRate)
	assert.Equal(t, 7, m.TasksCompletedToday)
	assert.Equal(t, 7, m.TasksCompletedThisWeek)
}

func TestCalculateProductivityMetrics_WeekOverWeekTrend(t *testing.T) {
	tasks := []models.Task{
		// This rolling week: 4 completions.
		doneOn(testToday),
		doneOn(testToday.AddDate(0, 0, -1)),
		doneOn(testToday.AddDate(0, 0, -2)),
		doneOn(testToday.AddDate(0, 0, -6)),
		// Prior week: 2 completions.
		doneOn(testToday.AddDate(0, 0, -7)),
		doneOn(testToday.AddDate(0, 0, -13)),
	}

	m := CalculateProductivityMetrics(tasks, testToday)

	assert.Equal(t, 4, m.TasksCompletedThisWeek)
	assert.Equal(t, 100, m.CompletionRateTrend)
}

func TestCalculateProductivityMetrics_TrendZeroWithoutPriorWeek(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday),
		doneOn(testToday.AddDate(0, 0, -1)),
	}

	m := CalculateProductivityMetrics(tasks, testToday)
	assert.Zero(t, m.CompletionRateTrend)
}

func TestCalculateProductivityMetrics_NegativeTrend(t *testing.T) {
	tasks := []models.Task{
		// This rolling week: 1 completion.
		doneOn(testToday),
		// Prior week: 2 completions.
		doneOn(testToday.AddDate(0, 0, -8)),
		doneOn(testToday.AddDate(0, 0, -9)),
	}

	m := CalculateProductivityMetrics(tasks, testToday)
	assert.Equal(t, -50, m.CompletionRateTrend)
}

func TestCalculateProductivityMetrics_AvgCompletionTime(t *testing.T) {
	tasks := []models.Task{
		doneTask(testToday.AddDate(0, 0, -2), testToday), // 2 days
		doneTask(testToday.AddDate(0, 0, -1), testToday), // 1 day
	}

	m := CalculateProductivityMetrics(tasks, testToday)
	assert.InDelta(t, 1.5, m.AvgCompletionTime, 0.001)
}

func TestCalculateProductivityMetrics_StreaksFoldedIn(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday),
		doneOn(testToday.AddDate(0, 0, -1)),
		doneOn(testToday.AddDate(0, 0, -2)),
	}

	m := CalculateProductivityMetrics(tasks, testToday)
	assert.Equal(t, 3, m.CurrentStreak)
	assert.Equal(t, 3, m.LongestStreak)
}
