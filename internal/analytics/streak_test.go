package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskpulse/taskpulse/internal/models"
)

func TestComputeStreaks_Empty(t *testing.T) {
	streaks := ComputeStreaks(nil, testToday)
	assert.Zero(t, streaks.Current)
	assert.Zero(t, streaks.Longest)
}

func TestComputeStreaks_ThreeConsecutiveDays(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday),
		doneOn(testToday.AddDate(0, 0, -1)),
		doneOn(testToday.AddDate(0, 0, -2)),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Equal(t, 3, streaks.Current)
	assert.Equal(t, 3, streaks.Longest)
}

func TestComputeStreaks_EmptyTodayKeepsStreakAlive(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday.AddDate(0, 0, -1)),
		doneOn(testToday.AddDate(0, 0, -2)),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Equal(t, 2, streaks.Current)
}

func TestComputeStreaks_GapResetsCurrent(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday.AddDate(0, 0, -3)),
		doneOn(testToday.AddDate(0, 0, -4)),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Zero(t, streaks.Current)
	assert.Equal(t, 2, streaks.Longest)
}

func TestComputeStreaks_LongestSurvivesInHistory(t *testing.T) {
	tasks := []models.Task{
		// A five-day run two weeks back.
		doneOn(testToday.AddDate(0, 0, -14)),
		doneOn(testToday.AddDate(0, 0, -15)),
		doneOn(testToday.AddDate(0, 0, -16)),
		doneOn(testToday.AddDate(0, 0, -17)),
		doneOn(testToday.AddDate(0, 0, -18)),
		// A shorter current run.
		doneOn(testToday),
		doneOn(testToday.AddDate(0, 0, -1)),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Equal(t, 2, streaks.Current)
	assert.Equal(t, 5, streaks.Longest)
	assert.GreaterOrEqual(t, streaks.Longest, streaks.Current)
}

func TestComputeStreaks_MultipleCompletionsOneDayCountOnce(t *testing.T) {
	tasks := []models.Task{
		doneOn(testToday),
		doneOn(testToday),
		doneOn(testToday),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Equal(t, 1, streaks.Current)
	assert.Equal(t, 1, streaks.Longest)
}

func TestComputeStreaks_PendingTasksIgnored(t *testing.T) {
	tasks := []models.Task{
		pendingTask(testToday),
		pendingTask(testToday.AddDate(0, 0, -1)),
	}

	streaks := ComputeStreaks(tasks, testToday)
	assert.Zero(t, streaks.Current)
	assert.Zero(t, streaks.Longest)
}
