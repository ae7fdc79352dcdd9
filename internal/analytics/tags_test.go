package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskpulse/taskpulse/internal/models"
)

func tagged(tags []string, done bool) models.Task {
	task := pendingTask(testToday.AddDate(0, 0, -1))
	task.Tags = tags
	if done {
		task.Completed = true
		task.UpdatedAt = testToday
	}
	return task
}

func TestGetTagStats_Empty(t *testing.T) {
	assert.Empty(t, GetTagStats(nil, 10))
}

func TestGetTagStats_UntaggedTasksExcluded(t *testing.T) {
	tasks := []models.Task{pendingTask(testToday), doneOn(testToday)}
	assert.Empty(t, GetTagStats(tasks, 10))
}

func TestGetTagStats_MultiTagFanOut(t *testing.T) {
	tasks := []models.Task{
		tagged([]string{"work", "urgent"}, true),
		tagged([]string{"work"}, false),
	}

	stats := GetTagStats(tasks, 10)
	require.Len(t, stats, 2)

	// "work" has more tasks, so it ranks first.
	assert.Equal(t, "work", stats[0].Name)
	assert.Equal(t, 2, stats[0].TotalTasks)
	assert.Equal(t, 1, stats[0].CompletedTasks)
	assert.Equal(t, 1, stats[0].PendingTasks)
	assert.Equal(t, 50, stats[0].CompletionRate)

	assert.Equal(t, "urgent", stats[1].Name)
	assert.Equal(t, 1, stats[1].TotalTasks)
	assert.Equal(t, 100, stats[1].CompletionRate)
}

func TestGetTagStats_TiesBreakByName(t *testing.T) {
	tasks := []models.Task{
		tagged([]string{"zebra"}, false),
		tagged([]string{"alpha"}, false),
	}

	stats := GetTagStats(tasks, 10)
	require.Len(t, stats, 2)
	assert.Equal(t, "alpha", stats[0].Name)
	assert.Equal(t, "zebra", stats[1].Name)
}

func TestGetTagStats_LimitTruncates(t *testing.T) {
	tasks := []models.Task{
		tagged([]string{"a"}, false),
		tagged([]string{"b"}, false),
		tagged([]string{"c"}, false),
	}

	stats := GetTagStats(tasks, 2)
	assert.Len(t, stats, 2)

	// Zero limit means unbounded.
	assert.Len(t, GetTagStats(tasks, 0), 3)
}

func TestGetTagStats_AvgCompletionTime(t *testing.T) {
	task := models.Task{
		ID:        "t",
		Title:     "t",
		Completed: true,
		Tags:      []string{"deep"},
		CreatedAt: testToday.AddDate(0, 0, -3),
		UpdatedAt: testToday,
	}

	stats := GetTagStats([]models.Task{task}, 10)
	require.Len(t, stats, 1)
	assert.InDelta(t, 3.0, stats[0].AvgCompletionTime, 0.001)
}
