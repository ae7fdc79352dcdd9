package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskpulse/taskpulse/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByDateRange_NoBoundsReturnsAll(t *testing.T) {
	tasks := []models.Task{
		pendingTask(day(2024, 3, 1)),
		doneOn(day(2024, 3, 5)),
	}

	got := FilterByDateRange(tasks, nil, nil, DateFieldCreated)
	assert.Len(t, got, 2)
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	tasks := []models.Task{
		pendingTask(day(2024, 3, 1)),
		pendingTask(day(2024, 3, 5)),
		pendingTask(day(2024, 3, 10)),
	}

	start := day(2024, 3, 1)
	end := day(2024, 3, 5)

	got := FilterByDateRange(tasks, &start, &end, DateFieldCreated)
	assert.Len(t, got, 2)
}

func TestFilterByDateRange_DayGranularity(t *testing.T) {
	// Created late in the day still matches a range ending on that date.
	tasks := []models.Task{
		pendingTask(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)),
	}

	start := day(2024, 3, 5)
	end := day(2024, 3, 5)

	got := FilterByDateRange(tasks, &start, &end, DateFieldCreated)
	assert.Len(t, got, 1)
}

func TestFilterByDateRange_InvertedRangeSelectsNothing(t *testing.T) {
	tasks := []models.Task{pendingTask(day(2024, 3, 5))}

	start := day(2024, 3, 10)
	end := day(2024, 3, 1)

	got := FilterByDateRange(tasks, &start, &end, DateFieldCreated)
	assert.Empty(t, got)
}

func TestFilterByDateRange_CompletedFieldSkipsPending(t *testing.T) {
	tasks := []models.Task{
		pendingTask(day(2024, 3, 5)),
		doneTask(day(2024, 3, 1), day(2024, 3, 5)),
	}

	start := day(2024, 3, 1)
	end := day(2024, 3, 31)

	got := FilterByDateRange(tasks, &start, &end, DateFieldCompleted)
	assert.Len(t, got, 1)
	assert.True(t, got[0].Completed)
}

func TestFilterByDateRange_DueFieldSkipsUndated(t *testing.T) {
	due := day(2024, 3, 15)
	withDue := pendingTask(day(2024, 3, 1))
	withDue.DueDate = &due

	tasks := []models.Task{withDue, pendingTask(day(2024, 3, 1))}

	start := day(2024, 3, 10)
	end := day(2024, 3, 20)

	got := FilterByDateRange(tasks, &start, &end, DateFieldDue)
	assert.Len(t, got, 1)
	assert.NotNil(t, got[0].DueDate)
}

func TestFilterByDateRange_OpenEndedBounds(t *testing.T) {
	tasks := []models.Task{
		pendingTask(day(2024, 3, 1)),
		pendingTask(day(2024, 3, 20)),
	}

	start := day(2024, 3, 10)
	got := FilterByDateRange(tasks, &start, nil, DateFieldCreated)
	assert.Len(t, got, 1)

	end := day(2024, 3, 10)
	got = FilterByDateRange(tasks, nil, &end, DateFieldCreated)
	assert.Len(t, got, 1)
}

func TestFilterByDateRange_DoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		pendingTask(day(2024, 3, 1)),
		pendingTask(day(2024, 3, 20)),
	}

	start := day(2024, 3, 10)
	_ = FilterByDateRange(tasks, &start, nil, DateFieldCreated)

	assert.Len(t, tasks, 2)
	assert.Equal(t, day(2024, 3, 1), tasks[0].CreatedAt)
}
