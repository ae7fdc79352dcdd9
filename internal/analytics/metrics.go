package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// ProductivityMetrics summarizes completion behavior over a task snapshot.
type ProductivityMetrics struct {
	CompletionRate         int     `json:"completionRate"`      // percent, 0-100
	CompletionRateTrend    int     `json:"completionRateTrend"` // percent change vs prior week
	CurrentStreak          int     `json:"currentStreak"`
	LongestStreak          int     `json:"longestStreak"`
	AvgCompletionTime      float64 `json:"avgCompletionTime"` // days, one decimal
	TasksCompletedToday    int     `json:"tasksCompletedToday"`
	TasksCompletedThisWeek int     `json:"tasksCompletedThisWeek"`
}

// CalculateProductivityMetrics computes completion rate, week-over-week
// trend, average completion latency, and today/this-week counts. The trend
// compares the rolling last-7-days window against the 7 days before it and
// reports 0 when the prior window saw no completions.
func CalculateProductivityMetrics(tasks []models.Task, today time.Time) ProductivityMetrics {
	day := startOfDay(today)
	todayKey := dayKey(day)
	weekStart := day.AddDate(0, 0, -6)
	priorStart := day.AddDate(0, 0, -13)

	var m ProductivityMetrics
	completed := 0
	priorWeek := 0
	var latencyDays float64

	for i := range tasks {
		task := &tasks[i]
		done, ok := task.CompletionDate()
		if !ok {
			continue
		}
		completed++

		latency := done.Sub(task.CreatedAt).Hours() / 24
		if latency > 0 {
			latencyDays += latency
		}

		doneDay := startOfDay(done)
		if dayKey(doneDay) == todayKey {
			m.TasksCompletedToday++
		}
		switch {
		case !doneDay.Before(weekStart) && !doneDay.After(day):
			m.TasksCompletedThisWeek++
		case !doneDay.Before(priorStart) && doneDay.Before(weekStart):
			priorWeek++
		}
	}

	m.CompletionRate = roundPct(ratio(completed, len(tasks)))
	if priorWeek > 0 {
		change := float64(m.TasksCompletedThisWeek-priorWeek) / float64(priorWeek) * 100
		m.CompletionRateTrend = roundPct(change)
	}
	if completed > 0 {
		m.AvgCompletionTime = round1(latencyDays / float64(completed))
	}

	streaks := ComputeStreaks(tasks, today)
	m.CurrentStreak = streaks.Current
	m.LongestStreak = streaks.Longest

	return m
}
