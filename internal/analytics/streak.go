package analytics

import (
	"sort"
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// Streaks holds consecutive-day completion runs.
type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// ComputeStreaks calculates the current and longest consecutive-day
// completion streaks over the given tasks. A day qualifies when at least one
// task was completed on it. The current streak walks backward from today; a
// completion-free today does not break a streak that is still in progress.
// Both streaks are computed over the tasks passed in, so a date-filtered
// snapshot yields streaks over the visible history only.
func ComputeStreaks(tasks []models.Task, today time.Time) Streaks {
	days := completionDays(tasks)
	if len(days) == 0 {
		return Streaks{}
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var s Streaks

	// Longest: single pass over distinct days ascending.
	run := 1
	s.Longest = 1
	for i := 1; i < len(keys); i++ {
		prev, _ := time.Parse(DayFormat, keys[i-1])
		cur, _ := time.Parse(DayFormat, keys[i])
		if daysBetween(prev, cur) == 1 {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}

	// Current: walk backward from today. An empty today is skipped once so an
	// in-progress streak is not reset before the day is over.
	cursor := startOfDay(today)
	if !days[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for days[dayKey(cursor)] {
		s.Current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return s
}

// completionDays returns the set of distinct UTC calendar days with at least
// one completion.
func completionDays(tasks []models.Task) map[string]bool {
	days := make(map[string]bool)
	for i := range tasks {
		if done, ok := tasks[i].CompletionDate(); ok {
			days[dayKey(done)] = true
		}
	}
	return days
}
