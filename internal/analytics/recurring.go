package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// RecurringTaskStats summarizes recurring patterns and their occurrences.
type RecurringTaskStats struct {
	TotalRecurringTasks  int                            `json:"totalRecurringTasks"`
	ActiveRecurringTasks int                            `json:"activeRecurringTasks"`
	CompletedOccurrences int                            `json:"completedOccurrences"`
	RecurringByType      map[models.RecurrenceType]int  `json:"recurringByType"`
	CompletionRateByType map[models.RecurrenceType]int  `json:"completionRateByType"`
	StreakByRecurring    Streaks                        `json:"streakByRecurring"`
}

// GetRecurringTaskStats groups recurring work by recurrence type. Pattern
// records define the series; occurrence instances carry the completions. A
// pattern is active while at least one of its occurrences is still pending.
// Patterns without a recurrence type are counted in the totals but excluded
// from the per-type maps.
func GetRecurringTaskStats(tasks []models.Task, today time.Time) RecurringTaskStats {
	stats := RecurringTaskStats{
		RecurringByType:      make(map[models.RecurrenceType]int),
		CompletionRateByType: make(map[models.RecurrenceType]int),
	}

	pendingByPattern := make(map[string]int)
	totalByType := make(map[models.RecurrenceType]int)
	doneByType := make(map[models.RecurrenceType]int)
	occurrences := make([]models.Task, 0)

	for i := range tasks {
		task := tasks[i]
		if task.IsPattern {
			stats.TotalRecurringTasks++
			if task.RecurrenceType.Valid() {
				stats.RecurringByType[task.RecurrenceType]++
			}
			continue
		}
		if !task.IsOccurrence() {
			continue
		}

		occurrences = append(occurrences, task)
		if task.RecurrenceType.Valid() {
			totalByType[task.RecurrenceType]++
		}
		if task.Completed {
			stats.CompletedOccurrences++
			if task.RecurrenceType.Valid() {
				doneByType[task.RecurrenceType]++
			}
		} else if task.PatternID != "" {
			pendingByPattern[task.PatternID]++
		}
	}

	for i := range tasks {
		if tasks[i].IsPattern && pendingByPattern[tasks[i].ID] > 0 {
			stats.ActiveRecurringTasks++
		}
	}

	for rtype, total := range totalByType {
		stats.CompletionRateByType[rtype] = roundPct(ratio(doneByType[rtype], total))
	}

	stats.StreakByRecurring = ComputeStreaks(occurrences, today)

	return stats
}
