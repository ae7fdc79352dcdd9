package analytics

import (
	"github.com/taskpulse/taskpulse/internal/models"
)

// PriorityDistributionEntry is the share of active tasks at one priority.
type PriorityDistributionEntry struct {
	Priority   models.Priority `json:"priority"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
	Color      string          `json:"color"`
}

// priorityColors are the display colors consumers render each level with.
var priorityColors = map[models.Priority]string{
	models.PriorityHigh:   "#e5534b",
	models.PriorityMedium: "#d4a72c",
	models.PriorityLow:    "#57ab5a",
}

// CalculatePriorityDistribution computes the percentage breakdown of active
// (incomplete) tasks by priority. The result always holds exactly one entry
// per known level, high to low, so renderers never special-case a missing
// level; with no active tasks every percentage is 0.
func CalculatePriorityDistribution(tasks []models.Task) []PriorityDistributionEntry {
	counts := make(map[models.Priority]int, len(models.Priorities))
	active := 0
	for i := range tasks {
		if tasks[i].Completed {
			continue
		}
		active++
		counts[tasks[i].Priority]++
	}

	entries := make([]PriorityDistributionEntry, 0, len(models.Priorities))
	for _, level := range models.Priorities {
		entries = append(entries, PriorityDistributionEntry{
			Priority:   level,
			Count:      counts[level],
			Percentage: roundPct(ratio(counts[level], active)),
			Color:      priorityColors[level],
		})
	}
	return entries
}
