package analytics

import (
	"sort"

	"github.com/taskpulse/taskpulse/internal/models"
)

// TagStats holds per-tag completion statistics.
type TagStats struct {
	Name              string  `json:"name"`
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	PendingTasks      int     `json:"pendingTasks"`
	CompletionRate    int     `json:"completionRate"`    // percent, 0-100
	AvgCompletionTime float64 `json:"avgCompletionTime"` // days, one decimal
}

// GetTagStats groups tasks by tag. A task with N tags contributes to all N
// groups; untagged tasks contribute nowhere. Results rank by usage
// descending with ties broken by name, truncated to limit when limit > 0.
func GetTagStats(tasks []models.Task, limit int) []TagStats {
	type tagAgg struct {
		total     int
		completed int
		latency   float64
	}

	byTag := make(map[string]*tagAgg)
	for i := range tasks {
		task := &tasks[i]
		for _, tag := range task.Tags {
			agg := byTag[tag]
			if agg == nil {
				agg = &tagAgg{}
				byTag[tag] = agg
			}
			agg.total++
			if done, ok := task.CompletionDate(); ok {
				agg.completed++
				if days := done.Sub(task.CreatedAt).Hours() / 24; days > 0 {
					agg.latency += days
				}
			}
		}
	}

	stats := make([]TagStats, 0, len(byTag))
	for tag, agg := range byTag {
		entry := TagStats{
			Name:           tag,
			TotalTasks:     agg.total,
			CompletedTasks: agg.completed,
			PendingTasks:   agg.total - agg.completed,
			CompletionRate: roundPct(ratio(agg.completed, agg.total)),
		}
		if agg.completed > 0 {
			entry.AvgCompletionTime = round1(agg.latency / float64(agg.completed))
		}
		stats = append(stats, entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalTasks != stats[j].TotalTasks {
			return stats[i].TotalTasks > stats[j].TotalTasks
		}
		return stats[i].Name < stats[j].Name
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
