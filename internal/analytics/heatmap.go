package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// HeatmapCell is a single calendar day in the completion heatmap.
type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"` // 0-4 relative intensity
}

// HeatmapResult is a grid of week columns covering the trailing window.
type HeatmapResult struct {
	Weeks          [][]HeatmapCell `json:"weeks"`
	TotalCompleted int             `json:"totalCompleted"`
	ActiveDays     int             `json:"activeDays"`
}

// CalculateHeatmap buckets completed tasks into calendar days over a trailing
// window of the given number of weeks ending at today. Columns run Sunday to
// Saturday; the last column is the week containing today, so days after today
// simply carry a zero count. The grid always holds exactly weeks × 7 cells.
func CalculateHeatmap(tasks []models.Task, weeks int, today time.Time) HeatmapResult {
	if weeks < 1 {
		weeks = 1
	}

	// Align the window to week columns: the grid ends on the Saturday of the
	// current week and starts weeks*7-1 days earlier, a Sunday.
	day := startOfDay(today)
	gridEnd := day.AddDate(0, 0, 6-int(day.Weekday()))
	gridStart := gridEnd.AddDate(0, 0, -(weeks*7 - 1))

	counts := make(map[string]int)
	for i := range tasks {
		done, ok := tasks[i].CompletionDate()
		if !ok {
			continue
		}
		doneDay := startOfDay(done)
		if doneDay.Before(gridStart) || doneDay.After(gridEnd) {
			continue
		}
		counts[dayKey(doneDay)]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	result := HeatmapResult{Weeks: make([][]HeatmapCell, 0, weeks)}
	for w := 0; w < weeks; w++ {
		column := make([]HeatmapCell, 0, 7)
		for d := 0; d < 7; d++ {
			cellDay := gridStart.AddDate(0, 0, w*7+d)
			key := dayKey(cellDay)
			count := counts[key]

			column = append(column, HeatmapCell{
				Date:  key,
				Count: count,
				Level: heatLevel(count, maxCount),
			})

			result.TotalCompleted += count
			if count > 0 {
				result.ActiveDays++
			}
		}
		result.Weeks = append(result.Weeks, column)
	}

	return result
}

// heatLevel maps a day count to a 0-4 intensity bucket relative to the
// window's busiest day. Non-zero counts partition linearly, so the maximum
// day always lands on level 4.
func heatLevel(count, maxCount int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	level := (count*4 + maxCount - 1) / maxCount // ceil(count*4/max)
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return level
}
