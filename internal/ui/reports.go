package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/taskpulse/taskpulse/internal/analytics"
	"github.com/taskpulse/taskpulse/internal/models"
)

// PrintOverview prints the productivity metrics summary
func PrintOverview(metrics analytics.ProductivityMetrics) {
	PrintHeader("Productivity Overview")

	fmt.Print("Completion: ")
	PrintProgressBar(float64(metrics.CompletionRate), 50)
	fmt.Printf(" %s\n", FormatPercentage(metrics.CompletionRate))

	trend := fmt.Sprintf("%+d%%", metrics.CompletionRateTrend)
	fmt.Print("Weekly trend:       ")
	if metrics.CompletionRateTrend > 0 {
		Green.Println(trend)
	} else if metrics.CompletionRateTrend < 0 {
		Red.Println(trend)
	} else {
		Dim.Println(trend)
	}

	table := NewTableBuilder("Metric", "Value").
		Row("Completed today", fmt.Sprintf("%d", metrics.TasksCompletedToday)).
		Row("Completed this week", fmt.Sprintf("%d", metrics.TasksCompletedThisWeek)).
		Row("Avg completion time", FormatDays(metrics.AvgCompletionTime)).
		Row("Current streak", fmt.Sprintf("%d day(s)", metrics.CurrentStreak)).
		Row("Longest streak", fmt.Sprintf("%d day(s)", metrics.LongestStreak)).
		Align(1, AlignRight)

	table.PrintSimple()
	fmt.Println()

	if metrics.CurrentStreak > 0 && metrics.CurrentStreak == metrics.LongestStreak {
		PrintSuccess("Personal best streak! Keep it going 🔥")
	}
}

// PrintHeatmapReport prints the completion heatmap with its summary line
func PrintHeatmapReport(result analytics.HeatmapResult) {
	PrintHeader(fmt.Sprintf("Completion Heatmap (last %d weeks)", len(result.Weeks)))

	if result.TotalCompleted == 0 {
		PrintEmptyState(
			"No completions in this window",
			"Complete a task with: taskpulse task done <id>",
		)
	}

	PrintHeatmapGrid(result)

	fmt.Println()
	BoldGreen.Printf("%d task(s) completed", result.TotalCompleted)
	Dim.Printf(" across %d active day(s)\n", result.ActiveDays)
}

// PrintTagReport prints ranked per-tag statistics
func PrintTagReport(stats []analytics.TagStats) {
	PrintHeader("Tags")

	if len(stats) == 0 {
		PrintEmptyState(
			"No tagged tasks yet",
			"Tag tasks with: taskpulse task add <title> --tags work,home",
		)
		return
	}

	table := NewTableBuilder("Tag", "Tasks", "Done", "Pending", "Rate", "Avg Time").
		Align(1, AlignRight).
		Align(2, AlignRight).
		Align(3, AlignRight).
		Align(4, AlignRight).
		Align(5, AlignRight)

	for _, tag := range stats {
		table.Row(
			tag.Name,
			fmt.Sprintf("%d", tag.TotalTasks),
			fmt.Sprintf("%d", tag.CompletedTasks),
			fmt.Sprintf("%d", tag.PendingTasks),
			FormatPercentage(tag.CompletionRate),
			FormatDays(tag.AvgCompletionTime),
		)
	}

	table.PrintSimple()
	fmt.Println()
}

// PrintRecurringReport prints recurring-task statistics
func PrintRecurringReport(stats analytics.RecurringTaskStats) {
	PrintHeader("Recurring Tasks")

	if stats.TotalRecurringTasks == 0 {
		PrintEmptyState(
			"No recurring patterns yet",
			"Create one with: taskpulse task add <title> --recur weekly",
		)
		return
	}

	table := NewTableBuilder("Metric", "Value").
		Row("Patterns", fmt.Sprintf("%d", stats.TotalRecurringTasks)).
		Row("Active patterns", fmt.Sprintf("%d", stats.ActiveRecurringTasks)).
		Row("Completed occurrences", fmt.Sprintf("%d", stats.CompletedOccurrences)).
		Row("Occurrence streak", fmt.Sprintf("%d day(s)", stats.StreakByRecurring.Current)).
		Align(1, AlignRight)

	table.PrintSimple()

	if len(stats.RecurringByType) > 0 {
		PrintSubHeader("By recurrence type")

		typeTable := NewTableBuilder("Type", "Patterns", "Completion").
			Align(1, AlignRight).
			Align(2, AlignRight)

		for _, rtype := range models.RecurrenceTypes {
			count, ok := stats.RecurringByType[rtype]
			if !ok {
				continue
			}
			typeTable.Row(
				string(rtype),
				fmt.Sprintf("%d", count),
				FormatPercentage(stats.CompletionRateByType[rtype]),
			)
		}

		typeTable.PrintSimple()
	}
	fmt.Println()
}

// PrintPriorityReport prints the active-task priority distribution
func PrintPriorityReport(entries []analytics.PriorityDistributionEntry) {
	PrintHeader("Priority Distribution (active tasks)")

	table := NewTableBuilder("Priority", "Count", "Share").
		Align(1, AlignRight).
		Align(2, AlignRight)

	total := 0
	for _, entry := range entries {
		total += entry.Count
		c := *GetPriorityColor(entry.Priority)
		table.ColoredRow(
			[]string{string(entry.Priority), fmt.Sprintf("%d", entry.Count), FormatPercentage(entry.Percentage)},
			[]color.Color{c, c, c},
		)
	}

	table.PrintSimple()
	fmt.Println()

	if total == 0 {
		Dim.Println("No active tasks")
		fmt.Println()
	}
}

// PrintDashboard renders every report in one pass
func PrintDashboard(dashboard analytics.Dashboard) {
	PrintOverview(dashboard.Metrics)
	PrintHeatmapReport(dashboard.Heatmap)
	PrintPriorityReport(dashboard.Priorities)
	PrintTagReport(dashboard.Tags)
	PrintRecurringReport(dashboard.Recurring)
}
