package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskpulse/taskpulse/internal/analytics"
	"github.com/taskpulse/taskpulse/internal/config"
	"github.com/taskpulse/taskpulse/internal/models"
	"github.com/taskpulse/taskpulse/internal/storage"
	"github.com/taskpulse/taskpulse/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Productivity analytics",
	Long:  "Heatmaps, streaks, metrics, and breakdowns computed from your tasks",
}

var statsOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Completion rate, streaks, and trend",
	Run: func(cmd *cobra.Command, args []string) {
		tasks, today := statsInput(cmd)
		ui.PrintOverview(analytics.CalculateProductivityMetrics(tasks, today))
	},
}

var statsHeatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Daily completion heatmap",
	Run: func(cmd *cobra.Command, args []string) {
		tasks, today := statsInput(cmd)

		weeks, _ := cmd.Flags().GetInt("weeks")
		if weeks < 1 {
			weeks = config.Get().HeatmapWeeks
		}

		ui.PrintHeatmapReport(analytics.CalculateHeatmap(tasks, weeks, today))
	},
}

var statsTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Per-tag completion breakdown",
	Run: func(cmd *cobra.Command, args []string) {
		tasks, _ := statsInput(cmd)

		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = config.Get().TagLimit
		}

		ui.PrintTagReport(analytics.GetTagStats(tasks, limit))
	},
}

var statsRecurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Recurring task statistics",
	Run: func(cmd *cobra.Command, args []string) {
		tasks, today := statsInput(cmd)
		ui.PrintRecurringReport(analytics.GetRecurringTaskStats(tasks, today))
	},
}

var statsPriorityCmd = &cobra.Command{
	Use:   "priority",
	Short: "Active-task priority distribution",
	Run: func(cmd *cobra.Command, args []string) {
		tasks, _ := statsInput(cmd)
		ui.PrintPriorityReport(analytics.CalculatePriorityDistribution(tasks))
	},
}

var statsDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "All reports in one view",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		weeks, _ := cmd.Flags().GetInt("weeks")
		if weeks < 1 {
			weeks = cfg.HeatmapWeeks
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = cfg.TagLimit
		}

		opts := analytics.DashboardOptions{
			From:     dateFlag(cmd, "from"),
			To:       dateFlag(cmd, "to"),
			Weeks:    weeks,
			TagLimit: limit,
			Today:    time.Now().UTC(),
		}

		ui.PrintDashboard(analytics.BuildDashboard(storage.Get().Snapshot(), opts))
	},
}

// statsInput resolves the shared --from/--to window against the stored tasks.
func statsInput(cmd *cobra.Command) ([]models.Task, time.Time) {
	tasks := analytics.FilterByDateRange(
		storage.Get().Snapshot(),
		dateFlag(cmd, "from"),
		dateFlag(cmd, "to"),
		analytics.DateFieldCreated,
	)
	return tasks, time.Now().UTC()
}

// dateFlag parses a YYYY-MM-DD flag, warning and ignoring malformed values.
func dateFlag(cmd *cobra.Command, name string) *time.Time {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		ui.PrintWarning("Ignoring invalid --%s date %q (use YYYY-MM-DD)", name, raw)
		return nil
	}
	return &t
}

func init() {
	for _, sub := range []*cobra.Command{
		statsOverviewCmd,
		statsHeatmapCmd,
		statsTagsCmd,
		statsRecurringCmd,
		statsPriorityCmd,
		statsDashboardCmd,
	} {
		sub.Flags().String("from", "", "Start of date window (YYYY-MM-DD)")
		sub.Flags().String("to", "", "End of date window (YYYY-MM-DD)")
		statsCmd.AddCommand(sub)
	}

	statsHeatmapCmd.Flags().IntP("weeks", "w", 0, "Number of trailing weeks")
	statsDashboardCmd.Flags().IntP("weeks", "w", 0, "Number of trailing weeks")
	statsTagsCmd.Flags().IntP("limit", "l", 0, "Maximum number of tags to show")
	statsDashboardCmd.Flags().IntP("limit", "l", 0, "Maximum number of tags to show")
}
