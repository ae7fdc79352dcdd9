package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskpulse/taskpulse/internal/api"
	"github.com/taskpulse/taskpulse/internal/config"
	"github.com/taskpulse/taskpulse/internal/storage"
	"github.com/taskpulse/taskpulse/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve analytics over HTTP",
	Long: `Start a local HTTP server exposing the analytics as JSON:

  GET /api/dashboard    everything in one response
  GET /api/metrics      completion rate, streaks, trend
  GET /api/heatmap      daily completion grid
  GET /api/streaks      current and longest streak
  GET /api/tags         per-tag breakdown
  GET /api/recurring    recurring task statistics
  GET /api/priorities   priority distribution
  GET /api/tasks        the filtered task list

All endpoints accept from/to (YYYY-MM-DD); heatmap and dashboard accept
weeks; tags and dashboard accept limit.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = config.Get().ServeAddr
		}

		server := api.NewServer(storage.Get())

		ui.PrintInfo("Serving analytics on http://%s", addr)
		if err := server.ListenAndServe(addr); err != nil {
			ui.PrintError("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (host:port)")
}
