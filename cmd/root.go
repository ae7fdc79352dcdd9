package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskpulse/taskpulse/internal/config"
	"github.com/taskpulse/taskpulse/internal/logging"
	"github.com/taskpulse/taskpulse/internal/storage"
	"github.com/taskpulse/taskpulse/internal/ui"
)

var (
	// Global flags
	noColor      bool
	logLevelFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "taskpulse",
	Short: "TaskPulse - task tracking with built-in productivity analytics",
	Long: `TaskPulse keeps your tasks in a plain JSON file and turns them into
insight on demand:
  • Completion heatmaps in the style of contribution graphs
  • Current and longest completion streaks
  • Productivity metrics with week-over-week trends
  • Recurring task patterns with automatic next occurrences
  • Tag and priority breakdowns

All analytics are computed from the stored tasks at request time.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize configuration
		if err := config.Init(); err != nil {
			ui.PrintError("Failed to initialize configuration: %v", err)
			os.Exit(1)
		}

		// Initialize logging before other subsystems
		cfg := config.Get()
		if err := logging.Init(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevelFlag
		}
		logging.SetLevel(cfg.LogLevel)
		logging.Infof("Starting command: %s %v", cmd.CommandPath(), args)

		// Override color setting if --no-color flag is used
		if noColor {
			cfg.ColorOutput = false
		}

		// Initialize UI
		ui.Init()

		// Initialize storage
		if err := storage.Init(); err != nil {
			ui.PrintError("Failed to initialize storage: %v", err)
			os.Exit(1)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Flush any cached changes
		if err := storage.Get().Flush(); err != nil {
			ui.PrintWarning("Failed to save changes: %v", err)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintHeader("TaskPulse")
		fmt.Println("Version:    1.0.0")
		fmt.Println("License:    MIT")
	},
}
