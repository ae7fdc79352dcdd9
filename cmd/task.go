package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskpulse/taskpulse/internal/models"
	"github.com/taskpulse/taskpulse/internal/storage"
	"github.com/taskpulse/taskpulse/internal/ui"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  "Create, list, complete, and remove tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")

		priority, _ := cmd.Flags().GetString("priority")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		due, _ := cmd.Flags().GetString("due")
		recur, _ := cmd.Flags().GetString("recur")
		every, _ := cmd.Flags().GetInt("every")

		task := models.Task{
			Title: title,
			Tags:  tags,
		}

		if priority != "" {
			task.Priority = models.Priority(priority)
			if !task.Priority.Valid() {
				ui.PrintError("Invalid priority. Use: low, medium, high")
				return
			}
		}

		if due != "" {
			dueDate, err := time.ParseInLocation("2006-01-02", due, time.UTC)
			if err != nil {
				ui.PrintError("Invalid due date. Use: YYYY-MM-DD")
				return
			}
			task.DueDate = &dueDate
		}

		if recur != "" {
			task.IsRecurring = true
			task.IsPattern = true
			task.RecurrenceType = models.RecurrenceType(recur)
			task.RecurrenceInterval = every
			if !task.RecurrenceType.Valid() {
				ui.PrintError("Invalid recurrence. Use: daily, weekly, monthly, yearly")
				return
			}
			if every < 1 {
				ui.PrintError("Recurrence interval must be at least 1")
				return
			}
		}

		store := storage.Get()

		created, err := store.AddTask(task)
		if err != nil {
			ui.PrintError("Failed to add task: %v", err)
			return
		}

		if created.IsPattern {
			occurrence, err := store.SpawnOccurrence(created.ID)
			if err != nil {
				ui.PrintError("Failed to create first occurrence: %v", err)
				return
			}

			ui.PrintSuccess("Recurring task created: %s", created.Title)
			ui.Dim.Printf("  Pattern ID: %s\n", created.ID)
			ui.Dim.Printf("  Repeats: every %d %s\n", created.RecurrenceInterval, created.RecurrenceType)
			ui.Dim.Printf("  First occurrence due: %s\n", occurrence.DueDate.Format("2006-01-02"))
			return
		}

		ui.PrintSuccess("Task created: %s", created.Title)
		ui.Dim.Printf("  ID: %s\n", created.ID)
		ui.Dim.Printf("  Priority: %s\n", created.Priority)
		if created.DueDate != nil {
			ui.Dim.Printf("  Due: %s\n", created.DueDate.Format("2006-01-02"))
		}
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")
		tag, _ := cmd.Flags().GetString("tag")
		priority, _ := cmd.Flags().GetString("priority")

		store := storage.Get()

		var tasks []models.Task
		if all {
			tasks = store.Snapshot()
			ui.PrintHeader("All Tasks")
		} else {
			tasks = store.PendingTasks()
			ui.PrintHeader("Pending Tasks")
		}

		if tag != "" {
			var filtered []models.Task
			for _, task := range tasks {
				if task.HasTag(tag) {
					filtered = append(filtered, task)
				}
			}
			tasks = filtered
		}

		if priority != "" {
			var filtered []models.Task
			for _, task := range tasks {
				if string(task.Priority) == priority {
					filtered = append(filtered, task)
				}
			}
			tasks = filtered
		}

		if len(tasks) == 0 {
			ui.PrintEmptyState("No tasks found", "Create one with: taskpulse task add <title>")
			return
		}

		// Group by priority, most urgent first
		byPriority := make(map[models.Priority][]models.Task)
		for _, task := range tasks {
			byPriority[task.Priority] = append(byPriority[task.Priority], task)
		}

		for _, p := range models.Priorities {
			if len(byPriority[p]) == 0 {
				continue
			}

			priorityColor := ui.GetPriorityColor(p)

			fmt.Println()
			priorityColor.Printf("%s %s (%d)\n", ui.GetPriorityIcon(p), p, len(byPriority[p]))
			ui.PrintSeparator()

			for _, task := range byPriority[p] {
				ui.PrintTask(task, "  ")
			}
		}

		fmt.Println()
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task_id>",
	Short: "Complete a task",
	Long:  "Mark a task as done. Completing an occurrence of a recurring task schedules the next one.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		store := storage.Get()

		task, err := store.FindTask(taskID)
		if err != nil {
			ui.PrintError("Task not found: %v", err)
			return
		}

		if err := store.CompleteTask(taskID); err != nil {
			ui.PrintError("Failed to complete task: %v", err)
			return
		}

		ui.PrintSuccess("Task completed: %s", task.Title)

		if task.IsOccurrence() {
			pattern, err := store.FindTask(task.PatternID)
			if err == nil {
				ui.Dim.Printf("  Next occurrence scheduled (every %d %s)\n",
					pattern.RecurrenceInterval, pattern.RecurrenceType)
			}
		}
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:     "rm <task_id>",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		store := storage.Get()

		task, err := store.FindTask(taskID)
		if err != nil {
			ui.PrintError("Task not found: %v", err)
			return
		}

		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Delete task '%s'?\n", task.Title)
			fmt.Print("Type 'yes' to confirm: ")

			var confirm string
			fmt.Scanln(&confirm)

			if confirm != "yes" {
				ui.PrintInfo("Deletion cancelled")
				return
			}
		}

		if err := store.RemoveTask(taskID); err != nil {
			ui.PrintError("Failed to remove task: %v", err)
			return
		}

		ui.PrintSuccess("Task removed: %s", task.Title)
	},
}

func init() {
	// task add flags
	taskAddCmd.Flags().StringP("priority", "p", "medium", "Task priority (low/medium/high)")
	taskAddCmd.Flags().StringSliceP("tags", "t", []string{}, "Task tags")
	taskAddCmd.Flags().StringP("due", "d", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().String("recur", "", "Recurrence (daily/weekly/monthly/yearly)")
	taskAddCmd.Flags().Int("every", 1, "Recurrence interval")

	// task list flags
	taskListCmd.Flags().BoolP("all", "a", false, "Include completed tasks and patterns")
	taskListCmd.Flags().String("tag", "", "Filter by tag")
	taskListCmd.Flags().StringP("priority", "p", "", "Filter by priority")

	// task rm flags
	taskRemoveCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	// Add subcommands
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRemoveCmd)
}
