package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/taskpulse/taskpulse/internal/config"
	"github.com/taskpulse/taskpulse/internal/models"
)

var (
	// Color definitions
	Red     = color.New(color.FgRed)
	Green   = color.New(color.FgGreen)
	Yellow  = color.New(color.FgYellow)
	Blue    = color.New(color.FgBlue)
	Cyan    = color.New(color.FgCyan)
	Magenta = color.New(color.FgMagenta)
	White   = color.New(color.FgWhite)

	// Bold variants
	BoldGreen = color.New(color.FgGreen, color.Bold)
	BoldBlue  = color.New(color.FgBlue, color.Bold)
	BoldCyan  = color.New(color.FgCyan, color.Bold)

	// Dim
	Dim = color.New(color.Faint)
)

// Init initializes the UI system
func Init() {
	cfg := config.Get()
	color.NoColor = !cfg.ColorOutput
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Green.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Red.Printf("✗ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Yellow.Printf("⚠ "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Blue.Printf("ℹ "+format+"\n", args...)
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	BoldCyan.Println("\n" + text)
	BoldCyan.Println(strings.Repeat("═", len(text)))
}

// PrintSubHeader prints a subsection header
func PrintSubHeader(text string) {
	BoldBlue.Println("\n" + text)
}

// PrintSeparator prints a horizontal line
func PrintSeparator() {
	Dim.Println(strings.Repeat("─", 80))
}

// PrintEmptyState prints a message when no data exists
func PrintEmptyState(message string, suggestion string) {
	fmt.Println()
	Yellow.Println("ℹ️  " + message)
	if suggestion != "" {
		Dim.Println("   💡 " + suggestion)
	}
	fmt.Println()
}

// FormatPercentage formats a whole-number percentage
func FormatPercentage(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// FormatDays formats a day count with one decimal place
func FormatDays(days float64) string {
	return fmt.Sprintf("%.1fd", days)
}

// FormatDate formats a calendar-date string
func FormatDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Jan 02, 2006")
}

// FormatDateTime formats a timestamp
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// GetPriorityIcon returns an icon for a priority level
func GetPriorityIcon(priority models.Priority) string {
	switch priority {
	case models.PriorityHigh:
		return "🔴"
	case models.PriorityMedium:
		return "🟡"
	case models.PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// GetPriorityColor returns the color for a priority level
func GetPriorityColor(priority models.Priority) *color.Color {
	switch priority {
	case models.PriorityHigh:
		return Red
	case models.PriorityMedium:
		return Yellow
	case models.PriorityLow:
		return Green
	default:
		return White
	}
}

// PrintTask prints a task in a formatted way
func PrintTask(task models.Task, indent string) {
	status := "⭕"
	statusColor := Yellow
	if task.Completed {
		status = "✅"
		statusColor = Green
	}

	statusColor.Printf("%s%s [%s] %s", indent, status, shortID(task.ID), task.Title)

	if task.Priority != "" {
		GetPriorityColor(task.Priority).Printf(" [%s]", task.Priority)
	}

	if task.IsPattern {
		Magenta.Printf(" [pattern:%s]", task.RecurrenceType)
	} else if task.IsOccurrence() {
		Cyan.Printf(" [%s]", task.RecurrenceType)
	}
	fmt.Println()

	if task.DueDate != nil {
		Dim.Printf("%s   📅 due %s\n", indent, task.DueDate.Format("2006-01-02"))
	}
	if len(task.Tags) > 0 {
		Dim.Printf("%s   🏷️  %s\n", indent, strings.Join(task.Tags, ", "))
	}
}

// shortID trims an ID for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
