package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/taskpulse/taskpulse/internal/analytics"
)

// PrintProgressBar prints a progress bar with percentage-based coloring
func PrintProgressBar(percentage float64, width int) {
	// Clamp percentage to 0-100
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	filled := int((percentage / 100.0) * float64(width))

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"

	// Color the bar based on percentage
	if percentage >= 80 {
		Green.Print(bar)
	} else if percentage >= 50 {
		Yellow.Print(bar)
	} else if percentage >= 25 {
		Magenta.Print(bar)
	} else {
		Red.Print(bar)
	}
}

// heatChars index by heatmap level 0-4.
var heatChars = []string{"·", "▢", "▤", "▦", "█"}

// heatColors index by heatmap level 0-4.
var heatColors = []*color.Color{Dim, Cyan, Cyan, Green, BoldGreen}

// PrintHeatmapGrid renders a completion heatmap as a 7-row grid, one row per
// weekday and one column per week, oldest week on the left.
func PrintHeatmapGrid(result analytics.HeatmapResult) {
	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	for day := 0; day < 7; day++ {
		Dim.Printf("%s ", weekdays[day])
		for _, week := range result.Weeks {
			if day >= len(week) {
				continue
			}
			level := week[day].Level
			if level < 0 || level >= len(heatChars) {
				level = 0
			}
			heatColors[level].Print(heatChars[level] + " ")
		}
		fmt.Println()
	}

	fmt.Println()
	Dim.Print("    less ")
	for level := 0; level < len(heatChars); level++ {
		heatColors[level].Print(heatChars[level] + " ")
	}
	Dim.Println("more")
}

// PrintSparkline prints daily counts as a compact sparkline
func PrintSparkline(values []int) {
	if len(values) == 0 {
		return
	}

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	// Sparkline characters (8 levels)
	chars := []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

	for _, v := range values {
		var index int
		if max > 0 {
			index = v * (len(chars) - 1) / max
		}

		if max > 0 && v*4 >= max*3 {
			Green.Print(chars[index])
		} else if max > 0 && v*2 >= max {
			Yellow.Print(chars[index])
		} else {
			Red.Print(chars[index])
		}
	}
	fmt.Println()
}

// PrintChart prints a simple horizontal bar chart from labeled values,
// preserving the given label order.
func PrintChart(labels []string, values []float64, width int) {
	if len(labels) == 0 || len(labels) != len(values) {
		return
	}

	maxValue := 0.0
	maxLabelLen := 0
	for i, label := range labels {
		if values[i] > maxValue {
			maxValue = values[i]
		}
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	for i, label := range labels {
		fmt.Printf("%s: ", label+strings.Repeat(" ", maxLabelLen-len(label)))

		if maxValue > 0 && values[i] > 0 {
			barWidth := int((values[i] / maxValue) * float64(width))
			Cyan.Print(strings.Repeat("█", barWidth))
		}

		fmt.Printf(" %.1f\n", values[i])
	}
}
