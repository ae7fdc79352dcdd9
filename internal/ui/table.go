package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Table represents a formatted table
type Table struct {
	Headers []string
	Rows    [][]string
	Colors  [][]color.Color // Optional colors for cells
	Align   []Alignment     // Column alignment
}

// Alignment defines text alignment in table cells
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// NewTable creates a new table
func NewTable(headers []string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
		Colors:  make([][]color.Color, 0),
		Align:   make([]Alignment, len(headers)),
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// AddColoredRow adds a row with specific colors
func (t *Table) AddColoredRow(cells []string, colors []color.Color) {
	t.Rows = append(t.Rows, cells)
	t.Colors = append(t.Colors, colors)
}

// SetColumnAlignment sets alignment for a specific column
func (t *Table) SetColumnAlignment(col int, align Alignment) {
	if col >= 0 && col < len(t.Align) {
		t.Align[col] = align
	}
}

// PrintSimple prints a simple table without borders
func (t *Table) PrintSimple() {
	if len(t.Headers) == 0 {
		return
	}

	widths := t.calculateColumnWidths()

	// Print headers
	for i, header := range t.Headers {
		BoldCyan.Print(t.padCell(header, widths[i], t.Align[i]))
		if i < len(t.Headers)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()

	// Print separator
	for i, width := range widths {
		fmt.Print(strings.Repeat("─", width))
		if i < len(widths)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()

	// Print rows
	for i, row := range t.Rows {
		for j, cell := range row {
			if j < len(widths) {
				padded := t.padCell(cell, widths[j], t.Align[j])

				// Apply color if specified
				if i < len(t.Colors) && j < len(t.Colors[i]) {
					t.Colors[i][j].Print(padded)
				} else {
					fmt.Print(padded)
				}

				if j < len(row)-1 {
					fmt.Print("  ")
				}
			}
		}
		fmt.Println()
	}
}

// calculateColumnWidths calculates the width of each column
func (t *Table) calculateColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	// Start with header widths
	for i, header := range t.Headers {
		widths[i] = len(header)
	}

	// Check row widths
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	return widths
}

// padCell pads a cell to the specified width with alignment
func (t *Table) padCell(cell string, width int, align Alignment) string {
	if len(cell) >= width {
		return cell
	}

	padding := width - len(cell)

	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + cell
	case AlignCenter:
		leftPad := padding / 2
		rightPad := padding - leftPad
		return strings.Repeat(" ", leftPad) + cell + strings.Repeat(" ", rightPad)
	default: // AlignLeft
		return cell + strings.Repeat(" ", padding)
	}
}

// TableBuilder is a fluent interface for building tables
type TableBuilder struct {
	table *Table
}

// NewTableBuilder creates a new table builder
func NewTableBuilder(headers ...string) *TableBuilder {
	return &TableBuilder{
		table: NewTable(headers),
	}
}

// Row adds a row
func (tb *TableBuilder) Row(cells ...string) *TableBuilder {
	tb.table.AddRow(cells...)
	return tb
}

// ColoredRow adds a colored row
func (tb *TableBuilder) ColoredRow(cells []string, colors []color.Color) *TableBuilder {
	tb.table.AddColoredRow(cells, colors)
	return tb
}

// Align sets column alignment
func (tb *TableBuilder) Align(col int, align Alignment) *TableBuilder {
	tb.table.SetColumnAlignment(col, align)
	return tb
}

// PrintSimple prints simple format
func (tb *TableBuilder) PrintSimple() {
	tb.table.PrintSimple()
}
