package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/models"
)

// Table renders data in a compact fixed-width format for the terminal.
// Widths are measured in cells, so accented text lines up.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)
	// Right lists the columns aligned to the right.
	Right map[int]bool
}

// ColumnWidths calculates optimal column widths based on content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText)

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, headerStyle.Render(t.pad(i, h, widths[i])))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	var sepParts []string
	for _, w := range widths {
		sepParts = append(sepParts, StyleSubtle.Render(strings.Repeat("─", w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells = append(cells, cellStyle.Render(t.pad(i, Truncate(val, widths[i]), widths[i])))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

func (t *Table) pad(col int, s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if t.Right[col] {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// ActivityTable lays out activities in list order with their 1-based
// position and short ID, followed by a totals line.
func ActivityTable(activities []models.Activity, maxWidth int) *Table {
	t := &Table{
		Headers:  []string{"#", "ID", "Date", "Description", "Responsible", "Status", "Cost", "Photo"},
		MaxWidth: maxWidth,
		Right:    map[int]bool{0: true, 6: true},
	}
	for i, a := range activities {
		photo := ""
		if a.HasPhoto() {
			photo = "yes"
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			util.ShortID(a.ID, 0),
			a.Date,
			a.Description,
			a.Responsible,
			a.Status.Label(),
			FormatCost(a.Cost),
			photo,
		})
	}
	t.Rows = append(t.Rows, []string{"", "", "", "TOTAL", "", "", FormatCost(models.TotalCost(activities)), ""})
	return t
}

// FormatCost renders a cost with two decimals.
func FormatCost(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
