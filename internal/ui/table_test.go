package ui

import (
	"strings"
	"testing"

	"github.com/josephgoksu/sitelog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Name", "Status"},
		Rows: [][]string{
			{"abc123", "First item", "Concluído"},
			{"def456", "Second item with longer name", "Atrasado"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 6, widths[0])
	assert.Equal(t, 28, widths[1])
	assert.Equal(t, 9, widths[2], "accented text counts by cell")
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"ID", "Description"},
		Rows:     [][]string{{"a", "This is a very long description that should be truncated"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])
	assert.Equal(t, 20, widths[1])
}

func TestTable_RenderAlignsRight(t *testing.T) {
	table := &Table{
		Headers: []string{"Name", "Cost"},
		Rows:    [][]string{{"Slab", "1500.00"}, {"Paint", "9.50"}},
		Right:   map[int]bool{1: true},
	}

	output := table.Render()

	assert.Contains(t, output, "Slab")
	assert.Contains(t, output, "   9.50")
	assert.Equal(t, 4, strings.Count(output, "\n"), "header, separator and two rows")
}

func TestActivityTable(t *testing.T) {
	activities := []models.Activity{
		{ID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Date: "01/06/2024", Description: "Poured foundation", Responsible: "Ana Silva", Status: models.StatusCompleted, Cost: 1500},
		{ID: "9c1d0f3e-aaaa-5bbb-8ccc-000000000000", Date: "02/06/2024", Description: "Masonry walls", Responsible: "Carlos", Status: models.StatusDelayed, Cost: 820.5, PhotoPath: "photos/wall.jpg"},
	}

	table := ActivityTable(activities, 0)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"1", "1b4e28ba", "01/06/2024", "Poured foundation", "Ana Silva", "Completed", "1500.00", ""}, table.Rows[0])
	assert.Equal(t, "yes", table.Rows[1][7])
	assert.Equal(t, "Delayed", table.Rows[1][5])
	assert.Equal(t, "TOTAL", table.Rows[2][3])
	assert.Equal(t, "2320.50", table.Rows[2][6])
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello w…"},
		{"accented", "Observações da obra", 10, "Observaçõ…"},
		{"one cell", "hello", 1, "…"},
		{"zero max", "hello", 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}
