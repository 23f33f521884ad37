package report

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/josephgoksu/sitelog/models"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of the spreadsheet report.
const SheetName = "Daily Report"

// SpreadsheetHeaders is the header row of the spreadsheet report.
var SpreadsheetHeaders = []string{"Data", "Descrição", "Responsável", "Status", "Observações", "Custo", "Foto"}

const (
	costColumn    = 6
	widthPadding  = 2
	maxSheetWidth = 255
)

// Spreadsheet writes the activities, followed by a totals row, to an xlsx
// workbook at path.
func (g *Generator) Spreadsheet(activities []models.Activity, path string) error {
	if len(activities) == 0 {
		return ErrNoActivities
	}

	rows := spreadsheetRows(activities)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := styleSpreadsheet(f, len(rows)); err != nil {
		return err
	}
	for col, width := range columnWidths(rows) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("size column %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("render spreadsheet: %w", err)
	}
	if err := writeOutput(g.fs, path, buf.Bytes()); err != nil {
		return err
	}
	g.logger.Info("spreadsheet report written", "path", path, "activities", len(activities))
	return nil
}

// spreadsheetRows returns header, one row per activity and the totals row.
func spreadsheetRows(activities []models.Activity) [][]any {
	rows := make([][]any, 0, len(activities)+2)

	header := make([]any, len(SpreadsheetHeaders))
	for i, h := range SpreadsheetHeaders {
		header[i] = h
	}
	rows = append(rows, header)

	for _, a := range activities {
		rows = append(rows, []any{a.Date, a.Description, a.Responsible, string(a.Status), a.Notes, a.Cost, a.PhotoPath})
	}
	rows = append(rows, []any{"", "TOTAL", "", "", "", models.TotalCost(activities), ""})
	return rows
}

func styleSpreadsheet(f *excelize.File, rowCount int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create cost style: %w", err)
	}
	boldMoney, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create total style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(SpreadsheetHeaders))
	costCol, _ := excelize.ColumnNumberToName(costColumn)

	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return err
	}
	if rowCount > 2 {
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("%s2", costCol), fmt.Sprintf("%s%d", costCol, rowCount-1), money); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", rowCount), fmt.Sprintf("%s%d", lastCol, rowCount), bold); err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, fmt.Sprintf("%s%d", costCol, rowCount), fmt.Sprintf("%s%d", costCol, rowCount), boldMoney)
}

// columnWidths sizes every column to its longest rendered value plus padding.
func columnWidths(rows [][]any) []int {
	widths := make([]int, len(SpreadsheetHeaders))
	for _, row := range rows {
		for i, v := range row {
			if n := utf8.RuneCountInString(cellText(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i]+widthPadding, maxSheetWidth)
	}
	return widths
}

func cellText(v any) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func writeOutput(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
