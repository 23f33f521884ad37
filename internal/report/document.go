package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	"github.com/josephgoksu/sitelog/models"
)

// TitleLayout formats the generation timestamp in the document title.
const TitleLayout = "02/01/2006 15:04:05"

// DocumentHeaders is the table header of the document report.
var DocumentHeaders = []string{"Data", "Descrição", "Responsável", "Status", "Observações", "Custo (R$)"}

var documentColumnWidths = []float64{62, 120, 90, 70, 108, 65}

const (
	pageMargin   = 40.0
	lineHeight   = 12.0
	tableFont    = 9.0
	thumbMax     = 200
	chartBoxW    = 300.0
	chartBoxH    = 200.0
	sectionSpace = 16.0
	ellipsis     = "..."
)

// document carries the state of one PDF being laid out.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	g   *Generator
}

// Document writes a paginated A4 report: title, activity table with totals,
// cost pie chart and one section per attached photo.
func (g *Generator) Document(activities []models.Activity, path string) error {
	if len(activities) == 0 {
		return ErrNoActivities
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCompression(g.compress)
	pdf.SetCreator("sitelog", true)
	pdf.SetTitle("Daily Construction Report", true)

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), g: g}

	pdf.AddPage()
	d.title(fmt.Sprintf("Daily Construction Report - %s", g.now().Format(TitleLayout)))
	d.table(activities)
	if err := d.chart(activities); err != nil {
		return err
	}
	d.photos(activities)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("lay out document: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	if err := writeOutput(g.fs, path, buf.Bytes()); err != nil {
		return err
	}
	g.logger.Info("document report written", "path", path, "activities", len(activities))
	return nil
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 24, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(sectionSpace)
}

func (d *document) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 18, d.tr(text), "", 1, "L", false, 0, "")
}

// ensureSpace starts a new page when h points do not fit below the cursor.
func (d *document) ensureSpace(h float64) bool {
	_, pageH := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageH-pageMargin {
		d.pdf.AddPage()
		return true
	}
	return false
}

func (d *document) table(activities []models.Activity) {
	d.tableRow(DocumentHeaders, true)
	for _, a := range activities {
		d.tableRow([]string{a.Date, a.Description, a.Responsible, string(a.Status), a.Notes, fmt.Sprintf("%.2f", a.Cost)}, false)
	}
	d.tableRow([]string{"", "TOTAL", "", "", "", fmt.Sprintf("%.2f", models.TotalCost(activities))}, true)
	d.pdf.Ln(sectionSpace)
}

// tableRow draws one bordered row, wrapping text inside each cell. The
// header is drawn again at the top of every new page. Cells longer than
// fit on a page are cut short with an ellipsis.
func (d *document) tableRow(cells []string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Helvetica", style, tableFont)

	wrapped := make([][][]byte, len(cells))
	lines := 1
	limit := d.rowLineLimit()
	for i, text := range cells {
		wrapped[i] = d.clip(d.pdf.SplitLines([]byte(d.tr(text)), documentColumnWidths[i]), limit)
		lines = max(lines, len(wrapped[i]))
	}
	height := float64(lines) * lineHeight

	if d.ensureSpace(height) {
		d.tableRow(DocumentHeaders, true)
		d.pdf.SetFont("Helvetica", style, tableFont)
	}

	x, y := d.pdf.GetXY()
	for i, cellLines := range wrapped {
		w := documentColumnWidths[i]
		d.pdf.Rect(x, y, w, height, "D")
		align := "L"
		if i == len(cells)-1 {
			align = "R"
		}
		for n, line := range cellLines {
			d.pdf.SetXY(x, y+float64(n)*lineHeight)
			d.pdf.CellFormat(w, lineHeight, string(line), "", 2, align, false, 0, "")
		}
		x += w
	}
	d.pdf.SetXY(pageMargin, y+height)
}

// rowLineLimit is the most lines a cell may take so that one row and the
// repeated header fit on a fresh page.
func (d *document) rowLineLimit() int {
	_, pageH := d.pdf.GetPageSize()
	return int((pageH-2*pageMargin)/lineHeight) - 2
}

// clip keeps the first limit wrapped lines and ends the last one with an
// ellipsis, no wider than the line it replaces.
func (d *document) clip(lines [][]byte, limit int) [][]byte {
	if len(lines) <= limit {
		return lines
	}
	lines = lines[:limit]
	last := lines[limit-1]
	room := d.pdf.GetStringWidth(string(last))
	for len(last) > 0 && d.pdf.GetStringWidth(string(last)+ellipsis) > room {
		last = last[:len(last)-1]
	}
	lines[limit-1] = []byte(string(bytes.TrimRight(last, " ")) + ellipsis)
	return lines
}

func (d *document) chart(activities []models.Activity) error {
	png, err := renderCostChart(activities)
	if err != nil {
		return err
	}

	d.ensureSpace(18 + chartBoxH)
	d.heading(chartTitle)
	if png == nil {
		d.note("No costs to chart.")
		d.pdf.Ln(sectionSpace)
		return nil
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader("cost-chart", opts, bytes.NewReader(png))
	pageW, _ := d.pdf.GetPageSize()
	x := (pageW - chartBoxW) / 2
	y := d.pdf.GetY()
	d.pdf.ImageOptions("cost-chart", x, y, chartBoxW, chartBoxH, false, opts, 0, "")
	d.pdf.SetY(y + chartBoxH + sectionSpace)
	return nil
}

func (d *document) photos(activities []models.Activity) {
	for i, a := range activities {
		if !a.HasPhoto() {
			continue
		}
		d.ensureSpace(18 + thumbMax)
		d.heading(fmt.Sprintf("Photo - %s (%s)", a.Description, a.Date))

		if err := d.photo(fmt.Sprintf("photo-%d", i), a.PhotoPath); err != nil {
			d.g.logger.Warn("photo not embedded", "path", a.PhotoPath, "error", err)
			d.note(fmt.Sprintf("Failed to load photo: %v", err))
		}
		d.pdf.Ln(sectionSpace)
	}
}

// photo embeds a thumbnail of the image at path, fitted into thumbMax
// points on either side. The image is staged in memory.
func (d *document) photo(name, path string) error {
	f, err := d.g.fs.Open(path)
	if err != nil {
		return err
	}
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	thumb := imaging.Fit(img, thumbMax, thumbMax, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, &buf)
	if !d.pdf.Ok() {
		err := d.pdf.Error()
		d.pdf.ClearError()
		return err
	}

	w, h := float64(thumb.Bounds().Dx()), float64(thumb.Bounds().Dy())
	y := d.pdf.GetY()
	d.pdf.ImageOptions(name, pageMargin, y, w, h, false, opts, 0, "")
	d.pdf.SetY(y + h)
	return nil
}

func (d *document) note(text string) {
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.SetTextColor(180, 30, 30)
	d.pdf.MultiCell(0, lineHeight, d.tr(strings.TrimSpace(text)), "", "L", false)
	d.pdf.SetTextColor(0, 0, 0)
}
