// Package schedule moves activities in and out of the CSV layout used by
// project-scheduling tools.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/josephgoksu/sitelog/models"
	"github.com/spf13/afero"
)

// RequiredColumns must all be present in an imported header.
var RequiredColumns = []string{"Task Name", "Start", "Finish", "Duration"}

// DefaultExportFile is the export name used when none is given.
const DefaultExportFile = "ms_project_export.csv"

var (
	// ErrFileNotFound is returned when the schedule file does not exist.
	ErrFileNotFound = errors.New("schedule file not found")
	// ErrMissingColumns is returned when a required column is absent.
	ErrMissingColumns = errors.New("schedule file is missing required columns")
	// ErrNothingToExport is returned for an empty activity list; nothing is written.
	ErrNothingToExport = errors.New("nothing to export")
)

// Row is one imported schedule line. Values keep the file's text form.
type Row struct {
	TaskName string
	Start    string
	Finish   string
	Duration string
	// Fields holds every column of the line keyed by header name.
	Fields map[string]string
}

// exportRow is the column layout written by Export.
type exportRow struct {
	TaskName      string `csv:"Task Name"`
	Start         string `csv:"Start"`
	ResourceNames string `csv:"Resource Names"`
	Notes         string `csv:"Notes"`
	Cost          string `csv:"Cost"`
}

// Interchange reads and writes schedule files.
type Interchange struct {
	fs afero.Fs
}

// New creates an Interchange on the given filesystem.
func New(fs afero.Fs) *Interchange {
	return &Interchange{fs: fs}
}

// Import reads the schedule at path.
func (x *Interchange) Import(path string) ([]Row, error) {
	exists, err := afero.Exists(x.fs, path)
	if err != nil {
		return nil, fmt.Errorf("check schedule %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := x.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty (need %s)", ErrMissingColumns, path, strings.Join(RequiredColumns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read schedule header %s: %w", path, err)
	}
	header = normalizeHeader(header)

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows []Row
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read schedule %s: %w", path, err)
		}
		rows = append(rows, buildRow(header, record))
	}
	return rows, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func buildRow(header, record []string) Row {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			fields[name] = record[i]
		} else {
			fields[name] = ""
		}
	}
	return Row{
		TaskName: fields["Task Name"],
		Start:    fields["Start"],
		Finish:   fields["Finish"],
		Duration: fields["Duration"],
		Fields:   fields,
	}
}

// Export writes one schedule line per activity, in store order, replacing
// any file at path. An empty list writes nothing and returns ErrNothingToExport.
func (x *Interchange) Export(activities []models.Activity, path string) error {
	if len(activities) == 0 {
		return ErrNothingToExport
	}

	rows := make([]exportRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, exportRow{
			TaskName:      a.Description,
			Start:         a.Date,
			ResourceNames: a.Responsible,
			Notes:         string(a.Status),
			Cost:          strconv.FormatFloat(a.Cost, 'f', -1, 64),
		})
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := x.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory %s: %w", dir, err)
		}
	}

	f, err := x.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	if err := gocsv.Marshal(&rows, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export %s: %w", path, err)
	}
	return nil
}
