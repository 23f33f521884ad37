// Package report renders the activity list as a spreadsheet or a PDF document.
package report

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/afero"
)

// Default output names.
const (
	DefaultSpreadsheetFile = "daily_report.xlsx"
	DefaultDocumentFile    = "daily_report.pdf"
)

// ErrNoActivities is returned when there is nothing to report. No file is written.
var ErrNoActivities = errors.New("no activities to report")

// Generator produces report files. Photos are read and reports written
// through fs.
type Generator struct {
	fs       afero.Fs
	now      func() time.Time
	logger   *slog.Logger
	compress bool
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for the document title.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithoutCompression writes PDF content streams uncompressed.
func WithoutCompression() Option {
	return func(g *Generator) { g.compress = false }
}

// NewGenerator creates a Generator.
func NewGenerator(fs afero.Fs, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		now:      time.Now,
		logger:   slog.Default(),
		compress: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
