// Package photo shrinks attached site photos into the managed photo directory.
package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// TimestampLayout prefixes every stored photo name.
const TimestampLayout = "20060102_150405"

var (
	// ErrOpen is returned when the source photo cannot be read.
	ErrOpen = errors.New("cannot open photo")
	// ErrDecode is returned when the source is not a supported image.
	ErrDecode = errors.New("unsupported or corrupt image")
	// ErrWrite is returned when the optimized copy cannot be stored.
	ErrWrite = errors.New("cannot store optimized photo")
)

// Config bounds the optimization.
type Config struct {
	// Dir is the managed photo directory, created on first use.
	Dir string
	// MaxDimension caps both width and height in pixels.
	MaxDimension int
	// MaxBytes is the target encoded size. It is best effort: the encoding
	// at MinQuality is kept even when still larger.
	MaxBytes     int
	StartQuality int
	QualityStep  int
	MinQuality   int
}

// DefaultConfig returns 1024 px, 500 KiB and qualities 95 down to 10 in steps of 5.
func DefaultConfig() Config {
	return Config{
		Dir:          "photos",
		MaxDimension: 1024,
		MaxBytes:     500 * 1024,
		StartQuality: 95,
		QualityStep:  5,
		MinQuality:   10,
	}
}

// Result describes a stored photo.
type Result struct {
	Path    string
	Quality int
	Size    int
	Width   int
	Height  int
}

// Optimizer resizes and re-encodes photos.
type Optimizer struct {
	fs     afero.Fs
	cfg    Config
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes an Optimizer.
type Option func(*Optimizer)

// WithClock overrides the clock used for file names.
func WithClock(now func() time.Time) Option {
	return func(o *Optimizer) { o.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) { o.logger = l }
}

// NewOptimizer creates an Optimizer. Zero limits in cfg fall back to
// DefaultConfig.
func NewOptimizer(fs afero.Fs, cfg Config, opts ...Option) *Optimizer {
	def := DefaultConfig()
	if cfg.Dir == "" {
		cfg.Dir = def.Dir
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = def.MaxDimension
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = def.MaxBytes
	}
	if cfg.StartQuality <= 0 || cfg.StartQuality > 100 {
		cfg.StartQuality = def.StartQuality
	}
	if cfg.QualityStep <= 0 {
		cfg.QualityStep = def.QualityStep
	}
	if cfg.MinQuality <= 0 || cfg.MinQuality > cfg.StartQuality {
		cfg.MinQuality = min(def.MinQuality, cfg.StartQuality)
	}

	o := &Optimizer{
		fs:     fs,
		cfg:    cfg,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Config returns the effective limits.
func (o *Optimizer) Config() Config {
	return o.cfg
}

// Optimize stores a downscaled JPEG copy of source and returns where it went.
// The source file is never modified.
func (o *Optimizer) Optimize(source string) (Result, error) {
	img, err := o.decode(source)
	if err != nil {
		return Result{}, err
	}

	img = imaging.Fit(img, o.cfg.MaxDimension, o.cfg.MaxDimension, imaging.Lanczos)

	data, quality, err := o.encode(img)
	if err != nil {
		return Result{}, err
	}

	if err := o.fs.MkdirAll(o.cfg.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: create %s: %v", ErrWrite, o.cfg.Dir, err)
	}
	name := o.now().Format(TimestampLayout) + "_" + filepath.Base(source)
	dest := filepath.Join(o.cfg.Dir, name)
	if err := afero.WriteFile(o.fs, dest, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}

	bounds := img.Bounds()
	res := Result{
		Path:    dest,
		Quality: quality,
		Size:    len(data),
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
	}
	o.logger.Debug("photo optimized",
		"source", source,
		"dest", dest,
		"quality", res.Quality,
		"bytes", res.Size,
		"width", res.Width,
		"height", res.Height)
	return res, nil
}

func (o *Optimizer) decode(source string) (image.Image, error) {
	f, err := o.fs.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, source, err)
	}
	defer func() { _ = f.Close() }()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, source, err)
	}
	return img, nil
}

// encode lowers the JPEG quality step by step until the output fits
// MaxBytes or MinQuality is reached.
func (o *Optimizer) encode(img image.Image) ([]byte, int, error) {
	var buf bytes.Buffer
	quality := o.cfg.StartQuality
	for {
		buf.Reset()
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, 0, fmt.Errorf("encode jpeg at quality %d: %w", quality, err)
		}
		if buf.Len() <= o.cfg.MaxBytes || quality <= o.cfg.MinQuality {
			break
		}
		quality = max(quality-o.cfg.QualityStep, o.cfg.MinQuality)
	}
	if buf.Len() > o.cfg.MaxBytes {
		o.logger.Debug("photo still above size ceiling", "bytes", buf.Len(), "limit", o.cfg.MaxBytes)
	}
	return buf.Bytes(), quality, nil
}
