// Package activity coordinates validation, photo handling and persistence for
// the operations the CLI exposes.
package activity

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/josephgoksu/sitelog/internal/photo"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/models"
	"github.com/josephgoksu/sitelog/store"
)

// PhotoOptimizer stores an optimized copy of a photo and reports where.
type PhotoOptimizer interface {
	Optimize(source string) (photo.Result, error)
}

// Service applies user edits to the activity store.
type Service struct {
	store  store.ActivityStore
	photos PhotoOptimizer
	logger *slog.Logger
}

// NewService creates a Service. photos may be nil when no photo will be attached.
func NewService(s store.ActivityStore, photos PhotoOptimizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, photos: photos, logger: logger}
}

// List returns the activities in display order.
func (s *Service) List() []models.Activity {
	return s.store.List()
}

// Add validates the form, stores an optimized copy of photoSource when one is
// given, then appends and saves. Nothing is written when validation fails.
func (s *Service) Add(form models.ActivityForm, photoSource string) (models.Activity, error) {
	a, err := models.NewActivity(form)
	if err != nil {
		return models.Activity{}, err
	}
	if a.PhotoPath, err = s.attach(photoSource, a.PhotoPath); err != nil {
		return models.Activity{}, err
	}

	added, err := s.store.Add(a)
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info("activity added", "id", util.ShortID(added.ID, 0), "description", added.Description)
	return added, nil
}

// Resolve finds an activity by 1-based list position or by ID prefix.
// It returns the record and its 0-based index.
func (s *Service) Resolve(ref string) (models.Activity, int, error) {
	ref = strings.TrimSpace(ref)
	list := s.store.List()

	pos, convErr := strconv.Atoi(ref)
	if convErr == nil && pos >= 1 && pos <= len(list) {
		return list[pos-1], pos - 1, nil
	}

	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	id, err := util.ResolveIDPrefix(ref, ids)
	switch {
	case err == nil:
		return s.store.Get(id)
	case errors.Is(err, util.ErrNotFound) && convErr == nil:
		return models.Activity{}, -1, fmt.Errorf("%w: position %d (store has %d)", store.ErrOutOfRange, pos, len(list))
	case errors.Is(err, util.ErrNotFound):
		return models.Activity{}, -1, fmt.Errorf("%w: %v", store.ErrNotFound, err)
	default:
		return models.Activity{}, -1, err
	}
}

// Draft returns the edit form prefilled from the referenced activity. The
// store is not touched until Update is called.
func (s *Service) Draft(ref string) (models.Activity, models.ActivityForm, error) {
	a, _, err := s.Resolve(ref)
	if err != nil {
		return models.Activity{}, models.ActivityForm{}, err
	}
	return a, models.FormFromActivity(a), nil
}

// Update replaces the activity with id in place and saves once. A new photo
// is optimized only after the form validates.
func (s *Service) Update(id string, form models.ActivityForm, photoSource string) (models.Activity, error) {
	if _, _, err := s.store.Get(id); err != nil {
		return models.Activity{}, err
	}
	a, err := models.NewActivity(form)
	if err != nil {
		return models.Activity{}, err
	}
	if a.PhotoPath, err = s.attach(photoSource, a.PhotoPath); err != nil {
		return models.Activity{}, err
	}

	updated, err := s.store.Replace(id, a)
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info("activity updated", "id", util.ShortID(id, 0))
	return updated, nil
}

// Delete removes the activity with id and saves.
func (s *Service) Delete(id string) (models.Activity, error) {
	removed, err := s.store.Delete(id)
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info("activity deleted", "id", util.ShortID(id, 0), "description", removed.Description)
	return removed, nil
}

// attach optimizes source into the photo directory. Without a source the
// current path is kept.
func (s *Service) attach(source, current string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return current, nil
	}
	if s.photos == nil {
		return "", errors.New("photo optimizer not configured")
	}
	res, err := s.photos.Optimize(source)
	if err != nil {
		return "", err
	}
	s.logger.Debug("photo optimized", "path", res.Path, "quality", res.Quality, "bytes", res.Size)
	return res.Path, nil
}
