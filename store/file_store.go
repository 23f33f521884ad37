package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/josephgoksu/sitelog/models"
	"github.com/spf13/afero"
)

// DefaultDataFile is the name of the activity document.
const DefaultDataFile = "activities.json"

// FileActivityStore implements ActivityStore on top of a JSON document. All
// filesystem access goes through an afero.Fs so tests can run in memory.
type FileActivityStore struct {
	fs         afero.Fs
	filePath   string
	activities []models.Activity
}

// NewFileActivityStore creates a store for the document at filePath. Nothing
// is read until Load is called.
func NewFileActivityStore(fs afero.Fs, filePath string) *FileActivityStore {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	return &FileActivityStore{
		fs:       fs,
		filePath: filePath,
	}
}

// Open creates a store and loads the document in one step.
func Open(fs afero.Fs, filePath string) (*FileActivityStore, error) {
	s := NewFileActivityStore(fs, filePath)
	if _, err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the activity document.
func (s *FileActivityStore) Path() string {
	return s.filePath
}

// Load reads the document. A missing or empty file is an empty store; a file
// that does not decode as an activity list is reported as ErrMalformed and
// leaves the in-memory list untouched.
func (s *FileActivityStore) Load() ([]models.Activity, error) {
	exists, err := afero.Exists(s.fs, s.filePath)
	if err != nil {
		return nil, fmt.Errorf("check activity document %s: %w", s.filePath, err)
	}
	if !exists {
		s.activities = nil
		return s.List(), nil
	}

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		return nil, fmt.Errorf("read activity document %s: %w", s.filePath, err)
	}

	var loaded []models.Activity
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.filePath, err)
		}
	}
	models.AssignIDs(loaded)
	s.activities = loaded
	return s.List(), nil
}

// Save overwrites the document with activities.
func (s *FileActivityStore) Save(activities []models.Activity) error {
	previous := s.activities
	s.activities = slices.Clone(activities)
	for i := range s.activities {
		if s.activities[i].ID == "" {
			s.activities[i].ID = models.NextID(s.activities, s.activities[i])
		}
	}
	if err := s.persist(); err != nil {
		s.activities = previous
		return err
	}
	return nil
}

// Add appends an activity and persists. On a failed write the in-memory list
// is restored.
func (s *FileActivityStore) Add(activity models.Activity) (models.Activity, error) {
	if err := models.ValidateStruct(activity); err != nil {
		return models.Activity{}, fmt.Errorf("validation failed for new activity: %w", err)
	}
	activity.ID = models.NextID(s.activities, activity)

	previous := s.activities
	s.activities = append(slices.Clone(s.activities), activity)
	if err := s.persist(); err != nil {
		s.activities = previous
		return models.Activity{}, err
	}
	return activity, nil
}

// RemoveAt removes the record at index without persisting.
func (s *FileActivityStore) RemoveAt(index int) (models.Activity, error) {
	if index < 0 || index >= len(s.activities) {
		return models.Activity{}, fmt.Errorf("%w: %d (store has %d)", ErrOutOfRange, index, len(s.activities))
	}
	removed := s.activities[index]
	s.activities = slices.Delete(slices.Clone(s.activities), index, index+1)
	return removed, nil
}

// Get returns the record with the given ID and its position.
func (s *FileActivityStore) Get(id string) (models.Activity, int, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Activity{}, -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.activities[idx], idx, nil
}

// Replace swaps the record in place, keeping its position and ID, and
// persists once.
func (s *FileActivityStore) Replace(id string, activity models.Activity) (models.Activity, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Activity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := models.ValidateStruct(activity); err != nil {
		return models.Activity{}, fmt.Errorf("validation failed for updated activity: %w", err)
	}
	activity.ID = id

	previous := s.activities
	s.activities = slices.Clone(s.activities)
	s.activities[idx] = activity
	if err := s.persist(); err != nil {
		s.activities = previous
		return models.Activity{}, err
	}
	return activity, nil
}

// Delete removes the record with the given ID and persists.
func (s *FileActivityStore) Delete(id string) (models.Activity, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Activity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	previous := s.activities
	removed, err := s.RemoveAt(idx)
	if err != nil {
		return models.Activity{}, err
	}
	if err := s.persist(); err != nil {
		s.activities = previous
		return models.Activity{}, err
	}
	return removed, nil
}

// List returns a copy of the records in order.
func (s *FileActivityStore) List() []models.Activity {
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Len returns the number of records.
func (s *FileActivityStore) Len() int {
	return len(s.activities)
}

func (s *FileActivityStore) indexOf(id string) int {
	return slices.IndexFunc(s.activities, func(a models.Activity) bool {
		return a.ID == id
	})
}

// encodeActivities renders the document as a four-space indented array,
// never null.
func encodeActivities(activities []models.Activity) ([]byte, error) {
	if activities == nil {
		activities = []models.Activity{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(activities); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// persist writes the in-memory list to a temporary file and renames it over
// the document.
func (s *FileActivityStore) persist() error {
	data, err := encodeActivities(s.activities)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ErrSave, dir, err)
		}
	}

	tempFilePath := s.filePath + ".tmp"
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrSave, tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %v", ErrSave, tempFilePath, s.filePath, err)
	}
	return nil
}
