package store

import (
	"errors"

	"github.com/josephgoksu/sitelog/models"
)

var (
	// ErrOutOfRange is returned when a position does not address a record.
	ErrOutOfRange = errors.New("activity index out of range")
	// ErrNotFound is returned when no record carries the requested ID.
	ErrNotFound = errors.New("activity not found")
	// ErrMalformed is returned when the activity document cannot be decoded.
	ErrMalformed = errors.New("malformed activity document")
	// ErrSave is returned when the activity document cannot be written.
	ErrSave = errors.New("failed to save activities")
)

// ActivityStore defines the contract for the ordered activity collection and
// its persistence. Position in the list is the display order.
type ActivityStore interface {
	// Load reads the activity document, replacing the in-memory list.
	// A missing document yields an empty store.
	Load() ([]models.Activity, error)

	// Save overwrites the document with the given list and adopts it as the
	// in-memory state.
	Save(activities []models.Activity) error

	// Add appends an activity and persists the whole list.
	Add(activity models.Activity) (models.Activity, error)

	// RemoveAt removes the record at index from memory only. Persisting the
	// removal is left to the caller.
	RemoveAt(index int) (models.Activity, error)

	// Get returns the record with the given ID and its position.
	Get(id string) (models.Activity, int, error)

	// Replace swaps the record with the given ID in place and persists.
	Replace(id string, activity models.Activity) (models.Activity, error)

	// Delete removes the record with the given ID and persists.
	Delete(id string) (models.Activity, error)

	// List returns a copy of the records in order.
	List() []models.Activity

	// Len returns the number of records.
	Len() int

	// Path returns the location of the activity document.
	Path() string
}
