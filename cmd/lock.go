package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/josephgoksu/sitelog/store"
)

const (
	lockTimeout  = 5 * time.Second
	lockInterval = 100 * time.Millisecond
)

// ErrLocked is returned when another process holds the activity document.
var ErrLocked = errors.New("activity document is in use by another sitelog process")

// withStoreLock loads the store under an exclusive lock on the document and
// runs fn. The lock is released when fn returns.
func withStoreLock(fn func(*store.FileActivityStore) error) error {
	path := dataFilePath()
	if dir := filepath.Dir(path); dir != "." {
		if err := appFs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockInterval)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	s, err := openStore()
	if err != nil {
		return err
	}
	return fn(s)
}
