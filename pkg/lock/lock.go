// Package lock serializes nominal runs that touch the filesystem with an
// OS-level advisory file lock.
package lock

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/logging"
)

// pollInterval is the interval between two attempts to take the lock
const pollInterval = 10 * time.Millisecond

// Lock is a held file lock
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the exclusive lock at path, waiting up to timeout for
// another process to release it. The parent directory is created if needed.
func Acquire(path string, timeout time.Duration) (*Lock, error) {
	logger := logging.GetLogger("lock")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocked, "cannot create lock directory for %s", path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, pollInterval)
	if err != nil && !stderrors.Is(err, context.DeadlineExceeded) {
		return nil, errors.Wrapf(err, errors.ErrLocked, "cannot lock %s", path).WithDetail("path", path)
	}
	if !locked {
		return nil, errors.Newf(errors.ErrLocked, "another nominal run holds %s", path).WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Lock acquired")
	return &Lock{flock: fl}, nil
}

// Release releases the lock. Releasing a nil lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
