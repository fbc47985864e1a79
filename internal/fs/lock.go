package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

var (
	// ErrWouldBlock is returned when a lock cannot be acquired before the
	// timeout expires.
	ErrWouldBlock = errors.New("lock would block")

	// ErrInvalidTimeout is returned when a timeout is <= 0.
	ErrInvalidTimeout = errors.New("invalid lock timeout")
)

// Locker provides advisory file locking using flock(2).
//
// Locks are taken on a sibling "<path>.lock" file so the guarded file itself
// can be replaced by atomic renames while the lock is held.
//
// This implementation is Unix-only.
type Locker struct {
	fs    FS
	flock func(fd int, how int) error
}

// NewLocker creates a Locker that uses the given filesystem for file operations.
func NewLocker(fsys FS) *Locker {
	return &Locker{fs: fsys, flock: unix.Flock}
}

// Lock is a held exclusive lock. Call [Lock.Close] to release it.
type Lock struct {
	file File
}

// Close releases the lock. Safe to call more than once.
func (lk *Lock) Close() error {
	if lk == nil || lk.file == nil {
		return nil
	}

	_ = flockRetryEINTR(unix.Flock, int(lk.file.Fd()), unix.LOCK_UN)
	err := lk.file.Close()
	lk.file = nil

	return err
}

const (
	lockFilePerm   = 0o600
	lockDirPerm    = 0o755
	initialBackoff = time.Millisecond
	maxBackoff     = 25 * time.Millisecond
)

// LockWithTimeout takes an exclusive lock for path, polling until timeout.
// Returns [ErrWouldBlock] when another holder keeps the lock past the timeout.
func (l *Locker) LockWithTimeout(path string, timeout time.Duration) (*Lock, error) {
	if timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	lockPath := path + ".lock"

	mkdirErr := l.fs.MkdirAll(filepath.Dir(lockPath), lockDirPerm)
	if mkdirErr != nil {
		return nil, fmt.Errorf("creating lock dir: %w", mkdirErr)
	}

	file, err := l.fs.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	deadline := time.Now().Add(timeout)
	backoff := initialBackoff

	for {
		err = flockRetryEINTR(l.flock, int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return &Lock{file: file}, nil
		}

		if !isWouldBlock(err) {
			_ = file.Close()

			return nil, fmt.Errorf("flock: %w", err)
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			_ = file.Close()

			return nil, fmt.Errorf("%w: %s", ErrWouldBlock, path)
		}

		time.Sleep(min(backoff, remaining))

		backoff = min(backoff*2, maxBackoff)
	}
}

func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN)
}

// flockRetryEINTR wraps flock, retrying on EINTR.
//
// Retries are capped so a signal storm cannot spin forever.
func flockRetryEINTR(flock func(fd int, how int) error, fd int, how int) error {
	const maxEINTRRetries = 10000

	var err error
	for range maxEINTRRetries {
		err = flock(fd, how)
		if err == nil || !errors.Is(err, unix.EINTR) {
			return err
		}
	}

	return err
}
