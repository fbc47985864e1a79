package fs

import (
	"errors"
	"os"
	"sync"
)

// InjectedError marks an error as intentionally injected by [Injected].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Err error
}

// Error returns the underlying error's message.
func (e *InjectedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected.
func IsInjected(err error) bool {
	var injected *InjectedError

	return errors.As(err, &injected)
}

// Op names an [FS] method that [Injected] can fail.
type Op string

// Operations that can be failed.
const (
	OpOpenFile        Op = "openfile"
	OpReadFile        Op = "readfile"
	OpWriteFileAtomic Op = "writefileatomic"
	OpMkdirAll        Op = "mkdirall"
)

// Injected wraps an [FS] and fails the configured operations with
// [InjectedError]. All other calls pass through.
//
// Safe for concurrent use.
type Injected struct {
	inner FS

	mu    sync.Mutex
	fails map[Op]error
	calls map[Op]int
}

var _ FS = (*Injected)(nil)

// NewInjected wraps inner.
func NewInjected(inner FS) *Injected {
	return &Injected{inner: inner, fails: map[Op]error{}, calls: map[Op]int{}}
}

// Fail makes every later call to op return err wrapped in [InjectedError].
// Passing a nil err clears the failure.
func (f *Injected) Fail(op Op, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		delete(f.fails, op)

		return
	}

	f.fails[op] = err
}

// Calls returns how many times op was attempted.
func (f *Injected) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

func (f *Injected) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[op]++

	err, ok := f.fails[op]
	if !ok {
		return nil
	}

	return &InjectedError{Err: &os.PathError{Op: string(op), Path: path, Err: err}}
}

// OpenFile implements [FS].
func (f *Injected) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	err := f.check(OpOpenFile, path)
	if err != nil {
		return nil, err
	}

	return f.inner.OpenFile(path, flag, perm)
}

// ReadFile implements [FS].
func (f *Injected) ReadFile(path string) ([]byte, error) {
	err := f.check(OpReadFile, path)
	if err != nil {
		return nil, err
	}

	return f.inner.ReadFile(path)
}

// WriteFileAtomic implements [FS].
func (f *Injected) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	err := f.check(OpWriteFileAtomic, path)
	if err != nil {
		return err
	}

	return f.inner.WriteFileAtomic(path, data, perm)
}

// MkdirAll implements [FS].
func (f *Injected) MkdirAll(path string, perm os.FileMode) error {
	err := f.check(OpMkdirAll, path)
	if err != nil {
		return err
	}

	return f.inner.MkdirAll(path, perm)
}

// Stat implements [FS].
func (f *Injected) Stat(path string) (os.FileInfo, error) {
	return f.inner.Stat(path)
}

// Exists implements [FS].
func (f *Injected) Exists(path string) (bool, error) {
	return f.inner.Exists(path)
}
