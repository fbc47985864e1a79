package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/calvinalkan/agent-board/internal/fs"
)

const (
	historyLockTimeout = 2 * time.Second
	historyFilePerm    = 0o600
	historyDirPerm     = 0o755
)

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// history persists session input lines. An empty path disables it.
//
// Concurrent sessions share one file; saves are serialized with a lock and
// replace the file atomically, so the last session to exit wins.
type history struct {
	path string
	fs   fs.FS
}

func (h history) load(dst historyReader) error {
	if h.path == "" {
		return nil
	}

	data, err := h.fs.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading history: %w", err)
	}

	_, err = dst.ReadHistory(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing history: %w", err)
	}

	return nil
}

func (h history) save(src historyWriter) error {
	if h.path == "" {
		return nil
	}

	err := h.fs.MkdirAll(filepath.Dir(h.path), historyDirPerm)
	if err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	lock, err := fs.NewLocker(h.fs).LockWithTimeout(h.path, historyLockTimeout)
	if err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer lock.Close()

	var buf bytes.Buffer

	_, err = src.WriteHistory(&buf)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	err = h.fs.WriteFileAtomic(h.path, buf.Bytes(), historyFilePerm)
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	return nil
}
