package cli

import (
	"github.com/mattn/go-isatty"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// isTerminal reports whether v is an open terminal. Buffers, pipes and
// anything without a file descriptor are not.
func isTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
