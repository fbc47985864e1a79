package store

import "errors"

var (
	// ErrEmptyTitle reports an insert whose title is blank after trimming.
	// The board is left as it was.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrIDGenerationFailed reports an id source that kept returning ids
	// already on the board.
	ErrIDGenerationFailed = errors.New("no unique id after repeated attempts")
)
