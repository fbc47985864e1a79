package board

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by board operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, board.ErrInvalidColumn) {
//	    // reject the request
//	}
var (
	// ErrInvalidColumn indicates a column id outside the fixed column set.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrInvalidArgument indicates input that would break a board invariant,
	// such as an empty title or an empty task id.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateTask indicates a task id that is already on the board.
	// It wraps [ErrInvalidArgument].
	ErrDuplicateTask = fmt.Errorf("%w: duplicate task id", ErrInvalidArgument)

	// ErrInvariant indicates a board that violates one of the invariants
	// listed in the package documentation.
	ErrInvariant = errors.New("board invariant violated")
)
