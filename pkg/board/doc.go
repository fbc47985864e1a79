// Package board holds the lane board model and its state transitions.
//
// A [Board] is an immutable snapshot: tasks keyed by id, a fixed set of
// columns (lanes) holding ordered task ids, and the left-to-right column
// order. Every transition takes a snapshot and returns the next one. The
// input is never modified, and unchanged columns and the task map are shared
// between the two snapshots.
//
// # Basic Usage
//
//	b := board.Initial()
//
//	// Drop t3 on top of t1 (same or another column).
//	b = board.MoveTask(b, "t3", "t1")
//
//	// Drop t2 on the visit column (appends at the end).
//	b, outcome := board.Move(b, "t2", "visit")
//	if !outcome.Applied {
//	    fmt.Println("nothing moved:", outcome.Reason)
//	}
//
//	// Insert a new task at the top of a column.
//	b, err := board.AddTask(b, board.ColumnMessage, "Call back", id)
//
// # Invariants
//
// Every board produced by this package satisfies:
//   - every id in a column exists in the task map
//   - every task sits in exactly one column
//   - the column order is a permutation of the fixed column set
//   - no column lists the same task twice
//
// [Validate] checks these explicitly.
//
// # Error Handling
//
// Moves are total. A move whose task or target no longer exists, or that
// would not change anything, returns the input board with a [NoOp] outcome
// carrying the [Reason]. [AddTask] rejects bad input with [ErrInvalidColumn],
// [ErrInvalidArgument] or [ErrDuplicateTask] instead of producing a board
// that breaks the invariants.
package board
