package board

import "slices"

// Reason explains why a move left the board unchanged.
type Reason int

// Reasons reported by [Move].
const (
	ReasonNone Reason = iota
	ReasonActiveNotFound
	ReasonTargetNotFound
	ReasonSamePosition
	ReasonSameTask
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonActiveNotFound:
		return "dragged task not found"
	case ReasonTargetNotFound:
		return "drop target not found"
	case ReasonSamePosition:
		return "task already in position"
	case ReasonSameTask:
		return "task dropped on itself"
	default:
		return "unknown"
	}
}

// Outcome tags the result of a move. Applied is false for a no-op, and
// Reason says which one.
type Outcome struct {
	Applied bool
	Reason  Reason
}

// NoOp returns the outcome of a move that left the board unchanged.
func NoOp(reason Reason) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) String() string {
	if o.Applied {
		return "applied"
	}

	return "no-op: " + o.Reason.String()
}

// LocateColumn returns the column holding taskID. The second result is false
// when no column holds it.
func LocateColumn(b Board, taskID string) (ColumnID, bool) {
	for _, col := range b.order {
		if slices.Contains(b.lanes[col], taskID) {
			return col, true
		}
	}

	return "", false
}

// MoveTask is [Move] without the outcome.
func MoveTask(b Board, activeID, overID string) Board {
	next, _ := Move(b, activeID, overID)

	return next
}

// Move relocates task activeID to the position referenced by overID.
//
// overID is either a column id, meaning the end of that column, or another
// task's id, meaning that task's current index in its column. Within one
// column the index applies after the task is taken out, so moving down lands
// after the target and moving up lands before it. Across columns the task is
// inserted before the target.
func Move(b Board, activeID, overID string) (Board, Outcome) {
	from, ok := LocateColumn(b, activeID)
	if !ok {
		return b, NoOp(ReasonActiveNotFound)
	}

	if activeID == overID {
		return b, NoOp(ReasonSameTask)
	}

	overIsColumn := slices.Contains(b.order, ColumnID(overID))

	to := ColumnID(overID)
	if !overIsColumn {
		to, ok = LocateColumn(b, overID)
		if !ok {
			return b, NoOp(ReasonTargetNotFound)
		}
	}

	fromIDs := b.lanes[from]
	toIDs := b.lanes[to]

	fromIndex := slices.Index(fromIDs, activeID)
	if fromIndex == -1 {
		return b, NoOp(ReasonActiveNotFound)
	}

	toIndex := len(toIDs)
	if !overIsColumn {
		if i := slices.Index(toIDs, overID); i != -1 {
			toIndex = i
		}
	}

	if from == to {
		if fromIndex == toIndex {
			return b, NoOp(ReasonSamePosition)
		}

		moved := arrayMove(fromIDs, fromIndex, toIndex)
		if slices.Equal(moved, fromIDs) {
			return b, NoOp(ReasonSamePosition)
		}

		return b.withLanes(map[ColumnID][]string{from: moved}), Outcome{Applied: true}
	}

	removed := make([]string, 0, len(fromIDs)-1)
	for _, id := range fromIDs {
		if id != activeID {
			removed = append(removed, id)
		}
	}

	return b.withLanes(map[ColumnID][]string{
		from: removed,
		to:   insertAt(toIDs, toIndex, activeID),
	}), Outcome{Applied: true}
}

// arrayMove returns a copy of ids with the element at from taken out and
// reinserted at to, where to indexes the sequence after removal. Indexes past
// the end append.
func arrayMove(ids []string, from, to int) []string {
	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	return insertAt(out, min(to, len(out)), ids[from])
}

// insertAt returns a copy of ids with id inserted at index i.
func insertAt(ids []string, i int, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)

	return append(out, ids[i:]...)
}
