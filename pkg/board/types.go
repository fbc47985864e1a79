package board

import (
	"fmt"
	"maps"
	"slices"
)

// ColumnID identifies one of the fixed lanes of the board.
type ColumnID string

// The fixed column set, in display order.
const (
	ColumnMessage    ColumnID = "message"
	ColumnScheduling ColumnID = "scheduling"
	ColumnVisit      ColumnID = "visit"
)

var columnIDs = [...]ColumnID{ColumnMessage, ColumnScheduling, ColumnVisit}

var columnTitles = map[ColumnID]string{
	ColumnMessage:    "Message",
	ColumnScheduling: "Scheduling",
	ColumnVisit:      "Visit",
}

// ColumnIDs returns the fixed column set in display order.
func ColumnIDs() []ColumnID {
	return slices.Clone(columnIDs[:])
}

// ParseColumnID validates s against the fixed column set.
func ParseColumnID(s string) (ColumnID, error) {
	id := ColumnID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColumn, s)
	}

	return id, nil
}

// Valid reports whether id belongs to the fixed column set.
func (id ColumnID) Valid() bool {
	_, ok := columnTitles[id]

	return ok
}

// Title returns the display title of the column, or the raw id if unknown.
func (id ColumnID) Title() string {
	if title, ok := columnTitles[id]; ok {
		return title
	}

	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

// Task is a single work item.
type Task struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Column is a read-only view of one lane. TaskIDs is a copy owned by the
// caller; changing it does not affect the board it came from.
type Column struct {
	ID      ColumnID
	Title   string
	TaskIDs []string
}

// Board is an immutable snapshot of tasks, columns and column order.
//
// The zero Board has no columns and fails [Validate]; use [Initial] or [New].
type Board struct {
	tasks map[string]Task
	lanes map[ColumnID][]string
	order []ColumnID
}

// Snapshot is an exported deep copy of a board, used for rendering and for
// comparing boards in tests.
type Snapshot struct {
	Tasks   map[string]Task
	Columns []Column
}

// ColumnOrder returns the left-to-right column order.
func (b Board) ColumnOrder() []ColumnID {
	return slices.Clone(b.order)
}

// Column returns the lane with the given id.
func (b Board) Column(id ColumnID) (Column, bool) {
	ids, ok := b.lanes[id]
	if !ok {
		return Column{}, false
	}

	return Column{ID: id, Title: id.Title(), TaskIDs: append([]string{}, ids...)}, true
}

// Columns returns every lane in column order.
func (b Board) Columns() []Column {
	cols := make([]Column, 0, len(b.order))

	for _, id := range b.order {
		col, _ := b.Column(id)
		cols = append(cols, col)
	}

	return cols
}

// Task returns the task with the given id.
func (b Board) Task(id string) (Task, bool) {
	task, ok := b.tasks[id]

	return task, ok
}

// Len returns the number of tasks on the board.
func (b Board) Len() int {
	return len(b.tasks)
}

// Snapshot returns a deep copy of the board.
func (b Board) Snapshot() Snapshot {
	tasks := make(map[string]Task, len(b.tasks))
	maps.Copy(tasks, b.tasks)

	return Snapshot{Tasks: tasks, Columns: b.Columns()}
}

// Equal reports whether both boards hold the same tasks, columns and order.
func (b Board) Equal(other Board) bool {
	if !slices.Equal(b.order, other.order) {
		return false
	}

	if !maps.Equal(b.tasks, other.tasks) {
		return false
	}

	return maps.EqualFunc(b.lanes, other.lanes, slices.Equal[[]string])
}

// withLanes returns a copy of b with the given lanes replaced. The task map,
// column order and untouched lanes are shared with b.
func (b Board) withLanes(changed map[ColumnID][]string) Board {
	lanes := make(map[ColumnID][]string, len(b.lanes))
	maps.Copy(lanes, b.lanes)
	maps.Copy(lanes, changed)

	return Board{tasks: b.tasks, lanes: lanes, order: b.order}
}
