// Package oracle is an in-memory reference model of kb's board semantics.
//
// The model is the source of truth for what a drag or insert should do. It
// is written as plainly as possible and shares no code with pkg/board: lanes
// are plain string slices and every rule is spelled out where it applies.
// Property tests drive the real store and this model with the same
// operations and compare the results.
//
// Design principles:
//
//   - Simple over performant. Every operation copies what it touches.
//
//   - Rules are stated in terms a user would use ("moving down lands after
//     the target"), not in terms of index arithmetic.
//
//   - No dependencies beyond the standard library.
//
// This package is designed to be simple enough to not need tests.
package oracle

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Errors returned by Add. The real store reports richer errors; the harness
// only compares success and failure.
var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrBadTitle      = errors.New("title is blank")
	ErrBadID         = errors.New("id is empty, taken, or a column name")
)

// Model is the reference board.
type Model struct {
	order  []string
	lanes  map[string][]string
	titles map[string]string
}

// New copies the given layout into a fresh model.
func New(order []string, lanes map[string][]string, titles map[string]string) *Model {
	m := &Model{
		order:  slices.Clone(order),
		lanes:  make(map[string][]string, len(order)),
		titles: maps.Clone(titles),
	}

	for _, col := range order {
		m.lanes[col] = slices.Clone(lanes[col])
	}

	return m
}

// Move drags active onto over. It reports whether the layout changed.
func (m *Model) Move(active, over string) bool {
	from := m.columnOf(active)
	if from == "" {
		return false
	}

	if active == over {
		return false
	}

	before := slices.Clone(m.lanes[from])
	rest := without(m.lanes[from], active)

	// Dropping on a column puts the task at its bottom.
	if slices.Contains(m.order, over) {
		if over == from {
			m.lanes[from] = append(rest, active)

			return !slices.Equal(before, m.lanes[from])
		}

		m.lanes[from] = rest
		m.lanes[over] = append(slices.Clone(m.lanes[over]), active)

		return true
	}

	to := m.columnOf(over)
	if to == "" {
		return false
	}

	if to != from {
		// Across columns the task takes the target's place, pushing it down.
		m.lanes[from] = rest
		m.lanes[to] = insertBefore(m.lanes[to], over, active)

		return true
	}

	// Within a column, moving down lands after the target and moving up
	// lands before it.
	movingDown := slices.Index(before, active) < slices.Index(before, over)
	if movingDown {
		m.lanes[from] = insertAfter(rest, over, active)
	} else {
		m.lanes[from] = insertBefore(rest, over, active)
	}

	return !slices.Equal(before, m.lanes[from])
}

// Add puts a new task at the top of column.
func (m *Model) Add(column, title, id string) error {
	if !slices.Contains(m.order, column) {
		return ErrUnknownColumn
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return ErrBadTitle
	}

	if id == "" || slices.Contains(m.order, id) {
		return ErrBadID
	}

	if _, taken := m.titles[id]; taken {
		return ErrBadID
	}

	m.titles[id] = title
	m.lanes[column] = append([]string{id}, m.lanes[column]...)

	return nil
}

// Lanes returns a copy of every column's task ids.
func (m *Model) Lanes() map[string][]string {
	out := make(map[string][]string, len(m.lanes))
	for col, ids := range m.lanes {
		out[col] = append([]string{}, ids...)
	}

	return out
}

// Titles returns a copy of the task titles keyed by id.
func (m *Model) Titles() map[string]string {
	return maps.Clone(m.titles)
}

// Columns returns the column ids in order.
func (m *Model) Columns() []string {
	return slices.Clone(m.order)
}

// IDs returns every task id, column by column, top to bottom.
func (m *Model) IDs() []string {
	var ids []string
	for _, col := range m.order {
		ids = append(ids, m.lanes[col]...)
	}

	return ids
}

func (m *Model) columnOf(id string) string {
	for _, col := range m.order {
		if slices.Contains(m.lanes[col], id) {
			return col
		}
	}

	return ""
}

func without(ids []string, id string) []string {
	var out []string

	for _, other := range ids {
		if other != id {
			out = append(out, other)
		}
	}

	return out
}

func insertBefore(ids []string, target, id string) []string {
	var out []string

	for _, other := range ids {
		if other == target {
			out = append(out, id)
		}

		out = append(out, other)
	}

	return out
}

func insertAfter(ids []string, target, id string) []string {
	var out []string

	for _, other := range ids {
		out = append(out, other)

		if other == target {
			out = append(out, id)
		}
	}

	return out
}
