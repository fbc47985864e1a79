package board

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Initial returns the board every session starts from unless a seed
// replaces it.
func Initial() Board {
	return Board{
		tasks: map[string]Task{
			"t1": {ID: "t1", Title: "Criar layout"},
			"t2": {ID: "t2", Title: "Integrar API"},
			"t3": {ID: "t3", Title: "Escrever testes"},
			"t4": {ID: "t4", Title: "Refinar UI"},
		},
		lanes: map[ColumnID][]string{
			ColumnMessage:    {"t1", "t4"},
			ColumnScheduling: {"t2"},
			ColumnVisit:      {"t3"},
		},
		order: columnIDs[:],
	}
}

// Empty returns a board with every column and no tasks.
func Empty() Board {
	lanes := make(map[ColumnID][]string, len(columnIDs))
	for _, id := range columnIDs {
		lanes[id] = nil
	}

	return Board{tasks: map[string]Task{}, lanes: lanes, order: columnIDs[:]}
}

// New builds a board from a task list and the placement of task ids per
// column. Columns missing from placement start empty. The result is checked
// with [Validate], so every task must be placed exactly once.
func New(tasks []Task, placement map[ColumnID][]string) (Board, error) {
	for _, id := range slices.Sorted(maps.Keys(placement)) {
		if !id.Valid() {
			return Board{}, fmt.Errorf("%w: %q", ErrInvalidColumn, id)
		}
	}

	b := Empty()

	for _, task := range tasks {
		err := checkNewTask(b, task.ID, task.Title)
		if err != nil {
			return Board{}, err
		}

		b.tasks[task.ID] = Task{ID: task.ID, Title: strings.TrimSpace(task.Title)}
	}

	for id, ids := range placement {
		b.lanes[id] = slices.Clone(ids)
	}

	err := Validate(b)
	if err != nil {
		return Board{}, err
	}

	return b, nil
}

// Validate checks the board invariants. The returned error wraps
// [ErrInvariant].
func Validate(b Board) error {
	if len(b.order) != len(columnIDs) || len(b.lanes) != len(columnIDs) {
		return fmt.Errorf("%w: board must have exactly %d columns", ErrInvariant, len(columnIDs))
	}

	for i, id := range b.order {
		if !id.Valid() {
			return fmt.Errorf("%w: unknown column %q in column order", ErrInvariant, id)
		}

		if slices.Contains(b.order[:i], id) {
			return fmt.Errorf("%w: column %q listed twice in column order", ErrInvariant, id)
		}

		if _, ok := b.lanes[id]; !ok {
			return fmt.Errorf("%w: column %q has no lane", ErrInvariant, id)
		}
	}

	placed := make(map[string]ColumnID, len(b.tasks))

	for _, col := range b.order {
		for _, taskID := range b.lanes[col] {
			if prev, seen := placed[taskID]; seen {
				if prev == col {
					return fmt.Errorf("%w: task %q listed twice in column %q", ErrInvariant, taskID, col)
				}

				return fmt.Errorf("%w: task %q in both %q and %q", ErrInvariant, taskID, prev, col)
			}

			if _, ok := b.tasks[taskID]; !ok {
				return fmt.Errorf("%w: column %q references unknown task %q", ErrInvariant, col, taskID)
			}

			placed[taskID] = col
		}
	}

	for _, taskID := range slices.Sorted(maps.Keys(b.tasks)) {
		if b.tasks[taskID].ID != taskID {
			return fmt.Errorf("%w: task keyed %q has id %q", ErrInvariant, taskID, b.tasks[taskID].ID)
		}

		if _, ok := placed[taskID]; !ok {
			return fmt.Errorf("%w: task %q is not in any column", ErrInvariant, taskID)
		}
	}

	return nil
}
