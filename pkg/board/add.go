package board

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AddTask creates a task and puts it at the top of the given column.
//
// The title is trimmed before it is stored. On error the input board is
// returned unchanged.
func AddTask(b Board, column ColumnID, title, id string) (Board, error) {
	if _, ok := b.lanes[column]; !ok || !column.Valid() {
		return b, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}

	err := checkNewTask(b, id, title)
	if err != nil {
		return b, err
	}

	tasks := make(map[string]Task, len(b.tasks)+1)
	maps.Copy(tasks, b.tasks)
	tasks[id] = Task{ID: id, Title: strings.TrimSpace(title)}

	ids := b.lanes[column]
	prepended := make([]string, 0, len(ids)+1)
	prepended = append(prepended, id)
	prepended = append(prepended, ids...)

	next := b.withLanes(map[ColumnID][]string{column: prepended})
	next.tasks = tasks

	return next, nil
}

// TaskTitle returns the title of the task, or the id itself when the task
// is not on the board.
func TaskTitle(b Board, taskID string) string {
	if task, ok := b.tasks[taskID]; ok {
		return task.Title
	}

	return taskID
}

func checkNewTask(b Board, id, title string) error {
	if id == "" {
		return fmt.Errorf("%w: task id is empty", ErrInvalidArgument)
	}

	// A task named like a column would be indistinguishable from that
	// column as a drop target.
	if slices.Contains(columnIDs[:], ColumnID(id)) {
		return fmt.Errorf("%w: task id %q is a column id", ErrInvalidArgument, id)
	}

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidArgument)
	}

	if _, exists := b.tasks[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, id)
	}

	return nil
}
