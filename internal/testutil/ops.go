// Package testutil provides ops, a harness and runners for model-vs-store
// behavior tests.
package testutil

import (
	"fmt"
	"strconv"

	"github.com/calvinalkan/agent-board/pkg/board"
)

// Op is a behavior test operation executed against the real store and the
// reference model. Apply returns an error describing any disagreement.
//
// String renders the op as a kb session command so a failing history can be
// replayed by hand.
type Op interface {
	Apply(h *Harness) error
	String() string
}

// OpAdd inserts a task.
type OpAdd struct {
	Column string
	Title  string

	// CreatedID is set after the store accepts the insert.
	CreatedID string
}

// Apply runs the insert on the store first so the model can reuse the
// generated id.
func (op *OpAdd) Apply(h *Harness) error {
	id, realErr := h.Store.Add(board.ColumnID(op.Column), op.Title)
	if realErr != nil {
		modelErr := h.Model.Add(op.Column, op.Title, h.placeholderID())
		if modelErr == nil {
			return fmt.Errorf("%s: store rejected insert the model accepted: %w", op, realErr)
		}

		return nil
	}

	op.CreatedID = id

	modelErr := h.Model.Add(op.Column, op.Title, id)
	if modelErr != nil {
		return fmt.Errorf("%s: store accepted insert the model rejected: %w", op, modelErr)
	}

	return nil
}

func (op *OpAdd) String() string {
	return "add " + op.Column + " " + strconv.Quote(op.Title)
}

// OpMove drags a task onto a task or column.
type OpMove struct {
	Active string
	Over   string
}

// Apply checks that store and model agree on whether anything moved.
func (op *OpMove) Apply(h *Harness) error {
	outcome := h.Store.Move(op.Active, op.Over)
	changed := h.Model.Move(op.Active, op.Over)

	if outcome.Applied != changed {
		return fmt.Errorf("%s: store outcome %s, model changed=%v", op, outcome, changed)
	}

	return nil
}

func (op *OpMove) String() string {
	return "move " + op.Active + " " + op.Over
}
