package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/agent-board/internal/store"
	"github.com/calvinalkan/agent-board/internal/testutil/oracle"
	"github.com/calvinalkan/agent-board/pkg/board"
)

// Harness wires together the real store and the reference model.
type Harness struct {
	TB    testing.TB
	Store *store.Store
	Model *oracle.Model

	placeholders int
}

// NewHarness creates a harness whose store and model both start from start.
// New task ids are f0, f1, ... so failures are reproducible.
func NewHarness(tb testing.TB, start board.Board) *Harness {
	tb.Helper()

	s, err := store.New(start, store.WithIDSource(store.SequenceIDs("f")))
	if err != nil {
		tb.Fatalf("testutil.NewHarness: %v", err)
	}

	return &Harness{
		TB:    tb,
		Store: s,
		Model: ModelFromBoard(start),
	}
}

// ModelFromBoard copies a board into a reference model.
func ModelFromBoard(b board.Board) *oracle.Model {
	order := make([]string, 0, len(b.ColumnOrder()))
	lanes := make(map[string][]string)

	for _, col := range b.Columns() {
		order = append(order, string(col.ID))
		lanes[string(col.ID)] = col.TaskIDs
	}

	titles := make(map[string]string)
	for id, task := range b.Snapshot().Tasks {
		titles[id] = task.Title
	}

	return oracle.New(order, lanes, titles)
}

// CompareState checks the store's board against the invariants and the model.
func CompareState(h *Harness, history []string) error {
	b := h.Store.Board()

	err := board.Validate(b)
	if err != nil {
		return fmt.Errorf("invariant broken: %w\n%s", err, FormatOps(history))
	}

	got := ModelFromBoard(b)

	if diff := cmp.Diff(h.Model.Lanes(), got.Lanes()); diff != "" {
		return fmt.Errorf("lanes mismatch (-model +store):\n%s\n%s", diff, FormatOps(history))
	}

	if diff := cmp.Diff(h.Model.Titles(), got.Titles()); diff != "" {
		return fmt.Errorf("titles mismatch (-model +store):\n%s\n%s", diff, FormatOps(history))
	}

	return nil
}

// FormatOps renders an op history, one numbered line per op.
func FormatOps(history []string) string {
	var sb strings.Builder

	sb.WriteString("ops:\n")

	for i, op := range history {
		fmt.Fprintf(&sb, "%4d  %s\n", i+1, op)
	}

	return sb.String()
}

// placeholderID returns an id the model has never seen, used when the store
// rejected an insert before generating one.
func (h *Harness) placeholderID() string {
	h.placeholders++

	return fmt.Sprintf("rejected-%d", h.placeholders)
}
