package store_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/agent-board/internal/store"
	"github.com/calvinalkan/agent-board/pkg/board"
)

func newStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	opts = append([]store.Option{store.WithIDSource(store.SequenceIDs("n"))}, opts...)

	s, err := store.New(board.Initial(), opts...)
	require.NoError(t, err, "New should accept the initial board")

	return s
}

func Test_New_Returns_Error_When_Board_Invalid(t *testing.T) {
	t.Parallel()

	_, err := store.New(board.Board{})
	require.ErrorIs(t, err, board.ErrInvariant)

	_, err = store.New(board.Initial(), store.WithIDSource(nil))
	require.Error(t, err)
}

func Test_Store_Move_Replaces_Board_When_Applied(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	before := s.Board()

	outcome := s.Move("t3", "t1")
	require.True(t, outcome.Applied, "outcome=%s", outcome)

	col, _ := s.Board().Column(board.ColumnMessage)
	assert.Equal(t, []string{"t3", "t1", "t4"}, col.TaskIDs)

	col, _ = before.Column(board.ColumnMessage)
	assert.Equal(t, []string{"t1", "t4"}, col.TaskIDs, "earlier snapshot must not change")
}

func Test_Store_Move_Keeps_Board_When_NoOp(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	before := s.Board()

	outcome := s.Move("ghost", "t1")

	assert.Equal(t, board.NoOp(board.ReasonActiveNotFound), outcome)
	assert.True(t, s.Board().Equal(before))
}

func Test_Store_Add_Prepends_Task_With_Generated_ID(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	id, err := s.Add(board.ColumnScheduling, "  Ligar amanhã ")
	require.NoError(t, err)
	assert.Equal(t, "n0", id)

	col, _ := s.Board().Column(board.ColumnScheduling)
	assert.Equal(t, []string{"n0", "t2"}, col.TaskIDs)
	assert.Equal(t, "Ligar amanhã", board.TaskTitle(s.Board(), "n0"))
}

func Test_Store_Add_Returns_Error_When_Title_Blank(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	before := s.Board()

	_, err := s.Add(board.ColumnMessage, "   ")
	require.ErrorIs(t, err, store.ErrEmptyTitle)
	assert.True(t, s.Board().Equal(before))
	assert.Empty(t, s.Journal())
}

func Test_Store_Add_Returns_Error_When_Column_Invalid(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	_, err := s.Add("backlog", "x")
	require.ErrorIs(t, err, board.ErrInvalidColumn)
}

func Test_Store_Add_Skips_Taken_IDs_When_Source_Collides(t *testing.T) {
	t.Parallel()

	ids := []string{"t1", "visit", "fresh"}
	src := func() (string, error) {
		id := ids[0]
		ids = ids[1:]

		return id, nil
	}

	s := newStore(t, store.WithIDSource(src))

	id, err := s.Add(board.ColumnVisit, "x")
	require.NoError(t, err)
	assert.Equal(t, "fresh", id)
}

func Test_Store_Add_Returns_Error_When_Source_Keeps_Colliding(t *testing.T) {
	t.Parallel()

	s := newStore(t, store.WithIDSource(func() (string, error) { return "t1", nil }))

	_, err := s.Add(board.ColumnVisit, "x")
	require.ErrorIs(t, err, store.ErrIDGenerationFailed)
}

func Test_Store_Add_Returns_Error_When_Source_Fails(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	s := newStore(t, store.WithIDSource(func() (string, error) { return "", errBoom }))

	_, err := s.Add(board.ColumnVisit, "x")
	require.ErrorIs(t, err, errBoom)
}

func Test_Store_Journal_Records_Transitions_In_Order(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	s.Move("t1", "visit")
	_, err := s.Add(board.ColumnMessage, "Nova")
	require.NoError(t, err)
	s.Move("t1", "nowhere")

	want := []store.Entry{
		{Seq: 1, Op: store.OpMove, Task: "t1", Target: "visit", Outcome: board.Outcome{Applied: true}},
		{Seq: 2, Op: store.OpAdd, Task: "n0", Target: "message", Outcome: board.Outcome{Applied: true}},
		{Seq: 3, Op: store.OpMove, Task: "t1", Target: "nowhere", Outcome: board.NoOp(board.ReasonTargetNotFound)},
	}

	if diff := cmp.Diff(want, s.Journal()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
}

func Test_Store_Journal_Drops_Oldest_When_Limit_Reached(t *testing.T) {
	t.Parallel()

	s := newStore(t, store.WithJournalLimit(2))

	s.Move("t1", "t4")
	s.Move("t4", "t1")
	s.Move("t2", "visit")

	journal := s.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, 2, journal[0].Seq)
	assert.Equal(t, 3, journal[1].Seq)
}

func Test_Store_Journal_Is_Empty_When_Disabled(t *testing.T) {
	t.Parallel()

	s := newStore(t, store.WithJournalLimit(0))

	s.Move("t1", "t4")

	assert.Empty(t, s.Journal())
}
