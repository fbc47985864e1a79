package testutil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/agent-board/internal/testutil"
	"github.com/calvinalkan/agent-board/pkg/board"
)

func Test_OpGenerator_Produces_Same_Ops_When_Seed_Repeats(t *testing.T) {
	t.Parallel()

	seed := []byte{3, 77, 140, 9, 200, 18, 55, 91, 250, 4, 33, 60, 120, 7, 99, 1, 42}

	generate := func() []string {
		model := testutil.ModelFromBoard(board.Initial())
		cfg := testutil.DefaultOpGenConfig()
		gen := testutil.NewOpGenerator(seed, model, &cfg)

		var ops []string
		for gen.HasMore() {
			ops = append(ops, gen.NextOp().String())
		}

		return ops
	}

	first := generate()
	if len(first) == 0 {
		t.Fatal("generator produced no ops")
	}

	if diff := cmp.Diff(first, generate()); diff != "" {
		t.Fatalf("ops differ between runs (-first +second):\n%s", diff)
	}
}

func Test_OpGenerator_Only_References_Known_Ids_When_Invalid_Rates_Zero(t *testing.T) {
	t.Parallel()

	model := testutil.ModelFromBoard(board.Initial())
	cfg := testutil.OpGenConfig{AddRate: 0, ColumnDropRate: 50}

	seed := make([]byte, 256)
	for i := range seed {
		seed[i] = byte(i * 31)
	}

	known := map[string]bool{"message": true, "scheduling": true, "visit": true}
	for _, id := range model.IDs() {
		known[id] = true
	}

	gen := testutil.NewOpGenerator(seed, model, &cfg)

	for gen.HasMore() {
		op, ok := gen.NextOp().(*testutil.OpMove)
		if !ok {
			t.Fatalf("expected only moves with AddRate=0")
		}

		if !known[op.Active] || !known[op.Over] {
			t.Fatalf("op references unknown id: %s", op)
		}
	}
}

func Test_SeedBuilder_Encodes_Ops_The_Generator_Replays_When_Decoded(t *testing.T) {
	t.Parallel()

	cfg := testutil.DefaultOpGenConfig()
	start := board.Initial()

	builder := testutil.NewSeedBuilder(&cfg, start).
		Move("t1", "t4").
		Add("visit", "ligar").
		Move("f0", "message").
		Move("ghost", "t2").
		AddBlank("scheduling").
		Move("t3", "f0")

	want := []string{
		"move t1 t4",
		`add visit "ligar"`,
		"move f0 message",
		"move ghost t2",
		`add scheduling "  "`,
		"move t3 f0",
	}

	assert.Equal(t, "f1", builder.NextID())

	h := testutil.NewHarness(t, start)
	gen := testutil.NewOpGenerator(builder.Bytes(), h.Model, &cfg)

	var got []string

	for gen.HasMore() {
		op := gen.NextOp()
		got = append(got, op.String())
		require.NoError(t, op.Apply(h))
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded ops differ (-want +got):\n%s", diff)
	}

	require.NoError(t, testutil.CompareState(h, got))
}

func Test_SeedBuilder_Panics_When_Op_Cannot_Be_Encoded(t *testing.T) {
	t.Parallel()

	cfg := testutil.OpGenConfig{AddRate: 0, ColumnDropRate: 0}

	assert.Panics(t, func() {
		testutil.NewSeedBuilder(&cfg, board.Initial()).Add("visit", "x")
	})
	assert.Panics(t, func() {
		testutil.NewSeedBuilder(&cfg, board.Initial()).Move("t1", "visit")
	})
	assert.Panics(t, func() {
		testutil.NewSeedBuilder(&cfg, board.Initial()).Move("t1", "nope")
	})
}
