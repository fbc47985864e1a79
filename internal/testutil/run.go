package testutil

import (
	"testing"

	"github.com/calvinalkan/agent-board/pkg/board"
)

// RunConfig configures a behavior test run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareStateEveryN runs full state comparison every N operations.
	// Set to 0 to disable periodic checks (only check at end).
	CompareStateEveryN int

	// Start is the board both sides begin from. The zero value means
	// board.Initial().
	Start board.Board
}

// DefaultRunConfig returns a balanced configuration for behavior tests.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxOps:             100,
		CompareStateEveryN: 1,
	}
}

// RunBehaviorWithSeed derives ops from seed and checks that store and model
// agree after each of them.
func RunBehaviorWithSeed(tb testing.TB, seed []byte, cfg RunConfig) {
	tb.Helper()

	h := newRunHarness(tb, cfg)
	genCfg := DefaultOpGenConfig()
	gen := NewOpGenerator(seed, h.Model, &genCfg)

	runOps(tb, h, cfg, func() (Op, bool) {
		if !gen.HasMore() {
			return nil, false
		}

		return gen.NextOp(), true
	})
}

// RunBehaviorWithOps runs a fixed op list the same way.
func RunBehaviorWithOps(tb testing.TB, ops []Op, cfg RunConfig) {
	tb.Helper()

	h := newRunHarness(tb, cfg)
	next := 0

	runOps(tb, h, cfg, func() (Op, bool) {
		if next >= len(ops) {
			return nil, false
		}

		next++

		return ops[next-1], true
	})
}

func newRunHarness(tb testing.TB, cfg RunConfig) *Harness {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("testutil: RunConfig.MaxOps must be > 0")
	}

	start := cfg.Start
	if len(start.ColumnOrder()) == 0 {
		start = board.Initial()
	}

	return NewHarness(tb, start)
}

func runOps(tb testing.TB, h *Harness, cfg RunConfig, next func() (Op, bool)) {
	tb.Helper()

	history := make([]string, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps; opIndex++ {
		op, ok := next()
		if !ok {
			break
		}

		history = append(history, op.String())

		err := op.Apply(h)
		if err != nil {
			tb.Fatalf("%v\n%s", err, FormatOps(history))
		}

		if cfg.CompareStateEveryN > 0 && opIndex%cfg.CompareStateEveryN == 0 {
			err := CompareState(h, history)
			if err != nil {
				tb.Fatal(err)
			}
		}
	}

	err := CompareState(h, history)
	if err != nil {
		tb.Fatal(err)
	}
}
