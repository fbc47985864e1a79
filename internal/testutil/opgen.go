package testutil

import (
	"github.com/calvinalkan/agent-board/internal/testutil/oracle"
)

// OpGenConfig configures the operation generator.
type OpGenConfig struct {
	// AddRate is the percentage of ops that insert tasks (0-100). The rest
	// are moves.
	AddRate int

	// ColumnDropRate is the percentage of moves dropped on a column rather
	// than on a task.
	ColumnDropRate int

	// InvalidIDRate is the percentage of task references that use ids not
	// on the board.
	InvalidIDRate int

	// InvalidInputRate is the percentage of inserts with a blank title or
	// an unknown column.
	InvalidInputRate int
}

// DefaultOpGenConfig returns a balanced configuration.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		AddRate:          25,
		ColumnDropRate:   30,
		InvalidIDRate:    10,
		InvalidInputRate: 10,
	}
}

// Ids and columns that never exist on a generated board.
const (
	ghostTaskID   = "ghost"
	ghostColumnID = "backlog"
)

// OpGenerator generates deterministic operations from a byte stream.
type OpGenerator struct {
	stream *ByteStream
	config OpGenConfig
	model  *oracle.Model
}

// NewOpGenerator creates a new operation generator. The model is read to
// pick ids that exist at the time each op is generated.
func NewOpGenerator(fuzzBytes []byte, model *oracle.Model, cfg *OpGenConfig) *OpGenerator {
	return &OpGenerator{
		stream: NewByteStream(fuzzBytes),
		config: *cfg,
		model:  model,
	}
}

// HasMore reports whether more operations can be generated.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp generates the next operation.
func (g *OpGenerator) NextOp() Op {
	if g.stream.NextPercent() < g.config.AddRate {
		return g.genAdd()
	}

	return g.genMove()
}

func (g *OpGenerator) genAdd() Op {
	op := &OpAdd{
		Column: g.stream.Pick(g.model.Columns()),
		Title:  g.stream.NextTitle(12),
	}

	if g.stream.NextPercent() < g.config.InvalidInputRate {
		if g.stream.NextBool() {
			op.Title = "  "
		} else {
			op.Column = ghostColumnID
		}
	}

	return op
}

func (g *OpGenerator) genMove() Op {
	op := &OpMove{Active: g.taskRef()}

	if g.stream.NextPercent() < g.config.ColumnDropRate {
		op.Over = g.stream.Pick(g.model.Columns())
	} else {
		op.Over = g.taskRef()
	}

	return op
}

func (g *OpGenerator) taskRef() string {
	ids := g.model.IDs()
	if len(ids) == 0 || g.stream.NextPercent() < g.config.InvalidIDRate {
		return ghostTaskID
	}

	return g.stream.Pick(ids)
}
