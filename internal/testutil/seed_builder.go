package testutil

import (
	"fmt"
	"slices"

	"github.com/calvinalkan/agent-board/internal/testutil/oracle"
	"github.com/calvinalkan/agent-board/pkg/board"
)

// SeedBuilder encodes an intended op sequence into the bytes that make
// [OpGenerator] produce exactly that sequence. Use it to add readable seeds
// to a fuzz corpus.
//
// The builder tracks its own copy of the model so task picks encode the
// index the generator will see. New task ids follow the harness scheme
// (f0, f1, ...), counting only inserts the store accepts.
//
// Methods panic when the config makes an op impossible to encode, for
// example a column drop with ColumnDropRate 0.
type SeedBuilder struct {
	cfg   OpGenConfig
	model *oracle.Model
	bytes []byte
	added int
}

// NewSeedBuilder creates a builder for generators using cfg and starting
// from start.
func NewSeedBuilder(cfg *OpGenConfig, start board.Board) *SeedBuilder {
	return &SeedBuilder{cfg: *cfg, model: ModelFromBoard(start)}
}

// Bytes returns the encoded seed.
func (b *SeedBuilder) Bytes() []byte {
	return slices.Clone(b.bytes)
}

// NextID returns the id the next accepted insert will get.
func (b *SeedBuilder) NextID() string {
	return fmt.Sprintf("f%d", b.added)
}

// Move encodes a drag of active onto over. Either may be [ghostTaskID] to
// encode a reference to a missing task.
func (b *SeedBuilder) Move(active, over string) *SeedBuilder {
	b.choose(b.cfg.AddRate, 100, "move")
	b.taskRef(active)

	if slices.Contains(b.model.Columns(), over) {
		b.choose(0, b.cfg.ColumnDropRate, "column drop")
		b.pick(b.model.Columns(), over)
	} else {
		b.choose(b.cfg.ColumnDropRate, 100, "task drop")
		b.taskRef(over)
	}

	b.model.Move(active, over)

	return b
}

// Add encodes an insert of a lowercase title into column.
func (b *SeedBuilder) Add(column, title string) *SeedBuilder {
	b.choose(0, b.cfg.AddRate, "add")
	b.pick(b.model.Columns(), column)
	b.title(title)
	b.choose(b.cfg.InvalidInputRate, 100, "valid insert")

	if b.model.Add(column, title, b.NextID()) == nil {
		b.added++
	}

	return b
}

// AddBlank encodes an insert into column that the generator turns into a
// blank title.
func (b *SeedBuilder) AddBlank(column string) *SeedBuilder {
	b.choose(0, b.cfg.AddRate, "add")
	b.pick(b.model.Columns(), column)
	b.title("x")
	b.choose(0, b.cfg.InvalidInputRate, "invalid insert")
	b.bytes = append(b.bytes, 1)

	return b
}

// choose appends a percent byte in [lo, hi).
func (b *SeedBuilder) choose(lo, hi int, what string) {
	if lo >= hi {
		panic(fmt.Sprintf("testutil.SeedBuilder: cannot encode %s with config %+v", what, b.cfg))
	}

	b.bytes = append(b.bytes, byte(lo))
}

func (b *SeedBuilder) pick(options []string, want string) {
	idx := slices.Index(options, want)
	if idx < 0 {
		panic(fmt.Sprintf("testutil.SeedBuilder: %q not in %v", want, options))
	}

	b.bytes = append(b.bytes, byte(idx))
}

func (b *SeedBuilder) taskRef(id string) {
	ids := b.model.IDs()

	if id == ghostTaskID {
		if len(ids) > 0 {
			b.choose(0, b.cfg.InvalidIDRate, "missing task")
		}

		return
	}

	if len(ids) == 0 {
		panic(fmt.Sprintf("testutil.SeedBuilder: %q referenced on an empty board", id))
	}

	b.choose(b.cfg.InvalidIDRate, 100, "task ref")
	b.pick(ids, id)
}

func (b *SeedBuilder) title(s string) {
	if s == "" || len(s) > 12 {
		panic(fmt.Sprintf("testutil.SeedBuilder: title %q must be 1-12 letters", s))
	}

	b.bytes = append(b.bytes, byte(len(s)-1))

	for _, c := range []byte(s) {
		if c < 'a' || c > 'z' {
			panic(fmt.Sprintf("testutil.SeedBuilder: title %q must be lowercase letters", s))
		}

		b.bytes = append(b.bytes, c-'a')
	}
}
