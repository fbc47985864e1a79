package testutil

// Script bundles a human-readable name with a fixed op sequence.
//
// Curated scripts are hand-written to hit drag patterns that random ops take
// a while to find: neighbour swaps, drops on the own column, moves into empty
// columns and stale references after an insert.
type Script struct {
	Name string
	Ops  []Op
}

// CuratedScripts returns all curated scripts. Every script starts from
// board.Initial().
func CuratedScripts() []Script {
	return []Script{
		{Name: "neighbour_swaps", Ops: []Op{
			&OpMove{Active: "t1", Over: "t4"},
			&OpMove{Active: "t1", Over: "t4"},
			&OpMove{Active: "t4", Over: "t1"},
		}},
		{Name: "own_column_drops", Ops: []Op{
			&OpMove{Active: "t1", Over: "message"},
			&OpMove{Active: "t1", Over: "message"},
			&OpMove{Active: "t2", Over: "scheduling"},
		}},
		{Name: "drain_column", Ops: []Op{
			&OpMove{Active: "t2", Over: "visit"},
			&OpMove{Active: "t1", Over: "scheduling"},
			&OpMove{Active: "t4", Over: "t1"},
			&OpMove{Active: "t3", Over: "t2"},
			&OpMove{Active: "t2", Over: "t3"},
		}},
		{Name: "insert_then_drag", Ops: []Op{
			&OpAdd{Column: "visit", Title: "Confirmar visita"},
			&OpAdd{Column: "visit", Title: "Enviar proposta"},
			&OpMove{Active: "f1", Over: "t3"},
			&OpMove{Active: "f0", Over: "t1"},
			&OpMove{Active: "t3", Over: "f1"},
		}},
		{Name: "stale_references", Ops: []Op{
			&OpMove{Active: "ghost", Over: "t1"},
			&OpMove{Active: "t1", Over: "ghost"},
			&OpMove{Active: "t1", Over: "t1"},
			&OpMove{Active: "t1", Over: ""},
			&OpAdd{Column: "backlog", Title: "x"},
			&OpAdd{Column: "message", Title: " \t "},
		}},
	}
}
