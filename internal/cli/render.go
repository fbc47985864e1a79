package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/calvinalkan/agent-board/pkg/board"
)

// painter colors board output. Each color is its own instance so enabling
// color for one writer never touches the package-level color.NoColor.
type painter struct {
	header *color.Color
	count  *color.Color
	drag   *color.Color
	muted  *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		header: color.New(color.FgCyan, color.Bold),
		count:  color.New(color.FgHiBlack),
		drag:   color.New(color.FgYellow),
		muted:  color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{p.header, p.count, p.drag, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// renderBoard writes the board column by column in column order.
// dragging marks the task currently held by a drag, if any.
func renderBoard(w io.Writer, b board.Board, p painter, dragging string) {
	for i, column := range b.Columns() {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}

		_, _ = fmt.Fprintf(w, "%s %s\n",
			p.header.Sprint(column.Title),
			p.count.Sprintf("[%s] (%d)", column.ID, len(column.TaskIDs)),
		)

		if len(column.TaskIDs) == 0 {
			_, _ = fmt.Fprintln(w, p.muted.Sprint("  (empty)"))

			continue
		}

		for _, id := range column.TaskIDs {
			line := fmt.Sprintf("  %-14s %s", id, board.TaskTitle(b, id))
			if id == dragging {
				line = p.drag.Sprint(line + "  <- dragging")
			}

			_, _ = fmt.Fprintln(w, line)
		}
	}
}

// renderColumns writes one "id<TAB>title" line per column.
func renderColumns(w io.Writer, b board.Board) {
	for _, id := range b.ColumnOrder() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", id, id.Title())
	}
}
