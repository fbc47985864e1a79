package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-board/pkg/board"
)

// ColumnsCmd returns the columns command.
func ColumnsCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("columns", flag.ContinueOnError),
		Usage: "columns",
		Short: "List column ids and titles",
		Long:  "List the fixed column set in display order, one \"id<TAB>title\" per line.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			renderColumns(io.Out(), board.Empty())

			return nil
		},
	}
}
