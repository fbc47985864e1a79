package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-board/internal/config"
)

// ShowCmd returns the show command.
func ShowCmd(cfg config.Config, colorOut bool) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show",
		Short: "Render the starting board",
		Long:  "Render the starting board (the seed file if configured, otherwise the built-in board) column by column.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			b, err := config.LoadSeed(cfg.SeedAbs)
			if err != nil {
				return err
			}

			renderBoard(io.Out(), b, newPainter(colorOut), "")

			return nil
		},
	}
}
