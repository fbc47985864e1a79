package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-board/internal/config"
	"github.com/calvinalkan/agent-board/internal/store"
	"github.com/calvinalkan/agent-board/pkg/board"
)

const sessionLong = `Start a board session. Commands are read from the terminal with line
editing, history and tab completion, or one per line from stdin when stdin
is not a terminal. Lines starting with '#' are ignored.

In script mode the exit code is 1 when any command failed.

Session commands:
` + sessionHelp

// SessionCmd returns the session command.
func SessionCmd(cfg config.Config, deps appDeps) *Command {
	flags := flag.NewFlagSet("session", flag.ContinueOnError)
	echo := flags.Bool("echo", false, "Echo each scripted command after a prompt")
	noHistory := flags.Bool("no-history", false, "Do not read or write the history file")
	journalLimit := flags.Int("journal-limit", store.DefaultJournalLimit, "Transitions kept for 'log' (0 disables)")

	return &Command{
		Flags: flags,
		Usage: "session [flags]",
		Short: "Run a board session",
		Long:  sessionLong,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: session takes no arguments", ErrUsage)
			}

			b, err := config.LoadSeed(cfg.SeedAbs)
			if err != nil {
				return err
			}

			st, err := store.New(b, store.WithJournalLimit(*journalLimit))
			if err != nil {
				return err
			}

			s := newSession(st, deps.logger, io, newPainter(deps.color))

			if f, ok := deps.stdin.(*os.File); ok && f == os.Stdin && isTerminal(f) {
				hist := history{fs: deps.fs}
				if !*noHistory {
					hist.path = cfg.HistoryFileAbs
				}

				return s.runInteractive(ctx, hist)
			}

			return s.runScript(ctx, deps.stdin, *echo)
		},
	}
}

// session is the interaction adapter. It owns the UI-only state (the drag
// in progress and per-column drafts) and turns commands into store
// transitions.
type session struct {
	store  *store.Store
	log    *log.Logger
	io     *IO
	paint  painter
	active string
	drafts map[board.ColumnID]string
	done   bool
}

func newSession(st *store.Store, logger *log.Logger, o *IO, p painter) *session {
	return &session{
		store:  st,
		log:    logger,
		io:     o,
		paint:  p,
		drafts: map[board.ColumnID]string{},
	}
}

func (s *session) prompt() string {
	if s.active != "" {
		return fmt.Sprintf("kb (dragging %s)> ", s.active)
	}

	return "kb> "
}

// runScript reads commands from r until EOF, quit or cancellation.
func (s *session) runScript(ctx context.Context, r io.Reader, echo bool) error {
	if r == nil {
		r = strings.NewReader("")
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	var total, failed int

	for !s.done {
		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("session interrupted: %w", ctx.Err())
		case line, ok = <-lines:
		}

		if !ok {
			select {
			case err := <-scanErr:
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			default:
			}

			break
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if echo {
			s.io.Printf("%s%s\n", s.prompt(), line)
		}

		total++

		err := s.exec(line)
		if err != nil {
			failed++

			s.io.ErrPrintln("error:", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSessionFailed, failed, total)
	}

	return nil
}

// runInteractive reads commands from the terminal with liner.
func (s *session) runInteractive(ctx context.Context, hist history) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	loadErr := hist.load(line)
	if loadErr != nil {
		s.log.WithError(loadErr).Warn("history not loaded")
	}

	s.io.Println("kb session. Type 'help' for commands.")

	for !s.done && ctx.Err() == nil {
		input, err := line.Prompt(s.prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				s.io.Println()

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		execErr := s.exec(input)
		if execErr != nil {
			s.io.ErrPrintln("error:", execErr)
		}
	}

	saveErr := hist.save(line)
	if saveErr != nil {
		s.io.Warn("cannot save history: "+saveErr.Error(), "check history_file in the config or pass --no-history")
	}

	return nil
}
