package cli

import (
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/agent-board/internal/config"
	"github.com/calvinalkan/agent-board/pkg/board"
)

const sessionHelp = `  show                       Render the board
  add <column> <title...>    Add a task to the top of a column
  draft <column> [text...]   Set the unsubmitted title for a column
  submit <column>            Add the column's draft as a task, then clear it
  drag <task>                Start dragging a task
  drop <task|column>         Drop the dragged task over a task or a column
  cancel                     Stop dragging without moving anything
  move <task> <task|column>  Drag and drop in one step
  where <task>               Print the column holding a task
  title <task>               Print a task's title (the id if unknown)
  check                      Verify the board invariants
  log                        Print the transition journal
  dump                       Print the board as a YAML seed file
  help                       Show this help
  quit, exit, q              End the session`

// sessionCommands is the completion list, in help order.
var sessionCommands = []string{
	"show", "add", "draft", "submit", "drag", "drop", "cancel", "move",
	"where", "title", "check", "log", "dump", "help", "quit", "exit", "q",
}

// exec runs one session command line.
func (s *session) exec(line string) error {
	name, rest := nextField(line)
	name = strings.ToLower(name)

	switch name {
	case "show":
		renderBoard(s.io.Out(), s.store.Board(), s.paint, s.active)

	case "add":
		column, title := nextField(rest)
		if column == "" {
			return usageErr("add <column> <title...>")
		}

		return s.add(column, title)

	case "draft":
		column, text := nextField(rest)
		if column == "" {
			return usageErr("draft <column> [text...]")
		}

		return s.draft(column, text)

	case "submit":
		args := strings.Fields(rest)
		if len(args) != 1 {
			return usageErr("submit <column>")
		}

		return s.submit(args[0])

	case "drag":
		args := strings.Fields(rest)
		if len(args) != 1 {
			return usageErr("drag <task>")
		}

		s.dragStart(args[0])

	case "drop":
		args := strings.Fields(rest)
		if len(args) != 1 {
			return usageErr("drop <task|column>")
		}

		return s.dragEnd(args[0])

	case "cancel":
		s.dragCancel()

	case "move":
		args := strings.Fields(rest)
		if len(args) != 2 {
			return usageErr("move <task> <task|column>")
		}

		s.dragStart(args[0])

		return s.dragEnd(args[1])

	case "where":
		args := strings.Fields(rest)
		if len(args) != 1 {
			return usageErr("where <task>")
		}

		column, ok := board.LocateColumn(s.store.Board(), args[0])
		if !ok {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, args[0])
		}

		s.io.Println(column)

	case "title":
		args := strings.Fields(rest)
		if len(args) != 1 {
			return usageErr("title <task>")
		}

		s.io.Println(board.TaskTitle(s.store.Board(), args[0]))

	case "check":
		err := board.Validate(s.store.Board())
		if err != nil {
			return err
		}

		s.io.Println("ok")

	case "log":
		s.printJournal()

	case "dump":
		data, err := yaml.Marshal(config.SeedFromBoard(s.store.Board()))
		if err != nil {
			return fmt.Errorf("encoding board: %w", err)
		}

		s.io.Printf("%s", data)

	case "help", "?":
		s.io.Println("Commands:")
		s.io.Println(sessionHelp)

	case "quit", "exit", "q":
		s.done = true

	default:
		return fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCommand, name)
	}

	return nil
}

func (s *session) add(column, title string) error {
	id, err := board.ParseColumnID(column)
	if err != nil {
		return err
	}

	taskID, err := s.store.Add(id, title)
	if err != nil {
		return err
	}

	s.log.WithFields(log.Fields{
		"op":      "add",
		"task":    taskID,
		"target":  string(id),
		"outcome": "applied",
	}).Debug("transition")

	s.io.Printf("added %s to %s\n", taskID, id)

	return nil
}

func (s *session) draft(column, text string) error {
	id, err := board.ParseColumnID(column)
	if err != nil {
		return err
	}

	if text == "" {
		delete(s.drafts, id)

		return nil
	}

	s.drafts[id] = text

	return nil
}

// submit mirrors the add form: a blank draft is ignored, anything else is
// added and the draft cleared.
func (s *session) submit(column string) error {
	id, err := board.ParseColumnID(column)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(s.drafts[id])
	if title == "" {
		s.io.Printf("nothing to submit for %s\n", id)

		return nil
	}

	err = s.add(column, title)
	if err != nil {
		return err
	}

	delete(s.drafts, id)

	return nil
}

func (s *session) dragStart(taskID string) {
	s.active = taskID
	s.log.WithField("task", taskID).Debug("drag start")
	s.io.Printf("dragging %s: %s\n", taskID, board.TaskTitle(s.store.Board(), taskID))
}

func (s *session) dragEnd(overID string) error {
	activeID := s.active
	if activeID == "" {
		return ErrNoDrag
	}

	s.active = ""

	if activeID == overID {
		s.log.WithFields(log.Fields{"task": activeID, "target": overID}).Debug("drop on self ignored")
		s.io.Println(board.NoOp(board.ReasonSameTask))

		return nil
	}

	outcome := s.store.Move(activeID, overID)

	s.log.WithFields(log.Fields{
		"op":      "move",
		"task":    activeID,
		"target":  overID,
		"outcome": outcomeLabel(outcome),
		"reason":  outcome.Reason.String(),
	}).Debug("transition")

	if !outcome.Applied {
		s.io.Println(outcome)

		return nil
	}

	column, _ := board.LocateColumn(s.store.Board(), activeID)
	s.io.Printf("moved %s over %s (now in %s)\n", activeID, overID, column)

	return nil
}

func (s *session) dragCancel() {
	if s.active == "" {
		s.io.Println("nothing to cancel")

		return
	}

	s.log.WithField("task", s.active).Debug("drag cancelled")
	s.io.Printf("cancelled drag of %s\n", s.active)
	s.active = ""
}

func (s *session) printJournal() {
	entries := s.store.Journal()
	if len(entries) == 0 {
		s.io.Println("(no transitions)")

		return
	}

	for _, e := range entries {
		s.io.Printf("#%d %s %s -> %s: %s\n", e.Seq, e.Op, e.Task, e.Target, e.Outcome)
	}
}

// complete returns full-line candidates for liner. The first word completes
// to a command, later words to column and task ids.
func (s *session) complete(line string) []string {
	head, word := "", line
	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		head, word = line[:i+1], line[i+1:]
	}

	var pool []string

	if strings.TrimSpace(head) == "" {
		pool = sessionCommands
	} else {
		b := s.store.Board()
		for _, column := range b.Columns() {
			pool = append(pool, string(column.ID))
			pool = append(pool, column.TaskIDs...)
		}
	}

	var out []string

	for _, candidate := range pool {
		if strings.HasPrefix(candidate, word) && !slices.Contains(out, head+candidate) {
			out = append(out, head+candidate)
		}
	}

	return out
}

func outcomeLabel(o board.Outcome) string {
	if o.Applied {
		return "applied"
	}

	return "noop"
}

func usageErr(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

// nextField splits off the first whitespace-separated field. rest keeps its
// inner spacing but loses the separating whitespace.
func nextField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")

	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], strings.TrimLeft(s[i:], " \t")
}
