// Package store holds the authoritative board of a kb session.
package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/calvinalkan/agent-board/pkg/board"
)

const (
	// DefaultJournalLimit is the number of journal entries kept when no
	// limit is configured.
	DefaultJournalLimit = 256

	maxIDAttempts = 8
)

// Op names the kind of a journaled transition.
type Op string

// Journaled operations.
const (
	OpMove Op = "move"
	OpAdd  Op = "add"
)

// Entry records one transition applied through the store.
//
// For moves Task is the dragged task and Target the drop target. For adds
// Task is the new id and Target the column.
type Entry struct {
	Seq     int
	Op      Op
	Task    string
	Target  string
	Outcome board.Outcome
}

// Store owns the current board and replaces it whole on every transition.
//
// A Store is driven by a single event loop and is not safe for concurrent
// use.
type Store struct {
	board        board.Board
	newID        IDSource
	journal      []Entry
	journalLimit int
	seq          int
}

// Option configures a [Store].
type Option func(*Store)

// WithIDSource replaces the default [NewTaskID] id supplier.
func WithIDSource(src IDSource) Option {
	return func(s *Store) {
		s.newID = src
	}
}

// WithJournalLimit caps the journal. Zero or less disables journaling.
func WithJournalLimit(n int) Option {
	return func(s *Store) {
		s.journalLimit = n
	}
}

// New returns a store starting from b. b must satisfy [board.Validate].
func New(b board.Board, opts ...Option) (*Store, error) {
	err := board.Validate(b)
	if err != nil {
		return nil, fmt.Errorf("new store: %w", err)
	}

	s := &Store{
		board:        b,
		newID:        NewTaskID,
		journalLimit: DefaultJournalLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.newID == nil {
		return nil, errors.New("new store: id source is nil")
	}

	return s, nil
}

// Board returns the current board.
func (s *Store) Board() board.Board {
	return s.board
}

// Move drags activeID onto overID and installs the resulting board.
func (s *Store) Move(activeID, overID string) board.Outcome {
	next, outcome := board.Move(s.board, activeID, overID)
	s.board = next
	s.record(Entry{Op: OpMove, Task: activeID, Target: overID, Outcome: outcome})

	return outcome
}

// Add inserts a task at the top of column and returns its id.
//
// The title is trimmed first; a blank title returns [ErrEmptyTitle] without
// touching the board. Ids already on the board are skipped.
func (s *Store) Add(column board.ColumnID, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}

	if !column.Valid() {
		return "", fmt.Errorf("add task: %w: %q", board.ErrInvalidColumn, column)
	}

	id, err := s.uniqueID()
	if err != nil {
		return "", fmt.Errorf("add task: %w", err)
	}

	next, err := board.AddTask(s.board, column, title, id)
	if err != nil {
		return "", fmt.Errorf("add task: %w", err)
	}

	s.board = next
	s.record(Entry{Op: OpAdd, Task: id, Target: string(column), Outcome: board.Outcome{Applied: true}})

	return id, nil
}

// Journal returns the recorded transitions, oldest first.
func (s *Store) Journal() []Entry {
	return slices.Clone(s.journal)
}

func (s *Store) uniqueID() (string, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return "", err
		}

		if _, taken := s.board.Task(id); taken {
			continue
		}

		if board.ColumnID(id).Valid() {
			continue
		}

		return id, nil
	}

	return "", ErrIDGenerationFailed
}

func (s *Store) record(e Entry) {
	s.seq++

	if s.journalLimit <= 0 {
		return
	}

	e.Seq = s.seq
	s.journal = append(s.journal, e)

	if over := len(s.journal) - s.journalLimit; over > 0 {
		s.journal = slices.Delete(s.journal, 0, over)
	}
}
