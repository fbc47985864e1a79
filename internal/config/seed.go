package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/agent-board/pkg/board"
)

// SeedFile is the on-disk shape of a seed board.
//
//	columns:
//	  message:
//	    - id: t1
//	      title: Criar layout
//	  visit: []
//
// Columns that are left out start empty. Task order inside a column is the
// display order, top to bottom.
type SeedFile struct {
	Columns map[string][]board.Task `json:"columns" yaml:"columns"`
}

// LoadSeed reads a seed file and builds a validated board from it.
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as
// JSONC. An empty path returns [board.Initial].
func LoadSeed(path string) (board.Board, error) {
	if path == "" {
		return board.Initial(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %s: %w", ErrSeedRead, path, err)
	}

	seed, err := ParseSeed(data, isYAML(path))
	if err != nil {
		return board.Board{}, fmt.Errorf("%w %s: %w", ErrSeedInvalid, path, err)
	}

	b, err := seed.Board()
	if err != nil {
		return board.Board{}, fmt.Errorf("%w %s: %w", ErrSeedInvalid, path, err)
	}

	return b, nil
}

// ParseSeed decodes seed data as YAML or JSONC.
func ParseSeed(data []byte, yamlFormat bool) (SeedFile, error) {
	var seed SeedFile

	if yamlFormat {
		err := yaml.Unmarshal(data, &seed)
		if err != nil {
			return SeedFile{}, fmt.Errorf("invalid YAML: %w", err)
		}

		return seed, nil
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return SeedFile{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	err = json.Unmarshal(standardized, &seed)
	if err != nil {
		return SeedFile{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return seed, nil
}

// Board converts the seed into a board, checking column ids and the board
// invariants.
func (s SeedFile) Board() (board.Board, error) {
	var tasks []board.Task

	placement := make(map[board.ColumnID][]string, len(s.Columns))

	for _, name := range slices.Sorted(maps.Keys(s.Columns)) {
		column, err := board.ParseColumnID(name)
		if err != nil {
			return board.Board{}, err
		}

		ids := make([]string, 0, len(s.Columns[name]))
		for _, task := range s.Columns[name] {
			tasks = append(tasks, task)
			ids = append(ids, task.ID)
		}

		placement[column] = ids
	}

	return board.New(tasks, placement)
}

// SeedFromBoard converts a board back into its seed representation.
func SeedFromBoard(b board.Board) SeedFile {
	seed := SeedFile{Columns: make(map[string][]board.Task, len(b.ColumnOrder()))}

	for _, column := range b.Columns() {
		tasks := make([]board.Task, 0, len(column.TaskIDs))
		for _, id := range column.TaskIDs {
			task, _ := b.Task(id)
			tasks = append(tasks, task)
		}

		seed.Columns[string(column.ID)] = tasks
	}

	return seed
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
