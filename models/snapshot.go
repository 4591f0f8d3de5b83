package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Text board runes, one per cell.
const (
	runeHidden       = '.'
	runeHiddenMine   = '*'
	runeFlagged      = 'f'
	runeFlaggedMine  = 'F'
	runeRevealed     = 'o'
	runeRevealedMine = 'X'
)

// Serialize renders the board one row per line. Counts are not stored; they
// are recomputed by ParseBoard.
func (b *Board) Serialize() string {
	var sb strings.Builder
	for y := 0; y < b.Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Size; x++ {
			sb.WriteRune(cellRune(*b.At(x, y)))
		}
	}
	return sb.String()
}

func cellRune(c Cell) rune {
	switch {
	case c.IsRevealed && c.IsMine:
		return runeRevealedMine
	case c.IsRevealed:
		return runeRevealed
	case c.IsFlagged && c.IsMine:
		return runeFlaggedMine
	case c.IsFlagged:
		return runeFlagged
	case c.IsMine:
		return runeHiddenMine
	default:
		return runeHidden
	}
}

// ParseBoard reads a board written by Serialize. Blank lines around the
// board and surrounding spaces on each row are ignored.
func ParseBoard(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		rows = append(rows, strings.TrimSpace(line))
	}
	size := len(rows)
	if size == 0 || rows[0] == "" {
		return nil, fmt.Errorf("parse board: empty: %w", ErrMalformedBoard)
	}

	b := NewBoard(size)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d: %w", y, len(runes), size, ErrMalformedBoard)
		}
		for x, r := range runes {
			cell := b.At(x, y)
			switch r {
			case runeHidden:
			case runeHiddenMine:
				cell.IsMine = true
			case runeFlagged:
				cell.IsFlagged = true
			case runeFlaggedMine:
				cell.IsMine, cell.IsFlagged = true, true
			case runeRevealed:
				cell.IsRevealed = true
			case runeRevealedMine:
				cell.IsMine, cell.IsRevealed = true, true
			default:
				return nil, fmt.Errorf("parse board: unknown cell %q at (%d, %d): %w", r, x, y, ErrMalformedBoard)
			}
		}
	}
	b.CountMines()
	return b, nil
}

type Snapshot struct {
	Session string `yaml:"session"`
	Round   int    `yaml:"round"`
	Outcome string `yaml:"outcome,omitempty"`
	Board   string `yaml:"board"`
}

func (s *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Restore rebuilds the board held by the snapshot.
func (s *Snapshot) Restore() (*Board, error) {
	return ParseBoard(s.Board)
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
