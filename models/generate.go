package models

import (
	"fmt"
	"math"
)

// RandomSource yields uniform floats in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Generate builds a size x size board where each cell is mined independently
// with probability p. The number of mines is not fixed: a board may hold no
// mines at all.
func Generate(size int, p float64, rng RandomSource) (*Board, error) {
	if err := CheckParams(size, p); err != nil {
		return nil, err
	}

	b := NewBoard(size)
	b.PlaceMinesRandomly(p, rng)
	b.CountMines()
	return b, nil
}

// CheckParams validates a board size and mine probability.
func CheckParams(size int, p float64) error {
	if size < 1 {
		return fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
	}
	return nil
}

// PlaceMinesRandomly samples every cell once, in index order.
func (b *Board) PlaceMinesRandomly(p float64, rng RandomSource) {
	for i := range b.Cells {
		b.Cells[i].IsMine = rng.Float64() < p
	}
}

// CountMines fills NearbyMines for every non-mine cell. Mined cells keep zero.
func (b *Board) CountMines() {
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			cell := b.At(x, y)
			if cell.IsMine {
				cell.NearbyMines = 0
				continue
			}
			cell.NearbyMines = b.countNearbyMines(x, y)
		}
	}
}
