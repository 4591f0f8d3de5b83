package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidSize        = errors.New("board size must be at least 1")
	ErrInvalidProbability = errors.New("mine probability must be within [0, 1]")
	ErrMalformedBoard     = errors.New("malformed board")
)

// CoordinateError describes a coordinate outside [0, Size).
type CoordinateError struct {
	X, Y int
	Size int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: (%d, %d) outside %dx%d board", ErrInvalidCoordinate, e.X, e.Y, e.Size, e.Size)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// CheckCoordinate returns a *CoordinateError when (x, y) is not on the board.
func (b *Board) CheckCoordinate(x, y int) error {
	if !b.InBounds(x, y) {
		return &CoordinateError{X: x, Y: y, Size: b.Size}
	}
	return nil
}
