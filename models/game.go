package models

const (
	DefaultSize            = 9
	DefaultMineProbability = 0.15
)

type Cell struct {
	IsMine      bool
	IsFlagged   bool
	IsRevealed  bool
	NearbyMines int
}

type Point struct {
	X int
	Y int
}

// Board is a square grid of cells stored row by row, so the cell at (x, y)
// lives at index x + y*Size.
type Board struct {
	Size  int
	Cells []Cell
}

func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

func (b *Board) Index(x, y int) int {
	return x + y*b.Size
}

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

func (b *Board) At(x, y int) *Cell {
	return &b.Cells[b.Index(x, y)]
}

// Neighbors returns the in-bounds Moore neighborhood of (x, y), excluding
// the cell itself.
func (b *Board) Neighbors(x, y int) []Point {
	out := make([]Point, 0, 8)
	for deltaY := -1; deltaY <= 1; deltaY++ {
		for deltaX := -1; deltaX <= 1; deltaX++ {
			if deltaX == 0 && deltaY == 0 {
				continue
			}
			nx, ny := x+deltaX, y+deltaY
			if b.InBounds(nx, ny) {
				out = append(out, Point{X: nx, Y: ny})
			}
		}
	}
	return out
}

func (b *Board) countNearbyMines(x, y int) int {
	nearbyMines := 0
	for _, p := range b.Neighbors(x, y) {
		if b.At(p.X, p.Y).IsMine {
			nearbyMines++
		}
	}
	return nearbyMines
}

func (b *Board) MineCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.IsMine {
			n++
		}
	}
	return n
}

func (b *Board) FlaggedCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.IsFlagged {
			n++
		}
	}
	return n
}

func (b *Board) RevealedCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.IsRevealed {
			n++
		}
	}
	return n
}

// FlagsMatchMines reports whether the flagged cells are exactly the mined
// cells. Matching counts alone is not enough: every flag must sit on a mine.
func (b *Board) FlagsMatchMines() bool {
	for _, c := range b.Cells {
		if c.IsFlagged != c.IsMine {
			return false
		}
	}
	return true
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Size: b.Size, Cells: cells}
}

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "win"
	case Lost:
		return "lose"
	default:
		return ""
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}
