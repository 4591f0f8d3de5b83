package models

import (
	"github.com/gammazero/deque"
)

// Reveal uncovers the cell at (x, y). When that cell is safe and has no
// nearby mines, its whole connected zero region is uncovered together with
// the numbered cells bordering it. Numbered cells never propagate further.
//
// The flag state of (x, y) is not checked; callers must refuse to reveal a
// flagged cell. Cells uncovered by the fill lose their flag.
func Reveal(b *Board, x, y int) error {
	if err := b.CheckCoordinate(x, y); err != nil {
		return err
	}

	start := b.At(x, y)
	start.IsRevealed = true
	start.IsFlagged = false
	if start.IsMine || start.NearbyMines != 0 {
		return nil
	}

	var queue deque.Deque[Point]
	queue.PushBack(Point{X: x, Y: y})
	for queue.Len() > 0 {
		p := queue.PopFront()
		for _, n := range b.Neighbors(p.X, p.Y) {
			cell := b.At(n.X, n.Y)
			if cell.IsRevealed {
				continue
			}
			// marked before queueing, so every cell enters the queue at most once
			cell.IsRevealed = true
			cell.IsFlagged = false
			if !cell.IsMine && cell.NearbyMines == 0 {
				queue.PushBack(n)
			}
		}
	}
	return nil
}
