package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// numberColors is indexed by nearby mine count minus one.
var numberColors = [8]tcell.Color{
	tcell.GetColor("#0000ff"),
	tcell.GetColor("#00ff00"),
	tcell.GetColor("#ff0000"),
	tcell.GetColor("#2500ac"),
	tcell.GetColor("#961e00"),
	tcell.GetColor("#009480"),
	tcell.GetColor("#000000"),
	tcell.GetColor("#ffc21b"),
}

var (
	hiddenBackground   = tcell.GetColor("#212121")
	revealedBackground = tcell.GetColor("#777777")
	hiddenForeground   = tcell.GetColor("#fafafa")
)

type Renderer struct {
	boardTable *tview.Table
	header     *tview.TextView
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
		header:     tview.NewTextView().SetTextAlign(tview.AlignCenter),
	}
}

func (r *Renderer) DrawBoard(session *Session) {
	size := session.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r.RenderCell(session, x, y)
		}
	}
	r.header.SetText(fmt.Sprintf("Flagged: %d / %d", session.FlaggedCount(), session.MineCount()))

	r.boardTable.SetSelectable(true, true)
}

// RenderCell draws (x, y) at table row y, column x.
func (r *Renderer) RenderCell(session *Session, x, y int) {
	cell, err := session.CellAt(x, y)
	if err != nil {
		return
	}

	text := "."
	fg, bg := hiddenForeground, hiddenBackground
	switch {
	case cell.IsFlagged:
		text = "F"
	case cell.IsRevealed && cell.IsMine:
		text = "*"
		bg = revealedBackground
	case cell.IsRevealed:
		text = " "
		bg = revealedBackground
		if cell.NearbyMines > 0 {
			text = fmt.Sprintf("%d", cell.NearbyMines)
			fg = numberColors[cell.NearbyMines-1]
		}
	}

	r.boardTable.SetCell(y, x, tview.NewTableCell(" "+text+" ").
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetBackgroundColor(bg))
}
