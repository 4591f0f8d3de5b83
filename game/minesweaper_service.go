package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const (
	boardPage   = "board"
	outcomePage = "outcome"
)

// MinesweeperService puts a Session on screen. It only calls the session's
// public actions and redraws from its accessors after each one.
type MinesweeperService struct {
	session  *Session
	renderer *Renderer
	app      *tview.Application
	pages    *tview.Pages
	modal    *tview.Modal
	log      logrus.FieldLogger
}

func NewMinesweeperService(session *Session, log logrus.FieldLogger) *MinesweeperService {
	s := &MinesweeperService{
		session:  session,
		renderer: NewRenderer(),
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		log:      log,
	}

	s.modal = tview.NewModal().
		AddButtons([]string{"Restart"}).
		SetDoneFunc(func(int, string) { s.restart() })

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.renderer.header, 1, 0, false).
		AddItem(s.renderer.boardTable, 0, 1, true)

	s.pages.AddPage(boardPage, layout, true, true)
	s.pages.AddPage(outcomePage, s.modal, false, false)
	s.renderer.boardTable.SetInputCapture(s.handleInput)
	s.app.SetRoot(s.pages, true)
	s.renderer.DrawBoard(session)
	return s
}

func (s *MinesweeperService) Run() error {
	return s.app.Run()
}

func (s *MinesweeperService) Stop() {
	s.app.Stop()
}

// handleInput maps Enter to reveal and 'f' to flag on the selected cell.
// Table rows are y and columns are x.
func (s *MinesweeperService) handleInput(event *tcell.EventKey) *tcell.EventKey {
	row, col := s.renderer.boardTable.GetSelection()

	var err error
	switch event.Key() {
	case tcell.KeyEnter:
		err = s.session.RevealAt(col, row)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			err = s.session.ToggleFlagAt(col, row)
		case 'q', 'Q':
			s.Stop()
			return nil
		default:
			return event
		}
	default:
		return event
	}

	if err != nil {
		s.log.WithError(err).Error("action rejected")
	}
	s.refresh()
	return nil
}

func (s *MinesweeperService) refresh() {
	s.renderer.DrawBoard(s.session)

	outcome := s.session.Outcome()
	if !outcome.Terminal() {
		return
	}
	s.modal.SetText(fmt.Sprintf("You %s !", outcome))
	s.pages.ShowPage(outcomePage)
	s.app.SetFocus(s.modal)
}

func (s *MinesweeperService) restart() {
	s.session.Restart()
	s.pages.HidePage(outcomePage)
	s.app.SetFocus(s.renderer.boardTable)
	s.renderer.DrawBoard(s.session)
}
