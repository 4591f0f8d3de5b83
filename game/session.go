package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// Session owns one board and the outcome of the current round. It is not
// safe for concurrent use; give every player their own Session.
type Session struct {
	id      uuid.UUID
	size    int
	prob    float64
	rng     models.RandomSource
	log     logrus.FieldLogger
	board   *models.Board
	outcome models.Outcome
	round   int
	initial *models.Board
}

type Option func(*Session)

// WithRand sets the random source used for every board of the session.
func WithRand(rng models.RandomSource) Option {
	return func(s *Session) { s.rng = rng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// WithBoard starts the first round on a prepared board instead of a
// generated one. Later rounds are generated as usual.
func WithBoard(b *models.Board) Option {
	return func(s *Session) { s.initial = b }
}

func NewSession(size int, p float64, opts ...Option) (*Session, error) {
	if err := models.CheckParams(size, p); err != nil {
		return nil, err
	}
	s := &Session{
		id:   uuid.New(),
		size: size,
		prob: p,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.log = s.log.WithField("session", s.id.String())

	if s.initial != nil {
		if s.initial.Size != size {
			return nil, fmt.Errorf("prepared board is %dx%d, session wants %d: %w",
				s.initial.Size, s.initial.Size, size, models.ErrInvalidSize)
		}
		s.board = s.initial.Clone()
		s.round = 1
		s.initial = nil
		return s, nil
	}
	if err := s.newBoard(); err != nil {
		return nil, err
	}
	return s, nil
}

// newBoard replaces the board wholesale; nothing from the old one survives.
func (s *Session) newBoard() error {
	b, err := models.Generate(s.size, s.prob, s.rng)
	if err != nil {
		return err
	}
	s.board = b
	s.round++
	s.log.WithFields(logrus.Fields{
		"round": s.round,
		"mines": b.MineCount(),
	}).Debug("generated board")
	return nil
}

// RevealAt uncovers (x, y). Revealing a mine loses the round and a fresh
// board replaces the exploded one immediately.
func (s *Session) RevealAt(x, y int) error {
	if err := s.board.CheckCoordinate(x, y); err != nil {
		return err
	}
	fields := logrus.Fields{"round": s.round, "x": x, "y": y}
	if s.outcome.Terminal() {
		s.log.WithFields(fields).Debug("reveal ignored, round is over")
		return nil
	}
	cell := s.board.At(x, y)
	if cell.IsFlagged {
		s.log.WithFields(fields).Debug("reveal ignored on flagged cell")
		return nil
	}
	if cell.IsMine {
		exploded := s.board.Clone()
		exploded.At(x, y).IsRevealed = true
		s.board = exploded
		return s.finish(models.Lost, x, y)
	}

	next := s.board.Clone()
	if err := models.Reveal(next, x, y); err != nil {
		return err
	}
	s.board = next
	s.log.WithFields(fields).WithField("revealed", next.RevealedCount()).Debug("revealed cell")
	return nil
}

// ToggleFlagAt flips the flag on a hidden cell. The round is won as soon as
// the flagged cells are exactly the mined cells.
func (s *Session) ToggleFlagAt(x, y int) error {
	if err := s.board.CheckCoordinate(x, y); err != nil {
		return err
	}
	fields := logrus.Fields{"round": s.round, "x": x, "y": y}
	if s.outcome.Terminal() {
		s.log.WithFields(fields).Debug("flag ignored, round is over")
		return nil
	}
	if s.board.At(x, y).IsRevealed {
		s.log.WithFields(fields).Debug("flag ignored on revealed cell")
		return nil
	}

	next := s.board.Clone()
	cell := next.At(x, y)
	cell.IsFlagged = !cell.IsFlagged
	if next.FlagsMatchMines() {
		s.board = next
		return s.finish(models.Won, x, y)
	}
	s.board = next
	s.log.WithFields(fields).WithField("flagged", cell.IsFlagged).Debug("toggled flag")
	return nil
}

// finish records a terminal outcome and discards the board right away, so
// the final position is only kept in the debug log.
func (s *Session) finish(outcome models.Outcome, x, y int) error {
	log := s.log.WithFields(logrus.Fields{
		"round":   s.round,
		"x":       x,
		"y":       y,
		"outcome": outcome.String(),
	})
	if snap, err := s.snapshot(outcome).Serialize(); err == nil {
		log.WithField("board", snap).Debug("final board")
	}

	s.outcome = outcome
	if err := s.newBoard(); err != nil {
		return err
	}
	log.Info("round over")
	return nil
}

// Restart starts a new round on a freshly generated board.
func (s *Session) Restart() {
	s.outcome = models.Playing
	if err := s.newBoard(); err != nil {
		// size and probability were validated by NewSession
		panic(err)
	}
	s.log.WithField("round", s.round).Info("restarted")
}

func (s *Session) Outcome() models.Outcome {
	return s.outcome
}

// CellAt returns a copy of the cell at (x, y).
func (s *Session) CellAt(x, y int) (models.Cell, error) {
	if err := s.board.CheckCoordinate(x, y); err != nil {
		return models.Cell{}, err
	}
	return *s.board.At(x, y), nil
}

func (s *Session) FlaggedCount() int {
	return s.board.FlaggedCount()
}

func (s *Session) MineCount() int {
	return s.board.MineCount()
}

func (s *Session) Size() int {
	return s.size
}

func (s *Session) ID() string {
	return s.id.String()
}

// Round counts the boards the session has played, starting at 1.
func (s *Session) Round() int {
	return s.round
}

// Snapshot captures the current board and outcome.
func (s *Session) Snapshot() *models.Snapshot {
	return s.snapshot(s.outcome)
}

func (s *Session) snapshot(outcome models.Outcome) *models.Snapshot {
	return &models.Snapshot{
		Session: s.id.String(),
		Round:   s.round,
		Outcome: outcome.String(),
		Board:   s.board.Serialize(),
	}
}
