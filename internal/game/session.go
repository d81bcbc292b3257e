package game

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

var Log = logrus.New()

// Session wraps one board and drives the status machine NotStarted ->
// InProgress -> Won | Lost. Once a terminal status is reached, moves
// are swallowed without touching the board.
type Session struct {
	params Params
	board  *mines.Board
	status Status
	moves  int
}

func NewSession(params Params) (*Session, error) {
	board, err := mines.NewBoard(params.Rows, params.Cols, params.Mines)
	if err != nil {
		return nil, err
	}
	return &Session{params: params, board: board}, nil
}

// NewSessionWithRand seeds the board's mine placement from rnd.
func NewSessionWithRand(params Params, rnd *rand.Rand) (*Session, error) {
	board, err := mines.NewBoardWithRand(
		params.Rows, params.Cols, params.Mines, rnd,
	)
	if err != nil {
		return nil, err
	}
	return &Session{params: params, board: board}, nil
}

// NewSessionWithBoard wraps an existing board, typically one built with
// an explicit mine layout. The session starts at NotStarted regardless
// of the board's history.
func NewSessionWithBoard(board *mines.Board) *Session {
	rows, cols := board.Dimensions()
	return &Session{
		params: Params{Rows: rows, Cols: cols, Mines: board.MineCount()},
		board:  board,
	}
}

func (s *Session) Status() Status { return s.status }

func (s *Session) Params() Params { return s.params }

func (s *Session) Board() *mines.Board { return s.board }

// Moves counts the successful reveals so far.
func (s *Session) Moves() int { return s.moves }

// Cells exposes the live grid for presentation layers and solvers.
func (s *Session) Cells() []*mines.Cell { return s.board.Cells() }

func (s *Session) CellAt(p mines.Position) (*mines.Cell, error) {
	return s.board.CellAt(p)
}

func (s *Session) Neighbors(p mines.Position) ([]mines.Position, error) {
	return s.board.Neighbors(p)
}

func (s *Session) CheckWin() bool { return s.board.CheckWin() }

// FlagsRemaining is the mine-counter display value: total mines minus
// flags currently set. Derived on demand, never stored.
func (s *Session) FlagsRemaining() int {
	flags := 0
	for _, cell := range s.board.Cells() {
		if cell.Visibility() == mines.Flagged {
			flags++
		}
	}
	return s.params.Mines - flags
}

// Reveal forwards to the board unless the game is over. A mine hit
// flips the session to Lost and discloses every remaining mine; a
// reveal that satisfies the win condition flips it to Won.
func (s *Session) Reveal(p mines.Position) (mines.RevealResult, error) {
	if s.status.Terminal() {
		return mines.RevealResult{}, nil
	}
	res, err := s.board.Reveal(p)
	if err != nil || !res.Success {
		return res, err
	}
	s.moves++
	switch {
	case res.HitMine:
		s.status = StatusLost
		s.board.RevealAllMines()
		Log.WithFields(logrus.Fields{
			"pos":   p.String(),
			"moves": s.moves,
		}).Debug("mine hit")
	case s.board.CheckWin():
		s.status = StatusWon
	default:
		s.status = StatusInProgress
	}
	return res, nil
}

// ToggleFlag forwards to the board unless the game is over. Flagging
// counts as starting the game.
func (s *Session) ToggleFlag(p mines.Position) (bool, error) {
	if s.status.Terminal() {
		return false, nil
	}
	flagged, err := s.board.ToggleFlag(p)
	if err != nil {
		return false, err
	}
	if s.status == StatusNotStarted {
		s.status = StatusInProgress
	}
	return flagged, nil
}

// Forfeit concedes an unfinished game and discloses the mines.
func (s *Session) Forfeit() {
	if s.status.Terminal() {
		return
	}
	s.status = StatusLost
	s.board.RevealAllMines()
}

// Restart rebuilds the board with the same parameters and rewinds the
// status machine to NotStarted.
func (s *Session) Restart() error {
	err := s.board.Reset(s.params.Rows, s.params.Cols, s.params.Mines)
	if err != nil {
		return err
	}
	s.status = StatusNotStarted
	s.moves = 0
	return nil
}
