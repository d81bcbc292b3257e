// Package solver plays single-point minesweeper inference: every
// deduction uses one revealed number and its immediate neighborhood,
// nothing global. It never guesses, so it never opens a mine on a
// consistently labeled board.
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

var Log = logrus.New()

type Result int

const (
	Success Result = iota
	Stalled
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Stalled:
		return "stalled"
	default:
		return "invalid"
	}
}

// Game is the board surface the solver plays against. Both
// [mines.Board] and the session type wrapping it satisfy this.
type Game interface {
	Cells() []*mines.Cell
	CellAt(p mines.Position) (*mines.Cell, error)
	Neighbors(p mines.Position) ([]mines.Position, error)
	Reveal(p mines.Position) (mines.RevealResult, error)
	ToggleFlag(p mines.Position) (bool, error)
	CheckWin() bool
}

// Solve runs inference sweeps to a fixpoint. A number with all its
// mines flagged opens its remaining neighbors; a number whose hidden
// neighborhood exactly covers its missing mines flags it. Success means
// the win condition was reached; Stalled means no rule applies anymore.
func Solve(g Game) (Result, error) {
	for {
		if g.CheckWin() {
			return Success, nil
		}
		progress, err := sweep(g)
		if err != nil {
			return Stalled, err
		}
		if !progress {
			Log.Debug("solver stalled")
			return Stalled, nil
		}
	}
}

func sweep(g Game) (bool, error) {
	progress := false
	for _, cell := range g.Cells() {
		if cell.Visibility() != mines.Revealed || cell.IsMine() {
			continue
		}
		count := cell.AdjacentMines()
		if count == 0 {
			continue
		}

		neighbors, err := g.Neighbors(cell.Position())
		if err != nil {
			return false, err
		}
		var (
			hidden  []mines.Position
			flagged int
		)
		for _, p := range neighbors {
			nc, err := g.CellAt(p)
			if err != nil {
				return false, err
			}
			switch nc.Visibility() {
			case mines.Hidden:
				hidden = append(hidden, p)
			case mines.Flagged:
				flagged++
			}
		}
		if len(hidden) == 0 {
			continue
		}

		switch {
		case flagged == count:
			// all mines accounted for: the rest are safe
			for _, p := range hidden {
				res, err := g.Reveal(p)
				if err != nil {
					return false, err
				}
				progress = progress || res.Success
			}
		case flagged+len(hidden) == count:
			// every hidden neighbor must be a mine
			for _, p := range hidden {
				if _, err := g.ToggleFlag(p); err != nil {
					return false, err
				}
			}
			progress = true
		}
	}
	return progress, nil
}
