package game

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-core/internal/mines"
)

// Params configures a game. The presets are the conventional
// difficulties; anything else within bounds is fair game.
type Params struct {
	Rows, Cols, Mines int
}

var (
	Beginner     = Params{Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Params{Rows: 16, Cols: 16, Mines: 40}
	Expert       = Params{Rows: 16, Cols: 30, Mines: 99}
)

// ParsePreset resolves a difficulty name, case-insensitively.
func ParsePreset(name string) (Params, error) {
	switch strings.ToLower(name) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	default:
		return Params{}, fmt.Errorf("unknown preset %q", name)
	}
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 || p.Mines < 0 || p.Mines >= p.Rows*p.Cols {
		return mines.InvalidConfigError{Rows: p.Rows, Cols: p.Cols, Mines: p.Mines}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.Mines)
}
