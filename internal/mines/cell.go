package mines

import (
	"fmt"
	"strconv"
)

// Visibility is the tri-state player-facing side of a cell. A cell goes
// to Flagged only from Hidden and to Revealed only from Hidden; once
// Revealed it stays that way until a full board reset.
type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "invalid"
	}
}

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Cell is one square of the board. It holds local state only; placement
// and adjacency are the board's business.
type Cell struct {
	pos           Position
	mine          bool
	adjacentMines int
	visibility    Visibility
}

func newCell(pos Position) *Cell {
	return &Cell{pos: pos}
}

// Reveal opens the cell. It refuses only a Flagged cell; opening an
// already open cell reports true and changes nothing.
func (c *Cell) Reveal() bool {
	if c.visibility == Flagged {
		return false
	}
	c.visibility = Revealed
	return true
}

// ToggleFlag flips Hidden and Flagged into each other and returns the
// resulting visibility. A Revealed cell is left alone.
func (c *Cell) ToggleFlag() Visibility {
	switch c.visibility {
	case Hidden:
		c.visibility = Flagged
	case Flagged:
		c.visibility = Hidden
	}
	return c.visibility
}

// Reset returns the cell to its freshly allocated state.
func (c *Cell) Reset() {
	c.visibility = Hidden
	c.mine = false
	c.adjacentMines = 0
}

func (c *Cell) Position() Position { return c.pos }

func (c *Cell) IsMine() bool { return c.mine }

func (c *Cell) AdjacentMines() int { return c.adjacentMines }

func (c *Cell) Visibility() Visibility { return c.visibility }

// SetMine and SetAdjacentMines are setup mutators used while the board
// lays out a new game. Neither touches visibility.
func (c *Cell) SetMine(mine bool) { c.mine = mine }

func (c *Cell) SetAdjacentMines(n int) { c.adjacentMines = n }

func (c *Cell) symbol() string {
	switch c.visibility {
	case Flagged:
		return "*"
	case Hidden:
		return "-"
	default:
		if c.mine {
			return "!"
		}
		return strconv.Itoa(c.adjacentMines)
	}
}
