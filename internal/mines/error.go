package mines

import "fmt"

// InvalidConfigError reports board parameters that cannot produce a
// playable grid. Rejecting these up front keeps the placement loop free
// of termination guards.
type InvalidConfigError struct {
	Rows, Cols, Mines int
}

// [InvalidConfigError] implements [error]
func (e InvalidConfigError) Error() string {
	switch {
	case e.Rows <= 0:
		return fmt.Sprintf("cannot build a board with %d rows", e.Rows)
	case e.Cols <= 0:
		return fmt.Sprintf("cannot build a board with %d columns", e.Cols)
	case e.Mines < 0:
		return fmt.Sprintf("cannot place %d mines", e.Mines)
	case e.Mines >= e.Rows*e.Cols:
		return fmt.Sprintf(
			"%d mines leave no safe cell on a %dx%d board",
			e.Mines, e.Rows, e.Cols,
		)
	default:
		return fmt.Sprintf(
			"invalid board config %dx%d(%d)", e.Rows, e.Cols, e.Mines,
		)
	}
}

// OutOfRangeError reports a position outside the board.
type OutOfRangeError struct {
	Pos        Position
	Rows, Cols int
}

// [OutOfRangeError] implements [error]
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"position %s is outside a %dx%d board", e.Pos, e.Rows, e.Cols,
	)
}
