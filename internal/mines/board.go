package mines

import (
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// RevealResult describes the effect of a single reveal action. Success
// is false when the action was a defined no-op (the target was already
// Revealed or Flagged) and no cell changed.
type RevealResult struct {
	Success       bool
	HitMine       bool
	CellsRevealed []Position
}

// Board owns a row-major grid of cells, places the mines on the opening
// reveal and answers win/loss questions. It is exclusively owned by one
// caller; nothing here is safe for concurrent use.
type Board struct {
	rows, cols  int
	mineCount   int
	cells       []*Cell
	firstReveal bool
	rnd         *rand.Rand
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard allocates a rows x cols board with every cell Hidden and no
// mines placed yet. Mines appear on the first Reveal call, which is
// guaranteed safe.
func NewBoard(rows, cols, mineCount int) (*Board, error) {
	return NewBoardWithRand(rows, cols, mineCount, newRand())
}

// NewBoardWithRand is [NewBoard] with an injected random source, so
// callers that need reproducible layouts can seed their own.
func NewBoardWithRand(rows, cols, mineCount int, rnd *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 || mineCount < 0 || mineCount >= rows*cols {
		return nil, InvalidConfigError{rows, cols, mineCount}
	}
	b := &Board{rows: rows, cols: cols, mineCount: mineCount, rnd: rnd}
	b.allocate()
	return b, nil
}

// NewBoardWithMines builds a board around an explicit mine layout with
// adjacency already computed and the opening placement marked done, so
// the first Reveal plays against exactly this layout. Duplicate
// positions collapse; the board's mine count reflects the cells actually
// mined. Meant for tests and solver fixtures.
func NewBoardWithMines(rows, cols int, minePositions []Position) (*Board, error) {
	b, err := NewBoardWithRand(rows, cols, len(minePositions), newRand())
	if err != nil {
		return nil, err
	}
	placed := 0
	for _, p := range minePositions {
		if !b.inBounds(p) {
			return nil, OutOfRangeError{p, rows, cols}
		}
		if !b.cellAt(p).IsMine() {
			b.cellAt(p).SetMine(true)
			placed++
		}
	}
	b.mineCount = placed
	b.computeAdjacency()
	b.firstReveal = true
	return b, nil
}

func (b *Board) allocate() {
	b.cells = make([]*Cell, b.rows*b.cols)
	for r := range b.rows {
		for c := range b.cols {
			b.cells[r*b.cols+c] = newCell(Position{r, c})
		}
	}
	b.firstReveal = false
}

func (b *Board) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) cellAt(p Position) *Cell {
	return b.cells[p.Row*b.cols+p.Col]
}

// CellAt returns a live pointer into the grid, valid until the next
// mutating call.
func (b *Board) CellAt(p Position) (*Cell, error) {
	if !b.inBounds(p) {
		return nil, OutOfRangeError{p, b.rows, b.cols}
	}
	return b.cellAt(p), nil
}

// Cells returns the full grid in row-major order. The slice and the
// cells it points to are live board state, not a copy.
func (b *Board) Cells() []*Cell { return b.cells }

func (b *Board) Dimensions() (rows, cols int) { return b.rows, b.cols }

func (b *Board) MineCount() int { return b.mineCount }

// FirstRevealDone reports whether the opening reveal has already placed
// the mines.
func (b *Board) FirstRevealDone() bool { return b.firstReveal }

// Neighbors returns the in-bounds neighbors of p, row then column order.
func (b *Board) Neighbors(p Position) ([]Position, error) {
	if !b.inBounds(p) {
		return nil, OutOfRangeError{p, b.rows, b.cols}
	}
	return b.appendNeighbors(p, nil), nil
}

func (b *Board) appendNeighbors(p Position, buf []Position) []Position {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{p.Row + dr, p.Col + dc}
			if b.inBounds(n) {
				buf = append(buf, n)
			}
		}
	}
	return buf
}

// placeMines scatters mineCount mines by rejection sampling, leaving the
// opening cell clear, then fills in adjacency counts. Constructor
// validation (mineCount < rows*cols) is what bounds this loop. Runs once
// per board lifetime.
func (b *Board) placeMines(safe Position) {
	placed := 0
	for placed < b.mineCount {
		p := Position{b.rnd.IntN(b.rows), b.rnd.IntN(b.cols)}
		if p == safe || b.cellAt(p).IsMine() {
			continue
		}
		b.cellAt(p).SetMine(true)
		placed++
	}
	b.computeAdjacency()
	Log.WithFields(logrus.Fields{
		"rows":  b.rows,
		"cols":  b.cols,
		"mines": b.mineCount,
		"safe":  safe.String(),
	}).Debug("mines placed")
}

// computeAdjacency counts mined neighbors for every non-mine cell.
// Mined cells keep 0; their count is never read.
func (b *Board) computeAdjacency() {
	var buf []Position
	for _, cell := range b.cells {
		if cell.IsMine() {
			continue
		}
		buf = b.appendNeighbors(cell.Position(), buf[:0])
		n := 0
		for _, q := range buf {
			if b.cellAt(q).IsMine() {
				n++
			}
		}
		cell.SetAdjacentMines(n)
	}
}

// Reveal opens the cell at p. The very first call on a board places the
// mines with p as the guaranteed-safe cell, before any state check.
// Opening a Revealed or Flagged cell is a no-op with Success false;
// opening a mine exposes just that cell; anything else flood fills.
func (b *Board) Reveal(p Position) (RevealResult, error) {
	if !b.inBounds(p) {
		return RevealResult{}, OutOfRangeError{p, b.rows, b.cols}
	}
	if !b.firstReveal {
		b.firstReveal = true
		b.placeMines(p)
	}
	cell := b.cellAt(p)
	if cell.Visibility() != Hidden {
		return RevealResult{}, nil
	}
	if cell.IsMine() {
		cell.Reveal()
		return RevealResult{
			Success:       true,
			HitMine:       true,
			CellsRevealed: []Position{p},
		}, nil
	}
	return RevealResult{
		Success:       true,
		CellsRevealed: b.floodReveal(p),
	}, nil
}

// floodReveal opens the connected zero-adjacency region around start
// plus its numbered border, depth first over an explicit stack so large
// boards cannot exhaust the call stack. Non-Hidden cells stop the
// expansion, which is what keeps Flagged cells closed. A zero-adjacency
// cell has no mined neighbor by definition, so the expansion never
// reaches a mine.
func (b *Board) floodReveal(start Position) []Position {
	var (
		revealed []Position
		buf      []Position
		stack    = []Position{start}
	)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := b.cellAt(p)
		if cell.Visibility() != Hidden {
			continue
		}
		cell.Reveal()
		revealed = append(revealed, p)
		if cell.AdjacentMines() != 0 {
			continue
		}
		// Pushed in reverse so cells pop in row-then-column order,
		// matching a recursive descent.
		buf = b.appendNeighbors(p, buf[:0])
		for i := len(buf) - 1; i >= 0; i-- {
			if b.cellAt(buf[i]).Visibility() == Hidden {
				stack = append(stack, buf[i])
			}
		}
	}
	return revealed
}

// ToggleFlag flips the flag on the cell at p and reports whether the
// cell is now Flagged. False covers both a removed flag and a rejected
// toggle on a Revealed cell.
func (b *Board) ToggleFlag(p Position) (bool, error) {
	if !b.inBounds(p) {
		return false, OutOfRangeError{p, b.rows, b.cols}
	}
	return b.cellAt(p).ToggleFlag() == Flagged, nil
}

// CheckWin reports whether every non-mine cell is Revealed. Flags on
// mines are irrelevant.
func (b *Board) CheckWin() bool {
	for _, cell := range b.cells {
		if !cell.IsMine() && cell.Visibility() != Revealed {
			return false
		}
	}
	return true
}

// RevealAllMines is the loss-disclosure step. It forces every mine to
// Revealed, the one transition allowed to cut straight through a flag.
func (b *Board) RevealAllMines() {
	for _, cell := range b.cells {
		if cell.IsMine() {
			cell.visibility = Revealed
		}
	}
}

// Reset reinitializes the board to a fresh configuration, equivalent to
// reconstruction: all cells Hidden, no mines, opening reveal pending.
func (b *Board) Reset(rows, cols, mineCount int) error {
	if rows <= 0 || cols <= 0 || mineCount < 0 || mineCount >= rows*cols {
		return InvalidConfigError{rows, cols, mineCount}
	}
	b.rows, b.cols, b.mineCount = rows, cols, mineCount
	b.allocate()
	return nil
}

// String renders the player view of the grid: digits for open cells,
// "*" for flags, "-" for hidden, "!" for an exposed mine.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.rows {
		for c := range b.cols {
			sb.WriteString(b.cells[r*b.cols+c].symbol() + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
