package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type cellSnapshot struct {
	Mine          bool
	AdjacentMines int
	Visibility    Visibility
}

type boardSnapshot struct {
	Rows, Cols, MineCount int
	FirstRevealDone       bool
	Cells                 []cellSnapshot
}

// Bytes serializes the full board state with gob so a caller can stash
// a game and pick it up later. The random source is not part of the
// snapshot.
func (b *Board) Bytes() ([]byte, error) {
	snap := boardSnapshot{
		Rows:            b.rows,
		Cols:            b.cols,
		MineCount:       b.mineCount,
		FirstRevealDone: b.firstReveal,
		Cells:           make([]cellSnapshot, 0, len(b.cells)),
	}
	for _, cell := range b.cells {
		snap.Cells = append(snap.Cells, cellSnapshot{
			Mine:          cell.mine,
			AdjacentMines: cell.adjacentMines,
			Visibility:    cell.visibility,
		})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBoard restores a board serialized with [Board.Bytes]. The
// restored board draws from a fresh random source.
func DecodeBoard(data []byte) (*Board, error) {
	var snap boardSnapshot
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Rows <= 0 || snap.Cols <= 0 || len(snap.Cells) != snap.Rows*snap.Cols {
		return nil, fmt.Errorf(
			"corrupt board snapshot: %dx%d grid with %d cells",
			snap.Rows, snap.Cols, len(snap.Cells),
		)
	}
	b := &Board{
		rows:      snap.Rows,
		cols:      snap.Cols,
		mineCount: snap.MineCount,
		rnd:       newRand(),
	}
	b.allocate()
	b.firstReveal = snap.FirstRevealDone
	for i, cs := range snap.Cells {
		b.cells[i].mine = cs.Mine
		b.cells[i].adjacentMines = cs.AdjacentMines
		b.cells[i].visibility = cs.Visibility
	}
	return b, nil
}
