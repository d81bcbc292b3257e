package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellReveal(t *testing.T) {
	c := newCell(Position{1, 2})
	assert.Equal(t, Hidden, c.Visibility())

	assert.True(t, c.Reveal())
	assert.Equal(t, Revealed, c.Visibility())

	// revealing an open cell is harmless
	assert.True(t, c.Reveal())
	assert.Equal(t, Revealed, c.Visibility())
}

func TestCellRevealFlagged(t *testing.T) {
	c := newCell(Position{0, 0})
	c.ToggleFlag()

	assert.False(t, c.Reveal())
	assert.Equal(t, Flagged, c.Visibility())
}

func TestCellToggleFlag(t *testing.T) {
	c := newCell(Position{0, 0})

	assert.Equal(t, Flagged, c.ToggleFlag())
	assert.Equal(t, Hidden, c.ToggleFlag())
	assert.Equal(t, Flagged, c.ToggleFlag())
}

func TestCellToggleFlagRevealed(t *testing.T) {
	c := newCell(Position{0, 0})
	c.Reveal()

	assert.Equal(t, Revealed, c.ToggleFlag())
	assert.Equal(t, Revealed, c.Visibility())
}

func TestCellReset(t *testing.T) {
	c := newCell(Position{3, 4})
	c.SetMine(true)
	c.SetAdjacentMines(5)
	c.Reveal()

	c.Reset()

	assert.Equal(t, Hidden, c.Visibility())
	assert.False(t, c.IsMine())
	assert.Equal(t, 0, c.AdjacentMines())
	assert.Equal(t, Position{3, 4}, c.Position())
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "revealed", Revealed.String())
	assert.Equal(t, "flagged", Flagged.String())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "4:20", Position{4, 20}.String())
}
