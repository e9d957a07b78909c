package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bevel/internal/core"
)

// diamondBoard places a size-2 diamond anchored at (2, 2) made of two
// differently colored halves.
func diamondBoard() *Board {
	b := NewBoard(8, 6)
	b.Insert(placed(1, core.ColorLemon, 2, 1, ".◢◣.", "◢██◣"))
	b.Insert(placed(2, core.ColorSky, 4, 1, "◥██◤", ".◥◤."))
	return b
}

func TestCheckBevelledPerfect(t *testing.T) {
	b := diamondBoard()

	assert.True(t, CheckBevelledPerfect(b, 2, 2, 2))
	assert.True(t, CheckBevelledValid(b, 2, 2, 2))

	// The size-1 diamond at the same tip has full cells for its bottom edge.
	assert.False(t, CheckBevelledPerfect(b, 2, 2, 1))
	assert.True(t, CheckBevelledValid(b, 2, 2, 1))

	assert.False(t, CheckBevelledValid(b, 2, 2, 3), "no bottom tip at size 3")
	assert.False(t, CheckBevelledValid(b, 4, 2, 2), "right edge off the board")
}

func TestFindMaxValidBevelledSquare(t *testing.T) {
	b := diamondBoard()

	for _, perfect := range []bool{true, false} {
		sq, ok := FindMaxValidBevelledSquare(b, perfect)
		require.True(t, ok)
		assert.Equal(t, NewBevelledSquare(2, 2, 2), sq)
	}

	cov := ColorsAndBlocks(b, NewBevelledSquare(2, 2, 2))
	assert.ElementsMatch(t, []BlockID{1, 2}, cov.Blocks)
	assert.Len(t, cov.Colors, 2)
}

func TestBevelledSingleColorIsInvalid(t *testing.T) {
	b := NewBoard(8, 6)
	b.Insert(placed(1, core.ColorLemon, 2, 1, ".◢◣.", "◢██◣"))
	b.Insert(placed(2, core.ColorLemon, 4, 1, "◥██◤", ".◥◤."))

	assert.NotEmpty(t, FindAllBevelledSquares(b, true))
	_, ok := FindMaxValidBevelledSquare(b, true)
	assert.False(t, ok)
}

func TestBevelledSmallDiamond(t *testing.T) {
	b := NewBoard(4, 4)
	b.Insert(placed(1, core.ColorLemon, 1, 1, "◢◣"))
	b.Insert(placed(2, core.ColorSky, 2, 1, "◥◤"))

	sq, ok := FindMaxValidBevelledSquare(b, true)
	require.True(t, ok)
	assert.Equal(t, NewBevelledSquare(1, 1, 1), sq)

	var cells []Pos
	sq.Cells(func(p Pos) { cells = append(cells, p) })
	assert.ElementsMatch(t, []Pos{P(1, 1), P(1, 2), P(2, 1), P(2, 2)}, cells)
}

func TestBevelledCoverStopsAtFirstFailure(t *testing.T) {
	b := NewBoard(4, 4)
	// Top tip present but nothing below it.
	b.Insert(placed(1, core.ColorLemon, 1, 1, "◢◣"))

	assert.Empty(t, FindAllBevelledSquares(b, false))
	assert.Empty(t, FindAllBevelledSquares(b, true))
}

func TestBevelledHollowInteriorFails(t *testing.T) {
	b := NewBoard(8, 6)
	b.Insert(placed(1, core.ColorLemon, 2, 1, ".◢◣.", "◢█.◣"))
	b.Insert(placed(2, core.ColorSky, 4, 1, "◥██◤", ".◥◤."))

	assert.False(t, CheckBevelledPerfect(b, 2, 2, 2))
}

func TestBevelledInteriorNeedsWholeCells(t *testing.T) {
	b := NewBoard(8, 6)
	b.Insert(placed(1, core.ColorLemon, 2, 1, ".◢◣.", "◢█.◣"))
	b.Insert(placed(2, core.ColorSky, 4, 1, "◥██◤", ".◥◤."))
	// Two halves fill the gap, but no single block covers it.
	b.Insert(placed(3, core.ColorPink, 3, 3, "◢"))
	b.Insert(placed(4, core.ColorAmber, 3, 3, "◤"))
	require.True(t, b.At(3, 3).IsFull())

	assert.False(t, CheckBevelledPerfect(b, 2, 2, 2))
	assert.False(t, CheckBevelledValid(b, 2, 2, 2))
	_, ok := FindMaxValidBevelledSquare(b, true)
	assert.False(t, ok)
}
