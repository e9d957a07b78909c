package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bevel/internal/core"
)

func TestSettleMovesOneRowPerPass(t *testing.T) {
	b := NewBoard(6, 4)
	floating := placed(1, core.ColorLemon, 1, 0, "██")
	b.Insert(floating)
	dead := []BlockID{1}

	for want := 2; want <= 5; want++ {
		assert.True(t, Settle(b, dead))
		assert.Equal(t, want, floating.Pos.Row)
	}
	assert.False(t, Settle(b, dead))
	assert.Equal(t, 5, floating.Pos.Row)
	assert.Equal(t, Full, b.At(5, 0).Value())
	assert.Equal(t, Empty, b.At(4, 0).Value())
}

func TestSettleBringsInBlocksAboveTheBoard(t *testing.T) {
	b := NewBoard(4, 2)
	above := placed(1, core.ColorLemon, -1, 0, "█")
	b.Insert(above)
	dead := []BlockID{1}
	assert.Equal(t, Empty, b.At(0, 0).Value(), "no cells while above the board")

	assert.True(t, Settle(b, dead))
	assert.Equal(t, 0, above.Pos.Row)
	assert.Equal(t, Full, b.At(0, 0).Value())

	for Settle(b, dead) {
	}
	assert.Equal(t, 3, above.Pos.Row)
	assert.Equal(t, Empty, b.At(0, 0).Value())
}

func TestSettleStacksOnOtherBlocks(t *testing.T) {
	b := NewBoard(6, 4)
	bottom := placed(1, core.ColorSky, 3, 0, "████")
	top := placed(2, core.ColorLemon, 1, 1, "█")
	b.Insert(bottom)
	b.Insert(top)
	dead := []BlockID{1, 2}

	passes := 0
	for Settle(b, dead) {
		passes++
		assert.Less(t, passes, 10)
	}
	assert.Equal(t, 5, bottom.Pos.Row)
	assert.Equal(t, 4, top.Pos.Row)
}

func TestSettleComplementaryHalvesRest(t *testing.T) {
	b := NewBoard(4, 4)
	lower := placed(1, core.ColorSky, 3, 0, "◢")
	upper := placed(2, core.ColorLemon, 1, 0, "◤")
	b.Insert(lower)
	b.Insert(upper)
	dead := []BlockID{1, 2}

	assert.True(t, Settle(b, dead))
	assert.True(t, Settle(b, dead))
	assert.False(t, Settle(b, dead))
	assert.Equal(t, 3, upper.Pos.Row, "complementary half slides into the shared cell")
	assert.Equal(t, Full, b.At(3, 0).Value())
}

func TestSettleEachBlockOncePerPass(t *testing.T) {
	b := NewBoard(8, 4)
	tall := placed(1, core.ColorLemon, 0, 0, "█", "█", "█")
	b.Insert(tall)

	assert.True(t, Settle(b, []BlockID{1}))
	assert.Equal(t, 1, tall.Pos.Row)
}
