package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bevel/internal/core"
)

func TestScoreSingleBlockSquare(t *testing.T) {
	b := NewBoard(4, 4)
	b.Insert(placed(1, core.ColorStone, 2, 0, "██", "██"))
	sq := NewSquare(2, 3, 1)

	assert.Equal(t, 20, Score(b, sq, ClearPerfect))
	assert.Equal(t, 4, Score(b, sq, ClearCover))
}

func TestScoreTwoColors(t *testing.T) {
	b := NewBoard(6, 4)
	b.Insert(placed(1, core.ColorLemon, 5, 0, "██"))
	b.Insert(placed(2, core.ColorSky, 4, 0, "██"))
	sq := NewSquare(2, 5, 1)

	assert.Equal(t, 4*2*25, Score(b, sq, ClearPerfect))
	assert.Equal(t, 4*2, Score(b, sq, ClearCover))
}

func TestScoreBevelled(t *testing.T) {
	b := diamondBoard()
	sq := NewBevelledSquare(2, 2, 2)

	// (2*2²)² * 2 blocks * 5²
	assert.Equal(t, 64*2*25, Score(b, sq, ClearPerfect))
	assert.Equal(t, 8*2, Score(b, sq, ClearCover))
}

func TestClearTypeString(t *testing.T) {
	assert.Equal(t, "perfect", ClearPerfect.String())
	assert.Equal(t, "cover", ClearCover.String())
}
