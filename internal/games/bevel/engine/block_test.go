package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bevel/internal/core"
)

func TestBlockWallsAndFloor(t *testing.T) {
	b := NewBoard(5, 4)
	blk := placed(1, core.ColorLemon, 0, 0, "██")

	assert.False(t, blk.MoveIfNotCollide(b, DirLeft))
	assert.Equal(t, P(0, 0), blk.Pos)

	assert.True(t, blk.MoveIfNotCollide(b, DirRight))
	assert.True(t, blk.MoveIfNotCollide(b, DirRight))
	assert.False(t, blk.MoveIfNotCollide(b, DirRight))
	assert.Equal(t, P(0, 2), blk.Pos)

	blk.SetPosition(P(4, 0))
	assert.False(t, blk.MoveIfNotCollide(b, DirDown))
	blk.Move(DirDown)
	assert.True(t, blk.IsCollide(b))
}

func TestBlockRotateRollsBackOnCollision(t *testing.T) {
	b := NewBoard(4, 4)
	blk := NewBlock(1, KindRidge)
	blk.SetPosition(P(2, 0))
	before := blk.Shape.Clone()

	// A 4x2 ridge turned upright would need four rows from row 2.
	assert.False(t, blk.RotateIfNotCollide(b))
	assert.True(t, before.Equal(blk.Shape))

	blk.SetPosition(P(0, 0))
	assert.True(t, blk.RotateIfNotCollide(b))
	assert.Equal(t, 2, blk.Width())
	assert.Equal(t, 4, blk.Height())
}

func TestBlockFlip(t *testing.T) {
	b := NewBoard(4, 4)
	blk := NewBlock(1, KindHook)
	assert.True(t, blk.FlipIfNotCollide(b))
	assert.Equal(t, MustParseShape(".◢", "◢█").String(), blk.Shape.String())
}

func TestBlockJumpLandsOnStack(t *testing.T) {
	b := NewBoard(8, 4)
	b.Insert(placed(1, core.ColorSky, 7, 0, "████"))

	blk := placed(2, core.ColorLemon, 0, 1, "█")
	assert.True(t, blk.Jump(b))
	assert.Equal(t, 6, blk.Pos.Row)

	// Settled at the lowest free row: one more row down collides.
	assert.False(t, blk.IsCollide(b))
	blk.Move(DirDown)
	assert.True(t, blk.IsCollide(b))
	blk.MoveUp()

	assert.False(t, blk.Jump(b))
}

func TestBlockJumpDoesNotTunnel(t *testing.T) {
	b := NewBoard(8, 4)
	b.Insert(placed(1, core.ColorSky, 3, 0, "████"))

	blk := placed(2, core.ColorLemon, 0, 0, "█")
	blk.Jump(b)
	assert.Equal(t, 2, blk.Pos.Row)
}

func TestBlockIsInSquare(t *testing.T) {
	sq := NewSquare(2, 5, 3) // rows 4-5, cols 2-3

	inside := placed(1, core.ColorLemon, 4, 2, "█◣", "██")
	assert.True(t, inside.IsInSquare(sq))

	out := placed(2, core.ColorLemon, 4, 2, "███")
	assert.False(t, out.IsInSquare(sq))

	// Empty cells may hang outside.
	hollow := placed(3, core.ColorLemon, 4, 1, ".██", ".██")
	assert.True(t, hollow.IsInSquare(sq))
}

func TestBlockClone(t *testing.T) {
	blk := NewBlock(7, KindRoof)
	c := blk.Clone()
	c.Shape[0][0] = Full
	c.Pos = P(3, 3)
	assert.Equal(t, Empty, blk.Shape[0][0])
	assert.Equal(t, P(0, 0), blk.Pos)
	assert.Equal(t, TemplateFor(KindRoof).Shape.String(), NewBlock(8, KindRoof).Shape.String())
}
