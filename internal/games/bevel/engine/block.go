package engine

import (
	"github.com/vovakirdan/bevel/internal/core"
)

// BlockID identifies a block in the board arena. Zero is never assigned.
type BlockID uint32

// Pos is a board coordinate. Row grows downward.
type Pos struct {
	Row, Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Direction is a single-cell translation applied by Block.Move.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Block is a piece: a shape in its current orientation, a fixed color and
// the board position of its top-left corner.
type Block struct {
	ID    BlockID
	Kind  Kind
	Color core.Color
	Shape Shape
	Pos   Pos
}

// NewBlock creates a block of the given kind with a private copy of its template.
func NewBlock(id BlockID, kind Kind) *Block {
	t := TemplateFor(kind)
	return &Block{
		ID:    id,
		Kind:  kind,
		Color: t.Color,
		Shape: t.Shape.Clone(),
	}
}

// Width returns the current shape width.
func (b *Block) Width() int { return b.Shape.Width() }

// Height returns the current shape height.
func (b *Block) Height() int { return b.Shape.Height() }

// SetPosition places the block with its top-left corner at p.
func (b *Block) SetPosition(p Pos) {
	b.Pos = p
}

// Move translates the block by one cell. No bounds check is made.
func (b *Block) Move(dir Direction) {
	switch dir {
	case DirLeft:
		b.Pos.Col--
	case DirRight:
		b.Pos.Col++
	case DirDown:
		b.Pos.Row++
	}
}

// MoveUp backs the block out by one row.
func (b *Block) MoveUp() {
	b.Pos.Row--
}

// Cells calls fn for every non-empty shape cell with its board position.
func (b *Block) Cells(fn func(p Pos, v CellValue)) {
	for y, row := range b.Shape {
		for x, v := range row {
			if v == Empty {
				continue
			}
			fn(Pos{Row: b.Pos.Row + y, Col: b.Pos.Col + x}, v)
		}
	}
}

// IsCollide reports whether the block leaves the board horizontally, sinks
// below the floor, or overlaps another block's cell contribution.
// Rows above the board never collide.
func (b *Block) IsCollide(board *Board) bool {
	if b.Pos.Col < 0 {
		return true
	}
	if b.Pos.Col+b.Width() > board.Cols() {
		return true
	}
	if b.Pos.Row+b.Height() > board.Rows() {
		return true
	}

	for y, row := range b.Shape {
		by := b.Pos.Row + y
		if by < 0 {
			continue
		}
		for x, v := range row {
			if v == Empty {
				continue
			}
			if board.collidesAt(by, b.Pos.Col+x, v, b.ID) {
				return true
			}
		}
	}
	return false
}

// tryMutate applies mutate, tests the result against the board and
// restores the previous shape and position if it collides.
func (b *Block) tryMutate(board *Board, mutate func()) bool {
	oldShape, oldPos := b.Shape, b.Pos
	mutate()
	if b.IsCollide(board) {
		b.Shape, b.Pos = oldShape, oldPos
		return false
	}
	return true
}

// MoveIfNotCollide moves the block one cell and keeps the move only if it
// does not collide.
func (b *Block) MoveIfNotCollide(board *Board, dir Direction) bool {
	return b.tryMutate(board, func() { b.Move(dir) })
}

// RotateIfNotCollide turns the block clockwise around its anchor.
func (b *Block) RotateIfNotCollide(board *Board) bool {
	return b.tryMutate(board, func() { b.Shape = RotateShape(b.Shape) })
}

// FlipIfNotCollide mirrors the block horizontally in place.
func (b *Block) FlipIfNotCollide(board *Board) bool {
	return b.tryMutate(board, func() { b.Shape = FlipShape(b.Shape) })
}

// Jump drops the block to the lowest row it can reach without passing
// through anything. Returns false if it could not move at all.
func (b *Block) Jump(board *Board) bool {
	start := b.Pos.Row
	for b.MoveIfNotCollide(board, DirDown) {
	}
	return b.Pos.Row != start
}

// IsInSquare reports whether every filled cell of the block lies inside the
// square's bounds. Bevelled squares are tested against their enclosing
// axis-aligned square.
func (b *Block) IsInSquare(sq Square) bool {
	bounds := sq.Rect()
	inside := true
	b.Cells(func(p Pos, _ CellValue) {
		if !bounds.Contains(p.Col, p.Row) {
			inside = false
		}
	})
	return inside
}

// Clone returns an independent copy of the block.
func (b *Block) Clone() *Block {
	c := *b
	c.Shape = b.Shape.Clone()
	return &c
}
