package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Entry is one block's contribution to a board cell.
type Entry struct {
	Value CellValue
	Block BlockID
}

// Cell is the stack of contributions in one board cell. At most two
// complementary triangles from different blocks share a cell.
type Cell []Entry

// Value returns the combined value of all entries. A cell holding two
// complementary halves reports Full.
func (c Cell) Value() CellValue {
	var sum CellValue
	for _, e := range c {
		sum += e.Value
	}
	return sum
}

// IsFull reports whether the cell is completely filled.
func (c Cell) IsFull() bool {
	return c.Value() == Full
}

// HasValue reports whether any entry holds one of values.
func (c Cell) HasValue(values ...CellValue) bool {
	for _, e := range c {
		for _, v := range values {
			if e.Value == v {
				return true
			}
		}
	}
	return false
}

// Board is the settled playfield. Cells reference blocks by ID; the blocks
// themselves live in the board's arena until they are cleared.
type Board struct {
	rows, cols int
	cells      [][]Cell
	blocks     *intmap.Map[BlockID, *Block]
}

// NewBoard creates an empty board. Panics on a non-positive size.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("bevel: invalid board size %dx%d", rows, cols))
	}
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return &Board{
		rows:   rows,
		cols:   cols,
		cells:  cells,
		blocks: intmap.New[BlockID, *Block](64),
	}
}

// Rows returns the board height including the spawn zone.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). The returned slice must not be modified.
func (b *Board) At(row, col int) Cell {
	return b.cells[row][col]
}

// Block returns the arena block with the given id.
func (b *Board) Block(id BlockID) (*Block, bool) {
	return b.blocks.Get(id)
}

// BlockCount returns the number of blocks referenced by the board.
func (b *Board) BlockCount() int {
	return b.blocks.Len()
}

// collidesAt reports whether value v from block self collides with any
// other block's entry at (row, col).
func (b *Board) collidesAt(row, col int, v CellValue, self BlockID) bool {
	for _, e := range b.cells[row][col] {
		if e.Block == self {
			continue
		}
		if Collides(v, e.Value) {
			return true
		}
	}
	return false
}

// Insert adds the block's footprint to the board and registers it in the
// arena. Cells above the board are skipped.
func (b *Board) Insert(block *Block) {
	b.blocks.Put(block.ID, block)
	block.Cells(func(p Pos, v CellValue) {
		if !b.InBounds(p.Row, p.Col) {
			return
		}
		b.cells[p.Row][p.Col] = append(b.cells[p.Row][p.Col], Entry{Value: v, Block: block.ID})
	})
}

// Erase removes every entry owned by block from the whole board.
// The block stays in the arena so it can be re-inserted.
func (b *Board) Erase(block *Block) {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = removeOwner(b.cells[y][x], block.ID)
		}
	}
}

// ClearBlocks removes each block's entries from the cells under its current
// footprint and drops it from the arena.
func (b *Board) ClearBlocks(ids []BlockID) {
	for _, id := range ids {
		block, ok := b.blocks.Get(id)
		if !ok {
			continue
		}
		block.Cells(func(p Pos, _ CellValue) {
			if !b.InBounds(p.Row, p.Col) {
				return
			}
			b.cells[p.Row][p.Col] = removeOwner(b.cells[p.Row][p.Col], id)
		})
		b.blocks.Del(id)
	}
}

// IsFirstNRowsEmpty reports whether the top n rows hold nothing.
// Returns false when n exceeds the board height.
func (b *Board) IsFirstNRowsEmpty(n int) bool {
	if n > b.rows {
		return false
	}
	for y := 0; y < n; y++ {
		for x := 0; x < b.cols; x++ {
			if len(b.cells[y][x]) > 0 {
				return false
			}
		}
	}
	return true
}

// Reset empties every cell and the arena.
func (b *Board) Reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = nil
		}
	}
	b.blocks = intmap.New[BlockID, *Block](64)
}

// Values returns the combined value of every cell, row-major.
func (b *Board) Values() [][]CellValue {
	out := make([][]CellValue, b.rows)
	for y := range b.cells {
		out[y] = make([]CellValue, b.cols)
		for x, c := range b.cells[y] {
			out[y][x] = c.Value()
		}
	}
	return out
}

func removeOwner(c Cell, id BlockID) Cell {
	out := c[:0]
	for _, e := range c {
		if e.Block != id {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
