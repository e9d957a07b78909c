package engine

import (
	"fmt"

	"github.com/vovakirdan/bevel/internal/core"
)

// SquareKind distinguishes axis-aligned squares from 45° rotated ones.
type SquareKind uint8

const (
	SquareNormal SquareKind = iota
	SquareBevelled
)

// String returns the string representation of the kind.
func (k SquareKind) String() string {
	switch k {
	case SquareNormal:
		return "normal"
	case SquareBevelled:
		return "bevelled"
	default:
		return "unknown"
	}
}

// Square is a clearable region.
//
// For SquareNormal, Anchor is the bottom-right cell and Size the side length.
// For SquareBevelled, Anchor is the left cell of the diamond's top tip pair
// and Size the number of diagonal steps per edge.
type Square struct {
	Kind   SquareKind
	Size   int
	Anchor Pos
}

// NewSquare returns an axis-aligned square with the given bottom-right corner.
func NewSquare(size, bottom, right int) Square {
	return Square{Kind: SquareNormal, Size: size, Anchor: Pos{Row: bottom, Col: right}}
}

// NewBevelledSquare returns a diamond anchored at its top-left tip cell.
func NewBevelledSquare(size, top, left int) Square {
	return Square{Kind: SquareBevelled, Size: size, Anchor: Pos{Row: top, Col: left}}
}

// MaxSquare returns the smallest axis-aligned square enclosing sq.
// Normal squares are returned unchanged.
func (sq Square) MaxSquare() Square {
	if sq.Kind == SquareNormal {
		return sq
	}
	return BevelledToMaxSquare(sq)
}

// BevelledToMaxSquare maps a diamond of size s to its enclosing square of size 2s.
func BevelledToMaxSquare(sq Square) Square {
	y, x := sq.Anchor.Row, sq.Anchor.Col
	return NewSquare(2*sq.Size, y+2*sq.Size-1, x+sq.Size)
}

// Rect returns the bounds of the (enclosing) axis-aligned square.
func (sq Square) Rect() core.Rect {
	m := sq.MaxSquare()
	return core.NewRect(m.Anchor.Col-m.Size+1, m.Anchor.Row-m.Size+1, m.Size, m.Size)
}

// String returns a short description such as "normal 3@(10,4)".
func (sq Square) String() string {
	return fmt.Sprintf("%s %d@(%d,%d)", sq.Kind, sq.Size, sq.Anchor.Row, sq.Anchor.Col)
}

// Cells calls fn for every board position covered by the square.
func (sq Square) Cells(fn func(p Pos)) {
	if sq.Kind == SquareBevelled {
		bevelledCells(sq, fn)
		return
	}
	bottom, right := sq.Anchor.Row, sq.Anchor.Col
	for y := bottom - sq.Size + 1; y <= bottom; y++ {
		for x := right - sq.Size + 1; x <= right; x++ {
			fn(Pos{Row: y, Col: x})
		}
	}
}

// Coverage lists the distinct colors and blocks found under a square, in
// first-seen order.
type Coverage struct {
	Colors []core.Color
	Blocks []BlockID
}

// ColorsAndBlocks collects the colors and blocks that contribute to any cell
// of the square.
func ColorsAndBlocks(board *Board, sq Square) Coverage {
	var cov Coverage
	seenColor := make(map[core.Color]bool)
	seenBlock := make(map[BlockID]bool)
	sq.Cells(func(p Pos) {
		for _, e := range board.At(p.Row, p.Col) {
			if !seenBlock[e.Block] {
				seenBlock[e.Block] = true
				cov.Blocks = append(cov.Blocks, e.Block)
			}
			block, ok := board.Block(e.Block)
			if !ok {
				continue
			}
			if !seenColor[block.Color] {
				seenColor[block.Color] = true
				cov.Colors = append(cov.Colors, block.Color)
			}
		}
	})
	return cov
}

// FindAllSquares returns the maximal-square table: dp[r][c] is the side of
// the largest all-Full square whose bottom-right corner is (r, c).
func FindAllSquares(board *Board) [][]int {
	rows, cols := board.Rows(), board.Cols()
	dp := make([][]int, rows)
	for y := range dp {
		dp[y] = make([]int, cols)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !board.At(y, x).IsFull() {
				continue
			}
			if y == 0 || x == 0 {
				dp[y][x] = 1
				continue
			}
			dp[y][x] = min(dp[y-1][x], dp[y][x-1], dp[y-1][x-1]) + 1
		}
	}
	return dp
}

// IsSquareValid reports whether more than one color lies under the square.
func IsSquareValid(board *Board, sq Square) bool {
	return len(ColorsAndBlocks(board, sq).Colors) > 1
}

// IsSquarePerfect reports whether every block touching the square lies
// entirely inside it.
func IsSquarePerfect(board *Board, sq Square) bool {
	for _, id := range ColorsAndBlocks(board, sq).Blocks {
		block, ok := board.Block(id)
		if !ok {
			continue
		}
		if !block.IsInSquare(sq) {
			return false
		}
	}
	return true
}

// FindMaxValidSquare scans the DP table row by row and returns the largest
// valid square, the first one found on ties. With perfect set, squares with
// blocks sticking out are skipped.
func FindMaxValidSquare(board *Board, perfect bool) (Square, bool) {
	dp := FindAllSquares(board)
	best := Square{}
	found := false

	for y := range dp {
		for x, size := range dp[y] {
			if size <= best.Size {
				continue
			}
			sq := NewSquare(size, y, x)
			if !IsSquareValid(board, sq) {
				continue
			}
			if perfect && !IsSquarePerfect(board, sq) {
				continue
			}
			best = sq
			found = true
		}
	}
	return best, found
}
