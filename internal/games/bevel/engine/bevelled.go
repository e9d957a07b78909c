package engine

// A bevelled square of size s anchored at (y, x) is a diamond whose top tip
// is the cell pair (y, x) / (y, x+1) and whose bottom tip is the pair at row
// y+2s-1. Ring i (0 <= i < s) spans columns x-i .. x+i+1 on rows y+i and
// y+2s-1-i: the two outer cells are edge triangles and the 2i cells between
// them must be full.

// edgeRule lists the values accepted on each of the four diamond edges.
type edgeRule struct {
	topLeft, topRight, bottomLeft, bottomRight []CellValue
}

var (
	coverEdges = edgeRule{
		topLeft:     []CellValue{TriangleRightBottom, Full},
		topRight:    []CellValue{TriangleLeftBottom, Full},
		bottomLeft:  []CellValue{TriangleRightTop, Full},
		bottomRight: []CellValue{TriangleLeftTop, Full},
	}
	perfectEdges = edgeRule{
		topLeft:     []CellValue{TriangleRightBottom},
		topRight:    []CellValue{TriangleLeftBottom},
		bottomLeft:  []CellValue{TriangleRightTop},
		bottomRight: []CellValue{TriangleLeftTop},
	}
)

// bevelledFits reports whether a diamond of the given size anchored at
// (y, x) stays on the board.
func bevelledFits(board *Board, x, y, size int) bool {
	if size <= 0 || y < 0 {
		return false
	}
	if x+size >= board.Cols() {
		return false
	}
	if x-size+1 < 0 {
		return false
	}
	return y+2*size-1 < board.Rows()
}

func checkBevelled(board *Board, x, y, size int, rule edgeRule) bool {
	if !bevelledFits(board, x, y, size) {
		return false
	}

	bottom := y + 2*size - 1
	for i := 0; i < size; i++ {
		if !board.At(y+i, x-i).HasValue(rule.topLeft...) {
			return false
		}
		if !board.At(y+i, x+i+1).HasValue(rule.topRight...) {
			return false
		}
		if !board.At(bottom-i, x-i).HasValue(rule.bottomLeft...) {
			return false
		}
		if !board.At(bottom-i, x+i+1).HasValue(rule.bottomRight...) {
			return false
		}

		for j := 1; j <= 2*i; j++ {
			if !board.At(y+i, x-i+j).HasValue(Full) {
				return false
			}
			if !board.At(bottom-i, x-i+j).HasValue(Full) {
				return false
			}
		}
	}
	return true
}

// CheckBevelledValid reports whether a diamond of the given size anchored at
// (y, x) is complete, allowing Full cells on its edges.
func CheckBevelledValid(board *Board, x, y, size int) bool {
	return checkBevelled(board, x, y, size, coverEdges)
}

// CheckBevelledPerfect is CheckBevelledValid with edges made strictly of the
// matching triangles.
func CheckBevelledPerfect(board *Board, x, y, size int) bool {
	return checkBevelled(board, x, y, size, perfectEdges)
}

// bevelledCells enumerates every cell of the diamond, edges included.
func bevelledCells(sq Square, fn func(p Pos)) {
	y, x := sq.Anchor.Row, sq.Anchor.Col
	bottom := y + 2*sq.Size - 1
	for i := 0; i < sq.Size; i++ {
		for col := x - i; col <= x+i+1; col++ {
			fn(Pos{Row: y + i, Col: col})
			fn(Pos{Row: bottom - i, Col: col})
		}
	}
}

// IsBevelledSquareValid reports whether more than one color lies in the diamond.
func IsBevelledSquareValid(board *Board, sq Square) bool {
	return len(ColorsAndBlocks(board, sq).Colors) > 1
}

// FindAllBevelledSquares returns every complete diamond on the board.
//
// Anchors are pre-filtered to cells holding a RightBottom or Full tile with a
// LeftBottom or Full tile to their right. In cover mode a size is only tried
// if the previous one succeeded; in perfect mode every size is tried.
func FindAllBevelledSquares(board *Board, perfect bool) []Square {
	var result []Square
	maxSize := min(board.Rows(), board.Cols())

	for y := 0; y < board.Rows()-1; y++ {
		for x := 0; x < board.Cols()-1; x++ {
			if !board.At(y, x).HasValue(TriangleRightBottom, Full) {
				continue
			}
			if !board.At(y, x+1).HasValue(TriangleLeftBottom, Full) {
				continue
			}

			for size := 1; size <= maxSize; size++ {
				if perfect {
					if CheckBevelledPerfect(board, x, y, size) {
						result = append(result, NewBevelledSquare(size, y, x))
					}
					continue
				}
				if !CheckBevelledValid(board, x, y, size) {
					break
				}
				result = append(result, NewBevelledSquare(size, y, x))
			}
		}
	}
	return result
}

// FindMaxValidBevelledSquare returns the largest valid diamond, the first
// one found on ties.
func FindMaxValidBevelledSquare(board *Board, perfect bool) (Square, bool) {
	best := Square{Kind: SquareBevelled}
	found := false
	for _, sq := range FindAllBevelledSquares(board, perfect) {
		if sq.Size <= best.Size {
			continue
		}
		if !IsBevelledSquareValid(board, sq) {
			continue
		}
		best = sq
		found = true
	}
	return best, found
}
