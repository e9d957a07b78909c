package engine

// ClearType tells how a square was matched.
type ClearType uint8

const (
	// ClearPerfect: every contributing block lies inside the square.
	ClearPerfect ClearType = iota
	// ClearCover: found while extending life; blocks may stick out.
	ClearCover
)

// String returns the string representation of the clear type.
func (c ClearType) String() string {
	switch c {
	case ClearPerfect:
		return "perfect"
	case ClearCover:
		return "cover"
	default:
		return "unknown"
	}
}

// Score computes the points awarded for clearing sq.
//
//	normal   perfect: s² · blocks · 5^colors    cover: s² · colors
//	bevelled perfect: (2s²)² · blocks · 5^colors  cover: 2s² · colors
func Score(board *Board, sq Square, clear ClearType) int {
	cov := ColorsAndBlocks(board, sq)
	colors := len(cov.Colors)
	blocks := len(cov.Blocks)

	area := sq.Size * sq.Size
	if sq.Kind == SquareBevelled {
		area = 2 * sq.Size * sq.Size
	}

	if clear == ClearCover {
		return area * colors
	}
	if sq.Kind == SquareBevelled {
		area *= area
	}
	return area * blocks * pow5(colors)
}

func pow5(n int) int {
	r := 1
	for range n {
		r *= 5
	}
	return r
}
