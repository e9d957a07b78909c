// Package engine implements the bevel puzzle rules: half-cell geometry,
// blocks, the board, square detection, scoring and the game state machine.
// This package is UI-agnostic and deterministic for a given seed.
package engine

import (
	"fmt"
	"strings"
)

// CellValue is the content of one grid cell: empty, one of four
// corner-anchored triangles, or full.
//
// The ordinals matter. Two non-empty values that add up to Full are
// complementary halves of the same cell.
type CellValue uint8

const (
	Empty CellValue = iota
	TriangleLeftTop
	TriangleLeftBottom
	TriangleRightTop
	TriangleRightBottom
	Full
)

// String returns a human-readable name for the value.
func (c CellValue) String() string {
	switch c {
	case Empty:
		return "Empty"
	case TriangleLeftTop:
		return "LeftTop"
	case TriangleLeftBottom:
		return "LeftBottom"
	case TriangleRightTop:
		return "RightTop"
	case TriangleRightBottom:
		return "RightBottom"
	case Full:
		return "Full"
	default:
		return "Unknown"
	}
}

// IsTriangle reports whether c is one of the four half-cells.
func (c CellValue) IsTriangle() bool {
	return c >= TriangleLeftTop && c <= TriangleRightBottom
}

// RotateTable maps a cell to its orientation after a 90° clockwise turn.
var RotateTable = [...]CellValue{
	Empty:               Empty,
	TriangleLeftTop:     TriangleRightTop,
	TriangleLeftBottom:  TriangleLeftTop,
	TriangleRightTop:    TriangleRightBottom,
	TriangleRightBottom: TriangleLeftBottom,
	Full:                Full,
}

// FlipTable maps a cell to its horizontal mirror image.
var FlipTable = [...]CellValue{
	Empty:               Empty,
	TriangleLeftTop:     TriangleRightTop,
	TriangleLeftBottom:  TriangleRightBottom,
	TriangleRightTop:    TriangleLeftTop,
	TriangleRightBottom: TriangleLeftBottom,
	Full:                Full,
}

// RotateCell returns c turned 90° clockwise.
func RotateCell(c CellValue) CellValue {
	return RotateTable[c]
}

// FlipCell returns c mirrored horizontally.
func FlipCell(c CellValue) CellValue {
	return FlipTable[c]
}

// Complementary reports whether a and b are two halves that fill a cell.
func Complementary(a, b CellValue) bool {
	return a.IsTriangle() && b.IsTriangle() && a+b == Full
}

// Collides reports whether two values cannot share a cell.
// Empty never collides; otherwise only complementary halves may coexist.
func Collides(a, b CellValue) bool {
	if a == Empty || b == Empty {
		return false
	}
	return a+b != Full
}

// Shape is a rows x cols grid of cell values.
type Shape [][]CellValue

// BuildShape allocates an Empty-filled shape of the given width and height.
func BuildShape(width, height int) Shape {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("bevel: invalid shape size %dx%d", width, height))
	}
	s := make(Shape, height)
	for y := range s {
		s[y] = make([]CellValue, width)
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]CellValue(nil), row...)
	}
	return out
}

// Equal reports whether both shapes have identical size and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// RotateShape returns s turned 90° clockwise. A w x h shape becomes h x w.
func RotateShape(s Shape) Shape {
	w, h := s.Width(), s.Height()
	out := BuildShape(h, w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out[col][h-1-row] = RotateCell(s[row][col])
		}
	}
	return out
}

// FlipShape returns s mirrored horizontally.
func FlipShape(s Shape) Shape {
	w := s.Width()
	out := BuildShape(w, s.Height())
	for y, row := range s {
		for x, c := range row {
			out[y][w-1-x] = FlipCell(c)
		}
	}
	return out
}

// Glyphs used by Shape.String and ParseShape.
var cellGlyphs = [...]rune{
	Empty:               '.',
	TriangleLeftTop:     '◤',
	TriangleLeftBottom:  '◣',
	TriangleRightTop:    '◥',
	TriangleRightBottom: '◢',
	Full:                '█',
}

// Glyph returns the single-rune drawing of c.
func (c CellValue) Glyph() rune {
	if int(c) >= len(cellGlyphs) {
		return '?'
	}
	return cellGlyphs[c]
}

// String renders the shape one row per line using cell glyphs.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Glyph())
		}
	}
	return sb.String()
}

// ParseShape builds a shape from glyph rows (see Glyph).
// Rows must have equal length.
func ParseShape(rows ...string) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("bevel: empty shape")
	}
	s := make(Shape, 0, len(rows))
	width := -1
	for i, line := range rows {
		var row []CellValue
		for _, r := range line {
			v, ok := glyphValue(r)
			if !ok {
				return nil, fmt.Errorf("bevel: row %d: unknown glyph %q", i, r)
			}
			row = append(row, v)
		}
		if width >= 0 && len(row) != width {
			return nil, fmt.Errorf("bevel: row %d has %d cells, want %d", i, len(row), width)
		}
		width = len(row)
		s = append(s, row)
	}
	if width == 0 {
		return nil, fmt.Errorf("bevel: empty shape")
	}
	return s, nil
}

// MustParseShape is ParseShape that panics on error. Used for built-in templates.
func MustParseShape(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func glyphValue(r rune) (CellValue, bool) {
	switch r {
	case ' ':
		return Empty, true
	case '#':
		return Full, true
	}
	for v, g := range cellGlyphs {
		if g == r {
			return CellValue(v), true
		}
	}
	return Empty, false
}
