package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allValues = []CellValue{Empty, TriangleLeftTop, TriangleLeftBottom, TriangleRightTop, TriangleRightBottom, Full}

func TestCollidesMatchesOrdinalSum(t *testing.T) {
	for _, a := range allValues {
		for _, b := range allValues {
			want := a != Empty && b != Empty && a+b != Full
			assert.Equal(t, want, Collides(a, b), "%s + %s", a, b)
		}
	}
}

func TestComplementaryPairs(t *testing.T) {
	var pairs [][2]CellValue
	for _, a := range allValues {
		for _, b := range allValues {
			if Complementary(a, b) {
				pairs = append(pairs, [2]CellValue{a, b})
			}
		}
	}

	assert.ElementsMatch(t, [][2]CellValue{
		{TriangleLeftTop, TriangleRightBottom},
		{TriangleRightBottom, TriangleLeftTop},
		{TriangleLeftBottom, TriangleRightTop},
		{TriangleRightTop, TriangleLeftBottom},
	}, pairs)

	assert.False(t, Complementary(Full, Empty))
	assert.False(t, Complementary(TriangleLeftTop, TriangleLeftBottom))
	assert.True(t, Collides(Full, Full))
	assert.True(t, Collides(Full, TriangleLeftTop))
}

func TestRotateCellIsFourCycle(t *testing.T) {
	assert.Equal(t, TriangleRightTop, RotateCell(TriangleLeftTop))
	assert.Equal(t, TriangleRightBottom, RotateCell(TriangleRightTop))
	assert.Equal(t, TriangleLeftBottom, RotateCell(TriangleRightBottom))
	assert.Equal(t, TriangleLeftTop, RotateCell(TriangleLeftBottom))

	for _, v := range allValues {
		got := v
		for range 4 {
			got = RotateCell(got)
		}
		assert.Equal(t, v, got, "four turns of %s", v)
	}
	assert.Equal(t, Empty, RotateCell(Empty))
	assert.Equal(t, Full, RotateCell(Full))
}

func TestFlipCellIsInvolution(t *testing.T) {
	for _, v := range allValues {
		assert.Equal(t, v, FlipCell(FlipCell(v)), "flip twice %s", v)
	}
	assert.Equal(t, TriangleRightTop, FlipCell(TriangleLeftTop))
	assert.Equal(t, TriangleRightBottom, FlipCell(TriangleLeftBottom))
}

func TestRotateShape(t *testing.T) {
	hook := MustParseShape(
		"◣.",
		"█◣",
	)
	rotated := RotateShape(hook)
	assert.Equal(t, MustParseShape(
		"█◤",
		"◤.",
	).String(), rotated.String())

	ridge := TemplateFor(KindRidge).Shape
	r := RotateShape(ridge)
	assert.Equal(t, ridge.Height(), r.Width())
	assert.Equal(t, ridge.Width(), r.Height())

	got := ridge
	for range 4 {
		got = RotateShape(got)
	}
	assert.True(t, ridge.Equal(got))
}

func TestFlipShape(t *testing.T) {
	roof := TemplateFor(KindRoof).Shape
	assert.Equal(t, MustParseShape(
		"◢◣.",
		"██◣",
	).String(), FlipShape(roof).String())
	assert.True(t, roof.Equal(FlipShape(FlipShape(roof))))
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("# ", "◢◤")
	require.NoError(t, err)
	assert.Equal(t, Shape{{Full, Empty}, {TriangleRightBottom, TriangleLeftTop}}, s)

	_, err = ParseShape()
	assert.Error(t, err)

	_, err = ParseShape("##", "#")
	assert.Error(t, err)

	_, err = ParseShape("x")
	assert.Error(t, err)
}

func TestBuildShapePanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { BuildShape(0, 2) })
	s := BuildShape(3, 2)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestTemplatesFitMaxShapeSize(t *testing.T) {
	for k := range KindCount {
		tpl := TemplateFor(Kind(k))
		assert.LessOrEqual(t, tpl.Shape.Width(), MaxShapeSize, tpl.Name)
		assert.LessOrEqual(t, tpl.Shape.Height(), MaxShapeSize, tpl.Name)
		assert.NotEmpty(t, Kind(k).String())
	}
	assert.Panics(t, func() { TemplateFor(Kind(KindCount)) })
}
