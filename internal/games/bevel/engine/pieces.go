package engine

import (
	"fmt"

	"github.com/vovakirdan/bevel/internal/core"
)

// Kind identifies one of the canonical piece shapes.
type Kind uint8

const (
	KindRidge Kind = iota
	KindHook
	KindBox
	KindDot
	KindSlab
	KindWing
	KindRoof

	kindCount
)

// KindCount is the number of canonical pieces.
const KindCount = int(kindCount)

// Template is the spawn orientation and color of a piece kind.
type Template struct {
	Name  string
	Shape Shape
	Color core.Color
}

// templates is indexed by Kind. Shapes must never be mutated; blocks copy them.
var templates = [KindCount]Template{
	KindRidge: {
		Name: "ridge",
		Shape: MustParseShape(
			".◢◣.",
			"◢██◣",
		),
		Color: core.ColorLemon,
	},
	KindHook: {
		Name: "hook",
		Shape: MustParseShape(
			"◣.",
			"█◣",
		),
		Color: core.ColorSky,
	},
	KindBox: {
		Name: "box",
		Shape: MustParseShape(
			"██",
			"██",
		),
		Color: core.ColorStone,
	},
	KindDot: {
		Name:  "dot",
		Shape: MustParseShape("█"),
		Color: core.ColorStone,
	},
	KindSlab: {
		Name: "slab",
		Shape: MustParseShape(
			"████",
			"████",
			"██◥█",
			"██.◥",
		),
		Color: core.ColorPink,
	},
	KindWing: {
		Name: "wing",
		Shape: MustParseShape(
			".◢◣.",
			"◢█..",
		),
		Color: core.ColorLeaf,
	},
	KindRoof: {
		Name: "roof",
		Shape: MustParseShape(
			".◢◣",
			"◢██",
		),
		Color: core.ColorAmber,
	},
}

// DefaultWeights is the relative spawn frequency of each kind.
var DefaultWeights = Weights{5, 4, 4, 1, 3, 3, 5}

// MaxShapeSize is the largest width or height of any template.
const MaxShapeSize = 4

// TemplateFor returns the template of k. Panics on an unknown kind.
func TemplateFor(k Kind) Template {
	if int(k) >= KindCount {
		panic(fmt.Sprintf("bevel: unknown piece kind %d", k))
	}
	return templates[k]
}

// String returns the piece name.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return "unknown"
	}
	return templates[k].Name
}
