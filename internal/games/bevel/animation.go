package bevel

import (
	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel/engine"
)

// effectKind identifies which renderer call started an animation.
type effectKind uint8

const (
	effectBlocks effectKind = iota
	effectSpread
	effectSquare
)

// effectCell is one highlighted board position.
type effectCell struct {
	Pos   engine.Pos
	Value engine.CellValue // Empty for background-only highlights
}

// effect is a running animation. done fires once ticksLeft reaches zero.
type effect struct {
	kind      effectKind
	cells     []effectCell
	color     core.Color
	ticksLeft int
	duration  int
	done      engine.Completion
}

// Progress returns 0.0 → 1.0 over the effect's lifetime.
func (e *effect) Progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	return float64(e.duration-e.ticksLeft) / float64(e.duration)
}

// animator implements engine.Renderer on top of fixed simulation ticks.
// Render calls record what to draw; animated calls queue an effect whose
// completion is delivered from step, on the goroutine that drives the game.
type animator struct {
	blockTicks  int
	spreadTicks int
	squareTicks int

	board   *engine.Board
	active  *engine.Block
	next    []*engine.Block
	effects []*effect
}

func newAnimator(timing timingTicks) *animator {
	return &animator{
		blockTicks:  timing.block,
		spreadTicks: timing.spread,
		squareTicks: timing.square,
	}
}

// timingTicks holds effect durations converted to ticks.
type timingTicks struct {
	block, spread, square int
}

// msToTicks converts a duration in milliseconds to at least one tick.
func msToTicks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, ms*tickRate/1000)
}

func (a *animator) Render(board *engine.Board, active *engine.Block) {
	a.board = board
	a.active = active
}

func (a *animator) RenderNextBlocks(blocks []*engine.Block) {
	a.next = blocks
}

func (a *animator) RenderBlockEffect(_ *engine.Board, blocks []*engine.Block, done engine.Completion) {
	var cells []effectCell
	for _, b := range blocks {
		b.Cells(func(p engine.Pos, v engine.CellValue) {
			cells = append(cells, effectCell{Pos: p, Value: v})
		})
	}
	a.start(effectBlocks, cells, core.ColorFlash, a.blockTicks, done)
}

func (a *animator) RenderSpreadLight(board *engine.Board, sq engine.Square, done engine.Completion) {
	a.start(effectSpread, spreadCells(board, sq), core.ColorSpread, a.spreadTicks, done)
}

func (a *animator) RenderSquare(_ *engine.Board, sq engine.Square, perfect bool, done engine.Completion) {
	var cells []effectCell
	sq.Cells(func(p engine.Pos) {
		cells = append(cells, effectCell{Pos: p})
	})
	color := core.ColorSpread
	if perfect {
		color = core.ColorFlash
	}
	a.start(effectSquare, cells, color, a.squareTicks, done)
}

func (a *animator) start(kind effectKind, cells []effectCell, color core.Color, ticks int, done engine.Completion) {
	a.effects = append(a.effects, &effect{
		kind:      kind,
		cells:     cells,
		color:     color,
		ticksLeft: ticks,
		duration:  ticks,
		done:      done,
	})
}

// step ages every effect by one tick and fires the completions of those
// that finished. Completions may start new effects; those begin aging on
// the next step.
func (a *animator) step() {
	if len(a.effects) == 0 {
		return
	}

	var finished []*effect
	running := a.effects[:0]
	for _, e := range a.effects {
		e.ticksLeft--
		if e.ticksLeft <= 0 {
			finished = append(finished, e)
			continue
		}
		running = append(running, e)
	}
	a.effects = running

	for _, e := range finished {
		e.done()
	}
}

// busy reports whether any animation is still running.
func (a *animator) busy() bool {
	return len(a.effects) > 0
}

// reset drops all effects without completing them. The engine ignores
// completions from before a restart, so they are not needed.
func (a *animator) reset() {
	a.effects = nil
	a.board = nil
	a.active = nil
	a.next = nil
}

// spreadCells lists the row band and the column band crossing sq's box.
func spreadCells(board *engine.Board, sq engine.Square) []effectCell {
	r := sq.Rect()
	colBand := core.NewRect(r.X, 0, r.W, board.Rows())
	rowBand := core.NewRect(0, r.Y, board.Cols(), r.H)

	var cells []effectCell
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := core.NewRect(col, row, 1, 1)
			if cell.Intersects(colBand) || cell.Intersects(rowBand) {
				cells = append(cells, effectCell{Pos: engine.P(row, col)})
			}
		}
	}
	return cells
}

var _ engine.Renderer = (*animator)(nil)
