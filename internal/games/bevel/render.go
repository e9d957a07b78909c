package bevel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel/engine"
)

const (
	cellWidth  = 2  // Screen columns per board cell
	panelWidth = 20 // Side panel including its left gap
	hudHeight  = 1
)

// layoutSize returns the screen size needed for the board and panel.
func (g *Game) layoutSize() (w, h int) {
	b := g.cfg.Board
	w = b.Columns*cellWidth + 2 + panelWidth
	h = b.Rows + b.ActiveRows + 2 + hudHeight
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.layoutSize()
	originX := max(0, (g.runtime.ScreenW-w)/2)
	originY := max(0, (g.runtime.ScreenH-h)/2)

	boardX := originX
	boardY := originY + hudHeight
	boardW := g.cfg.Board.Columns*cellWidth + 2
	boardH := g.cfg.Board.Rows + g.cfg.Board.ActiveRows + 2

	dst.DrawTextColored(originX, originY, strings.ToUpper(g.title), core.ColorBrightWhite)

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderEffects(dst, boardX+1, boardY+1)
	g.renderActive(dst, boardX+1, boardY+1)

	g.renderPanel(dst, boardX+boardW+2, boardY)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// cellAt converts a board position to screen coordinates.
func cellAt(x0, y0 int, p engine.Pos) (int, int) {
	return x0 + p.Col*cellWidth, y0 + p.Row
}

// renderBoard draws settled blocks. A cell shared by two complementary
// halves shows each half in its own block's color.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	board := g.anim.board
	if board == nil {
		board = g.engine.Board()
	}
	activeRows := g.cfg.Board.ActiveRows

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			x, y := cellAt(x0, y0, engine.P(row, col))
			cell := board.At(row, col)

			switch len(cell) {
			case 0:
				if row >= activeRows {
					dst.SetColored(x, y, '·', core.ColorGray)
				} else if row == activeRows-1 {
					dst.SetColored(x, y, '‥', core.ColorGray)
				}
			case 1:
				c := g.blockColor(board, cell[0].Block)
				g.drawCell(dst, x, y, cell[0].Value, c, c)
			default:
				left := g.blockColor(board, cell[0].Block)
				right := g.blockColor(board, cell[1].Block)
				dst.SetColored(x, y, cell[0].Value.Glyph(), left)
				dst.SetColored(x+1, y, cell[1].Value.Glyph(), right)
			}
		}
	}
}

func (g *Game) blockColor(board *engine.Board, id engine.BlockID) core.Color {
	if b, ok := board.Block(id); ok {
		return b.Color
	}
	return core.ColorDefault
}

// drawCell draws one board cell. Full cells fill both columns; triangles
// repeat their glyph so the cell keeps its aspect.
func (g *Game) drawCell(dst *core.Screen, x, y int, v engine.CellValue, left, right core.Color) {
	r := v.Glyph()
	dst.SetColored(x, y, r, left)
	dst.SetColored(x+1, y, r, right)
}

// renderActive draws the falling block over the board.
func (g *Game) renderActive(dst *core.Screen, x0, y0 int) {
	active := g.anim.active
	if active == nil {
		return
	}
	active.Cells(func(p engine.Pos, v engine.CellValue) {
		if p.Row < 0 {
			return
		}
		x, y := cellAt(x0, y0, p)
		g.drawCell(dst, x, y, v, active.Color, active.Color)
	})
}

// renderEffects overlays running animations. Block effects blink the
// removed cells; highlights shade the covered cells and fade out.
func (g *Game) renderEffects(dst *core.Screen, x0, y0 int) {
	for _, e := range g.anim.effects {
		blinkOn := (e.duration-e.ticksLeft)/4%2 == 0
		shade := shadeFor(e.Progress())
		for _, c := range e.cells {
			x, y := cellAt(x0, y0, c.Pos)
			switch e.kind {
			case effectBlocks:
				if blinkOn {
					g.drawCell(dst, x, y, c.Value, e.color, e.color)
				}
			default:
				for i := range cellWidth {
					cur := dst.GetCell(x+i, y)
					r := cur.Rune
					if r == ' ' || r == '·' || r == '‥' {
						r = shade
					}
					dst.SetColored(x+i, y, r, e.color)
				}
			}
		}
	}
}

// shadeFor picks the highlight glyph for an effect's progress, dense first.
func shadeFor(progress float64) rune {
	switch {
	case progress < 1.0/3:
		return '▓'
	case progress < 2.0/3:
		return '▒'
	default:
		return '░'
	}
}

// renderPanel draws score, best, state and the next-block preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	state := g.engine.State()
	lines := []string{
		fmt.Sprintf("Score: %d", g.engine.Score()),
		fmt.Sprintf("Best:  %d", max(g.highScore, g.engine.Score())),
		fmt.Sprintf("Speed: %dms", g.engine.Interval().Milliseconds()),
		fmt.Sprintf("State: %s", state),
	}
	for i, line := range lines {
		dst.DrawText(x, y+i, line)
	}

	row := y + len(lines) + 1
	if g.bannerTicks > 0 && g.banner != "" {
		dst.DrawTextColored(x, row, g.banner, core.ColorFlash)
	}

	row += 2
	dst.DrawTextColored(x, row, "Next", core.ColorGray)
	row++
	for _, b := range g.anim.next {
		for sy, shapeRow := range b.Shape {
			for sx, v := range shapeRow {
				if v == engine.Empty {
					continue
				}
				g.drawCell(dst, x+sx*cellWidth, row+sy, v, b.Color, b.Color)
			}
		}
		row += b.Height() + 1
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.failed:
		score := fmt.Sprintf("Score: %d", g.engine.Score())
		if g.engine.Score() > 0 && g.engine.Score() >= g.highScore {
			drawOverlay(dst, centerX, centerY, "GAME OVER", score, "New best!", "Press R to restart")
			return
		}
		drawOverlay(dst, centerX, centerY, "GAME OVER", score, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	x := core.Clamp(centerX-boxW/2, 0, max(0, dst.Width()-boxW))
	y := core.Clamp(centerY-boxH/2, 0, max(0, dst.Height()-boxH))
	box := core.NewRect(x, y, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		lx := box.X + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawText(lx, box.Y+1+i, line)
	}
}
