package engine

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	State  State
	Score  int
	Board  [][]CellValue
	Active *BlockSnapshot
	Next   []Kind
	Dead   int
}

// BlockSnapshot is the falling block at snapshot time.
type BlockSnapshot struct {
	ID    BlockID
	Kind  Kind
	Pos   Pos
	Shape Shape
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.ticks,
		State: g.state,
		Score: g.score,
		Board: g.board.Values(),
		Dead:  len(g.dead),
	}
	if g.active != nil {
		s.Active = &BlockSnapshot{
			ID:    g.active.ID,
			Kind:  g.active.Kind,
			Pos:   g.active.Pos,
			Shape: g.active.Shape.Clone(),
		}
	}
	for _, b := range g.NextBlocks() {
		s.Next = append(s.Next, b.Kind)
	}
	return s
}
