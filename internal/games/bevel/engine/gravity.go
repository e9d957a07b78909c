package engine

// Settle runs one gravity pass over the board. Walking rows from the second
// to last upward, each block found is lifted off the board, moved down one
// row if that does not collide, and put back. Every block moves at most once
// per pass, so repeated passes animate a one-row-per-tick fall.
//
// Dead blocks that landed entirely above the board own no cells, so they are
// visited last, straight from the dead list, and fall in once there is room.
//
// Returns true if any block moved. The pass stops early once all dead blocks
// have been visited.
func Settle(board *Board, dead []BlockID) bool {
	changed := false
	seen := make(map[BlockID]bool, len(dead))
	remaining := len(dead)

	ids := make([]BlockID, 0, 2)
	for y := board.Rows() - 2; y >= 0; y-- {
		for x := 0; x < board.Cols(); x++ {
			cell := board.At(y, x)
			if len(cell) == 0 {
				continue
			}

			// Erase rewrites cells in place, so copy the owners first.
			ids = ids[:0]
			for _, e := range cell {
				ids = append(ids, e.Block)
			}

			for _, id := range ids {
				if seen[id] {
					continue
				}
				seen[id] = true
				remaining--

				if fall(board, id) {
					changed = true
				}
			}

			if remaining <= 0 {
				return changed
			}
		}
	}

	for _, id := range dead {
		if seen[id] {
			continue
		}
		seen[id] = true
		if fall(board, id) {
			changed = true
		}
	}
	return changed
}

// fall lifts block id off the board, moves it down one row if that does not
// collide and puts it back. Reports whether it moved.
func fall(board *Board, id BlockID) bool {
	block, ok := board.Block(id)
	if !ok {
		return false
	}
	board.Erase(block)
	block.Move(DirDown)
	moved := true
	if block.IsCollide(board) {
		block.MoveUp()
		moved = false
	}
	board.Insert(block)
	return moved
}
