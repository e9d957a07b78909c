package engine

// Completion signals that an animation has finished. It must be called on
// the goroutine that owns the Game, at most once; extra or late calls are
// ignored.
type Completion func()

// Renderer draws the game. The engine never waits on it synchronously:
// animated calls receive a Completion that gates the next step of a clear.
type Renderer interface {
	// Render draws the board and the falling block (nil when none).
	Render(board *Board, active *Block)

	// RenderNextBlocks shows the upcoming blocks.
	RenderNextBlocks(blocks []*Block)

	// RenderBlockEffect animates the removal of blocks that were just
	// cleared from board.
	RenderBlockEffect(board *Board, blocks []*Block, done Completion)

	// RenderSpreadLight animates the row and column bands around a perfect clear.
	RenderSpreadLight(board *Board, sq Square, done Completion)

	// RenderSquare highlights a matched square.
	RenderSquare(board *Board, sq Square, perfect bool, done Completion)
}

// NopRenderer draws nothing and completes every animation immediately.
type NopRenderer struct{}

func (NopRenderer) Render(*Board, *Block)       {}
func (NopRenderer) RenderNextBlocks([]*Block) {}

func (NopRenderer) RenderBlockEffect(_ *Board, _ []*Block, done Completion) { done() }

func (NopRenderer) RenderSpreadLight(_ *Board, _ Square, done Completion) { done() }

func (NopRenderer) RenderSquare(_ *Board, _ Square, _ bool, done Completion) { done() }

var _ Renderer = NopRenderer{}
