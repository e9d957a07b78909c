package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// State is the phase of the game loop.
type State uint8

const (
	StateNotStarted State = iota
	StateActive
	StateMoveBoard
	StateExtendLife
	StateFail
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateActive:
		return "active"
	case StateMoveBoard:
		return "move-board"
	case StateExtendLife:
		return "extend-life"
	case StateFail:
		return "fail"
	default:
		return "unknown"
	}
}

// maxTicksPerAdvance bounds catch-up work when Advance is handed a large dt.
const maxTicksPerAdvance = 64

// Config holds the engine tunables.
type Config struct {
	Columns int
	// Rows is the playfield height below the spawn zone.
	Rows int
	// ActiveRows is the height of the spawn zone on top of the playfield.
	ActiveRows int
	// StandBy is the number of upcoming blocks shown to the player.
	StandBy int
	// Interval is the fall period while a block is active.
	Interval time.Duration
	// MoveBoardMultiplier speeds up settling relative to Interval.
	MoveBoardMultiplier int
	Weights             Weights
	// Seed feeds the piece generator. Zero picks a time based seed.
	Seed int64
}

// DefaultConfig returns the stock 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Columns:             10,
		Rows:                20,
		ActiveRows:          4,
		StandBy:             2,
		Interval:            500 * time.Millisecond,
		MoveBoardMultiplier: 4,
		Weights:             DefaultWeights,
	}
}

// Validate reports configurations the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Columns < MaxShapeSize {
		errs = append(errs, fmt.Errorf("bevel: columns must be at least %d, got %d", MaxShapeSize, c.Columns))
	}
	if c.Rows < MaxShapeSize {
		errs = append(errs, fmt.Errorf("bevel: rows must be at least %d, got %d", MaxShapeSize, c.Rows))
	}
	if c.ActiveRows < MaxShapeSize {
		errs = append(errs, fmt.Errorf("bevel: active rows must be at least %d, got %d", MaxShapeSize, c.ActiveRows))
	}
	if c.StandBy < 0 {
		errs = append(errs, fmt.Errorf("bevel: negative standby count %d", c.StandBy))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("bevel: interval must be positive, got %s", c.Interval))
	}
	if c.MoveBoardMultiplier < 1 {
		errs = append(errs, fmt.Errorf("bevel: move board multiplier must be at least 1, got %d", c.MoveBoardMultiplier))
	}
	if err := c.Weights.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options configures a Game. Callbacks are optional.
type Options struct {
	Config   Config
	Renderer Renderer
	Logger   *log.Logger
	// Rand overrides the piece generator; Config.Seed is ignored when set.
	Rand *rand.Rand

	OnFail  func()
	OnScore func(score int, sq Square, clear ClearType)

	// Action callbacks fire only when the action changed the active block.
	OnMove   func(dir Direction)
	OnRotate func()
	OnFlip   func()
	OnJump   func()
}

// clearStage is a step of an in-flight clear.
type clearStage uint8

const (
	stageHighlight clearStage = iota
	stageErase
	stageSpreadLight
	stageSpreadErase
	stageDone
)

func (s clearStage) String() string {
	switch s {
	case stageHighlight:
		return "highlight"
	case stageErase:
		return "erase"
	case stageSpreadLight:
		return "spread-light"
	case stageSpreadErase:
		return "spread-erase"
	case stageDone:
		return "done"
	default:
		return "unknown"
	}
}

// resolution tracks one clear from detection until the board may settle.
//
//	perfect: erase -> spread-light -> spread-erase -> done
//	cover:   highlight -> erase -> done
type resolution struct {
	square  Square
	clear   ClearType
	stage   clearStage
	cleared []*Block
	spread  []*Block
}

func (r *resolution) next() clearStage {
	switch r.stage {
	case stageHighlight:
		return stageErase
	case stageErase:
		if r.clear == ClearPerfect {
			return stageSpreadLight
		}
		return stageDone
	case stageSpreadLight:
		return stageSpreadErase
	default:
		return stageDone
	}
}

// Game runs the falling block loop. It is not safe for concurrent use: the
// host drives it from one goroutine through Advance, Tick and the input
// methods, and must invoke Completions on that same goroutine.
type Game struct {
	opts     Options
	cfg      Config
	log      *log.Logger
	renderer Renderer
	rng      *rand.Rand

	board  *Board
	queue  *Queue
	active *Block
	dead   []BlockID
	state  State
	score  int
	ended  bool

	// epoch invalidates completions handed out before End or Restart.
	epoch uint64
	res   *resolution

	inStage  bool
	advanced bool

	scheduled bool
	delay     time.Duration
	elapsed   time.Duration
	ticks     uint64
}

// New builds a game in the NotStarted state. It panics on an invalid
// configuration; validate user supplied values with Config.Validate first.
func New(opts Options) *Game {
	if err := opts.Config.Validate(); err != nil {
		panic(err)
	}
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	cfg := opts.Config
	g := &Game{
		opts:     opts,
		cfg:      cfg,
		log:      opts.Logger,
		renderer: opts.Renderer,
		rng:      rng,
		board:    NewBoard(cfg.Rows+cfg.ActiveRows, cfg.Columns),
	}
	g.queue = NewQueue(cfg.StandBy+1, cfg.Weights, rng)
	return g
}

// Start enters the Active state and schedules the first tick immediately.
func (g *Game) Start() {
	if g.state != StateNotStarted {
		return
	}
	g.ended = false
	g.setState(StateActive)
	g.schedule(0)
	g.drawNext()
	g.log.Info("game started", "cols", g.cfg.Columns, "rows", g.cfg.Rows)
}

// Restart wipes the board, refills the queue and resets the score.
// Pending completions from the previous run are ignored.
func (g *Game) Restart() {
	g.epoch++
	g.board.Reset()
	g.active = nil
	g.dead = g.dead[:0]
	g.queue = NewQueue(g.cfg.StandBy+1, g.cfg.Weights, g.rng)
	g.score = 0
	g.res = nil
	g.ended = false
	g.setState(StateActive)
	g.schedule(0)
	g.draw()
	g.drawNext()
	g.log.Info("game restarted")
}

// End cancels the pending tick and detaches input. In-flight animation
// completions become no-ops.
func (g *Game) End() {
	g.epoch++
	g.ended = true
	g.scheduled = false
	g.res = nil
	g.log.Debug("game ended", "state", g.state, "score", g.score)
}

// Advance moves the game clock forward by dt and runs every tick that
// became due.
func (g *Game) Advance(dt time.Duration) {
	if !g.scheduled {
		return
	}
	g.elapsed += dt
	for i := 0; g.scheduled && g.elapsed >= g.delay && i < maxTicksPerAdvance; i++ {
		carry := g.elapsed - g.delay
		g.scheduled = false
		g.loop()
		if g.scheduled {
			g.elapsed = carry
		}
	}
}

// Tick runs the pending tick now, regardless of its delay. It returns false
// if nothing was scheduled.
func (g *Game) Tick() bool {
	if !g.scheduled {
		return false
	}
	g.scheduled = false
	g.elapsed = 0
	g.loop()
	return true
}

// Scheduled reports whether a tick is pending and its remaining delay.
func (g *Game) Scheduled() (time.Duration, bool) {
	if !g.scheduled {
		return 0, false
	}
	return max(g.delay-g.elapsed, 0), true
}

// SetInterval changes the fall period, effective from the next scheduled tick.
func (g *Game) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	g.cfg.Interval = d
}

// Interval returns the current fall period.
func (g *Game) Interval() time.Duration { return g.cfg.Interval }

func (g *Game) schedule(d time.Duration) {
	g.scheduled = true
	g.delay = d
	g.elapsed = 0
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.log.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) loop() {
	g.ticks++
	switch g.state {
	case StateActive:
		g.loopActive()
	case StateMoveBoard:
		g.loopMoveBoard()
	case StateExtendLife:
		g.loopExtendLife()
	}
}

func (g *Game) loopActive() {
	if g.active == nil {
		g.spawn()
	} else {
		g.active.Move(DirDown)
	}

	if g.active.IsCollide(g.board) {
		g.active.MoveUp()
		block := g.active
		g.board.Insert(block)
		g.dead = append(g.dead, block.ID)
		g.active = nil
		g.log.Debug("block landed", "id", block.ID, "kind", block.Kind, "row", block.Pos.Row, "col", block.Pos.Col)

		if block.Pos.Row <= g.cfg.ActiveRows-1 {
			g.setState(StateExtendLife)
			g.schedule(0)
			return
		}
		if sq, ok := FindMaxValidBevelledSquare(g.board, true); ok {
			g.resolve(sq, ClearPerfect)
			return
		}
		if sq, ok := FindMaxValidSquare(g.board, true); ok {
			g.resolve(sq, ClearPerfect)
			return
		}
	}

	g.draw()
	g.schedule(g.cfg.Interval)
}

// loopMoveBoard settles one row per tick. Once nothing moves, only axis
// aligned squares are looked for again.
func (g *Game) loopMoveBoard() {
	changed := g.MoveDeadBlocksFall()
	g.draw()
	if !changed {
		if sq, ok := FindMaxValidSquare(g.board, true); ok {
			g.resolve(sq, ClearPerfect)
			return
		}
		if g.board.IsFirstNRowsEmpty(g.cfg.ActiveRows) {
			g.setState(StateActive)
		} else {
			g.setState(StateExtendLife)
		}
	}
	g.schedule(g.moveBoardInterval())
}

func (g *Game) loopExtendLife() {
	if sq, ok := FindMaxValidBevelledSquare(g.board, false); ok {
		g.resolve(sq, ClearCover)
		return
	}
	if sq, ok := FindMaxValidSquare(g.board, false); ok {
		g.resolve(sq, ClearCover)
		return
	}

	g.setState(StateFail)
	g.draw()
	g.log.Info("game over", "score", g.score, "ticks", g.ticks)
	if g.opts.OnFail != nil {
		g.opts.OnFail()
	}
}

func (g *Game) moveBoardInterval() time.Duration {
	return g.cfg.Interval / time.Duration(g.cfg.MoveBoardMultiplier)
}

// spawn dequeues the next block and places it on the top row at a random
// column that keeps it on the board.
func (g *Game) spawn() {
	block := g.queue.Next()
	span := max(g.cfg.Columns-7, 0)
	col := g.rng.Intn(span + 1)
	col = min(col, g.cfg.Columns-block.Width())
	block.SetPosition(Pos{Row: 0, Col: col})
	g.active = block
	g.drawNext()
	g.log.Debug("spawn", "id", block.ID, "kind", block.Kind, "col", col)
}

// MoveDeadBlocksFall runs one gravity pass and reports whether anything moved.
func (g *Game) MoveDeadBlocksFall() bool {
	return Settle(g.board, g.dead)
}

// resolve scores sq, removes the blocks under it and starts the animation
// chain that ends in MoveBoard.
func (g *Game) resolve(sq Square, clear ClearType) {
	points := Score(g.board, sq, clear)
	g.score += points
	g.log.Info("square cleared", "square", sq, "clear", clear, "points", points, "total", g.score)
	if g.opts.OnScore != nil {
		g.opts.OnScore(points, sq, clear)
	}

	cov := ColorsAndBlocks(g.board, sq)
	res := &resolution{square: sq, clear: clear, stage: stageErase}
	if clear == ClearCover {
		res.stage = stageHighlight
	}
	res.cleared = g.clearBlocks(cov.Blocks)
	g.res = res
	g.draw()
	g.runStages()
}

// runStages enters the current stage and keeps going for as long as the
// renderer completes synchronously.
func (g *Game) runStages() {
	for g.res != nil {
		if g.res.stage == stageDone {
			g.finishResolution()
			return
		}
		g.inStage = true
		g.advanced = false
		g.enterStage(g.res)
		g.inStage = false
		if !g.advanced {
			return
		}
	}
}

func (g *Game) enterStage(res *resolution) {
	done := g.completion(res.stage)
	g.log.Debug("clear stage", "stage", res.stage, "square", res.square)
	switch res.stage {
	case stageHighlight:
		g.renderer.RenderSquare(g.board, res.square, res.clear == ClearPerfect, done)
	case stageErase:
		g.renderer.RenderBlockEffect(g.board, res.cleared, done)
	case stageSpreadLight:
		g.renderer.RenderSpreadLight(g.board, res.square, done)
	case stageSpreadErase:
		res.spread = g.clearBlocks(BlocksInSpreadLight(g.board, res.square))
		g.renderer.RenderBlockEffect(g.board, res.spread, done)
	}
}

func (g *Game) completion(stage clearStage) Completion {
	epoch := g.epoch
	return func() { g.complete(epoch, stage) }
}

func (g *Game) complete(epoch uint64, stage clearStage) {
	if epoch != g.epoch || g.res == nil || g.res.stage != stage {
		g.log.Debug("stale completion ignored", "stage", stage)
		return
	}
	g.res.stage = g.res.next()
	if g.inStage {
		g.advanced = true
		return
	}
	g.runStages()
}

func (g *Game) finishResolution() {
	g.res = nil
	g.setState(StateMoveBoard)
	g.schedule(0)
}

// clearBlocks removes ids from the board and the dead list and returns the
// removed blocks.
func (g *Game) clearBlocks(ids []BlockID) []*Block {
	if len(ids) == 0 {
		return nil
	}
	removed := make([]*Block, 0, len(ids))
	drop := make(map[BlockID]bool, len(ids))
	for _, id := range ids {
		if block, ok := g.board.Block(id); ok {
			removed = append(removed, block)
		}
		drop[id] = true
	}
	g.board.ClearBlocks(ids)

	kept := g.dead[:0]
	for _, id := range g.dead {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	g.dead = kept
	return removed
}

// BlocksInSpreadLight returns the blocks crossing the row band or the column
// band of the square's bounding box.
func BlocksInSpreadLight(board *Board, sq Square) []BlockID {
	r := sq.Rect()
	var ids []BlockID
	seen := make(map[BlockID]bool)
	collect := func(row, col int) {
		if !board.InBounds(row, col) {
			return
		}
		for _, e := range board.At(row, col) {
			if !seen[e.Block] {
				seen[e.Block] = true
				ids = append(ids, e.Block)
			}
		}
	}

	for row := 0; row < board.Rows(); row++ {
		for col := r.X; col < r.X+r.W; col++ {
			collect(row, col)
		}
	}
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := 0; col < board.Cols(); col++ {
			collect(row, col)
		}
	}
	return ids
}

func (g *Game) draw() {
	g.renderer.Render(g.board, g.active)
}

func (g *Game) drawNext() {
	g.renderer.RenderNextBlocks(g.queue.Peek(g.cfg.StandBy))
}

// control applies an input action to the active block. Input is ignored
// unless a block is falling in the Active state.
func (g *Game) control(action func(b *Block) bool) bool {
	if g.ended || g.state != StateActive || g.active == nil {
		return false
	}
	changed := action(g.active)
	g.draw()
	return changed
}

// MoveLeft shifts the active block one column left.
func (g *Game) MoveLeft() bool { return g.move(DirLeft) }

// MoveRight shifts the active block one column right.
func (g *Game) MoveRight() bool { return g.move(DirRight) }

// MoveDown pushes the active block one row down.
func (g *Game) MoveDown() bool { return g.move(DirDown) }

func (g *Game) move(dir Direction) bool {
	ok := g.control(func(b *Block) bool { return b.MoveIfNotCollide(g.board, dir) })
	if ok && g.opts.OnMove != nil {
		g.opts.OnMove(dir)
	}
	return ok
}

// Rotate turns the active block a quarter clockwise.
func (g *Game) Rotate() bool {
	ok := g.control(func(b *Block) bool { return b.RotateIfNotCollide(g.board) })
	if ok && g.opts.OnRotate != nil {
		g.opts.OnRotate()
	}
	return ok
}

// Flip mirrors the active block horizontally.
func (g *Game) Flip() bool {
	ok := g.control(func(b *Block) bool { return b.FlipIfNotCollide(g.board) })
	if ok && g.opts.OnFlip != nil {
		g.opts.OnFlip()
	}
	return ok
}

// Jump drops the active block as far as it can fall. The block lands on
// the next tick.
func (g *Game) Jump() bool {
	ok := g.control(func(b *Block) bool { return b.Jump(g.board) })
	if ok && g.opts.OnJump != nil {
		g.opts.OnJump()
	}
	return ok
}

func (g *Game) State() State { return g.state }

func (g *Game) Score() int { return g.score }

func (g *Game) Board() *Board { return g.board }

// Active returns the falling block, or nil.
func (g *Game) Active() *Block { return g.active }

// NextBlocks returns the upcoming blocks shown to the player.
func (g *Game) NextBlocks() []*Block { return g.queue.Peek(g.cfg.StandBy) }

// Queue exposes the lookahead, mainly to script piece sequences.
func (g *Game) Queue() *Queue { return g.queue }

// DeadBlocks returns the ids of settled blocks in landing order.
func (g *Game) DeadBlocks() []BlockID {
	out := make([]BlockID, len(g.dead))
	copy(out, g.dead)
	return out
}

// Resolving reports whether a clear is waiting on the renderer.
func (g *Game) Resolving() bool { return g.res != nil }

// Ended reports whether End was called since the last (re)start.
func (g *Game) Ended() bool { return g.ended }

// Ticks returns the number of loop ticks run so far.
func (g *Game) Ticks() uint64 { return g.ticks }

// Config returns the effective configuration.
func (g *Game) Config() Config { return g.cfg }
