package bevel

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/bevel/internal/config"
	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel/engine"
	"github.com/vovakirdan/bevel/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

func newStarted(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(seed))
	// The first tick is due immediately and spawns a block.
	g.Step(core.NewInputFrame())
	if g.Engine().Active() == nil {
		t.Fatal("Expected an active block after the first step")
	}
	return g
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range IDs() {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %s", id, g.ID())
		}
	}

	if got := IDForPreset(config.DifficultyHard); got != IDHard {
		t.Errorf("IDForPreset(hard) = %s", got)
	}
	if got := IDForPreset("unknown"); got != IDNormal {
		t.Errorf("IDForPreset(unknown) = %s", got)
	}
}

func TestResetStartsEngine(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	if g.Engine().State() != engine.StateActive {
		t.Fatalf("Expected Active after Reset, got %s", g.Engine().State())
	}
	st := g.State()
	if st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("Unexpected initial state: %+v", st)
	}

	g.Step(core.NewInputFrame())
	if g.Engine().Active() == nil {
		t.Error("First step should spawn a block")
	}
}

func TestDifficultyShortensInterval(t *testing.T) {
	g := newStarted(t, 7)

	base := g.cfg.Timing.Interval()
	if got := g.Engine().Interval(); got >= base {
		t.Errorf("Normal preset should start faster than base: %v >= %v", got, base)
	}

	fixed, _ := registry.Create(IDFixed)
	fg := fixed.(*Game)
	fg.Reset(testRuntime(7))
	fg.Step(core.NewInputFrame())
	if got := fg.Engine().Interval(); got != base {
		t.Errorf("Fixed preset interval = %v, want %v", got, base)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newStarted(t, 12345)
	g2 := newStarted(t, 12345)

	input := core.NewInputFrame()
	for i := range 900 {
		input.Clear()
		switch i % 40 {
		case 5:
			input.Set(core.ActionRotate)
		case 10:
			input.Set(core.ActionRight)
		case 15:
			input.Set(core.ActionFlip)
		case 20:
			input.Set(core.ActionLeft)
		case 30:
			input.Set(core.ActionDrop)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1 := g1.Engine().Snapshot()
	s2 := g2.Engine().Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick == 0 {
		t.Error("Engine did not tick")
	}
}

func TestInputMapping(t *testing.T) {
	g := newStarted(t, 3)
	active := g.Engine().Active()
	col := active.Pos.Col

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	res := g.Step(in)

	if got := g.Engine().Active().Pos.Col; got != col+1 {
		t.Errorf("Right: col = %d, want %d", got, col+1)
	}
	if !slices.Contains(res.Events, "move:right") {
		t.Errorf("Expected move:right event, got %v", res.Events)
	}

	row := g.Engine().Active().Pos.Row
	in.Clear()
	in.Set(core.ActionDrop)
	res = g.Step(in)

	if got := g.Engine().Active().Pos.Row; got <= row {
		t.Errorf("Drop should move the block down: row %d -> %d", row, got)
	}
	if !slices.Contains(res.Events, "jump") {
		t.Errorf("Expected jump event, got %v", res.Events)
	}
}

func TestPauseStopsClock(t *testing.T) {
	g := newStarted(t, 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	ticks := g.Engine().Ticks()
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Ticks() != ticks {
		t.Error("Engine advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestRestartInPlace(t *testing.T) {
	g := newStarted(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if !slices.Contains(res.Events, "restart") {
		t.Errorf("Expected restart event, got %v", res.Events)
	}
	if g.Engine().Active() != nil {
		t.Error("Restart should clear the falling block")
	}
	if g.State().Score != 0 {
		t.Errorf("Score after restart = %d", g.State().Score)
	}
}

func TestFailReportsGameOver(t *testing.T) {
	g := newStarted(t, 1)
	g.SetHighScore(500)

	g.onFail()

	st := g.State()
	if !st.GameOver {
		t.Fatal("Expected game over")
	}
	if st.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500", st.HighScore)
	}

	ticks := g.Engine().Ticks()
	g.Step(core.NewInputFrame())
	if g.Engine().Ticks() != ticks {
		t.Error("Engine advanced after game over")
	}
}

func TestScoreBanner(t *testing.T) {
	g := newStarted(t, 1)

	g.onScore(20, engine.NewSquare(2, 10, 3), engine.ClearPerfect)
	if g.banner != "PERFECT 2 +20" {
		t.Errorf("banner = %q", g.banner)
	}

	g.onScore(4, engine.NewBevelledSquare(1, 8, 0), engine.ClearCover)
	if g.banner != "BEVEL COVER 1 +4" {
		t.Errorf("banner = %q", g.banner)
	}
	if !slices.Contains(g.events, "clear:bevelled:cover") {
		t.Errorf("events = %v", g.events)
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New()
	rt := testRuntime(1)
	rt.ScreenW, rt.ScreenH = 20, 10
	g.Reset(rt)

	if !g.State().Paused {
		t.Fatal("Small window should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small message")
	}

	g.Resize(80, 40)
	if g.State().Paused {
		t.Error("Resize to a large window should unpause")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newStarted(t, 1)
	g.SetHighScore(1234)

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"BEVEL", "Score: 0", "Best:  1234", "Next", "State: active"} {
		if !strings.Contains(out, want) {
			t.Errorf("Screen missing %q", want)
		}
	}
}

func TestMsToTicks(t *testing.T) {
	tests := []struct {
		ms, rate, want int
	}{
		{300, 60, 18},
		{400, 60, 24},
		{1, 60, 1},
		{0, 60, 1},
		{500, 0, 30},
	}
	for _, tt := range tests {
		if got := msToTicks(tt.ms, tt.rate); got != tt.want {
			t.Errorf("msToTicks(%d, %d) = %d, want %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}

func TestHighlightFadesOut(t *testing.T) {
	a := newAnimator(timingTicks{block: 1, spread: 3, square: 1})
	a.RenderSpreadLight(engine.NewBoard(4, 4), engine.NewSquare(1, 1, 1), func() {})

	e := a.effects[0]
	var shades []rune
	for a.busy() {
		shades = append(shades, shadeFor(e.Progress()))
		a.step()
	}
	if want := []rune{'▓', '▒', '░'}; !reflect.DeepEqual(shades, want) {
		t.Errorf("shades = %q, want %q", shades, want)
	}
	if e.Progress() != 1 {
		t.Errorf("finished progress = %v, want 1", e.Progress())
	}
}

func TestAnimatorCompletesAfterTicks(t *testing.T) {
	a := newAnimator(timingTicks{block: 3, spread: 2, square: 1})

	var order []string
	a.RenderBlockEffect(nil, nil, func() {
		order = append(order, "blocks")
		// Chained effects start from inside a completion.
		a.RenderSpreadLight(engine.NewBoard(4, 4), engine.NewSquare(1, 1, 1), func() {
			order = append(order, "spread")
		})
	})

	a.step()
	a.step()
	if len(order) != 0 {
		t.Fatalf("Completed too early: %v", order)
	}
	a.step()
	if !reflect.DeepEqual(order, []string{"blocks"}) {
		t.Fatalf("order = %v", order)
	}
	if !a.busy() {
		t.Fatal("Chained spread effect should be running")
	}

	a.step()
	a.step()
	if !reflect.DeepEqual(order, []string{"blocks", "spread"}) {
		t.Errorf("order = %v", order)
	}
	if a.busy() {
		t.Error("No effect should remain")
	}
}

func TestSpreadCells(t *testing.T) {
	board := engine.NewBoard(4, 5)
	cells := spreadCells(board, engine.NewSquare(1, 2, 3))

	// One full row (5) plus one full column (4), sharing a cell.
	if len(cells) != 8 {
		t.Errorf("len = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if c.Pos.Row != 2 && c.Pos.Col != 3 {
			t.Errorf("cell %v outside bands", c.Pos)
		}
	}
}
