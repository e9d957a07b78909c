// Package bevel adapts the bevel engine to the game platform: it drives
// the engine from fixed simulation ticks, turns renderer calls into
// tick-counted animations and draws the result to a core.Screen.
package bevel

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bevel/internal/config"
	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel/engine"
	"github.com/vovakirdan/bevel/internal/metrics"
	"github.com/vovakirdan/bevel/internal/registry"
)

// Game IDs, one per difficulty preset.
const (
	IDNormal = "bevel"
	IDEasy   = "bevel_easy"
	IDHard   = "bevel_hard"
	IDFixed  = "bevel_fixed"
)

// variant ties a registry ID to its difficulty preset.
type variant struct {
	id     string
	title  string
	preset config.DifficultyPreset
}

var variants = []variant{
	{IDNormal, "Bevel", config.DifficultyNormal},
	{IDEasy, "Bevel (Easy)", config.DifficultyEasy},
	{IDHard, "Bevel (Hard)", config.DifficultyHard},
	{IDFixed, "Bevel (Fixed speed)", config.DifficultyFixed},
}

// IDs returns the registered game IDs, normal first.
func IDs() []string {
	ids := make([]string, len(variants))
	for i, v := range variants {
		ids[i] = v.id
	}
	return ids
}

// IDForPreset maps a difficulty preset to its game ID.
func IDForPreset(p config.DifficultyPreset) string {
	for _, v := range variants {
		if v.preset == p {
			return v.id
		}
	}
	return IDNormal
}

func init() {
	for _, v := range variants {
		registry.Register(v.id, func() registry.Game {
			return newVariant(v)
		})
	}
}

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath string
	recorder   *metrics.Recorder
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetMetrics sets the recorder games report to. Nil disables metrics.
func SetMetrics(r *metrics.Recorder) {
	recorder = r
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// clearBannerTicks is how long the last clear stays in the HUD (in ticks).
const clearBannerTicks = 120

// Game implements registry.Game for one difficulty variant.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset

	runtime    core.RuntimeConfig
	cfg        config.BevelConfig
	difficulty *config.DifficultyManager
	engine     *engine.Game
	anim       *animator
	log        *log.Logger
	metrics    *metrics.Recorder

	tick      uint64
	highScore int
	paused    bool
	failed    bool
	tooSmall  bool

	banner      string // Last clear, e.g. "PERFECT 2×2 +20"
	bannerTicks int
	events      []string
}

// New creates the normal-difficulty game.
func New() *Game {
	return newVariant(variants[0])
}

func newVariant(v variant) *Game {
	return &Game{id: v.id, title: v.title, preset: v.preset}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset loads configuration and starts a new engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.log = logger.WithPrefix(g.id)
	g.metrics = recorder

	cfg, err := config.LoadBevel(configPath)
	if err != nil {
		g.log.Warn("Config load failed, using defaults", "error", err)
		cfg = config.DefaultBevelConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.difficulty.UsePreset(g.preset)

	g.anim = newAnimator(timingTicks{
		block:  msToTicks(cfg.Timing.EffectMs, g.runtime.TickRate),
		spread: msToTicks(cfg.Timing.SpreadMs, g.runtime.TickRate),
		square: msToTicks(cfg.Timing.SquareMs, g.runtime.TickRate),
	})

	g.engine = engine.New(engine.Options{
		Config:   cfg.EngineConfig(runtime.Seed),
		Renderer: g.anim,
		Logger:   g.log,
		OnScore:  g.onScore,
		OnFail:   g.onFail,
		OnMove: func(dir engine.Direction) {
			g.events = append(g.events, "move:"+strings.ToLower(dir.String()))
		},
		OnRotate: func() { g.events = append(g.events, "rotate") },
		OnFlip:   func() { g.events = append(g.events, "flip") },
		OnJump:   func() { g.events = append(g.events, "jump") },
	})

	g.tick = 0
	g.paused = false
	g.failed = false
	g.banner = ""
	g.bannerTicks = 0
	g.events = nil
	g.checkScreenSize()

	g.engine.Start()
	g.metrics.GameStarted()
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// checkScreenSize checks the board and side panel fit the screen.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

// Step applies input, ages animations and advances the engine clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.failed {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return g.result()
	}

	g.tick++
	g.applyInput(in)

	g.anim.step()

	base := g.cfg.Timing.Interval()
	g.engine.SetInterval(g.difficulty.Interval(base, g.engine.Score(), int(g.tick)))
	g.engine.Advance(time.Second / time.Duration(g.runtime.TickRate))

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	return g.result()
}

// applyInput maps platform actions to engine inputs in the order they arrived.
func (g *Game) applyInput(in core.InputFrame) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			g.engine.MoveLeft()
		case core.ActionRight:
			g.engine.MoveRight()
		case core.ActionDown:
			g.engine.MoveDown()
		case core.ActionRotate:
			g.engine.Rotate()
		case core.ActionFlip:
			g.engine.Flip()
		case core.ActionDrop:
			g.engine.Jump()
		}
	}
}

// restart begins a new run in place, keeping config and high score.
func (g *Game) restart() {
	g.anim.reset()
	g.engine.Restart()
	g.tick = 0
	g.banner = ""
	g.bannerTicks = 0
	g.events = append(g.events, "restart")
	g.metrics.GameStarted()
}

func (g *Game) onScore(points int, sq engine.Square, clear engine.ClearType) {
	g.metrics.Cleared(sq.Kind.String(), clear.String(), sq.Size, points)

	label := "PERFECT"
	if clear == engine.ClearCover {
		label = "COVER"
	}
	if sq.Kind == engine.SquareBevelled {
		label = "BEVEL " + label
	}
	g.banner = fmt.Sprintf("%s %d +%d", label, sq.Size, points)
	g.bannerTicks = clearBannerTicks
	g.events = append(g.events, fmt.Sprintf("clear:%s:%s", sq.Kind, clear))
}

func (g *Game) onFail() {
	g.failed = true
	score := g.engine.Score()
	g.metrics.GameFailed(score)
	g.log.Info("Game over", "score", score, "ticks", g.tick)
	g.events = append(g.events, "fail")
}

func (g *Game) result() core.StepResult {
	var events []string
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil {
		score = g.engine.Score()
	}
	return core.GameState{
		Score:     score,
		HighScore: max(g.highScore, score),
		GameOver:  g.failed,
		Paused:    g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine, mainly for tests and snapshots.
func (g *Game) Engine() *engine.Game { return g.engine }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Soft drop | ↑: Rotate | Space: Flip | Enter: Drop | P: Pause | R: Restart | Q: Quit"
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.HighScorer = (*Game)(nil)
)
