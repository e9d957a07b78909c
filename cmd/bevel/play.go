package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bevel/internal/config"
	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel"
	"github.com/vovakirdan/bevel/internal/platform/tui"
	"github.com/vovakirdan/bevel/internal/registry"
	"github.com/vovakirdan/bevel/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing bevel.

Controls:
  Left/Right, A/D  - Move the block
  Down, S          - Soft drop one row
  Up, W            - Rotate
  Space, F         - Flip
  Enter, X         - Jump to the landing row
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, speeds up to max
  normal - Start at 30% difficulty, speeds up to max
  hard   - Start at 70% difficulty, speeds up to max
  fixed  - No speed-up, stays at the configured interval

Examples:
  bevel play
  bevel play bevel_hard
  bevel play --difficulty easy
  bevel play --seed 42 --config ./my-bevel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := bevel.IDNormal
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gameID = bevel.IDForPreset(preset)
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bevel list' to see available games.")
		os.Exit(1)
	}

	bevel.SetConfigPath(flagConfig)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	restoreLog := quietDuringTUI()
	runErr := tui.Run(game, store, cfg, logger)
	restoreLog()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
