package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bevel/internal/core"
	"github.com/vovakirdan/bevel/internal/games/bevel"
	"github.com/vovakirdan/bevel/internal/platform/tui"
	"github.com/vovakirdan/bevel/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start bevel with a difficulty picker menu",
	Long: `Start bevel in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Esc from a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bevel menu
  bevel menu --fps 30
  bevel menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	bevel.SetConfigPath(flagConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	restoreLog := quietDuringTUI()
	runErr := tui.RunMenu(store, cfg, logger)
	restoreLog()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}
