package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bevel/internal/games/bevel"
	"github.com/vovakirdan/bevel/internal/platform/tui"
	"github.com/vovakirdan/bevel/internal/registry"
	"github.com/vovakirdan/bevel/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a bevel variant, plus the all-time
best across every variant.

Examples:
  bevel scores
  bevel scores bevel_hard
  bevel scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagScoresTUI bool

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse scores in the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := bevel.IDNormal
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bevel list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bevel play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, shortRun(entry.RunID), dateStr)
		}
	}

	fmt.Println()
	if best, err := store.HistoryMaxScore(); err == nil {
		fmt.Printf("All-time best: %d\n", best)
	} else {
		logger.Warn("could not read all-time best", "error", err)
	}
}

// shortRun trims a run UUID to its first group.
func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
