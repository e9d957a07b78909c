// bevel is a falling triangle-block puzzle for the terminal.
//
// Usage:
//
//	bevel play [game]        - Play a game (bevel, bevel_easy, bevel_hard, bevel_fixed)
//	bevel menu               - Start menu to pick a difficulty interactively
//	bevel list               - List available game variants
//	bevel serve              - Start SSH server for remote play
//	bevel scores [game]      - Show high scores
//	bevel config             - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.bevel/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
//	--log-file <path>    - Where logs go while the TUI is up (default: ~/.bevel/bevel.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bevel/internal/games/bevel"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger writes to stderr until a TUI starts; play and menu move it to
// --log-file for as long as the alt-screen is up.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bevel",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bevel",
	Short: "Bevel - a falling triangle-block puzzle for your terminal",
	Long: `Bevel drops blocks made of right-triangle halves onto a board.
Complete filled squares, or bevelled diamonds, to clear them for points.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty picker
  list     - Show all game variants
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  bevel play
  bevel play --difficulty hard
  bevel menu
  bevel serve --ssh :2222 --metrics :9090
  bevel scores bevel_hard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		bevel.SetLogger(logger)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bevel/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bevel/bevel.log", "Log file used while the TUI is running (empty = discard)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// redirectLog points l at the file at path until the returned func is
// called, which restores w. An empty path discards output instead.
func redirectLog(l *log.Logger, path string, w io.Writer) (restore func(), err error) {
	restore = func() { l.SetOutput(w) }
	if path == "" {
		l.SetOutput(io.Discard)
		return restore, nil
	}

	if path[0] == '~' {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("log: cannot expand home directory: %w", homeErr)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	l.SetOutput(f)
	return func() {
		l.SetOutput(w)
		f.Close()
	}, nil
}

// quietDuringTUI moves the shared logger off the terminal. When the log file
// cannot be opened the output is discarded, never written over the frame.
func quietDuringTUI() func() {
	restore, err := redirectLog(logger, flagLogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logs are discarded while playing\n", err)
		restore, _ = redirectLog(logger, "", os.Stderr)
	}
	return restore
}
