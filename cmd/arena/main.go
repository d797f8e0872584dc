// arena is a real-time dungeon arena played in the terminal.
//
// Usage:
//
//	arena play [mode]        - Play a mode (default: arena)
//	arena menu               - Pick a mode interactively
//	arena list               - List available modes
//	arena scores [mode]      - Show high scores and recent runs
//	arena map                - Print a generated level
//	arena serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Simulation tick rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <dsn>          - SQLite path or postgres:// URL (default: ~/.arena/scores.db)
//	--config <path>     - Arena config YAML
//	--difficulty <name> - easy, normal, hard or fixed
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDSN        string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - a real-time dungeon crawler in your terminal",
	Long: `Arena is a top-down action game played in the terminal. Clear
procedurally generated dungeons, dash through enemies and defeat the boss
on the final level.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View high scores and recent runs
  map      - Print a generated level
  serve    - Start SSH server for remote play

Examples:
  arena play
  arena play arena_classic --difficulty hard
  arena scores
  arena map --seed 42 --level 3
  arena serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		arena.SetConfigPath(flagConfig)
		arena.SetDifficultyPreset(preset)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Simulation tick rate")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDSN, "db", "~/.arena/scores.db", "Scores database: SQLite path or postgres:// URL")
	pf.StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so they log to ~/.arena/arena.log instead of stderr.
func newLogger(interactive bool) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	out := os.Stderr
	if interactive {
		out = nil
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			dir := filepath.Join(home, ".arena")
			if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
				//#nosec G304 -- fixed path under the user's home
				f, openErr := os.OpenFile(filepath.Join(dir, "arena.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if openErr == nil {
					out = f
				}
			}
		}
		if out == nil {
			return log.New(io.Discard)
		}
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arena",
	})
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score store, returning nil when it is unavailable so
// the game can still be played.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDSN)
	if err != nil {
		logger.Warn("could not open scores database", "dsn", flagDSN, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
