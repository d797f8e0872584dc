package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/audio"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, "arena" when omitted.

Controls:
  WASD/Arrows - Move
  Space       - Dash (invulnerable, kills regular enemies)
  Enter       - Start / restart
  P/Esc       - Pause
  B           - Back (when paused or after a run)
  M           - Toggle sound
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arena play
  arena play arena_classic
  arena play --difficulty hard --seed 7
  arena play --config ./my-arena.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume, 1.0 is full")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume, 1.0 is full")
}

// newAudio opens the speaker unless muted. Failure leaves the game silent.
func newAudio(logger *log.Logger) *audio.Player {
	p := audio.New(audio.Muted(flagMute), audio.Volume(flagVolume))
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return p
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "arena"
	if len(args) == 1 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", modeID)
	}

	logger := newLogger(true)
	arena.SetLogger(logger)

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := newAudio(logger)
	defer player.Close()

	logger.Info("starting", "mode", modeID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, store, runtimeConfig(), tui.WithAudio(player), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
