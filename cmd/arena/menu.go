package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start with a mode picker. After a run you return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play
  Tab          - Scores and recent runs
  Q            - Quit

Examples:
  arena menu
  arena menu --fps 30
  arena menu --db postgres://arena@localhost/arena?sslmode=disable`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger(true)
	arena.SetLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := newAudio(logger)
	defer player.Close()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case res.ModeID != "":
			game, err := registry.Create(res.ModeID)
			if err != nil {
				return err
			}
			runCfg := cfg
			if runCfg.Seed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, runCfg, tui.WithAudio(player), tui.WithLogger(logger)); err != nil {
				return fmt.Errorf("running game: %w", err)
			}
		}
	}
}
