package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

var (
	flagMapLevel    int
	flagMapStrategy string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print a generated level",
	Long: `Generate a level the way a run would and print its tile grid,
'#' for walls and '.' for floor, followed by a spawn summary.

Examples:
  arena map --seed 42
  arena map --seed 42 --level 5 --strategy box`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapLevel, "level", 1, "Dungeon level to generate")
	mapCmd.Flags().StringVar(&flagMapStrategy, "strategy", "", "Map strategy: cave or box (default from config)")
}

func runMap(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyArenaPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	opts := []arena.Option{arena.WithConfig(cfg), arena.WithLogger(newLogger(false))}
	if flagMapStrategy != "" {
		st, err := arena.ParseStrategy(flagMapStrategy)
		if err != nil {
			return err
		}
		opts = append(opts, arena.WithStrategy(st))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := arena.New(opts...)
	rc := core.DefaultConfig()
	rc.Seed = seed
	s.Reset(rc)
	if flagMapLevel > 1 {
		s.LoadLevel(flagMapLevel)
	}

	sum := s.Summary()
	fmt.Print(s.Grid().String())
	fmt.Println()
	fmt.Printf("seed=%d level=%d strategy=%s size=%dx%d floor=%d\n",
		seed, sum.Level, sum.MapStrategy, sum.GridW, sum.GridH, sum.FloorTiles)
	fmt.Printf("enemies=%d pickups=%d powerups=%d boss=%t spawned=%d/%d\n",
		sum.Enemies, sum.Pickups, sum.PowerUps, sum.HasBoss, sum.Spawned, sum.Requested)
	return nil
}
