package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/registry"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, aggregate stats and most recent runs for a
mode, "arena" when omitted.

Examples:
  arena scores
  arena scores arena_classic --limit 20
  arena scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	modeID := "arena"
	if len(args) == 1 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", modeID)
	}
	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	logger := newLogger(false)
	store := openStore(logger)
	if store == nil {
		return fmt.Errorf("scores database unavailable")
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(modeID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Wins: %d  Deepest level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Wins, stats.BestLevel)
	}

	runs, err := store.RecentRuns(modeID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-8s  %-8s  %-5s  %-6s  %-6s  %s\n", "ID", "Score", "Level", "XP Lvl", "Result", "Date")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-8s  %-8d  %-5d  %-6d  %-6s  %s\n",
			r.ID.String()[:8], r.Score, r.LevelReached, r.PlayerLevel, result,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
