package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/career-arcade/internal/platform/tui"
	"github.com/vovakirdan/career-arcade/internal/registry"
	"github.com/vovakirdan/career-arcade/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show session results",
	Long: `Display the best sessions for a game, or a summary for every game
when no game is given.

Examples:
  careers results
  careers results chef
  careers results chef --limit 20
  careers results --interactive
  careers results aviation --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive results board")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's results")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runResults(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q; run 'careers list' to see available games", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		w, h := terminalSize()
		return tui.RunResults(store, gameID, w, h)
	case flagClear:
		if gameID == "" {
			return fmt.Errorf("--clear needs a game")
		}
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		logger.Info("results cleared", "game", gameID)
		return nil
	case gameID == "":
		return printSummary(store)
	}
	return printResults(store, gameID)
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Results by game")
	fmt.Println()
	fmt.Printf("  %-10s  %6s  %6s  %6s  %5s  %s\n", "Game", "Plays", "Wins", "Claims", "Best", "Last played")
	fmt.Printf("  %-10s  %6s  %6s  %6s  %5s  %s\n", "----", "-----", "----", "------", "----", "-----------")

	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %6d  %6d  %6d  %5d  %s\n", g.ID, 0, 0, 0, 0, "-")
			continue
		}
		fmt.Printf("  %-10s  %6d  %6d  %6d  %5d  %s\n",
			g.ID, s.Plays, s.Wins, s.Claims, int(math.Floor(s.BestScore)), s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printResults(store *storage.Store, gameID string) error {
	results, err := store.TopResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	info, _ := registry.Info(gameID)
	fmt.Printf("Results - %s\n", info.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'careers play %s' to set the first one!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "-------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, int(math.Floor(r.Score)), r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err == nil && stats.Plays > 0 {
		fmt.Println()
		fmt.Printf("Plays: %d  Win rate: %.0f%%  Claims: %d  Average: %.1f\n",
			stats.Plays, stats.WinRate()*100, stats.Claims, stats.AvgScore)
	}
	return nil
}
