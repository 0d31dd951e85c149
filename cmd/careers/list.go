package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/career-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all career games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, runewidth.StringWidth(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %s  %s\n", maxIDLen, "ID", runewidth.FillRight("Title", maxTitleLen), "How to play")
	fmt.Printf("  %-*s  %s  %s\n", maxIDLen, "--", runewidth.FillRight("-----", maxTitleLen), "-----------")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s  %s\n", maxIDLen, g.ID, runewidth.FillRight(g.Title, maxTitleLen), g.Tagline)
	}

	fmt.Println()
	fmt.Println("Run 'careers play <id>' to play a game.")
}
