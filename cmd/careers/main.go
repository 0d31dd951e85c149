// careers is a terminal career promo: a carousel of career cards, each
// opening a short arcade game that ends with a prize claim over WhatsApp.
//
// Usage:
//
//	careers list               - List available games
//	careers play <game>        - Play a game directly
//	careers carousel           - Browse careers and play interactively
//	careers serve              - Start SSH server for remote play
//	careers results [game]     - Show session results
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.careers/results.db)
//	--log-level <level>  - debug, info, warn or error
//	--whatsapp <number>  - Destination number for prize claims
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/career-arcade/internal/survey"

	// Import games to register them
	_ "github.com/vovakirdan/career-arcade/internal/games/aviation"
	_ "github.com/vovakirdan/career-arcade/internal/games/bartender"
	_ "github.com/vovakirdan/career-arcade/internal/games/chef"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagWhatsApp string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "careers",
	Short: "Career arcade - play a career mini-game, win, claim your prize",
	Long: `Career arcade shows a carousel of careers. Each career opens a
short game: reach 30 points to win and leave your contact details to
claim the prize over WhatsApp.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  carousel  - Browse careers interactively
  serve     - Start SSH server for remote play
  results   - View session results

Examples:
  careers list
  careers play chef
  careers carousel
  careers serve --ssh :2222
  careers results bartender`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.careers/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagWhatsApp, "whatsapp", survey.DefaultNumber, "WhatsApp number prize claims are sent to")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(carouselCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}

// newLogger builds the command-line logger at the given level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "careers",
		Level:           lvl,
	}), nil
}
