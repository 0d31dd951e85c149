package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/games/aviation"
	"github.com/vovakirdan/career-arcade/internal/games/bartender"
	"github.com/vovakirdan/career-arcade/internal/games/chef"
	"github.com/vovakirdan/career-arcade/internal/platform/tui"
	"github.com/vovakirdan/career-arcade/internal/registry"
	"github.com/vovakirdan/career-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified career game.

Controls:
  Arrows/WASD  - Move (aviation: up/down, chef: left/right)
  Mouse        - Move; click to pop bottles (bartender)
  Enter        - Continue at the halfway message, claim the prize
  N            - Leave at the halfway message
  R            - Restart after a crash
  Q/Esc        - Close the game
  Ctrl+C       - Quit

Examples:
  careers play aviation
  careers play chef --seed 42
  careers play bartender --config ./my-bartender.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyConfigPath checks a custom variant config and hands it to the game.
func applyConfigPath(gameID, path string) error {
	if path == "" {
		return nil
	}
	switch gameID {
	case aviation.ID:
		if _, err := config.LoadAviation(path); err != nil {
			return err
		}
		aviation.SetConfigPath(path)
	case chef.ID:
		if _, err := config.LoadChef(path); err != nil {
			return err
		}
		chef.SetConfigPath(path)
	case bartender.ID:
		if _, err := config.LoadBartender(path); err != nil {
			return err
		}
		bartender.SetConfigPath(path)
	}
	return nil
}

// terminalSize returns the current terminal size or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the results database, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'careers list' to see available games", gameID)
	}
	if err := applyConfigPath(gameID, flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Stay silent while the alternate screen is up.
	final, err := tui.Run(game, cfg, tui.Env{Store: store, SessionID: newSessionID(), WhatsApp: flagWhatsApp})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := final.State()
	logger.Info("game closed", "game", gameID, "outcome", final.Outcome(), "score", int(st.Score))
	if link := final.Link(); link != "" {
		fmt.Println("Abre este enlace para enviar tus datos por WhatsApp:")
		fmt.Println(link)
	}
	return nil
}
