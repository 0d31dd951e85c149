package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/platform/tui"
)

var flagCareers string

var carouselCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Browse careers and play interactively",
	Long: `Shows the career carousel. Slides rotate every few seconds until a
game is opened; Enter plays the career's game, Tab shows results.

Examples:
  careers carousel
  careers carousel --careers ./careers.yaml`,
	Args: cobra.NoArgs,
	RunE: runCarousel,
}

func init() {
	carouselCmd.Flags().StringVar(&flagCareers, "careers", "", "Path to a custom career catalogue YAML")
}

func newSessionID() string {
	return uuid.NewString()
}

func runCarousel(cmd *cobra.Command, args []string) error {
	careers, err := config.LoadCareers(flagCareers)
	if err != nil {
		return err
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

	sessionID := newSessionID()
	links, err := tui.RunSession(careers, cfg, tui.Env{Store: store, SessionID: sessionID, WhatsApp: flagWhatsApp})
	if err != nil {
		return fmt.Errorf("running carousel: %w", err)
	}

	logger.Debug("session ended", "session", sessionID, "claims", len(links))
	if len(links) > 0 {
		fmt.Println("Abre este enlace para enviar tus datos por WhatsApp:")
		for _, link := range links {
			fmt.Println(link)
		}
	}
	return nil
}
