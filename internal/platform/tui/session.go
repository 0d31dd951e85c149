package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/registry"
)

// SessionModel manages the full flow: carousel -> game -> carousel,
// with the results board reachable from the carousel.
// This is the top-level model for `careers carousel` and SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	env      Env
	now      func() time.Time
	carousel CarouselModel
	game     *GameModel
	results  *ResultsModel
	links    []string // Deep links produced during the session
	quitting bool
}

// NewSessionModel creates a session model showing the career carousel.
func NewSessionModel(careers config.CareersConfig, cfg core.RuntimeConfig, env Env) SessionModel {
	clock := cfg.ClockOrSystem()
	return SessionModel{
		config:   cfg,
		env:      env,
		now:      clock.Now,
		carousel: NewCarouselModel(careers, cfg.ScreenW, cfg.ScreenH, clock.Now()),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.carousel.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	// The carousel keeps polling its deadline while a game is open.
	if rm, ok := msg.(RotateMsg); ok {
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(rm)
		return m, cmd
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.results != nil:
		return m.updateResults(msg)
	}
	return m.updateCarousel(msg)
}

// updateCarousel handles updates when the carousel is showing.
func (m SessionModel) updateCarousel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)

	if m.carousel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.carousel.WantsResults() {
		m.carousel.ResultsShown()
		rm := NewResultsModel(m.env.Store, m.carousel.Carousel().Current().Game, m.config.ScreenW, m.config.ScreenH)
		m.results = &rm
		return m, rm.Init()
	}

	if id := m.carousel.Selected(); id != "" {
		game, err := registry.Create(id)
		if err != nil {
			// Shouldn't happen since the carousel only shows registered games
			m.carousel.Open()
			m.carousel.Return(m.now())
			return m, cmd
		}

		m.carousel.Open()
		cfg := m.config
		cfg.Seed = 0
		gm := NewGameModel(game, cfg, m.env)
		m.game = &gm
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game modal is open.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	gm, cmd := m.game.Update(msg)
	m.game = &gm

	if gm.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if gm.Closed() {
		if link := gm.Link(); link != "" {
			m.links = append(m.links, link)
		}
		m.game = nil
		m.carousel.Return(m.now())
		return m, nil
	}

	return m, cmd
}

// updateResults handles updates while the results board is showing.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	rm, cmd := m.results.Update(msg)
	m.results = &rm

	if rm.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if rm.IsGoingBack() {
		m.results = nil
		return m, nil
	}
	return m, cmd
}

// InGame reports whether a game modal is open.
func (m SessionModel) InGame() bool { return m.game != nil }

// Links returns the deep links produced during the session.
func (m SessionModel) Links() []string { return m.links }

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.results != nil:
		return m.results.View()
	}
	return m.carousel.View()
}

// RunSession runs the carousel locally and returns the deep links produced.
func RunSession(careers config.CareersConfig, cfg core.RuntimeConfig, env Env) ([]string, error) {
	p := tea.NewProgram(
		NewSessionModel(careers, cfg, env),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	sm, _ := final.(SessionModel)
	return sm.Links(), nil
}
