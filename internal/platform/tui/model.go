package tui

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/registry"
	"github.com/vovakirdan/career-arcade/internal/storage"
)

// Env carries what a game modal needs from its host.
type Env struct {
	Store     *storage.Store // nil runs without persistence
	Logger    *log.Logger    // nil keeps the modal silent
	SessionID string
	WhatsApp  string // Destination number for deep links
}

// modalSerial numbers game modals so a closed modal's pending tick is ignored.
var modalSerial atomic.Uint64

// GameModel runs one game modal: the engine loop, its overlays and the
// post-victory survey. It finishes when the game's close callback fires.
type GameModel struct {
	game     registry.Game
	serial   uint64
	screen   *core.Screen
	config   core.RuntimeConfig
	env      Env
	keys     GameKeyMap
	frame    core.InputFrame
	state    core.GameState
	survey   *SurveyModel
	link     string
	best     float64 // Highest score seen, reported on close
	recorded bool
	quitting bool
}

// NewGameModel resets and mounts game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, env Env) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	game.Mount(nil)

	return GameModel{
		game:   game,
		serial: modalSerial.Add(1),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		env:    env,
		keys:   DefaultGameKeyMap(),
		frame:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.serial)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	if m.Closed() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.survey != nil {
			s, _ := m.survey.Update(msg)
			m.survey = &s
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.game.Close()
			m.record()
			return m, tea.Quit
		}
		if m.survey != nil {
			return m.updateSurvey(msg)
		}
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.frame.Set(a)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg, m.game.Field(m.screen.Width(), m.screen.Height())); ok {
			m.frame.Point(ev.Kind, ev.Pos)
		}
		return m, nil

	case TickMsg:
		if msg.Serial != m.serial {
			return m, nil
		}
		return m.handleTick()
	}

	if m.survey != nil {
		return m.updateSurvey(msg)
	}
	return m, nil
}

// handleTick feeds the gathered input to the game and advances it.
func (m GameModel) handleTick() (GameModel, tea.Cmd) {
	res := m.game.Step(m.frame)
	m.frame.Clear()
	m.observe(res.State)

	for _, ev := range res.Events {
		if ev.Kind == core.EventCollision {
			m.logEvent("game over")
		}
	}

	if m.Closed() {
		m.record()
		return m, nil
	}

	if m.state.Phase == core.PhaseSurvey && m.survey == nil {
		s := NewSurveyModel(m.env.WhatsApp, m.screen.Width(), m.screen.Height())
		m.survey = &s
		return m, tea.Batch(s.Init(), tickCmd(m.config.TickRate, m.serial))
	}
	return m, tickCmd(m.config.TickRate, m.serial)
}

func (m GameModel) updateSurvey(msg tea.Msg) (GameModel, tea.Cmd) {
	s, cmd := m.survey.Update(msg)
	m.survey = &s
	if !s.Done() {
		return m, cmd
	}

	m.link = s.Link()
	if m.link != "" && m.env.Logger != nil {
		m.env.Logger.Info("deep link generated", "session", m.env.SessionID, "game", m.game.ID(), "link", m.link)
	}
	m.game.Close()
	m.observe(m.game.State())
	m.record()
	return m, nil
}

func (m *GameModel) observe(st core.GameState) {
	m.state = st
	if st.Score > m.best {
		m.best = st.Score
	}
}

// Outcome classifies how the modal ended.
func (m GameModel) Outcome() storage.Outcome {
	switch {
	case m.link != "":
		return storage.OutcomeClaimed
	case m.best >= m.state.Ceiling && m.state.Ceiling > 0:
		return storage.OutcomeWon
	default:
		return storage.OutcomeClosed
	}
}

// record saves the session result once.
func (m *GameModel) record() {
	if m.recorded {
		return
	}
	m.recorded = true

	r := storage.Result{
		SessionID: m.env.SessionID,
		GameID:    m.game.ID(),
		Outcome:   m.Outcome(),
		Score:     m.best,
	}
	if m.env.Store != nil {
		if _, err := m.env.Store.SaveResult(r); err != nil && m.env.Logger != nil {
			m.env.Logger.Warn("could not save result", "error", err)
		}
	}
	if m.env.Logger != nil {
		m.env.Logger.Info("result", "session", r.SessionID, "game", r.GameID, "outcome", r.Outcome, "score", r.Score)
	}
}

func (m GameModel) logEvent(msg string) {
	if m.env.Logger != nil {
		m.env.Logger.Debug(msg, "session", m.env.SessionID, "game", m.game.ID(), "score", m.state.Score)
	}
}

// Closed reports whether the game's close callback has fired.
func (m GameModel) Closed() bool { return m.state.Closed }

// IsQuitting reports whether the user asked to leave the program.
func (m GameModel) IsQuitting() bool { return m.quitting }

// Link returns the deep link produced by the survey, if any.
func (m GameModel) Link() string { return m.link }

// State returns the last observed session summary.
func (m GameModel) State() core.GameState { return m.state }

// View renders the game, or the survey once the prize is claimed.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.survey != nil && !m.survey.Done() {
		return m.survey.View()
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// gameProgram wraps a GameModel as a standalone tea.Model for `careers play`.
type gameProgram struct {
	GameModel
}

func (p gameProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	gm, cmd := p.GameModel.Update(msg)
	p.GameModel = gm
	if gm.Closed() {
		return p, tea.Quit
	}
	return p, cmd
}

// Run plays a single game until it closes and returns the final model.
func Run(game registry.Game, cfg core.RuntimeConfig, env Env) (GameModel, error) {
	p := tea.NewProgram(
		gameProgram{NewGameModel(game, cfg, env)},
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover moves the crosshair
	)

	final, err := p.Run()
	if err != nil {
		return GameModel{}, err
	}
	gp, _ := final.(gameProgram)
	return gp.GameModel, nil
}
