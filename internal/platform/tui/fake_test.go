package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// fakeGame is a scripted registry.Game for host tests.
type fakeGame struct {
	state   core.GameState
	onClose func()
	frames  []core.InputFrame
	resets  int
}

func newFakeGame(st core.GameState) *fakeGame {
	return &fakeGame{state: st}
}

func (g *fakeGame) ID() string      { return "fake" }
func (g *fakeGame) Title() string   { return "Fake" }
func (g *fakeGame) Tagline() string { return "test game" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Mount(onClose func()) { g.onClose = onClose }

func (g *fakeGame) Close() {
	if g.state.Closed {
		return
	}
	g.state.Closed = true
	if g.onClose != nil {
		g.onClose()
	}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// Keep a copy; the host clears its frame after each step.
	cp := core.NewInputFrame()
	for a, n := range in.Steps {
		for range n {
			cp.Set(a)
		}
	}
	cp.Pointer = append(cp.Pointer, in.Pointer...)
	g.frames = append(g.frames, cp)

	switch {
	case in.Has(core.ActionClose):
		g.Close()
	case g.state.Phase == core.PhaseWon && in.Has(core.ActionConfirm):
		g.state.Phase = core.PhaseSurvey
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE "+strings.ToUpper(g.state.Phase.String()))
}

func (g *fakeGame) Field(w, h int) core.Rect { return core.NewRect(0, 0, w, h) }

func (g *fakeGame) State() core.GameState { return g.state }

// keyMsg builds a key message the way Bubble Tea reports it.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
