// Package cabinet adapts the shared engine to the registry.Game interface.
// Each career variant supplies its rules and look; the cabinet owns the
// session lifecycle, HUD and phase overlays.
package cabinet

import (
	"fmt"
	"time"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
)

// Look describes how a variant is drawn.
type Look struct {
	Player       string
	PlayerColor  core.Color
	Effect       string
	Border       core.Color
	Interstitial config.Message

	// EntityColor picks a color per entity; nil draws everything in the default color.
	EntityColor func(e engine.Entity) core.Color

	// Scenery draws static or animated background inside the field.
	Scenery func(dst *core.Screen, field core.Rect, ticks int)
}

// Variant is everything a career game contributes.
type Variant struct {
	ID      string
	Title   string
	Tagline string

	// Load returns validated rules and the matching look.
	Load func() (engine.Rules, Look)
}

// Cabinet runs one variant behind the registry.Game interface.
type Cabinet struct {
	v       Variant
	eng     *engine.Engine
	look    Look
	runtime core.RuntimeConfig
	frames  int
}

// New creates an idle cabinet. Reset must be called before Mount.
func New(v Variant) *Cabinet {
	return &Cabinet{v: v}
}

// ID returns the unique identifier for this game.
func (c *Cabinet) ID() string { return c.v.ID }

// Title returns the display name for this game.
func (c *Cabinet) Title() string { return c.v.Title }

// Tagline returns the one-line instructions.
func (c *Cabinet) Tagline() string { return c.v.Tagline }

// Reset builds a fresh engine from the variant's current configuration.
// Any previous session is unmounted without invoking its close callback.
func (c *Cabinet) Reset(rt core.RuntimeConfig) {
	if c.eng != nil {
		c.eng.Unmount()
	}
	c.runtime = rt
	c.frames = 0

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules, look := c.v.Load()
	eng, err := engine.New(rules, engine.WithClock(rt.ClockOrSystem()), engine.WithSeed(seed))
	if err != nil {
		panic(fmt.Sprintf("cabinet: %s: %v", c.v.ID, err))
	}
	c.eng = eng
	c.look = look
}

// Mount starts the session.
func (c *Cabinet) Mount(onClose func()) {
	c.ensure()
	c.eng.Mount(onClose)
}

// Close leaves the game.
func (c *Cabinet) Close() {
	if c.eng != nil {
		c.eng.Close()
	}
}

// Step applies input, then advances the engine by one host tick.
func (c *Cabinet) Step(in core.InputFrame) core.StepResult {
	c.ensure()
	c.frames++
	c.eng.Handle(in)
	c.eng.Advance()
	return core.StepResult{State: c.eng.State(), Events: c.eng.Drain()}
}

// State returns the current session summary.
func (c *Cabinet) State() core.GameState {
	c.ensure()
	return c.eng.State()
}

// Engine exposes the running engine.
func (c *Cabinet) Engine() *engine.Engine {
	c.ensure()
	return c.eng
}

// Interstitial returns the variant's halfway message.
func (c *Cabinet) Interstitial() config.Message {
	return c.look.Interstitial
}

func (c *Cabinet) ensure() {
	if c.eng == nil {
		c.Reset(core.DefaultConfig())
	}
}

// Field returns the play-field rectangle: inside the border, below the HUD
// row and above the tagline row.
func (c *Cabinet) Field(screenW, screenH int) core.Rect {
	return core.NewRect(1, 2, core.Max(screenW-2, 1), core.Max(screenH-4, 1))
}
