// Package bartender implements the bartender career game: bottles bounce
// around the bar and each click within reach of one pops it.
package bartender

import (
	"math/rand"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
	"github.com/vovakirdan/career-arcade/internal/games/cabinet"
	"github.com/vovakirdan/career-arcade/internal/registry"
)

// ID is the registry and catalogue identifier.
const ID = "bartender"

// Visual characters for rendering
const (
	ShelfChar   = '═'
	CounterChar = '▄'
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Rules converts a configuration into engine rules.
func Rules(cfg config.BartenderConfig) engine.Rules {
	c, t := cfg.Crosshair, cfg.Targets
	return engine.Rules{
		Ceiling:      cfg.Ceiling,
		StepInterval: cfg.Timing.Step(),
		SpawnPeriod:  cfg.Timing.Spawn(),
		EffectTTL:    cfg.Timing.Effect(),
		MaxLive:      t.MaxLive,
		SpawnArea:    core.Box{MinX: t.BoundsX.Min, MaxX: t.BoundsX.Max, MinY: t.BoundsY.Min, MaxY: t.BoundsY.Max},
		Generator:    generator(t),
		Physics: engine.Physics{
			Scale: t.Scale,
			Boundary: engine.Reflect{
				Min: core.Vec{X: t.BoundsX.Min, Y: t.BoundsY.Min},
				Max: core.Vec{X: t.BoundsX.Max, Y: t.BoundsY.Max},
			},
			Hit:     engine.NoContact{},
			Scoring: engine.Scoring{PerHit: 1},
		},
		PopRadius: c.PopRadius,
		Control: engine.Control{
			Axis:    engine.AxisXY,
			Start:   core.Vec{X: c.StartX, Y: c.StartY},
			Min:     core.Vec{X: c.Bounds.Min, Y: c.Bounds.Min},
			Max:     core.Vec{X: c.Bounds.Max, Y: c.Bounds.Max},
			KeyStep: c.KeyStep,
		},
	}
}

// generator launches a bottle upward from a random side.
func generator(t config.BartenderTargets) engine.Generator {
	return engine.GeneratorFunc(func(rng *rand.Rand) engine.Entity {
		x, dir := t.RightX, -1.0
		if rng.Float64() > 0.5 {
			x, dir = t.LeftX, 1.0
		}
		y := engine.Uniform(rng, t.Y.Min, t.Y.Max)
		tag := engine.Pick(rng, t.Palette)
		vx := dir * engine.Uniform(rng, t.SpeedX.Min, t.SpeedX.Max)
		vy := -engine.Uniform(rng, t.SpeedY.Min, t.SpeedY.Max)
		return engine.Entity{
			Pos:  core.Vec{X: x, Y: y},
			Vel:  core.Vec{X: vx, Y: vy},
			Kind: engine.KindNeutral,
			Tag:  tag,
		}
	})
}

// Load reads the configuration, falling back to defaults when the file is
// missing or yields invalid rules.
func Load() (engine.Rules, cabinet.Look) {
	cfg, err := config.LoadBartender(configPath)
	if err != nil {
		cfg = config.DefaultBartenderConfig()
	}
	rules := Rules(cfg)
	if rules.Validate() != nil {
		cfg = config.DefaultBartenderConfig()
		rules = Rules(cfg)
	}
	return rules, look(cfg)
}

func look(cfg config.BartenderConfig) cabinet.Look {
	return cabinet.Look{
		Player:       cfg.Crosshair.Glyph,
		PlayerColor:  core.ColorBrightRed,
		Effect:       cfg.Targets.EffectGlyph,
		Border:       core.ColorPurple,
		Interstitial: cfg.Interstitial,
		Scenery:      drawBar,
	}
}

// drawBar draws two shelves and the counter.
func drawBar(dst *core.Screen, field core.Rect, _ int) {
	for _, pct := range []float64{20, 40} {
		_, y := field.ToCell(core.Vec{Y: pct})
		dst.DrawHLine(field.X, y, field.W, ShelfChar, core.ColorBrown)
	}
	_, top := field.ToCell(core.Vec{Y: 90})
	for y := top; y < field.Bottom(); y++ {
		dst.DrawHLine(field.X, y, field.W, CounterChar, core.ColorBrown)
	}
}

// New creates a new bartender game instance.
func New() *cabinet.Cabinet {
	return cabinet.New(cabinet.Variant{
		ID:      ID,
		Title:   "🍷 ¡Revienta las Botellas!",
		Tagline: "Haz clic en las botellas para reventarlas. ¡Llega a 30 puntos!",
		Load:    Load,
	})
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
