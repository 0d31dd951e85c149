// Package chef implements the chef career game: a pan along the bottom
// edge catches falling ingredients and must avoid the trash. Running out
// of lives restarts the session from zero.
package chef

import (
	"math/rand"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
	"github.com/vovakirdan/career-arcade/internal/games/cabinet"
	"github.com/vovakirdan/career-arcade/internal/registry"
)

// ID is the registry and catalogue identifier.
const ID = "chef"

// CounterChar draws the kitchen counter under the pan.
const CounterChar = '▔'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Rules converts a configuration into engine rules.
func Rules(cfg config.ChefConfig) engine.Rules {
	p, it := cfg.Player, cfg.Items
	return engine.Rules{
		Ceiling:      cfg.Ceiling,
		Lives:        cfg.Lives,
		StepInterval: cfg.Timing.Step(),
		SpawnPeriod:  cfg.Timing.Spawn(),
		MaxLive:      it.MaxLive,
		SpawnArea:    core.Box{MinX: it.X.Min, MaxX: it.X.Max, MinY: it.SpawnY, MaxY: it.FloorY},
		Generator:    generator(it),
		Physics: engine.Physics{
			Scale:    it.Scale,
			Boundary: engine.FallThrough{FloorY: it.FloorY},
			Hit:      engine.CatchWindow{MinY: it.CatchY.Min, MaxY: it.CatchY.Max, Reach: p.Reach},
			Scoring:  engine.Scoring{PerHit: 1, PerPenalty: 1},
		},
		Control: engine.Control{
			Axis:    engine.AxisX,
			Start:   core.Vec{X: p.StartX, Y: p.Y},
			Min:     core.Vec{X: p.X.Min, Y: p.Y},
			Max:     core.Vec{X: p.X.Max, Y: p.Y},
			KeyStep: p.KeyStep,
		},
	}
}

// generator drops a good or bad item from above the field.
func generator(it config.ChefItems) engine.Generator {
	return engine.GeneratorFunc(func(rng *rand.Rand) engine.Entity {
		kind, palette := engine.KindBad, it.Bad
		if rng.Float64() >= 1-it.GoodRatio {
			kind, palette = engine.KindGood, it.Good
		}
		tag := engine.Pick(rng, palette)
		return engine.Entity{
			Pos:  core.Vec{X: engine.Uniform(rng, it.X.Min, it.X.Max), Y: it.SpawnY},
			Vel:  core.Vec{Y: engine.Uniform(rng, it.Speed.Min, it.Speed.Max)},
			Kind: kind,
			Tag:  tag,
		}
	})
}

// Load reads the configuration, falling back to defaults when the file is
// missing or yields invalid rules.
func Load() (engine.Rules, cabinet.Look) {
	cfg, err := config.LoadChef(configPath)
	if err != nil {
		cfg = config.DefaultChefConfig()
	}
	rules := Rules(cfg)
	if rules.Validate() != nil {
		cfg = config.DefaultChefConfig()
		rules = Rules(cfg)
	}
	return rules, look(cfg)
}

func look(cfg config.ChefConfig) cabinet.Look {
	return cabinet.Look{
		Player:       cfg.Player.Glyph,
		PlayerColor:  core.ColorOrange,
		Border:       core.ColorOrange,
		Interstitial: cfg.Interstitial,
		EntityColor: func(e engine.Entity) core.Color {
			if e.Kind == engine.KindBad {
				return core.ColorRed
			}
			return core.ColorDefault
		},
		Scenery: drawCounter,
	}
}

// drawCounter draws the counter line below the catch band.
func drawCounter(dst *core.Screen, field core.Rect, _ int) {
	_, y := field.ToCell(core.Vec{Y: 96})
	if y > field.Y && y < field.Bottom() {
		dst.DrawHLine(field.X, y, field.W, CounterChar, core.ColorBrown)
	}
}

// New creates a new chef game instance.
func New() *cabinet.Cabinet {
	return cabinet.New(cabinet.Variant{
		ID:      ID,
		Title:   "🍳 ¡Atrapa los Ingredientes!",
		Tagline: "Mueve el sartén para atrapar ingredientes. ¡Evita la basura! Llega a 30 puntos.",
		Load:    Load,
	})
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
