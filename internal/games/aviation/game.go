// Package aviation implements the aviation career game: a plane in a fixed
// column dodges oncoming traffic. Survival accrues score every step and any
// overlap ends the run until the player restarts.
package aviation

import (
	"math/rand"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
	"github.com/vovakirdan/career-arcade/internal/games/cabinet"
	"github.com/vovakirdan/career-arcade/internal/registry"
)

// ID is the registry and catalogue identifier.
const ID = "aviation"

// CloudChar is the background scenery rune.
const CloudChar = '☁'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Rules converts a configuration into engine rules.
func Rules(cfg config.AviationConfig) engine.Rules {
	p, o := cfg.Player, cfg.Obstacles
	return engine.Rules{
		Ceiling:      cfg.Ceiling,
		StepInterval: cfg.Timing.Step(),
		SpawnPeriod:  cfg.Timing.Spawn(),
		MaxLive:      o.MaxLive,
		SpawnArea:    core.Box{MinX: o.DespawnX, MaxX: o.SpawnX, MinY: core.FieldMin, MaxY: core.FieldMax},
		Generator:    generator(o),
		Physics: engine.Physics{
			Scale:    1,
			Boundary: engine.Despawn{TrailingX: o.DespawnX},
			Hit: engine.BoxOverlap{
				PlayerLeft:  p.Hitbox.Left,
				PlayerRight: p.Hitbox.Right,
				PlayerUp:    p.Hitbox.Up,
				PlayerDown:  p.Hitbox.Down,
			},
			Scoring: engine.Scoring{PerTick: cfg.PerTick},
		},
		Control: engine.Control{
			Axis:    engine.AxisY,
			Start:   core.Vec{X: p.X, Y: p.StartY},
			Min:     core.Vec{X: p.X, Y: p.Y.Min},
			Max:     core.Vec{X: p.X, Y: p.Y.Max},
			KeyStep: p.KeyStep,
		},
	}
}

// generator spawns obstacles at the leading edge moving left.
func generator(o config.AviationObstacles) engine.Generator {
	return engine.GeneratorFunc(func(rng *rand.Rand) engine.Entity {
		y := engine.Uniform(rng, o.Y.Min, o.Y.Max)
		return engine.Entity{
			Pos:  core.Vec{X: o.SpawnX, Y: y},
			Vel:  core.Vec{X: -o.Speed},
			Kind: engine.KindNeutral,
			Tag:  engine.Pick(rng, o.Palette),
		}
	})
}

// Load reads the configuration, falling back to defaults when the file is
// missing or yields invalid rules.
func Load() (engine.Rules, cabinet.Look) {
	cfg, err := config.LoadAviation(configPath)
	if err != nil {
		cfg = config.DefaultAviationConfig()
	}
	rules := Rules(cfg)
	if rules.Validate() != nil {
		cfg = config.DefaultAviationConfig()
		rules = Rules(cfg)
	}
	return rules, look(cfg)
}

func look(cfg config.AviationConfig) cabinet.Look {
	return cabinet.Look{
		Player:       cfg.Player.Glyph,
		PlayerColor:  core.ColorWhite,
		Border:       core.ColorSky,
		Interstitial: cfg.Interstitial,
		Scenery:      drawClouds,
	}
}

// drawClouds scrolls five cloud rows at different speeds.
func drawClouds(dst *core.Screen, field core.Rect, ticks int) {
	if field.W <= 0 {
		return
	}
	for i := 0; i < 5; i++ {
		y := field.Y + (20+i*15)*(field.H-1)/100
		x := field.X + (ticks/(6+2*i)+i*field.W/5)%field.W
		dst.DrawGlyph(field, x, y, string(CloudChar), core.ColorGray)
	}
}

// New creates a new aviation game instance.
func New() *cabinet.Cabinet {
	return cabinet.New(cabinet.Variant{
		ID:      ID,
		Title:   "✈ Esquiva los Obstáculos",
		Tagline: "Usa el mouse o ↑/↓ para mover el avión. ¡Llega a 30 puntos!",
		Load:    Load,
	})
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
