// Package config provides YAML-based configuration for the career games
// and the career catalogue shown by the carousel.
package config

import "time"

// Range is a closed interval used for spawn positions and speeds.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Extents are hitbox distances from a centre point.
type Extents struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Up    float64 `yaml:"up"`
	Down  float64 `yaml:"down"`
}

// Message is the title and body of the halfway interstitial.
type Message struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Timing holds the millisecond timings of a variant.
type Timing struct {
	StepMS   int `yaml:"step_ms"`   // Minimum time between simulation steps
	SpawnMS  int `yaml:"spawn_ms"`  // Spawn timer period
	EffectMS int `yaml:"effect_ms"` // Hit effect display time, pop games only
}

// Step returns the step interval.
func (t Timing) Step() time.Duration { return time.Duration(t.StepMS) * time.Millisecond }

// Spawn returns the spawn period.
func (t Timing) Spawn() time.Duration { return time.Duration(t.SpawnMS) * time.Millisecond }

// Effect returns the hit effect lifetime.
func (t Timing) Effect() time.Duration { return time.Duration(t.EffectMS) * time.Millisecond }

// AviationConfig contains all configuration for the aviation dodge game.
type AviationConfig struct {
	Ceiling      float64           `yaml:"ceiling"`
	Timing       Timing            `yaml:"timing"`
	Player       AviationPlayer    `yaml:"player"`
	Obstacles    AviationObstacles `yaml:"obstacles"`
	PerTick      float64           `yaml:"survival_per_tick"`
	Interstitial Message           `yaml:"interstitial"`
}

// AviationPlayer defines the plane's fixed column and vertical range.
type AviationPlayer struct {
	X       float64 `yaml:"x"`
	StartY  float64 `yaml:"start_y"`
	Y       Range   `yaml:"y"`
	KeyStep float64 `yaml:"key_step"`
	Hitbox  Extents `yaml:"hitbox"`
	Glyph   string  `yaml:"glyph"`
}

// AviationObstacles defines the side-scrolling obstacles.
type AviationObstacles struct {
	MaxLive  int      `yaml:"max_live"`
	SpawnX   float64  `yaml:"spawn_x"`
	Y        Range    `yaml:"y"`
	Speed    float64  `yaml:"speed"` // Leftward distance per step
	DespawnX float64  `yaml:"despawn_x"`
	Palette  []string `yaml:"palette"`
}

// ChefConfig contains all configuration for the chef catch game.
type ChefConfig struct {
	Ceiling      float64    `yaml:"ceiling"`
	Lives        int        `yaml:"lives"`
	Timing       Timing     `yaml:"timing"`
	Player       ChefPlayer `yaml:"player"`
	Items        ChefItems  `yaml:"items"`
	Interstitial Message    `yaml:"interstitial"`
}

// ChefPlayer defines the paddle along the bottom edge.
type ChefPlayer struct {
	StartX  float64 `yaml:"start_x"`
	X       Range   `yaml:"x"`
	Y       float64 `yaml:"y"`
	KeyStep float64 `yaml:"key_step"`
	Reach   float64 `yaml:"reach"` // Catch distance from the paddle centre
	Glyph   string  `yaml:"glyph"`
}

// ChefItems defines the falling good and bad items.
type ChefItems struct {
	MaxLive   int      `yaml:"max_live"`
	X         Range    `yaml:"x"`
	SpawnY    float64  `yaml:"spawn_y"`
	Speed     Range    `yaml:"speed"`
	Scale     float64  `yaml:"scale"`
	GoodRatio float64  `yaml:"good_ratio"`
	CatchY    Range    `yaml:"catch_y"` // Min inclusive, max exclusive
	FloorY    float64  `yaml:"floor_y"`
	Good      []string `yaml:"good"`
	Bad       []string `yaml:"bad"`
}

// BartenderConfig contains all configuration for the bartender pop game.
type BartenderConfig struct {
	Ceiling      float64            `yaml:"ceiling"`
	Timing       Timing             `yaml:"timing"`
	Crosshair    BartenderCrosshair `yaml:"crosshair"`
	Targets      BartenderTargets   `yaml:"targets"`
	Interstitial Message            `yaml:"interstitial"`
}

// BartenderCrosshair defines the pointer-driven crosshair.
type BartenderCrosshair struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Bounds    Range   `yaml:"bounds"` // Both axes
	KeyStep   float64 `yaml:"key_step"`
	PopRadius float64 `yaml:"pop_radius"`
	Glyph     string  `yaml:"glyph"`
}

// BartenderTargets defines the bouncing bottles.
type BartenderTargets struct {
	MaxLive     int      `yaml:"max_live"`
	LeftX       float64  `yaml:"left_x"`
	RightX      float64  `yaml:"right_x"`
	Y           Range    `yaml:"y"`
	SpeedX      Range    `yaml:"speed_x"` // Magnitude; sign follows the spawn side
	SpeedY      Range    `yaml:"speed_y"` // Upward magnitude
	Scale       float64  `yaml:"scale"`
	BoundsX     Range    `yaml:"bounds_x"`
	BoundsY     Range    `yaml:"bounds_y"`
	Palette     []string `yaml:"palette"`
	EffectGlyph string   `yaml:"effect_glyph"`
}

// CareersConfig is the carousel catalogue.
type CareersConfig struct {
	RotateMS int      `yaml:"rotate_ms"`
	Careers  []Career `yaml:"careers"`
}

// Rotate returns the carousel auto-advance period.
func (c CareersConfig) Rotate() time.Duration {
	return time.Duration(c.RotateMS) * time.Millisecond
}

// Career is one carousel slide.
type Career struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Game        string `yaml:"game"` // Registered game id
}
