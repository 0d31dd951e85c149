package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// Generator produces the randomized attributes of a new entity.
// The spawner assigns the ID and sanitizes the result.
type Generator interface {
	Generate(rng *rand.Rand) Entity
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(rng *rand.Rand) Entity

// Generate calls f(rng).
func (f GeneratorFunc) Generate(rng *rand.Rand) Entity {
	return f(rng)
}

// Spawner injects new entities, bounded by a live-entity cap.
// It owns the entity id counter, so concurrent sessions never collide.
type Spawner struct {
	rng    *rand.Rand
	gen    Generator
	limit  int
	area   core.Box
	nextID uint64
}

// NewSpawner creates a spawner drawing from src. Spawned positions are
// clamped into area; limit is the maximum live count.
func NewSpawner(src rand.Source, gen Generator, limit int, area core.Box) *Spawner {
	return &Spawner{
		rng:   rand.New(src),
		gen:   gen,
		limit: limit,
		area:  area,
	}
}

// Limit returns the live-entity cap.
func (s *Spawner) Limit() int {
	return s.limit
}

// Reset restarts the id sequence for a fresh session.
// The random stream continues so a restarted session does not replay.
func (s *Spawner) Reset() {
	s.nextID = 0
}

// Spawn appends one entity to live unless the cap is reached.
// It never removes entities. The returned bool reports whether one was added.
func (s *Spawner) Spawn(live []Entity) ([]Entity, bool) {
	if len(live) >= s.limit {
		return live, false
	}

	e := s.gen.Generate(s.rng)
	e.ID = s.nextID
	s.nextID++
	e.Pos.X = core.ClampF(e.Pos.X, s.area.MinX, s.area.MaxX)
	e.Pos.Y = core.ClampF(e.Pos.Y, s.area.MinY, s.area.MaxY)
	e.Vel.X = finite(e.Vel.X)
	e.Vel.Y = finite(e.Vel.Y)

	return append(live, e), true
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Uniform returns a value in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen palette entry, or "" for an empty palette.
func Pick(rng *rand.Rand, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[rng.Intn(len(palette))]
}
