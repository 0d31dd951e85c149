package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/career-arcade/internal/core"
)

func TestSpawnerCap(t *testing.T) {
	gen := GeneratorFunc(func(rng *rand.Rand) Entity {
		return Entity{Pos: core.Vec{X: Uniform(rng, 10, 90), Y: 60}}
	})
	s := NewSpawner(rand.NewSource(1), gen, 6, core.Box{MaxX: 100, MaxY: 100})

	var live []Entity
	for i := 0; i < 20; i++ {
		var added bool
		live, added = s.Spawn(live)
		if i < 6 && !added {
			t.Fatalf("spawn %d refused below the cap", i)
		}
		if i >= 6 && added {
			t.Fatalf("spawn %d accepted at the cap", i)
		}
	}
	if len(live) != 6 {
		t.Fatalf("live = %d, want 6", len(live))
	}
	for i, e := range live {
		if e.ID != uint64(i) {
			t.Errorf("entity %d has id %d", i, e.ID)
		}
	}
}

func TestSpawnerSanitizes(t *testing.T) {
	gen := GeneratorFunc(func(*rand.Rand) Entity {
		return Entity{
			Pos: core.Vec{X: 140, Y: -30},
			Vel: core.Vec{X: math.NaN(), Y: math.Inf(1)},
		}
	})
	s := NewSpawner(rand.NewSource(1), gen, 1, core.Box{MinX: 5, MinY: 5, MaxX: 95, MaxY: 80})

	live, _ := s.Spawn(nil)
	got := live[0]
	if got.Pos != (core.Vec{X: 95, Y: 5}) {
		t.Errorf("pos = %v, want clamped (95, 5)", got.Pos)
	}
	if got.Vel != (core.Vec{}) {
		t.Errorf("vel = %v, want zeroed", got.Vel)
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	gen := GeneratorFunc(func(rng *rand.Rand) Entity {
		return Entity{Pos: core.Vec{X: Uniform(rng, 10, 90), Y: Uniform(rng, 10, 90)}, Tag: Pick(rng, []string{"a", "b", "c"})}
	})
	a := NewSpawner(rand.NewSource(7), gen, 10, core.Box{MaxX: 100, MaxY: 100})
	b := NewSpawner(rand.NewSource(7), gen, 10, core.Box{MaxX: 100, MaxY: 100})

	var la, lb []Entity
	for i := 0; i < 10; i++ {
		la, _ = a.Spawn(la)
		lb, _ = b.Spawn(lb)
	}
	for i := range la {
		if la[i] != lb[i] {
			t.Fatalf("entity %d differs: %v vs %v", i, la[i], lb[i])
		}
	}
}

func TestPickEmpty(t *testing.T) {
	if got := Pick(rand.New(rand.NewSource(1)), nil); got != "" {
		t.Errorf("Pick(nil) = %q", got)
	}
}
