package chef

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
)

func TestDefaultRulesValid(t *testing.T) {
	rules := Rules(config.DefaultChefConfig())
	if err := rules.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
	if rules.MaxLive < 6 || rules.MaxLive > 16 {
		t.Errorf("MaxLive = %d, want within [6, 16]", rules.MaxLive)
	}
}

func TestCatchScenario(t *testing.T) {
	rules := Rules(config.DefaultChefConfig())
	player := core.Vec{X: 50, Y: 90}

	tests := []struct {
		name      string
		kind      engine.Kind
		wantScore float64
		wantLives int
	}{
		{"good item", engine.KindGood, 1, 0},
		{"bad item", engine.KindBad, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := engine.Entity{Pos: core.Vec{X: 50, Y: 83}, Vel: core.Vec{Y: 3}, Kind: tt.kind}
			out := engine.Step([]engine.Entity{item}, player, rules.Physics)
			if out.Delta.Score != tt.wantScore || out.Delta.Lives != tt.wantLives {
				t.Errorf("delta = %+v, want score %v lives %d", out.Delta, tt.wantScore, tt.wantLives)
			}
			if len(out.Entities) != 0 {
				t.Error("caught item must be removed")
			}
		})
	}
}

func TestGeneratorMix(t *testing.T) {
	cfg := config.DefaultChefConfig()
	gen := generator(cfg.Items)
	rng := rand.New(rand.NewSource(11))

	good := 0
	const n = 4000
	for i := 0; i < n; i++ {
		e := gen.Generate(rng)
		if e.Pos.Y != -5 {
			t.Fatalf("spawn y = %v, want -5", e.Pos.Y)
		}
		if e.Pos.X < 10 || e.Pos.X >= 90 {
			t.Fatalf("spawn x = %v outside [10, 90)", e.Pos.X)
		}
		if e.Vel.Y < 3 || e.Vel.Y >= 5 {
			t.Fatalf("speed = %v outside [3, 5)", e.Vel.Y)
		}
		if e.Kind == engine.KindGood {
			good++
		}
	}
	ratio := float64(good) / n
	if ratio < 0.7 || ratio > 0.8 {
		t.Errorf("good ratio = %.3f, want about 0.75", ratio)
	}
}

func TestLivesStayInRange(t *testing.T) {
	clock := core.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5, Clock: clock})
	g.Mount(nil)

	// Parked at the left edge the pan catches whatever falls there.
	in := core.NewInputFrame()
	in.Point(core.PointerMove, core.Vec{X: 0, Y: 50})
	for i := 0; i < 5000; i++ {
		clock.Advance(17 * time.Millisecond)
		st := g.Step(in).State
		if st.Lives < 0 || st.Lives > 3 {
			t.Fatalf("frame %d: lives = %d", i, st.Lives)
		}
		if st.Score < 0 || st.Score > 30 {
			t.Fatalf("frame %d: score = %v", i, st.Score)
		}
		if st.Phase != core.PhasePlaying {
			break
		}
	}
	if got := g.Engine().Player().X; got != 10 {
		t.Errorf("pan x = %v, want clamped to 10", got)
	}
}
