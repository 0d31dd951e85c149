package cabinet

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"
	"github.com/vovakirdan/career-arcade/internal/engine"
)

// testVariant scores one point per step so phases are reached quickly.
func testVariant(ceiling float64) Variant {
	return Variant{
		ID:      "test",
		Title:   "Test",
		Tagline: "tagline here",
		Load: func() (engine.Rules, Look) {
			rules := engine.Rules{
				Ceiling:      ceiling,
				StepInterval: engine.DefaultStepInterval,
				SpawnPeriod:  100 * time.Millisecond,
				MaxLive:      4,
				SpawnArea:    core.Box{MaxX: 100, MaxY: 100},
				Generator: engine.GeneratorFunc(func(*rand.Rand) engine.Entity {
					return engine.Entity{Pos: core.Vec{X: 50, Y: 50}, Tag: "o"}
				}),
				Physics: engine.Physics{
					Scale:    1,
					Boundary: engine.Reflect{Max: core.Vec{X: 100, Y: 100}},
					Scoring:  engine.Scoring{PerTick: 1},
				},
				Control: engine.Control{Axis: engine.AxisXY, Start: core.Vec{X: 20, Y: 20}, Max: core.Vec{X: 100, Y: 100}},
			}
			look := Look{
				Player:       "@",
				Interstitial: config.Message{Title: "HALFWAY", Body: "keep going"},
			}
			return rules, look
		},
	}
}

func newTestCabinet(ceiling float64) (*Cabinet, *core.ManualClock) {
	clock := core.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New(testVariant(ceiling))
	c.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Seed: 1, Clock: clock})
	return c, clock
}

func screenText(c *Cabinet) string {
	dst := core.NewScreen(60, 20)
	c.Render(dst)
	return dst.String()
}

func TestStepDrainsEvents(t *testing.T) {
	c, clock := newTestCabinet(30)
	c.Mount(nil)

	clock.Advance(100 * time.Millisecond)
	res := c.Step(core.NewInputFrame())
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventSpawn {
		t.Fatalf("events = %v, want a spawn first", res.Events)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %v, want 1", res.State.Score)
	}
	if res = c.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("events repeated: %v", res.Events)
	}
}

func TestRenderPlaying(t *testing.T) {
	c, _ := newTestCabinet(30)
	c.Mount(nil)

	out := screenText(c)
	for _, want := range []string{"Test", "0/30", "tagline here", "@", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	c, clock := newTestCabinet(2)
	c.Mount(nil)

	clock.Advance(20 * time.Millisecond)
	c.Step(core.NewInputFrame())
	if c.State().Phase != core.PhasePaused {
		t.Fatalf("phase = %s, want paused", c.State().Phase)
	}
	if out := screenText(c); !strings.Contains(out, "HALFWAY") || !strings.Contains(out, "keep going") {
		t.Errorf("interstitial not drawn:\n%s", out)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	c.Step(in)
	clock.Advance(20 * time.Millisecond)
	c.Step(core.NewInputFrame())
	if c.State().Phase != core.PhaseWon {
		t.Fatalf("phase = %s, want won", c.State().Phase)
	}
	if out := screenText(c); !strings.Contains(out, "GANASTE") {
		t.Errorf("victory not drawn:\n%s", out)
	}
}

func TestResetUnmountsWithoutClosing(t *testing.T) {
	c, _ := newTestCabinet(30)
	closed := 0
	c.Mount(func() { closed++ })

	c.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Seed: 2})
	if closed != 0 {
		t.Error("reset must not fire the close callback")
	}

	c.Mount(func() { closed++ })
	c.Close()
	c.Close()
	if closed != 1 {
		t.Errorf("close fired %d times, want 1", closed)
	}
	if !c.State().Closed {
		t.Error("state should report closed")
	}
}

func TestFieldMapsPointer(t *testing.T) {
	c := New(testVariant(30))
	f := c.Field(60, 20)
	if f != core.NewRect(1, 2, 58, 16) {
		t.Fatalf("field = %+v", f)
	}
	if got := f.ToPercent(f.X, f.Y); got != (core.Vec{}) {
		t.Errorf("top-left = %v, want origin", got)
	}
	if got := f.ToPercent(f.Right()-1, f.Bottom()-1); got != (core.Vec{X: 100, Y: 100}) {
		t.Errorf("bottom-right = %v, want (100, 100)", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"uno dos tres", 20, []string{"uno dos tres"}},
		{"uno dos tres", 7, []string{"uno dos", "tres"}},
		{"supercalifragilistic no", 5, []string{"supercalifragilistic", "no"}},
	}
	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
