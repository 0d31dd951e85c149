package engine

import (
	"testing"

	"github.com/vovakirdan/career-arcade/internal/core"
)

func TestControlTrack(t *testing.T) {
	plane := Control{Axis: AxisY, Start: core.Vec{X: 10, Y: 50}, Min: core.Vec{X: 10, Y: 5}, Max: core.Vec{X: 10, Y: 95}, KeyStep: 8}
	paddle := Control{Axis: AxisX, Start: core.Vec{X: 50, Y: 90}, Min: core.Vec{X: 10, Y: 90}, Max: core.Vec{X: 90, Y: 90}}
	cross := Control{Axis: AxisXY, Start: core.Vec{X: 50, Y: 50}, Max: core.Vec{X: 100, Y: 100}}

	tests := []struct {
		name string
		c    Control
		in   core.Vec
		want core.Vec
	}{
		{"plane follows y", plane, core.Vec{X: 70, Y: 30}, core.Vec{X: 10, Y: 30}},
		{"plane clamps top", plane, core.Vec{X: 0, Y: -40}, core.Vec{X: 10, Y: 5}},
		{"plane clamps bottom", plane, core.Vec{X: 0, Y: 120}, core.Vec{X: 10, Y: 95}},
		{"paddle follows x", paddle, core.Vec{X: 33, Y: 10}, core.Vec{X: 33, Y: 90}},
		{"paddle clamps left", paddle, core.Vec{X: 2, Y: 10}, core.Vec{X: 10, Y: 90}},
		{"paddle clamps right", paddle, core.Vec{X: 99, Y: 10}, core.Vec{X: 90, Y: 90}},
		{"crosshair follows both", cross, core.Vec{X: 12, Y: 77}, core.Vec{X: 12, Y: 77}},
		{"crosshair clamps both", cross, core.Vec{X: -3, Y: 140}, core.Vec{X: 0, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := core.PointerEvent{Kind: core.PointerMove, Pos: tt.in}
			got := tt.c.Track(tt.c.Start, ev)
			if got != tt.want {
				t.Errorf("Track = %v, want %v", got, tt.want)
			}
			if again := tt.c.Track(got, ev); again != got {
				t.Errorf("repeated event moved the player: %v -> %v", got, again)
			}
		})
	}
}

func TestControlKeySteps(t *testing.T) {
	plane := Control{Axis: AxisY, Start: core.Vec{X: 10, Y: 50}, Min: core.Vec{X: 10, Y: 5}, Max: core.Vec{X: 10, Y: 95}, KeyStep: 8}

	tests := []struct {
		name  string
		from  float64
		a     core.Action
		n     int
		wantY float64
	}{
		{"one up", 50, core.ActionUp, 1, 42},
		{"two down", 50, core.ActionDown, 2, 66},
		{"clamped up", 10, core.ActionUp, 1, 5},
		{"clamped down", 90, core.ActionDown, 3, 95},
		{"horizontal ignored", 50, core.ActionLeft, 1, 50},
		{"no presses", 50, core.ActionUp, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plane.Step(core.Vec{X: 10, Y: tt.from}, tt.a, tt.n)
			if got.Y != tt.wantY || got.X != 10 {
				t.Errorf("Step = %v, want (10, %v)", got, tt.wantY)
			}
		})
	}
}
