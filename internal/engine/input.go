package engine

import "github.com/vovakirdan/career-arcade/internal/core"

// Axis selects which player coordinates pointer input drives.
type Axis uint8

const (
	AxisX  Axis = iota // Paddle at the bottom
	AxisY              // Fixed-column plane
	AxisXY             // Free crosshair
)

// Control maps pointer and key input onto the player position.
// Every result is clamped into [Min, Max]; fixed coordinates use Min == Max.
type Control struct {
	Axis    Axis
	Start   core.Vec
	Min     core.Vec
	Max     core.Vec
	KeyStep float64 // Distance per key press; 0 ignores keys
}

// Clamp keeps p inside the control's margins.
func (c Control) Clamp(p core.Vec) core.Vec {
	return core.Vec{
		X: core.ClampF(p.X, c.Min.X, c.Max.X),
		Y: core.ClampF(p.Y, c.Min.Y, c.Max.Y),
	}
}

// Track overwrites the controlled axis with the pointer position.
// Repeating the same event yields the same position.
func (c Control) Track(current core.Vec, ev core.PointerEvent) core.Vec {
	next := current
	switch c.Axis {
	case AxisX:
		next.X = ev.Pos.X
	case AxisY:
		next.Y = ev.Pos.Y
	case AxisXY:
		next = ev.Pos
	}
	return c.Clamp(next)
}

// Step moves the player n key presses in the direction of a.
// Presses along an axis the control does not drive are ignored.
func (c Control) Step(current core.Vec, a core.Action, n int) core.Vec {
	if c.KeyStep == 0 || n <= 0 {
		return current
	}
	d := c.KeyStep * float64(n)
	next := current
	switch a {
	case core.ActionUp:
		if c.Axis != AxisX {
			next.Y -= d
		}
	case core.ActionDown:
		if c.Axis != AxisX {
			next.Y += d
		}
	case core.ActionLeft:
		if c.Axis != AxisY {
			next.X -= d
		}
	case core.ActionRight:
		if c.Axis != AxisY {
			next.X += d
		}
	}
	return c.Clamp(next)
}
