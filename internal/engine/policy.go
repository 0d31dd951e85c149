package engine

import (
	"math"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// Boundary decides how an entity moves and whether it stays on the field.
type Boundary interface {
	Move(e Entity, scale float64) (moved Entity, keep bool)
}

// Reflect bounces free-floating targets off the walls of a box.
// The crossing velocity component is inverted and the position clamped.
type Reflect struct {
	Min, Max core.Vec
}

// Move implements Boundary.
func (b Reflect) Move(e Entity, scale float64) (Entity, bool) {
	m := e.Moved(scale)
	if m.Pos.X <= b.Min.X || m.Pos.X >= b.Max.X {
		m.Vel.X = -m.Vel.X
	}
	if m.Pos.Y <= b.Min.Y || m.Pos.Y >= b.Max.Y {
		m.Vel.Y = -m.Vel.Y
	}
	m.Pos.X = core.ClampF(m.Pos.X, b.Min.X, b.Max.X)
	m.Pos.Y = core.ClampF(m.Pos.Y, b.Min.Y, b.Max.Y)
	return m, true
}

// Despawn removes side-scrolling entities once they pass the trailing edge.
type Despawn struct {
	TrailingX float64
}

// Move implements Boundary.
func (b Despawn) Move(e Entity, scale float64) (Entity, bool) {
	m := e.Moved(scale)
	return m, m.Pos.X > b.TrailingX
}

// FallThrough lets items cross the whole field height and drops them past the floor.
type FallThrough struct {
	FloorY float64
}

// Move implements Boundary.
func (b FallThrough) Move(e Entity, scale float64) (Entity, bool) {
	m := e.Moved(scale)
	return m, m.Pos.Y < b.FloorY
}

// Hit is the outcome of testing one entity against the player.
type Hit int

const (
	HitNone    Hit = iota
	HitScore       // Entity consumed for points
	HitPenalty     // Entity consumed for a lost life
	HitFatal       // Session failure marker
)

// HitTest is a continuous per-tick hit rule.
type HitTest interface {
	Test(e Entity, player core.Vec) Hit
}

// BoxOverlap fails the session when the player box overlaps an obstacle box.
// Extents are measured from each centre point.
type BoxOverlap struct {
	PlayerLeft, PlayerRight, PlayerUp, PlayerDown float64
	ObstacleHalfW, ObstacleHalfH                  float64
}

// Test implements HitTest.
func (h BoxOverlap) Test(e Entity, player core.Vec) Hit {
	pb := core.BoxAround(player, h.PlayerLeft, h.PlayerRight, h.PlayerUp, h.PlayerDown)
	ob := core.BoxAround(e.Pos, h.ObstacleHalfW, h.ObstacleHalfW, h.ObstacleHalfH, h.ObstacleHalfH)
	if pb.Overlaps(ob) {
		return HitFatal
	}
	return HitNone
}

// CatchWindow tests falling items inside a vertical band near the paddle.
// MinY is inclusive and MaxY exclusive.
type CatchWindow struct {
	MinY, MaxY float64
	Reach      float64 // Horizontal distance from the paddle centre, exclusive
}

// Test implements HitTest.
func (h CatchWindow) Test(e Entity, player core.Vec) Hit {
	if e.Pos.Y < h.MinY || e.Pos.Y >= h.MaxY {
		return HitNone
	}
	if math.Abs(e.Pos.X-player.X) >= h.Reach {
		return HitNone
	}
	if e.Kind == KindBad {
		return HitPenalty
	}
	return HitScore
}

// NoContact never hits; used when hits come only from discrete clicks.
type NoContact struct{}

// Test implements HitTest.
func (NoContact) Test(Entity, core.Vec) Hit {
	return HitNone
}

// Scoring converts hits and survival into session deltas.
type Scoring struct {
	PerTick    float64 // Accrued every executed step while alive
	PerHit     float64 // Per HitScore or pop
	PerPenalty int     // Lives lost per HitPenalty
}
