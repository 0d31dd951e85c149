// Package engine implements the shared mini-game engine: entity spawning,
// the per-tick simulation step, hit-testing, and the session state machine.
//
// One Engine drives every variant. A variant is described entirely by a
// Rules value (boundary, hit and score policies plus timing and caps), so
// the dodge, catch and pop games differ only in data.
//
// The engine is host-driven: the platform calls Advance once per frame and
// forwards input between frames. Nothing runs in the background.
package engine

import "github.com/vovakirdan/career-arcade/internal/core"

// Kind discriminates entities for hit scoring.
type Kind uint8

const (
	KindNeutral Kind = iota // Obstacles and targets
	KindGood                // Catchable item worth points
	KindBad                 // Catchable item that costs a life
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	default:
		return "neutral"
	}
}

// Entity is a moving game object. Entities are values: each tick replaces
// them rather than mutating them in place.
type Entity struct {
	ID   uint64
	Pos  core.Vec // Percentage of the play-field
	Vel  core.Vec // Per sub-step displacement before scaling
	Kind Kind
	Tag  string // Opaque glyph, passed through unchanged
}

// Moved returns a copy of the entity displaced by its velocity times scale.
func (e Entity) Moved(scale float64) Entity {
	e.Pos = e.Pos.Add(e.Vel.Scale(scale))
	return e
}

// Effect is a transient hit marker, removed once it expires.
type Effect struct {
	ID  uint64
	Pos core.Vec
}
