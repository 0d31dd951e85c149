package engine

import "github.com/vovakirdan/career-arcade/internal/core"

// Physics is the per-tick part of a rule set.
type Physics struct {
	Scale    float64 // Sub-step multiplier applied to velocity
	Boundary Boundary
	Hit      HitTest
	Scoring  Scoring
}

// Delta is the aggregated effect of one tick or one discrete hit.
// Components propose deltas; only the Session applies them.
type Delta struct {
	Score float64
	Lives int // Negative when lives are lost
	Fatal bool
}

// HitRecord notes one entity consumed (or collided with) during a step.
type HitRecord struct {
	Entity Entity
	Hit    Hit
}

// Outcome is the result of a simulation step.
type Outcome struct {
	Entities []Entity // Survivors, in spawn order
	Delta    Delta
	Hits     []HitRecord
}

// Step advances every live entity by one tick. It is a pure function: live
// is not modified and the outcome holds fresh values. Each entity is hit at
// most once and is removed in the same step it is hit. Deltas are only
// aggregated here; applying them is left to the caller so rule evaluation
// never interleaves with session mutation.
func Step(live []Entity, player core.Vec, p Physics) Outcome {
	out := Outcome{Entities: make([]Entity, 0, len(live))}
	hit := p.Hit
	if hit == nil {
		hit = NoContact{}
	}

	hits, penalties := 0, 0
	for _, e := range live {
		moved, keep := p.Boundary.Move(e, p.Scale)

		switch h := hit.Test(moved, player); h {
		case HitFatal:
			out.Delta.Fatal = true
			out.Hits = append(out.Hits, HitRecord{Entity: moved, Hit: h})
		case HitScore:
			hits++
			out.Hits = append(out.Hits, HitRecord{Entity: moved, Hit: h})
			continue
		case HitPenalty:
			penalties++
			out.Hits = append(out.Hits, HitRecord{Entity: moved, Hit: h})
			continue
		}

		if keep {
			out.Entities = append(out.Entities, moved)
		}
	}

	if out.Delta.Fatal {
		return out
	}
	out.Delta.Score = p.Scoring.PerTick + float64(hits)*p.Scoring.PerHit
	out.Delta.Lives = -penalties * p.Scoring.PerPenalty
	return out
}

// Pop resolves a discrete click against the live targets. The first target
// in slice order strictly within radius of at is removed; later targets are
// never considered, even if closer.
func Pop(live []Entity, at core.Vec, radius float64) ([]Entity, Entity, bool) {
	for i, e := range live {
		if e.Pos.Dist(at) < radius {
			rest := make([]Entity, 0, len(live)-1)
			rest = append(rest, live[:i]...)
			rest = append(rest, live[i+1:]...)
			return rest, e, true
		}
	}
	return live, Entity{}, false
}
