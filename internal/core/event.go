package core

import "fmt"

// EventKind identifies something that happened during a tick or input.
type EventKind int

const (
	EventSpawn        EventKind = iota // Spawner appended an entity
	EventScore                         // A hit earned points
	EventPenalty                       // A hit cost a life
	EventCollision                     // Fatal overlap; gameOver set
	EventInterstitial                  // Halfway message, session paused
	EventWon                           // Ceiling reached
	EventReset                         // Session reinitialized
	EventClaim                         // Victory claimed, survey open
	EventClose                         // Close callback invoked
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventPenalty:
		return "penalty"
	case EventCollision:
		return "collision"
	case EventInterstitial:
		return "interstitial"
	case EventWon:
		return "won"
	case EventReset:
		return "reset"
	case EventClaim:
		return "claim"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a single observable outcome, used for logging and replay checks.
type Event struct {
	Kind     EventKind
	Tick     int    // Executed simulation step count when it happened
	EntityID uint64 // Entity involved, if any
	Pos      Vec    // Where it happened, if meaningful
}

// String formats the event for logs and test diffs.
func (e Event) String() string {
	return fmt.Sprintf("%s@%d#%d(%.1f,%.1f)", e.Kind, e.Tick, e.EntityID, e.Pos.X, e.Pos.Y)
}
