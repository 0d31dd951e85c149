package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Time source; nil means the system clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ClockOrSystem returns the configured clock, falling back to the system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock == nil {
		return SystemClock{}
	}
	return c.Clock
}

// Phase is the state of a game session's state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused        // Interstitial shown, simulation frozen
	PhaseWon           // Ceiling reached
	PhaseSurvey        // Post-win contact capture
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseSurvey:
		return "survey"
	default:
		return "unknown"
	}
}

// GameState summarizes a session for the platform.
type GameState struct {
	Phase    Phase
	Score    float64 // Current score, within [0, Ceiling]
	Ceiling  float64
	Lives    int  // Remaining lives; MaxLives == 0 means the variant has none
	MaxLives int  //
	GameOver bool // Failure marker awaiting an explicit restart
	Closed   bool // The close callback has fired
}

// Progress returns the score as a fraction of the ceiling.
func (s GameState) Progress() float64 {
	if s.Ceiling <= 0 {
		return 0
	}
	return ClampF(s.Score/s.Ceiling, 0, 1)
}

// StepResult is returned by Game.Step() after each host tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
