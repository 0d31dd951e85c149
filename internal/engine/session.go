package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// ErrWrongPhase is returned when a user action is not valid in the current phase.
var ErrWrongPhase = errors.New("engine: action not allowed in this phase")

// Transition is the single phase change caused by applying a delta.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionInterstitial
	TransitionWon
	TransitionReset
	TransitionCollision
)

// String returns a human-readable name for the transition.
func (t Transition) String() string {
	switch t {
	case TransitionInterstitial:
		return "interstitial"
	case TransitionWon:
		return "won"
	case TransitionReset:
		return "reset"
	case TransitionCollision:
		return "collision"
	default:
		return "none"
	}
}

// Session owns score, lives and the phase state machine.
//
//	playing --score >= ceiling/2, first time--> paused
//	paused  --continue--> playing
//	playing --score >= ceiling--> won
//	won     --claim--> survey
//	playing --lives == 0--> playing (full reset)
//
// The interstitial fires at most once per session; a reset re-arms it.
type Session struct {
	phase    core.Phase
	score    float64
	ceiling  float64
	lives    int
	maxLives int
	shown    bool
	gameOver bool
}

// NewSession creates a playing session. maxLives == 0 disables lives.
func NewSession(ceiling float64, maxLives int) *Session {
	s := &Session{ceiling: ceiling, maxLives: maxLives}
	s.Reset()
	return s
}

// Reset reinitializes every field to its starting value.
func (s *Session) Reset() {
	s.phase = core.PhasePlaying
	s.score = 0
	s.lives = s.maxLives
	s.shown = false
	s.gameOver = false
}

// Apply commits a delta atomically and returns the resulting transition.
// Deltas are ignored outside active play. Score only grows and saturates
// at the ceiling; reaching the ceiling wins and suppresses any life loss
// applied in the same delta.
func (s *Session) Apply(d Delta) Transition {
	if !s.Active() {
		return TransitionNone
	}
	if d.Fatal {
		s.gameOver = true
		return TransitionCollision
	}

	if d.Score > 0 {
		s.score = core.ClampF(s.score+d.Score, 0, s.ceiling)
	}
	if s.score >= s.ceiling {
		s.score = s.ceiling
		s.phase = core.PhaseWon
		return TransitionWon
	}

	if s.maxLives > 0 && d.Lives != 0 {
		s.lives = core.Clamp(s.lives+d.Lives, 0, s.maxLives)
		if s.lives == 0 {
			s.Reset()
			return TransitionReset
		}
	}

	if !s.shown && s.score >= s.ceiling/2 {
		s.shown = true
		s.phase = core.PhasePaused
		return TransitionInterstitial
	}
	return TransitionNone
}

// Continue resumes play after the interstitial.
func (s *Session) Continue() error {
	if s.phase != core.PhasePaused {
		return fmt.Errorf("continue while %s: %w", s.phase, ErrWrongPhase)
	}
	s.phase = core.PhasePlaying
	return nil
}

// Cancel abandons the session from the interstitial.
func (s *Session) Cancel() error {
	if s.phase != core.PhasePaused {
		return fmt.Errorf("cancel while %s: %w", s.phase, ErrWrongPhase)
	}
	return nil
}

// Claim moves a won session to the survey.
func (s *Session) Claim() error {
	if s.phase != core.PhaseWon {
		return fmt.Errorf("claim while %s: %w", s.phase, ErrWrongPhase)
	}
	s.phase = core.PhaseSurvey
	return nil
}

// Restart clears a game over. It is also valid during normal play.
func (s *Session) Restart() error {
	if s.phase != core.PhasePlaying {
		return fmt.Errorf("restart while %s: %w", s.phase, ErrWrongPhase)
	}
	s.Reset()
	return nil
}

// Active reports whether the simulation may advance.
func (s *Session) Active() bool {
	return s.phase == core.PhasePlaying && !s.gameOver
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() float64 { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// GameOver reports whether a fatal collision ended play.
func (s *Session) GameOver() bool { return s.gameOver }

// InterstitialShown reports whether the halfway message has fired this session.
func (s *Session) InterstitialShown() bool { return s.shown }

// State returns a snapshot for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:    s.phase,
		Score:    s.score,
		Ceiling:  s.ceiling,
		Lives:    s.lives,
		MaxLives: s.maxLives,
		GameOver: s.gameOver,
	}
}
