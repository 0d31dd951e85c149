package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// Default timings shared by the variants.
const (
	DefaultCeiling      = 30.0
	DefaultStepInterval = 16 * time.Millisecond
	DefaultEffectTTL    = 400 * time.Millisecond
)

// Rules fully describes a variant.
type Rules struct {
	Ceiling      float64
	Lives        int           // 0 disables lives
	StepInterval time.Duration // Minimum elapsed time between executed steps
	SpawnPeriod  time.Duration
	MaxLive      int // Live-entity cap; spawns at the cap are refused
	SpawnArea    core.Box
	Generator    Generator
	Physics      Physics
	PopRadius    float64 // > 0 enables click-to-pop
	EffectTTL    time.Duration
	Control      Control
}

// Validate reports the first inconsistency in the rule set.
func (r Rules) Validate() error {
	switch {
	case r.Ceiling <= 0:
		return fmt.Errorf("rules: ceiling must be positive, got %v", r.Ceiling)
	case r.Lives < 0:
		return fmt.Errorf("rules: lives must not be negative, got %d", r.Lives)
	case r.StepInterval <= 0:
		return fmt.Errorf("rules: step interval must be positive, got %s", r.StepInterval)
	case r.SpawnPeriod <= 0:
		return fmt.Errorf("rules: spawn period must be positive, got %s", r.SpawnPeriod)
	case r.MaxLive <= 0:
		return fmt.Errorf("rules: live cap must be positive, got %d", r.MaxLive)
	case r.Generator == nil:
		return errors.New("rules: generator is required")
	case r.Physics.Boundary == nil:
		return errors.New("rules: boundary policy is required")
	case r.Control.Min.X > r.Control.Max.X || r.Control.Min.Y > r.Control.Max.Y:
		return errors.New("rules: control margins are inverted")
	case r.PopRadius > 0 && r.EffectTTL <= 0:
		return errors.New("rules: pop games need an effect duration")
	}
	return nil
}
