package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// Engine runs one variant session. It is not safe for concurrent use;
// the host serializes Advance, Handle and the phase actions.
type Engine struct {
	rules   Rules
	clock   core.Clock
	src     rand.Source
	spawner *Spawner
	session *Session
	timers  timers

	live    []Entity
	effects []Effect
	player  core.Vec

	mounted  bool
	closed   bool
	onClose  func()
	lastStep time.Time
	ticks    int
	effectID uint64
	events   []core.Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source.
func WithClock(c core.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRand injects the random source used by the spawner.
func WithRand(src rand.Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithSeed seeds the spawner. A fixed seed and the same input yield the
// same event sequence.
func WithSeed(seed int64) Option {
	return WithRand(rand.NewSource(seed))
}

// New creates an engine for a validated rule set. The engine is idle until Mount.
func New(r Rules, opts ...Option) (*Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{rules: r}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = core.SystemClock{}
	}
	if e.src == nil {
		e.src = rand.NewSource(time.Now().UnixNano())
	}
	e.spawner = NewSpawner(e.src, r.Generator, r.MaxLive, r.SpawnArea)
	e.session = NewSession(r.Ceiling, r.Lives)
	e.player = r.Control.Clamp(r.Control.Start)
	return e, nil
}

// Mount starts the session and arms its timers. onClose is invoked once
// when the user leaves the game. Mounting a mounted engine does nothing.
func (e *Engine) Mount(onClose func()) {
	if e.mounted {
		return
	}
	e.mounted = true
	e.closed = false
	e.onClose = onClose
	e.arm()
}

// Unmount cancels every timer without invoking the close callback.
func (e *Engine) Unmount() {
	e.timers.cancelAll()
	e.mounted = false
}

// Close unmounts and invokes the close callback exactly once.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.Unmount()
	e.closed = true
	e.emit(core.EventClose, 0, e.player)
	if e.onClose != nil {
		e.onClose()
	}
}

// arm restarts the step gate, the spawn timer and the expiry of any
// surviving hit effects relative to now.
func (e *Engine) arm() {
	now := e.clock.Now()
	e.timers.cancelAll()
	e.lastStep = now
	e.timers.arm(timerSpawn, now.Add(e.rules.SpawnPeriod), e.rules.SpawnPeriod, 0)
	for _, fx := range e.effects {
		e.timers.arm(timerExpire, now.Add(e.rules.EffectTTL), 0, fx.ID)
	}
}

// Advance fires due timers and executes at most one simulation step if
// the step interval has elapsed. It does nothing unless the session is
// actively playing.
func (e *Engine) Advance() {
	if !e.mounted || !e.session.Active() {
		return
	}
	now := e.clock.Now()
	e.fireTimers(now)

	if now.Sub(e.lastStep) < e.rules.StepInterval {
		return
	}
	e.lastStep = now
	e.step()
}

func (e *Engine) fireTimers(now time.Time) {
	fired := make(map[int]int)
	for {
		tm, ok := e.timers.pop(now, fired)
		if !ok {
			return
		}
		if !e.timers.current(tm) || !e.session.Active() {
			continue
		}
		switch tm.kind {
		case timerSpawn:
			var added bool
			e.live, added = e.spawner.Spawn(e.live)
			if added {
				s := e.live[len(e.live)-1]
				e.emit(core.EventSpawn, s.ID, s.Pos)
			}
		case timerExpire:
			e.expire(tm.ref)
		}
	}
}

func (e *Engine) step() {
	e.ticks++
	out := Step(e.live, e.player, e.rules.Physics)

	for _, h := range out.Hits {
		switch h.Hit {
		case HitScore:
			e.emit(core.EventScore, h.Entity.ID, h.Entity.Pos)
		case HitPenalty:
			e.emit(core.EventPenalty, h.Entity.ID, h.Entity.Pos)
		case HitFatal:
			e.emit(core.EventCollision, h.Entity.ID, h.Entity.Pos)
		}
	}

	// A fatal tick freezes the field as it was before the collision.
	if !out.Delta.Fatal {
		e.live = out.Entities
	}
	e.transition(e.session.Apply(out.Delta))
}

func (e *Engine) transition(t Transition) {
	switch t {
	case TransitionInterstitial:
		// Effects stay on screen while paused and expire after Continue.
		e.timers.cancelAll()
		e.emit(core.EventInterstitial, 0, e.player)
	case TransitionWon:
		// Timers never fire again once won, so nothing would expire.
		e.timers.cancelAll()
		e.effects = nil
		e.emit(core.EventWon, 0, e.player)
	case TransitionCollision:
		e.timers.cancelAll()
		e.effects = nil
	case TransitionReset:
		e.resetField()
		e.emit(core.EventReset, 0, e.player)
	}
}

func (e *Engine) resetField() {
	e.live = nil
	e.effects = nil
	e.spawner.Reset()
	e.player = e.rules.Control.Clamp(e.rules.Control.Start)
	if e.mounted {
		e.arm()
	}
}

// Handle applies the input gathered since the last frame. Discrete clicks
// are resolved immediately; movement only updates the player position.
func (e *Engine) Handle(in core.InputFrame) {
	if !e.mounted {
		return
	}
	if in.Has(core.ActionClose) {
		e.Close()
		return
	}

	switch e.session.Phase() {
	case core.PhasePaused:
		if in.Has(core.ActionConfirm) {
			_ = e.Continue()
		} else if in.Has(core.ActionCancel) {
			_ = e.Cancel()
		}
		return
	case core.PhaseWon:
		if in.Has(core.ActionConfirm) {
			_ = e.Claim()
		}
		return
	case core.PhaseSurvey:
		return
	}

	if e.session.GameOver() {
		if in.Has(core.ActionRestart) {
			_ = e.Restart()
		}
		return
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		e.player = e.rules.Control.Step(e.player, a, in.Count(a))
	}
	for _, ev := range in.Pointer {
		if !e.session.Active() {
			return
		}
		e.player = e.rules.Control.Track(e.player, ev)
		if ev.Kind == core.PointerClick && e.rules.PopRadius > 0 {
			e.pop(e.player)
		}
	}
}

// pop resolves one click. It is a no-op unless the session is playing.
func (e *Engine) pop(at core.Vec) {
	if !e.session.Active() {
		return
	}
	rest, hit, ok := Pop(e.live, at, e.rules.PopRadius)
	if !ok {
		return
	}
	e.live = rest

	fx := Effect{ID: e.effectID, Pos: hit.Pos}
	e.effectID++
	e.effects = append(e.effects, fx)
	e.timers.arm(timerExpire, e.clock.Now().Add(e.rules.EffectTTL), 0, fx.ID)

	e.emit(core.EventScore, hit.ID, hit.Pos)
	e.transition(e.session.Apply(Delta{Score: e.rules.Physics.Scoring.PerHit}))
}

func (e *Engine) expire(id uint64) {
	for i, fx := range e.effects {
		if fx.ID == id {
			e.effects = append(e.effects[:i:i], e.effects[i+1:]...)
			return
		}
	}
}

// Continue resumes play after the interstitial and re-arms the timers.
func (e *Engine) Continue() error {
	if err := e.session.Continue(); err != nil {
		return err
	}
	if e.mounted {
		e.arm()
	}
	return nil
}

// Cancel leaves the game from the interstitial.
func (e *Engine) Cancel() error {
	if err := e.session.Cancel(); err != nil {
		return err
	}
	e.Close()
	return nil
}

// Claim moves a won session to the survey.
func (e *Engine) Claim() error {
	if err := e.session.Claim(); err != nil {
		return err
	}
	e.emit(core.EventClaim, 0, e.player)
	return nil
}

// Restart reinitializes the session and the field.
func (e *Engine) Restart() error {
	if err := e.session.Restart(); err != nil {
		return err
	}
	e.resetField()
	e.emit(core.EventReset, 0, e.player)
	return nil
}

// State returns the current session snapshot.
func (e *Engine) State() core.GameState {
	s := e.session.State()
	s.Closed = e.closed
	return s
}

// Entities returns a copy of the live entities.
func (e *Engine) Entities() []Entity {
	return append([]Entity(nil), e.live...)
}

// Effects returns a copy of the visible hit effects.
func (e *Engine) Effects() []Effect {
	return append([]Effect(nil), e.effects...)
}

// Player returns the player position.
func (e *Engine) Player() core.Vec {
	return e.player
}

// Ticks returns the number of executed simulation steps.
func (e *Engine) Ticks() int {
	return e.ticks
}

// InterstitialShown reports whether the halfway message fired this session.
func (e *Engine) InterstitialShown() bool {
	return e.session.InterstitialShown()
}

// Rules returns the rule set the engine runs.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Drain returns and clears the events recorded since the last call.
func (e *Engine) Drain() []core.Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) emit(kind core.EventKind, id uint64, pos core.Vec) {
	e.events = append(e.events, core.Event{Kind: kind, Tick: e.ticks, EntityID: id, Pos: pos})
}
