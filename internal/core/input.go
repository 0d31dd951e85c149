package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - discrete step up (aviation)
	ActionDown            // S, Down arrow - discrete step down (aviation)
	ActionLeft            // A, Left arrow - discrete step left
	ActionRight           // D, Right arrow - discrete step right
	ActionConfirm         // Enter - continue after interstitial, claim prize
	ActionCancel          // N - leave at the interstitial
	ActionRestart         // R key - restart after game over
	ActionClose           // Q, Esc - close the game modal
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMove PointerKind = iota // Mouse hover
	TouchMove                      // Drag with a button held
	PointerClick                   // Discrete press
)

// PointerEvent is a pointer position in play-field percentage space.
// Positions may lie outside [0, 100]; the input adapter clamps them.
type PointerEvent struct {
	Kind PointerKind
	Pos  Vec
}

// InputFrame represents the input gathered between two host ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Steps counts repeated discrete presses of the same action.
	Steps map[Action]int

	// Pointer holds pointer events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Steps:   make(map[Action]int),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if f.Steps == nil {
		f.Steps = make(map[Action]int)
	}
	f.Actions[a] = true
	f.Steps[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Count returns how many times the action was pressed this frame.
func (f InputFrame) Count(a Action) int {
	if f.Steps == nil {
		return 0
	}
	return f.Steps[a]
}

// Point appends a pointer event.
func (f *InputFrame) Point(kind PointerKind, pos Vec) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, Pos: pos})
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Steps {
		delete(f.Steps, k)
	}
	f.Pointer = f.Pointer[:0]
}
