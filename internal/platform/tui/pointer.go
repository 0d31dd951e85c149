package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// MapMouse translates a mouse message into a pointer event in play-field
// percentage space. Hover is a pointer move, motion with the left button
// held is a touch move and a left press is a click. Other mouse activity
// is ignored.
func MapMouse(msg tea.MouseMsg, field core.Rect) (core.PointerEvent, bool) {
	ev := core.PointerEvent{Pos: field.ToPercent(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = core.PointerClick
	case tea.MouseActionMotion:
		switch msg.Button {
		case tea.MouseButtonNone:
			ev.Kind = core.PointerMove
		case tea.MouseButtonLeft:
			ev.Kind = core.TouchMove
		default:
			return ev, false
		}
	default:
		return ev, false
	}
	return ev, true
}
