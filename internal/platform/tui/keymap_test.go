package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/career-arcade/internal/core"
)

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"enter", core.ActionConfirm},
		{"n", core.ActionCancel},
		{"r", core.ActionRestart},
		{"q", core.ActionClose},
		{"esc", core.ActionClose},
		{"ctrl+c", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	field := core.NewRect(1, 2, 101, 51)

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.PointerKind
		wantOK bool
	}{
		{"hover", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.PointerMove, true},
		{"drag", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.TouchMove, true},
		{"click", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerClick, true},
		{"right click", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"release", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, 0, false},
		{"wheel", tea.MouseMsg{X: 51, Y: 27, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := MapMouse(tt.msg, field)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.want {
				t.Errorf("kind = %v, want %v", ev.Kind, tt.want)
			}
			if ev.Pos.X != 50 || ev.Pos.Y != 50 {
				t.Errorf("pos = %+v, want field center (50,50)", ev.Pos)
			}
		})
	}
}

func TestMapMouseOutsideField(t *testing.T) {
	field := core.NewRect(1, 2, 101, 51)
	ev, ok := MapMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}, field)
	if !ok {
		t.Fatal("hover outside the field is still a pointer move")
	}
	if ev.Pos.X >= 0 || ev.Pos.Y >= 0 {
		t.Errorf("pos = %+v, want negative percentages left for the engine to clamp", ev.Pos)
	}
}
