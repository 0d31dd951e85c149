package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/core"

	_ "github.com/vovakirdan/career-arcade/internal/games/aviation"
	_ "github.com/vovakirdan/career-arcade/internal/games/bartender"
	_ "github.com/vovakirdan/career-arcade/internal/games/chef"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (SessionModel, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, Clock: clock}
	return NewSessionModel(config.DefaultCareersConfig(), cfg, Env{}), clock
}

func update(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestCarouselAutoAdvance(t *testing.T) {
	m, _ := newTestSession(t)
	car := m.carousel.Carousel()
	if car.Len() != 3 {
		t.Fatalf("slides = %d, want 3", car.Len())
	}

	m = update(t, m, RotateMsg(epoch.Add(11*time.Second)))
	if car.Index() != 0 {
		t.Errorf("advanced before the period: index %d", car.Index())
	}
	m = update(t, m, RotateMsg(epoch.Add(12*time.Second)))
	if car.Index() != 1 {
		t.Errorf("index = %d, want 1 after 12s", car.Index())
	}
	update(t, m, RotateMsg(epoch.Add(60*time.Second)))
	if car.Index() != 2 {
		t.Errorf("a late poll advances once: index %d, want 2", car.Index())
	}
}

func TestCarouselManualNavigation(t *testing.T) {
	m, _ := newTestSession(t)
	car := m.carousel.Carousel()

	m = update(t, m, keyMsg("left"))
	if car.Index() != 2 {
		t.Errorf("prev from first = %d, want wrap to 2", car.Index())
	}
	m = update(t, m, keyMsg("right"))
	if car.Index() != 0 {
		t.Errorf("next from last = %d, want wrap to 0", car.Index())
	}
	update(t, m, keyMsg("2"))
	if car.Index() != 1 {
		t.Errorf("number key = %d, want 1", car.Index())
	}
}

func TestSessionOpensAndClosesGame(t *testing.T) {
	m, clock := newTestSession(t)
	car := m.carousel.Carousel()

	m = update(t, m, keyMsg("enter"))
	if !m.InGame() {
		t.Fatal("enter must open the slide's game")
	}
	if m.game.game.ID() != "aviation" {
		t.Errorf("opened %q, want aviation", m.game.game.ID())
	}
	if !car.Held() {
		t.Error("carousel must stop while a game is open")
	}

	// No auto-advance while playing.
	m = update(t, m, RotateMsg(epoch.Add(time.Minute)))
	if car.Index() != 0 {
		t.Errorf("advanced during play: index %d", car.Index())
	}

	clock.Advance(time.Minute)
	m = update(t, m, keyMsg("q"))
	m = update(t, m, TickMsg{Serial: m.game.serial})
	if m.InGame() {
		t.Fatal("closing the game must return to the carousel")
	}
	if car.Held() {
		t.Error("carousel must resume after the game closes")
	}
	if want := clock.Now().Add(12 * time.Second); !car.Due().Equal(want) {
		t.Errorf("due = %v, want a full period after return (%v)", car.Due(), want)
	}
}

func TestSessionResultsBoard(t *testing.T) {
	m, _ := newTestSession(t)

	m = update(t, m, keyMsg("tab"))
	if m.results == nil {
		t.Fatal("tab must open the results board")
	}
	if got := m.results.CurrentGame(); got != "aviation" {
		t.Errorf("results start at %q, want the current slide's game", got)
	}

	m = update(t, m, keyMsg("esc"))
	if m.results != nil {
		t.Error("esc must return to the carousel")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q on the carousel must quit")
	}
	if next.(SessionModel).View() != "" {
		t.Error("quitting view must be empty")
	}
}
