package carousel

import (
	"testing"
	"time"

	"github.com/vovakirdan/career-arcade/internal/config"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func slides() []config.Career {
	return config.DefaultCareersConfig().Careers
}

func TestNavigationWraps(t *testing.T) {
	c := New(slides(), 12*time.Second, t0)

	c.Prev()
	if c.Current().ID != "bartender" {
		t.Errorf("prev from first = %q, want bartender", c.Current().ID)
	}
	c.Next()
	if c.Current().ID != "aviation" {
		t.Errorf("next from last = %q, want aviation", c.Current().ID)
	}
	if !c.Select(1) || c.Current().ID != "chef" {
		t.Errorf("select 1 = %q, want chef", c.Current().ID)
	}
	if c.Select(3) || c.Index() != 1 {
		t.Error("out of range select must be refused")
	}
}

func TestAutoAdvance(t *testing.T) {
	c := New(slides(), 12*time.Second, t0)

	if c.Tick(t0.Add(11 * time.Second)) {
		t.Error("advanced before the period")
	}
	if !c.Tick(t0.Add(12 * time.Second)) {
		t.Fatal("did not advance after the period")
	}
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1", c.Index())
	}

	// A long gap advances once.
	if !c.Tick(t0.Add(time.Hour)) || c.Index() != 2 {
		t.Errorf("index = %d after a long gap, want 2", c.Index())
	}
}

func TestHoldWhileGameOpen(t *testing.T) {
	c := New(slides(), 12*time.Second, t0)
	c.Hold()

	if c.Tick(t0.Add(time.Minute)) {
		t.Error("advanced while a game was open")
	}

	c.Release(t0.Add(time.Minute))
	if c.Tick(t0.Add(time.Minute + 11*time.Second)) {
		t.Error("advanced before a full period after release")
	}
	if !c.Tick(t0.Add(time.Minute + 12*time.Second)) {
		t.Error("did not resume after release")
	}
}

func TestEmptyCarousel(t *testing.T) {
	c := New(nil, time.Second, t0)
	c.Next()
	c.Prev()
	if c.Tick(t0.Add(time.Hour)) {
		t.Error("empty carousel advanced")
	}
	if c.Current() != (config.Career{}) {
		t.Error("empty carousel should return the zero career")
	}
}
