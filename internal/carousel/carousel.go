// Package carousel holds the career slide rotation: manual navigation
// with wrap-around and a timed auto-advance that stops while a game is open.
package carousel

import (
	"time"

	"github.com/vovakirdan/career-arcade/internal/config"
)

// Carousel is the slide state. It is driven by the host clock.
type Carousel struct {
	slides []config.Career
	index  int
	period time.Duration
	due    time.Time
	held   bool // A game is open
}

// New creates a carousel showing the first slide. A non-positive period
// disables auto-advance.
func New(slides []config.Career, period time.Duration, now time.Time) *Carousel {
	c := &Carousel{slides: slides, period: period}
	c.rearm(now)
	return c
}

func (c *Carousel) rearm(now time.Time) {
	if c.period > 0 {
		c.due = now.Add(c.period)
	}
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return len(c.slides) }

// Index returns the current slide index.
func (c *Carousel) Index() int { return c.index }

// Slides returns the catalogue in display order.
func (c *Carousel) Slides() []config.Career { return c.slides }

// Current returns the visible slide, or the zero Career when empty.
func (c *Carousel) Current() config.Career {
	if len(c.slides) == 0 {
		return config.Career{}
	}
	return c.slides[c.index]
}

// Next moves to the following slide, wrapping at the end.
func (c *Carousel) Next() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index + 1) % n
	}
}

// Prev moves to the previous slide, wrapping at the start.
func (c *Carousel) Prev() {
	if n := len(c.slides); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
}

// Select jumps to slide i if it exists.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= len(c.slides) {
		return false
	}
	c.index = i
	return true
}

// Tick auto-advances when the period has elapsed and no game is open.
// It reports whether the slide changed. Missed periods advance only once.
func (c *Carousel) Tick(now time.Time) bool {
	if c.held || c.period <= 0 || len(c.slides) < 2 || now.Before(c.due) {
		return false
	}
	c.Next()
	c.rearm(now)
	return true
}

// Hold stops auto-advance while a game is open.
func (c *Carousel) Hold() { c.held = true }

// Release resumes auto-advance with a full period from now.
func (c *Carousel) Release(now time.Time) {
	c.held = false
	c.rearm(now)
}

// Held reports whether auto-advance is stopped.
func (c *Carousel) Held() bool { return c.held }

// Due returns the next auto-advance deadline.
func (c *Carousel) Due() time.Time { return c.due }
