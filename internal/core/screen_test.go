package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColor(1, 1, '#', ColorOrange)

	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected orange '#'", c)
	}
}

func TestScreenWideRune(t *testing.T) {
	s := NewScreen(6, 1)

	used := s.SetColor(1, 0, '🍕', ColorDefault)
	if used != 2 {
		t.Fatalf("wide rune should use 2 cells, used %d", used)
	}
	if !s.GetCell(2, 0).Cont {
		t.Error("cell after a wide rune should be a continuation")
	}
	if row := s.Row(0); row != " 🍕   " {
		t.Errorf("Row(0) = %q", row)
	}

	// Overwriting the continuation blanks the head.
	s.Set(2, 0, 'x')
	if s.Get(1, 0) != ' ' {
		t.Errorf("head of a split wide rune should be blank, got %q", s.Get(1, 0))
	}
	if row := s.Row(0); row != "  x   " {
		t.Errorf("Row(0) after overwrite = %q", row)
	}

	// A wide rune on the last column does not fit.
	s.SetColor(5, 0, '🍕', ColorDefault)
	if s.Get(5, 0) != ' ' {
		t.Error("wide rune past the edge should be dropped")
	}
}

func TestScreenGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		used int
		row  string
	}{
		{"selector on plain letter", "a\uFE0Fb", 2, "a\uFE0Fb     "},
		{"emoji presentation selector", "\u2708\uFE0Fb", 3, "\u2708\uFE0Fb    "},
		{"wastebasket", "\U0001F5D1\uFE0F", 2, "\U0001F5D1\uFE0F     "},
		{"lone selector", "\uFE0F", 0, "       "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(7, 1)
			if used := s.DrawTextColor(0, 0, tt.text, ColorDefault); used != tt.used {
				t.Errorf("used = %d, want %d", used, tt.used)
			}
			if row := s.Row(0); row != tt.row {
				t.Errorf("Row(0) = %q, want %q", row, tt.row)
			}
		})
	}
}

func TestScreenWideClusterOccupiesTwoCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColor(0, 0, "\u2708\uFE0F", ColorSky)

	head := s.GetCell(0, 0)
	if head.Rune != '\u2708' || head.Tail != "\uFE0F" {
		t.Errorf("head = %+v, want plane with selector", head)
	}
	if !s.GetCell(1, 0).Cont {
		t.Error("second cell should be a continuation")
	}
	if w := TextWidth("\u2708\uFE0F"); w != 2 {
		t.Errorf("TextWidth = %d, want 2", w)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '╭' || s.Get(5, 1) != '╮' || s.Get(1, 4) != '╰' || s.Get(5, 4) != '╯' {
		t.Error("box corners not drawn")
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}
