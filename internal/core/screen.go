package core

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Tail  string // Rest of the grapheme cluster, e.g. a variation selector
	Color Color
	Cont  bool // Right half of a wide rune; not printed
}

// Text returns the printable cluster held by the cell.
func (c Cell) Text() string {
	if c.Cont {
		return ""
	}
	return string(c.Rune) + c.Tail
}

// TextWidth returns the number of cells text occupies on a Screen.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
// Wide runes (emoji tags) occupy two cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.allocate()
	s.Clear()

	copyW := Min(oldW, s.width)
	copyH := Min(oldH, s.height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], old[y][:copyW])
		// A wide head cut in half by the new edge becomes blank.
		if copyW > 0 && copyW < oldW && old[y][copyW].Cont {
			s.cells[y][copyW-1] = blank
		}
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a colored rune and returns the number of cells it used.
// A wide rune that would not fit on the row is dropped.
func (s *Screen) SetColor(x, y int, r rune, c Color) int {
	return s.setCluster(x, y, string(r), TextWidth(string(r)), c)
}

// setCluster stores one grapheme cluster of width w at (x, y).
// Zero-width clusters take no cell.
func (s *Screen) setCluster(x, y int, cluster string, w int, c Color) int {
	if w == 0 || cluster == "" {
		return 0
	}
	if x < 0 || x+w > s.width || y < 0 || y >= s.height {
		return w
	}
	r, size := utf8.DecodeRuneInString(cluster)
	for i := w - 1; i >= 0; i-- {
		s.release(x+i, y)
	}
	s.cells[y][x] = Cell{Rune: r, Tail: cluster[size:], Color: c}
	for i := 1; i < w; i++ {
		s.cells[y][x+i] = Cell{Rune: ' ', Color: c, Cont: true}
	}
	return w
}

// release clears any wide rune that overlaps the cell before it is reused.
func (s *Screen) release(x, y int) {
	row := s.cells[y]
	if row[x].Cont && x > 0 {
		row[x-1] = blank
	}
	if x+1 < s.width && row[x+1].Cont {
		row[x+1] = blank
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes colored text and returns the number of cells used.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) int {
	start := x
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		x += s.setCluster(x, y, cluster, w, c)
	}
	return x - start
}

// DrawGlyph draws a short string only if it fits entirely inside clip.
// It reports whether anything was drawn.
func (s *Screen) DrawGlyph(clip Rect, x, y int, glyph string, c Color) bool {
	w := TextWidth(glyph)
	if w == 0 || x < clip.X || x+w > clip.Right() || y < clip.Y || y >= clip.Bottom() {
		return false
	}
	s.DrawTextColor(x, y, glyph, c)
	return true
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColor(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.SetColor(r.X, r.Y, '╭', c)
	s.SetColor(r.Right()-1, r.Y, '╮', c)
	s.SetColor(r.X, r.Bottom()-1, '╰', c)
	s.SetColor(r.Right()-1, r.Bottom()-1, '╯', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColor(x, r.Y, '─', c)
		s.SetColor(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColor(r.X, y, '│', c)
		s.SetColor(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColor(x+i, y, r, c)
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteString(c.Text())
	}
	return sb.String()
}
