package cabinet

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/career-arcade/internal/core"
)

// Visual characters for rendering
const (
	BarFull  = '█'
	BarEmpty = '░'
	LifeFull = '♥'
	LifeLost = '♡'
	barWidth = 20
)

// Render draws the field, HUD and any phase overlay.
func (c *Cabinet) Render(dst *core.Screen) {
	c.ensure()
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	field := c.Field(w, h)
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), c.look.Border)

	if c.look.Scenery != nil {
		c.look.Scenery(dst, field, c.frames)
	}

	for _, e := range c.eng.Entities() {
		x, y := field.ToCell(e.Pos)
		color := core.ColorDefault
		if c.look.EntityColor != nil {
			color = c.look.EntityColor(e)
		}
		dst.DrawGlyph(field, x, y, e.Tag, color)
	}
	for _, fx := range c.eng.Effects() {
		x, y := field.ToCell(fx.Pos)
		dst.DrawGlyph(field, x, y, c.look.Effect, core.ColorBrightYellow)
	}

	px, py := field.ToCell(c.eng.Player())
	if !dst.DrawGlyph(field, px, py, c.look.Player, c.look.PlayerColor) {
		// Keep a wide player visible at the right edge.
		dst.DrawGlyph(field, px-1, py, c.look.Player, c.look.PlayerColor)
	}

	c.drawHUD(dst)
	dst.DrawTextCentered(h-1, c.v.Tagline, core.ColorGray)

	st := c.eng.State()
	switch {
	case st.Phase == core.PhasePaused:
		msg := c.look.Interstitial
		drawMessage(dst, core.ColorBrightGreen, msg.Title, msg.Body, "[Enter] ¡SÍ, CONTINUAR!   [n] Salir")
	case st.Phase == core.PhaseWon:
		drawMessage(dst, core.ColorBrightYellow, "🏆 ¡GANASTE!", "Completaste el reto. Reclama tu premio dejando tus datos.", "[Enter] Reclamar premio   [q] Salir")
	case st.GameOver:
		drawMessage(dst, core.ColorBrightRed, "💥 ¡Game Over!", fmt.Sprintf("Puntos: %d", int(math.Floor(st.Score))), "[r] Jugar de nuevo   [q] Salir")
	}
}

// drawHUD renders the title, progress bar and lives on the top row.
func (c *Cabinet) drawHUD(dst *core.Screen) {
	st := c.eng.State()
	x := dst.DrawTextColor(1, 0, c.v.Title, core.ColorWhite) + 3

	filled := int(math.Floor(st.Progress() * barWidth))
	bar := strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), barWidth-filled)
	x += dst.DrawTextColor(x, 0, bar, core.ColorGreen)
	dst.DrawTextColor(x+1, 0, fmt.Sprintf("%d/%d", int(math.Floor(st.Score)), int(st.Ceiling)), core.ColorWhite)

	if st.MaxLives > 0 {
		lives := strings.Repeat(string(LifeFull), st.Lives) + strings.Repeat(string(LifeLost), st.MaxLives-st.Lives)
		dst.DrawTextColor(dst.Width()-core.TextWidth(lives)-2, 0, lives, core.ColorRed)
	}
}

// drawMessage draws a bordered message box in the center of the screen.
func drawMessage(dst *core.Screen, color core.Color, title, body, hint string) {
	w, h := dst.Width(), dst.Height()
	inner := core.Max(core.Min(w-6, 56), 10)
	lines := Wrap(body, inner)

	boxW := inner + 4
	boxH := len(lines) + 6
	boxX := (w - boxW) / 2
	boxY := core.Max((h-boxH)/2, 0)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	center := func(y int, text string, c core.Color) {
		tx := boxX + (boxW-core.TextWidth(text))/2
		dst.DrawTextColor(tx, y, text, c)
	}
	center(boxY+1, title, color)
	for i, line := range lines {
		center(boxY+3+i, line, core.ColorWhite)
	}
	center(boxY+boxH-2, hint, core.ColorGray)
}

// Wrap splits text into lines no wider than width cells. Words longer
// than width are placed on their own line.
func Wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := core.TextWidth(word)
		if curW > 0 && curW+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
