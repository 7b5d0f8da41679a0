package render

import (
	"dungeon-lore/internal/formatted"
	"dungeon-lore/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws formatted text, vaults and panels onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear blanks the screen.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawFormatted draws s starting at (x, y), skipping the first skip lines
// and stopping after rows lines. It returns the number of lines in s.
func (r *Renderer) DrawFormatted(x, y, skip, rows int, s *formatted.String) int {
	lines := s.Lines()
	for i, line := range lines {
		row := i - skip
		if row < 0 {
			continue
		}
		if row >= rows {
			break
		}
		col := x
		for _, run := range line {
			col = r.drawRun(col, y+row, run)
		}
	}
	return len(lines)
}

// drawRun draws one coloured run and returns the next free column. Element
// colours are resolved per character.
func (r *Renderer) drawRun(x, y int, run formatted.Run) int {
	sw, _ := r.screen.Size()
	i := 0
	for _, ch := range run.Text {
		if x >= sw {
			break
		}
		style := tcell.StyleDefault.Foreground(TermColor(run.Colour, i)).Background(tcell.ColorBlack)
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
		i++
	}
	return x
}

// DrawVault draws the vault with its top-left corner at (x, y).
func (r *Renderer) DrawVault(x, y int, m *gamemap.GameMap) {
	for vy := 0; vy < m.Height; vy++ {
		for vx := 0; vx < m.Width; vx++ {
			ts, ok := TileStyles[m.At(vx, vy).Kind]
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Foreground(ts.Color).Background(tcell.ColorBlack)
			r.screen.SetContent(x+vx, y+vy, ts.Glyph, nil, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
