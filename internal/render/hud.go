package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusHeight is the number of rows DrawStatus uses at the bottom of the
// screen.
const StatusHeight = 3

// DrawHeader draws a title on the top row, right-aligned key hints and a
// separator below them.
func (r *Renderer) DrawHeader(title, hints string) {
	sw, _ := r.screen.Size()
	r.drawText(0, 0, title, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if w := runewidth.StringWidth(hints); w+runewidth.StringWidth(title)+1 < sw {
		r.drawText(sw-w, 0, hints, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	r.drawHLine(1, tcell.ColorGray)
}

// DrawStatus renders the separator, position line and message at the bottom
// of the screen.
func (r *Renderer) DrawStatus(position, message string) {
	_, sh := r.screen.Size()
	y := sh - StatusHeight

	r.drawHLine(y, tcell.ColorGray)
	r.drawText(0, y+1, position, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if message != "" {
		r.drawText(0, y+2, message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	sw, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		if col >= sw {
			break
		}
		r.putGlyph(col, y, string(ch), style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
