package render

import (
	"dungeon-lore/internal/colour"
	"dungeon-lore/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// termColors maps the 16 game colours onto the terminal palette. The dark
// half uses the ANSI "normal" colours and the light half the bright ones.
var termColors = [colour.NumTermColours]tcell.Color{
	colour.Black:        tcell.ColorBlack,
	colour.Blue:         tcell.ColorNavy,
	colour.Green:        tcell.ColorGreen,
	colour.Cyan:         tcell.ColorTeal,
	colour.Red:          tcell.ColorMaroon,
	colour.Magenta:      tcell.ColorPurple,
	colour.Brown:        tcell.ColorOlive,
	colour.LightGrey:    tcell.ColorSilver,
	colour.DarkGrey:     tcell.ColorGray,
	colour.LightBlue:    tcell.ColorBlue,
	colour.LightGreen:   tcell.ColorLime,
	colour.LightCyan:    tcell.ColorAqua,
	colour.LightRed:     tcell.ColorRed,
	colour.LightMagenta: tcell.ColorFuchsia,
	colour.Yellow:       tcell.ColorYellow,
	colour.White:        tcell.ColorWhite,
}

// TermColor converts a game colour to a tcell colour. Element colours are
// resolved to their palette colour for index i.
func TermColor(c colour.Colour, i int) tcell.Color {
	if c >= colour.NumTermColours {
		c = colour.ElementColour(c, i)
	}
	if c >= colour.NumTermColours {
		return tcell.ColorSilver
	}
	return termColors[c]
}

// TileStyle holds the glyph and colour used to draw one vault tile.
type TileStyle struct {
	Glyph rune
	Color tcell.Color
}

// TileStyles maps tile kinds to how they are drawn.
var TileStyles = map[gamemap.TileKind]TileStyle{
	gamemap.TileWall:  {Glyph: '#', Color: tcell.ColorOlive},
	gamemap.TileFloor: {Glyph: '.', Color: tcell.ColorSilver},
	gamemap.TileDoor:  {Glyph: '+', Color: tcell.ColorOlive},
	gamemap.TileShop:  {Glyph: '0', Color: tcell.ColorYellow},
}
