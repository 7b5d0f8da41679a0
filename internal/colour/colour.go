package colour

import "strings"

// Colour is a terminal colour index. Values below NumTermColours are the 16
// plain terminal colours; higher values are element colours that cycle
// through a palette when drawn.
type Colour uint8

const (
	Black Colour = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
	NumTermColours
)

// Element colours.
const (
	ElementFire Colour = iota + NumTermColours
	ElementIce
	ElementElectricity
	ElementMagic
	ElementPoison
	ElementEarth
	ElementNecro
	ElementHoly
	NumColours
)

// Menu colours used when listing spells to the player.
const (
	ColUnknown     = LightGrey
	ColMemorized   = LightBlue
	ColUnmemorized = LightGrey
	ColUseless     = DarkGrey
	ColForbidden   = LightRed
)

var names = [NumTermColours]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgrey",
	"darkgrey", "lightblue", "lightgreen", "lightcyan", "lightred",
	"lightmagenta", "yellow", "white",
}

var palettes = map[Colour][]Colour{
	ElementFire:        {Red, Yellow, LightRed},
	ElementIce:         {White, LightCyan, LightBlue, Blue},
	ElementElectricity: {LightCyan, LightBlue, Cyan},
	ElementMagic:       {LightMagenta, LightBlue, Magenta, LightGreen},
	ElementPoison:      {Green, LightGreen},
	ElementEarth:       {Brown, Yellow},
	ElementNecro:       {DarkGrey, Magenta, LightMagenta},
	ElementHoly:        {White, Yellow},
}

// Name returns the tag name for a terminal colour. Element colours report
// the name of the first colour in their palette.
func Name(c Colour) string {
	if c < NumTermColours {
		return names[c]
	}
	if p, ok := palettes[c]; ok {
		return names[p[0]]
	}
	return names[LightGrey]
}

// Parse returns the terminal colour named s. Both "grey" and "gray"
// spellings are accepted.
func Parse(s string) (Colour, bool) {
	s = strings.ReplaceAll(strings.ToLower(s), "gray", "grey")
	for i, n := range names {
		if n == s {
			return Colour(i), true
		}
	}
	return 0, false
}

// ElementColour picks the terminal colour used for the i-th character drawn
// in element colour c. Plain terminal colours are returned unchanged.
func ElementColour(c Colour, i int) Colour {
	p, ok := palettes[c]
	if !ok {
		if c < NumTermColours {
			return c
		}
		return LightGrey
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}
