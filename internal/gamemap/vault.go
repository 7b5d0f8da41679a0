package gamemap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyVault is returned when a vault layout has no rows.
var ErrEmptyVault = errors.New("empty vault layout")

// ParseVault builds a GameMap from a vault layout. Glyphs:
//
//	x  wall
//	.  floor
//	+  door
//	S  shop entrance
//
// Blank leading and trailing lines are ignored; short rows are padded with
// wall. Any other glyph is an error.
func ParseVault(layout string) (*GameMap, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, strings.TrimLeft(line, " \t"))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyVault
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	m := New(width, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case 'x':
			case '.':
				m.Set(x, y, MakeFloor())
			case '+':
				m.Set(x, y, MakeDoor())
			case 'S':
				m.Set(x, y, MakeShop())
			default:
				return nil, fmt.Errorf("vault row %d col %d: unknown glyph %q", y, x, r[x])
			}
		}
	}
	return m, nil
}

// String renders the map back into vault glyphs, one row per line.
func (m *GameMap) String() string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b.WriteByte(m.Tiles[y][x].Kind.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
