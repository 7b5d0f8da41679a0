// Package describe renders the spells of a book or a monster for the
// description screens: a colourised column listing, a one-line summary and
// a JSON form for the remote display client.
package describe

import (
	"dungeon-lore/internal/colour"
	"dungeon-lore/internal/formatted"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/spell"
	"fmt"
	"strings"
)

// nameWidth is the width of the spell name column, which also holds the
// effect and range strings of monster spells.
const nameWidth = 30

// schoolWidth is the width of the school column in book listings.
const schoolWidth = 30

// Describer renders spell descriptions for one viewer.
type Describer struct {
	viewer Viewer
}

// New returns a Describer for v. A nil v describes spells outside a game.
func New(v Viewer) *Describer {
	return &Describer{viewer: v}
}

func (d *Describer) inGame() bool { return d.viewer != nil }

// Spellset lists every group in ss. source is the book being read, or nil
// for a monster's spells; mi is the monster, or nil.
func (d *Describer) Spellset(ss Spellset, source *item.Book, mi *monster.Info) *formatted.String {
	out := formatted.New()
	letters := MapCharsToSpells(ss, source)
	for _, b := range ss {
		d.describeBook(out, b, letters, source, mi)
	}
	return out
}

func (d *Describer) describeBook(out *formatted.String, b Book, letters []Letter, source *item.Book, mi *monster.Info) {
	out.TextColour(colour.LightGrey)
	out.Cprintf("%s", b.Label)

	// Only books get the column header.
	if source != nil {
		out.Cprintf("\n Spells                            Type                      Level")
		if d.inGame() {
			out.Cprintf("       Known")
		}
	}
	out.Cprintf("\n")

	double := doubleColumn(source)
	firstInRow := true
	hd := 0
	if mi != nil {
		hd = mi.CasterHD()
	}

	for _, s := range b.Spells {
		out.Cprintf(" ")
		if mi == nil {
			out.TextColour(d.listColour(s, source))
		}

		rangeStr := d.RangeString(s, mi, hd)
		effect := d.EffectString(s, mi)

		effectLen := len(effect)
		rangeLen := 0
		if rangeStr != "" {
			rangeLen = 3
		}
		gap := ""
		if effectLen > 0 && rangeLen > 0 {
			gap = " "
		}
		chop := nameWidth - effectLen - rangeLen - len(gap)

		if effectLen > 0 && !spell.Has(s, spell.WLCheck) {
			effect = Colourize(effect, DamageColour(s))
		}

		name := spell.Title(s)
		if s == spell.LehudibsCrystalSpear && chop < len(name) {
			name = "Crystal Spear"
		}
		line := fmt.Sprintf("%c - %s%s%s%s", letterFor(letters, s),
			escape(formatted.Chop(name, chop)), effect, gap, rangeStr)
		out.Append(formatted.Parse(line, out.Colour()))

		if double {
			if firstInRow {
				out.Cprintf("    ")
			} else {
				out.Cprintf("\n")
			}
			firstInRow = !firstInRow
			continue
		}

		schools := spell.Schools(s)
		if source.Kind == item.KindRod {
			schools = "Evocations"
		}
		known := ""
		if mi == nil && d.inGame() {
			known = "          no"
			if d.viewer.InLibrary(s) {
				known = "         yes"
			}
		}
		out.Cprintf("%s%d%s\n", formatted.Chop(schools, schoolWidth), spell.Difficulty(s), known)
	}

	// Finish a half-filled row.
	if double && len(b.Spells)%2 == 1 {
		out.Cprintf("\n")
	}
}

func escape(s string) string { return strings.ReplaceAll(s, "<", "<<") }

// ItemSpells is the plain-text column listing of the spells in b.
func (d *Describer) ItemSpells(b *item.Book) string {
	return d.Spellset(ItemSpellset(b), b, nil).String()
}

// MonsterSpells is the listing of the spells mi may cast.
func (d *Describer) MonsterSpells(mi *monster.Info) *formatted.String {
	return d.Spellset(MonsterSpellset(mi), nil, mi)
}

// TerseSpellList is a one-line summary of b's spells, e.g.
// "Spells: Freeze (L1 Ice) and Sting (L1 Poison)". A spell with no school
// is listed as "(L4)" rather than with a trailing space.
func TerseSpellList(b *item.Book) string {
	var descs []string
	for _, s := range b.SpellList() {
		level := fmt.Sprintf("L%d", spell.Difficulty(s))
		if schools := spell.Schools(s); schools != "" {
			level += " " + schools
		}
		descs = append(descs, fmt.Sprintf("%s (%s)", spell.Title(s), level))
	}
	return "Spells: " + commaSeparated(descs)
}

// TerseMonsterSpells is TerseSpellList over every spell mi may cast.
func TerseMonsterSpells(mi *monster.Info) string {
	return TerseSpellList(&item.Book{Spells: Contents(MonsterSpellset(mi))})
}

// commaSeparated joins items as "a, b and c".
func commaSeparated(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
