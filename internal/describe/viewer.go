package describe

import (
	"dungeon-lore/internal/colour"
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/spell"
)

// Viewer is the character reading a description. Describers built with a
// nil Viewer describe spells as seen outside a game, e.g. from the main
// menu's item browser.
type Viewer interface {
	Pos() gamemap.Pos
	HasSpell(spell.ID) bool
	InLibrary(spell.ID) bool
	CanMemorise(spell.ID) bool
	ExperienceLevel() int
	SpellLevels() int
	GodHates(spell.ID) bool
	Useless(spell.ID) bool
	ImmuneToHex(spell.ID) bool
	Willpower() int
}

// highlightByUtility dims spells the viewer could never use.
func (d *Describer) highlightByUtility(s spell.ID, def colour.Colour) colour.Colour {
	if d.viewer.Useless(s) {
		return colour.ColUseless
	}
	return def
}

// listColour is the colour a spell's line is drawn in.
func (d *Describer) listColour(s spell.ID, source *item.Book) colour.Colour {
	if !d.inGame() {
		return colour.ColUnknown
	}
	if source == nil {
		return d.highlightByUtility(s, colour.ColUnknown)
	}
	v := d.viewer
	if v.HasSpell(s) {
		return colour.ColMemorized
	}
	if !v.CanMemorise(s) ||
		v.ExperienceLevel() < spell.Difficulty(s) ||
		v.SpellLevels() < spell.LevelsRequired(s) {
		return colour.ColUseless
	}
	if v.GodHates(s) {
		return colour.ColForbidden
	}
	return colour.ColUnmemorized
}
