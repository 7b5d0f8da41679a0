// Package player holds the parts of the player's state that spell
// descriptions depend on.
package player

import (
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/spell"
)

// WillInvuln is the willpower of a player immune to hexes.
const WillInvuln = 5000

// Player is the viewing character.
type Player struct {
	Position gamemap.Pos
	XL       int
	Will     int

	// Memorised spells, and every spell ever seen in a book.
	Memorised map[spell.ID]bool
	Library   map[spell.ID]bool

	// HatedSchools are schools the player's god forbids.
	HatedSchools spell.School
	// UselessSchools are schools the player's species cannot use.
	UselessSchools spell.School
}

// New returns a player at pos with the given experience level.
func New(pos gamemap.Pos, xl int) *Player {
	return &Player{
		Position:  pos,
		XL:        xl,
		Will:      20 * xl,
		Memorised: make(map[spell.ID]bool),
		Library:   make(map[spell.ID]bool),
	}
}

// Memorise learns s. It also adds s to the library.
func (p *Player) Memorise(s spell.ID) {
	p.Memorised[s] = true
	p.Library[s] = true
}

func (p *Player) Pos() gamemap.Pos            { return p.Position }
func (p *Player) HasSpell(s spell.ID) bool    { return p.Memorised[s] }
func (p *Player) InLibrary(s spell.ID) bool   { return p.Library[s] }
func (p *Player) ExperienceLevel() int        { return p.XL }
func (p *Player) Willpower() int              { return p.Will }
func (p *Player) ImmuneToHex(spell.ID) bool   { return p.Will >= WillInvuln }
func (p *Player) GodHates(s spell.ID) bool    { return p.inSchools(s, p.HatedSchools) }
func (p *Player) Useless(s spell.ID) bool     { return p.inSchools(s, p.UselessSchools) }
func (p *Player) CanMemorise(s spell.ID) bool { return !p.Useless(s) }

// SpellLevels is the number of unused spell levels.
func (p *Player) SpellLevels() int {
	used := 0
	for s, ok := range p.Memorised {
		if ok {
			used += spell.LevelsRequired(s)
		}
	}
	return max(0, p.XL-used)
}

func (p *Player) inSchools(s spell.ID, schools spell.School) bool {
	return schools != 0 && spell.Typematch(s, schools)
}
