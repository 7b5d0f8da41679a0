package monster

import (
	"dungeon-lore/internal/spell"
	"sort"
	"strings"
)

const (
	Rat Type = iota + 1
	OrcWizard
	OrcHighPriest
	OgreMage
	MerfolkSiren
	WaterNymph
	Xtahua
	SerpentOfHell
	Archmage
)

// Def is one row of the monster table.
type Def struct {
	Name        string
	HD          int
	SpellHD     int
	Pronoun     Pronoun
	Slots       []Slot
	LivingSpell spell.ID
}

var table = map[Type]Def{
	Rat: {Name: "rat", HD: 1, Pronoun: It},
	OrcWizard: {Name: "orc wizard", HD: 3, Pronoun: He, Slots: []Slot{
		{spell.MagicDart, Wizard},
		{spell.Slow, Wizard},
		{spell.Haste, Wizard},
		{spell.Blink, Wizard},
	}},
	OrcHighPriest: {Name: "orc high priest", HD: 11, Pronoun: He, Slots: []Slot{
		{spell.Pain, Priest},
		{spell.Smiting, Priest},
		{spell.CallImp, Priest},
		{spell.Haste, Priest},
	}},
	OgreMage: {Name: "ogre mage", HD: 10, Pronoun: She, Slots: []Slot{
		{spell.Fireball, Wizard},
		{spell.Paralyse, Wizard},
		{spell.LehudibsCrystalSpear, Wizard},
		{spell.Haste, Wizard},
		{spell.Invisibility, Wizard},
	}},
	MerfolkSiren: {Name: "merfolk siren", HD: 7, Pronoun: She, Slots: []Slot{
		{spell.Confuse, Vocal},
		{spell.Slow, Vocal},
	}},
	WaterNymph: {Name: "water nymph", HD: 10, Pronoun: She, Slots: []Slot{
		{spell.Waterstrike, Magical},
		{spell.Blink, Magical},
	}},
	Xtahua: {Name: "Xtahua", HD: 19, Pronoun: He, Slots: []Slot{
		{spell.SearingBreath, Natural},
	}},
	SerpentOfHell: {Name: "Serpent of Hell", HD: 20, Pronoun: It, Slots: []Slot{
		{spell.SerpentOfHellBreath, Natural},
		{spell.Smiting, Priest},
	}},
	Archmage: {Name: "archmage", HD: 16, SpellHD: 18, Pronoun: They, LivingSpell: spell.IronShot, Slots: []Slot{
		{spell.ConjureLivingSpells, Wizard},
		{spell.OrbOfDestruction, Wizard},
		{spell.Glaciate, Wizard},
		{spell.ConjureBallLightning, Wizard},
		{spell.Marshlight, Wizard},
		{spell.SummonSmallMammal, Wizard},
		{spell.Freeze, Wizard},
	}},
}

// New builds the knowledge record for a freshly seen monster of type t.
// ok is false for an unknown type.
func New(t Type) (Info, bool) {
	d, ok := table[t]
	if !ok {
		return Info{}, false
	}
	return Info{
		Type:    t,
		Name:    d.Name,
		HD:      d.HD,
		SpellHD: d.SpellHD,
		Pronoun: d.Pronoun,
		Slots:   append([]Slot(nil), d.Slots...),
	}, true
}

// ByName finds a monster type by name, ignoring case.
func ByName(name string) (Type, bool) {
	for t, d := range table {
		if strings.EqualFold(d.Name, name) {
			return t, true
		}
	}
	return 0, false
}

// Types lists every monster type in table order.
func Types() []Type {
	out := make([]Type, 0, len(table))
	for t := range table {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// All builds a knowledge record for every monster type, in table order.
func All() []Info {
	var out []Info
	for _, t := range Types() {
		mi, _ := New(t)
		out = append(out, mi)
	}
	return out
}
