// Package spell is the static spell table and the accessors the rest of the
// game uses to ask about a spell: its title, schools, level, range and, for
// monster casters, the damage it deals at a given power.
package spell

import (
	"fmt"
	"strings"
)

// ID identifies a spell. The zero value is no spell.
type ID int

// School is a bit set of spell schools.
type School uint32

const (
	Conjuration School = 1 << iota
	Hexes
	Fire
	Ice
	Transmutation
	Necromancy
	Summoning
	Translocation
	Poison
	Earth
	Air
)

// schoolOrder fixes the order schools are listed in.
var schoolOrder = []struct {
	school School
	name   string
}{
	{Conjuration, "Conjuration"},
	{Hexes, "Hexes"},
	{Fire, "Fire"},
	{Ice, "Ice"},
	{Transmutation, "Transmutation"},
	{Necromancy, "Necromancy"},
	{Summoning, "Summoning"},
	{Translocation, "Translocation"},
	{Poison, "Poison"},
	{Earth, "Earth"},
	{Air, "Air"},
}

// Flag is a bit set of spell properties.
type Flag uint32

const (
	// SelfEnch spells only affect the caster and never show a range.
	SelfEnch Flag = 1 << iota
	// WLCheck spells are resisted by willpower.
	WLCheck
	// MonsAbjure marks summonings that let a monster caster abjure.
	MonsAbjure
	// Monster marks innate abilities rather than learnt spells.
	Monster
)

// LOSRadius is the range of spells that reach anything in sight.
const LOSRadius = 7

// Def is one row of the spell table.
type Def struct {
	Title    string
	Schools  School
	Level    int
	Flags    Flag
	MinRange int
	MaxRange int
	PowerCap int
	Zap      Zap
	Breaths  []ID
}

// Dice is an NdS damage roll.
type Dice struct {
	Num, Size int
}

func (d Dice) String() string { return fmt.Sprintf("%dd%d", d.Num, d.Size) }

// Zero reports whether the dice roll no damage at all.
func (d Dice) Zero() bool { return d.Num == 0 || d.Size == 0 }

func lookup(id ID) (Def, bool) {
	d, ok := table[id]
	return d, ok
}

// Valid reports whether id names a spell in the table.
func Valid(id ID) bool {
	_, ok := lookup(id)
	return ok
}

// Title returns the spell's display name, or "buggy" for an unknown spell.
func Title(id ID) string {
	if d, ok := lookup(id); ok {
		return d.Title
	}
	return "buggy"
}

// ByTitle finds a spell by its display name, ignoring case.
func ByTitle(title string) (ID, bool) {
	for id, d := range table {
		if strings.EqualFold(d.Title, title) {
			return id, true
		}
	}
	return 0, false
}

// Difficulty returns the spell level.
func Difficulty(id ID) int {
	d, _ := lookup(id)
	return d.Level
}

// Flags returns the spell's property flags.
func Flags(id ID) Flag {
	d, _ := lookup(id)
	return d.Flags
}

// Has reports whether the spell has every flag in f.
func Has(id ID, f Flag) bool { return Flags(id)&f == f }

// Typematch reports whether the spell belongs to school s.
func Typematch(id ID, s School) bool {
	d, _ := lookup(id)
	return d.Schools&s != 0
}

// Schools lists the long names of the spell's schools, '/'-separated.
func Schools(id ID) string {
	var names []string
	for _, s := range schoolOrder {
		if Typematch(id, s.school) {
			names = append(names, s.name)
		}
	}
	return strings.Join(names, "/")
}

// LevelsRequired is the number of spell levels memorising the spell uses.
func LevelsRequired(id ID) int { return Difficulty(id) }

// MonsterPower is the spell power a monster of the given hit dice casts at.
func MonsterPower(id ID, hd int) int {
	return 12 * hd
}

// Range returns the spell's range at power pow. Zero means the spell has no
// meaningful range.
func Range(id ID, pow int) int {
	d, ok := lookup(id)
	if !ok {
		return 0
	}
	if d.MinRange == d.MaxRange || d.PowerCap <= 0 {
		return d.MinRange
	}
	pow = max(0, min(pow, d.PowerCap))
	return d.MinRange + (d.MaxRange-d.MinRange)*pow/d.PowerCap
}

// IsSOHBreath reports whether the spell stands for a set of breaths that a
// Serpent of Hell picks from.
func IsSOHBreath(id ID) bool {
	d, _ := lookup(id)
	return len(d.Breaths) > 0
}

// Breaths returns the breaths a Serpent of Hell breath spell expands to.
func Breaths(id ID) []ID {
	d, _ := lookup(id)
	return append([]ID(nil), d.Breaths...)
}

// LivingSpellCount is how many living spells Conjure Living Spells creates
// when it conjures copies of spell.
func LivingSpellCount(id ID) int {
	return 1 + Difficulty(id)/2
}
