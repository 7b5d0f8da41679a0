// Package monster describes what the player knows about a monster: its
// type, hit dice, pronoun, position and the spells it may cast.
package monster

import (
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/spell"
)

// Type identifies a monster species.
type Type int

// SlotFlag says how a monster casts a spell, which decides what can stop it.
type SlotFlag uint8

const (
	Natural SlotFlag = iota
	Vocal
	Magical
	Priest
	Wizard
)

// Slot is one spell a monster may cast.
type Slot struct {
	Spell spell.ID
	Flag  SlotFlag
}

// Pronoun is the grammatical gender used for the monster.
type Pronoun uint8

const (
	It Pronoun = iota
	He
	She
	They
)

// Attitude is the monster's disposition towards the player.
type Attitude uint8

const (
	Hostile Attitude = iota
	Neutral
	Friendly
)

// Info is the player's knowledge of one monster.
type Info struct {
	Type     Type
	Name     string
	HD       int
	SpellHD  int // 0 means the monster casts with its HD
	Pronoun  Pronoun
	Attitude Attitude
	Pos      gamemap.Pos
	Slots    []Slot
}

// HasSpells reports whether the monster is known to cast anything.
func (mi *Info) HasSpells() bool { return len(mi.Slots) > 0 }

// CasterHD returns the hit dice the monster casts real spells with.
func (mi *Info) CasterHD() int {
	if mi.SpellHD > 0 {
		return mi.SpellHD
	}
	return mi.HD
}

// UniqueSpells returns the slots with the given flag, keeping only the
// first slot for each spell.
func (mi *Info) UniqueSpells(flag SlotFlag) []Slot {
	var out []Slot
	seen := make(map[spell.ID]bool)
	for _, s := range mi.Slots {
		if s.Flag != flag || seen[s.Spell] {
			continue
		}
		seen[s.Spell] = true
		out = append(out, s)
	}
	return out
}

// Subjective returns the subject pronoun, e.g. "she".
func (mi *Info) Subjective() string {
	switch mi.Pronoun {
	case He:
		return "he"
	case She:
		return "she"
	case They:
		return "they"
	}
	return "it"
}

// Plural reports whether verbs agreeing with the pronoun take plural form.
func (mi *Info) Plural() bool { return mi.Pronoun == They }

// LivingSpellFor returns the spell that Conjure Living Spells cast by a
// monster of type t embodies.
func LivingSpellFor(t Type) spell.ID {
	if d, ok := table[t]; ok && d.LivingSpell != 0 {
		return d.LivingSpell
	}
	return spell.MagicDart
}
