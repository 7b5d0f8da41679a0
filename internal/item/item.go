// Package item models the spell-carrying items whose contents can be
// described: spellbooks and the legacy rods.
package item

import "dungeon-lore/internal/spell"

// Kind is the item's base type.
type Kind uint8

const (
	KindBook Kind = iota
	KindRod
)

// Book is an item that holds spells.
type Book struct {
	Name   string
	Kind   Kind
	Spells []spell.ID
}

// SpellList returns the valid spells in the book, in order.
func (b *Book) SpellList() []spell.ID {
	if b == nil {
		return nil
	}
	var out []spell.ID
	for _, s := range b.Spells {
		if spell.Valid(s) {
			out = append(out, s)
		}
	}
	return out
}

// HasSpells reports whether the book holds at least one valid spell.
func (b *Book) HasSpells() bool { return len(b.SpellList()) > 0 }
