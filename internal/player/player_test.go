package player

import (
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/spell"
	"testing"
)

func TestSpellLevels(t *testing.T) {
	p := New(gamemap.Pos{X: 5, Y: 5}, 10)
	if got := p.SpellLevels(); got != 10 {
		t.Fatalf("fresh player spell levels = %d; want 10", got)
	}
	p.Memorise(spell.Fireball)
	p.Memorise(spell.Freeze)
	if got := p.SpellLevels(); got != 4 {
		t.Errorf("after Fireball+Freeze spell levels = %d; want 4", got)
	}
	if !p.InLibrary(spell.Fireball) || !p.HasSpell(spell.Freeze) {
		t.Error("memorised spells should be known and in the library")
	}
}

func TestSchoolsRestrictions(t *testing.T) {
	p := New(gamemap.Pos{}, 5)
	p.HatedSchools = spell.Necromancy
	p.UselessSchools = spell.Fire

	if !p.GodHates(spell.Pain) {
		t.Error("god hating Necromancy should hate Pain")
	}
	if p.GodHates(spell.Freeze) {
		t.Error("Freeze is not Necromancy")
	}
	if p.CanMemorise(spell.Fireball) || !p.Useless(spell.Fireball) {
		t.Error("Fire is useless to this player")
	}
	if !p.CanMemorise(spell.Freeze) {
		t.Error("Freeze should be memorisable")
	}
}

func TestImmuneToHex(t *testing.T) {
	p := New(gamemap.Pos{}, 1)
	if p.ImmuneToHex(spell.Slow) {
		t.Error("low willpower should not be immune")
	}
	p.Will = WillInvuln
	if !p.ImmuneToHex(spell.Slow) {
		t.Error("WillInvuln should be immune")
	}
}
