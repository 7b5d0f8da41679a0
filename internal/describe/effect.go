package describe

import (
	"dungeon-lore/internal/colour"
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/spell"
	"fmt"
	"strings"
)

// HexChance is the percent chance a monster's willpower-checked spell
// affects a viewer with willpower wl.
func HexChance(s spell.ID, mi *monster.Info, wl int) int {
	pow := spell.MonsterPower(s, mi.CasterHD())
	if pow <= 0 {
		return 0
	}
	wl = max(0, wl)
	return min(100, 100*pow/(pow+wl))
}

// SpellHD is the hit dice mi uses to cast s. Innate abilities use the
// monster's own HD, learnt spells its caster HD.
func SpellHD(s spell.ID, mi *monster.Info) int {
	if s == spell.SearingBreath && mi.Type == monster.Xtahua {
		return mi.HD * 3 / 2
	}
	if !spell.Has(s, spell.Monster) {
		return mi.CasterHD()
	}
	return mi.HD
}

// Damage is the damage s deals when cast by a monster with hd hit dice.
func Damage(s spell.ID, hd int) spell.Dice {
	pow := spell.MonsterPower(s, hd)

	switch s {
	case spell.Freeze:
		return spell.FreezeDamage(pow)
	case spell.Waterstrike:
		return spell.WaterstrikeDamage(hd)
	case spell.OrbOfDestruction:
		return spell.OrbDamage(pow)
	case spell.Glaciate:
		return spell.GlaciateDamage(pow, 3)
	case spell.ConjureBallLightning:
		return spell.BallLightningDamage(spell.BallLightningHD(pow))
	}

	z := spell.ZapFor(s)
	if z == spell.ZapNone {
		return spell.Dice{}
	}
	return spell.ZapDamage(z, pow)
}

// DamageColour is the colour a spell's damage is shown in.
func DamageColour(s spell.ID) colour.Colour {
	switch s {
	case spell.Freeze, spell.Glaciate:
		return colour.White
	case spell.Waterstrike:
		return colour.LightBlue
	case spell.OrbOfDestruction:
		return colour.LightMagenta
	}
	z := spell.ZapFor(s)
	if z == spell.ZapNone {
		return colour.ColUnknown
	}
	return spell.ZapColour(z)
}

// Colourize wraps base in colour markup. Element colours leave the first
// and last characters (the brackets) plain and colour each inner character
// separately. An empty base stays empty, with no bare tag pair.
func Colourize(base string, c colour.Colour) string {
	if base == "" {
		return ""
	}
	if c < colour.NumTermColours {
		if c == colour.Black {
			c = colour.DarkGrey
		}
		name := colour.Name(c)
		return fmt.Sprintf("<%s>%s</%s>", name, base, name)
	}
	if len(base) < 3 {
		name := colour.Name(colour.ElementColour(c, 0))
		return fmt.Sprintf("<%s>%s</%s>", name, base, name)
	}

	var b strings.Builder
	b.WriteByte(base[0])
	for i := 1; i < len(base)-1; i++ {
		name := colour.Name(colour.ElementColour(c, i))
		fmt.Fprintf(&b, "<%s>%c</%s>", name, base[i], name)
	}
	b.WriteByte(base[len(base)-1])
	return b.String()
}

// RangeString shows a monster spell's range, highlighted when the viewer
// stands within it. Spells without a range, and spells not cast by a
// monster, show nothing.
func (d *Describer) RangeString(s spell.ID, mi *monster.Info, hd int) string {
	pow := spell.MonsterPower(s, hd)
	r := spell.Range(s, pow)
	if mi == nil || r <= 0 || spell.Has(s, spell.SelfEnch) {
		return ""
	}
	inRange := d.inGame() &&
		mi.Pos.InLevel() &&
		gamemap.Distance(d.viewer.Pos(), mi.Pos) <= r
	col := "lightgray"
	if inRange {
		col = "lightred"
	}
	return fmt.Sprintf("(<%s>%d</%s>)", col, r, col)
}

// EffectString summarises what a monster's spell does to the viewer: its
// damage dice, or its chance to affect them for willpower-checked spells.
func (d *Describer) EffectString(s spell.ID, mi *monster.Info) string {
	if mi == nil {
		return ""
	}
	if s == spell.ConjureLivingSpells {
		return d.livingSpells(mi)
	}

	hd := SpellHD(s, mi)
	if hd == 0 {
		return ""
	}

	if spell.Has(s, spell.WLCheck) {
		// Willpower chances only mean something against the player.
		if !d.inGame() || mi.Attitude == monster.Friendly {
			return ""
		}
		if d.viewer.ImmuneToHex(s) {
			return "(immune)"
		}
		return fmt.Sprintf("(%d%%)", HexChance(s, mi, d.viewer.Willpower()))
	}

	if s == spell.Smiting {
		return "7-17"
	}

	dam := Damage(s, hd)
	if dam.Zero() {
		return ""
	}
	mult := ""
	switch s {
	case spell.Marshlight:
		mult = "2x"
	case spell.ConjureBallLightning:
		mult = "3x"
	}
	return fmt.Sprintf("(%s%s)", mult, dam)
}

func (d *Describer) livingSpells(mi *monster.Info) string {
	s := monster.LivingSpellFor(mi.Type)
	n := spell.LivingSpellCount(s)
	base := d.EffectString(s, mi)
	if base != "" && base[0] != '(' {
		base = "(" + base + ")"
	}
	return fmt.Sprintf("%dx%s", n, base)
}
