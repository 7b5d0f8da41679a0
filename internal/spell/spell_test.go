package spell

import (
	"dungeon-lore/internal/colour"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleUnknownIsBuggy(t *testing.T) {
	assert.Equal(t, "Fireball", Title(Fireball))
	assert.Equal(t, "buggy", Title(ID(9999)))
	assert.Equal(t, "buggy", Title(0))
}

func TestByTitle(t *testing.T) {
	id, ok := ByTitle("lehudib's crystal spear")
	assert.True(t, ok)
	assert.Equal(t, LehudibsCrystalSpear, id)

	_, ok = ByTitle("Summon Ugly Thing")
	assert.False(t, ok)
}

func TestSchoolsOrderAndSeparator(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{MagicDart, "Conjuration"},
		{StoneArrow, "Conjuration/Earth"},
		{PoisonArrow, "Conjuration/Poison"},
		{ConjureLivingSpells, "Conjuration/Summoning"},
		{Smiting, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Schools(c.id), "Schools(%s)", Title(c.id))
	}
}

func TestRangeScalesWithPowerUpToCap(t *testing.T) {
	assert.Equal(t, 3, Range(StoneArrow, 0))
	assert.Equal(t, 5, Range(StoneArrow, 25))
	assert.Equal(t, LOSRadius, Range(StoneArrow, 50))
	assert.Equal(t, LOSRadius, Range(StoneArrow, 500))
	assert.Equal(t, 1, Range(Freeze, 300))
	assert.Equal(t, 0, Range(Blink, 100))
	assert.Equal(t, 0, Range(ID(9999), 100))
}

func TestDamageIsPure(t *testing.T) {
	for _, pow := range []int{0, 12, 60, 200} {
		a := ZapDamage(ZapFireball, pow)
		b := ZapDamage(ZapFireball, pow)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, Dice{3, 17}, ZapDamage(ZapFireball, 60))
	assert.Equal(t, Dice{}, ZapDamage(ZapNone, 60))
	assert.True(t, ZapDamage(ZapNone, 60).Zero())
}

func TestSpecialDamage(t *testing.T) {
	assert.Equal(t, "1d23", FreezeDamage(60).String())
	assert.Equal(t, Dice{3, 17}, WaterstrikeDamage(10))
	assert.Equal(t, Dice{9, 30}, OrbDamage(120))
	assert.Equal(t, Dice{7, 23}, GlaciateDamage(120, 3))
	assert.Equal(t, Dice{7, 71}, GlaciateDamage(120, 0))
	assert.Equal(t, 20, BallLightningHD(120))
	assert.Equal(t, 1, BallLightningHD(0))
	assert.Equal(t, Dice{3, 30}, BallLightningDamage(20))
}

func TestZapColour(t *testing.T) {
	assert.Equal(t, colour.ElementFire, ZapColour(ZapBoltOfFire))
	assert.Equal(t, colour.ColUnknown, ZapColour(ZapNone))
}

func TestBreaths(t *testing.T) {
	assert.True(t, IsSOHBreath(SerpentOfHellBreath))
	assert.False(t, IsSOHBreath(FireBreath))
	b := Breaths(SerpentOfHellBreath)
	assert.Equal(t, []ID{FireBreath, ColdBreath}, b)
	b[0] = Freeze
	assert.Equal(t, FireBreath, Breaths(SerpentOfHellBreath)[0], "Breaths must return a copy")
}

func TestEveryTableSpellHasTitleAndTile(t *testing.T) {
	seen := map[int]bool{}
	for id, d := range table {
		assert.NotEmpty(t, d.Title, "spell %d", id)
		tile := Tile(id)
		assert.False(t, seen[tile], "duplicate tile %d", tile)
		seen[tile] = true
	}
}
