package monster

import (
	"dungeon-lore/internal/spell"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueSpellsFiltersAndDedupes(t *testing.T) {
	mi := Info{Slots: []Slot{
		{spell.MagicDart, Wizard},
		{spell.Smiting, Priest},
		{spell.Slow, Wizard},
		{spell.MagicDart, Wizard},
		{spell.Slow, Priest},
	}}
	got := mi.UniqueSpells(Wizard)
	assert.Equal(t, []Slot{{spell.MagicDart, Wizard}, {spell.Slow, Wizard}}, got)
	assert.Equal(t, []Slot{{spell.Smiting, Priest}, {spell.Slow, Priest}}, mi.UniqueSpells(Priest))
	assert.Empty(t, mi.UniqueSpells(Natural))
}

func TestPronouns(t *testing.T) {
	cases := []struct {
		p      Pronoun
		word   string
		plural bool
	}{
		{It, "it", false},
		{He, "he", false},
		{She, "she", false},
		{They, "they", true},
	}
	for _, c := range cases {
		mi := Info{Pronoun: c.p}
		assert.Equal(t, c.word, mi.Subjective())
		assert.Equal(t, c.plural, mi.Plural())
	}
}

func TestCasterHD(t *testing.T) {
	assert.Equal(t, 7, (&Info{HD: 7}).CasterHD())
	assert.Equal(t, 12, (&Info{HD: 7, SpellHD: 12}).CasterHD())
}

func TestNewCopiesSlots(t *testing.T) {
	a, ok := New(OrcWizard)
	require.True(t, ok)
	a.Slots[0].Spell = spell.Glaciate

	b, _ := New(OrcWizard)
	assert.Equal(t, spell.MagicDart, b.Slots[0].Spell)
	assert.True(t, b.HasSpells())

	rat, _ := New(Rat)
	assert.False(t, rat.HasSpells())

	_, ok = New(Type(999))
	assert.False(t, ok)
}

func TestByNameAndTypes(t *testing.T) {
	typ, ok := ByName("Ogre Mage")
	require.True(t, ok)
	assert.Equal(t, OgreMage, typ)

	types := Types()
	require.Len(t, types, len(table))
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1], types[i])
	}
}

func TestLivingSpellFor(t *testing.T) {
	assert.Equal(t, spell.IronShot, LivingSpellFor(Archmage))
	assert.Equal(t, spell.MagicDart, LivingSpellFor(Rat))
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(table))
	assert.Equal(t, Rat, all[0].Type)
	assert.Equal(t, "archmage", all[len(all)-1].Name)
}
