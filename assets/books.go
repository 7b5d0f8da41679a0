package assets

import (
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/spell"
	"strings"
)

// Books are the spellbooks (and the one rod) that can be described.
var Books = []item.Book{
	{Name: "Book of Minor Magic", Kind: item.KindBook, Spells: []spell.ID{
		spell.MagicDart, spell.Freeze, spell.Blink, spell.SummonSmallMammal, spell.Sting,
	}},
	{Name: "Book of Flames", Kind: item.KindBook, Spells: []spell.ID{
		spell.ThrowFlame, spell.Marshlight, spell.Fireball, spell.BoltOfFire,
	}},
	{Name: "Book of Frost", Kind: item.KindBook, Spells: []spell.ID{
		spell.Freeze, spell.ThrowFrost, spell.BoltOfCold, spell.Glaciate,
	}},
	{Name: "Book of the Earth", Kind: item.KindBook, Spells: []spell.ID{
		spell.StoneArrow, spell.IronShot, spell.LehudibsCrystalSpear,
	}},
	{Name: "Book of Enchantments", Kind: item.KindBook, Spells: []spell.ID{
		spell.Confuse, spell.Slow, spell.Paralyse, spell.Haste, spell.Invisibility,
	}},
	{Name: "Book of Power", Kind: item.KindBook, Spells: []spell.ID{
		spell.LightningBolt, spell.ConjureBallLightning, spell.OrbOfDestruction,
		spell.ConjureLivingSpells,
	}},
	{Name: "Necronomicon", Kind: item.KindBook, Spells: []spell.ID{
		spell.Pain, spell.PoisonArrow, spell.CallImp, spell.Abjuration,
	}},
	{Name: "rod of striking", Kind: item.KindRod, Spells: []spell.ID{
		spell.MagicDart, spell.LightningBolt,
	}},
}

// BookByName finds a book by name, ignoring case.
func BookByName(name string) (*item.Book, bool) {
	for i := range Books {
		if strings.EqualFold(Books[i].Name, name) {
			return &Books[i], true
		}
	}
	return nil, false
}
