package describe

import (
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/spell"
	"encoding/json"
	"fmt"
)

// SpellJSON is one spell as sent to the remote display client.
type SpellJSON struct {
	Title       string `json:"title"`
	Colour      int    `json:"colour"`
	Tile        int    `json:"tile"`
	Letter      string `json:"letter"`
	Effect      string `json:"effect"`
	RangeString string `json:"range_string,omitempty"`
	Schools     string `json:"schools"`
	Level       int    `json:"level"`
}

// BookJSON is one labelled group of spells.
type BookJSON struct {
	Label  string      `json:"label"`
	Spells []SpellJSON `json:"spells"`
}

// SpellsetJSON is the message body describing a whole spellset.
type SpellsetJSON struct {
	Spellset []BookJSON `json:"spellset"`
}

// WriteSpellset builds the structured form of a spellset listing.
func (d *Describer) WriteSpellset(ss Spellset, source *item.Book, mi *monster.Info) SpellsetJSON {
	letters := MapCharsToSpells(ss, source)
	hd := 0
	if mi != nil {
		hd = mi.CasterHD()
	}

	out := SpellsetJSON{Spellset: make([]BookJSON, 0, len(ss))}
	for _, b := range ss {
		bj := BookJSON{Label: b.Label, Spells: make([]SpellJSON, 0, len(b.Spells))}
		for _, s := range b.Spells {
			effect := d.EffectString(s, mi)
			if !spell.Has(s, spell.WLCheck) {
				effect = Colourize(effect, DamageColour(s))
			}
			schools := spell.Schools(s)
			if source != nil && source.Kind == item.KindRod {
				schools = "Evocations"
			}
			bj.Spells = append(bj.Spells, SpellJSON{
				Title:       spell.Title(s),
				Colour:      int(d.listColour(s, source)),
				Tile:        spell.Tile(s),
				Letter:      string(letterFor(letters, s)),
				Effect:      effect,
				RangeString: d.RangeString(s, mi, hd),
				Schools:     schools,
				Level:       spell.Difficulty(s),
			})
		}
		out.Spellset = append(out.Spellset, bj)
	}
	return out
}

// MarshalSpellset encodes WriteSpellset's result.
func (d *Describer) MarshalSpellset(ss Spellset, source *item.Book, mi *monster.Info) ([]byte, error) {
	data, err := json.Marshal(d.WriteSpellset(ss, source, mi))
	if err != nil {
		return nil, fmt.Errorf("marshal spellset: %w", err)
	}
	return data, nil
}
