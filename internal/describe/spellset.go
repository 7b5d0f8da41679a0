package describe

import (
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/spell"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Book is a labelled group of spells shown together.
type Book struct {
	Label  string
	Spells []spell.ID
}

// Spellset is every group of spells shown for one book or monster.
type Spellset []Book

// Letter pairs a spell with the character used to select it.
type Letter struct {
	Spell spell.ID
	Char  rune
}

// ItemSpellset returns the spells in b as a single unlabelled group, or nil
// when b holds no spells.
func ItemSpellset(b *item.Book) Spellset {
	if !b.HasSpells() {
		return nil
	}
	return Spellset{{Label: "\n", Spells: b.SpellList()}}
}

// bookFlags is the order monster spell groups are listed in.
var bookFlags = []monster.SlotFlag{
	monster.Natural,
	monster.Vocal,
	monster.Magical,
	monster.Priest,
	monster.Wizard,
}

// MonsterSpellset returns the spells the player knows mi may cast, one
// group per casting type.
func MonsterSpellset(mi *monster.Info) Spellset {
	if mi == nil || !mi.HasSpells() {
		return nil
	}
	var books Spellset
	for _, flag := range bookFlags {
		if b, ok := monsterBook(mi, flag); ok {
			books = append(books, b)
		}
	}
	return books
}

func monsterBook(mi *monster.Info, flag monster.SlotFlag) (Book, bool) {
	slots := mi.UniqueSpells(flag)
	if len(slots) == 0 {
		return Book{}, false
	}

	book := Book{
		Label: "\n" + uppercaseFirst(mi.Subjective()) + " " + booktypeHeader(flag, mi.Plural()),
	}
	abjure := false
	for _, slot := range slots {
		if spell.IsSOHBreath(slot.Spell) {
			book.Spells = append(book.Spells, spell.Breaths(slot.Spell)...)
			continue
		}
		book.Spells = append(book.Spells, slot.Spell)
		if spell.Has(slot.Spell, spell.MonsAbjure) {
			abjure = true
		}
	}
	if abjure {
		book.Spells = append(book.Spells, spell.Abjuration)
	}
	return book, true
}

func uppercaseFirst(s string) string {
	if s == "" {
		return s
	}
	first, rest, _ := strings.Cut(s, " ")
	first = cases.Title(language.English).String(first)
	if rest == "" {
		return first
	}
	return first + " " + rest
}

// conjugateVerb returns the present-tense verb agreeing with a singular or
// plural subject.
func conjugateVerb(verb string, plural bool) string {
	if plural {
		return verb
	}
	switch {
	case verb == "have":
		return "has"
	case strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "sh"),
		strings.HasSuffix(verb, "ch"), strings.HasSuffix(verb, "x"):
		return verb + "es"
	}
	return verb + "s"
}

func abilityDescriptor(flag monster.SlotFlag) string {
	switch flag {
	case monster.Natural, monster.Vocal:
		return "natural"
	case monster.Magical:
		return "magical"
	case monster.Priest:
		return "divine"
	}
	return "buggy"
}

func vulnerabilityCore(silencable, antimagicable bool) string {
	if !antimagicable {
		return "silence"
	}
	if silencable {
		return "silence and antimagic"
	}
	return "antimagic (but not silence)"
}

func abilityVulnerabilities(flag monster.SlotFlag) string {
	if flag == monster.Natural {
		return ""
	}
	silencable := flag == monster.Wizard || flag == monster.Priest || flag == monster.Vocal
	antimagicable := flag == monster.Wizard || flag == monster.Magical
	if !silencable && !antimagicable {
		return ""
	}
	return ", which are affected by " + vulnerabilityCore(silencable, antimagicable)
}

// booktypeHeader is the text after the pronoun that introduces a group,
// e.g. "has mastered the following spells, which are affected by silence
// and antimagic:".
func booktypeHeader(flag monster.SlotFlag, plural bool) string {
	vuln := abilityVulnerabilities(flag)
	if flag == monster.Wizard {
		return fmt.Sprintf("%s mastered the following spells%s:",
			conjugateVerb("have", plural), vuln)
	}
	return fmt.Sprintf("%s the following %s abilities%s:",
		conjugateVerb("possess", plural), abilityDescriptor(flag), vuln)
}

// Contents returns every distinct spell in the set, in order of first
// appearance.
func Contents(ss Spellset) []spell.ID {
	var out []spell.ID
	seen := make(map[spell.ID]bool)
	for _, b := range ss {
		for _, s := range b.Spells {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// doubleColumn reports whether spells from source are listed two per row.
// Only monster spells, which have no source item, are.
func doubleColumn(source *item.Book) bool {
	return source == nil
}

// letterChars are assigned to spells in order: lower case, then upper case
// once z is used, rather than running on into punctuation. Spells beyond
// them get no letter.
const letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MapCharsToSpells assigns selection letters to the distinct spells of ss.
// Book listings use sequential order; two-column monster listings use
// column-major order so letters read down the left column first.
func MapCharsToSpells(ss Spellset, source *item.Book) []Letter {
	flat := Contents(ss)
	order := make([]spell.ID, 0, len(flat))
	if !doubleColumn(source) {
		order = append(order, flat...)
	} else {
		for i := 0; i < len(flat); i += 2 {
			order = append(order, flat[i])
		}
		for i := 1; i < len(flat); i += 2 {
			order = append(order, flat[i])
		}
	}

	chars := []rune(letterChars)
	out := make([]Letter, 0, len(order))
	for i, s := range order {
		if i >= len(chars) {
			break
		}
		out = append(out, Letter{Spell: s, Char: chars[i]})
	}
	return out
}

func letterFor(letters []Letter, s spell.ID) rune {
	for _, l := range letters {
		if l.Spell == s {
			return l.Char
		}
	}
	return ' '
}
