package generate

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stock size bounds for an alphabet shop.
const (
	MinShopItems = 5
	MaxShopItems = 15
)

// placeholder is shown for lookups that find nothing.
const placeholder = "buggy"

// ErrNoEligibleLetter is returned when no letter has enough items to stock
// a shop.
var ErrNoEligibleLetter = errors.New("no letter has enough items for a shop")

// GreedTiers are the price markups a shop can be generated with.
var GreedTiers = []int{10, 15, 20, 30}

// LetterShop is one row of the alphabet shop table: the shopkeeper for a
// letter and the items that may be stocked.
type LetterShop struct {
	Letter byte
	Keeper string
	Items  []string
}

// Config drives generation of one alphabet shop.
type Config struct {
	Table []LetterShop
	Rand  *rand.Rand
}

// Shop is a generated shop, ready to be placed on a map.
type Shop struct {
	Letter byte
	Keeper string
	Type   string
	Suffix string
	Greed  int
	Items  []string
}

// Count is the number of items stocked.
func (s Shop) Count() int { return len(s.Items) }

// Name is the shop's display name, e.g. "Agrik's Letter A Emporium".
func (s Shop) Name() string { return ShopName(s.Keeper, s.Letter) }

// Eligible reports whether a letter has enough items to stock a shop.
func Eligible(e LetterShop) bool { return len(e.Items) >= MinShopItems }

// EligibleLetters returns the eligible letters in alphabet order.
func EligibleLetters(table []LetterShop) []byte {
	var out []byte
	for _, e := range table {
		if Eligible(e) {
			out = append(out, e.Letter)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PickLetter chooses uniformly among the eligible letters.
func PickLetter(table []LetterShop, rng *rand.Rand) (byte, error) {
	letters := EligibleLetters(table)
	if len(letters) == 0 {
		return 0, ErrNoEligibleLetter
	}
	return letters[rng.Intn(len(letters))], nil
}

func find(table []LetterShop, letter byte) (LetterShop, bool) {
	letter = upper(letter)
	for _, e := range table {
		if e.Letter == letter {
			return e, true
		}
	}
	return LetterShop{}, false
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// LetterName returns the shopkeeper for letter, or "buggy" when the letter
// is not in the table.
func LetterName(table []LetterShop, letter byte) string {
	if e, ok := find(table, letter); ok && e.Keeper != "" {
		return e.Keeper
	}
	return placeholder
}

// LetterItems returns a copy of letter's item list, nil when unknown.
func LetterItems(table []LetterShop, letter byte) []string {
	e, ok := find(table, letter)
	if !ok {
		return nil
	}
	return append([]string(nil), e.Items...)
}

// Scrub makes s safe to use as a single shop directive token: separator
// characters are dropped and spaces become underscores.
func Scrub(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', '|', ':', '"':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), "_")
}

// scrubItem strips the separators from an item name but keeps its spaces.
func scrubItem(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ';' || r == '|' {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// shopType is the type part of a shop's name.
func shopType(letter byte) string { return "letter " + string(upper(letter)) }

const shopSuffix = "emporium"

// ShopName builds the title-cased display name for a keeper's shop.
func ShopName(keeper string, letter byte) string {
	name := keeper + "'s " + shopType(letter) + " " + shopSuffix
	return cases.Title(language.English).String(name)
}

// PickStock chooses which items a shop sells. It stocks between
// MinShopItems and min(MaxShopItems, len(items)) distinct items, uniformly,
// in their table order. Lists shorter than MinShopItems are stocked whole.
func PickStock(items []string, rng *rand.Rand) []string {
	n := len(items)
	if n < MinShopItems {
		return append([]string(nil), items...)
	}
	hi := min(MaxShopItems, n)
	k := MinShopItems + rng.Intn(hi-MinShopItems+1)

	idx := rng.Perm(n)[:k]
	sort.Ints(idx)
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

// PickGreed chooses a price tier.
func PickGreed(rng *rand.Rand) int {
	return GreedTiers[rng.Intn(len(GreedTiers))]
}

// NewShop picks a letter and stocks a shop for it.
func NewShop(cfg *Config) (Shop, error) {
	letter, err := PickLetter(cfg.Table, cfg.Rand)
	if err != nil {
		return Shop{}, err
	}
	return ShopFor(cfg, letter), nil
}

// ShopFor stocks a shop for a specific letter.
func ShopFor(cfg *Config, letter byte) Shop {
	letter = upper(letter)
	return Shop{
		Letter: letter,
		Keeper: LetterName(cfg.Table, letter),
		Type:   cases.Title(language.English).String(shopType(letter)),
		Suffix: cases.Title(language.English).String(shopSuffix),
		Items:  PickStock(LetterItems(cfg.Table, letter), cfg.Rand),
		Greed:  PickGreed(cfg.Rand),
	}
}
