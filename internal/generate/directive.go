package generate

import (
	"fmt"
	"strconv"
	"strings"
)

// Directive is the placement instruction a map script emits for a shop: a
// name string of space-separated key:value tokens and a pipe-separated
// inventory string.
type Directive struct {
	Name      string
	Inventory string
}

// String joins both halves the way a vault's SHOP line is written.
func (d Directive) String() string {
	if d.Inventory == "" {
		return "general shop " + d.Name
	}
	return "general shop " + d.Name + " ; " + d.Inventory
}

// Directive renders the shop as a placement directive.
func (s Shop) Directive() Directive {
	items := cleanItems(s.Items)
	name := fmt.Sprintf("name:%s type:%s suffix:%s greed:%d count:%d",
		Scrub(s.Keeper), Scrub(s.Type), Scrub(s.Suffix), s.Greed, len(items))
	return Directive{Name: name, Inventory: strings.Join(items, " | ")}
}

// JoinInventory builds the pipe-separated inventory string for items.
func JoinInventory(items []string) string {
	return strings.Join(cleanItems(items), " | ")
}

func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = scrubItem(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// ParseDirective reads a shop back from a directive's two halves.
func ParseDirective(name, inventory string) (Shop, error) {
	var s Shop
	count := -1
	for _, tok := range strings.Fields(name) {
		key, val, ok := strings.Cut(tok, ":")
		if !ok {
			return Shop{}, fmt.Errorf("shop directive token %q: missing ':'", tok)
		}
		val = strings.ReplaceAll(val, "_", " ")
		switch key {
		case "name":
			s.Keeper = val
		case "type":
			s.Type = val
		case "suffix":
			s.Suffix = val
		case "greed":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Shop{}, fmt.Errorf("shop directive greed: %w", err)
			}
			s.Greed = n
		case "count":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Shop{}, fmt.Errorf("shop directive count: %w", err)
			}
			count = n
		default:
			return Shop{}, fmt.Errorf("shop directive: unknown key %q", key)
		}
	}

	for _, it := range strings.Split(inventory, "|") {
		if it = strings.TrimSpace(it); it != "" {
			s.Items = append(s.Items, it)
		}
	}
	if count >= 0 && count != len(s.Items) {
		return Shop{}, fmt.Errorf("shop directive count %d, inventory has %d items", count, len(s.Items))
	}
	if t, ok := strings.CutPrefix(s.Type, "Letter "); ok && len(t) == 1 {
		s.Letter = t[0]
	}
	return s, nil
}
