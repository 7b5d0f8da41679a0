// Package mapscript runs the Lua map scripts that place content into a
// level. A script drives the shop generator through the alphabet.* bindings
// and reports what it placed through dgn.*.
package mapscript

import (
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/generate"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Shopify/go-lua"
	"github.com/google/uuid"
)

var (
	// ErrNoShop is returned when a script finishes without calling dgn.shop.
	ErrNoShop = errors.New("map script placed no shop")
	// ErrNoMap is returned when a script finishes without calling dgn.map.
	ErrNoMap = errors.New("map script placed no vault")
	// ErrNoShopTile is returned when the vault has no shop entrance glyph.
	ErrNoShopTile = errors.New("vault has no shop entrance")
	// ErrShopUnreachable is returned when the vault has a door but the shop
	// entrance cannot be walked to from it.
	ErrShopUnreachable = errors.New("shop entrance unreachable from the vault door")
)

// Config is one script run.
type Config struct {
	Name   string
	Script string
	Table  []generate.LetterShop
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Result is what a script placed.
type Result struct {
	// ID identifies the run in logs.
	ID        string
	Directive generate.Directive
	Shop      generate.Shop
	Vault     *gamemap.GameMap
	ShopPos   gamemap.Pos
}

// runner holds the state the bindings write into while the script runs.
type runner struct {
	id     string
	gen    *generate.Config
	log    *slog.Logger
	shop   *generate.Directive
	layout *string
}

// Run executes the script and collects the shop it placed.
func Run(cfg Config) (*Result, error) {
	if cfg.Rand == nil {
		return nil, errors.New("map script: nil rand")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	name := cfg.Name
	if name == "" {
		name = "mapscript"
	}
	id := uuid.NewString()
	r := &runner{
		id:  id,
		gen: &generate.Config{Table: cfg.Table, Rand: cfg.Rand},
		log: log.With("script", name, "run_id", id),
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	r.register(state)

	if err := lua.LoadBuffer(state, cfg.Script, name, ""); err != nil {
		return nil, fmt.Errorf("load map script %s: %w", name, err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run map script %s: %w", name, err)
	}
	return r.result()
}

func (r *runner) result() (*Result, error) {
	if r.shop == nil {
		return nil, ErrNoShop
	}
	if r.layout == nil {
		return nil, ErrNoMap
	}
	shop, err := generate.ParseDirective(r.shop.Name, r.shop.Inventory)
	if err != nil {
		return nil, fmt.Errorf("shop directive: %w", err)
	}
	vault, err := gamemap.ParseVault(*r.layout)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	pos, ok := vault.Find(gamemap.TileShop)
	if !ok {
		return nil, ErrNoShopTile
	}
	if door, ok := vault.Find(gamemap.TileDoor); ok && !vault.Reachable(door, pos) {
		return nil, ErrShopUnreachable
	}
	r.log.Info("shop placed",
		"keeper", shop.Keeper,
		"letter", string(shop.Letter),
		"greed", shop.Greed,
		"count", shop.Count())
	return &Result{ID: r.id, Directive: *r.shop, Shop: shop, Vault: vault, ShopPos: pos}, nil
}
