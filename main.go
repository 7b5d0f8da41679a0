package main

import (
	"dungeon-lore/assets"
	"dungeon-lore/internal/browser"
	"dungeon-lore/internal/config"
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/logger"
	"dungeon-lore/internal/mapscript"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/player"
	"dungeon-lore/internal/spell"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	logOut, closeLog, err := cfg.LogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.Init(cfg.Logger(), logOut)

	script, err := cfg.Script(assets.AlphabetShopScript)
	if err != nil {
		return err
	}
	rng := cfg.Rand()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	b := browser.New(screen, browser.Config{
		Books:    assets.Books,
		Monsters: monster.All(),
		Viewer:   newReader(),
		Shop: func() (*mapscript.Result, error) {
			return mapscript.Run(mapscript.Config{
				Name:   "alphabet_shop",
				Script: script,
				Table:  assets.AlphabetShops,
				Rand:   rng,
				Logger: log,
			})
		},
		Logger: log,
	})
	b.Run()
	return nil
}

// newReader is the character the browser describes spells for: a
// mid-level conjurer standing in the middle of the level.
func newReader() *player.Player {
	p := player.New(gamemap.Pos{X: gamemap.LevelWidth / 2, Y: gamemap.LevelHeight / 2}, 12)
	p.Memorise(spell.MagicDart)
	p.Memorise(spell.StoneArrow)
	p.Library[spell.Fireball] = true
	p.HatedSchools = spell.Necromancy
	return p
}
