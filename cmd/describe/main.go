// describe prints the spell listing of a spellbook or a monster. Build:
//
//	go build -o describe ./cmd/describe
//
// Usage:
//
//	./describe -book "Book of Flames" [-terse | -json | -tagged]
//	./describe -monster "ogre mage" [-xl 12]
//	./describe -spell "Fireball"
//	./describe -list
package main

import (
	"dungeon-lore/assets"
	"dungeon-lore/internal/config"
	"dungeon-lore/internal/describe"
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/logger"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/player"
	"dungeon-lore/internal/spell"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	book    string
	monster string
	spell   string
	terse   bool
	json    bool
	tagged  bool
	list    bool
	xl      int
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logOut, closeLog, err := cfg.LogOutput(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()
	log := logger.New(cfg.Logger(), logOut)

	var opts options
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.book, "book", "", "Spellbook to describe")
	fs.StringVar(&opts.monster, "monster", "", "Monster whose spells to describe")
	fs.StringVar(&opts.spell, "spell", "", "Single spell to describe, by title")
	fs.BoolVar(&opts.terse, "terse", false, "Print a one-line summary")
	fs.BoolVar(&opts.json, "json", false, "Print the listing as JSON")
	fs.BoolVar(&opts.tagged, "tagged", false, "Keep colour tags in the output")
	fs.BoolVar(&opts.list, "list", false, "List the books and monsters that can be described")
	fs.IntVar(&opts.xl, "xl", 0, "Describe as seen by a character of this level (0: outside a game)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := describeTo(stdout, opts); err != nil {
		log.Error("describe", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func describeTo(w io.Writer, opts options) error {
	if opts.list {
		for _, b := range assets.Books {
			fmt.Fprintf(w, "book     %s\n", b.Name)
		}
		for _, mi := range monster.All() {
			if mi.HasSpells() {
				fmt.Fprintf(w, "monster  %s\n", mi.Name)
			}
		}
		return nil
	}

	var d *describe.Describer
	if opts.xl > 0 {
		d = describe.New(player.New(gamemap.Pos{}, opts.xl))
	} else {
		d = describe.New(nil)
	}

	targets := 0
	for _, t := range []string{opts.book, opts.monster, opts.spell} {
		if t != "" {
			targets++
		}
	}
	if targets > 1 {
		return errors.New("-book, -monster and -spell are mutually exclusive")
	}

	switch {
	case opts.book != "", opts.spell != "":
		var b *item.Book
		if opts.book != "" {
			var ok bool
			if b, ok = assets.BookByName(opts.book); !ok {
				return fmt.Errorf("unknown book %q", opts.book)
			}
		} else {
			id, ok := spell.ByTitle(opts.spell)
			if !ok {
				return fmt.Errorf("unknown spell %q", opts.spell)
			}
			b = &item.Book{Name: spell.Title(id), Spells: []spell.ID{id}}
		}
		ss := describe.ItemSpellset(b)
		switch {
		case opts.terse:
			fmt.Fprintln(w, describe.TerseSpellList(b))
			return nil
		case opts.json:
			return writeJSON(w, d, ss, b, nil)
		}
		return writeListing(w, d.Spellset(ss, b, nil), opts.tagged)
	case opts.monster != "":
		t, ok := monster.ByName(opts.monster)
		if !ok {
			return fmt.Errorf("unknown monster %q", opts.monster)
		}
		mi, _ := monster.New(t)
		ss := describe.MonsterSpellset(&mi)
		switch {
		case opts.terse:
			fmt.Fprintln(w, describe.TerseMonsterSpells(&mi))
			return nil
		case opts.json:
			return writeJSON(w, d, ss, nil, &mi)
		}
		return writeListing(w, d.Spellset(ss, nil, &mi), opts.tagged)
	}
	return errors.New("one of -book, -monster, -spell or -list is required")
}
