// shopgen runs the alphabet shop map script and prints the shop it placed.
// Build:
//
//	go build -o shopgen ./cmd/shopgen
//
// Usage:
//
//	./shopgen [-seed 42] [-n 3] [-script my_shop.lua]
//
// DUNGEON_LORE_SEED and DUNGEON_LORE_MAP_SCRIPT set the defaults for -seed
// and -script.
package main

import (
	"dungeon-lore/assets"
	"dungeon-lore/internal/config"
	"dungeon-lore/internal/logger"
	"dungeon-lore/internal/mapscript"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("shopgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0: seed from the clock)")
	fs.StringVar(&cfg.MapScript, "script", cfg.MapScript, "Map script to run instead of the built-in alphabet shop")
	n := fs.Int("n", 1, "Number of shops to generate")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logOut, closeLog, err := cfg.LogOutput(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()
	log := logger.New(cfg.Logger(), logOut)
	script, err := cfg.Script(assets.AlphabetShopScript)
	if err != nil {
		log.Error("load map script", "error", err)
		return 1
	}

	rng := cfg.Rand()
	for i := range *n {
		res, err := mapscript.Run(mapscript.Config{
			Name:   "alphabet_shop",
			Script: script,
			Table:  assets.AlphabetShops,
			Rand:   rng,
			Logger: log,
		})
		if err != nil {
			log.Error("run map script", "error", err)
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		printResult(stdout, res)
	}
	return 0
}

func printResult(w io.Writer, res *mapscript.Result) {
	fmt.Fprintf(w, "%s (greed %d, %d items)\n", res.Shop.Name(), res.Shop.Greed, res.Shop.Count())
	fmt.Fprintf(w, "SHOP: %s\n", res.Directive)
	for _, line := range strings.Split(strings.TrimRight(res.Vault.String(), "\n"), "\n") {
		fmt.Fprintf(w, "MAP:  %s\n", line)
	}
	fmt.Fprintf(w, "shop entrance at (%d,%d)\n", res.ShopPos.X, res.ShopPos.Y)
}
