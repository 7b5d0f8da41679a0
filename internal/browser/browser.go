// Package browser is the interactive description browser: it pages through
// spellbooks, spellcasting monsters and a generated alphabet shop.
package browser

import (
	"dungeon-lore/internal/colour"
	"dungeon-lore/internal/describe"
	"dungeon-lore/internal/formatted"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/mapscript"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/render"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const hints = "[j/k] Page  [space] Scroll  [t] Terse  [r] New shop  [q] Quit"

// headerHeight is the number of rows above the page body.
const headerHeight = 2

// bodyCacheSize bounds the number of rendered page bodies kept.
const bodyCacheSize = 64

type bodyKey struct {
	page  int
	terse bool
}

// Page is one browsable entry. Exactly one of Book, Monster and Shop is set.
type Page struct {
	Title   string
	Book    *item.Book
	Monster *monster.Info
	Shop    *mapscript.Result
}

// Config is what a Browser shows.
type Config struct {
	Books    []item.Book
	Monsters []monster.Info
	// Viewer is the character reading the descriptions; nil browses from
	// outside a game.
	Viewer describe.Viewer
	// Shop generates a fresh alphabet shop. Nil leaves the shop page out.
	Shop   func() (*mapscript.Result, error)
	Logger *slog.Logger
}

// Browser is the interactive browser state.
type Browser struct {
	screen   tcell.Screen
	renderer *render.Renderer
	desc     *describe.Describer
	pages    []Page
	shopFn   func() (*mapscript.Result, error)
	log      *slog.Logger
	shopPage int
	bodies   *lru.Cache[bodyKey, *formatted.String]

	cur     int
	terse   bool
	scroll  int
	message string
}

// New builds a Browser drawing to screen. The screen must already be
// initialised.
func New(screen tcell.Screen, cfg Config) *Browser {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	bodies, _ := lru.New[bodyKey, *formatted.String](bodyCacheSize)
	b := &Browser{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		desc:     describe.New(cfg.Viewer),
		shopFn:   cfg.Shop,
		log:      log,
		shopPage: -1,
		bodies:   bodies,
	}
	for i := range cfg.Books {
		bk := &cfg.Books[i]
		b.pages = append(b.pages, Page{Title: bk.Name, Book: bk})
	}
	for i := range cfg.Monsters {
		mi := &cfg.Monsters[i]
		if !mi.HasSpells() {
			continue
		}
		b.pages = append(b.pages, Page{Title: mi.Name, Monster: mi})
	}
	if b.shopFn != nil {
		b.shopPage = len(b.pages)
		b.pages = append(b.pages, Page{Title: "Alphabet shop"})
		b.reroll(b.shopPage)
	}
	return b
}

// Pages returns the browsable pages.
func (b *Browser) Pages() []Page { return b.pages }

// Current returns the page on screen.
func (b *Browser) Current() Page {
	if len(b.pages) == 0 {
		return Page{}
	}
	return b.pages[b.cur]
}

// Terse reports whether the one-line summary view is on.
func (b *Browser) Terse() bool { return b.terse }

// Run draws and handles key presses until the user quits.
func (b *Browser) Run() {
	for {
		b.Draw()
		ev := b.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			b.screen.Sync()
			continue
		case *tcell.EventKey:
			if !b.Handle(keyToAction(ev)) {
				return
			}
		}
	}
}

// Handle applies an action and reports whether the browser keeps running.
func (b *Browser) Handle(a Action) bool {
	b.message = ""
	switch a {
	case ActionQuit:
		return false
	case ActionNext:
		b.move(1)
	case ActionPrev:
		b.move(-1)
	case ActionScrollDown:
		b.scroll = min(b.scroll+1, b.maxScroll())
	case ActionScrollUp:
		b.scroll = max(0, b.scroll-1)
	case ActionToggleTerse:
		b.terse = !b.terse
		b.scroll = 0
	case ActionReroll:
		if b.shopPage < 0 {
			b.message = "No shop to reroll."
			break
		}
		b.cur, b.scroll = b.shopPage, 0
		b.reroll(b.shopPage)
	}
	return true
}

func (b *Browser) move(delta int) {
	if len(b.pages) == 0 {
		return
	}
	b.cur = (b.cur + delta + len(b.pages)) % len(b.pages)
	b.scroll = 0
}

func (b *Browser) reroll(i int) {
	res, err := b.shopFn()
	if err != nil {
		b.log.Error("generate shop", "error", err)
		b.message = fmt.Sprintf("Shop generation failed: %v", err)
		return
	}
	b.pages[i].Shop = res
	b.pages[i].Title = res.Shop.Name()
	b.bodies.Remove(bodyKey{i, false})
	b.bodies.Remove(bodyKey{i, true})
}

// bodyRows is the number of screen rows available to the page body.
func (b *Browser) bodyRows() int {
	_, sh := b.screen.Size()
	return max(0, sh-headerHeight-render.StatusHeight)
}

// maxScroll is the furthest the current body can scroll while still filling
// the body rows. The shop panel does not scroll.
func (b *Browser) maxScroll() int {
	if p := b.Current(); p.Shop != nil && !b.terse {
		return 0
	}
	return max(0, len(b.Body().Lines())-b.bodyRows())
}

// Body is the description shown for the current page. Rendered bodies are
// cached per page and view.
func (b *Browser) Body() *formatted.String {
	key := bodyKey{b.cur, b.terse}
	if s, ok := b.bodies.Get(key); ok {
		return s
	}
	s := b.body(b.Current())
	b.bodies.Add(key, s)
	return s
}

func (b *Browser) body(p Page) *formatted.String {
	switch {
	case p.Book != nil:
		if b.terse {
			return formatted.Parse(escape(describe.TerseSpellList(p.Book)), colour.LightGrey)
		}
		return b.desc.Spellset(describe.ItemSpellset(p.Book), p.Book, nil)
	case p.Monster != nil:
		if b.terse {
			return formatted.Parse(escape(describe.TerseMonsterSpells(p.Monster)), colour.LightGrey)
		}
		return b.desc.MonsterSpells(p.Monster)
	case p.Shop != nil:
		if b.terse {
			return formatted.Parse(escape(p.Shop.Directive.String()), colour.LightGrey)
		}
	}
	return formatted.New()
}

// Draw renders the current page.
func (b *Browser) Draw() {
	b.renderer.Clear()
	p := b.Current()
	b.renderer.DrawHeader(p.Title, hints)

	// A resize can shrink the body below the current offset.
	b.scroll = min(b.scroll, b.maxScroll())
	if p.Shop != nil && !b.terse {
		b.renderer.DrawShop(headerHeight, p.Shop.Shop, p.Shop.Vault, -1)
	} else {
		b.renderer.DrawFormatted(1, headerHeight, b.scroll, b.bodyRows(), b.Body())
	}

	b.renderer.DrawStatus(fmt.Sprintf("%d/%d", b.cur+1, len(b.pages)), b.message)
	b.renderer.Show()
}

func escape(s string) string { return strings.ReplaceAll(s, "<", "<<") }
