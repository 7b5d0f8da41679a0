package browser

import (
	"dungeon-lore/assets"
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/generate"
	"dungeon-lore/internal/item"
	"dungeon-lore/internal/logger"
	"dungeon-lore/internal/mapscript"
	"dungeon-lore/internal/monster"
	"dungeon-lore/internal/player"
	"dungeon-lore/internal/render"
	"dungeon-lore/internal/spell"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(100, 30)
	return ss
}

func shopFn(seed int64) func() (*mapscript.Result, error) {
	rng := rand.New(rand.NewSource(seed))
	return func() (*mapscript.Result, error) {
		return mapscript.Run(mapscript.Config{
			Name:   "alphabet_shop",
			Script: assets.AlphabetShopScript,
			Table:  assets.AlphabetShops,
			Rand:   rng,
			Logger: logger.Discard(),
		})
	}
}

func newTestBrowser(t *testing.T) (*Browser, tcell.SimulationScreen) {
	t.Helper()
	ss := newSimScreen(t)
	b := New(ss, Config{
		Books:    assets.Books[:2],
		Monsters: monster.All(),
		Shop:     shopFn(42),
		Logger:   logger.Discard(),
	})
	return b, ss
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestPagesSkipMonstersWithoutSpells(t *testing.T) {
	b, _ := newTestBrowser(t)
	pages := b.Pages()

	// 2 books, every monster but the rat, and the shop.
	require.Len(t, pages, 2+len(monster.All())-1+1)
	for _, p := range pages {
		assert.NotEqual(t, "rat", p.Title)
	}
	last := pages[len(pages)-1]
	require.NotNil(t, last.Shop)
	assert.Equal(t, last.Shop.Shop.Name(), last.Title)
}

func TestNavigationWraps(t *testing.T) {
	b, _ := newTestBrowser(t)
	n := len(b.Pages())

	assert.Equal(t, assets.Books[0].Name, b.Current().Title)
	assert.True(t, b.Handle(ActionPrev))
	assert.NotNil(t, b.Current().Shop)
	assert.True(t, b.Handle(ActionNext))
	assert.Equal(t, assets.Books[0].Name, b.Current().Title)
	for range n {
		b.Handle(ActionNext)
	}
	assert.Equal(t, assets.Books[0].Name, b.Current().Title)
	assert.False(t, b.Handle(ActionQuit))
}

func TestBodyFullAndTerse(t *testing.T) {
	b, _ := newTestBrowser(t)

	full := b.Body().String()
	assert.Contains(t, full, " Spells                            Type                      Level")
	assert.Contains(t, full, "Magic Dart")

	b.Handle(ActionToggleTerse)
	assert.True(t, b.Terse())
	assert.True(t, strings.HasPrefix(b.Body().String(), "Spells: Magic Dart (L1 Conjuration), "))

	// Monster terse view lists its deduplicated spells.
	b.Handle(ActionNext)
	b.Handle(ActionNext)
	require.NotNil(t, b.Current().Monster)
	assert.Equal(t, "orc wizard", b.Current().Title)
	assert.Equal(t, "Spells: Magic Dart (L1 Conjuration), Slow (L2 Hexes), Haste (L6 Hexes) and Blink (L2 Translocation)",
		b.Body().String())
}

func TestRerollReplacesShop(t *testing.T) {
	b, _ := newTestBrowser(t)
	first := b.Pages()[len(b.Pages())-1].Shop

	assert.True(t, b.Handle(ActionReroll))
	cur := b.Current()
	require.NotNil(t, cur.Shop)
	assert.NotSame(t, first, cur.Shop)
	assert.Contains(t, generate.GreedTiers, cur.Shop.Shop.Greed)
}

func TestRerollWithoutShop(t *testing.T) {
	ss := newSimScreen(t)
	b := New(ss, Config{Books: assets.Books[:1], Logger: logger.Discard()})
	b.Handle(ActionReroll)
	b.Draw()
	_, h := ss.Size()
	assert.Equal(t, "No shop to reroll.", rowText(ss, h-1))
}

func TestShopFailureIsReported(t *testing.T) {
	ss := newSimScreen(t)
	b := New(ss, Config{
		Shop:   func() (*mapscript.Result, error) { return nil, errors.New("no letters") },
		Logger: logger.Discard(),
	})
	require.Len(t, b.Pages(), 1)
	assert.Nil(t, b.Current().Shop)
	assert.Equal(t, "", b.Body().String())
}

func TestDrawBookInGame(t *testing.T) {
	ss := newSimScreen(t)
	p := player.New(gamemap.Pos{X: 10, Y: 10}, 10)
	p.Memorise(spell.MagicDart)
	b := New(ss, Config{
		Books:  []item.Book{assets.Books[0]},
		Viewer: p,
		Logger: logger.Discard(),
	})
	b.Draw()

	assert.True(t, strings.HasPrefix(rowText(ss, 0), assets.Books[0].Name))
	// The label and the blank line before the column header come first.
	assert.Equal(t, "", rowText(ss, 2))
	assert.Contains(t, rowText(ss, 4), "Known")
	assert.Contains(t, rowText(ss, 5), "Magic Dart")
	assert.True(t, strings.HasSuffix(rowText(ss, 5), "yes"))
	assert.True(t, strings.HasSuffix(rowText(ss, 6), "no"))
	_, h := ss.Size()
	assert.Equal(t, "1/1", rowText(ss, h-2))
}

func TestDrawShopPage(t *testing.T) {
	b, ss := newTestBrowser(t)
	b.Handle(ActionPrev)
	b.Draw()

	shop := b.Current().Shop.Shop
	assert.True(t, strings.HasPrefix(rowText(ss, 2), shop.Name()))
	assert.True(t, strings.HasPrefix(rowText(ss, 5), "  [a] "+shop.Items[0]))

	b.Handle(ActionToggleTerse)
	b.Draw()
	assert.True(t, strings.HasPrefix(rowText(ss, 2), " general shop name:"))
}

func TestRunQuitsOnKey(t *testing.T) {
	b, ss := newTestBrowser(t)
	ss.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	go func() {
		b.Run()
		close(done)
	}()
	<-done
	assert.Equal(t, assets.Books[1].Name, b.Current().Title)
}

func TestScrollStopsAtEndOfBody(t *testing.T) {
	b, ss := newTestBrowser(t)
	ss.SetSize(100, 8)
	rows := 8 - headerHeight - render.StatusHeight
	lines := len(b.Body().Lines())
	require.Greater(t, lines, rows)

	for range lines + 5 {
		b.Handle(ActionScrollDown)
	}
	assert.Equal(t, lines-rows, b.scroll)
	b.Draw()
	assert.Equal(t, lines-rows, b.scroll)

	b.Handle(ActionScrollUp)
	assert.Equal(t, lines-rows-1, b.scroll)
}

func TestShopPageDoesNotScroll(t *testing.T) {
	b, _ := newTestBrowser(t)
	b.Handle(ActionReroll)
	require.NotNil(t, b.Current().Shop)

	for range 10 {
		b.Handle(ActionScrollDown)
	}
	assert.Zero(t, b.scroll)
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyDown, 0, ActionNext},
		{tcell.KeyUp, 0, ActionPrev},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyPgDn, 0, ActionScrollDown},
		{tcell.KeyRune, 'j', ActionNext},
		{tcell.KeyRune, 'k', ActionPrev},
		{tcell.KeyRune, 't', ActionToggleTerse},
		{tcell.KeyRune, 'r', ActionReroll},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'z', ActionNone},
	}
	for _, c := range cases {
		ev := tcell.NewEventKey(c.key, c.r, tcell.ModNone)
		assert.Equal(t, c.want, keyToAction(ev), "key %v rune %q", c.key, c.r)
	}
}

func TestBodyIsCachedUntilReroll(t *testing.T) {
	b, _ := newTestBrowser(t)
	assert.Same(t, b.Body(), b.Body())

	b.Handle(ActionPrev)
	b.Handle(ActionToggleTerse)
	before := b.Body()
	assert.Same(t, before, b.Body())

	b.Handle(ActionReroll)
	after := b.Body()
	assert.NotSame(t, before, after)
	assert.Equal(t, b.Current().Shop.Directive.String(), after.String())
}
