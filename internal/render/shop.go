package render

import (
	"dungeon-lore/internal/gamemap"
	"dungeon-lore/internal/generate"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// DrawShop draws a generated shop: its name and price tier, the stock list
// with the cursor row highlighted, and the vault it was placed in to the
// right. top is the first screen row to use.
func (r *Renderer) DrawShop(top int, shop generate.Shop, vault *gamemap.GameMap, cursor int) {
	sw, _ := r.screen.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)

	r.drawText(0, top, fmt.Sprintf("%s  [greed %d]", shop.Name(), shop.Greed), yellow)
	r.drawText(0, top+1, "  #  Item", white)
	for x := range sw {
		r.screen.SetContent(x, top+2, '─', nil, gray)
	}

	for i, it := range shop.Items {
		style := white
		pfx := "  "
		if cursor == i {
			style = highlight
			pfx = "► "
		}
		r.drawText(0, top+3+i, fmt.Sprintf("%s[%c] %s", pfx, 'a'+rune(i), it), style)
	}
	r.drawText(0, top+4+len(shop.Items), fmt.Sprintf("%d items", shop.Count()), gray)

	if vault != nil {
		x := max(40, sw-vault.Width-2)
		r.DrawVault(x, top+3, vault)
	}
}
