package gamemap

import (
	"errors"
	"testing"
)

const testVault = `
    xxxxx
    x.S.x
    x...x
    xx+xx
`

func TestParseVault(t *testing.T) {
	m, err := ParseVault(testVault)
	if err != nil {
		t.Fatalf("ParseVault: %v", err)
	}
	if m.Width != 5 || m.Height != 4 {
		t.Fatalf("size = %dx%d; want 5x4", m.Width, m.Height)
	}
	if m.At(2, 1).Kind != TileShop {
		t.Error("expected shop at (2,1)")
	}
	if m.At(2, 3).Kind != TileDoor {
		t.Error("expected door at (2,3)")
	}
	if m.At(1, 2).Kind != TileFloor {
		t.Error("expected floor at (1,2)")
	}
	want := "xxxxx\nx.S.x\nx...x\nxx+xx\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestParseVaultPadsShortRows(t *testing.T) {
	m, err := ParseVault("xxx\nx.\nxxx")
	if err != nil {
		t.Fatalf("ParseVault: %v", err)
	}
	if m.At(2, 1).Kind != TileWall {
		t.Error("short row should be padded with wall")
	}
}

func TestParseVaultErrors(t *testing.T) {
	if _, err := ParseVault("\n   \n"); !errors.Is(err, ErrEmptyVault) {
		t.Errorf("blank layout: err = %v; want ErrEmptyVault", err)
	}
	if _, err := ParseVault("x?x"); err == nil {
		t.Error("unknown glyph should fail")
	}
}

func TestReachable(t *testing.T) {
	m, err := ParseVault(`
xxxx+xxxx
x.......x
x.x.S.x.x
xxxxxxxxx`)
	if err != nil {
		t.Fatal(err)
	}
	door, _ := m.Find(TileDoor)
	shop, _ := m.Find(TileShop)
	if !m.Reachable(door, shop) {
		t.Error("shop should be reachable from the door")
	}

	walled, err := ParseVault("x+x\nxxx\nxSx")
	if err != nil {
		t.Fatal(err)
	}
	door, _ = walled.Find(TileDoor)
	shop, _ = walled.Find(TileShop)
	if walled.Reachable(door, shop) {
		t.Error("shop behind a wall should not be reachable")
	}
	if walled.Reachable(Pos{X: 0, Y: 0}, shop) {
		t.Error("a wall is never a starting point")
	}
}
