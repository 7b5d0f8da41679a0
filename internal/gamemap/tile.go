package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileShop
)

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}

// MakeDoor returns a door tile.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true}
}

// MakeShop returns a shop entrance tile.
func MakeShop() Tile {
	return Tile{Kind: TileShop, Walkable: true}
}

// Glyph returns the vault glyph for the tile kind.
func (k TileKind) Glyph() byte {
	switch k {
	case TileFloor:
		return '.'
	case TileDoor:
		return '+'
	case TileShop:
		return 'S'
	}
	return 'x'
}
