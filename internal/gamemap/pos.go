package gamemap

// Level dimensions. The outermost ring of cells is permanent rock, so
// in-level positions exclude it.
const (
	LevelWidth  = 80
	LevelHeight = 70
)

// Pos is a position on a dungeon level.
type Pos struct {
	X, Y int
}

// InLevel reports whether p lies strictly inside the level boundary.
func (p Pos) InLevel() bool {
	return p.X > 0 && p.X < LevelWidth-1 && p.Y > 0 && p.Y < LevelHeight-1
}

// Distance returns the grid (Chebyshev) distance between a and b.
func Distance(a, b Pos) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
