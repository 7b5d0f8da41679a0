package gamemap

// Reachable reports whether to can be walked to from from, moving
// orthogonally through walkable tiles.
func (m *GameMap) Reachable(from, to Pos) bool {
	if !m.IsWalkable(from.X, from.Y) || !m.IsWalkable(to.X, to.Y) {
		return false
	}
	seen := map[Pos]bool{from: true}
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			return true
		}
		for _, d := range [4]Pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := Pos{X: p.X + d.X, Y: p.Y + d.Y}
			if seen[n] || !m.IsWalkable(n.X, n.Y) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return false
}
