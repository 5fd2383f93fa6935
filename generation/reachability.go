package generation

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// distanceMap returns the 8-way walking distance from start to every cell.
// Cells that cannot be reached get -1.
func distanceMap(m *components.Map, start Position) []int {
	pr := paths.NewPathRange(gruid.NewRange(0, 0, m.Width, m.Height))
	maxCost := m.Width * m.Height
	pr.BreadthFirstMap(m, []gruid.Point{{X: start.X, Y: start.Y}}, maxCost)

	dist := make([]int, len(m.Tiles))
	for idx := range dist {
		x, y := m.IdxXY(idx)
		cost := pr.BreadthFirstMapAt(gruid.Point{X: x, Y: y})
		if cost > maxCost || !m.Tiles[idx].IsWalkable() {
			cost = -1
		}
		dist[idx] = cost
	}
	return dist
}

// farthestCell returns the reachable floor cell with the greatest distance,
// lowest index first on ties, or -1 when nothing is reachable
func farthestCell(m *components.Map, dist []int) int {
	best := -1
	for idx, d := range dist {
		if d < 0 || m.Tiles[idx] != components.TileFloor {
			continue
		}
		if best < 0 || d > dist[best] {
			best = idx
		}
	}
	return best
}

// CullUnreachable walls off every walkable cell the start cannot reach and
// picks the farthest reachable cell as the exit when none is usable
type CullUnreachable struct{}

// BuildMeta implements MetaBuilder
func (CullUnreachable) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	start := build.StartIdx()
	x, y := build.Map.IdxXY(start)
	dist := distanceMap(build.Map, Position{X: x, Y: y})

	for idx, tile := range build.Map.Tiles {
		if tile.IsWalkable() && dist[idx] < 0 {
			build.Map.Tiles[idx] = components.TileWall
		}
	}

	if build.Exit == nil || dist[build.Map.XYIdx(build.Exit.X, build.Exit.Y)] < 0 {
		build.Exit = nil
		if far := farthestCell(build.Map, dist); far >= 0 {
			ex, ey := build.Map.IdxXY(far)
			build.Exit = &Position{X: ex, Y: ey}
		}
	}

	build.TakeSnapshot()
	return nil
}

// DistantExit places the only down staircase on the reachable floor cell
// farthest from the start
type DistantExit struct{}

// BuildMeta implements MetaBuilder
func (DistantExit) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	start := build.StartIdx()
	demoteStairs(build.Map)

	x, y := build.Map.IdxXY(start)
	far := farthestCell(build.Map, distanceMap(build.Map, Position{X: x, Y: y}))
	if far < 0 {
		return nil
	}
	build.Map.Tiles[far] = components.TileDownStairs
	ex, ey := build.Map.IdxXY(far)
	build.Exit = &Position{X: ex, Y: ey}

	build.TakeSnapshot()
	return nil
}
