package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// applyRoom carves the interior of a room, leaving its top and left edge as wall
func applyRoom(m *components.Map, room components.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
				m.Tiles[m.XYIdx(x, y)] = components.TileFloor
			}
		}
	}
}

// applyHorizontalTunnel carves floor from x1 to x2 at y
func applyHorizontalTunnel(m *components.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.Tiles[m.XYIdx(x, y)] = components.TileFloor
		}
	}
}

// applyVerticalTunnel carves floor from y1 to y2 at x
func applyVerticalTunnel(m *components.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.Tiles[m.XYIdx(x, y)] = components.TileFloor
		}
	}
}

// applyLCorridor joins two points with an L-shaped corridor. A coin flip
// picks whether the horizontal or the vertical leg comes first.
func applyLCorridor(rng *random.RNG, m *components.Map, x1, y1, x2, y2 int) {
	if rng.Roll(1, 2) == 1 {
		applyHorizontalTunnel(m, x1, x2, y1)
		applyVerticalTunnel(m, y1, y2, x2)
	} else {
		applyVerticalTunnel(m, y1, y2, x1)
		applyHorizontalTunnel(m, x1, x2, y2)
	}
}

// countAdjacentWalls counts the walls in the 8 cells around (x, y).
// Cells off the map count as walls.
func countAdjacentWalls(m *components.Map, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.Tile(x+dx, y+dy) == components.TileWall {
				count++
			}
		}
	}
	return count
}

// walkableRegions groups walkable cells into 8-connected regions. Regions
// are ordered by their lowest cell index and each lists its cells in
// discovery order.
func walkableRegions(m *components.Map) [][]int {
	regionOf := make([]int, len(m.Tiles))
	for i := range regionOf {
		regionOf[i] = -1
	}

	var regions [][]int
	for idx, tile := range m.Tiles {
		if !tile.IsWalkable() || regionOf[idx] >= 0 {
			continue
		}
		id := len(regions)
		region := []int{idx}
		regionOf[idx] = id
		for i := 0; i < len(region); i++ {
			cx, cy := m.IdxXY(region[i])
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := cx+dx, cy+dy
					if !m.IsWalkable(nx, ny) {
						continue
					}
					n := m.XYIdx(nx, ny)
					if regionOf[n] < 0 {
						regionOf[n] = id
						region = append(region, n)
					}
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// floorIndices returns the indices of every floor tile in ascending order
func floorIndices(m *components.Map) []int {
	var cells []int
	for idx, tile := range m.Tiles {
		if tile == components.TileFloor {
			cells = append(cells, idx)
		}
	}
	return cells
}

// demoteStairs turns every existing down staircase back into floor
func demoteStairs(m *components.Map) {
	for idx, tile := range m.Tiles {
		if tile == components.TileDownStairs {
			m.Tiles[idx] = components.TileFloor
		}
	}
}

// mapCenter returns the middle cell of the build area
func mapCenter(build *BuilderMap) Position {
	return Position{X: build.Width / 2, Y: build.Height / 2}
}
