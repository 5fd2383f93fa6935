package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// DLAAlgorithm selects how walkers travel before they stick
type DLAAlgorithm int

const (
	DLAWalkInwards      DLAAlgorithm = iota // Walkers start anywhere and wander until they touch floor
	DLAWalkOutwards                         // Walkers start at the center and wander until they leave floor
	DLACentralAttractor                     // Walkers head straight for the center
)

// DLABuilder grows a blob from the center by diffusion-limited aggregation
type DLABuilder struct {
	Algorithm      DLAAlgorithm
	BrushSize      int
	Symmetry       Symmetry
	FloorPercent   float64
	MaxWalkerSteps int // Steps before a wandering walker is abandoned; zero means Width*Height
	MaxWalkers     int // Total walkers before the run stops; zero means 4*Width*Height
}

// DLAWalkInwardsBuilder creates a thin, spidery blob
func DLAWalkInwardsBuilder() *DLABuilder {
	return &DLABuilder{Algorithm: DLAWalkInwards, BrushSize: 1, FloorPercent: 0.25}
}

// DLAWalkOutwardsBuilder grows a blob outward from the center
func DLAWalkOutwardsBuilder() *DLABuilder {
	return &DLABuilder{Algorithm: DLAWalkOutwards, BrushSize: 2, FloorPercent: 0.25}
}

// DLACentralAttractorBuilder pulls walkers in along straight lines
func DLACentralAttractorBuilder() *DLABuilder {
	return &DLABuilder{Algorithm: DLACentralAttractor, BrushSize: 2, FloorPercent: 0.25}
}

// DLAInsectoidBuilder is a mirrored central attractor
func DLAInsectoidBuilder() *DLABuilder {
	return &DLABuilder{Algorithm: DLACentralAttractor, BrushSize: 2, Symmetry: SymmetryHorizontal, FloorPercent: 0.25}
}

// BuildMap implements InitialBuilder
func (b *DLABuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	m := build.Map
	center := mapCenter(build)
	build.StartingPosition = &Position{X: center.X, Y: center.Y}

	// Seed a small cross so the first walkers have something to hit
	for _, d := range [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		x, y := center.X+d[0], center.Y+d[1]
		if x >= 1 && x <= m.Width-2 && y >= 1 && y <= m.Height-2 {
			m.SetTile(x, y, components.TileFloor)
		}
	}
	build.TakeSnapshot()

	maxSteps := b.MaxWalkerSteps
	if maxSteps <= 0 {
		maxSteps = m.Width * m.Height
	}
	maxWalkers := b.MaxWalkers
	if maxWalkers <= 0 {
		maxWalkers = 4 * m.Width * m.Height
	}
	desired := int(float64(m.Width*m.Height) * b.FloorPercent)

	floor := m.CountTiles(components.TileFloor)
	for walkers := 0; walkers < maxWalkers && floor < desired; walkers++ {
		var x, y int
		var ok bool
		switch b.Algorithm {
		case DLAWalkOutwards:
			x, y, ok = b.walkOutwards(rng, m, center, maxSteps)
		case DLACentralAttractor:
			x, y, ok = b.centralAttractor(rng, m, center)
		default:
			x, y, ok = b.walkInwards(rng, m, maxSteps)
		}
		if !ok {
			continue
		}
		Paint(m, b.Symmetry, b.BrushSize, x, y)

		if walkers%20 == 0 {
			build.TakeSnapshot()
		}
		floor = m.CountTiles(components.TileFloor)
	}
	build.TakeSnapshot()
	return nil
}

// randomInterior picks a point at least one cell inside the border
func randomInterior(rng *random.RNG, m *components.Map) (int, int) {
	return rng.Roll(1, m.Width-3) + 1, rng.Roll(1, m.Height-3) + 1
}

// walkInwards wanders from a random point and sticks to the last wall
// cell before touching floor
func (b *DLABuilder) walkInwards(rng *random.RNG, m *components.Map, maxSteps int) (int, int, bool) {
	x, y := randomInterior(rng, m)
	prevX, prevY := x, y
	for steps := 0; m.Tile(x, y) == components.TileWall; steps++ {
		if steps >= maxSteps {
			return 0, 0, false
		}
		prevX, prevY = x, y
		x, y = stagger(rng, m, x, y)
	}
	return prevX, prevY, true
}

// walkOutwards wanders from the center and sticks to the first wall it reaches
func (b *DLABuilder) walkOutwards(rng *random.RNG, m *components.Map, center Position, maxSteps int) (int, int, bool) {
	x, y := center.X, center.Y
	for steps := 0; m.Tile(x, y) == components.TileFloor; steps++ {
		if steps >= maxSteps {
			return 0, 0, false
		}
		x, y = stagger(rng, m, x, y)
	}
	return x, y, true
}

// centralAttractor follows a straight line toward the center and sticks
// to the last wall cell on it
func (b *DLABuilder) centralAttractor(rng *random.RNG, m *components.Map, center Position) (int, int, bool) {
	x, y := randomInterior(rng, m)
	prevX, prevY := x, y
	path := bresenhamLine(x, y, center.X, center.Y)
	for len(path) > 0 && m.Tile(x, y) == components.TileWall {
		prevX, prevY = x, y
		x, y = path[0].X, path[0].Y
		path = path[1:]
	}
	return prevX, prevY, true
}

// bresenhamLine returns the cells from (x0, y0) to (x1, y1), excluding the start
func bresenhamLine(x0, y0, x1, y1 int) []Position {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	var line []Position
	e := dx + dy
	for x0 != x1 || y0 != y1 {
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
		line = append(line, Position{X: x0, Y: y0})
	}
	return line
}
