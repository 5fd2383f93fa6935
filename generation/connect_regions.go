package generation

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// openPather lets a breadth first search cross every cell of the map,
// walls included, in the four cardinal directions
type openPather struct {
	m   *components.Map
	nbs paths.Neighbors
}

func (o *openPather) Neighbors(p gruid.Point) []gruid.Point {
	return o.nbs.Cardinal(p, func(q gruid.Point) bool {
		return o.m.InBounds(q.X, q.Y)
	})
}

// ConnectRegions links every isolated walkable area to the largest one
// with an L-shaped corridor between their closest cells
type ConnectRegions struct{}

// BuildMeta implements MetaBuilder
func (ConnectRegions) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	m := build.Map
	regions := walkableRegions(m)
	if len(regions) < 2 {
		return nil
	}

	main := 0
	for i, region := range regions {
		if len(region) > len(regions[main]) {
			main = i
		}
	}

	sources := make([]gruid.Point, 0, len(regions[main]))
	for _, idx := range regions[main] {
		x, y := m.IdxXY(idx)
		sources = append(sources, gruid.Point{X: x, Y: y})
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, m.Width, m.Height))
	pr.BreadthFirstMap(&openPather{m: m}, sources, m.Width+m.Height)

	for i, region := range regions {
		if i == main {
			continue
		}

		// The region cell closest to the main area
		from, best := gruid.Point{}, -1
		for _, idx := range region {
			x, y := m.IdxXY(idx)
			p := gruid.Point{X: x, Y: y}
			if cost := pr.BreadthFirstMapAt(p); best < 0 || cost < best {
				from, best = p, cost
			}
		}

		// and the main cell it is closest to
		to, bestDist := sources[0], -1
		for _, q := range sources {
			if d := paths.DistanceManhattan(from, q); bestDist < 0 || d < bestDist {
				to, bestDist = q, d
			}
		}

		applyLCorridor(rng, m, from.X, from.Y, to.X, to.Y)
		build.TakeSnapshot()
	}
	return nil
}
