package generation

import (
	"github.com/zyedidia/generic/mapset"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// DistanceMetric measures the distance from a cell to a Voronoi seed
type DistanceMetric int

const (
	Pythagoras DistanceMetric = iota
	Manhattan
	Chebyshev
)

// distance returns a value that orders like the metric. Pythagoras uses
// the squared distance so comparisons stay exact.
func (d DistanceMetric) distance(x1, y1, x2, y2 int) int {
	dx, dy := abs(x1-x2), abs(y1-y2)
	switch d {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return max(dx, dy)
	default:
		return dx*dx + dy*dy
	}
}

// VoronoiMembership assigns every cell of a width x height grid to the
// nearest seed. Equal distances go to the seed that comes first.
func VoronoiMembership(width, height int, seeds []Position, metric DistanceMetric) []int {
	membership := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best, bestDist := -1, 0
			for i, seed := range seeds {
				d := metric.distance(x, y, seed.X, seed.Y)
				if best < 0 || d < bestDist {
					best, bestDist = i, d
				}
			}
			membership[y*width+x] = best
		}
	}
	return membership
}

// VoronoiCellBuilder partitions the map around random seeds, walls off the
// borders between cells and links neighbouring cells with corridors
type VoronoiCellBuilder struct {
	Seeds  int
	Metric DistanceMetric
}

// NewVoronoiCellBuilder creates a builder with 64 seeds under the given metric
func NewVoronoiCellBuilder(metric DistanceMetric) *VoronoiCellBuilder {
	return &VoronoiCellBuilder{Seeds: 64, Metric: metric}
}

// BuildMap implements InitialBuilder
func (b *VoronoiCellBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	m := build.Map
	seeds := randomSeeds(rng, m, b.Seeds)
	if len(seeds) == 0 {
		return nil
	}
	membership := VoronoiMembership(m.Width, m.Height, seeds, b.Metric)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			idx := m.XYIdx(x, y)
			foreign := 0
			for _, n := range [4]int{m.XYIdx(x-1, y), m.XYIdx(x+1, y), m.XYIdx(x, y-1), m.XYIdx(x, y+1)} {
				if membership[n] != membership[idx] {
					foreign++
				}
			}
			if foreign < 2 {
				m.Tiles[idx] = components.TileFloor
			}
		}
	}
	build.TakeSnapshot()

	b.connectRegions(rng, m, membership, len(seeds))
	build.TakeSnapshot()

	build.Regions = regionsByMembership(m, membership, len(seeds))
	return nil
}

// randomSeeds draws up to n distinct seed points inside the border
func randomSeeds(rng *random.RNG, m *components.Map, n int) []Position {
	if m.Width < 3 || m.Height < 3 {
		return nil
	}
	n = min(n, (m.Width-2)*(m.Height-2))

	used := mapset.New[int]()
	seeds := make([]Position, 0, n)
	for len(seeds) < n {
		x := rng.Roll(1, m.Width-2)
		y := rng.Roll(1, m.Height-2)
		idx := m.XYIdx(x, y)
		if used.Has(idx) {
			continue
		}
		used.Put(idx)
		seeds = append(seeds, Position{X: x, Y: y})
	}
	return seeds
}

// connectRegions carves a corridor along every edge of a breadth-first
// spanning tree over the region adjacency graph
func (b *VoronoiCellBuilder) connectRegions(rng *random.RNG, m *components.Map, membership []int, count int) {
	adjacent := make([][]bool, count)
	for i := range adjacent {
		adjacent[i] = make([]bool, count)
	}
	sumX := make([]int, count)
	sumY := make([]int, count)
	size := make([]int, count)
	for idx, region := range membership {
		x, y := m.IdxXY(idx)
		sumX[region] += x
		sumY[region] += y
		size[region]++
		if x+1 < m.Width {
			if other := membership[idx+1]; other != region {
				adjacent[region][other], adjacent[other][region] = true, true
			}
		}
		if y+1 < m.Height {
			if other := membership[idx+m.Width]; other != region {
				adjacent[region][other], adjacent[other][region] = true, true
			}
		}
	}

	centroid := func(region int) (int, int) {
		return sumX[region] / size[region], sumY[region] / size[region]
	}

	visited := make([]bool, count)
	for start := 0; start < count; start++ {
		if visited[start] || size[start] == 0 {
			continue
		}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for next := 0; next < count; next++ {
				if !adjacent[current][next] || visited[next] {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
				x1, y1 := centroid(current)
				x2, y2 := centroid(next)
				applyLCorridor(rng, m, x1, y1, x2, y2)
			}
		}
	}
}

// regionsByMembership lists the floor cells of each region in seed order,
// leaving out regions with no floor
func regionsByMembership(m *components.Map, membership []int, count int) [][]int {
	cells := make([][]int, count)
	for idx, region := range membership {
		if m.Tiles[idx] == components.TileFloor {
			cells[region] = append(cells[region], idx)
		}
	}
	var regions [][]int
	for _, region := range cells {
		if len(region) > 0 {
			regions = append(regions, region)
		}
	}
	return regions
}
