package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// CellularAutomataBuilder grows caves from random noise by repeatedly
// applying a neighbour-count rule
type CellularAutomataBuilder struct {
	FloorChance int // A cell starts as floor when a d100 roll beats this
	Iterations  int
}

// NewCellularAutomataBuilder creates a cave builder with the classic settings
func NewCellularAutomataBuilder() *CellularAutomataBuilder {
	return &CellularAutomataBuilder{FloorChance: 55, Iterations: 15}
}

// BuildMap implements InitialBuilder
func (b *CellularAutomataBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	m := build.Map

	// Seed the interior with noise; the edges stay wall
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if rng.Roll(1, 100) > b.FloorChance {
				m.Tiles[m.XYIdx(x, y)] = components.TileFloor
			} else {
				m.Tiles[m.XYIdx(x, y)] = components.TileWall
			}
		}
	}
	build.TakeSnapshot()

	for i := 0; i < b.Iterations; i++ {
		b.iterate(m)
		build.TakeSnapshot()
	}
	return nil
}

// iterate applies one generation of the rule to every interior cell
func (b *CellularAutomataBuilder) iterate(m *components.Map) {
	next := append([]components.TileType(nil), m.Tiles...)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := countAdjacentWalls(m, x, y)
			idx := m.XYIdx(x, y)
			if walls > 4 || walls == 0 {
				next[idx] = components.TileWall
			} else {
				next[idx] = components.TileFloor
			}
		}
	}
	m.Tiles = next
}
