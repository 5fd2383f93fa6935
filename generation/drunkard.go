package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// DrunkSpawnMode decides where each new digger starts
type DrunkSpawnMode int

const (
	SpawnStartingPoint DrunkSpawnMode = iota // Always the map center
	SpawnRandom                              // Center for the first digger, then anywhere
	SpawnPrevious                            // Where the previous digger stopped
)

const defaultMaxDiggers = 1000

// DrunkardSettings tunes a drunkard's walk run
type DrunkardSettings struct {
	SpawnMode    DrunkSpawnMode
	Lifetime     int     // Steps each digger takes
	FloorPercent float64 // Coverage that ends the run
	BrushSize    int
	Symmetry     Symmetry
	MaxDiggers   int // Upper bound on diggers; zero means the default
}

// DrunkardsWalkBuilder carves floor with random walkers until enough of
// the map is open
type DrunkardsWalkBuilder struct {
	Settings DrunkardSettings
}

// NewDrunkardsWalkBuilder creates a builder with custom settings
func NewDrunkardsWalkBuilder(settings DrunkardSettings) *DrunkardsWalkBuilder {
	return &DrunkardsWalkBuilder{Settings: settings}
}

// OpenAreaBuilder digs one wide cavern from the center
func OpenAreaBuilder() *DrunkardsWalkBuilder {
	return NewDrunkardsWalkBuilder(DrunkardSettings{
		SpawnMode: SpawnStartingPoint, Lifetime: 400, FloorPercent: 0.5, BrushSize: 1,
	})
}

// OpenHallsBuilder digs from random points for broad halls
func OpenHallsBuilder() *DrunkardsWalkBuilder {
	return NewDrunkardsWalkBuilder(DrunkardSettings{
		SpawnMode: SpawnRandom, Lifetime: 400, FloorPercent: 0.5, BrushSize: 1,
	})
}

// WindingPassagesBuilder uses short-lived diggers for narrow twisty tunnels
func WindingPassagesBuilder() *DrunkardsWalkBuilder {
	return NewDrunkardsWalkBuilder(DrunkardSettings{
		SpawnMode: SpawnRandom, Lifetime: 100, FloorPercent: 0.4, BrushSize: 1,
	})
}

// FatPassagesBuilder is WindingPassages with a wider brush
func FatPassagesBuilder() *DrunkardsWalkBuilder {
	return NewDrunkardsWalkBuilder(DrunkardSettings{
		SpawnMode: SpawnRandom, Lifetime: 100, FloorPercent: 0.4, BrushSize: 2,
	})
}

// FearfulSymmetryBuilder mirrors every step across both axes
func FearfulSymmetryBuilder() *DrunkardsWalkBuilder {
	return NewDrunkardsWalkBuilder(DrunkardSettings{
		SpawnMode: SpawnRandom, Lifetime: 100, FloorPercent: 0.4, BrushSize: 1, Symmetry: SymmetryBoth,
	})
}

// BuildMap implements InitialBuilder
func (b *DrunkardsWalkBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	m := build.Map
	s := b.Settings

	center := mapCenter(build)
	m.SetTile(center.X, center.Y, components.TileFloor)
	build.StartingPosition = &Position{X: center.X, Y: center.Y}

	maxDiggers := s.MaxDiggers
	if maxDiggers <= 0 {
		maxDiggers = defaultMaxDiggers
	}
	desired := int(float64(m.Width*m.Height) * s.FloorPercent)

	last := center
	for diggers := 0; diggers < maxDiggers && m.CountTiles(components.TileFloor) < desired; diggers++ {
		x, y := b.spawnPoint(rng, build, diggers, last)

		dug := false
		for life := s.Lifetime; life > 0; life-- {
			if m.Tile(x, y) == components.TileWall {
				dug = true
			}
			Paint(m, s.Symmetry, s.BrushSize, x, y)
			last = Position{X: x, Y: y}
			x, y = stagger(rng, m, x, y)
		}
		if dug {
			build.TakeSnapshot()
		}
	}

	build.Exit = &Position{X: last.X, Y: last.Y}
	return nil
}

func (b *DrunkardsWalkBuilder) spawnPoint(rng *random.RNG, build *BuilderMap, digger int, last Position) (int, int) {
	center := mapCenter(build)
	switch b.Settings.SpawnMode {
	case SpawnRandom:
		if digger == 0 {
			return center.X, center.Y
		}
		return rng.Roll(1, build.Width-3) + 1, rng.Roll(1, build.Height-3) + 1
	case SpawnPrevious:
		return last.X, last.Y
	default:
		return center.X, center.Y
	}
}

// stagger moves one step in a random cardinal direction, staying two
// cells clear of the edge
func stagger(rng *random.RNG, m *components.Map, x, y int) (int, int) {
	switch rng.Roll(1, 4) {
	case 1:
		if x > 2 {
			x--
		}
	case 2:
		if x < m.Width-2 {
			x++
		}
	case 3:
		if y > 2 {
			y--
		}
	case 4:
		if y < m.Height-2 {
			y++
		}
	}
	return x, y
}
