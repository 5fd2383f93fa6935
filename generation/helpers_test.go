package generation

import (
	"testing"

	"rogue-mapgen/components"
	"rogue-mapgen/ecs"
	"rogue-mapgen/random"
)

// runChain builds the chain with a fixed seed and fails the test on error
func runChain(t *testing.T, chain *BuilderChain, seed int64) *BuilderMap {
	t.Helper()
	if err := chain.BuildMap(random.NewRNG(seed)); err != nil {
		t.Fatalf("build with seed %d: %v", seed, err)
	}
	return chain.Build
}

// requireReachable fails unless every walkable cell can be reached from the start
func requireReachable(t *testing.T, build *BuilderMap) {
	t.Helper()
	if build.StartingPosition == nil {
		t.Fatalf("no starting position")
	}
	start := *build.StartingPosition
	if !build.Map.IsWalkable(start.X, start.Y) {
		t.Fatalf("start %v is not walkable", start)
	}
	dist := distanceMap(build.Map, start)
	for idx, tile := range build.Map.Tiles {
		if tile.IsWalkable() && dist[idx] < 0 {
			x, y := build.Map.IdxXY(idx)
			t.Fatalf("%s at (%d,%d) is unreachable from %v", tile, x, y, start)
		}
	}
}

// requireWallBorder fails if any outer cell is walkable
func requireWallBorder(t *testing.T, m *components.Map) {
	t.Helper()
	for x := 0; x < m.Width; x++ {
		if m.Tile(x, 0) != components.TileWall || m.Tile(x, m.Height-1) != components.TileWall {
			t.Fatalf("border opened at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.Tile(0, y) != components.TileWall || m.Tile(m.Width-1, y) != components.TileWall {
			t.Fatalf("border opened at row %d", y)
		}
	}
}

type recordedSpawn struct {
	x, y int
	name string
}

// recordingFactory remembers every spawn request it receives
type recordingFactory struct {
	spawns []recordedSpawn
	nextID ecs.EntityID
}

func (f *recordingFactory) SpawnNamedEntity(x, y int, name string) (*ecs.Entity, error) {
	f.spawns = append(f.spawns, recordedSpawn{x: x, y: y, name: name})
	f.nextID++
	return &ecs.Entity{ID: f.nextID}, nil
}

// expectPanic fails unless fn panics
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected a panic", name)
		}
	}()
	fn()
}
