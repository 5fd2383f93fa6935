package generation

import (
	"fmt"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
	"rogue-mapgen/spawners"
)

// RoomBasedSpawner populates every room except the first, where the
// player starts
type RoomBasedSpawner struct{}

// BuildMeta implements MetaBuilder
func (RoomBasedSpawner) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	rooms := build.requireRooms("RoomBasedSpawner")
	for i := 1; i < len(rooms); i++ {
		spawns, err := spawners.SpawnRegion(rng, roomFloor(build.Map, rooms[i]), build.Map.Depth)
		if err != nil {
			return fmt.Errorf("spawn room %d: %w", i, err)
		}
		build.SpawnList = append(build.SpawnList, spawns...)
	}
	return nil
}

// roomFloor lists the floor cells inside a room in index order
func roomFloor(m *components.Map, room components.Rect) []int {
	var cells []int
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if m.Tile(x, y) == components.TileFloor {
				cells = append(cells, m.XYIdx(x, y))
			}
		}
	}
	return cells
}

// VoronoiSpawning populates noise regions. It uses the regions recorded
// by the initial builder, or partitions the floor around fresh seeds.
type VoronoiSpawning struct {
	Seeds int // Seed count for a fresh partition; zero means 32
}

// BuildMeta implements MetaBuilder
func (v VoronoiSpawning) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	regions := build.Regions
	if regions == nil {
		seeds := v.Seeds
		if seeds <= 0 {
			seeds = 32
		}
		points := randomSeeds(rng, build.Map, seeds)
		membership := VoronoiMembership(build.Width, build.Height, points, Pythagoras)
		regions = regionsByMembership(build.Map, membership, len(points))
		build.Regions = regions
	}

	start := -1
	if build.StartingPosition != nil {
		start = build.StartIdx()
	}
	for i, region := range regions {
		// Skip the start and any cell walled off since the regions were recorded
		var area []int
		for _, idx := range region {
			if idx != start && build.Map.Tiles[idx] == components.TileFloor {
				area = append(area, idx)
			}
		}
		spawns, err := spawners.SpawnRegion(rng, area, build.Map.Depth)
		if err != nil {
			return fmt.Errorf("spawn region %d: %w", i, err)
		}
		build.SpawnList = append(build.SpawnList, spawns...)
	}
	return nil
}
