package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// RoomBasedStairs puts the down staircase in the center of the last room
type RoomBasedStairs struct{}

// BuildMeta implements MetaBuilder
func (RoomBasedStairs) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	rooms := build.requireRooms("RoomBasedStairs")
	if len(rooms) == 0 {
		return nil
	}
	demoteStairs(build.Map)

	x, y := rooms[len(rooms)-1].Center()
	build.Map.SetTile(x, y, components.TileDownStairs)
	build.Exit = &Position{X: x, Y: y}
	build.TakeSnapshot()
	return nil
}

// ExitStairs puts the down staircase on the recorded exit
type ExitStairs struct{}

// BuildMeta implements MetaBuilder
func (ExitStairs) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	if build.Exit == nil {
		panic("generation: ExitStairs requires an exit; add a builder that records one earlier in the chain")
	}
	demoteStairs(build.Map)

	build.Map.SetTile(build.Exit.X, build.Exit.Y, components.TileDownStairs)
	build.TakeSnapshot()
	return nil
}
