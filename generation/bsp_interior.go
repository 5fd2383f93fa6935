package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// BspInteriorBuilder divides the whole map into adjoining rooms separated
// by single walls, like the inside of a building
type BspInteriorBuilder struct {
	MinSize int
}

// NewBspInteriorBuilder creates an interior builder with the default region size
func NewBspInteriorBuilder() *BspInteriorBuilder {
	return &BspInteriorBuilder{MinSize: 8}
}

// BuildMap implements InitialBuilder
func (b *BspInteriorBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	root := newBSPRoot(build.Width, build.Height)
	root.split(rng, b.MinSize, rng.Roll(1, 2) == 1)

	var rooms []components.Rect
	for _, leaf := range root.leaves() {
		// The leaf's own right and bottom edge become the shared wall
		room := components.NewRect(leaf.X-1, leaf.Y-1, leaf.Width-1, leaf.Height-1)
		applyRoom(build.Map, room)
		rooms = append(rooms, room)
		build.TakeSnapshot()
	}

	for i := 1; i < len(rooms); i++ {
		x1, y1 := rooms[i-1].Center()
		x2, y2 := rooms[i].Center()
		applyLCorridor(rng, build.Map, x1, y1, x2, y2)
		build.TakeSnapshot()
	}

	build.SetRooms(rooms)
	return nil
}
