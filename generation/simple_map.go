package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

const (
	simpleMaxRooms = 30
	simpleMinSize  = 6
	simpleMaxSize  = 10
)

// SimpleMapBuilder places non-overlapping rectangular rooms at random and
// joins each one to the previous with an L-shaped corridor
type SimpleMapBuilder struct{}

// NewSimpleMapBuilder creates a rooms-and-corridors builder
func NewSimpleMapBuilder() *SimpleMapBuilder {
	return &SimpleMapBuilder{}
}

// BuildMap implements InitialBuilder
func (b *SimpleMapBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	var rooms []components.Rect

	for i := 0; i < simpleMaxRooms; i++ {
		w := rng.Range(simpleMinSize, simpleMaxSize)
		h := rng.Range(simpleMinSize, simpleMaxSize)
		x := rng.Roll(1, build.Width-w-1) - 1
		y := rng.Roll(1, build.Height-h-1) - 1
		newRoom := components.NewRect(x, y, w, h)

		ok := true
		for _, other := range rooms {
			if newRoom.Intersect(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		applyRoom(build.Map, newRoom)
		if len(rooms) > 0 {
			newX, newY := newRoom.Center()
			prevX, prevY := rooms[len(rooms)-1].Center()
			applyLCorridor(rng, build.Map, prevX, prevY, newX, newY)
		}
		rooms = append(rooms, newRoom)
		build.TakeSnapshot()
	}

	build.SetRooms(rooms)
	return nil
}
