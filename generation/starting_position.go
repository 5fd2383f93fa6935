package generation

import (
	"fmt"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// RoomBasedStartingPosition starts the player in the center of the first room
type RoomBasedStartingPosition struct{}

// BuildMeta implements MetaBuilder
func (RoomBasedStartingPosition) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	rooms := build.requireRooms("RoomBasedStartingPosition")
	if len(rooms) == 0 {
		return fmt.Errorf("no rooms were placed: %w", ErrNoStartingPosition)
	}
	x, y := rooms[0].Center()
	build.StartingPosition = &Position{X: x, Y: y}
	return nil
}

// XStart anchors a starting position horizontally
type XStart int

const (
	XLeft XStart = iota
	XCenter
	XRight
)

// YStart anchors a starting position vertically
type YStart int

const (
	YTop YStart = iota
	YCenter
	YBottom
)

// AreaStartingPosition starts the player on the floor cell nearest to an
// anchor point on the map
type AreaStartingPosition struct {
	X XStart
	Y YStart
}

// BuildMeta implements MetaBuilder
func (a AreaStartingPosition) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	var ax, ay int
	switch a.X {
	case XLeft:
		ax = 1
	case XCenter:
		ax = build.Width / 2
	case XRight:
		ax = build.Width - 2
	}
	switch a.Y {
	case YTop:
		ay = 1
	case YCenter:
		ay = build.Height / 2
	case YBottom:
		ay = build.Height - 2
	}

	m := build.Map
	best, bestDist := -1, 0
	for idx, tile := range m.Tiles {
		if tile != components.TileFloor {
			continue
		}
		x, y := m.IdxXY(idx)
		d := Pythagoras.distance(x, y, ax, ay)
		if best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return fmt.Errorf("no floor near (%d,%d): %w", ax, ay, ErrNoStartingPosition)
	}

	x, y := m.IdxXY(best)
	build.StartingPosition = &Position{X: x, Y: y}
	return nil
}
