package components

import (
	"image/color"

	"rogue-mapgen/ecs"
)

// Define component IDs for spawned entities
const (
	Position ecs.ComponentID = iota
	Name
	Renderable
)

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// RenderableComponent stores how a spawned entity is drawn by the viewer
type RenderableComponent struct {
	Glyph rune
	FG    color.Color
}

// NameComponent stores the spawn tag an entity was created from
type NameComponent struct {
	Name string
}
