package spawners

import (
	"errors"
	"fmt"
	"image/color"

	"rogue-mapgen/components"
	"rogue-mapgen/ecs"
)

// ErrUnknownSpawn is returned for a spawn name with no catalog entry
var ErrUnknownSpawn = errors.New("unknown spawn name")

// spawnTemplate describes how a spawn name is turned into an entity
type spawnTemplate struct {
	Category string // "monster", "item" or "trap"
	Glyph    rune
	FG       color.Color
}

var spawnCatalog = map[string]spawnTemplate{
	"Goblin":               {"monster", 'g', color.RGBA{255, 0, 0, 255}},
	"Orc":                  {"monster", 'o', color.RGBA{255, 0, 0, 255}},
	"Health Potion":        {"item", '!', color.RGBA{255, 0, 255, 255}},
	"Fireball Scroll":      {"item", ')', color.RGBA{255, 165, 0, 255}},
	"Confusion Scroll":     {"item", ')', color.RGBA{255, 192, 203, 255}},
	"Magic Missile Scroll": {"item", ')', color.RGBA{0, 255, 255, 255}},
	"Magic Mapping Scroll": {"item", ')', color.RGBA{0, 255, 255, 255}},
	"Dagger":               {"item", '/', color.RGBA{0, 255, 255, 255}},
	"Longsword":            {"item", '/', color.RGBA{255, 255, 0, 255}},
	"Shield":               {"item", '(', color.RGBA{0, 255, 255, 255}},
	"Tower Shield":         {"item", '(', color.RGBA{255, 255, 0, 255}},
	"Rations":              {"item", '%', color.RGBA{0, 255, 0, 255}},
	"Bear Trap":            {"trap", '^', color.RGBA{255, 0, 0, 255}},
}

// KnownSpawn reports whether a spawn name has a catalog entry
func KnownSpawn(name string) bool {
	_, ok := spawnCatalog[name]
	return ok
}

// EntitySpawner turns spawn requests into entities in an ECS world
type EntitySpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// SpawnNamedEntity creates the entity a spawn name refers to at (x, y)
func (s *EntitySpawner) SpawnNamedEntity(x, y int, name string) (*ecs.Entity, error) {
	template, exists := spawnCatalog[name]
	if !exists {
		return nil, fmt.Errorf("spawn %q at %d,%d: %w", name, x, y, ErrUnknownSpawn)
	}

	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, template.Category)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: x,
		Y: y,
	})
	s.world.AddComponent(entity.ID, components.Name, &components.NameComponent{Name: name})
	s.world.AddComponent(entity.ID, components.Renderable, &components.RenderableComponent{
		Glyph: template.Glyph,
		FG:    template.FG,
	})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Spawned %s (%s) at %d,%d", name, template.Category, x, y))
	}

	return entity, nil
}
