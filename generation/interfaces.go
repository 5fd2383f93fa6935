package generation

import (
	"rogue-mapgen/ecs"
	"rogue-mapgen/random"
)

// InitialBuilder produces a first-draft map from an empty BuilderMap
type InitialBuilder interface {
	BuildMap(rng *random.RNG, build *BuilderMap) error
}

// MetaBuilder transforms an already-built BuilderMap in place
type MetaBuilder interface {
	BuildMeta(rng *random.RNG, build *BuilderMap) error
}

// EntityFactory is the collaborator that turns spawn requests into entities.
// spawners.EntitySpawner implements it.
type EntityFactory interface {
	SpawnNamedEntity(x, y int, name string) (*ecs.Entity, error)
}
