package ecs

// EntityID is a unique identifier for an entity
type EntityID uint64

// Entity represents a spawned game object
type Entity struct {
	ID   EntityID
	Tags map[string]bool // Spawn category, e.g. "monster" or "trap"
}

// newEntity creates a new entity with the given ID
func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
