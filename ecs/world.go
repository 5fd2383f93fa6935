package ecs

import "sort"

// World holds the entities a generated map was populated with
type World struct {
	nextID     EntityID
	entities   map[EntityID]*Entity
	components map[EntityID]ComponentMap
	entityTags map[string]map[EntityID]bool // tag -> members
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]ComponentMap),
		entityTags: make(map[string]map[EntityID]bool),
	}
}

// CreateEntity creates a new entity and adds it to the world. IDs are
// handed out sequentially per world, starting at 1.
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.GetComponent(entityID, componentID)
	return exists
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}

	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}

	sortByID(entities)
	return entities
}

// GetAllEntities returns every entity in the world, ordered by ID
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortByID(entities)
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

func sortByID(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].ID < entities[j].ID
	})
}
