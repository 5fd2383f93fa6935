package ecs

import "testing"

func TestCreateEntitySequentialIDs(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected IDs 1 and 2, got %d and %d", a.ID, b.ID)
	}
	if w.EntityCount() != 2 {
		t.Fatalf("expected 2 entities, got %d", w.EntityCount())
	}
}

func TestComponentsAndTags(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.AddComponent(e.ID, ComponentID(3), "payload")
	w.TagEntity(e.ID, "monster")

	got, ok := w.GetComponent(e.ID, ComponentID(3))
	if !ok || got.(string) != "payload" {
		t.Fatalf("component lookup failed: %v %v", got, ok)
	}
	if !w.HasComponent(e.ID, ComponentID(3)) || w.HasComponent(e.ID, ComponentID(4)) {
		t.Fatal("HasComponent returned wrong answer")
	}
	tagged := w.GetEntitiesWithTag("monster")
	if len(tagged) != 1 || tagged[0].ID != e.ID {
		t.Fatalf("expected tagged entity %d, got %v", e.ID, tagged)
	}
	if len(w.GetEntitiesWithTag("item")) != 0 {
		t.Fatal("unused tag should have no entities")
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	w := NewWorld()
	w.AddComponent(EntityID(99), ComponentID(1), 1)
	if w.HasComponent(EntityID(99), ComponentID(1)) {
		t.Fatal("component stored for an entity that does not exist")
	}
}

func TestGetAllEntitiesOrdered(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 10; i++ {
		w.CreateEntity()
	}
	all := w.GetAllEntities()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("entities not ordered by ID at %d", i)
		}
	}
}
