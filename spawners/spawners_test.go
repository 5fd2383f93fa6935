package spawners

import (
	"errors"
	"testing"

	"rogue-mapgen/components"
	"rogue-mapgen/ecs"
)

func TestSpawnNamedEntity(t *testing.T) {
	world := ecs.NewWorld()
	var logged []string
	spawner := NewEntitySpawner(world, func(msg string) { logged = append(logged, msg) })

	entity, err := spawner.SpawnNamedEntity(4, 7, "Goblin")
	if err != nil {
		t.Fatalf("SpawnNamedEntity returned error: %v", err)
	}
	if !entity.HasTag("monster") {
		t.Fatal("goblin should be tagged as a monster")
	}
	comp, ok := world.GetComponent(entity.ID, components.Position)
	if !ok {
		t.Fatal("missing position component")
	}
	pos := comp.(*components.PositionComponent)
	if pos.X != 4 || pos.Y != 7 {
		t.Fatalf("expected position (4,7), got (%d,%d)", pos.X, pos.Y)
	}
	name, _ := world.GetComponent(entity.ID, components.Name)
	if name.(*components.NameComponent).Name != "Goblin" {
		t.Fatalf("unexpected name %v", name)
	}
	if len(logged) != 1 {
		t.Fatalf("expected one log line, got %d", len(logged))
	}
}

func TestSpawnUnknownName(t *testing.T) {
	spawner := NewEntitySpawner(ecs.NewWorld(), nil)
	if _, err := spawner.SpawnNamedEntity(0, 0, "Dragon"); !errors.Is(err, ErrUnknownSpawn) {
		t.Fatalf("expected ErrUnknownSpawn, got %v", err)
	}
}

func TestRoomTableNamesAreSpawnable(t *testing.T) {
	for _, entry := range RoomTable(10).Entries {
		if !KnownSpawn(entry.Name) {
			t.Fatalf("room table entry %q has no catalog entry", entry.Name)
		}
	}
}
