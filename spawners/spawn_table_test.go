package spawners

import (
	"testing"

	"rogue-mapgen/random"
)

func TestRoomTableScalesWithDepth(t *testing.T) {
	shallow := RoomTable(1)
	deep := RoomTable(5)
	if deep.TotalWeight() <= shallow.TotalWeight() {
		t.Fatalf("expected deeper table to carry more weight: %d vs %d", deep.TotalWeight(), shallow.TotalWeight())
	}
	for _, entry := range shallow.Entries {
		if entry.Name == "Longsword" || entry.Name == "Tower Shield" {
			t.Fatalf("%s should not spawn at depth 1", entry.Name)
		}
	}
}

func TestSpawnRegionDistinctCells(t *testing.T) {
	area := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	for seed := int64(0); seed < 50; seed++ {
		spawns, err := SpawnRegion(random.NewRNG(seed), area, 6)
		if err != nil {
			t.Fatalf("SpawnRegion returned error: %v", err)
		}
		seen := map[int]bool{}
		for _, s := range spawns {
			if s.Idx < 10 || s.Idx > 19 {
				t.Fatalf("spawn outside area: %d", s.Idx)
			}
			if seen[s.Idx] {
				t.Fatalf("cell %d used twice", s.Idx)
			}
			seen[s.Idx] = true
			if s.Name == "" {
				t.Fatal("spawn without a name")
			}
		}
	}
	if len(area) != 10 || area[0] != 10 {
		t.Fatal("SpawnRegion modified its input")
	}
}

func TestSpawnRegionNeverExceedsArea(t *testing.T) {
	area := []int{3}
	for seed := int64(0); seed < 50; seed++ {
		spawns, err := SpawnRegion(random.NewRNG(seed), area, 20)
		if err != nil {
			t.Fatalf("SpawnRegion returned error: %v", err)
		}
		if len(spawns) > 1 {
			t.Fatalf("expected at most 1 spawn, got %d", len(spawns))
		}
	}
}

func TestSpawnRegionEmptyArea(t *testing.T) {
	spawns, err := SpawnRegion(random.NewRNG(1), nil, 3)
	if err != nil || spawns != nil {
		t.Fatalf("expected no spawns and no error, got %v %v", spawns, err)
	}
}
