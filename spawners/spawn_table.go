package spawners

import (
	"fmt"

	"rogue-mapgen/random"
)

// MaxSpawns scales how many entries a single room or region can receive
const MaxSpawns = 4

// Spawn is a request to create the named entity at a map cell
type Spawn struct {
	Idx  int
	Name string
}

// RoomTable returns the spawn weights for the given depth
func RoomTable(depth int) *RandomTable {
	return NewRandomTable().
		Add("Goblin", 10).
		Add("Orc", 1+depth).
		Add("Health Potion", 7).
		Add("Fireball Scroll", 2+depth).
		Add("Confusion Scroll", 2+depth).
		Add("Magic Missile Scroll", 4).
		Add("Dagger", 3).
		Add("Shield", 3).
		Add("Longsword", depth-1).
		Add("Tower Shield", depth-1).
		Add("Rations", 10).
		Add("Magic Mapping Scroll", 2).
		Add("Bear Trap", 5)
}

// SpawnRegion picks distinct cells from area and rolls a table entry for
// each. The area slice is not modified.
func SpawnRegion(rng *random.RNG, area []int, depth int) ([]Spawn, error) {
	table := RoomTable(depth)
	available := append([]int(nil), area...)

	numSpawns := min(len(available), rng.Roll(1, MaxSpawns+3)+(depth-1)-3)
	if numSpawns <= 0 {
		return nil, nil
	}

	spawns := make([]Spawn, 0, numSpawns)
	for i := 0; i < numSpawns; i++ {
		pick := rng.RandomIndex(len(available))
		idx := available[pick]
		available = append(available[:pick], available[pick+1:]...)

		name, err := table.Roll(rng)
		if err != nil {
			return nil, fmt.Errorf("roll spawn table for depth %d: %w", depth, err)
		}
		spawns = append(spawns, Spawn{Idx: idx, Name: name})
	}

	return spawns, nil
}
