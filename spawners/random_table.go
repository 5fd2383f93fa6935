package spawners

import (
	"errors"

	"rogue-mapgen/random"
)

// ErrEmptyTable is returned when rolling on a table whose weights sum to zero
var ErrEmptyTable = errors.New("random table has no weight to roll on")

// RandomTableEntry is a single weighted choice
type RandomTableEntry struct {
	Name   string
	Weight int
}

// RandomTable picks names with probability proportional to their weight
type RandomTable struct {
	Entries     []RandomTableEntry
	totalWeight int
}

// NewRandomTable creates an empty table
func NewRandomTable() *RandomTable {
	return &RandomTable{}
}

// Add appends an entry. Entries with a non-positive weight can never be
// picked and are skipped.
func (t *RandomTable) Add(name string, weight int) *RandomTable {
	if weight > 0 {
		t.totalWeight += weight
		t.Entries = append(t.Entries, RandomTableEntry{Name: name, Weight: weight})
	}
	return t
}

// TotalWeight returns the sum of all entry weights
func (t *RandomTable) TotalWeight() int {
	return t.totalWeight
}

// Roll draws one entry. A table with no weight is rejected before any
// number is drawn from the stream.
func (t *RandomTable) Roll(rng *random.RNG) (string, error) {
	if t.totalWeight <= 0 {
		return "", ErrEmptyTable
	}

	roll := rng.Roll(1, t.totalWeight) - 1
	for _, entry := range t.Entries {
		if roll < entry.Weight {
			return entry.Name, nil
		}
		roll -= entry.Weight
	}

	// Unreachable while totalWeight matches the entries
	return t.Entries[len(t.Entries)-1].Name, nil
}
