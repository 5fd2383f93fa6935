package spawners

import (
	"errors"
	"testing"

	"rogue-mapgen/random"
)

func TestRollEmptyTableRejectedBeforeDraw(t *testing.T) {
	rng := random.NewRNG(5)
	reference := random.NewRNG(5)

	table := NewRandomTable().Add("Nothing", 0).Add("Negative", -3)
	if _, err := table.Roll(rng); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
	// The stream must be untouched by the rejected roll
	if rng.Roll(1, 1000) != reference.Roll(1, 1000) {
		t.Fatal("rejected roll consumed a random draw")
	}
}

func TestAddSkipsNonPositiveWeights(t *testing.T) {
	table := NewRandomTable().Add("A", 3).Add("B", 0).Add("C", 2)
	if table.TotalWeight() != 5 {
		t.Fatalf("expected total weight 5, got %d", table.TotalWeight())
	}
	if len(table.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table.Entries))
	}
}

func TestRollSingleEntry(t *testing.T) {
	table := NewRandomTable().Add("Only", 4)
	rng := random.NewRNG(1)
	for i := 0; i < 50; i++ {
		name, err := table.Roll(rng)
		if err != nil {
			t.Fatalf("Roll returned error: %v", err)
		}
		if name != "Only" {
			t.Fatalf("expected Only, got %q", name)
		}
	}
}

func TestRollRespectsWeights(t *testing.T) {
	table := NewRandomTable().Add("Common", 9).Add("Rare", 1)
	rng := random.NewRNG(99)
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		name, err := table.Roll(rng)
		if err != nil {
			t.Fatalf("Roll returned error: %v", err)
		}
		counts[name]++
	}
	if counts["Common"] < 8500 || counts["Rare"] < 500 {
		t.Fatalf("distribution far from 9:1: %v", counts)
	}
}
