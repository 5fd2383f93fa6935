package wfc

import (
	"errors"
	"testing"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// mapFromRows builds a map where '#' is wall and anything else is floor
func mapFromRows(rows ...string) *components.Map {
	m := components.NewMap(len(rows[0]), len(rows), 1)
	for y, row := range rows {
		for x, c := range row {
			if c != '#' {
				m.SetTile(x, y, components.TileFloor)
			}
		}
	}
	return m
}

func TestCutPatternsDeduplicatesInOrder(t *testing.T) {
	sample := mapFromRows(
		"#..##.",
		"#..##.",
	)
	patterns, weights := CutPatterns(sample, 2, false)
	if len(patterns) != 2 {
		t.Fatalf("expected 2 distinct patterns, got %d", len(patterns))
	}
	if patterns[0].At(0, 0) != components.TileWall || patterns[0].At(1, 0) != components.TileFloor {
		t.Fatalf("first pattern should be the first chunk of the sample")
	}
	if weights[0] != 2 || weights[1] != 1 {
		t.Fatalf("unexpected weights %v", weights)
	}
}

func TestCutPatternsVariants(t *testing.T) {
	sample := mapFromRows(
		"#.",
		"..",
	)
	patterns, _ := CutPatterns(sample, 2, true)
	// a single corner has four distinct orientations
	if len(patterns) != 4 {
		t.Fatalf("expected 4 orientations, got %d", len(patterns))
	}
}

func TestLibraryEdgeCompatibility(t *testing.T) {
	sample := mapFromRows(
		"#..#",
		"#..#",
	)
	lib := FromSample(sample, 2, false)
	// pattern 0 is "#." and pattern 1 is ".#"
	if !lib.Compatible(0, 1, East) {
		t.Fatalf("'.' column should match '.' column")
	}
	if lib.Compatible(0, 0, East) {
		t.Fatalf("a '.' edge must not face a '#' edge")
	}
	if !lib.Compatible(1, 1, North) || !lib.Compatible(0, 0, South) {
		t.Fatalf("identical rows should stack vertically")
	}
}

func TestEdgesFitOnSharedExits(t *testing.T) {
	w, f := components.TileWall, components.TileFloor
	cases := []struct {
		a, b []components.TileType
		want bool
	}{
		{[]components.TileType{w, f, f, w}, []components.TileType{w, f, w, w}, true},
		{[]components.TileType{f, w, w, w}, []components.TileType{w, w, w, f}, false},
		{[]components.TileType{w, w, w, w}, []components.TileType{w, w, w, w}, true},
		{[]components.TileType{w, f, w, w}, []components.TileType{w, w, w, w}, false},
		{[]components.TileType{w, w, w, w}, []components.TileType{f, f, f, f}, false},
	}
	for i, c := range cases {
		if got := edgesFit(c.a, c.b); got != c.want {
			t.Fatalf("case %d: edgesFit = %v, want %v", i, got, c.want)
		}
		if got := edgesFit(c.b, c.a); got != c.want {
			t.Fatalf("case %d: edgesFit is not symmetric", i)
		}
	}
}

func TestLibraryJoinsDifferentEdgesWithSharedExit(t *testing.T) {
	sample := mapFromRows(
		"#..#",
		"..##",
	)
	lib := FromSample(sample, 2, false)
	// pattern 0 is "#."/".." and pattern 1 is ".#"/"##"
	if !lib.Compatible(0, 1, East) || !lib.Compatible(1, 0, West) {
		t.Fatalf("edges sharing an exit on the top row should fit")
	}
	if lib.Compatible(1, 0, East) {
		t.Fatalf("a solid edge must not face an edge with an exit")
	}
}

func TestSolverForcedContradiction(t *testing.T) {
	sample := mapFromRows(
		"#.",
		"#.",
	)
	lib := FromSample(sample, 2, false)
	solver := NewSolver(lib, 2, 1)

	err := solver.Solve(random.NewRNG(1))
	if !errors.Is(err, ErrContradiction) {
		t.Fatalf("expected a contradiction, got %v", err)
	}

	// the same pattern alone fits a single chunk
	if err := NewSolver(lib, 1, 1).Solve(random.NewRNG(1)); err != nil {
		t.Fatalf("single chunk should resolve: %v", err)
	}
}

func TestSolverRespectsConstraints(t *testing.T) {
	sample := mapFromRows(
		"####....####",
		"#..#.##.#..#",
		"#..#.##.#..#",
		"####....####",
		"....####....",
		".##.#..#.##.",
		".##.#..#.##.",
		"....####....",
	)
	lib := FromSample(sample, 4, true)

	for seed := int64(0); seed < 20; seed++ {
		solver := NewSolver(lib, 6, 5)
		if err := solver.Solve(random.NewRNG(seed)); err != nil {
			t.Fatalf("seed %d: unexpected error %v", seed, err)
		}
		for cy := 0; cy < 5; cy++ {
			for cx := 0; cx < 6; cx++ {
				p := solver.Resolved(cy*6 + cx)
				if p < 0 {
					t.Fatalf("seed %d: chunk (%d,%d) unresolved", seed, cx, cy)
				}
				if cx+1 < 6 && !lib.Compatible(p, solver.Resolved(cy*6+cx+1), East) {
					t.Fatalf("seed %d: east constraint broken at (%d,%d)", seed, cx, cy)
				}
				if cy+1 < 5 && !lib.Compatible(p, solver.Resolved((cy+1)*6+cx), South) {
					t.Fatalf("seed %d: south constraint broken at (%d,%d)", seed, cx, cy)
				}
			}
		}
	}
}

func TestSolverRender(t *testing.T) {
	sample := mapFromRows(
		"#.",
		"#.",
	)
	lib := FromSample(sample, 2, false)
	solver := NewSolver(lib, 1, 1)
	if err := solver.Solve(random.NewRNG(3)); err != nil {
		t.Fatal(err)
	}

	m := components.NewMap(4, 4, 1)
	solver.Render(m)
	if m.Tile(1, 0) != components.TileFloor || m.Tile(1, 1) != components.TileFloor || m.Tile(0, 1) != components.TileWall {
		t.Fatalf("rendered map does not match the pattern:\n%s", m)
	}
	if m.Tile(3, 3) != components.TileWall {
		t.Fatalf("cells outside the chunk grid must stay untouched")
	}
}
