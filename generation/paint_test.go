package generation

import (
	"testing"

	"rogue-mapgen/components"
)

func floorCells(m *components.Map) map[[2]int]bool {
	cells := map[[2]int]bool{}
	for idx, tile := range m.Tiles {
		if tile == components.TileFloor {
			x, y := m.IdxXY(idx)
			cells[[2]int{x, y}] = true
		}
	}
	return cells
}

func TestPaintSingleCellNoSymmetry(t *testing.T) {
	for _, p := range [][2]int{{1, 1}, {5, 7}, {10, 10}, {18, 18}} {
		m := components.NewMap(20, 20, 1)
		Paint(m, SymmetryNone, 1, p[0], p[1])
		cells := floorCells(m)
		if len(cells) != 1 || !cells[p] {
			t.Fatalf("painting %v changed %v", p, cells)
		}
	}
}

func TestPaintSingleCellOnBorderIsNoOp(t *testing.T) {
	m := components.NewMap(10, 10, 1)
	Paint(m, SymmetryNone, 1, 0, 5)
	Paint(m, SymmetryNone, 1, 9, 9)
	if got := m.CountTiles(components.TileFloor); got != 0 {
		t.Fatalf("border paint changed %d cells", got)
	}
}

func TestPaintNeverTouchesBorder(t *testing.T) {
	m := components.NewMap(10, 10, 1)
	Paint(m, SymmetryNone, 1, 0, 0)
	Paint(m, SymmetryNone, 4, 1, 1)
	Paint(m, SymmetryNone, 3, 9, 9)
	for x := 0; x < m.Width; x++ {
		if m.Tile(x, 0) != components.TileWall || m.Tile(x, m.Height-1) != components.TileWall {
			t.Fatalf("border erased at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.Tile(0, y) != components.TileWall || m.Tile(m.Width-1, y) != components.TileWall {
			t.Fatalf("border erased at row %d", y)
		}
	}
}

func TestPaintBrushSquare(t *testing.T) {
	m := components.NewMap(20, 20, 1)
	Paint(m, SymmetryNone, 3, 10, 10)
	cells := floorCells(m)
	if len(cells) != 9 {
		t.Fatalf("expected a 3x3 square, got %d cells", len(cells))
	}
	for y := 9; y <= 11; y++ {
		for x := 9; x <= 11; x++ {
			if !cells[[2]int{x, y}] {
				t.Fatalf("missing (%d,%d)", x, y)
			}
		}
	}

	m = components.NewMap(20, 20, 1)
	Paint(m, SymmetryNone, 2, 10, 10)
	if got := len(floorCells(m)); got != 4 {
		t.Fatalf("expected a 2x2 square, got %d cells", got)
	}
}

func TestPaintBothSymmetryFourPoints(t *testing.T) {
	m := components.NewMap(20, 20, 1)
	Paint(m, SymmetryBoth, 1, 3, 4)
	cells := floorCells(m)

	// center is (10,10): x mirrors to 17, y mirrors to 16
	want := [][2]int{{3, 4}, {17, 4}, {3, 16}, {17, 16}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %v", len(want), cells)
	}
	for _, p := range want {
		if !cells[p] {
			t.Fatalf("missing mirrored point %v in %v", p, cells)
		}
	}
}

func TestPaintOnAxisPaintsOnce(t *testing.T) {
	m := components.NewMap(20, 20, 1)
	Paint(m, SymmetryHorizontal, 1, 10, 4)
	if got := len(floorCells(m)); got != 1 {
		t.Fatalf("point on the axis should paint once, got %d cells", got)
	}

	m = components.NewMap(20, 20, 1)
	Paint(m, SymmetryBoth, 1, 10, 4)
	cells := floorCells(m)
	if len(cells) != 2 || !cells[[2]int{10, 4}] || !cells[[2]int{10, 16}] {
		t.Fatalf("expected only the vertical mirror, got %v", cells)
	}
}

func TestPaintSingleAxisMirrors(t *testing.T) {
	m := components.NewMap(20, 20, 1)
	Paint(m, SymmetryHorizontal, 1, 5, 6)
	cells := floorCells(m)
	if len(cells) != 2 || !cells[[2]int{5, 6}] || !cells[[2]int{15, 6}] {
		t.Fatalf("unexpected horizontal mirror: %v", cells)
	}

	m = components.NewMap(20, 20, 1)
	Paint(m, SymmetryVertical, 1, 5, 6)
	cells = floorCells(m)
	if len(cells) != 2 || !cells[[2]int{5, 6}] || !cells[[2]int{5, 14}] {
		t.Fatalf("unexpected vertical mirror: %v", cells)
	}
}
