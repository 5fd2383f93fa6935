package components

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestNewMapParallelSlices(t *testing.T) {
	m := NewMap(12, 7, 3)
	size := 12 * 7
	if len(m.Tiles) != size || len(m.Revealed) != size || len(m.Visible) != size ||
		len(m.Blocked) != size || len(m.TileContent) != size {
		t.Fatalf("parallel slices do not all have %d entries", size)
	}
	if m.CountTiles(TileWall) != size {
		t.Fatalf("expected all-wall map, got %d walls", m.CountTiles(TileWall))
	}
	if m.Depth != 3 {
		t.Fatalf("expected depth 3, got %d", m.Depth)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	m := NewMap(9, 5, 1)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			if idx != y*m.Width+x {
				t.Fatalf("XYIdx(%d,%d) = %d", x, y, idx)
			}
			gx, gy := m.IdxXY(idx)
			if gx != x || gy != y {
				t.Fatalf("IdxXY(%d) = (%d,%d), want (%d,%d)", idx, gx, gy, x, y)
			}
		}
	}
}

func TestInBoundsAndTile(t *testing.T) {
	m := NewMap(4, 4, 1)
	if m.InBounds(-1, 0) || m.InBounds(4, 0) || m.InBounds(0, 4) {
		t.Fatal("out of range coordinates reported in bounds")
	}
	m.SetTile(2, 2, TileFloor)
	m.SetTile(9, 9, TileFloor)
	if m.Tile(2, 2) != TileFloor {
		t.Fatalf("expected floor at (2,2), got %v", m.Tile(2, 2))
	}
	if m.Tile(9, 9) != TileWall {
		t.Fatal("out of bounds tile should read as wall")
	}
	if m.CountTiles(TileFloor) != 1 {
		t.Fatalf("expected 1 floor, got %d", m.CountTiles(TileFloor))
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := NewMap(5, 5, 2)
	m.SetTile(1, 1, TileFloor)
	m.Bloodstains.Put(m.XYIdx(1, 1))
	m.Rooms = []Rect{NewRect(1, 1, 2, 2)}

	c := m.Clone()
	if !c.Equal(m) {
		t.Fatal("clone differs from original")
	}
	c.SetTile(2, 2, TileFloor)
	c.Bloodstains.Put(0)
	c.Rooms[0] = NewRect(0, 0, 1, 1)

	if m.Tile(2, 2) != TileWall {
		t.Fatal("mutating clone changed original tiles")
	}
	if m.Bloodstains.Has(0) || !c.Bloodstains.Has(m.XYIdx(1, 1)) {
		t.Fatal("bloodstains were not copied independently")
	}
	if m.Rooms[0] != NewRect(1, 1, 2, 2) {
		t.Fatal("mutating clone changed original rooms")
	}
}

func TestPopulateBlocked(t *testing.T) {
	m := NewMap(3, 1, 1)
	m.Tiles = []TileType{TileFloor, TileWall, TileDeepWater}
	m.PopulateBlocked()
	want := []bool{false, true, true}
	for i := range want {
		if m.Blocked[i] != want[i] {
			t.Fatalf("Blocked[%d] = %v, want %v", i, m.Blocked[i], want[i])
		}
	}
}

func TestStringDump(t *testing.T) {
	m := NewMap(3, 2, 1)
	m.SetTile(1, 0, TileFloor)
	m.SetTile(2, 1, TileDownStairs)
	got := m.String()
	want := "#.#\n##>\n"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatal("dump should end with a newline")
	}
}

func TestNeighborsOnlyWalkable(t *testing.T) {
	m := NewMap(5, 5, 1)
	m.SetTile(2, 2, TileFloor)
	m.SetTile(1, 1, TileFloor)
	m.SetTile(3, 2, TileDeepWater)
	m.SetTile(2, 3, TileShallowWater)

	got := map[gruid.Point]bool{}
	for _, p := range m.Neighbors(gruid.Point{X: 2, Y: 2}) {
		got[p] = true
	}
	if len(got) != 2 || !got[gruid.Point{X: 1, Y: 1}] || !got[gruid.Point{X: 2, Y: 3}] {
		t.Fatalf("unexpected neighbours: %v", got)
	}
}
