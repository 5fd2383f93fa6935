package generation

import (
	"rogue-mapgen/components"
)

// Symmetry selects which center axes a brush stroke is mirrored across
type Symmetry int

const (
	SymmetryNone       Symmetry = iota
	SymmetryHorizontal          // mirror the X coordinate across Width/2
	SymmetryVertical            // mirror the Y coordinate across Height/2
	SymmetryBoth
)

// Paint carves floor with a square brush at (x, y) and at its mirror
// images. A coordinate lying on its axis is painted once. Only cells with
// 1 <= x <= Width-2 and 1 <= y <= Height-2 change, so a size 1 brush on the
// outer border paints nothing.
func Paint(m *components.Map, mode Symmetry, brushSize, x, y int) {
	xs := []int{x}
	ys := []int{y}

	if mode == SymmetryHorizontal || mode == SymmetryBoth {
		xs = mirror(x, m.Width/2)
	}
	if mode == SymmetryVertical || mode == SymmetryBoth {
		ys = mirror(y, m.Height/2)
	}

	for _, py := range ys {
		for _, px := range xs {
			applyPaint(m, brushSize, px, py)
		}
	}
}

// mirror returns the point and its reflection across center
func mirror(v, center int) []int {
	if v == center {
		return []int{v}
	}
	dist := abs(center - v)
	return []int{center - dist, center + dist}
}

// applyPaint fills a brushSize square at (x, y), never touching the outer border
func applyPaint(m *components.Map, brushSize, x, y int) {
	if brushSize < 1 {
		brushSize = 1
	}
	half := brushSize / 2
	for by := y - half; by < y-half+brushSize; by++ {
		for bx := x - half; bx < x-half+brushSize; bx++ {
			if bx >= 1 && bx <= m.Width-2 && by >= 1 && by <= m.Height-2 {
				m.Tiles[m.XYIdx(bx, by)] = components.TileFloor
			}
		}
	}
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
