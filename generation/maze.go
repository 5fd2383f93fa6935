package generation

import (
	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// Cell wall directions
const (
	mazeTop = iota
	mazeRight
	mazeBottom
	mazeLeft
)

type mazeCell struct {
	row, column int
	walls       [4]bool
	visited     bool
}

// mazeGrid is the coarse grid a recursive backtracker runs on. Cell
// (column, row) lands on map coordinate (2*(column+1), 2*(row+1)).
type mazeGrid struct {
	width, height int
	cells         []mazeCell
	backtrace     []int
	current       int
}

func newMazeGrid(width, height int) *mazeGrid {
	g := &mazeGrid{width: width, height: height}
	g.cells = make([]mazeCell, 0, width*height)
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			g.cells = append(g.cells, mazeCell{row: row, column: column, walls: [4]bool{true, true, true, true}})
		}
	}
	return g
}

func (g *mazeGrid) index(row, column int) int {
	if row < 0 || column < 0 || column >= g.width || row >= g.height {
		return -1
	}
	return column + row*g.width
}

// unvisitedNeighbors lists adjacent unvisited cells in top, right, bottom, left order
func (g *mazeGrid) unvisitedNeighbors() []int {
	cell := g.cells[g.current]
	candidates := []int{
		g.index(cell.row-1, cell.column),
		g.index(cell.row, cell.column+1),
		g.index(cell.row+1, cell.column),
		g.index(cell.row, cell.column-1),
	}
	var neighbors []int
	for _, idx := range candidates {
		if idx >= 0 && !g.cells[idx].visited {
			neighbors = append(neighbors, idx)
		}
	}
	return neighbors
}

// removeWalls opens the shared wall between two adjacent cells
func (g *mazeGrid) removeWalls(a, b int) {
	ca, cb := &g.cells[a], &g.cells[b]
	switch {
	case ca.column-cb.column == 1:
		ca.walls[mazeLeft] = false
		cb.walls[mazeRight] = false
	case ca.column-cb.column == -1:
		ca.walls[mazeRight] = false
		cb.walls[mazeLeft] = false
	case ca.row-cb.row == 1:
		ca.walls[mazeTop] = false
		cb.walls[mazeBottom] = false
	case ca.row-cb.row == -1:
		ca.walls[mazeBottom] = false
		cb.walls[mazeTop] = false
	}
}

// generate runs the backtracker to completion, calling snapshot every few
// carved cells
func (g *mazeGrid) generate(rng *random.RNG, m *components.Map, snapshot func()) {
	if len(g.cells) == 0 {
		return
	}
	steps := 0
	for {
		g.cells[g.current].visited = true
		neighbors := g.unvisitedNeighbors()

		if len(neighbors) > 0 {
			next := neighbors[rng.RandomIndex(len(neighbors))]
			g.backtrace = append(g.backtrace, g.current)
			g.removeWalls(g.current, next)
			g.current = next
		} else {
			if len(g.backtrace) == 0 {
				break
			}
			g.current = g.backtrace[len(g.backtrace)-1]
			g.backtrace = g.backtrace[:len(g.backtrace)-1]
		}

		steps++
		if steps%10 == 0 {
			g.copyToMap(m)
			snapshot()
		}
	}
	g.copyToMap(m)
}

// copyToMap paints every visited cell and its open walls
func (g *mazeGrid) copyToMap(m *components.Map) {
	for _, cell := range g.cells {
		if !cell.visited {
			continue
		}
		x := (cell.column + 1) * 2
		y := (cell.row + 1) * 2
		m.SetTile(x, y, components.TileFloor)
		if !cell.walls[mazeTop] {
			m.SetTile(x, y-1, components.TileFloor)
		}
		if !cell.walls[mazeRight] {
			m.SetTile(x+1, y, components.TileFloor)
		}
		if !cell.walls[mazeBottom] {
			m.SetTile(x, y+1, components.TileFloor)
		}
		if !cell.walls[mazeLeft] {
			m.SetTile(x-1, y, components.TileFloor)
		}
	}
}

// MazeBuilder carves a perfect maze with a recursive backtracker
type MazeBuilder struct{}

// NewMazeBuilder creates a maze builder
func NewMazeBuilder() *MazeBuilder {
	return &MazeBuilder{}
}

// BuildMap implements InitialBuilder
func (b *MazeBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	grid := newMazeGrid(max(0, build.Width/2-2), max(0, build.Height/2-2))
	grid.generate(rng, build.Map, build.TakeSnapshot)
	build.TakeSnapshot()

	if len(grid.cells) > 0 {
		build.StartingPosition = &Position{X: 2, Y: 2}
	}
	return nil
}
