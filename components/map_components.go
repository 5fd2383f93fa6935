package components

import (
	"image/color"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/mapset"

	"rogue-mapgen/ecs"
)

// TileType classifies a single map cell
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileDownStairs
	TileDoor
	TileBridge
	TileShallowWater
	TileDeepWater
)

// IsWalkable reports whether entities can stand on the tile
func (t TileType) IsWalkable() bool {
	switch t {
	case TileWall, TileDeepWater:
		return false
	default:
		return true
	}
}

// Glyph returns the character used to draw the tile in text dumps
func (t TileType) Glyph() rune {
	return DefaultTileDefinitions().Get(t).Glyph
}

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileDownStairs:
		return "DownStairs"
	case TileDoor:
		return "Door"
	case TileBridge:
		return "Bridge"
	case TileShallowWater:
		return "ShallowWater"
	case TileDeepWater:
		return "DeepWater"
	default:
		return "Unknown"
	}
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // The character drawn for the tile
	FG    color.Color // Foreground color
	BG    color.Color // Background color
}

// TileDefinitions maps tile types to their visual representation
type TileDefinitions map[TileType]TileDefinition

// DefaultTileDefinitions returns the glyphs and colors used by the viewer and text dumps
func DefaultTileDefinitions() TileDefinitions {
	black := color.RGBA{0, 0, 0, 255}
	return TileDefinitions{
		TileWall:         {Glyph: '#', FG: color.RGBA{128, 128, 128, 255}, BG: color.RGBA{48, 48, 48, 255}},
		TileFloor:        {Glyph: '.', FG: color.RGBA{64, 64, 64, 255}, BG: black},
		TileDownStairs:   {Glyph: '>', FG: color.RGBA{255, 255, 255, 255}, BG: color.RGBA{0, 96, 128, 255}},
		TileDoor:         {Glyph: '+', FG: color.RGBA{139, 69, 19, 255}, BG: black}, // Brown
		TileBridge:       {Glyph: '=', FG: color.RGBA{160, 110, 60, 255}, BG: black},
		TileShallowWater: {Glyph: '~', FG: color.RGBA{96, 160, 255, 255}, BG: color.RGBA{0, 32, 96, 255}},
		TileDeepWater:    {Glyph: '~', FG: color.RGBA{0, 0, 255, 255}, BG: color.RGBA{0, 0, 64, 255}},
	}
}

// Get returns the definition for a tile type
func (d TileDefinitions) Get(t TileType) TileDefinition {
	if def, exists := d[t]; exists {
		return def
	}

	// Magenta for undefined tiles
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
		BG:    color.RGBA{0, 0, 0, 255},
	}
}

// Map stores the tile grid plus the per-cell bookkeeping every builder and
// the game loop share. All per-cell slices are indexed by XYIdx.
type Map struct {
	Width       int
	Height      int
	Depth       int
	Tiles       []TileType
	Revealed    []bool
	Visible     []bool
	Blocked     []bool
	Rooms       []Rect
	Bloodstains mapset.Set[int]
	TileContent [][]ecs.EntityID

	nbs paths.Neighbors
}

// NewMap creates an all-wall map with the given dimensions
func NewMap(width, height, depth int) *Map {
	size := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       make([]TileType, size),
		Revealed:    make([]bool, size),
		Visible:     make([]bool, size),
		Blocked:     make([]bool, size),
		Bloodstains: mapset.New[int](),
		TileContent: make([][]ecs.EntityID, size),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m
}

// XYIdx converts a coordinate into a cell index
func (m *Map) XYIdx(x, y int) int {
	return y*m.Width + x
}

// IdxXY converts a cell index back into a coordinate
func (m *Map) IdxXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether the coordinate lies on the map
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y); out of bounds reads as wall
func (m *Map) Tile(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.XYIdx(x, y)]
}

// SetTile sets the tile at the given position
func (m *Map) SetTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.XYIdx(x, y)] = t
	}
}

// IsWalkable reports whether the cell at (x, y) can be walked on
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.XYIdx(x, y)].IsWalkable()
}

// Neighbors returns the walkable 8-way neighbours of p. It satisfies
// paths.Pather; the returned slice is reused by the next call.
func (m *Map) Neighbors(p gruid.Point) []gruid.Point {
	return m.nbs.All(p, func(q gruid.Point) bool {
		return m.IsWalkable(q.X, q.Y)
	})
}

// Fill sets every cell to the given tile type
func (m *Map) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// CountTiles counts the cells of the given type
func (m *Map) CountTiles(t TileType) int {
	count := 0
	for _, tile := range m.Tiles {
		if tile == t {
			count++
		}
	}
	return count
}

// PopulateBlocked marks every non-walkable cell as blocking movement
func (m *Map) PopulateBlocked() {
	for i, tile := range m.Tiles {
		m.Blocked[i] = !tile.IsWalkable()
	}
}

// ClearContentIndex drops every occupant reference
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// RevealAll marks every cell as revealed
func (m *Map) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// Clone makes a deep copy of the map
func (m *Map) Clone() *Map {
	c := &Map{
		Width:       m.Width,
		Height:      m.Height,
		Depth:       m.Depth,
		Tiles:       append([]TileType(nil), m.Tiles...),
		Revealed:    append([]bool(nil), m.Revealed...),
		Visible:     append([]bool(nil), m.Visible...),
		Blocked:     append([]bool(nil), m.Blocked...),
		Bloodstains: mapset.New[int](),
		TileContent: make([][]ecs.EntityID, len(m.TileContent)),
	}
	if m.Rooms != nil {
		c.Rooms = append([]Rect(nil), m.Rooms...)
	}
	m.Bloodstains.Each(func(idx int) {
		c.Bloodstains.Put(idx)
	})
	for i, content := range m.TileContent {
		if len(content) > 0 {
			c.TileContent[i] = append([]ecs.EntityID(nil), content...)
		}
	}
	return c
}

// Equal reports whether two maps have identical dimensions and tiles
func (m *Map) Equal(other *Map) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height || m.Depth != other.Depth {
		return false
	}
	for i := range m.Tiles {
		if m.Tiles[i] != other.Tiles[i] {
			return false
		}
	}
	return true
}

// String renders the map as one line of glyphs per row
func (m *Map) String() string {
	defs := DefaultTileDefinitions()
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sb.WriteRune(defs.Get(m.Tiles[m.XYIdx(x, y)]).Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
