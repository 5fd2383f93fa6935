package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"rogue-mapgen/components"
	"rogue-mapgen/ecs"
)

// RenderSystem draws a map snapshot and the entities spawned on it
type RenderSystem struct {
	tileset *Tileset
	defs    components.TileDefinitions
	camera  *Camera
}

// NewRenderSystem creates a renderer drawing through the given camera
func NewRenderSystem(tileset *Tileset, camera *Camera) *RenderSystem {
	return &RenderSystem{
		tileset: tileset,
		defs:    components.DefaultTileDefinitions(),
		camera:  camera,
	}
}

// DrawMap draws every revealed cell of m that lies in the viewport.
// Unrevealed cells stay black.
func (s *RenderSystem) DrawMap(screen *ebiten.Image, m *components.Map) {
	for y := s.camera.Y; y < s.camera.Y+s.camera.ViewH && y < m.Height; y++ {
		for x := s.camera.X; x < s.camera.X+s.camera.ViewW && x < m.Width; x++ {
			idx := m.XYIdx(x, y)
			if !m.Revealed[idx] {
				continue
			}
			def := s.defs.Get(m.Tiles[idx])
			sx, sy := s.camera.WorldToScreen(x, y)
			s.tileset.DrawTile(screen, def.Glyph, sx, sy, def.FG, def.BG)
		}
	}
}

// DrawMarker draws a glyph over a map cell, such as the starting position
func (s *RenderSystem) DrawMarker(screen *ebiten.Image, x, y int, glyph rune, fg color.Color) {
	if !s.camera.IsVisible(x, y) {
		return
	}
	sx, sy := s.camera.WorldToScreen(x, y)
	s.tileset.DrawTile(screen, glyph, sx, sy, fg, nil)
}

// DrawEntities draws every entity with Position and Renderable components
func (s *RenderSystem) DrawEntities(screen *ebiten.Image, world *ecs.World) {
	for _, entity := range world.GetAllEntities() {
		if !world.HasComponent(entity.ID, components.Position) || !world.HasComponent(entity.ID, components.Renderable) {
			continue
		}
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		rendComp, _ := world.GetComponent(entity.ID, components.Renderable)
		pos := posComp.(*components.PositionComponent)
		rend := rendComp.(*components.RenderableComponent)
		s.DrawMarker(screen, pos.X, pos.Y, rend.Glyph, rend.FG)
	}
}
