package systems

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// sheetTileSize is the pixel size of one glyph in a CP437 sheet
const sheetTileSize = 12

// Tileset draws glyphs onto a tile grid. Without a sheet image it falls
// back to flat shapes so the viewer runs without any assets.
type Tileset struct {
	Image    *ebiten.Image
	TileSize int
	Width    int // Glyph columns in the sheet
	Height   int // Glyph rows in the sheet
}

// NewTileset loads a 16x16 CP437 sheet from a PNG file. An empty filename
// yields a tileset that only draws shapes.
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	if filename == "" {
		return &Tileset{TileSize: tileSize}, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open tileset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", filename, err)
	}

	sheet := ebiten.NewImageFromImage(img)
	bounds := sheet.Bounds()
	return &Tileset{
		Image:    sheet,
		TileSize: tileSize,
		Width:    bounds.Dx() / sheetTileSize,
		Height:   bounds.Dy() / sheetTileSize,
	}, nil
}

// GlyphCoords returns the sheet column and row of a CP437 glyph
func GlyphCoords(char rune) (int, int) {
	index := int(char)
	return index % 16, index / 16
}

// DrawTile fills the background of cell (x, y) and draws the glyph over it
func (t *Tileset) DrawTile(target *ebiten.Image, char rune, x, y int, fg, bg color.Color) {
	size := float32(t.TileSize)
	px, py := float32(x)*size, float32(y)*size
	if bg != nil {
		vector.DrawFilledRect(target, px, py, size, size, bg, false)
	}

	col, row := GlyphCoords(char)
	if t.Image == nil || col >= t.Width || row >= t.Height {
		t.drawShape(target, char, px, py, fg)
		return
	}

	sx, sy := col*sheetTileSize, row*sheetTileSize
	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / sheetTileSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(px), float64(py))
	if fg != nil {
		op.ColorScale.ScaleWithColor(fg)
	}
	target.DrawImage(t.Image.SubImage(image.Rect(sx, sy, sx+sheetTileSize, sy+sheetTileSize)).(*ebiten.Image), op)
}

// drawShape stands in for a glyph when no sheet is loaded
func (t *Tileset) drawShape(target *ebiten.Image, char rune, px, py float32, fg color.Color) {
	if fg == nil || char == ' ' {
		return
	}
	size := float32(t.TileSize)
	switch char {
	case '.':
		dot := max(size/6, 1)
		vector.DrawFilledRect(target, px+(size-dot)/2, py+(size-dot)/2, dot, dot, fg, false)
	case '#':
		vector.StrokeRect(target, px+1, py+1, size-2, size-2, 1, fg, false)
	default:
		vector.DrawFilledCircle(target, px+size/2, py+size/2, size/3, fg, true)
	}
}
