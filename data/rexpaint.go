// Package data reads the layered character images prefab levels are drawn in.
package data

import (
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"
)

// ErrMalformedXP is returned when an image stream cannot be decoded
var ErrMalformedXP = errors.New("malformed xp image")

// maxLayerCells bounds a single layer so a corrupt header cannot force a huge allocation
const maxLayerCells = 1 << 22

// XPCell is one cell of a layer: a glyph plus foreground and background colors
type XPCell struct {
	Glyph uint32
	FG    color.RGBA
	BG    color.RGBA
}

// IsTransparent reports whether the cell uses the editor's transparent background
func (c XPCell) IsTransparent() bool {
	return c.BG.R == 255 && c.BG.G == 0 && c.BG.B == 255
}

// XPLayer holds a grid of cells stored column by column
type XPLayer struct {
	Width  int
	Height int
	Cells  []XPCell
}

// NewXPLayer creates a layer filled with transparent blank cells
func NewXPLayer(width, height int) XPLayer {
	layer := XPLayer{Width: width, Height: height, Cells: make([]XPCell, width*height)}
	for i := range layer.Cells {
		layer.Cells[i] = XPCell{Glyph: ' ', BG: color.RGBA{255, 0, 255, 255}}
	}
	return layer
}

// Get returns the cell at (x, y)
func (l *XPLayer) Get(x, y int) (XPCell, bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return XPCell{}, false
	}
	return l.Cells[x*l.Height+y], true
}

// Set replaces the cell at (x, y)
func (l *XPLayer) Set(x, y int, cell XPCell) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.Cells[x*l.Height+y] = cell
}

// XPFile is a decoded layered image
type XPFile struct {
	Version int32
	Layers  []XPLayer
}

// LoadXP decodes a gzip-compressed layered image
func LoadXP(r io.Reader) (*XPFile, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xp stream: %w: %v", ErrMalformedXP, err)
	}
	defer zr.Close()

	var header struct {
		Version   int32
		NumLayers int32
	}
	if err := binary.Read(zr, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read xp header: %w: %v", ErrMalformedXP, err)
	}
	if header.NumLayers < 1 {
		return nil, fmt.Errorf("xp header declares %d layers: %w", header.NumLayers, ErrMalformedXP)
	}

	file := &XPFile{Version: header.Version}
	for i := int32(0); i < header.NumLayers; i++ {
		layer, err := readLayer(zr)
		if err != nil {
			return nil, fmt.Errorf("read xp layer %d: %w", i, err)
		}
		file.Layers = append(file.Layers, layer)
	}

	return file, nil
}

func readLayer(r io.Reader) (XPLayer, error) {
	var size struct {
		Width  int32
		Height int32
	}
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return XPLayer{}, fmt.Errorf("%w: %v", ErrMalformedXP, err)
	}
	if size.Width <= 0 || size.Height <= 0 || int64(size.Width)*int64(size.Height) > maxLayerCells {
		return XPLayer{}, fmt.Errorf("layer size %dx%d: %w", size.Width, size.Height, ErrMalformedXP)
	}

	layer := XPLayer{
		Width:  int(size.Width),
		Height: int(size.Height),
		Cells:  make([]XPCell, int(size.Width)*int(size.Height)),
	}

	var raw [10]byte
	for i := range layer.Cells {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return XPLayer{}, fmt.Errorf("cell %d: %w: %v", i, ErrMalformedXP, err)
		}
		layer.Cells[i] = XPCell{
			Glyph: binary.LittleEndian.Uint32(raw[0:4]),
			FG:    color.RGBA{raw[4], raw[5], raw[6], 255},
			BG:    color.RGBA{raw[7], raw[8], raw[9], 255},
		}
	}

	return layer, nil
}

// WriteXP encodes the image in the same gzip-compressed layout LoadXP reads
func (f *XPFile) WriteXP(w io.Writer) error {
	zw := gzip.NewWriter(w)

	header := []int32{f.Version, int32(len(f.Layers))}
	if err := binary.Write(zw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write xp header: %w", err)
	}

	for i, layer := range f.Layers {
		if err := binary.Write(zw, binary.LittleEndian, []int32{int32(layer.Width), int32(layer.Height)}); err != nil {
			return fmt.Errorf("write xp layer %d size: %w", i, err)
		}
		var raw [10]byte
		for _, cell := range layer.Cells {
			binary.LittleEndian.PutUint32(raw[0:4], cell.Glyph)
			raw[4], raw[5], raw[6] = cell.FG.R, cell.FG.G, cell.FG.B
			raw[7], raw[8], raw[9] = cell.BG.R, cell.BG.G, cell.BG.B
			if _, err := zw.Write(raw[:]); err != nil {
				return fmt.Errorf("write xp layer %d: %w", i, err)
			}
		}
	}

	return zw.Close()
}
