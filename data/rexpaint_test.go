package data

import (
	"bytes"
	"compress/gzip"
	"errors"
	"image/color"
	"testing"
)

func TestWriteThenLoadKeepsCells(t *testing.T) {
	layer := NewXPLayer(3, 2)
	layer.Set(0, 0, XPCell{Glyph: '#', FG: color.RGBA{1, 2, 3, 255}, BG: color.RGBA{4, 5, 6, 255}})
	layer.Set(2, 1, XPCell{Glyph: '@', FG: color.RGBA{7, 8, 9, 255}, BG: color.RGBA{0, 0, 0, 255}})
	file := &XPFile{Version: -1, Layers: []XPLayer{layer}}

	var buf bytes.Buffer
	if err := file.WriteXP(&buf); err != nil {
		t.Fatalf("WriteXP returned error: %v", err)
	}

	loaded, err := LoadXP(&buf)
	if err != nil {
		t.Fatalf("LoadXP returned error: %v", err)
	}
	if loaded.Version != -1 || len(loaded.Layers) != 1 {
		t.Fatalf("unexpected header: version %d, %d layers", loaded.Version, len(loaded.Layers))
	}
	got := loaded.Layers[0]
	if got.Width != 3 || got.Height != 2 {
		t.Fatalf("unexpected size %dx%d", got.Width, got.Height)
	}
	cell, ok := got.Get(2, 1)
	if !ok || cell.Glyph != '@' || cell.FG != (color.RGBA{7, 8, 9, 255}) {
		t.Fatalf("unexpected cell at (2,1): %+v", cell)
	}
	blank, _ := got.Get(1, 0)
	if !blank.IsTransparent() || blank.Glyph != ' ' {
		t.Fatalf("expected transparent blank cell, got %+v", blank)
	}
}

func TestColumnMajorLayout(t *testing.T) {
	layer := NewXPLayer(2, 3)
	layer.Set(1, 0, XPCell{Glyph: 'x'})
	// Column 1 starts after the three cells of column 0
	if layer.Cells[3].Glyph != 'x' {
		t.Fatalf("expected column-major storage, got %+v", layer.Cells)
	}
	if _, ok := layer.Get(2, 0); ok {
		t.Fatal("out of range Get reported ok")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := LoadXP(bytes.NewReader([]byte("not gzip"))); !errors.Is(err, ErrMalformedXP) {
		t.Fatalf("expected ErrMalformedXP, got %v", err)
	}
}

func TestLoadRejectsTruncatedLayer(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	// version, one layer, 4x4 but no cell data
	zw.Write([]byte{0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0})
	zw.Close()

	if _, err := LoadXP(&buf); !errors.Is(err, ErrMalformedXP) {
		t.Fatalf("expected ErrMalformedXP, got %v", err)
	}
}
