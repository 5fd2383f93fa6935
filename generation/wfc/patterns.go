// Package wfc resynthesizes tile maps with the wave function collapse
// algorithm: square patterns are cut from a sample, adjacency rules are
// derived from their edges and a new grid of patterns is solved under
// those rules.
package wfc

import (
	"strings"

	"rogue-mapgen/components"
)

// Pattern is a square block of tiles stored row by row
type Pattern struct {
	Size  int
	Tiles []components.TileType
}

// At returns the tile at (x, y) inside the pattern
func (p Pattern) At(x, y int) components.TileType {
	return p.Tiles[y*p.Size+x]
}

func (p Pattern) key() string {
	var sb strings.Builder
	for _, t := range p.Tiles {
		sb.WriteByte(byte('0' + t))
	}
	return sb.String()
}

// transform builds a new pattern where cell (x, y) takes the tile at f(x, y)
func (p Pattern) transform(f func(x, y int) (int, int)) Pattern {
	out := Pattern{Size: p.Size, Tiles: make([]components.TileType, len(p.Tiles))}
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			sx, sy := f(x, y)
			out.Tiles[y*p.Size+x] = p.At(sx, sy)
		}
	}
	return out
}

func (p Pattern) flipHorizontal() Pattern {
	return p.transform(func(x, y int) (int, int) { return p.Size - 1 - x, y })
}

func (p Pattern) flipVertical() Pattern {
	return p.transform(func(x, y int) (int, int) { return x, p.Size - 1 - y })
}

// rotate turns the pattern a quarter turn clockwise
func (p Pattern) rotate() Pattern {
	return p.transform(func(x, y int) (int, int) { return y, p.Size - 1 - x })
}

// variants returns the pattern with every rotation and mirror image
func (p Pattern) variants() []Pattern {
	out := make([]Pattern, 0, 8)
	r := p
	for i := 0; i < 4; i++ {
		out = append(out, r, r.flipHorizontal())
		r = r.rotate()
	}
	return out
}

// CutPatterns slices the sample into non-overlapping chunkSize squares,
// optionally adds their rotations and mirrors, and removes duplicates.
// Patterns keep the order they were first seen in; weights count how
// often each one occurred.
func CutPatterns(sample *components.Map, chunkSize int, variants bool) ([]Pattern, []int) {
	if chunkSize <= 0 {
		return nil, nil
	}

	var patterns []Pattern
	var weights []int
	seen := make(map[string]int)
	add := func(p Pattern) {
		k := p.key()
		if i, ok := seen[k]; ok {
			weights[i]++
			return
		}
		seen[k] = len(patterns)
		patterns = append(patterns, p)
		weights = append(weights, 1)
	}

	for cy := 0; cy < sample.Height/chunkSize; cy++ {
		for cx := 0; cx < sample.Width/chunkSize; cx++ {
			p := Pattern{Size: chunkSize, Tiles: make([]components.TileType, 0, chunkSize*chunkSize)}
			for y := cy * chunkSize; y < (cy+1)*chunkSize; y++ {
				for x := cx * chunkSize; x < (cx+1)*chunkSize; x++ {
					p.Tiles = append(p.Tiles, sample.Tile(x, y))
				}
			}
			if variants {
				for _, v := range p.variants() {
					add(v)
				}
			} else {
				add(p)
			}
		}
	}
	return patterns, weights
}
