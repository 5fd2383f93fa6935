package wfc

import (
	"github.com/zyedidia/generic/mapset"

	"rogue-mapgen/components"
)

// Direction names a side of a chunk
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every side in a fixed order
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the facing side
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the chunk grid step for the direction
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// edge returns the tiles along one side of the pattern
func (p Pattern) edge(d Direction) []components.TileType {
	out := make([]components.TileType, p.Size)
	for i := 0; i < p.Size; i++ {
		switch d {
		case North:
			out[i] = p.At(i, 0)
		case South:
			out[i] = p.At(i, p.Size-1)
		case East:
			out[i] = p.At(p.Size-1, i)
		case West:
			out[i] = p.At(0, i)
		}
	}
	return out
}

// Library holds the patterns and the rules for placing them side by side
type Library struct {
	Patterns []Pattern
	Weights  []int
	// compatible[p][d] holds every pattern that may sit in direction d of p
	compatible [][4]mapset.Set[int]
}

// NewLibrary derives adjacency rules for the patterns. q may sit in
// direction d of p when the facing edges share an exit: some walkable cell
// on p's edge meets a walkable cell on q's opposite edge. Two edges without
// any exit also fit together.
func NewLibrary(patterns []Pattern, weights []int) *Library {
	lib := &Library{
		Patterns:   patterns,
		Weights:    weights,
		compatible: make([][4]mapset.Set[int], len(patterns)),
	}
	for p := range patterns {
		for _, d := range Directions {
			set := mapset.New[int]()
			edge := patterns[p].edge(d)
			for q := range patterns {
				if edgesFit(edge, patterns[q].edge(d.Opposite())) {
					set.Put(q)
				}
			}
			lib.compatible[p][d] = set
		}
	}
	return lib
}

// edgesFit reports whether two facing edges share an exit, or both have none
func edgesFit(a, b []components.TileType) bool {
	exitsA, exitsB := false, false
	for i := range a {
		walkA, walkB := a[i].IsWalkable(), b[i].IsWalkable()
		if walkA && walkB {
			return true
		}
		exitsA = exitsA || walkA
		exitsB = exitsB || walkB
	}
	return !exitsA && !exitsB
}

// FromSample cuts patterns out of the sample and builds their library
func FromSample(sample *components.Map, chunkSize int, variants bool) *Library {
	patterns, weights := CutPatterns(sample, chunkSize, variants)
	return NewLibrary(patterns, weights)
}

// Compatible reports whether pattern q may sit in direction d of pattern p
func (l *Library) Compatible(p, q int, d Direction) bool {
	return l.compatible[p][d].Has(q)
}

// ChunkSize returns the side length of the patterns, or 0 for an empty library
func (l *Library) ChunkSize() int {
	if len(l.Patterns) == 0 {
		return 0
	}
	return l.Patterns[0].Size
}
