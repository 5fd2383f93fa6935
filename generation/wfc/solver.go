package wfc

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
)

// ErrContradiction is returned when a chunk is left with no usable pattern
var ErrContradiction = errors.New("wave function collapse contradiction")

// Solver assigns one pattern to every chunk of a grid so that every pair
// of neighbouring chunks satisfies the library's adjacency rules. A chunk
// is either unresolved with a candidate set or resolved to one pattern.
type Solver struct {
	lib        *Library
	chunksX    int
	chunksY    int
	candidates []mapset.Set[int]
	resolved   []int
	remaining  int
}

// NewSolver creates a solver where every chunk may still be any pattern
func NewSolver(lib *Library, chunksX, chunksY int) *Solver {
	s := &Solver{
		lib:        lib,
		chunksX:    chunksX,
		chunksY:    chunksY,
		candidates: make([]mapset.Set[int], chunksX*chunksY),
		resolved:   make([]int, chunksX*chunksY),
		remaining:  chunksX * chunksY,
	}
	for i := range s.candidates {
		set := mapset.New[int]()
		for p := range lib.Patterns {
			set.Put(p)
		}
		s.candidates[i] = set
		s.resolved[i] = -1
	}
	return s
}

// Done reports whether every chunk is resolved
func (s *Solver) Done() bool {
	return s.remaining == 0
}

// Resolved returns the pattern chosen for a chunk, or -1
func (s *Solver) Resolved(chunk int) int {
	return s.resolved[chunk]
}

// Candidates returns the patterns a chunk may still take, in index order
func (s *Solver) Candidates(chunk int) []int {
	var out []int
	for p := range s.lib.Patterns {
		if s.candidates[chunk].Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Solve collapses chunks until the grid is resolved or a contradiction occurs
func (s *Solver) Solve(rng *random.RNG) error {
	for !s.Done() {
		if err := s.Step(rng); err != nil {
			return err
		}
	}
	return nil
}

// Step collapses the unresolved chunk with the fewest candidates (lowest
// index on ties) and propagates the result breadth first
func (s *Solver) Step(rng *random.RNG) error {
	if len(s.lib.Patterns) == 0 && s.remaining > 0 {
		return fmt.Errorf("empty pattern library: %w", ErrContradiction)
	}

	chunk := -1
	for i, set := range s.candidates {
		if s.resolved[i] >= 0 {
			continue
		}
		if set.Size() == 0 {
			return fmt.Errorf("chunk %d has no candidates: %w", i, ErrContradiction)
		}
		if chunk < 0 || set.Size() < s.candidates[chunk].Size() {
			chunk = i
		}
	}
	if chunk < 0 {
		return nil
	}

	pattern := s.pick(rng, s.Candidates(chunk))
	s.collapse(chunk, pattern)
	return s.propagate(chunk)
}

// pick chooses a candidate weighted by how often it appeared in the sample
func (s *Solver) pick(rng *random.RNG, options []int) int {
	if len(options) == 1 {
		return options[0]
	}
	total := 0
	for _, p := range options {
		total += s.lib.Weights[p]
	}
	roll := rng.Roll(1, total) - 1
	for _, p := range options {
		roll -= s.lib.Weights[p]
		if roll < 0 {
			return p
		}
	}
	return options[len(options)-1]
}

func (s *Solver) collapse(chunk, pattern int) {
	set := mapset.New[int]()
	set.Put(pattern)
	s.candidates[chunk] = set
	s.resolved[chunk] = pattern
	s.remaining--
}

// propagate removes candidates that no longer have a compatible partner,
// visiting chunks breadth first from the one that changed
func (s *Solver) propagate(start int) error {
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cx, cy := current%s.chunksX, current/s.chunksX
		supporters := s.Candidates(current)

		for _, d := range Directions {
			dx, dy := d.Offset()
			nx, ny := cx+dx, cy+dy
			if nx < 0 || ny < 0 || nx >= s.chunksX || ny >= s.chunksY {
				continue
			}
			neighbor := ny*s.chunksX + nx
			changed := false
			for _, q := range s.Candidates(neighbor) {
				if !s.supported(supporters, q, d) {
					s.candidates[neighbor].Remove(q)
					changed = true
				}
			}
			if s.candidates[neighbor].Size() == 0 {
				return fmt.Errorf("chunk %d has no candidates: %w", neighbor, ErrContradiction)
			}
			if changed {
				queue = append(queue, neighbor)
			}
		}
	}
	return nil
}

// supported reports whether any of the patterns allows q in direction d
func (s *Solver) supported(patterns []int, q int, d Direction) bool {
	for _, p := range patterns {
		if s.lib.Compatible(p, q, d) {
			return true
		}
	}
	return false
}

// Render paints every resolved chunk onto the map; unresolved chunks are
// left untouched
func (s *Solver) Render(m *components.Map) {
	size := s.lib.ChunkSize()
	for chunk, pattern := range s.resolved {
		if pattern < 0 {
			continue
		}
		cx, cy := chunk%s.chunksX, chunk/s.chunksX
		p := s.lib.Patterns[pattern]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				m.SetTile(cx*size+x, cy*size+y, p.At(x, y))
			}
		}
	}
}
