package generation

import (
	"errors"
	"fmt"

	"rogue-mapgen/components"
	"rogue-mapgen/generation/wfc"
	"rogue-mapgen/random"
)

// errNoFloor rejects a solution made only of wall patterns
var errNoFloor = errors.New("solution has no floor")

// WaveformCollapseBuilder resynthesizes a map from the patterns of a
// sample. As an initial builder the sample is either Sample or the output
// of Source; as a meta builder it is the current map.
type WaveformCollapseBuilder struct {
	ChunkSize   int
	Variants    bool // Also learn rotated and mirrored patterns
	MaxAttempts int
	Source      InitialBuilder
	Sample      *components.Map
}

// NewWaveformCollapseBuilder creates a resynthesizer with 8x8 chunks
func NewWaveformCollapseBuilder() *WaveformCollapseBuilder {
	return &WaveformCollapseBuilder{ChunkSize: 8, MaxAttempts: 10}
}

// WaveformCollapseFrom resynthesizes the output of another initial builder
func WaveformCollapseFrom(source InitialBuilder) *WaveformCollapseBuilder {
	b := NewWaveformCollapseBuilder()
	b.Source = source
	return b
}

// BuildMap implements InitialBuilder
func (b *WaveformCollapseBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	sample := b.Sample
	if sample == nil {
		if b.Source == nil {
			panic("generation: wave function collapse needs a sample map or a source builder")
		}
		scratch := NewBuilderMap(build.Width, build.Height, build.Map.Depth)
		scratch.ShowHistory = build.ShowHistory
		if err := b.Source.BuildMap(rng, scratch); err != nil {
			return fmt.Errorf("build sample: %w", err)
		}
		build.History = append(build.History, scratch.History...)
		sample = scratch.Map
	}
	return b.resynthesize(rng, build, sample)
}

// BuildMeta implements MetaBuilder
func (b *WaveformCollapseBuilder) BuildMeta(rng *random.RNG, build *BuilderMap) error {
	return b.resynthesize(rng, build, build.Map.Clone())
}

// resynthesize replaces the map with a solved pattern grid. Rooms, regions,
// spawns and positions no longer describe the new layout and are cleared.
func (b *WaveformCollapseBuilder) resynthesize(rng *random.RNG, build *BuilderMap, sample *components.Map) error {
	lib := wfc.FromSample(sample, b.ChunkSize, b.Variants)
	if len(lib.Patterns) == 0 {
		return fmt.Errorf("%w: sample of %dx%d yields no %d-cell patterns",
			ErrGenerationFailed, sample.Width, sample.Height, b.ChunkSize)
	}
	chunksX := build.Width / b.ChunkSize
	chunksY := build.Height / b.ChunkSize

	build.Rooms = nil
	build.Map.Rooms = nil
	build.Regions = nil
	build.SpawnList = nil
	build.StartingPosition = nil
	build.Exit = nil

	attempts := max(1, b.MaxAttempts)
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		solver := wfc.NewSolver(lib, chunksX, chunksY)
		err := b.solve(rng, build, solver)
		if errors.Is(err, wfc.ErrContradiction) {
			lastErr = err
			continue
		}
		if err != nil {
			return err
		}

		build.Map.Fill(components.TileWall)
		solver.Render(build.Map)
		wallBorder(build.Map)
		if build.Map.CountTiles(components.TileFloor) == 0 {
			lastErr = errNoFloor
			continue
		}
		build.TakeSnapshot()
		return nil
	}
	return fmt.Errorf("%w: no solution after %d attempts: %w", ErrGenerationFailed, attempts, lastErr)
}

// solve runs the solver to completion, recording partial grids when
// history is enabled
func (b *WaveformCollapseBuilder) solve(rng *random.RNG, build *BuilderMap, solver *wfc.Solver) error {
	steps := 0
	for !solver.Done() {
		if err := solver.Step(rng); err != nil {
			return err
		}
		steps++
		if build.ShowHistory && steps%10 == 0 {
			partial := components.NewMap(build.Width, build.Height, build.Map.Depth)
			solver.Render(partial)
			partial.RevealAll()
			build.History = append(build.History, partial)
		}
	}
	return nil
}

// wallBorder turns the outermost ring of cells into wall
func wallBorder(m *components.Map) {
	for x := 0; x < m.Width; x++ {
		m.SetTile(x, 0, components.TileWall)
		m.SetTile(x, m.Height-1, components.TileWall)
	}
	for y := 0; y < m.Height; y++ {
		m.SetTile(0, y, components.TileWall)
		m.SetTile(m.Width-1, y, components.TileWall)
	}
}
