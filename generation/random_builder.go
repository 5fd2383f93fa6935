package generation

import (
	"fmt"
	"slices"

	"rogue-mapgen/random"
	"rogue-mapgen/spawners"
)

// builderKind tells a preset which finishing passes its starter needs
type builderKind int

const (
	roomKind   builderKind = iota // Records rooms
	areaKind                      // Open layout that needs a start, culling and an exit
	prefabKind                    // Hand-drawn level with its own start and exit
	startKind                     // Open layout that already records its start
)

type builderPreset struct {
	kind    builderKind
	starter func() InitialBuilder
	connect bool // Join isolated areas before anything else runs
}

var builderPresets = map[string]builderPreset{
	"simple":              {roomKind, func() InitialBuilder { return NewSimpleMapBuilder() }, false},
	"bsp-dungeon":         {roomKind, func() InitialBuilder { return NewBspDungeonBuilder() }, false},
	"bsp-interior":        {roomKind, func() InitialBuilder { return NewBspInteriorBuilder() }, false},
	"cellular-automata":   {areaKind, func() InitialBuilder { return NewCellularAutomataBuilder() }, true},
	"drunk-open-area":     {areaKind, func() InitialBuilder { return OpenAreaBuilder() }, false},
	"drunk-open-halls":    {areaKind, func() InitialBuilder { return OpenHallsBuilder() }, false},
	"drunk-winding":       {areaKind, func() InitialBuilder { return WindingPassagesBuilder() }, false},
	"drunk-fat-passages":  {areaKind, func() InitialBuilder { return FatPassagesBuilder() }, false},
	"drunk-symmetry":      {areaKind, func() InitialBuilder { return FearfulSymmetryBuilder() }, false},
	"maze":                {startKind, func() InitialBuilder { return NewMazeBuilder() }, false},
	"dla-walk-inwards":    {areaKind, func() InitialBuilder { return DLAWalkInwardsBuilder() }, false},
	"dla-walk-outwards":   {areaKind, func() InitialBuilder { return DLAWalkOutwardsBuilder() }, false},
	"dla-attractor":       {areaKind, func() InitialBuilder { return DLACentralAttractorBuilder() }, false},
	"dla-insectoid":       {areaKind, func() InitialBuilder { return DLAInsectoidBuilder() }, false},
	"voronoi-pythagoras":  {areaKind, func() InitialBuilder { return NewVoronoiCellBuilder(Pythagoras) }, false},
	"voronoi-manhattan":   {areaKind, func() InitialBuilder { return NewVoronoiCellBuilder(Manhattan) }, false},
	"voronoi-chebyshev":   {areaKind, func() InitialBuilder { return NewVoronoiCellBuilder(Chebyshev) }, false},
	"prefab-keep":         {startKind, func() InitialBuilder { return NewRexLevelBuilder(KeepTemplate) }, false},
	"prefab-guarded-cave": {prefabKind, func() InitialBuilder { return NewConstantLevelBuilder(GuardedCaveLevel) }, false},
	"waveform-collapse": {areaKind, func() InitialBuilder {
		return WaveformCollapseFrom(NewCellularAutomataBuilder())
	}, true},
}

// randomExcluded lists presets RandomBuilder never picks. Wave function
// collapse can exhaust its retries and fail the whole run.
var randomExcluded = []string{"waveform-collapse"}

// BuilderNames returns every preset name in sorted order
func BuilderNames() []string {
	names := make([]string, 0, len(builderPresets))
	for name := range builderPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewNamedBuilder creates a chain for a preset with the finishing passes
// its starter needs
func NewNamedBuilder(name string, depth, width, height int) (*BuilderChain, error) {
	preset, ok := builderPresets[name]
	if !ok {
		return nil, fmt.Errorf("unknown builder %q", name)
	}

	chain := NewBuilderChain(depth, width, height).StartWith(preset.starter())
	if preset.connect {
		chain.With(ConnectRegions{})
	}
	switch preset.kind {
	case roomKind:
		chain.With(RoomBasedStartingPosition{}).
			With(RoomBasedSpawner{}).
			With(RoomBasedStairs{})
	case areaKind:
		chain.With(AreaStartingPosition{X: XCenter, Y: YCenter}).
			With(CullUnreachable{}).
			With(VoronoiSpawning{}).
			With(DistantExit{})
	case startKind:
		chain.With(CullUnreachable{}).
			With(VoronoiSpawning{}).
			With(DistantExit{})
	case prefabKind:
		chain.With(CullUnreachable{})
	}
	return chain, nil
}

// RandomBuilder picks a preset through a weighted table and returns its chain
func RandomBuilder(depth, width, height int, rng *random.RNG) (*BuilderChain, error) {
	table := spawners.NewRandomTable()
	for _, name := range BuilderNames() {
		if !slices.Contains(randomExcluded, name) {
			table.Add(name, 1)
		}
	}

	name, err := table.Roll(rng)
	if err != nil {
		return nil, fmt.Errorf("pick builder: %w", err)
	}
	return NewNamedBuilder(name, depth, width, height)
}

// CellularAutomataChain is the cave preset: noise, joined caves, culling
// from the center, region spawns and a distant exit
func CellularAutomataChain(depth, width, height int) *BuilderChain {
	chain, _ := NewNamedBuilder("cellular-automata", depth, width, height)
	return chain
}
