package generation

import (
	"errors"
	"fmt"

	"rogue-mapgen/components"
	"rogue-mapgen/random"
	"rogue-mapgen/spawners"
)

// ErrGenerationFailed is returned when a builder gives up after its retry budget
var ErrGenerationFailed = errors.New("map generation failed")

// Position is a map coordinate
type Position struct {
	X, Y int
}

// BuilderMap is the state threaded through one generation run
type BuilderMap struct {
	Map              *components.Map
	StartingPosition *Position
	Exit             *Position
	Rooms            []components.Rect
	Regions          [][]int
	SpawnList        []spawners.Spawn
	History          []*components.Map
	Width            int
	Height           int
	ShowHistory      bool
}

// NewBuilderMap creates the state for a run on an all-wall map
func NewBuilderMap(width, height, depth int) *BuilderMap {
	return &BuilderMap{
		Map:    components.NewMap(width, height, depth),
		Width:  width,
		Height: height,
	}
}

// TakeSnapshot records a revealed copy of the map when history is enabled
func (b *BuilderMap) TakeSnapshot() {
	if !b.ShowHistory {
		return
	}
	snapshot := b.Map.Clone()
	snapshot.RevealAll()
	b.History = append(b.History, snapshot)
}

// SetRooms records the rooms on both the build state and the map
func (b *BuilderMap) SetRooms(rooms []components.Rect) {
	b.Rooms = rooms
	b.Map.Rooms = append([]components.Rect(nil), rooms...)
}

// StartIdx returns the cell index of the starting position. Running a pass
// that needs a start before one was placed is a chain ordering bug.
func (b *BuilderMap) StartIdx() int {
	if b.StartingPosition == nil {
		panic("generation: no starting position; add a starting position builder earlier in the chain")
	}
	return b.Map.XYIdx(b.StartingPosition.X, b.StartingPosition.Y)
}

// requireRooms panics when a room-based pass runs before any rooms exist
func (b *BuilderMap) requireRooms(pass string) []components.Rect {
	if b.Rooms == nil {
		panic(fmt.Sprintf("generation: %s requires rooms; start the chain with a room-producing builder", pass))
	}
	return b.Rooms
}

// BuilderChain runs one initial builder followed by meta builders in order
type BuilderChain struct {
	starter    InitialBuilder
	builders   []MetaBuilder
	Build      *BuilderMap
	Depth      int
	logMessage func(string) // Function for logging messages
}

// NewBuilderChain creates an empty chain for a map of the given size and depth
func NewBuilderChain(depth, width, height int) *BuilderChain {
	return &BuilderChain{
		Build: NewBuilderMap(width, height, depth),
		Depth: depth,
	}
}

// StartWith sets the initial builder. A chain takes exactly one.
func (c *BuilderChain) StartWith(starter InitialBuilder) *BuilderChain {
	if c.starter != nil {
		panic("generation: builder chain already has an initial builder")
	}
	c.starter = starter
	return c
}

// With appends a meta builder; builders run in insertion order
func (c *BuilderChain) With(builder MetaBuilder) *BuilderChain {
	c.builders = append(c.builders, builder)
	return c
}

// SetShowHistory toggles snapshot recording
func (c *BuilderChain) SetShowHistory(show bool) *BuilderChain {
	c.Build.ShowHistory = show
	return c
}

// SetLogger sets the function used for progress messages
func (c *BuilderChain) SetLogger(logFunc func(string)) *BuilderChain {
	c.logMessage = logFunc
	return c
}

// BuildMap runs the chain. Running without an initial builder panics; a
// builder failure is returned and the partial map must not be used.
func (c *BuilderChain) BuildMap(rng *random.RNG) error {
	if c.starter == nil {
		panic("generation: cannot run a builder chain without an initial builder")
	}

	c.log("Running initial builder %s", builderName(c.starter))
	if err := c.starter.BuildMap(rng, c.Build); err != nil {
		return fmt.Errorf("initial builder %s: %w", builderName(c.starter), err)
	}

	for _, builder := range c.builders {
		c.log("Running meta builder %s", builderName(builder))
		if err := builder.BuildMeta(rng, c.Build); err != nil {
			return fmt.Errorf("meta builder %s: %w", builderName(builder), err)
		}
	}

	c.Build.Map.PopulateBlocked()
	c.log("Built %dx%d map at depth %d: %d floor tiles, %d spawns, %d snapshots",
		c.Build.Width, c.Build.Height, c.Depth,
		c.Build.Map.CountTiles(components.TileFloor), len(c.Build.SpawnList), len(c.Build.History))
	return nil
}

// SpawnEntities forwards every accumulated spawn to the entity factory and
// indexes the created entities by cell in the map's TileContent
func (c *BuilderChain) SpawnEntities(factory EntityFactory) error {
	m := c.Build.Map
	m.ClearContentIndex()
	for _, spawn := range c.Build.SpawnList {
		x, y := m.IdxXY(spawn.Idx)
		entity, err := factory.SpawnNamedEntity(x, y, spawn.Name)
		if err != nil {
			return fmt.Errorf("spawn entities: %w", err)
		}
		m.TileContent[spawn.Idx] = append(m.TileContent[spawn.Idx], entity.ID)
	}
	return nil
}

func (c *BuilderChain) log(format string, args ...any) {
	if c.logMessage != nil {
		c.logMessage(fmt.Sprintf(format, args...))
	}
}

// builderName returns the concrete type name of a builder for log lines
func builderName(builder any) string {
	name := fmt.Sprintf("%T", builder)
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
