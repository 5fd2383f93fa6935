package generation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"rogue-mapgen/components"
	"rogue-mapgen/data"
	"rogue-mapgen/random"
	"rogue-mapgen/spawners"
)

// ErrNoStartingPosition is returned when a prefab leaves no floor to start on
var ErrNoStartingPosition = errors.New("no starting position")

// PrefabMode selects the kind of source a prefab is read from
type PrefabMode int

const (
	PrefabRexLevel PrefabMode = iota // Layered .xp image
	PrefabConstant                   // Text level compiled into the binary
)

// prefabSpawns maps level characters to the entity spawned on that floor cell
var prefabSpawns = map[rune]string{
	'g': "Goblin",
	'o': "Orc",
	'^': "Bear Trap",
	'%': "Rations",
	'!': "Health Potion",
}

// PrefabBuilder loads a hand-drawn level onto the map
type PrefabBuilder struct {
	Mode     PrefabMode
	Template string // Embedded .xp file name for PrefabRexLevel
	Level    string // Rows separated by newlines for PrefabConstant
}

// NewRexLevelBuilder loads one of the embedded .xp templates
func NewRexLevelBuilder(template string) *PrefabBuilder {
	return &PrefabBuilder{Mode: PrefabRexLevel, Template: template}
}

// NewConstantLevelBuilder loads a text level
func NewConstantLevelBuilder(level string) *PrefabBuilder {
	return &PrefabBuilder{Mode: PrefabConstant, Level: level}
}

// BuildMap implements InitialBuilder
func (b *PrefabBuilder) BuildMap(rng *random.RNG, build *BuilderMap) error {
	switch b.Mode {
	case PrefabRexLevel:
		if err := b.loadRexLevel(build); err != nil {
			return err
		}
	case PrefabConstant:
		b.loadConstantLevel(build)
	default:
		panic(fmt.Sprintf("generation: unknown prefab mode %d", b.Mode))
	}
	build.TakeSnapshot()

	if build.StartingPosition != nil {
		return nil
	}
	start, err := scanLeftForFloor(build.Map)
	if err != nil {
		return err
	}
	build.StartingPosition = start
	return nil
}

func (b *PrefabBuilder) loadRexLevel(build *BuilderMap) error {
	raw, err := prefabFS.ReadFile("prefabs/" + b.Template)
	if err != nil {
		return fmt.Errorf("open prefab %q: %w", b.Template, err)
	}
	xp, err := data.LoadXP(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("load prefab %q: %w", b.Template, err)
	}

	for _, layer := range xp.Layers {
		for y := 0; y < layer.Height; y++ {
			for x := 0; x < layer.Width; x++ {
				cell, _ := layer.Get(x, y)
				if !build.Map.InBounds(x, y) {
					continue
				}
				// Other glyphs are decoration and keep the tile underneath
				switch cell.Glyph {
				case ' ':
					build.Map.SetTile(x, y, components.TileFloor)
				case '#':
					build.Map.SetTile(x, y, components.TileWall)
				}
			}
		}
	}
	return nil
}

func (b *PrefabBuilder) loadConstantLevel(build *BuilderMap) {
	m := build.Map
	rows := strings.Split(strings.Trim(b.Level, "\n"), "\n")
	for y, row := range rows {
		for x, c := range []rune(row) {
			if !m.InBounds(x, y) {
				continue
			}
			switch c {
			case ' ', '.':
				m.SetTile(x, y, components.TileFloor)
			case '#':
				m.SetTile(x, y, components.TileWall)
			case '>':
				m.SetTile(x, y, components.TileDownStairs)
				build.Exit = &Position{X: x, Y: y}
			case '@':
				m.SetTile(x, y, components.TileFloor)
				build.StartingPosition = &Position{X: x, Y: y}
			default:
				if name, ok := prefabSpawns[c]; ok {
					m.SetTile(x, y, components.TileFloor)
					build.SpawnList = append(build.SpawnList, spawners.Spawn{Idx: m.XYIdx(x, y), Name: name})
				}
			}
		}
	}
}

// scanLeftForFloor walks left from the map center to the first floor cell
func scanLeftForFloor(m *components.Map) (*Position, error) {
	y := m.Height / 2
	for x := m.Width / 2; x >= 0; x-- {
		if m.Tile(x, y) == components.TileFloor {
			return &Position{X: x, Y: y}, nil
		}
	}
	return nil, fmt.Errorf("scan left from (%d,%d) reached the map edge: %w", m.Width/2, y, ErrNoStartingPosition)
}
