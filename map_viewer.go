package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rogue-mapgen/components"
	"rogue-mapgen/config"
	"rogue-mapgen/ecs"
	"rogue-mapgen/generation"
	"rogue-mapgen/systems"
)

// snapshotFrames is how long each history snapshot stays up while playing
const snapshotFrames = 10

// MapViewer implements ebiten.Game and steps through the snapshots of a
// finished build, ending on the final map with its spawned entities.
type MapViewer struct {
	build        *generation.BuilderMap
	world        *ecs.World
	frames       []*components.Map
	current      int
	playing      bool
	ticks        int
	title        string
	camera       *systems.Camera
	renderSystem *systems.RenderSystem
	messages     *systems.MessageLog
}

// NewMapViewer creates a viewer over a completed build
func NewMapViewer(build *generation.BuilderMap, world *ecs.World, tileset *systems.Tileset, messages *systems.MessageLog, title string) *MapViewer {
	final := build.Map.Clone()
	final.RevealAll()
	frames := append(append([]*components.Map(nil), build.History...), final)

	viewW := min(build.Width, config.MaxViewWidth)
	viewH := min(build.Height, config.MaxViewHeight)
	camera := systems.NewCamera(viewW, viewH, build.Width, build.Height)
	if build.StartingPosition != nil {
		camera.CenterOn(build.StartingPosition.X, build.StartingPosition.Y)
	}

	messages.Add("Space plays, comma and period step, arrows pan, F toggles fullscreen")
	return &MapViewer{
		build:        build,
		world:        world,
		frames:       frames,
		playing:      len(frames) > 1,
		title:        title,
		camera:       camera,
		renderSystem: systems.NewRenderSystem(tileset, camera),
		messages:     messages,
	}
}

func (v *MapViewer) last() bool {
	return v.current == len(v.frames)-1
}

// Update handles input and advances playback
func (v *MapViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if v.last() {
			v.current = 0
		}
		v.playing = !v.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) && !v.last() {
		v.playing = false
		v.current++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) && v.current > 0 {
		v.playing = false
		v.current--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		v.playing = false
		v.current = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		v.playing = false
		v.current = len(v.frames) - 1
	}

	dx, dy := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		v.camera.Pan(dx*5, dy*5)
	}

	if v.playing {
		v.ticks++
		if v.ticks >= snapshotFrames {
			v.ticks = 0
			if v.last() {
				v.playing = false
			} else {
				v.current++
			}
		}
	}
	return nil
}

// Draw draws the current snapshot and the status lines
func (v *MapViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	v.renderSystem.DrawMap(screen, v.frames[v.current])

	if v.last() {
		v.renderSystem.DrawEntities(screen, v.world)
		if exit := v.build.Exit; exit != nil {
			v.renderSystem.DrawMarker(screen, exit.X, exit.Y, '>', color.RGBA{255, 255, 0, 255})
		}
		if start := v.build.StartingPosition; start != nil {
			v.renderSystem.DrawMarker(screen, start.X, start.Y, '@', color.RGBA{255, 255, 0, 255})
		}
	}

	statusY := v.camera.ViewH * config.TileSize
	status := fmt.Sprintf("%s  snapshot %d/%d", v.title, v.current+1, len(v.frames))
	if v.last() {
		status += fmt.Sprintf("  final, %d entities", v.world.EntityCount())
	}
	ebitenutil.DebugPrintAt(screen, status, 2, statusY)
	if recent := v.messages.RecentMessages(1); len(recent) > 0 {
		ebitenutil.DebugPrintAt(screen, recent[0], 2, statusY+config.TileSize+4)
	}
}

// Layout implements ebiten.Game's Layout
func (v *MapViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetWindowSize(v.build.Width, v.build.Height)
}
