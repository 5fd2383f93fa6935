package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"rogue-mapgen/config"
	"rogue-mapgen/ecs"
	"rogue-mapgen/generation"
	"rogue-mapgen/random"
	"rogue-mapgen/spawners"
	"rogue-mapgen/systems"
)

func main() {
	cfg, err := config.LoadMapgenConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var list bool
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "dungeon depth")
	flag.StringVar(&cfg.Builder, "builder", cfg.Builder, "builder preset, or random")
	flag.BoolVar(&cfg.ShowHistory, "history", cfg.ShowHistory, "record snapshots while building")
	flag.BoolVar(&cfg.Viewer, "viewer", cfg.Viewer, "open the snapshot viewer instead of printing the map")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	flag.StringVar(&cfg.Tileset, "tileset", cfg.Tileset, "CP437 PNG sheet for the viewer")
	flag.BoolVar(&list, "list", false, "list available builder presets")
	flag.Parse()

	if list {
		fmt.Println(strings.Join(generation.BuilderNames(), "\n"))
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if cfg.Seed == 0 {
		if cfg.Seed, err = random.NewSeed(); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	rng := random.NewRNG(cfg.Seed)

	logger := log.New(os.Stderr, "mapgen: ", 0)
	messages := systems.NewMessageLog(100)
	logMessage := func(msg string) {
		messages.Add(msg)
		if cfg.Verbose {
			logger.Println(msg)
		}
	}

	var chain *generation.BuilderChain
	if cfg.Builder == "random" {
		chain, err = generation.RandomBuilder(cfg.Depth, cfg.Width, cfg.Height, rng)
	} else {
		chain, err = generation.NewNamedBuilder(cfg.Builder, cfg.Depth, cfg.Width, cfg.Height)
	}
	if err != nil {
		log.Fatalf("select builder: %v", err)
	}
	chain.SetLogger(logMessage).SetShowHistory(cfg.ShowHistory || cfg.Viewer)

	if err := chain.BuildMap(rng); err != nil {
		log.Fatalf("build map (seed %d): %v", cfg.Seed, err)
	}

	world := ecs.NewWorld()
	if err := chain.SpawnEntities(spawners.NewEntitySpawner(world, logMessage)); err != nil {
		log.Fatalf("spawn entities: %v", err)
	}

	if !cfg.Viewer {
		fmt.Print(chain.Build.Map.String())
		logger.Printf("seed %d, builder %s: %d monsters, %d items, %d traps", cfg.Seed, cfg.Builder,
			len(world.GetEntitiesWithTag("monster")), len(world.GetEntitiesWithTag("item")),
			len(world.GetEntitiesWithTag("trap")))
		return
	}

	tileset, err := systems.NewTileset(cfg.Tileset, config.TileSize)
	if err != nil {
		log.Fatalf("load tileset: %v", err)
	}
	title := fmt.Sprintf("%s seed %d", cfg.Builder, cfg.Seed)
	viewer := NewMapViewer(chain.Build, world, tileset, messages, title)

	ebiten.SetWindowSize(config.GetWindowSize(cfg.Width, cfg.Height))
	ebiten.SetWindowTitle("Map Generator - " + title)
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
