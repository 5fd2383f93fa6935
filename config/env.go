package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MapgenConfig holds the defaults for a generation run. Every field can be
// set from the environment and overridden on the command line.
type MapgenConfig struct {
	Seed        int64  `env:"MAPGEN_SEED"`                            // Zero picks a random seed
	Width       int    `env:"MAPGEN_WIDTH" envDefault:"80"`           // Map width in tiles
	Height      int    `env:"MAPGEN_HEIGHT" envDefault:"50"`          // Map height in tiles
	Depth       int    `env:"MAPGEN_DEPTH" envDefault:"1"`            // Dungeon level, scales spawn tables
	Builder     string `env:"MAPGEN_BUILDER" envDefault:"random"`     // Preset name or "random"
	ShowHistory bool   `env:"MAPGEN_SHOW_HISTORY" envDefault:"false"` // Record snapshots for the viewer
	Viewer      bool   `env:"MAPGEN_VIEWER" envDefault:"false"`       // Open the step-through viewer
	Verbose     bool   `env:"MAPGEN_VERBOSE" envDefault:"false"`      // Log every builder and spawn
	Tileset     string `env:"MAPGEN_TILESET"`                         // Optional CP437 PNG sheet for the viewer
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadMapgenConfig reads MapgenConfig from the environment and checks it
func LoadMapgenConfig() (MapgenConfig, error) {
	var cfg MapgenConfig
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects sizes no builder can work with
func (c MapgenConfig) Validate() error {
	if c.Width < 10 || c.Height < 10 {
		return fmt.Errorf("map size %dx%d is below the 10x10 minimum", c.Width, c.Height)
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth %d must be at least 1", c.Depth)
	}
	return nil
}
