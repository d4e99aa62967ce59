// Package config loads the YAML configuration for the demo simulation.
// The ECS core itself has no runtime configuration — its limits are
// compile-time constants — so everything here belongs to the caller side.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the simulation configuration.
type Config struct {
	Window   Window `yaml:"window"`
	Spawn    Spawn  `yaml:"spawn"`
	Headless bool   `yaml:"headless"`
	Frames   int    `yaml:"frames"`   // frame budget for headless runs
	Scenario string `yaml:"scenario"` // optional Lua scenario path
}

// Window describes the ebiten window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Spawn describes the default entity wave used when no scenario is given.
type Spawn struct {
	Count     int     `yaml:"count"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Health    float64 `yaml:"health"`
	DecayRate float64 `yaml:"decay_rate"`
	Size      float64 `yaml:"size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "sparsekit swarm",
		},
		Spawn: Spawn{
			Count:     2000,
			MaxSpeed:  80,
			Health:    20,
			DecayRate: 1,
			Size:      4,
		},
		Frames: 600,
	}
}

// Load reads path and unmarshals it over the defaults, so partial files
// only override what they mention.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Spawn.Count < 0 {
		return fmt.Errorf("spawn count %d must not be negative", c.Spawn.Count)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frame budget %d must not be negative", c.Frames)
	}
	return nil
}
