// Package config handles configuration file loading and parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultMaxItems      = 100
	DefaultDurationSec   = 5.0
	DefaultIntervalSec   = 0.1
	MinIntervalSec       = 0.01
	DefaultMaxEffects    = 2
	DefaultTargetFPS     = 5
	DefaultMaxParticles  = 8
	DefaultDisplayWidth  = 64
	DefaultDisplayHeight = 32
	DefaultBrightness    = 1.0
)

// Config represents the marquee configuration.
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Queue    QueueConfig    `toml:"queue"`
	Manager  ManagerConfig  `toml:"manager"`
	Ambient  AmbientConfig  `toml:"ambient"`
	Particle ParticleConfig `toml:"particles"`
}

// DisplayConfig holds matrix dimensions and output brightness.
type DisplayConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Brightness float64 `toml:"brightness"` // 0..1
}

// QueueConfig holds queue capacity and timing defaults.
type QueueConfig struct {
	MaxItems        int     `toml:"max_items"`
	DefaultDuration float64 `toml:"default_duration"` // seconds
}

// ManagerConfig holds the tick interval.
type ManagerConfig struct {
	ProcessInterval float64 `toml:"process_interval"` // seconds, floor 0.01
}

// AmbientConfig bounds the ambient effects engine.
type AmbientConfig struct {
	MaxEffects int `toml:"max_effects"`
	TargetFPS  int `toml:"target_fps"`
}

// ParticleConfig bounds the particle engine.
type ParticleConfig struct {
	MaxParticles int `toml:"max_particles"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      DefaultDisplayWidth,
			Height:     DefaultDisplayHeight,
			Brightness: DefaultBrightness,
		},
		Queue: QueueConfig{
			MaxItems:        DefaultMaxItems,
			DefaultDuration: DefaultDurationSec,
		},
		Manager: ManagerConfig{
			ProcessInterval: DefaultIntervalSec,
		},
		Ambient: AmbientConfig{
			MaxEffects: DefaultMaxEffects,
			TargetFPS:  DefaultTargetFPS,
		},
		Particle: ParticleConfig{
			MaxParticles: DefaultMaxParticles,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// A missing file returns the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyFloors()
	return cfg, nil
}

// applyFloors clamps values that would break the scheduler.
func (c *Config) applyFloors() {
	if c.Manager.ProcessInterval < MinIntervalSec {
		c.Manager.ProcessInterval = MinIntervalSec
	}
	if c.Queue.MaxItems <= 0 {
		c.Queue.MaxItems = DefaultMaxItems
	}
	if c.Queue.DefaultDuration <= 0 {
		c.Queue.DefaultDuration = DefaultDurationSec
	}
	if c.Display.Width <= 0 {
		c.Display.Width = DefaultDisplayWidth
	}
	if c.Display.Height <= 0 {
		c.Display.Height = DefaultDisplayHeight
	}
	if c.Display.Brightness <= 0 || c.Display.Brightness > 1 {
		c.Display.Brightness = DefaultBrightness
	}
	if c.Ambient.MaxEffects <= 0 {
		c.Ambient.MaxEffects = DefaultMaxEffects
	}
	if c.Ambient.TargetFPS <= 0 {
		c.Ambient.TargetFPS = DefaultTargetFPS
	}
	if c.Particle.MaxParticles <= 0 {
		c.Particle.MaxParticles = DefaultMaxParticles
	}
}

// ProcessIntervalDuration converts the tick interval to a time.Duration.
func (c *Config) ProcessIntervalDuration() time.Duration {
	return time.Duration(c.Manager.ProcessInterval * float64(time.Second))
}

// DefaultDurationDuration converts the item default to a time.Duration.
func (c *Config) DefaultDurationDuration() time.Duration {
	return time.Duration(c.Queue.DefaultDuration * float64(time.Second))
}
