// Package config loads and saves the scheduler settings as YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"oled-life/internal/scene"
)

const (
	DefaultFPS                 = 15
	DefaultGenerationsPerScene = 150
)

// Error policies for a failed display flush.
const (
	OnErrorSkip = "skip"
	OnErrorHalt = "halt"
)

// Config holds the user-tunable loop settings.
type Config struct {
	FPS                 int      `yaml:"fps"`
	GenerationsPerScene int      `yaml:"generations_per_scene"`
	Seed                uint32   `yaml:"seed"`
	Scenes              []string `yaml:"scenes"`
	OnDisplayError      string   `yaml:"on_display_error"`
	ReseedEachScene     bool     `yaml:"reseed_each_scene"`
}

// DefaultConfig returns the standard configuration: the full catalogue at
// 15 generations per second, 150 generations per scene, clock-seeded.
func DefaultConfig() *Config {
	return &Config{
		FPS:                 DefaultFPS,
		GenerationsPerScene: DefaultGenerationsPerScene,
		OnDisplayError:      OnErrorSkip,
	}
}

// Load reads a config file, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the error policy and clamps out-of-range values back to
// their defaults.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.GenerationsPerScene <= 0 {
		c.GenerationsPerScene = DefaultGenerationsPerScene
	}
	switch c.OnDisplayError {
	case "", OnErrorSkip:
		c.OnDisplayError = OnErrorSkip
	case OnErrorHalt:
	default:
		return fmt.Errorf("config: unknown on_display_error %q", c.OnDisplayError)
	}
	return nil
}

// FrameInterval converts the FPS setting into the inter-generation sleep.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// SceneList resolves the configured scene names. An empty list means the
// full catalogue in order.
func (c *Config) SceneList() ([]scene.Scene, error) {
	if len(c.Scenes) == 0 {
		return scene.All(), nil
	}
	out := make([]scene.Scene, 0, len(c.Scenes))
	for _, name := range c.Scenes {
		s, ok := scene.FromName(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown scene %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}
