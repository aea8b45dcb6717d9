package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/palamander/internal/palamander"
	"github.com/san-kum/palamander/internal/section"
)

const (
	DefaultCreature       = "nautilus"
	DefaultModifier       = "noop"
	DefaultDuration       = 10.0 // seconds
	DefaultUpdateInterval = palamander.DefaultUpdateInterval
	DefaultStreamAddr     = "localhost:8080"
	DefaultTheme          = "reef"
)

type Config struct {
	Creature       string  `yaml:"creature"`
	Modifier       string  `yaml:"modifier"`
	Seed           int64   `yaml:"seed"`
	Duration       float64 `yaml:"duration"`
	UpdateInterval float64 `yaml:"update_interval"`
	// Magnification replaces the catalog magnification when positive.
	Magnification float64 `yaml:"magnification"`
	// BodyPlan is a YAML section file used instead of the creature's own
	// section type.
	BodyPlan string         `yaml:"body_plan"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Tank     []string       `yaml:"tank"`
	Stream   StreamConfig   `yaml:"stream"`
	View     ViewConfig     `yaml:"view"`
	Output   OutputConfig   `yaml:"output"`
}

// BehaviorConfig overrides the catalog behaviors when set.
type BehaviorConfig struct {
	Linear     string `yaml:"linear"`
	Rotational string `yaml:"rotational"`
}

type StreamConfig struct {
	Addr string `yaml:"addr"`
}

type ViewConfig struct {
	Theme  string `yaml:"theme"`
	Follow bool   `yaml:"follow"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Creature:       DefaultCreature,
		Modifier:       DefaultModifier,
		Duration:       DefaultDuration,
		UpdateInterval: DefaultUpdateInterval,
		Stream:         StreamConfig{Addr: DefaultStreamAddr},
		View:           ViewConfig{Theme: DefaultTheme, Follow: true},
		Output:         OutputConfig{Dir: "runs"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Spec resolves the configured creature into a creature spec, applying
// the behavior, magnification, interval and body plan overrides.
func (c *Config) Spec() (palamander.Spec, error) {
	preset, err := GetPreset(c.Creature)
	if err != nil {
		return palamander.Spec{}, err
	}
	spec := preset.Spec(c.Creature)

	if c.Behavior.Linear != "" {
		spec.Behavior.Linear = c.Behavior.Linear
	}
	if c.Behavior.Rotational != "" {
		spec.Behavior.Rotational = c.Behavior.Rotational
	}
	if c.Magnification > 0 {
		spec.Magnification = c.Magnification
	}
	if c.UpdateInterval > 0 {
		spec.UpdateInterval = c.UpdateInterval
	}
	if c.BodyPlan != "" {
		tree, err := section.Load(c.BodyPlan)
		if err != nil {
			return palamander.Spec{}, err
		}
		spec.SectionTree = tree
	}
	return spec, nil
}

// GetModifier resolves the configured modifier preset.
func (c *Config) GetModifier() (palamander.Modifier, error) {
	name := c.Modifier
	if name == "" {
		name = DefaultModifier
	}
	mod, ok := palamander.Modifiers()[name]
	if !ok {
		return palamander.Modifier{}, fmt.Errorf("config: unknown modifier %q", name)
	}
	return mod, nil
}

// TankSpecs resolves the configured creature followed by every tank entry.
func (c *Config) TankSpecs() ([]palamander.Spec, error) {
	first, err := c.Spec()
	if err != nil {
		return nil, err
	}
	specs := []palamander.Spec{first}
	for _, name := range c.Tank {
		preset, err := GetPreset(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, preset.Spec(name))
	}
	return specs, nil
}
