package experiment

import (
	"log"
	"math/rand"

	"github.com/san-kum/palamander/internal/config"
	"github.com/san-kum/palamander/internal/movement"
	"github.com/san-kum/palamander/internal/palamander"
	"github.com/san-kum/palamander/internal/segmentation"
)

// Registry bundles the body plan compiler and behavior tables a run needs.
type Registry struct {
	compiler  *segmentation.Compiler
	behaviors *movement.Registry
	logger    *log.Logger
}

func NewRegistry(logger *log.Logger) (*Registry, error) {
	if logger == nil {
		logger = log.Default()
	}
	sections, err := segmentation.NewRegistry(logger)
	if err != nil {
		return nil, err
	}
	return &Registry{
		compiler:  segmentation.NewCompiler(sections, logger),
		behaviors: movement.NewRegistry(logger),
		logger:    logger,
	}, nil
}

func (r *Registry) Compiler() *segmentation.Compiler { return r.compiler }

func (r *Registry) Behaviors() *movement.Registry { return r.behaviors }

// NewPalamander builds a creature seeded with seed.
func (r *Registry) NewPalamander(spec palamander.Spec, mod palamander.Modifier, seed int64) (*palamander.Palamander, error) {
	return palamander.New(spec, mod, r.compiler, r.behaviors, rand.New(rand.NewSource(seed)))
}

// NewCreature builds a catalog creature by name.
func (r *Registry) NewCreature(name string, mod palamander.Modifier, seed int64) (*palamander.Palamander, error) {
	preset, err := config.GetPreset(name)
	if err != nil {
		return nil, err
	}
	return r.NewPalamander(preset.Spec(name), mod, seed)
}

func (r *Registry) ListCreatures() []string {
	return config.ListPresets()
}

func (r *Registry) ListSpeedBehaviors() []string {
	return r.behaviors.Speed.Names()
}

func (r *Registry) ListRotationBehaviors() []string {
	return r.behaviors.Rotation.Names()
}

// ListSections returns every section type a body plan may use.
func (r *Registry) ListSections() []string {
	return segmentation.Kinds()
}

func (r *Registry) Logger() *log.Logger { return r.logger }
