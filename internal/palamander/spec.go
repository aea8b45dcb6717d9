package palamander

import (
	"fmt"

	"github.com/san-kum/palamander/internal/movement"
	"github.com/san-kum/palamander/internal/section"
)

// DefaultUpdateInterval is the tick period in ms.
const DefaultUpdateInterval = 50.0

// BehaviorNames selects the speed and rotation behaviors by name.
type BehaviorNames struct {
	Linear     string `yaml:"linear" json:"linear"`
	Rotational string `yaml:"rotational" json:"rotational"`
}

type Spec struct {
	Type        string          `yaml:"type" json:"type"`
	SectionTree section.Section `yaml:"section_tree" json:"section_tree"`
	Behavior    BehaviorNames   `yaml:"behavior" json:"behavior"`
	// Magnification scales the rendered body; 100 draws segments at their
	// compiled radius.
	Magnification  float64 `yaml:"magnification" json:"magnification"`
	UpdateInterval float64 `yaml:"update_interval" json:"update_interval"` // ms, 0 means default
}

func (s Spec) Validate() error {
	if s.UpdateInterval < 0 {
		return fmt.Errorf("%w: %f", ErrInvalidInterval, s.UpdateInterval)
	}
	if s.Magnification < 0 {
		return fmt.Errorf("palamander: magnification must not be negative, got %f", s.Magnification)
	}
	if s.SectionTree.Type == "" {
		return fmt.Errorf("palamander: %s has no body plan", s.Type)
	}
	return nil
}

// Override pins parts of a creature's presentation.
type Override struct {
	Freeze bool                  `yaml:"freeze" json:"freeze"`
	Move   movement.MoveOverride `yaml:"move" json:"move"`
}

// Modifier adjusts a creature without touching its Spec.
type Modifier struct {
	Override Override        `yaml:"override" json:"override"`
	Factor   movement.Factor `yaml:"factor" json:"factor"`
	// Magnification is a percentage applied on top of the spec's.
	Magnification float64 `yaml:"magnification" json:"magnification"`
	// UpdateInterval replaces the spec's tick period when positive.
	UpdateInterval float64 `yaml:"update_interval" json:"update_interval"`
}

func Noop() Modifier {
	return Modifier{Factor: movement.DefaultFactor(), Magnification: 100}
}

func fptr(v float64) *float64 { return &v }

// Pointed holds the creature in place facing angle while it keeps
// swimming on the spot.
func Pointed(angle float64) Modifier {
	m := Noop()
	m.Override.Move = movement.MoveOverride{
		Linear: movement.Override{Velocity: fptr(20), Distance: fptr(0)},
		Angle:  fptr(angle),
	}
	return m
}

// Still holds the creature in place without turning.
func Still() Modifier {
	m := Noop()
	m.Override.Move = movement.MoveOverride{
		Linear:     movement.Override{Velocity: fptr(20), Distance: fptr(0)},
		Rotational: movement.Override{Velocity: fptr(0)},
	}
	return m
}

// Spin turns the creature on the spot at the given rotational velocity.
func Spin(velocity float64) Modifier {
	m := Noop()
	m.Override.Move = movement.MoveOverride{
		Linear:     movement.Override{Velocity: fptr(0)},
		Rotational: movement.Override{Velocity: fptr(velocity)},
	}
	return m
}

// Frozen never moves or wriggles.
func Frozen() Modifier {
	m := Noop()
	m.Override.Freeze = true
	return m
}

// Modifiers lists the named presets. Spin uses a moderate rotation.
func Modifiers() map[string]Modifier {
	return map[string]Modifier{
		"noop":    Noop(),
		"pointed": Pointed(0),
		"still":   Still(),
		"spin":    Spin(50),
		"frozen":  Frozen(),
	}
}
