package movement

import (
	"log"
	"sort"
)

// Placeholder is the behavior unknown names fall back to.
const Placeholder = "placeholder"

const (
	speedVelocity    = 2500.0
	speedAccel       = 50.0
	speedDecel       = 200.0
	rotationVelocity = 720.0 // two full turns a second
	rotationAccel    = 800.0
)

// Hold intervals in ms.

func MeasuredInterval() SampleSpec {
	return SampleSpec{Range: Range{Min: 200, Max: 5000, SkewMin: 3}}
}

func CommittedInterval() SampleSpec {
	return SampleSpec{Range: Range{Min: 1000, Max: 8000, SkewMin: 1}}
}

func FreneticInterval() SampleSpec {
	return SampleSpec{Range: Range{Min: 200, Max: 2000, SkewMin: 4}}
}

func defaultSpeedSample() SampleSpec {
	return SampleSpec{Range: Range{Min: 0, Max: 100, SkewMin: 2}, Zero: 0.15}
}

func defaultRotationSample() SampleSpec {
	s := defaultSpeedSample()
	s.Mirror = true
	return s
}

func speedSpec(velocity, accel, decel, zero float64, skew int, interval SampleSpec) VelocitySpec {
	sample := defaultSpeedSample()
	sample.Zero = zero
	sample.Range.SkewMin = skew
	return VelocitySpec{
		Limit:    Limit{Velocity: velocity, Accel: accel, Decel: decel},
		Velocity: sample,
		Interval: interval,
	}
}

func rotationSpec(velocity, accel, zero float64, skew int, interval SampleSpec) VelocitySpec {
	sample := defaultRotationSample()
	sample.Zero = zero
	sample.Range.SkewMin = skew
	return VelocitySpec{
		Limit:    Limit{Velocity: velocity, Accel: accel, Decel: accel},
		Velocity: sample,
		Interval: interval,
	}
}

func speedBehaviors() map[string]func() VelocitySpec {
	baseline := func() VelocitySpec {
		return speedSpec(speedVelocity, speedAccel, speedDecel, 0.15, 2, MeasuredInterval())
	}
	return map[string]func() VelocitySpec{
		Placeholder: baseline,
		"flitting":  baseline,
		"cautious": func() VelocitySpec {
			return speedSpec(speedVelocity/1.5, speedAccel/1.5, speedDecel/1.5, 0.3, 3, MeasuredInterval())
		},
		"deliberate": func() VelocitySpec {
			return speedSpec(speedVelocity/1.5, speedAccel/1.5, speedDecel/1.5, 0.2, 2, MeasuredInterval())
		},
		"erratic": func() VelocitySpec {
			return speedSpec(speedVelocity*1.5, speedAccel, speedDecel, 0.15, 2, FreneticInterval())
		},
		"floating": func() VelocitySpec {
			return speedSpec(speedVelocity/5, speedAccel/8, speedAccel/8, 0, 1, CommittedInterval())
		},
		"hovering": func() VelocitySpec {
			return speedSpec(speedVelocity/2, speedAccel/3, speedDecel/3, 0.3, 2, MeasuredInterval())
		},
		"predatory": func() VelocitySpec {
			return speedSpec(speedVelocity/1.5, speedAccel/1.5, speedDecel/1.5, 0.4, 0, MeasuredInterval())
		},
		"pushing": func() VelocitySpec {
			return speedSpec(speedVelocity/1.5, speedAccel/1.5, speedDecel/1.5, 0.2, 1, MeasuredInterval())
		},
	}
}

func rotationBehaviors() map[string]func() VelocitySpec {
	return map[string]func() VelocitySpec{
		Placeholder: func() VelocitySpec {
			return rotationSpec(rotationVelocity, rotationAccel, 0.15, 2, MeasuredInterval())
		},
		"coiling": func() VelocitySpec {
			return rotationSpec(rotationVelocity*0.75, rotationAccel/4, 0.08, 1, MeasuredInterval())
		},
		"onward": func() VelocitySpec {
			return rotationSpec(rotationVelocity/4, rotationAccel/4, 0.3, 3, CommittedInterval())
		},
		"twirling": func() VelocitySpec {
			return rotationSpec(rotationVelocity, rotationAccel*2, 0.15, 2, MeasuredInterval())
		},
		"curious": func() VelocitySpec {
			return rotationSpec(rotationVelocity/1.5, rotationAccel, 0.15, 2, MeasuredInterval())
		},
		"wary": func() VelocitySpec {
			return rotationSpec(rotationVelocity/4, rotationAccel/2, 0.3, 2, MeasuredInterval())
		},
	}
}

// Table resolves behavior names for one axis.
type Table struct {
	axis   string
	specs  map[string]func() VelocitySpec
	logger *log.Logger
}

// Lookup returns a fresh copy of the named behavior. Unknown names log
// and fall back to Placeholder.
func (t *Table) Lookup(name string) VelocitySpec {
	gen, ok := t.specs[name]
	if !ok {
		t.logger.Printf("movement: %s behavior %q not found, falling back to %s", t.axis, name, Placeholder)
		gen = t.specs[Placeholder]
	}
	return gen()
}

func (t *Table) Has(name string) bool {
	_, ok := t.specs[name]
	return ok
}

func (t *Table) Names() []string {
	names := make([]string, 0, len(t.specs))
	for name := range t.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Behavior pairs the specs of both axes.
type Behavior struct {
	Linear     VelocitySpec `yaml:"linear" json:"linear"`
	Rotational VelocitySpec `yaml:"rotational" json:"rotational"`
}

type Registry struct {
	Speed    *Table
	Rotation *Table
}

// NewRegistry returns the built-in speed and rotation behaviors. A nil
// logger uses log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		Speed:    &Table{axis: "speed", specs: speedBehaviors(), logger: logger},
		Rotation: &Table{axis: "rotation", specs: rotationBehaviors(), logger: logger},
	}
}

func (r *Registry) Resolve(linear, rotational string) Behavior {
	return Behavior{
		Linear:     r.Speed.Lookup(linear),
		Rotational: r.Rotation.Lookup(rotational),
	}
}
