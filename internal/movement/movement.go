package movement

import "github.com/san-kum/palamander/internal/geom"

// Factor scales movement. Interval scales time itself, so 0.5 plays a
// creature at half speed.
type Factor struct {
	Linear     float64 `yaml:"linear" json:"linear"`
	Rotational float64 `yaml:"rotational" json:"rotational"`
	Interval   float64 `yaml:"interval" json:"interval"`
}

func DefaultFactor() Factor {
	return Factor{Linear: 1, Rotational: 1, Interval: 1}
}

// MoveOverride pins parts of the movement. Angle replaces the integrated
// heading.
type MoveOverride struct {
	Linear     Override `yaml:"linear" json:"linear"`
	Rotational Override `yaml:"rotational" json:"rotational"`
	Angle      *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
}

// State is everything a creature's movement carries between ticks.
type State struct {
	Linear     Axis    `json:"linear"`
	Rotational Axis    `json:"rotational"`
	Angle      float64 `json:"angle"` // heading in degrees
}

// Movement is the output of one tick. Rotational.Distance holds the new
// heading rather than the angle turned.
type Movement struct {
	Linear     Integral        `json:"linear"`
	Rotational Integral        `json:"rotational"`
	Delta      geom.Coordinate `json:"delta"`
}

// Step advances st by interval ms.
func Step(b Behavior, st State, interval float64, f Factor, o MoveOverride, r Rand) (State, Movement) {
	interval *= f.Interval

	var linear, rotational Integral
	st.Linear, linear = StepAxis(b.Linear, st.Linear, interval, f.Linear, o.Linear, r)
	st.Rotational, rotational = StepAxis(b.Rotational, st.Rotational, interval, f.Rotational, o.Rotational, r)

	if o.Angle != nil {
		st.Angle = *o.Angle
	} else {
		// less turning is possible at speed
		st.Angle += rotational.Distance * (1 - linear.Velocity/100)
	}
	rotational.Distance = st.Angle

	return st, Movement{
		Linear:     linear,
		Rotational: rotational,
		Delta:      geom.ToVector(st.Angle, linear.Distance),
	}
}

// Agent owns the movement state of one creature.
type Agent struct {
	behavior Behavior
	state    State
	rng      Rand
}

func NewAgent(b Behavior, rng Rand) *Agent {
	return &Agent{behavior: b, rng: rng}
}

func (a *Agent) Move(interval float64, f Factor, o MoveOverride) Movement {
	var m Movement
	a.state, m = Step(a.behavior, a.state, interval, f, o, a.rng)
	return m
}

func (a *Agent) State() State {
	return a.state
}

func (a *Agent) Behavior() Behavior {
	return a.behavior
}
