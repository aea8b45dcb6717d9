package wriggle

import "math"

const fullCycle = 2 * math.Pi

// Component is one running oscillator.
type Component struct {
	Offset             float64 // radians
	Acceleration       float64
	Suppression        Suppression
	ProgressPerElapsed float64 // radians per ms
	Range              float64

	Suppressed float64
	Progress   float64
	Magnitude  float64
}

// NewComponent converts a Spec into a component at rest.
func NewComponent(s Spec) Component {
	accel := DefaultAcceleration
	if s.Acceleration != nil {
		accel = *s.Acceleration
	}
	var sup Suppression
	if s.Suppression != nil {
		sup = *s.Suppression
	}
	var ppe float64
	if s.Period > 0 {
		ppe = fullCycle / (s.Period * 1000)
	}
	rng := s.Range
	if s.Synchronize {
		rng *= float64(s.Index)
	}
	return Component{
		Offset:             fullCycle*-float64(s.Index)*s.SquiggleRate + s.Offset,
		Acceleration:       accel,
		Suppression:        sup,
		ProgressPerElapsed: ppe,
		Range:              rng,
	}
}

// Sync advances the component by interval ms at the given speed.
func (c Component) Sync(interval, speed float64) Component {
	factor := 1 + c.Acceleration*speed/100
	c.Progress += interval * c.ProgressPerElapsed * factor
	raw := math.Sin(c.Offset+c.Progress) * c.Range
	out := Suppress(c.Suppression, raw, c.Suppressed, speed, interval)
	c.Magnitude = out.Magnitude
	c.Suppressed = out.Suppressed
	return c
}

// Phase is the current argument of the component's sine.
func (c Component) Phase() float64 {
	return c.Offset + c.Progress
}

// Wriggle is the composite oscillation of a segment. Components add.
type Wriggle []Component

func New(specs ...Spec) Wriggle {
	w := make(Wriggle, len(specs))
	for i, s := range specs {
		w[i] = NewComponent(s)
	}
	return w
}

// Sync advances every component in place.
func (w Wriggle) Sync(interval, speed float64) {
	for i := range w {
		w[i] = w[i].Sync(interval, speed)
	}
}

// Reset returns every component to its initial phase and clears suppression state.
func (w Wriggle) Reset() {
	for i := range w {
		w[i].Progress = 0
		w[i].Suppressed = 0
		w[i].Magnitude = 0
	}
}

func (w Wriggle) Compound() float64 {
	var sum float64
	for _, c := range w {
		sum += c.Magnitude
	}
	return sum
}

func (w Wriggle) Clone() Wriggle {
	if w == nil {
		return nil
	}
	out := make(Wriggle, len(w))
	copy(out, w)
	return out
}
