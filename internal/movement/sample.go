// Package movement simulates randomized, rate-limited locomotion.
//
// Each creature moves along two axes: linear (speed, 0 to 100) and
// rotational (turn, -100 to 100). On each axis a held-value sampler draws
// a target velocity and keeps it for a randomly drawn interval; the
// velocity then chases that target within acceleration limits. Turning
// integrates into a heading, and less turning is possible at speed.
//
// All state is explicit. Step and StepAxis are pure functions of their
// inputs and a random source, so a seeded source reproduces a run exactly.
package movement

// Rand is the random source movement draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Range bounds a sample. SkewMin draws that many extra uniforms and keeps
// the smallest, biasing samples toward Min.
type Range struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	SkewMin int     `yaml:"skew_min" json:"skew_min"`
}

type SampleSpec struct {
	Range  Range   `yaml:"range" json:"range"`
	Zero   float64 `yaml:"zero" json:"zero"`     // probability the sample is exactly zero
	Mirror bool    `yaml:"mirror" json:"mirror"` // flip the sign with probability 1/2
}

// Draw samples once from spec.
func (s SampleSpec) Draw(r Rand) float64 {
	if r.Float64() < s.Zero {
		return 0
	}
	u := r.Float64()
	for i := 0; i < s.Range.SkewMin; i++ {
		u = min(u, r.Float64())
	}
	v := s.Range.Min + (s.Range.Max-s.Range.Min)*u
	if s.Mirror && r.Float64() < 0.5 {
		v = -v
	}
	return v
}

// Sample is the state of a held-value sampler.
type Sample struct {
	Countdown float64 `json:"countdown"` // ms the current value is still held for
	Value     float64 `json:"value"`
}

// Next advances the sampler by interval ms. While the held value lasts it
// is returned unchanged. When the interval crosses the end of the hold, a
// new value is drawn from value and held for a duration drawn from hold,
// and the result is the time-weighted average of the outgoing and incoming
// values over the interval. The average is an approximation; a hold
// shorter than the rest of the interval is not resampled again within the
// same tick.
func (s Sample) Next(interval float64, value, hold SampleSpec, r Rand) (Sample, float64) {
	if interval <= 0 {
		return s, s.Value
	}
	if interval <= s.Countdown {
		s.Countdown -= interval
		return s, s.Value
	}

	outgoing := s.Value * s.Countdown / interval
	remaining := interval - s.Countdown
	s.Value = value.Draw(r)
	incoming := s.Value * remaining / interval
	s.Countdown = max(0, hold.Draw(r)-remaining)
	return s, outgoing + incoming
}
