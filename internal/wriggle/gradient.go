package wriggle

// Generator produces the wriggle for the segment at index i of a chain.
type Generator func(i int) Wriggle

// None is a Generator for chains that do not wriggle.
func None(int) Wriggle { return nil }

// SuppressionGradient varies suppression along a chain.
type SuppressionGradient struct {
	Range      *DampenRange // dampen from front to back; nil leaves dampen unset
	TuckTarget *float64     // nil leaves tuck unset
	TuckFactor *float64     // nil means DefaultTuckFactor
}

// SquiggleGradient describes a squiggling chain whose range grows (or
// shrinks) from front to back.
type SquiggleGradient struct {
	Wave        WaveSpec
	Count       int
	Length      float64 // squiggle length, see SquiggleSpec
	Angle       float64 // base angle of the chain, used for tucking
	EaseFactor  float64 // scales the range of index 0 only
	Increase    float64 // range difference between last and first index
	Suppression *SuppressionGradient
}

// NewSquiggleGradient returns a flat gradient over count segments with a
// standing-wave length and no easing.
func NewSquiggleGradient(wave WaveSpec, count int) SquiggleGradient {
	return SquiggleGradient{
		Wave:       wave,
		Count:      count,
		Length:     float64(count),
		EaseFactor: 1,
	}
}

// RangeAt interpolates the range centered on Wave.Range.
func (g SquiggleGradient) RangeAt(i int) float64 {
	r := g.Wave.Range - g.Increase/2 + fraction(i, g.Count)*g.Increase
	if i == 0 {
		r *= g.EaseFactor
	}
	return r
}

// SuppressionAt builds the suppression of index i for a wave of the given
// range. An explicit Wave.Suppression is the starting point; otherwise the
// default rate limit for that range is used.
func (g SquiggleGradient) SuppressionAt(i int, rng float64) Suppression {
	sup := DefaultSuppression(rng, g.Wave.Period)
	if g.Wave.Suppression != nil {
		sup = *g.Wave.Suppression
	}
	sg := g.Suppression
	if sg == nil {
		return sup
	}
	if sg.Range != nil {
		sup.Dampen = CalculateDampen(i, g.Count, *sg.Range)
	}
	if sg.TuckTarget != nil {
		factor := DefaultTuckFactor
		if sg.TuckFactor != nil {
			factor = *sg.TuckFactor
		}
		sup.Tuck = CalculateTuck(g.Angle, *sg.TuckTarget, factor)
	}
	return sup
}

// SpecAt returns the squiggle spec for index i.
func (g SquiggleGradient) SpecAt(i int) Spec {
	wave := g.Wave
	wave.Range = g.RangeAt(i)
	if g.Suppression != nil {
		sup := g.SuppressionAt(i, wave.Range)
		wave.Suppression = &sup
	}
	return SquiggleSpec(wave, i, g.Length)
}

func (g SquiggleGradient) Generator() Generator {
	return func(i int) Wriggle {
		return New(g.SpecAt(i))
	}
}

// Mix combines generators so each index gets all of their components.
func Mix(gens ...Generator) Generator {
	return func(i int) Wriggle {
		var w Wriggle
		for _, g := range gens {
			if g != nil {
				w = append(w, g(i)...)
			}
		}
		return w
	}
}

func CurlGenerator(wave WaveSpec) Generator {
	return func(i int) Wriggle {
		return New(CurlSpec(wave, i))
	}
}

func RotationGenerator(wave WaveSpec) Generator {
	return func(int) Wriggle {
		return New(RotationSpec(wave))
	}
}

func SquiggleGenerator(wave WaveSpec, length float64) Generator {
	return func(i int) Wriggle {
		return New(SquiggleSpec(wave, i, length))
	}
}
