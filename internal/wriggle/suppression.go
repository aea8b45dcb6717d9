package wriggle

import "math"

// DefaultTuckFactor tucks halfway toward the target at full speed.
const DefaultTuckFactor = 0.5

// Suppression reduces or biases a wave as speed increases.
// Zero Dampen and zero Tuck disable the respective effect.
type Suppression struct {
	Dampen float64 // fraction of magnitude removed at full speed
	Tuck   float64 // degrees added at full speed
	Delta  float64 // max change of the applied offset, degrees per ms
}

// Suppressed is the outcome of one suppression step.
type Suppressed struct {
	Magnitude  float64 // angle actually rendered
	Suppressed float64 // offset removed from the raw angle, carried to the next tick
}

// Suppress applies dampen then tuck to angle, and rate limits the resulting
// offset against prev by interval*Delta.
func Suppress(s Suppression, angle, prev, speed, interval float64) Suppressed {
	dampened := angle
	if s.Dampen != 0 {
		dampened = angle * (1 - speed/100*s.Dampen)
	}
	tucked := dampened
	if s.Tuck != 0 {
		tucked = dampened + s.Tuck*speed/100
	}

	limit := interval * s.Delta
	suppressed := math.Max(math.Min(angle-tucked, prev+limit), prev-limit)
	return Suppressed{
		Magnitude:  angle - suppressed,
		Suppressed: suppressed,
	}
}

// CalculateDelta is the average angular velocity of a sine wave with the
// given range and period, in degrees per ms.
func CalculateDelta(rng, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 4 * math.Abs(rng) / period / 1000
}

// DefaultSuppression only rate limits; it neither dampens nor tucks.
func DefaultSuppression(rng, period float64) Suppression {
	return Suppression{Delta: CalculateDelta(rng, period)}
}

// CalculateTuck returns the tuck that moves angle toward target by factor
// at full speed.
func CalculateTuck(angle, target, factor float64) float64 {
	return (target - angle) * factor
}

// DampenRange bounds a dampen gradient from the front of a chain to its back.
type DampenRange struct {
	Front float64
	Back  float64
}

// CalculateDampen linearly interpolates the dampen factor for index i.
func CalculateDampen(i, count int, r DampenRange) float64 {
	return r.Front + (r.Back-r.Front)*fraction(i, count)
}

func fraction(i, count int) float64 {
	return float64(i) / float64(max(1, count-1))
}
