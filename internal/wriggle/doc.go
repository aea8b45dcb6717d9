// Package wriggle synthesizes the periodic angular oscillations applied to
// body segments on top of their base orientation.
//
// A segment's wriggle is a list of components, each built from a [Spec]:
//
//   - [CurlSpec]: no per-index phase offset, range compounds by index so a
//     chain curls into an arc
//   - [SquiggleSpec]: phase shifts by 2π/length per index, a travelling wave
//   - [RotationSpec]: the whole chain swings in lock-step
//
// Components are advanced by elapsed milliseconds and the creature's
// current speed (0-100). Speed raises frequency through the acceleration
// factor and reduces or biases amplitude through [Suppression], whose
// applied effect is itself rate limited per millisecond.
//
// # Example
//
//	w := wriggle.New(wriggle.SquiggleSpec(wave, i, 8))
//	w.Sync(50, speed)
//	angle := base + w.Compound()
package wriggle
