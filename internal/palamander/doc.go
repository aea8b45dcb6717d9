// Package palamander animates creatures built from body plans.
//
// The package ties the other pieces together:
//
//   - [Spec]: what to build (body plan, behaviors, magnification, tick rate)
//   - [Modifier]: presentation tweaks such as freezing or pinning the heading
//   - [Palamander]: a compiled creature; [Palamander.Tick] advances it one step
//   - [Animator]: drives one creature on a wall-clock ticker
//   - [Tank]: steps several creatures in parallel
//
// Each tick the creature's movement agent produces a heading and a
// displacement. The displacement moves the engine circle, a zero-size
// anchor just ahead of the head, and the segment tree is then updated
// from that anchor with the heading as both the current and previous
// parent angle. The root has no separate previous angle; it tracks the
// heading directly.
//
// # Example
//
//	reg, _ := segmentation.NewRegistry(logger)
//	compiler := segmentation.NewCompiler(reg, logger)
//	pal, err := palamander.New(spec, palamander.Noop(), compiler,
//		movement.NewRegistry(logger), rand.New(rand.NewSource(1)))
//	if err != nil {
//		return err
//	}
//	frame, err := pal.Tick(50)
//
// # Thread Safety
//
// A Palamander is NOT thread-safe, but creatures share no state, so
// different creatures may be ticked concurrently. [Tank] does exactly
// that. An [Animator] owns its creature while running.
package palamander
