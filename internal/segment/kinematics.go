package segment

import "github.com/san-kum/palamander/internal/geom"

// CalculateAbsolute blends a segment's previous absolute angle toward its
// parent. stepMagnitude is the fraction of the propagation interval that
// elapsed this tick. Below 1 the segment moves part of the way to where the
// parent was; at or above 1 it lands between where the parent was and where
// it is now.
func CalculateAbsolute(stepMagnitude, ownPrev, parentPrev, parent float64) float64 {
	if stepMagnitude < 1 {
		return stepMagnitude*parentPrev + (1-stepMagnitude)*ownPrev
	}
	return (parentPrev + (stepMagnitude-1)*parent) / stepMagnitude
}

// Clip keeps absolute within curveRange of parent.
func Clip(curveRange, absolute, parent float64) float64 {
	if parent-absolute > curveRange {
		return parent - curveRange
	}
	if absolute-parent > curveRange {
		return parent + curveRange
	}
	return absolute
}

// Hydrate places a freshly built tree. Every segment takes the given
// absolute angle and its wriggle is evaluated elapsed ms from rest at zero
// speed.
func Hydrate(s *Segment, parent geom.Circle, parentAbsolute, elapsed float64) {
	s.Wriggle.Reset()
	s.Wriggle.Sync(elapsed, 0)
	s.BodyAngle.Absolute = parentAbsolute
	s.Circle.Center = geom.CalculateCenter(s.Circle, parent, s.Overlap, s.RenderAngle())
	for _, child := range s.Children {
		Hydrate(child, s.Circle, parentAbsolute, elapsed)
	}
}

// Update advances the subtree rooted at s by interval ms. parentAbsolute and
// parentAbsolutePrev are the parent's absolute angle after and before its
// own update this tick; speed is the creature's linear speed (0-100).
func Update(s *Segment, parent geom.Circle, parentAbsolute, parentAbsolutePrev, interval, speed float64) {
	prev := s.BodyAngle.Absolute

	var absolute float64
	if s.PropagationInterval > 0 {
		step := interval / s.PropagationInterval
		absolute = CalculateAbsolute(step, prev, parentAbsolutePrev, parentAbsolute)
	} else {
		absolute = parentAbsolute
	}
	s.BodyAngle.Absolute = Clip(s.BodyAngle.CurveRange, absolute, parentAbsolute)

	s.Wriggle.Sync(interval, speed)
	s.Circle.Center = geom.CalculateCenter(s.Circle, parent, s.Overlap, s.RenderAngle())

	for _, child := range s.Children {
		Update(child, s.Circle, s.BodyAngle.Absolute, prev, interval, speed)
	}
}
