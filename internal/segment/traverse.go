package segment

import (
	"iter"
	"slices"

	"github.com/san-kum/palamander/internal/geom"
)

// Circles yields the circles of the tree in pre-order. The sequence reads
// the tree as it is when iterated and may be ranged over any number of times.
func Circles(s *Segment) iter.Seq[geom.Circle] {
	return func(yield func(geom.Circle) bool) {
		Walk(s, func(seg *Segment) bool {
			return yield(seg.Circle)
		})
	}
}

func CollectCircles(s *Segment) []geom.Circle {
	return slices.Collect(Circles(s))
}

// Walk visits the tree in pre-order until fn returns false. It reports
// whether the walk ran to completion.
func Walk(s *Segment, fn func(*Segment) bool) bool {
	if s == nil {
		return true
	}
	if !fn(s) {
		return false
	}
	for _, child := range s.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

func Count(s *Segment) int {
	n := 0
	Walk(s, func(*Segment) bool {
		n++
		return true
	})
	return n
}

// BodySegments returns the primary segments reachable from head through
// primary segments only, in pre-order.
func BodySegments(head *Segment) []*Segment {
	if head == nil || !head.Primary {
		return nil
	}
	body := []*Segment{head}
	for _, child := range head.Children {
		body = append(body, BodySegments(child)...)
	}
	return body
}
