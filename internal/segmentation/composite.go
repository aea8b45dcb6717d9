package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
)

// Composites produce no segments. They rewrite their Next section into
// one or more branches attached directly to the parent.

func buildPassthru(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return nil, sec
}

// buildPair attaches Next twice, the second copy reflected across the
// parent's relative angle. Mirror shifts the second copy's phase by half
// a cycle so the pair alternates.
func buildPair(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	if sec.Next == nil {
		return nil, sec
	}
	next := sec.Next.Passthru()
	sec.Next = nil

	rel := parent.BodyAngle.Relative
	flipped := next.Clone()
	flipped.Angle = rel - (next.Angle - rel)
	flipped.Mirror = !next.Mirror
	if sec.Mirror {
		flipped.Offset = next.Offset - math.Pi
	}
	return nil, sec.WithBranches(next, flipped)
}

// buildEqual fans Count copies of Next evenly across Angle degrees,
// centered on Next's own angle. Without Mirror each copy gets a distinct
// phase; with Mirror they share the section's offset.
func buildEqual(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	if sec.Next == nil {
		return nil, sec
	}
	next := sec.Next.Passthru()
	sec.Next = nil
	if sec.Count <= 1 {
		return nil, sec.Follow(next)
	}

	stagger := !sec.Mirror
	between := sec.Angle / float64(sec.Count-1)
	branches := make([]section.Section, sec.Count)
	for i := range branches {
		b := next.Clone()
		b.Angle = next.Angle - sec.Angle/2 + float64(i)*between
		if stagger {
			b.Offset = next.Offset + float64(29*i%17)
		} else {
			b.Offset = sec.Offset
		}
		branches[i] = b
	}
	return nil, sec.WithBranches(branches...)
}

// buildRadial spaces Count copies of Next around the full circle.
func buildRadial(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	if sec.Next == nil {
		return nil, sec
	}
	next := sec.Next.Passthru()
	sec.Next = nil
	if sec.Count <= 1 {
		return nil, sec.Follow(next)
	}

	equal := sec.Branch(Equal.String())
	equal.Angle = 360 - 360/float64(sec.Count)
	return nil, sec.Follow(equal.Follow(next))
}
