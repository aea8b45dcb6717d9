// Package segment implements the kinematics of a creature's segment tree.
//
// Each Segment exclusively owns its children. Updates are pre-order: a
// child is always visited with its parent's already updated circle and
// angle, which is what makes a turn travel down the body over several
// ticks instead of snapping.
package segment

import (
	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/wriggle"
)

// DefaultPropagationInterval is the time in ms a segment takes to assume
// its parent's previous orientation.
const DefaultPropagationInterval = 100.0

// BodyAngle is the orientation state of a segment, in degrees.
type BodyAngle struct {
	// Absolute is the world orientation of the body at this segment. It
	// trails the parent's absolute angle as turns propagate.
	Absolute float64
	// Relative is the fixed design angle off the body axis (0 for a spine, 90 for a leg).
	Relative float64
	// CurveRange bounds |Absolute - parent.Absolute|.
	CurveRange float64
}

type Segment struct {
	Circle              geom.Circle
	BodyAngle           BodyAngle
	Wriggle             wriggle.Wriggle
	Overlap             float64
	PropagationInterval float64
	// Primary marks main body segments, as opposed to limbs and decoration.
	Primary  bool
	Children []*Segment
}

// NewDefault returns a rigid segment at the origin.
func NewDefault(radius float64) *Segment {
	return &Segment{
		Circle:              geom.Circle{Radius: radius},
		PropagationInterval: DefaultPropagationInterval,
	}
}

// New returns a segment at the given relative angle that overlaps its
// parent by radius*overlapMult.
func New(radius, angle, overlapMult float64) *Segment {
	s := NewDefault(radius)
	s.BodyAngle.Relative = angle
	s.Overlap = radius * overlapMult
	return s
}

func (s *Segment) Append(children ...*Segment) {
	s.Children = append(s.Children, children...)
}

// RenderAngle is the angle the segment is placed at relative to its parent.
func (s *Segment) RenderAngle() float64 {
	return s.BodyAngle.Absolute + s.BodyAngle.Relative + s.Wriggle.Compound()
}

// Clone deep copies the subtree rooted at s.
func (s *Segment) Clone() *Segment {
	if s == nil {
		return nil
	}
	c := *s
	c.Wriggle = s.Wriggle.Clone()
	c.Children = make([]*Segment, len(s.Children))
	for i, child := range s.Children {
		c.Children[i] = child.Clone()
	}
	return &c
}
