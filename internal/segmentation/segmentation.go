package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/wriggle"
)

// Wave periods in seconds.
const (
	PeriodRelaxed    = 3.5
	PeriodDeliberate = 2.75
	PeriodFrenetic   = 2.0
)

// Curve ranges in degrees.
const (
	CurveSquiggly = 20.0
	CurveMuscley  = 10.0
)

// Segmentation describes a chain of segments, each the child of the one
// before it.
type Segmentation struct {
	Count       int
	Radius      float64 // radius before the first taper is applied
	Taper       float64 // each segment's radius is the previous one's times Taper
	Angle       float64
	OverlapMult float64
	CurveRange  float64
	Curve       float64 // extra relative angle added per index
	Wriggle     wriggle.Generator
}

func NewSegmentation(count int, radius, angle float64) Segmentation {
	return Segmentation{
		Count:       count,
		Radius:      radius,
		Taper:       1,
		Angle:       angle,
		OverlapMult: 0.5,
		Wriggle:     wriggle.None,
	}
}

// FromSection sizes a chain from a section relative to its parent.
func FromSection(parent *segment.Segment, sec section.Section) Segmentation {
	return NewSegmentation(sec.Count, section.Radius(parent.Circle.Radius, sec), sec.Angle)
}

// Taper returns the per-segment factor that shrinks a chain of count
// segments to termination times its initial radius.
func Taper(termination float64, count int) float64 {
	return math.Pow(termination, 1/float64(max(1, count)))
}

// WithCurl adds a curl wave to every segment.
func (s Segmentation) WithCurl(wave wriggle.WaveSpec) Segmentation {
	s.Wriggle = wriggle.Mix(s.Wriggle, wriggle.CurlGenerator(wave))
	return s
}

// WithRotation adds a rotation wave to every segment.
func (s Segmentation) WithRotation(wave wriggle.WaveSpec) Segmentation {
	s.Wriggle = wriggle.Mix(s.Wriggle, wriggle.RotationGenerator(wave))
	return s
}

// WithSquiggle adds the squiggle gradient g to every segment.
func (s Segmentation) WithSquiggle(g wriggle.SquiggleGradient) Segmentation {
	s.Wriggle = wriggle.Mix(s.Wriggle, g.Generator())
	return s
}

// Gradient returns a flat squiggle gradient sized to the chain.
func (s Segmentation) Gradient(wave wriggle.WaveSpec) wriggle.SquiggleGradient {
	g := wriggle.NewSquiggleGradient(wave, s.Count)
	g.Angle = s.Angle
	return g
}

// Chain creates the segments and hangs them off parent one after another.
func (s Segmentation) Chain(parent *segment.Segment) []*segment.Segment {
	if s.Count <= 0 {
		return nil
	}
	gen := s.Wriggle
	if gen == nil {
		gen = wriggle.None
	}
	segments := make([]*segment.Segment, 0, s.Count)
	curr := parent
	radius := s.Radius
	for i := 0; i < s.Count; i++ {
		radius *= s.Taper
		next := segment.New(radius, s.Angle, s.OverlapMult)
		next.BodyAngle.CurveRange = s.CurveRange
		next.BodyAngle.Relative += float64(i) * s.Curve
		next.Wriggle = gen(i)
		curr.Append(next)
		curr = next
		segments = append(segments, next)
	}
	return segments
}

// Rotation chains s with a rotation wave.
func (s Segmentation) Rotation(parent *segment.Segment, wave wriggle.WaveSpec) []*segment.Segment {
	return s.WithRotation(wave).Chain(parent)
}

func direction(mirror bool) float64 {
	if mirror {
		return -1
	}
	return 1
}

func attach(parent *segment.Segment, s *segment.Segment) *segment.Segment {
	parent.Append(s)
	return s
}
