package palamander

import (
	"math"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/segment"
)

// PivotIndex returns the fractional body index at which half the body's
// mass lies on either side, taking a segment's mass as r^1.5.
func PivotIndex(body []*segment.Segment) float64 {
	masses := make([]float64, len(body))
	total := 0.0
	for i, s := range body {
		masses[i] = math.Pow(s.Circle.Radius, 1.5)
		total += masses[i]
	}

	left := total * 0.5
	for i, m := range masses {
		if left < m {
			return float64(i) + left/m
		}
		left -= m
	}
	return 0
}

// FractionalCoordinates locates a fractional index along the body. The
// integer part picks the segment; the fraction moves along its length,
// which is its diameter less its overlap.
func FractionalCoordinates(body []*segment.Segment, index float64) geom.Coordinate {
	i := min(max(int(index), 0), len(body)-1)
	s := body[i]
	length := 2*s.Circle.Radius - s.Overlap
	centerToEdge := s.Circle.Radius - s.Overlap
	_, frac := math.Modf(index)
	delta := frac*length - centerToEdge
	return s.Circle.Center.Add(geom.ToAngleVector(s.BodyAngle.Absolute).Mul(delta))
}

// PivotCoordinates projects the mass midpoint onto the line through the
// head along the pivot segment's orientation.
func PivotCoordinates(head *segment.Segment, index float64) geom.Coordinate {
	body := segment.BodySegments(head)
	if len(body) == 0 {
		return head.Circle.Center
	}
	center := FractionalCoordinates(body, index)
	angle := -body[min(max(int(index), 0), len(body)-1)].BodyAngle.Absolute
	return tangent(center, head.Circle.Center, angle)
}

func tangent(a, b geom.Coordinate, angle float64) geom.Coordinate {
	ap := changeBasis(a, angle)
	bp := changeBasis(b, angle)
	return changeBasis(geom.Coordinate{bp.X(), ap.Y()}, -angle)
}

func changeBasis(c geom.Coordinate, angle float64) geom.Coordinate {
	sin, cos := math.Sincos(geom.Radians(angle))
	return geom.Coordinate{
		c.X()*cos + c.Y()*sin,
		-c.X()*sin + c.Y()*cos,
	}
}
