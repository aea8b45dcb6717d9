package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coordinate is a 2D point in creature space. X grows right, Y grows down.
type Coordinate = mgl64.Vec2

// Circle is the renderable shape of a single segment.
type Circle struct {
	Radius float64    `json:"radius"`
	Center Coordinate `json:"center"`
}

func Origin() Coordinate {
	return Coordinate{0, 0}
}

func Shift(c, delta Coordinate) Coordinate {
	return c.Add(delta)
}

func ShiftNegative(c, delta Coordinate) Coordinate {
	return c.Sub(delta)
}

func Stretch(c Coordinate, factor float64) Coordinate {
	return c.Mul(factor)
}

func StretchByElement(c, factor Coordinate) Coordinate {
	return Coordinate{c[0] * factor[0], c[1] * factor[1]}
}

// Round rounds both axes to three decimal places.
func Round(c Coordinate) Coordinate {
	return Coordinate{
		math.Round(c[0]*1000) / 1000,
		math.Round(c[1]*1000) / 1000,
	}
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToAngleVector returns the unit vector for a heading in degrees.
// Angle 0 points up (negative y) and angles increase clockwise.
func ToAngleVector(angle float64) Coordinate {
	rad := Radians(angle)
	return Coordinate{-math.Sin(rad), -math.Cos(rad)}
}

// ToVector converts a heading and distance into a displacement.
func ToVector(angle, dist float64) Coordinate {
	return ToAngleVector(angle).Mul(dist)
}

// CalculateCenter returns the center of circle when placed against root at
// the given angle, with the two circles overlapping by overlap. The
// placement direction is the reverse of ToVector, so a chain of segments
// trails behind the heading it shares with its parent.
func CalculateCenter(circle, root Circle, overlap, angle float64) Coordinate {
	rad := Radians(angle)
	dist := circle.Radius + root.Radius - overlap
	return Coordinate{
		root.Center[0] + math.Sin(rad)*dist,
		root.Center[1] + math.Cos(rad)*dist,
	}
}

// EngineCircle returns the phantom anchor circle that leads a creature's
// head. Its negative radius cancels the head radius in CalculateCenter, so
// the head sits directly on the anchor.
func EngineCircle(head Circle, origin Coordinate) Circle {
	return Circle{Radius: -head.Radius, Center: origin}
}

func StretchCircle(c Circle, factor float64) Circle {
	return Circle{Radius: c.Radius * factor, Center: c.Center.Mul(factor)}
}

func ShiftCircle(c Circle, delta Coordinate) Circle {
	return Circle{Radius: c.Radius, Center: c.Center.Add(delta)}
}
