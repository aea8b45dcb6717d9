package metrics

import "github.com/san-kum/palamander/internal/palamander"

// DefaultContainmentRadius is in unscaled body units.
const DefaultContainmentRadius = 5000.0

// Containment is the fraction of frames whose engine lies within radius of
// the origin.
type Containment struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewContainment(radius float64) *Containment {
	return &Containment{
		name:   "containment",
		radius: radius,
	}
}

// Named renames the metric so it can run next to the default one.
func (c *Containment) Named(name string) *Containment {
	c.name = name
	return c
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f palamander.Frame) {
	c.samples++
	if f.Engine.Len() > c.radius {
		c.violations++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
