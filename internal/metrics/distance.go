// Package metrics accumulates summary values over the frames of a run.
package metrics

import "github.com/san-kum/palamander/internal/palamander"

// Metric observes frames one at a time.
type Metric interface {
	Name() string
	Observe(f palamander.Frame)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []Metric {
	return []Metric{
		NewDistance(),
		NewSpeed(),
		NewTurning(),
		NewContainment(DefaultContainmentRadius),
	}
}

// Distance is the path length travelled by the engine.
type Distance struct {
	name  string
	total float64
	last  palamander.Frame
	seen  bool
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(f palamander.Frame) {
	if d.seen {
		d.total += f.Engine.Sub(d.last.Engine).Len()
	}
	d.last = f
	d.seen = true
}

func (d *Distance) Value() float64 {
	return d.total
}

func (d *Distance) Reset() {
	d.total = 0
	d.seen = false
}
