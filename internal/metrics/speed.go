package metrics

import (
	"math"

	"github.com/san-kum/palamander/internal/palamander"
)

// Speed is the mean linear velocity.
type Speed struct {
	name    string
	sum     float64
	samples int
}

func NewSpeed() *Speed {
	return &Speed{name: "mean_speed"}
}

func (s *Speed) Name() string {
	return s.name
}

func (s *Speed) Observe(f palamander.Frame) {
	s.sum += f.Speed
	s.samples++
}

func (s *Speed) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Speed) Reset() {
	s.sum = 0
	s.samples = 0
}

// Turning is the mean absolute rotational velocity.
type Turning struct {
	name    string
	sum     float64
	samples int
}

func NewTurning() *Turning {
	return &Turning{name: "mean_turn"}
}

func (t *Turning) Name() string {
	return t.name
}

func (t *Turning) Observe(f palamander.Frame) {
	t.sum += math.Abs(f.Turn)
	t.samples++
}

func (t *Turning) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *Turning) Reset() {
	t.sum = 0
	t.samples = 0
}
