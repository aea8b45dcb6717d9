package palamander

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/movement"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/segmentation"
)

// Frame is the renderable state of a creature after a tick. Circles are
// in pre-order from the head and already scaled by the magnification.
type Frame struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Tick    int             `json:"tick"`
	Elapsed float64         `json:"elapsed"` // ms
	Heading float64         `json:"heading"` // degrees
	Speed   float64         `json:"speed"`   // linear velocity, 0-100
	Turn    float64         `json:"turn"`    // rotational velocity, -100-100
	Engine  geom.Coordinate `json:"engine"`
	Pivot   geom.Coordinate `json:"pivot"`
	Circles []geom.Circle   `json:"circles"`
}

type Palamander struct {
	id         string
	spec       Spec
	mod        Modifier
	head       *segment.Segment
	body       []*segment.Segment
	pivotIndex float64
	agent      *movement.Agent
	engine     geom.Circle

	tick     int
	elapsed  float64
	movement movement.Movement
}

// New compiles spec into a creature placed at the origin, facing the
// modifier's pinned angle if it has one.
func New(spec Spec, mod Modifier, compiler *segmentation.Compiler, behaviors *movement.Registry, rng movement.Rand) (*Palamander, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.UpdateInterval == 0 {
		spec.UpdateInterval = DefaultUpdateInterval
	}
	if spec.Magnification == 0 {
		spec.Magnification = 100
	}
	if mod.Magnification == 0 {
		mod.Magnification = 100
	}
	if mod.Factor == (movement.Factor{}) {
		mod.Factor = movement.DefaultFactor()
	}

	body := compiler.Compile(spec.SectionTree)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBody, spec.Type)
	}

	head := body[0]
	p := &Palamander{
		id:         uuid.NewString(),
		spec:       spec,
		mod:        mod,
		head:       head,
		body:       body,
		pivotIndex: PivotIndex(body),
		agent:      movement.NewAgent(behaviors.Resolve(spec.Behavior.Linear, spec.Behavior.Rotational), rng),
		engine:     geom.EngineCircle(head.Circle, geom.Origin()),
	}

	angle := 0.0
	if mod.Override.Move.Angle != nil {
		angle = *mod.Override.Move.Angle
	}
	segment.Hydrate(head, p.engine, angle, 0)
	return p, nil
}

func (p *Palamander) ID() string               { return p.id }
func (p *Palamander) Type() string             { return p.spec.Type }
func (p *Palamander) Spec() Spec               { return p.spec }
func (p *Palamander) Modifier() Modifier       { return p.mod }
func (p *Palamander) Head() *segment.Segment   { return p.head }
func (p *Palamander) Body() []*segment.Segment { return p.body }
func (p *Palamander) PivotIndex() float64      { return p.pivotIndex }

// UpdateInterval is the tick period in ms.
func (p *Palamander) UpdateInterval() float64 {
	if p.mod.UpdateInterval > 0 {
		return p.mod.UpdateInterval
	}
	return p.spec.UpdateInterval
}

// Scale is the factor applied to compiled geometry when rendering.
func (p *Palamander) Scale() float64 {
	return p.spec.Magnification / 100 * p.mod.Magnification / 100
}

// Tick advances the creature by interval ms. A frozen creature keeps its
// pose; only the tick counter and clock move.
func (p *Palamander) Tick(interval float64) (Frame, error) {
	if interval < 0 || math.IsNaN(interval) {
		return Frame{}, p.tickError(fmt.Errorf("%w: %f", ErrInvalidInterval, interval))
	}
	p.tick++
	p.elapsed += interval
	if p.mod.Override.Freeze {
		return p.Frame(), nil
	}

	m := p.agent.Move(interval, p.mod.Factor, p.mod.Override.Move)
	p.movement = m
	p.engine.Center = geom.Shift(p.engine.Center, m.Delta)

	heading := m.Rotational.Distance
	// Suppression and acceleration follow swimming speed, not turn rate.
	segment.Update(p.head, p.engine, heading, heading, interval*p.mod.Factor.Interval, m.Linear.Velocity)

	frame := p.Frame()
	for _, c := range frame.Circles {
		if !finite(c.Center.X()) || !finite(c.Center.Y()) || !finite(c.Radius) {
			return frame, p.tickError(ErrNonFinite)
		}
	}
	return frame, nil
}

// Frame renders the current state without advancing it.
func (p *Palamander) Frame() Frame {
	scale := p.Scale()
	circles := segment.CollectCircles(p.head)
	for i, c := range circles {
		circles[i] = geom.StretchCircle(c, scale)
	}
	return Frame{
		ID:      p.id,
		Type:    p.spec.Type,
		Tick:    p.tick,
		Elapsed: p.elapsed,
		Heading: p.agent.State().Angle,
		Speed:   p.movement.Linear.Velocity,
		Turn:    p.movement.Rotational.Velocity,
		Engine:  geom.Stretch(p.engine.Center, scale),
		Pivot:   geom.Stretch(PivotCoordinates(p.head, p.pivotIndex), scale),
		Circles: circles,
	}
}

func (p *Palamander) tickError(err error) error {
	return &TickError{Type: p.spec.Type, Tick: p.tick, Elapsed: p.elapsed, Wrapped: err}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
