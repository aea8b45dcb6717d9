package palamander

import (
	"context"
	"errors"
	"time"
)

// Tank holds several creatures that tick together.
type Tank struct {
	pals []*Palamander
}

func NewTank(pals ...*Palamander) *Tank {
	return &Tank{pals: pals}
}

func (t *Tank) Add(p *Palamander) {
	t.pals = append(t.pals, p)
}

func (t *Tank) Len() int {
	return len(t.pals)
}

func (t *Tank) Pals() []*Palamander {
	return t.pals
}

// Tick advances every creature by interval ms in parallel. Frames are in
// the order the creatures were added. All creatures tick even when some
// fail; the returned error joins their failures.
func (t *Tank) Tick(interval float64) ([]Frame, error) {
	frames := make([]Frame, len(t.pals))
	errs := make([]error, len(t.pals))
	ParallelFor(len(t.pals), 1, func(start, end int) {
		for i := start; i < end; i++ {
			frames[i], errs[i] = t.pals[i].Tick(interval)
		}
	})
	return frames, errors.Join(errs...)
}

// Frames renders every creature without advancing.
func (t *Tank) Frames() []Frame {
	frames := make([]Frame, len(t.pals))
	for i, p := range t.pals {
		frames[i] = p.Frame()
	}
	return frames
}

// Run ticks the tank every period until ctx is done, passing each round of
// frames to sink.
func (t *Tank) Run(ctx context.Context, period time.Duration, sink func([]Frame) error) error {
	if period <= 0 {
		return ErrInvalidInterval
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	prev := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			interval := float64(now.Sub(prev)) / float64(time.Millisecond)
			prev = now
			frames, err := t.Tick(interval)
			if err != nil {
				return err
			}
			if err := sink(frames); err != nil {
				return err
			}
		}
	}
}
