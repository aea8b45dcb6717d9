package palamander

import (
	"context"
	"sync"
	"time"
)

// MinPeriod is the shortest wall-clock tick the animator runs at.
const MinPeriod = time.Millisecond

// Sink receives frames. Returning an error stops the animator.
type Sink func(Frame) error

// Animator ticks one creature on a wall-clock ticker.
type Animator struct {
	pal  *Palamander
	stop chan struct{}
	once sync.Once
	now  func() time.Time
}

func NewAnimator(p *Palamander) *Animator {
	return &Animator{pal: p, stop: make(chan struct{}), now: time.Now}
}

// Run emits the current frame, then ticks every update interval with the
// measured wall-clock time since the last tick until ctx is done or Stop
// is called. Ticks are never interrupted part way. A frozen creature emits
// its single frame and waits.
func (a *Animator) Run(ctx context.Context, sink Sink) error {
	if err := sink(a.pal.Frame()); err != nil {
		return err
	}

	if a.pal.mod.Override.Freeze {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stop:
			return nil
		}
	}

	period := max(time.Duration(a.pal.UpdateInterval()*float64(time.Millisecond)), MinPeriod)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	prev := a.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stop:
			return nil
		case <-ticker.C:
		}

		curr := a.now()
		interval := float64(curr.Sub(prev)) / float64(time.Millisecond)
		prev = curr

		frame, err := a.pal.Tick(interval)
		if err != nil {
			return err
		}
		if err := sink(frame); err != nil {
			return err
		}
	}
}

// Stop ends Run after any tick in progress. It is safe to call more than once.
func (a *Animator) Stop() {
	a.once.Do(func() { close(a.stop) })
}
