// Package experiment runs creatures headlessly on a virtual clock, so a
// run with the same seed always produces the same trace.
package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/palamander/internal/metrics"
	"github.com/san-kum/palamander/internal/palamander"
)

type Config struct {
	Spec     palamander.Spec
	Modifier palamander.Modifier
	Seed     int64
	Duration float64 // seconds
	// Interval is the virtual tick in ms; 0 uses the creature's update interval.
	Interval float64
	// KeepFrames records every frame in the trace, not just samples.
	KeepFrames bool
}

// Sample is the per-tick summary of a run.
type Sample struct {
	Tick    int     `json:"tick"`
	Time    float64 `json:"time"` // ms
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
	Speed   float64 `json:"speed"`
	Turn    float64 `json:"turn"`
	// Bend is the tail's render angle less the head's.
	Bend float64 `json:"bend"`
}

type Trace struct {
	ID       string             `json:"id"`
	Type     string             `json:"type"`
	Seed     int64              `json:"seed"`
	Interval float64            `json:"interval"`
	Samples  []Sample           `json:"samples"`
	Frames   []palamander.Frame `json:"frames,omitempty"`
	Final    palamander.Frame   `json:"final"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Observer sees every frame of a run, including the initial one.
type Observer interface {
	OnFrame(f palamander.Frame)
}

type ObserverFunc func(f palamander.Frame)

func (fn ObserverFunc) OnFrame(f palamander.Frame) { fn(f) }

type Experiment struct {
	cfg       Config
	registry  *Registry
	metrics   []metrics.Metric
	observers []Observer
}

func New(cfg Config, registry *Registry) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: registry,
		metrics:  metrics.Defaults(),
	}
}

func (e *Experiment) AddMetric(m metrics.Metric) { e.metrics = append(e.metrics, m) }
func (e *Experiment) AddObserver(o Observer)     { e.observers = append(e.observers, o) }

func (e *Experiment) Run(ctx context.Context) (*Trace, error) {
	if e.cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", e.cfg.Duration)
	}
	if e.cfg.Interval < 0 {
		return nil, fmt.Errorf("%w: %f", palamander.ErrInvalidInterval, e.cfg.Interval)
	}

	pal, err := e.registry.NewPalamander(e.cfg.Spec, e.cfg.Modifier, e.cfg.Seed)
	if err != nil {
		return nil, err
	}

	interval := e.cfg.Interval
	if interval == 0 {
		interval = pal.UpdateInterval()
	}
	steps := int(e.cfg.Duration * 1000 / interval)

	trace := &Trace{
		ID:       pal.ID(),
		Type:     pal.Type(),
		Seed:     e.cfg.Seed,
		Interval: interval,
		Samples:  make([]Sample, 0, steps+1),
		Metrics:  make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	e.record(trace, pal, pal.Frame())
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			e.finish(trace)
			return trace, ctx.Err()
		default:
		}

		frame, err := pal.Tick(interval)
		if err != nil {
			e.finish(trace)
			return trace, err
		}
		e.record(trace, pal, frame)
	}

	e.finish(trace)
	return trace, nil
}

func (e *Experiment) record(trace *Trace, pal *palamander.Palamander, f palamander.Frame) {
	body := pal.Body()
	bend := body[len(body)-1].RenderAngle() - body[0].RenderAngle()

	trace.Samples = append(trace.Samples, Sample{
		Tick:    f.Tick,
		Time:    f.Elapsed,
		X:       f.Engine.X(),
		Y:       f.Engine.Y(),
		Heading: f.Heading,
		Speed:   f.Speed,
		Turn:    f.Turn,
		Bend:    bend,
	})
	if e.cfg.KeepFrames {
		trace.Frames = append(trace.Frames, f)
	}
	trace.Final = f

	for _, m := range e.metrics {
		m.Observe(f)
	}
	for _, obs := range e.observers {
		obs.OnFrame(f)
	}
}

func (e *Experiment) finish(trace *Trace) {
	for _, m := range e.metrics {
		trace.Metrics[m.Name()] = m.Value()
	}
}

// Ensemble runs the same creature under consecutive seeds in parallel.
type Ensemble struct {
	cfg       Config
	registry  *Registry
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, registry *Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, registry: registry, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Trace, error) {
	traces := make([]*Trace, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := e.cfg
			cfgCopy.Seed = e.seedStart + int64(idx)
			traces[idx], errs[idx] = New(cfgCopy, e.registry).Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return traces, nil
}
