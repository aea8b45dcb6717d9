package movement

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"strings"
	"testing"
)

// fixed replays its values in order, wrapping around.
type fixed struct {
	values []float64
	i      int
}

func (f *fixed) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func ptr(v float64) *float64 { return &v }

func TestDraw(t *testing.T) {
	spec := SampleSpec{Range: Range{Min: 10, Max: 110, SkewMin: 2}, Zero: 0.15, Mirror: true}

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"zeroed", []float64{0.1}, 0},
		{"skewed to the smallest draw", []float64{0.9, 0.8, 0.3, 0.5, 0.7}, 40},
		{"mirrored", []float64{0.9, 0.8, 0.3, 0.5, 0.2}, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spec.Draw(&fixed{values: tt.values})
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDrawStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	spec := SampleSpec{Range: Range{Min: 200, Max: 5000, SkewMin: 3}}
	for i := 0; i < 1000; i++ {
		v := spec.Draw(rng)
		if v < 200 || v > 5000 {
			t.Fatalf("sample %f outside [200, 5000]", v)
		}
	}
}

func TestSampleNext(t *testing.T) {
	value := SampleSpec{Range: Range{Min: 30, Max: 30}}
	hold := SampleSpec{Range: Range{Min: 100, Max: 100}}
	rng := &fixed{values: []float64{0.5}}

	s := Sample{Countdown: 100, Value: 10}
	s, v := s.Next(50, value, hold, rng)
	if v != 10 || s.Countdown != 50 {
		t.Errorf("expected held value 10 with 50 left, got %f with %f", v, s.Countdown)
	}

	s = Sample{Countdown: 20, Value: 10}
	s, v = s.Next(50, value, hold, rng)
	if math.Abs(v-22) > 1e-9 {
		t.Errorf("expected weighted average 22, got %f", v)
	}
	if s.Value != 30 || s.Countdown != 70 {
		t.Errorf("expected new hold of 30 for 70ms, got %f for %f", s.Value, s.Countdown)
	}

	s, v = s.Next(0, value, hold, rng)
	if v != 30 || s.Countdown != 70 {
		t.Errorf("expected zero interval to be a no-op, got %f with %f", v, s.Countdown)
	}
}

func TestClipVelocity(t *testing.T) {
	limit := Limit{Accel: 50, Decel: 200}
	tests := []struct {
		name     string
		curr     float64
		prev     float64
		interval float64
		want     float64
	}{
		{"within limits", 12, 10, 100, 12},
		{"accelerating too fast", 100, 10, 100, 15},
		{"decelerating too fast", 0, 100, 100, 80},
		{"long interval allows more", 100, 10, 2000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClipVelocity(tt.curr, tt.prev, tt.interval, limit); got != tt.want {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestStepAxisRateLimited(t *testing.T) {
	spec := NewRegistry(nil).Speed.Lookup("erratic")
	rng := rand.New(rand.NewSource(42))
	const interval = 50.0

	var axis Axis
	prev := 0.0
	for tick := 0; tick < 2000; tick++ {
		var out Integral
		axis, out = StepAxis(spec, axis, interval, 1, Override{}, rng)
		change := out.Velocity - prev
		if change > spec.Limit.Accel*interval/1000+1e-9 {
			t.Fatalf("tick %d: accelerated by %f", tick, change)
		}
		if -change > spec.Limit.Decel*interval/1000+1e-9 {
			t.Fatalf("tick %d: decelerated by %f", tick, -change)
		}
		if out.Velocity < 0 || out.Velocity > 100 {
			t.Fatalf("tick %d: velocity %f outside [0, 100]", tick, out.Velocity)
		}
		prev = out.Velocity
	}
}

func TestStepAxisOverride(t *testing.T) {
	spec := VelocitySpec{Limit: Limit{Velocity: 2500, Accel: 50, Decel: 200}}
	axis := Axis{Sample: Sample{Countdown: 10, Value: 3}, Velocity: 3}

	next, out := StepAxis(spec, axis, 1000, 1, Override{Velocity: ptr(50)}, &fixed{values: []float64{0.5}})
	if out.Velocity != 50 || out.Distance != 1250 {
		t.Errorf("expected velocity 50 over 1250, got %f over %f", out.Velocity, out.Distance)
	}
	if next.Sample != axis.Sample {
		t.Error("expected sampler untouched when velocity is overridden")
	}

	_, out = StepAxis(spec, axis, 1000, 1, Override{Velocity: ptr(50), Distance: ptr(7)}, nil)
	if out.Distance != 7 {
		t.Errorf("expected distance override 7, got %f", out.Distance)
	}
}

func TestStep(t *testing.T) {
	b := Behavior{
		Linear:     VelocitySpec{Limit: Limit{Velocity: 1000}},
		Rotational: VelocitySpec{Limit: Limit{Velocity: 720}},
	}
	o := MoveOverride{
		Linear:     Override{Velocity: ptr(50)},
		Rotational: Override{Velocity: ptr(10)},
	}

	st, m := Step(b, State{Angle: 30}, 100, DefaultFactor(), o, nil)
	// 0.1s * 0.1 * 720 = 7.2 degrees, halved at half speed
	if math.Abs(st.Angle-33.6) > 1e-9 {
		t.Errorf("expected heading 33.6, got %f", st.Angle)
	}
	if m.Rotational.Distance != st.Angle {
		t.Errorf("expected rotational distance to carry the heading, got %f", m.Rotational.Distance)
	}
	if math.Abs(m.Linear.Distance-50) > 1e-9 {
		t.Errorf("expected linear distance 50, got %f", m.Linear.Distance)
	}
	if math.Abs(m.Delta.Len()-m.Linear.Distance) > 1e-9 {
		t.Errorf("expected delta of length %f, got %f", m.Linear.Distance, m.Delta.Len())
	}

	o.Angle = ptr(90)
	st, _ = Step(b, st, 100, DefaultFactor(), o, nil)
	if st.Angle != 90 {
		t.Errorf("expected angle override 90, got %f", st.Angle)
	}

	f := DefaultFactor()
	f.Interval = 0
	_, m = Step(b, st, 100, f, o, nil)
	if m.Linear.Distance != 0 {
		t.Errorf("expected no distance when time is frozen, got %f", m.Linear.Distance)
	}
}

func TestRegistryFallback(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(log.New(&buf, "", 0))

	got := reg.Speed.Lookup("sprinting")
	if got != reg.Speed.Lookup(Placeholder) {
		t.Error("expected unknown speed behavior to fall back to placeholder")
	}
	if !strings.Contains(buf.String(), `"sprinting"`) {
		t.Errorf("expected fallback to be logged, got %q", buf.String())
	}

	buf.Reset()
	reg.Resolve("flitting", "curious")
	if buf.Len() != 0 {
		t.Errorf("expected known behaviors to resolve quietly, got %q", buf.String())
	}
}

func TestRegistryReturnsFreshSpecs(t *testing.T) {
	reg := NewRegistry(nil)
	spec := reg.Speed.Lookup("cautious")
	spec.Velocity.Range.SkewMin = 99

	if reg.Speed.Lookup("cautious").Velocity.Range.SkewMin != 3 {
		t.Error("lookup shares state between callers")
	}
	if reg.Speed.Lookup("flitting").Velocity.Range.SkewMin != 2 {
		t.Error("behaviors share sample specs")
	}
}

func TestRegistryBehaviors(t *testing.T) {
	reg := NewRegistry(nil)
	tests := []struct {
		table    *Table
		name     string
		velocity float64
		zero     float64
	}{
		{reg.Speed, "floating", 500, 0},
		{reg.Speed, "predatory", 2500 / 1.5, 0.4},
		{reg.Speed, "erratic", 3750, 0.15},
		{reg.Rotation, "coiling", 540, 0.08},
		{reg.Rotation, "wary", 180, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.table.Has(tt.name) {
				t.Fatalf("missing behavior %s", tt.name)
			}
			spec := tt.table.Lookup(tt.name)
			if math.Abs(spec.Limit.Velocity-tt.velocity) > 1e-9 {
				t.Errorf("expected velocity %f, got %f", tt.velocity, spec.Limit.Velocity)
			}
			if spec.Velocity.Zero != tt.zero {
				t.Errorf("expected zero odds %f, got %f", tt.zero, spec.Velocity.Zero)
			}
		})
	}

	if n := len(reg.Speed.Names()); n != 9 {
		t.Errorf("expected 9 speed behaviors, got %d", n)
	}
	if n := len(reg.Rotation.Names()); n != 6 {
		t.Errorf("expected 6 rotation behaviors, got %d", n)
	}
}

func TestAgentDeterministic(t *testing.T) {
	b := NewRegistry(nil).Resolve("flitting", "twirling")
	a1 := NewAgent(b, rand.New(rand.NewSource(3)))
	a2 := NewAgent(b, rand.New(rand.NewSource(3)))

	for tick := 0; tick < 500; tick++ {
		m1 := a1.Move(50, DefaultFactor(), MoveOverride{})
		m2 := a2.Move(50, DefaultFactor(), MoveOverride{})
		if m1 != m2 {
			t.Fatalf("tick %d: %+v != %+v", tick, m1, m2)
		}
	}
	if a1.State() != a2.State() {
		t.Error("expected identical state")
	}
}

func BenchmarkStep(b *testing.B) {
	beh := NewRegistry(nil).Resolve("flitting", "twirling")
	rng := rand.New(rand.NewSource(1))
	var st State

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, _ = Step(beh, st, 50, DefaultFactor(), MoveOverride{}, rng)
	}
}
