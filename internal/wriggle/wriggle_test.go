package wriggle

import (
	"math"
	"testing"
)

const period = 1000.0 // ms

func basicComponent() Component {
	return Component{
		ProgressPerElapsed: 2 * math.Pi / period,
		Range:              30,
	}
}

func TestComponentPeriodicity(t *testing.T) {
	start := math.Pi / 2
	c := basicComponent()

	first := c.Sync(start, 0).Magnitude
	full := c.Sync(start+period, 0).Magnitude
	half := c.Sync(start+period/2, 0).Magnitude

	if math.Abs(first-full) > 1e-9 {
		t.Errorf("expected magnitude to repeat after a period: %f vs %f", first, full)
	}
	if math.Abs(first+half) > 1e-9 {
		t.Errorf("expected magnitude to reverse after half a period: %f vs %f", first, half)
	}
}

func TestComponentAcceleration(t *testing.T) {
	interval := math.Pi / 2
	base := basicComponent()
	noAccel := base.Sync(interval, 100).Progress

	tests := []struct {
		name  string
		accel float64
		speed float64
		want  float64
	}{
		{"doubles at full speed", 1, 100, 2 * noAccel},
		{"no effect at zero speed", 1, 0, noAccel},
		{"negative stalls at full speed", -1, 100, 0},
		{"large value at zero speed", 20, 0, noAccel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.Acceleration = tt.accel
			got := c.Sync(interval, tt.speed).Progress
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected progress %f, got %f", tt.want, got)
			}
		})
	}
}

func TestSquigglePhaseOffsets(t *testing.T) {
	wave := WaveSpec{Range: 10, Period: 1}
	prev := NewComponent(SquiggleSpec(wave, 0, 3))
	for i := 1; i < 5; i++ {
		c := NewComponent(SquiggleSpec(wave, i, 3))
		diff := prev.Offset - c.Offset
		if math.Abs(diff-2*math.Pi/3) > 1e-9 {
			t.Errorf("index %d: expected phase step 2π/3, got %f", i, diff)
		}
		prev = c
	}
}

func TestNewComponentDefaults(t *testing.T) {
	wave := WaveSpec{Range: 10, Period: 2, Offset: 0.25}

	rot := NewComponent(RotationSpec(wave))
	if rot.Acceleration != DefaultAcceleration {
		t.Errorf("expected default acceleration %f, got %f", DefaultAcceleration, rot.Acceleration)
	}
	if rot.Offset != 0.25 {
		t.Errorf("expected rotation offset 0.25, got %f", rot.Offset)
	}
	if rot.Suppression != (Suppression{}) {
		t.Errorf("expected no suppression, got %+v", rot.Suppression)
	}
	if math.Abs(rot.ProgressPerElapsed-math.Pi/1000) > 1e-12 {
		t.Errorf("expected π/1000 per ms, got %g", rot.ProgressPerElapsed)
	}

	curl := NewComponent(CurlSpec(wave, 3))
	if curl.Range != 30 {
		t.Errorf("expected curl range to compound to 30, got %f", curl.Range)
	}
	if curl.Offset != 0.25 {
		t.Errorf("curl should not shift phase by index, got %f", curl.Offset)
	}

	wave.Acceleration = Accel(0)
	if c := NewComponent(RotationSpec(wave)); c.Acceleration != 0 {
		t.Errorf("explicit zero acceleration should be kept, got %f", c.Acceleration)
	}
}

func TestWriggleCompound(t *testing.T) {
	wave := WaveSpec{Range: 10, Period: 1, Acceleration: Accel(0)}
	w := New(RotationSpec(wave), RotationSpec(wave))
	w.Sync(250, 0)

	if math.Abs(w.Compound()-20) > 1e-9 {
		t.Errorf("expected two quarter-period rotations to add to 20, got %f", w.Compound())
	}

	clone := w.Clone()
	w.Reset()
	if w.Compound() != 0 {
		t.Errorf("expected reset wriggle to be at rest, got %f", w.Compound())
	}
	if clone.Compound() == 0 {
		t.Error("clone should not share state with the original")
	}
}

func TestNilWriggle(t *testing.T) {
	var w Wriggle
	w.Sync(50, 100)
	if w.Compound() != 0 {
		t.Errorf("expected empty wriggle to be 0, got %f", w.Compound())
	}
}
