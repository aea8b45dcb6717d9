package wriggle

import (
	"math"
	"testing"
)

func TestSquiggleRangeGradient(t *testing.T) {
	wave := WaveSpec{Range: 30, Period: 2}

	tests := []struct {
		name     string
		count    int
		increase float64
		want     []float64
	}{
		{"increasing", 3, 20, []float64{20, 30, 40}},
		{"decreasing", 3, -20, []float64{40, 30, 20}},
		{"four segments", 4, 30, []float64{15, 25, 35, 45}},
		{"flat", 2, 0, []float64{30, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSquiggleGradient(wave, tt.count)
			g.Increase = tt.increase
			for i, want := range tt.want {
				if got := g.RangeAt(i); math.Abs(got-want) > 1e-9 {
					t.Errorf("index %d: expected range %f, got %f", i, want, got)
				}
			}
		})
	}
}

func TestSquiggleEaseFactor(t *testing.T) {
	g := NewSquiggleGradient(WaveSpec{Range: 30, Period: 2}, 3)
	g.EaseFactor = 0

	if got := g.RangeAt(0); got != 0 {
		t.Errorf("expected eased first range 0, got %f", got)
	}
	if got := g.RangeAt(1); got != 30 {
		t.Errorf("expected second range unmodified at 30, got %f", got)
	}

	g.EaseFactor = 0.5
	if got := g.RangeAt(0); got != 15 {
		t.Errorf("expected eased first range 15, got %f", got)
	}
}

func TestSingleSegmentGradient(t *testing.T) {
	g := NewSquiggleGradient(WaveSpec{Range: 30, Period: 2}, 1)
	g.Increase = 10
	if got := g.RangeAt(0); math.IsNaN(got) || got != 25 {
		t.Errorf("expected 25 for a single segment, got %f", got)
	}
	if got := CalculateDampen(0, 1, DampenRange{Front: 0.5, Back: -0.5}); got != 0.5 {
		t.Errorf("expected front dampen for a single segment, got %f", got)
	}
	if got := CalculateDampen(0, 0, DampenRange{Front: 0.5, Back: -0.5}); got != 0.5 {
		t.Errorf("expected front dampen for an empty chain, got %f", got)
	}
}

func TestDampenGradient(t *testing.T) {
	r := DampenRange{Front: 0.3, Back: -0.3}

	tests := []struct {
		count int
		want  []float64
	}{
		{4, []float64{0.3, 0.1, -0.1, -0.3}},
		{3, []float64{0.3, 0, -0.3}},
	}

	for _, tt := range tests {
		for i, want := range tt.want {
			if got := CalculateDampen(i, tt.count, r); math.Abs(got-want) > 1e-9 {
				t.Errorf("count %d index %d: expected %f, got %f", tt.count, i, want, got)
			}
		}
	}
}

func TestTuckGradient(t *testing.T) {
	target, factor := 30.0, 0.4
	g := NewSquiggleGradient(WaveSpec{Range: 10, Period: 2}, 3)

	g.Suppression = &SuppressionGradient{TuckTarget: &target, TuckFactor: &factor}
	if got := g.SuppressionAt(0, 10).Tuck; math.Abs(got-12) > 1e-9 {
		t.Errorf("expected tuck 12, got %f", got)
	}

	g.Suppression = &SuppressionGradient{TuckTarget: &target}
	if got := g.SuppressionAt(0, 10).Tuck; math.Abs(got-15) > 1e-9 {
		t.Errorf("expected default tuck 15, got %f", got)
	}
}

func TestGradientSuppressionDelta(t *testing.T) {
	g := NewSquiggleGradient(WaveSpec{Range: 20, Period: 2}, 4)
	g.Suppression = &SuppressionGradient{Range: &DampenRange{Front: 0.5, Back: -0.5}}

	spec := g.SpecAt(3)
	if spec.Suppression == nil {
		t.Fatal("expected suppression on gradient spec")
	}
	if want := CalculateDelta(20, 2); spec.Suppression.Delta != want {
		t.Errorf("expected delta %f, got %f", want, spec.Suppression.Delta)
	}
	if spec.Suppression.Dampen != -0.5 {
		t.Errorf("expected back dampen -0.5, got %f", spec.Suppression.Dampen)
	}

	explicit := Suppression{Delta: 7}
	g.Wave.Suppression = &explicit
	if got := g.SpecAt(0).Suppression.Delta; got != 7 {
		t.Errorf("expected explicit delta 7, got %f", got)
	}

	g.Suppression = nil
	g.Wave.Suppression = nil
	if g.SpecAt(0).Suppression != nil {
		t.Error("expected no suppression without a gradient")
	}
}

func TestMixGenerators(t *testing.T) {
	wave := WaveSpec{Range: 5, Period: 1}
	gen := Mix(CurlGenerator(wave), RotationGenerator(wave), nil)
	w := gen(2)
	if len(w) != 2 {
		t.Fatalf("expected 2 components, got %d", len(w))
	}
	if w[0].Range != 10 || w[1].Range != 5 {
		t.Errorf("unexpected ranges %f and %f", w[0].Range, w[1].Range)
	}
	if None(3) != nil {
		t.Error("expected None to produce no wriggle")
	}
}
