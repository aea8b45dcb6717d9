package segment

import (
	"math"
	"testing"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/wriggle"
)

func chain(n int, curveRange float64, gen wriggle.Generator) *Segment {
	root := NewDefault(10)
	curr := root
	for i := 0; i < n; i++ {
		next := New(8, 0, 0.5)
		next.BodyAngle.CurveRange = curveRange
		next.Wriggle = gen(i)
		curr.Append(next)
		curr = next
	}
	return root
}

func TestCalculateAbsolute(t *testing.T) {
	tests := []struct {
		name       string
		step       float64
		own        float64
		parentPrev float64
		parent     float64
		want       float64
	}{
		{"no time elapsed", 0, 10, 40, 80, 10},
		{"half way to parent", 0.5, 10, 40, 80, 25},
		{"exactly one interval", 1, 10, 40, 80, 40},
		{"two intervals", 2, 10, 40, 80, 60},
		{"four intervals", 4, 10, 40, 80, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAbsolute(tt.step, tt.own, tt.parentPrev, tt.parent)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestClip(t *testing.T) {
	if got := Clip(10, 50, 30); got != 40 {
		t.Errorf("expected clip to 40, got %f", got)
	}
	if got := Clip(10, 5, 30); got != 20 {
		t.Errorf("expected clip to 20, got %f", got)
	}
	if got := Clip(10, 35, 30); got != 35 {
		t.Errorf("expected 35 unchanged, got %f", got)
	}
	if got := Clip(0, 35, 30); got != 30 {
		t.Errorf("expected rigid segment to match parent, got %f", got)
	}
}

func TestUpdateRespectsCurveRange(t *testing.T) {
	root := chain(6, 15, wriggle.None)
	engine := geom.EngineCircle(root.Circle, geom.Origin())
	Hydrate(root, engine, 0, 0)

	heading := 0.0
	for tick := 0; tick < 20; tick++ {
		heading += 30
		Update(root, engine, heading, heading, 50, 0)

		parent := root
		for len(parent.Children) > 0 {
			child := parent.Children[0]
			diff := math.Abs(child.BodyAngle.Absolute - parent.BodyAngle.Absolute)
			if diff > child.BodyAngle.CurveRange+1e-9 {
				t.Fatalf("tick %d: curve range exceeded by %f", tick, diff-child.BodyAngle.CurveRange)
			}
			parent = child
		}
	}
}

func TestUpdatePropagatesTurnWithLag(t *testing.T) {
	root := chain(3, 360, wriggle.None)
	root.BodyAngle.CurveRange = 360
	engine := geom.EngineCircle(root.Circle, geom.Origin())
	Hydrate(root, engine, 0, 0)

	Update(root, engine, 90, 90, 50, 0)

	first := root.Children[0]
	second := first.Children[0]
	if math.Abs(root.BodyAngle.Absolute-45) > 1e-9 {
		t.Errorf("expected root half way to 90, got %f", root.BodyAngle.Absolute)
	}
	// The first child blends toward where the root was before this tick.
	if math.Abs(first.BodyAngle.Absolute) > 1e-9 {
		t.Errorf("expected first child still at 0, got %f", first.BodyAngle.Absolute)
	}

	Update(root, engine, 90, 90, 50, 0)
	if first.BodyAngle.Absolute <= 0 {
		t.Errorf("expected first child to start turning, got %f", first.BodyAngle.Absolute)
	}
	if second.BodyAngle.Absolute > first.BodyAngle.Absolute {
		t.Errorf("expected turn to reach the second child last: %f > %f",
			second.BodyAngle.Absolute, first.BodyAngle.Absolute)
	}
}

func TestUpdateZeroPropagationInterval(t *testing.T) {
	root := chain(1, 360, wriggle.None)
	root.Children[0].PropagationInterval = 0
	engine := geom.EngineCircle(root.Circle, geom.Origin())
	Hydrate(root, engine, 0, 0)

	root.PropagationInterval = -5
	Update(root, engine, 30, 30, 50, 0)
	for _, s := range []*Segment{root, root.Children[0]} {
		if math.IsNaN(s.BodyAngle.Absolute) || s.BodyAngle.Absolute != 30 {
			t.Errorf("expected snap to parent angle 30, got %f", s.BodyAngle.Absolute)
		}
	}
}

func TestHydrateIsPeriodic(t *testing.T) {
	wave := wriggle.WaveSpec{Range: 20, Period: 1}
	root := chain(5, 20, wriggle.SquiggleGenerator(wave, 5))
	engine := geom.EngineCircle(root.Circle, geom.Origin())

	Hydrate(root, engine, 0, 230)
	first := CollectCircles(root)
	Hydrate(root, engine, 0, 1230)
	second := CollectCircles(root)

	if len(first) != len(second) {
		t.Fatalf("expected equal circle counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Center.Sub(second[i].Center).Len() > 1e-6 {
			t.Errorf("circle %d: %v != %v", i, first[i].Center, second[i].Center)
		}
	}
}

func TestHydrateChainGeometry(t *testing.T) {
	root := chain(2, 0, wriggle.None)
	engine := geom.EngineCircle(root.Circle, geom.Coordinate{5, 5})
	Hydrate(root, engine, 0, 0)

	circles := CollectCircles(root)
	want := []geom.Coordinate{{5, 5}, {5, 19}, {5, 31}}
	for i, c := range circles {
		if c.Center.Sub(want[i]).Len() > 1e-9 {
			t.Errorf("circle %d: expected %v, got %v", i, want[i], c.Center)
		}
	}
}

func TestCirclesRestartable(t *testing.T) {
	root := chain(4, 0, wriggle.None)
	seq := Circles(root)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected early stop after 2, got %d", n)
	}

	total := 0
	for range seq {
		total++
	}
	if total != 5 || Count(root) != 5 {
		t.Errorf("expected 5 circles, got %d (count %d)", total, Count(root))
	}
}

func TestBodySegments(t *testing.T) {
	root := chain(3, 0, wriggle.None)
	leg := New(3, 90, 0)
	root.Children[0].Append(leg)

	root.Primary = true
	Walk(root.Children[0], func(s *Segment) bool {
		s.Primary = s != leg
		return true
	})

	body := BodySegments(root)
	if len(body) != 4 {
		t.Fatalf("expected 4 body segments, got %d", len(body))
	}
	for _, s := range body {
		if s == leg {
			t.Error("leg should not be part of the body")
		}
	}
	if BodySegments(leg) != nil {
		t.Error("expected no body for a non-primary segment")
	}
}

func TestClone(t *testing.T) {
	root := chain(2, 0, wriggle.RotationGenerator(wriggle.WaveSpec{Range: 5, Period: 1}))
	clone := root.Clone()
	clone.Children[0].Circle.Radius = 99
	clone.Children[0].Wriggle.Sync(100, 0)

	if root.Children[0].Circle.Radius == 99 {
		t.Error("clone shares children with original")
	}
	if root.Children[0].Wriggle[0].Progress != 0 {
		t.Error("clone shares wriggle state with original")
	}
}
