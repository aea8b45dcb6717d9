package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/palamander"
)

func testFrame() palamander.Frame {
	return palamander.Frame{
		Type:    "tadpole",
		Elapsed: 1500,
		Heading: 90,
		Speed:   12,
		Circles: []geom.Circle{
			{Center: geom.Coordinate{0, 0}, Radius: 100},
			{Center: geom.Coordinate{200, 0}, Radius: 60},
		},
	}
}

func TestLiveRendererDraws(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(10)
	r.SetOutput(&out)

	r.OnFrame(testFrame())
	s := out.String()
	if !strings.HasPrefix(s, clearScreen) {
		t.Error("expected screen clear")
	}
	if !strings.Contains(s, "tadpole  t=1.50s") {
		t.Errorf("expected title, got %q", strings.SplitN(s, "\n", 2)[0])
	}
	if !strings.Contains(s, "@") || !strings.Contains(s, "o") {
		t.Error("expected head and body marks")
	}
	if !strings.Contains(s, "heading=90") {
		t.Error("expected status line")
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	var out bytes.Buffer
	clock := time.Unix(100, 0)
	r := NewLiveRenderer(10)
	r.SetOutput(&out)
	r.now = func() time.Time { return clock }

	r.OnFrame(testFrame())
	first := out.Len()

	clock = clock.Add(50 * time.Millisecond)
	r.OnFrame(testFrame())
	if out.Len() != first {
		t.Error("expected frame within 100ms to be dropped")
	}

	clock = clock.Add(60 * time.Millisecond)
	r.OnFrame(testFrame())
	if out.Len() == first {
		t.Error("expected frame after 100ms to render")
	}
}

func TestLiveRendererTrail(t *testing.T) {
	r := NewLiveRenderer(10)
	r.SetOutput(&bytes.Buffer{})
	clock := time.Unix(0, 0)
	r.now = func() time.Time { clock = clock.Add(time.Second); return clock }

	for i := 0; i < trailLength+10; i++ {
		r.OnFrame(testFrame())
	}
	if len(r.trail) != trailLength {
		t.Errorf("expected %d, got %d", trailLength, len(r.trail))
	}
}

func TestStartStop(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(10)
	r.SetOutput(&out)
	r.Start()
	r.Stop()
	if out.String() != hideCursor+showCursor {
		t.Errorf("expected cursor escapes, got %q", out.String())
	}
}
