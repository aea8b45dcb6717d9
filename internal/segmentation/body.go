package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/wriggle"
)

// eelGradient squiggles harder toward the tail and straightens out at
// speed in front while the back whips more.
func eelGradient(seg Segmentation, wave wriggle.WaveSpec, front, back float64) wriggle.SquiggleGradient {
	g := seg.Gradient(wave)
	g.Length = float64(seg.Count * 2)
	g.EaseFactor = 0.2
	g.Suppression = &wriggle.SuppressionGradient{
		Range: &wriggle.DampenRange{Front: front, Back: back},
	}
	return g
}

func buildEelBody(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = Taper(0.45, sec.Count)
	seg.CurveRange = CurveSquiggly

	// ranges run 15 at the head to 25 at the tail
	wave := wriggle.WaveSpec{
		Range:        20,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	}
	g := eelGradient(seg, wave, 0.5, -0.5)
	g.Increase = 10
	return seg.WithSquiggle(g).Chain(parent), sec
}

// buildSnakeBody is a long, slowly tapering eel that keeps more of its
// wave at speed.
func buildSnakeBody(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = Taper(0.3, sec.Count)
	seg.OverlapMult = 0.3
	seg.CurveRange = CurveSquiggly

	wave := wriggle.WaveSpec{
		Range:        25,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(2),
	}
	g := eelGradient(seg, wave, 0.3, -0.3)
	g.Length = float64(sec.Count)
	g.Increase = 10
	return seg.WithSquiggle(g).Chain(parent), sec
}

func buildFishBody(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	flipper := section.New(Flipper.String())
	flipper.Size = sec.Size * 0.75
	flipper.Angle = 90

	mirrored := flipper
	mirrored.Mirror = true
	mirrored.Offset = math.Pi

	tail := section.New(FishTail.String())
	tail.Count = 6
	tail.Size = sec.Size * 0.75
	tail = tail.WithBranches(flipper, mirrored)
	return nil, sec.Follow(tail)
}

func buildInchwormBody(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Angle = 0
	seg.OverlapMult = 0.1
	if sec.Count > 0 {
		seg.CurveRange = 720 / float64(sec.Count)
	}

	wave := wriggle.WaveSpec{
		Range:        10,
		Period:       PeriodRelaxed * 4,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(20),
	}
	seg.Wriggle = wriggle.SquiggleGenerator(wave, float64(sec.Count)*0.75)
	return seg.Chain(parent), sec
}

// buildNewtBody is an eel body with two pairs of noodle legs, one at the
// shoulders and one a third of the way down.
func buildNewtBody(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	third := sec.Count / 3

	legs := sec.Branch(NoodleLimbs.String())
	legs.Count = third
	legs.Angle = sec.Angle + 45
	front := legs
	front.Index = 0
	back := legs
	back.Index = third - 2

	body := sec.Branch(EelBody.String()).WithBranches(front, back)
	return nil, sec.Follow(body)
}
