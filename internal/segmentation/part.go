package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/wriggle"
)

// Parts are reusable limbs and appendages. Most size themselves as a
// percentage of the parent radius; claw, fish-tail, flipper, monkey-arm
// and pod take Size as an absolute radius.

func buildClaw(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	dir := direction(sec.Mirror)

	upper := NewSegmentation(3, sec.Size*0.4, parent.BodyAngle.Relative+105*dir)
	upper.OverlapMult = 0.3
	upperArm := upper.Rotation(parent, wriggle.WaveSpec{
		Range:        30,
		Period:       PeriodDeliberate,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(0),
	})

	lower := upper
	lower.Angle = upper.Angle + 45*dir
	lowerArm := lower.Chain(upperArm[2])

	pincer := lowerArm[2]
	pincer.Append(
		segment.New(sec.Size*0.7, lower.Angle, 0.2),
		segment.New(sec.Size*0.6, lower.Angle+40*dir, 0.2),
	)
	return append(upperArm, lowerArm...), sec
}

func buildCurl(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	if sec.Count <= 0 {
		return nil, sec
	}
	seg := FromSection(parent, sec)
	seg.Taper = 0.9
	seg.CurveRange = 360 / float64(sec.Count)
	seg = seg.WithCurl(wriggle.WaveSpec{
		Range:  120 / float64(sec.Count),
		Period: PeriodDeliberate,
		Offset: sec.Offset,
	})
	return seg.Chain(parent), sec
}

func buildFeeler(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := NewSegmentation(5, parent.Circle.Radius*0.2, sec.Angle)
	seg.Taper = 0.9
	seg.OverlapMult = 0.2
	return seg.Chain(parent), sec
}

func buildFishTail(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	count := sec.Count
	if count <= 0 {
		return nil, sec
	}
	seg := NewSegmentation(count, sec.Size, 0)
	seg.Taper = 0.88
	seg.OverlapMult = 0.6
	seg.CurveRange = CurveMuscley
	wave := wriggle.WaveSpec{
		Range:        30 / float64(count),
		Period:       PeriodDeliberate,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	}
	tail := seg.WithCurl(wave).Chain(parent)

	end := tail[count-1]
	for _, dir := range []float64{-1, 1} {
		fin := segment.New(sec.Size*0.5, 30*dir, 0.5)
		fin.Wriggle = wriggle.New(wriggle.CurlSpec(wave, count+1))
		end.Append(fin)
	}
	return tail, sec
}

// buildFlicker is a forked snake tongue.
func buildFlicker(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	const count = 7
	seg := NewSegmentation(count, parent.Circle.Radius*0.15, sec.Angle+180)
	seg.Taper = 0.95
	seg.OverlapMult = 0.75
	g := seg.Gradient(wriggle.WaveSpec{
		Range:        30,
		Period:       PeriodFrenetic / 2,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(0),
	})
	g.EaseFactor = 0
	tongue := seg.WithSquiggle(g).Chain(parent)

	r := parent.Circle.Radius * 0.08
	for _, dir := range []float64{-1, 1} {
		fork := segment.New(r, 140*dir, 0.75)
		mid := attach(fork, segment.New(r, 140*dir, 0.75))
		mid.Append(segment.New(r, 130*dir, 0.75))
		tongue[count-1].Append(fork)
	}
	return tongue, sec
}

var flipperSizes = []float64{40, 50, 60, 70, 40, 20}

func buildFlipper(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	dir := direction(sec.Mirror)
	curve := 15 * dir
	wave := wriggle.WaveSpec{
		Range:        20,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	}

	flipper := make([]*segment.Segment, len(flipperSizes))
	curr := parent
	for i, size := range flipperSizes {
		s := segment.New(sec.Size*size/100, sec.Angle*dir-float64(i)*curve, 1.2)
		s.Wriggle = wriggle.New(wriggle.RotationSpec(wave))
		curr = attach(curr, s)
		flipper[i] = s
	}
	return flipper, sec
}

func buildFrogLeg(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	dir := direction(sec.Mirror)
	rel := parent.BodyAngle.Relative
	r := parent.Circle.Radius

	upper := NewSegmentation(3, r, rel+75*dir)
	upper.Taper = 0.85
	upper.OverlapMult = 0.3
	upper.CurveRange = 2
	wave := wriggle.WaveSpec{
		Range:        45,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	}
	upperLeg := upper.Rotation(parent, wave)

	lower := upper
	lower.Radius = r * 0.7
	lower.Angle = rel + 10*dir
	wave.Range = 20
	lowerLeg := lower.Rotation(upperLeg[2], wave)

	pad := segment.New(r*0.6, rel+10*dir, 0.5)
	for _, toeDir := range []float64{1, -1} {
		toe := attach(pad, segment.New(pad.Circle.Radius, pad.BodyAngle.Relative+10*toeDir, 0.5))
		toe.Append(segment.New(toe.Circle.Radius, toe.BodyAngle.Relative, 0.5))
	}
	lowerLeg[2].Append(pad)

	leg := append(upperLeg, lowerLeg...)
	return append(leg, pad), sec
}

func buildHair(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.OverlapMult = 1.25
	seg.CurveRange = 20
	seg = seg.
		WithCurl(wriggle.WaveSpec{Range: 30, Period: PeriodDeliberate, Offset: sec.Offset}).
		WithRotation(wriggle.WaveSpec{Range: 5, Period: PeriodRelaxed, Offset: sec.Offset})
	return seg.Chain(parent), sec
}

func buildMandible(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = 0.8
	seg.Curve = 10
	if sec.Angle < 0 {
		seg.Curve = -10
	}
	return seg.Rotation(parent, wriggle.WaveSpec{
		Range:        5,
		Period:       PeriodDeliberate,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(0),
	}), sec
}

func buildMonkeyArm(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	dir := direction(sec.Mirror)
	size := sec.Size

	pec := attach(parent, segment.New(size*0.75, 70*dir, 1))
	shoulder := attach(pec, segment.New(size*0.7, 130*dir, 0.6))

	upper := NewSegmentation(2, size*0.45, 75*dir)
	upper.Taper = 0.9
	upper.OverlapMult = 0.8
	upperArm := upper.Rotation(shoulder, wriggle.WaveSpec{
		Range:  45,
		Period: PeriodDeliberate,
		Offset: sec.Offset,
	})

	fore := upper
	fore.Count = 3
	fore.Angle = -40 * dir
	// swings against the upper arm
	forearm := fore.Rotation(upperArm[1], wriggle.WaveSpec{
		Range:  20,
		Period: PeriodDeliberate,
		Offset: sec.Offset + math.Pi,
	})

	fist := forearm[2]
	fist.Circle.Radius = size * 0.6
	fist.Overlap = size * 0.3

	arm := []*segment.Segment{pec, shoulder}
	arm = append(arm, upperArm...)
	return append(arm, forearm...), sec
}

// buildNoodleLimb squiggles and pulls in toward the body at speed.
func buildNoodleLimb(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = 0.9
	seg.CurveRange = CurveSquiggly
	g := seg.Gradient(wriggle.WaveSpec{
		Range:        10,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	})
	target, factor := 0.0, 0.5
	g.Suppression = &wriggle.SuppressionGradient{TuckTarget: &target, TuckFactor: &factor}
	return seg.WithSquiggle(g).Chain(parent), sec
}

func buildPod(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	dir := direction(sec.Mirror)
	pod := attach(parent, segment.New(sec.Size, sec.Angle+75*dir, 0.25))
	return []*segment.Segment{pod}, sec.WithBranches(sec.Branch(Propellers.String()))
}

func buildPropeller(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	g := seg.Gradient(wriggle.WaveSpec{
		Range:        30,
		Period:       PeriodRelaxed,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(5),
	})
	g.Length = float64(sec.Count) + 1.5
	return seg.WithSquiggle(g).Chain(parent), sec
}

func buildRigidLeg(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.OverlapMult = 0.2
	return seg.Rotation(parent, wriggle.WaveSpec{
		Range:        30,
		Period:       PeriodDeliberate,
		Offset:       sec.Offset,
		Acceleration: wriggle.Accel(4),
	}), sec
}

func buildSimpleLimb(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = 0.9
	seg.CurveRange = 5
	// mirrored limbs carry an odd multiple of pi and curve the other way
	seg.Curve = -15
	if math.Mod(sec.Offset, 2*math.Pi) == 0 {
		seg.Curve = 15
	}
	return seg.Rotation(parent, wriggle.WaveSpec{
		Range:  10,
		Period: PeriodRelaxed,
		Offset: sec.Offset,
	}), sec
}

func buildTentacle(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	seg := FromSection(parent, sec)
	seg.Taper = 0.9
	seg.OverlapMult = 0
	seg.CurveRange = CurveSquiggly
	g := seg.Gradient(wriggle.WaveSpec{
		Range:  40,
		Period: PeriodRelaxed,
		Offset: sec.Offset,
	})
	g.Length = float64(sec.Count * 3)
	return seg.WithSquiggle(g).Chain(parent), sec
}
