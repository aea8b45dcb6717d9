package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/wriggle"
)

// Creature builders. Size is the head radius; smaller features scale from it.

// headed continues sec with a head of the given size that is itself
// continued by body.
func headed(sec section.Section, size float64, body section.Section, branches ...section.Section) ([]*segment.Segment, section.Section) {
	head := sec.Branch(Head.String())
	head.Size = size
	head = head.WithBranches(branches...).Follow(body)
	return nil, sec.Follow(head)
}

func gillPair(sec section.Section) section.Section {
	gills := sec.Branch(GillPair.String())
	gills.Index = 0
	return gills
}

func buildAxolotl(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(NewtBody.String())
	body.Count = 15
	body.Size = 50
	return headed(sec, 100, body, gillPair(sec))
}

func buildTadpole(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(EelBody.String())
	body.Count = 10
	body.Size = 50
	return headed(sec, 100, body, gillPair(sec))
}

func buildNewt(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(NewtBody.String())
	body.Count = 18
	body.Size = 60
	return headed(sec, 100, body)
}

// buildNewtKing grows three newt bodies off one head.
func buildNewtKing(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(NewtBody.String())
	body.Count = 12
	body.Size = 50

	equal := section.New(Equal.String())
	equal.Count = 3
	equal.Angle = 90
	return headed(sec, 75, equal.Follow(body))
}

// buildCaterpillar is an inchworm on legs that alternate segment to segment.
func buildCaterpillar(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(InchwormBody.String())
	body.Size = 80
	for i := 0; i < sec.Count-1; i++ {
		legs := sec.Branch(BuggyLegs.String())
		legs.Index = i
		legs.Offset = sec.Offset + math.Pi*float64(i)
		body = body.WithBranches(legs)
	}
	return headed(sec, 100, body, sec.Branch(Mandibles.String()))
}

// buildCentipede is an inchworm whose legs cascade down the body, with
// feelers off the last segment.
func buildCentipede(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(InchwormBody.String())
	body.Size = 70
	step := 0.0
	if sec.Count > 0 {
		step = 2 * math.Pi / (float64(sec.Count) * 2.5)
	}
	for i := 0; i < sec.Count; i++ {
		legs := sec.Branch(BuggyLegs.String())
		legs.Index = i
		legs.Offset = sec.Offset + step*float64(i)
		body = body.WithBranches(legs)
	}
	feeler := sec.Branch(Feeler.String())
	feeler.Index = body.Count - 1
	for _, a := range []float64{12, -12} {
		f := feeler
		f.Angle = sec.Angle + a
		body = body.WithBranches(f)
	}
	return headed(sec, 100, body, sec.Branch(Mandibles.String()))
}

func buildCrawdad(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	size := sec.Size
	head := attach(parent, segment.NewDefault(size))
	spacer := attach(head, segment.New(size, sec.Angle, 1))

	carapace := NewSegmentation(3, size*1.5, sec.Angle)
	carapace.OverlapMult = 1
	body := carapace.Chain(spacer)

	tail := section.New(FishTail.String())
	tail.Count = 3
	tail.Index = 4
	tail.Size = size * 1.5
	sec = sec.WithBranches(tail)

	for i := 2; i <= 4; i++ {
		legs := sec.Branch(BuggyLegs.String())
		legs.Index = i
		sec = sec.WithBranches(legs)
	}
	for _, a := range []float64{210, 150} {
		feeler := sec.Branch(Feeler.String())
		feeler.Index = 0
		feeler.Angle = sec.Angle + a
		sec = sec.WithBranches(feeler)
	}
	claws := sec.Branch(Claws.String())
	claws.Index = 2
	sec = sec.WithBranches(claws)

	return append([]*segment.Segment{head, spacer}, body...), sec
}

func buildFrog(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	const bodyLen = 4
	size := sec.Size
	head := attach(parent, segment.NewDefault(size))
	for _, dir := range []float64{-1, 1} {
		head.Append(segment.New(size*0.4, 150*dir, 1.2))
	}

	seg := NewSegmentation(bodyLen, size, sec.Angle)
	seg.Taper = 0.75
	seg.OverlapMult = 1.2
	seg.CurveRange = 5
	body := seg.WithSquiggle(seg.Gradient(wriggle.WaveSpec{Range: 2, Period: PeriodRelaxed})).Chain(head)

	arms := sec.Branch(SimpleLimbs.String())
	arms.Count = 5
	arms.Size = size * 0.2
	arms.Index = 0
	arms.Angle = sec.Angle + 45
	legs := sec.Branch(FrogLegs.String())
	legs.Index = bodyLen

	return append([]*segment.Segment{head}, body...), sec.WithBranches(arms, legs)
}

func buildJelly(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	size := sec.Size
	head := attach(parent, segment.NewDefault(size))
	medulla := attach(head, segment.New(size*0.75, sec.Angle, 2.66))
	medulla.Append(segment.New(size*0.75, sec.Angle, 2))

	tentacles := sec.Branch(Tentacles.String())
	tentacles.Index = 1
	return []*segment.Segment{head, medulla}, sec.Follow(tentacles)
}

func buildHorseshoeCrab(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	size := sec.Size
	head := attach(parent, segment.NewDefault(size))
	body := attach(head, segment.New(size*0.75, 0, 1.2))

	legs := sec.Branch(NubbyLegs.String())
	legs.Index = 1
	for _, a := range []float64{-30, 0, 30} {
		l := legs
		l.Angle = sec.Angle + a
		sec = sec.WithBranches(l)
	}
	return []*segment.Segment{head, body}, sec.Follow(sec.Branch(Feeler.String()))
}

// buildNautilus is a submarine: a hull with a pair of propeller pods and a
// propeller of its own.
func buildNautilus(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	hull := attach(parent, segment.NewDefault(sec.Size))
	pods := sec.Branch(Pods.String())
	pods.Size = sec.Size * 0.5
	return []*segment.Segment{hull}, sec.WithBranches(pods, sec.Branch(Propellers.String()))
}

func buildOctopus(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	head := attach(parent, segment.NewDefault(sec.Size))
	return []*segment.Segment{head}, sec.Follow(sec.Branch(OctoArms.String()))
}

func buildStarfish(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	head := attach(parent, segment.NewDefault(sec.Size))
	return []*segment.Segment{head}, sec.Follow(sec.Branch(StarfishArms.String()))
}

func buildSeaLion(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	head := section.New(LionHead.String())
	head.Size = sec.Size
	return nil, sec.Follow(head.Follow(sec.Branch(FishBody.String())))
}

func buildSeaMonkey(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	arms := section.New(MonkeyArms.String())
	arms.Size = sec.Size

	torso := section.New(FishTail.String())
	torso.Count = 6
	torso.Size = sec.Size
	torso = torso.WithBranches(arms)

	head := section.New(MonkeyHead.String())
	head.Size = sec.Size
	return nil, sec.Follow(head.Follow(torso))
}

func buildSnake(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	body := sec.Branch(SnakeBody.String())
	body.Count = 8
	body.Index = 1
	body.Size = sec.Size * 0.7

	head := section.New(SnakeHead.String())
	head.Size = sec.Size
	return nil, sec.Follow(head.WithBranches(body))
}

func buildWyrm(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	head := attach(parent, segment.NewDefault(sec.Size))
	body := sec.Branch(SnakeBody.String())
	body.Count = 6
	body.Size = sec.Size * 0.9
	return []*segment.Segment{head}, sec.WithBranches(body)
}
