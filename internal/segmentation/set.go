package segmentation

import (
	"math"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
)

// Sets duplicate a part through a composite. Each one continues the
// section with a pair, equal or radial composite whose Next is the
// section itself retyped as the part.

func part(sec section.Section, kind Kind) section.Section {
	return sec.Branch(kind.String())
}

func paired(sec section.Section, mirror bool, next section.Section) ([]*segment.Segment, section.Section) {
	pair := section.New(Pair.String())
	pair.Mirror = mirror
	return nil, sec.Follow(pair.Follow(next))
}

func fanned(sec section.Section, count int, angle float64, mirror bool, next section.Section) ([]*segment.Segment, section.Section) {
	equal := section.New(Equal.String())
	equal.Count = count
	equal.Angle = angle
	equal.Mirror = mirror
	return nil, sec.Follow(equal.Follow(next))
}

func rigidLegs(sec section.Section, count int, size float64) section.Section {
	leg := part(sec, RigidLeg)
	leg.Count = count
	leg.Size = size
	leg.Angle = 90 + sec.Angle
	return leg
}

func buildBuggyLegs(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, rigidLegs(sec, 2, 20))
}

func buildNubbyLegs(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, rigidLegs(sec, 1, 30))
}

func buildFrogArms(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, rigidLegs(sec, 5, 20))
}

func buildClaws(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, false, part(sec, Claw))
}

func buildFrogLegs(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, part(sec, FrogLeg))
}

func buildGillPair(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	gills := part(sec, Gills)
	gills.Angle = sec.Angle + 60
	return paired(sec, false, gills)
}

func buildMandibles(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	mandible := part(sec, Mandible)
	mandible.Count = 5
	mandible.Size = 20
	mandible.Angle = 165
	return paired(sec, true, mandible)
}

func buildMonkeyArms(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, part(sec, MonkeyArm))
}

func buildNoodleLimbs(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, part(sec, NoodleLimb))
}

func buildPods(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, part(sec, Pod))
}

func buildSimpleLimbs(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return paired(sec, true, part(sec, SimpleLimb))
}

func curls(sec section.Section, count int, size float64) section.Section {
	c := part(sec, Curl)
	c.Count = count
	c.Size = size
	return c
}

func buildGills(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return fanned(sec, 3, 60, true, curls(sec, 5, 10))
}

func buildOctoArms(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return fanned(sec, 6, 80, false, curls(sec, 12, 40))
}

func hairs(sec section.Section, size float64) section.Section {
	h := part(sec, Hair)
	h.Count = 2
	h.Size = size
	return h
}

func buildHairdo(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return fanned(sec, 12, 180, false, hairs(sec, 9))
}

func buildMane(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	return fanned(sec, 30, 240, false, hairs(sec, 7))
}

func buildTentacles(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	tentacle := part(sec, Tentacle)
	tentacle.Count = 8
	tentacle.Size = 35
	return fanned(sec, 10, 35, false, tentacle)
}

// buildPropellers spins three blades a third of a cycle apart.
func buildPropellers(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	const blades = 3
	blade := part(sec, Propeller)
	blade.Count = 6
	blade.Size = 20

	equal := section.New(Equal.String())
	equal.Count = blades
	equal.Offset = 2 * math.Pi / blades
	equal.Mirror = true
	return nil, sec.Follow(equal.Follow(blade))
}

func buildStarfishArms(_ *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	radial := section.New(Radial.String())
	radial.Count = 5
	radial.Mirror = true
	return nil, sec.Follow(radial.Follow(curls(sec, 8, 75)))
}
