package segmentation

import (
	"errors"
	"fmt"
	"log"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
)

var ErrMissingBuilder = errors.New("segmentation: missing builder")

// Builder creates the segments for one section under parent, attaching
// them as descendants of parent. sec is the builder's own copy; the
// returned section is what the compiler continues with (its Next and
// Branches), so builders delegate by returning a rewritten copy.
type Builder func(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section)

// Registry maps every Kind to its Builder. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	builders [numKinds]Builder
	logger   *log.Logger
}

func builtinBuilders() map[Kind]Builder {
	return map[Kind]Builder{
		Passthru: buildPassthru,
		Pair:     buildPair,
		Equal:    buildEqual,
		Radial:   buildRadial,

		Head:       buildHead,
		LionHead:   buildLionHead,
		MonkeyHead: buildMonkeyHead,
		SnakeHead:  buildSnakeHead,

		EelBody:      buildEelBody,
		FishBody:     buildFishBody,
		InchwormBody: buildInchwormBody,
		NewtBody:     buildNewtBody,
		SnakeBody:    buildSnakeBody,

		Claw:       buildClaw,
		Curl:       buildCurl,
		Feeler:     buildFeeler,
		FishTail:   buildFishTail,
		Flicker:    buildFlicker,
		Flipper:    buildFlipper,
		FrogLeg:    buildFrogLeg,
		Hair:       buildHair,
		Mandible:   buildMandible,
		MonkeyArm:  buildMonkeyArm,
		NoodleLimb: buildNoodleLimb,
		Pod:        buildPod,
		Propeller:  buildPropeller,
		RigidLeg:   buildRigidLeg,
		SimpleLimb: buildSimpleLimb,
		Tentacle:   buildTentacle,

		BuggyLegs:    buildBuggyLegs,
		Claws:        buildClaws,
		FrogArms:     buildFrogArms,
		FrogLegs:     buildFrogLegs,
		GillPair:     buildGillPair,
		Gills:        buildGills,
		Hairdo:       buildHairdo,
		Mane:         buildMane,
		Mandibles:    buildMandibles,
		MonkeyArms:   buildMonkeyArms,
		NoodleLimbs:  buildNoodleLimbs,
		NubbyLegs:    buildNubbyLegs,
		OctoArms:     buildOctoArms,
		Pods:         buildPods,
		Propellers:   buildPropellers,
		SimpleLimbs:  buildSimpleLimbs,
		StarfishArms: buildStarfishArms,
		Tentacles:    buildTentacles,

		Axolotl:       buildAxolotl,
		Caterpillar:   buildCaterpillar,
		Centipede:     buildCentipede,
		Crawdad:       buildCrawdad,
		Frog:          buildFrog,
		HorseshoeCrab: buildHorseshoeCrab,
		Jelly:         buildJelly,
		Nautilus:      buildNautilus,
		Newt:          buildNewt,
		NewtKing:      buildNewtKing,
		Octopus:       buildOctopus,
		SeaLion:       buildSeaLion,
		SeaMonkey:     buildSeaMonkey,
		Snake:         buildSnake,
		Starfish:      buildStarfish,
		Tadpole:       buildTadpole,
		Wyrm:          buildWyrm,
	}
}

// NewRegistry returns the registry of built-in builders. A nil logger
// uses log.Default().
func NewRegistry(logger *log.Logger) (*Registry, error) {
	return newRegistry(builtinBuilders(), logger)
}

func newRegistry(builders map[Kind]Builder, logger *log.Logger) (*Registry, error) {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{logger: logger}
	for k := Kind(0); k < numKinds; k++ {
		b, ok := builders[k]
		if !ok || b == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingBuilder, k)
		}
		r.builders[k] = b
	}
	return r, nil
}

// Lookup returns the builder registered under a section type name.
func (r *Registry) Lookup(name string) (Builder, bool) {
	k, ok := ParseKind(name)
	if !ok {
		return nil, false
	}
	return r.builders[k], true
}
