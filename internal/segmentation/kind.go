package segmentation

import "sort"

// Kind identifies a section builder.
type Kind int

const (
	// composites
	Passthru Kind = iota
	Pair
	Equal
	Radial

	// heads
	Head
	LionHead
	MonkeyHead
	SnakeHead

	// bodies
	EelBody
	FishBody
	InchwormBody
	NewtBody
	SnakeBody

	// parts
	Claw
	Curl
	Feeler
	FishTail
	Flicker
	Flipper
	FrogLeg
	Hair
	Mandible
	MonkeyArm
	NoodleLimb
	Pod
	Propeller
	RigidLeg
	SimpleLimb
	Tentacle

	// sets
	BuggyLegs
	Claws
	FrogArms
	FrogLegs
	GillPair
	Gills
	Hairdo
	Mane
	Mandibles
	MonkeyArms
	NoodleLimbs
	NubbyLegs
	OctoArms
	Pods
	Propellers
	SimpleLimbs
	StarfishArms
	Tentacles

	// creatures
	Axolotl
	Caterpillar
	Centipede
	Crawdad
	Frog
	HorseshoeCrab
	Jelly
	Nautilus
	Newt
	NewtKing
	Octopus
	SeaLion
	SeaMonkey
	Snake
	Starfish
	Tadpole
	Wyrm

	numKinds
)

var kindNames = [numKinds]string{
	Passthru: "passthru",
	Pair:     "pair",
	Equal:    "equal",
	Radial:   "radial",

	Head:       "head",
	LionHead:   "lion-head",
	MonkeyHead: "monkey-head",
	SnakeHead:  "snake-head",

	EelBody:      "eel-body",
	FishBody:     "fish-body",
	InchwormBody: "inchworm-body",
	NewtBody:     "newt-body",
	SnakeBody:    "snake-body",

	Claw:       "claw",
	Curl:       "curl",
	Feeler:     "feeler",
	FishTail:   "fish-tail",
	Flicker:    "flicker",
	Flipper:    "flipper",
	FrogLeg:    "frog-leg",
	Hair:       "hair",
	Mandible:   "mandible",
	MonkeyArm:  "monkey-arm",
	NoodleLimb: "noodle-limb",
	Pod:        "pod",
	Propeller:  "propeller",
	RigidLeg:   "rigid-leg",
	SimpleLimb: "simple-limb",
	Tentacle:   "tentacle",

	BuggyLegs:    "buggy-legs",
	Claws:        "claws",
	FrogArms:     "frog-arms",
	FrogLegs:     "frog-legs",
	GillPair:     "gill-pair",
	Gills:        "gills",
	Hairdo:       "hairdo",
	Mane:         "mane",
	Mandibles:    "mandibles",
	MonkeyArms:   "monkey-arms",
	NoodleLimbs:  "noodle-limbs",
	NubbyLegs:    "nubby-legs",
	OctoArms:     "octo-arms",
	Pods:         "pods",
	Propellers:   "propellers",
	SimpleLimbs:  "simple-limbs",
	StarfishArms: "starfish-arms",
	Tentacles:    "tentacles",

	Axolotl:       "axolotl",
	Caterpillar:   "caterpillar",
	Centipede:     "centipede",
	Crawdad:       "crawdad",
	Frog:          "frog",
	HorseshoeCrab: "horseshoe-crab",
	Jelly:         "jelly",
	Nautilus:      "nautilus",
	Newt:          "newt",
	NewtKing:      "newt-king",
	Octopus:       "octopus",
	SeaLion:       "sea-lion",
	SeaMonkey:     "sea-monkey",
	Snake:         "snake",
	Starfish:      "starfish",
	Tadpole:       "tadpole",
	Wyrm:          "wyrm",
}

// aliases accepts spellings found in older body plan files.
var aliases = map[string]Kind{
	"horshoe-crab": HorseshoeCrab,
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// IsCreature reports whether k builds a whole creature.
func (k Kind) IsCreature() bool {
	return k >= Axolotl && k < numKinds
}

func ParseKind(name string) (Kind, bool) {
	if k, ok := kindsByName[name]; ok {
		return k, true
	}
	k, ok := aliases[name]
	return k, ok
}

// Kinds returns every kind name in sorted order.
func Kinds() []string {
	names := make([]string, 0, numKinds)
	for _, name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Creatures returns the names of the whole-creature kinds in sorted order.
func Creatures() []string {
	var names []string
	for k := Axolotl; k < numKinds; k++ {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}
