package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/palamander/internal/palamander"
	"github.com/san-kum/palamander/internal/section"
)

// Preset is a catalog entry: a named creature with its section type and
// default behavior. Size is the section size as a percentage of the root
// radius; zero means DefaultSectionSize.
type Preset struct {
	Type          string
	Linear        string
	Rotational    string
	Magnification float64
	Count         int
	Size          float64
	Bio           string
}

// DefaultSectionSize is the size every catalog body plan starts from.
const DefaultSectionSize = 100.0

func (p Preset) Spec(name string) palamander.Spec {
	tree := section.New(p.Type)
	tree.Count = p.Count
	tree.Size = p.Size
	if tree.Size <= 0 {
		tree.Size = DefaultSectionSize
	}
	return palamander.Spec{
		Type:        name,
		SectionTree: tree,
		Behavior: palamander.BehaviorNames{
			Linear:     p.Linear,
			Rotational: p.Rotational,
		},
		Magnification:  p.Magnification,
		UpdateInterval: DefaultUpdateInterval,
	}
}

var Presets = map[string]Preset{
	"axolittl": {
		Type: "axolotl", Linear: "flitting", Rotational: "twirling", Magnification: 10, Count: 15,
		Bio: "So much more than a cute lil' guy. A squiggly boy, a sweetie pie, a winsome fellow.",
	},
	"munchkin": {
		Type: "caterpillar", Linear: "pushing", Rotational: "wary", Magnification: 8, Count: 10,
		Bio: "This insatiable hunger. Flowers starve and wither as you feast.",
	},
	"decipede": {
		Type: "centipede", Linear: "erratic", Rotational: "twirling", Magnification: 8, Count: 10,
		Bio: "Technically a ventipede, but who can count that high anyway?",
	},
	"crawpa": {
		Type: "crawdad", Linear: "pushing", Rotational: "wary", Magnification: 5, Count: 10,
		Bio: "Your omnipotent Crawpa. You'd follow him anywhere.",
	},
	"prince": {
		Type: "frog", Linear: "flitting", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "A brash young heir who ran afoul of the voodoo queen.",
	},
	"bocce-crab": {
		Type: "horseshoe-crab", Linear: "flitting", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "Predates its namesake lawn game by a mere 250 million years.",
	},
	"jelly": {
		Type: "jelly", Linear: "hovering", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "He could float, he could sting. He was just too soft.",
	},
	"wyrm": {
		Type: "wyrm", Linear: "cautious", Rotational: "coiling", Magnification: 6, Count: 10,
		Bio: "What lurks in the bowels of the earth? Also these chummy goobers.",
	},
	"nautilus": {
		Type: "nautilus", Linear: "flitting", Rotational: "wary", Magnification: 10, Count: 10,
		Bio: "Observer detected. Assessing threat level.",
	},
	"palamander": {
		Type: "newt", Linear: "flitting", Rotational: "twirling", Magnification: 10, Count: 10,
		Bio: "It's not easy being eponymous.",
	},
	"newt-king": {
		Type: "newt-king", Linear: "deliberate", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "Heavy is the head that wears the crown.",
	},
	"hexapus": {
		Type: "octopus", Linear: "flitting", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "Six is plenty, even rounding up.",
	},
	"sea-monkey": {
		Type: "sea-monkey", Linear: "deliberate", Rotational: "wary", Magnification: 10, Count: 10,
		Bio: "They lock eyes through the glass.",
	},
	"sea-lion": {
		Type: "sea-lion", Linear: "flitting", Rotational: "curious", Magnification: 10, Count: 10,
		Bio: "Take my claws and fangs. Just spare this tired king his Pride.",
	},
	"serpent": {
		Type: "snake", Linear: "predatory", Rotational: "coiling", Magnification: 8, Count: 10,
		Bio: "Well, what did you exssspect?",
	},
	"pollywog": {
		Type: "tadpole", Linear: "flitting", Rotational: "twirling", Magnification: 10, Count: 10,
		Bio: "Dry land, the impossible dream of a limbless, lungless fool.",
	},
	"novafish": {
		Type: "starfish", Linear: "hovering", Rotational: "twirling", Magnification: 10, Count: 10,
		Bio: "Star-shaped echinoderms found from the intertidal zone to abyssal depths.",
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", palamander.ErrUnknownCreature, name)
	}
	return p, nil
}

// ListPresets returns the catalog names in order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
