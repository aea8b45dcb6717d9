// Package section defines the declarative body plan consumed by the
// segmentation compiler.
//
// A Section names a builder by Type and carries the sizing, angle, count and
// phase seed that builder interprets. Next continues the chain off the last
// segment produced; Branches hang sub-plans off an index into the combined
// list of produced segments, followed segments and the grandparent.
//
// Sections are plain values and round-trip through YAML and JSON.
package section

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Section struct {
	Type     string    `yaml:"type" json:"type"`
	Count    int       `yaml:"count,omitempty" json:"count,omitempty"`
	Index    int       `yaml:"index,omitempty" json:"index,omitempty"`
	Size     float64   `yaml:"size,omitempty" json:"size,omitempty"`
	Angle    float64   `yaml:"angle,omitempty" json:"angle,omitempty"`
	Offset   float64   `yaml:"offset,omitempty" json:"offset,omitempty"`
	Mirror   bool      `yaml:"mirror,omitempty" json:"mirror,omitempty"`
	Next     *Section  `yaml:"next,omitempty" json:"next,omitempty"`
	Branches []Section `yaml:"branches,omitempty" json:"branches,omitempty"`
}

func New(typ string) Section {
	return Section{Type: typ}
}

// Branch copies the scalar fields of s under a new type, without next or branches.
func (s Section) Branch(typ string) Section {
	b := s.Replace()
	b.Type = typ
	return b
}

// Replace copies s without next or branches.
func (s Section) Replace() Section {
	s.Next = nil
	s.Branches = nil
	return s
}

// Passthru copies s anchored at index 0, i.e. directly on whatever parent
// the enclosing section resolves to.
func (s Section) Passthru() Section {
	c := s.Clone()
	c.Index = 0
	return c
}

// Follow returns s continued by next.
func (s Section) Follow(next Section) Section {
	n := next.Clone()
	s.Next = &n
	return s
}

// WithBranches returns s with extra branches appended. The receiver's
// branch slice is never written to.
func (s Section) WithBranches(branches ...Section) Section {
	out := make([]Section, 0, len(s.Branches)+len(branches))
	out = append(out, s.Branches...)
	s.Branches = append(out, branches...)
	return s
}

// Clone deep copies s.
func (s Section) Clone() Section {
	if s.Next != nil {
		n := s.Next.Clone()
		s.Next = &n
	}
	if s.Branches != nil {
		branches := make([]Section, len(s.Branches))
		for i, b := range s.Branches {
			branches[i] = b.Clone()
		}
		s.Branches = branches
	}
	return s
}

// Radius interprets Size as a percentage of the parent radius.
func Radius(parentRadius float64, s Section) float64 {
	return parentRadius * s.Size / 100
}

func Parse(data []byte) (Section, error) {
	var s Section
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Section{}, err
	}
	if s.Type == "" {
		return Section{}, fmt.Errorf("section: missing type")
	}
	return s, nil
}

func Load(path string) (Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Section{}, err
	}
	s, err := Parse(data)
	if err != nil {
		return Section{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s Section) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
