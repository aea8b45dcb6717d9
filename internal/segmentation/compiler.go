package segmentation

import (
	"log"

	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
)

// RootRadius is the radius of the placeholder parent every body plan is
// compiled under. Section sizes at the top level are percentages of it.
const RootRadius = 100.0

type Compiler struct {
	registry *Registry
	logger   *log.Logger
}

func NewCompiler(registry *Registry, logger *log.Logger) *Compiler {
	if logger == nil {
		logger = registry.logger
	}
	return &Compiler{registry: registry, logger: logger}
}

// Compile builds tree and returns the main body chain: the segments the
// top-level section produced followed by its Next continuation. The first
// element is the head. All returned segments are marked primary.
func (c *Compiler) Compile(tree section.Section) []*segment.Segment {
	root := segment.NewDefault(RootRadius)
	body := c.process(root, tree)
	for _, s := range body {
		s.Primary = true
	}
	return body
}

// CompileInto builds sec under an existing parent and returns the segments
// it produced together with its Next continuation.
func (c *Compiler) CompileInto(parent *segment.Segment, sec section.Section) []*segment.Segment {
	return c.process(parent, sec)
}

func (c *Compiler) process(parent *segment.Segment, sec section.Section) []*segment.Segment {
	build, ok := c.registry.Lookup(sec.Type)
	if !ok {
		c.logger.Printf("segmentation: unknown section type %q, skipping", sec.Type)
		return nil
	}
	produced, expanded := build(parent, sec.Clone())
	follows := c.processChildren(parent, produced, expanded)
	return append(produced, follows...)
}

func (c *Compiler) processChildren(grandparent *segment.Segment, produced []*segment.Segment, sec section.Section) []*segment.Segment {
	last := grandparent
	if len(produced) > 0 {
		last = produced[len(produced)-1]
	}

	var follows []*segment.Segment
	if sec.Next != nil {
		follows = c.process(last, *sec.Next)
	}

	parents := make([]*segment.Segment, 0, len(produced)+len(follows)+1)
	parents = append(parents, produced...)
	parents = append(parents, follows...)
	parents = append(parents, grandparent)

	for _, branch := range sec.Branches {
		if branch.Index < 0 || branch.Index >= len(parents) {
			c.logger.Printf("segmentation: %s branch of %s has index %d outside [0, %d), skipping",
				branch.Type, sec.Type, branch.Index, len(parents))
			continue
		}
		c.process(parents[branch.Index], branch)
	}
	return follows
}
