package segmentation

import (
	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
)

func buildHead(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	head := attach(parent, segment.NewDefault(sec.Size))
	return []*segment.Segment{head}, sec
}

func buildLionHead(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	size := sec.Size
	head := attach(parent, segment.New(size, sec.Angle, 0))
	for _, dir := range []float64{-1, 1} {
		head.Append(segment.New(0.4*size, 80*dir, 1))
	}
	head.Append(segment.New(0.75*size, 180, 1.5))
	neck := attach(head, segment.New(0.5*size, 0, 0.8))

	return []*segment.Segment{head, neck}, sec.WithBranches(sec.Branch(Mane.String()))
}

func buildMonkeyHead(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	size := sec.Size
	head := attach(parent, segment.New(size, sec.Angle, 0))
	for _, dir := range []float64{-1, 1} {
		head.Append(segment.New(0.45*size, 90*dir, 0.6))
	}
	neck := attach(head, segment.New(0.6*size, sec.Angle, 1))

	hairdo := sec.Branch(Hairdo.String())
	hairdo.Angle = sec.Angle + 180
	return []*segment.Segment{head, neck}, sec.WithBranches(hairdo)
}

func buildSnakeHead(parent *segment.Segment, sec section.Section) ([]*segment.Segment, section.Section) {
	snout := attach(parent, segment.New(0.75*sec.Size, sec.Angle, 0))
	head := attach(snout, segment.New(sec.Size, sec.Angle, 1))
	return []*segment.Segment{snout, head}, sec.WithBranches(sec.Branch(Flicker.String()))
}
