package analysis

import (
	"strings"

	"github.com/san-kum/palamander/internal/experiment"
)

type Point struct{ X, Y float64 }

// Portrait is a 2D scatter of two trace fields, such as the top-down path
// (x, y) or speed against turn.
type Portrait struct {
	Points []Point
}

func NewPortrait(samples []experiment.Sample, fx, fy Field) *Portrait {
	p := &Portrait{Points: make([]Point, len(samples))}
	for i, s := range samples {
		p.Points[i] = Point{X: fx(s), Y: fy(s)}
	}
	return p
}

// ToASCII plots the portrait on a width x height grid. Screen y grows
// downward, matching body coordinates.
func (p *Portrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	if minX <= 0 && minX+rangeX >= 0 {
		col := int(-minX / rangeX * float64(width-1))
		for row := range canvas {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && minY+rangeY >= 0 {
		row := int(-minY / rangeY * float64(height-1))
		for col := range canvas[row] {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for i, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := int((pt.Y - minY) / rangeY * float64(height-1))
		mark := '•'
		if i == 0 {
			mark = 'o'
		} else if i == len(p.Points)-1 {
			mark = '@'
		}
		canvas[row][col] = mark
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
