package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/palamander/internal/analysis"
	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/viz"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`

// Style sets the colors of an SVG snapshot.
type Style struct {
	Background string
	Fill       string
	Opacity    float64
}

func DefaultStyle() Style {
	return Style{Background: "#0a0a0a", Fill: "#e37b35", Opacity: 1}
}

// bounds returns the box enclosing every circle.
func bounds(circles []geom.Circle) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range circles {
		r := math.Abs(c.Radius)
		minX = math.Min(minX, c.Center.X()-r)
		maxX = math.Max(maxX, c.Center.X()+r)
		minY = math.Min(minY, c.Center.Y()-r)
		maxY = math.Max(maxY, c.Center.Y()+r)
	}
	return
}

// CirclesToSVG draws circles scaled to fit width x height with a 5%
// margin, keeping the aspect ratio. Body coordinates already have y down,
// as SVG does.
func CirclesToSVG(circles []geom.Circle, width, height int, style Style) string {
	if len(circles) == 0 {
		return ""
	}

	minX, minY, maxX, maxY := bounds(circles)
	rangeX := math.Max(maxX-minX, 1)
	rangeY := math.Max(maxY-minY, 1)
	scale := math.Min(float64(width)/rangeX, float64(height)/rangeY) * 0.9
	offX := (float64(width) - rangeX*scale) / 2
	offY := (float64(height) - rangeY*scale) / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height, style.Background))
	sb.WriteString(fmt.Sprintf(`<g fill="%s" fill-opacity="%.2f">
`, style.Fill, style.Opacity))

	for _, c := range circles {
		cx := (c.Center.X()-minX)*scale + offX
		cy := (c.Center.Y()-minY)*scale + offY
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, math.Abs(c.Radius)*scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := int(float64(canvas.Width) * scale * 2)   // 2 sub-pixels per char
	height := int(float64(canvas.Height) * scale * 4) // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height, "#0a0a0a"))
	sb.WriteString("<g fill=\"#00ff00\">\n")

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < viz.BrailleBase {
				continue
			}
			pattern := int(r - viz.BrailleBase)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&viz.PixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PathToSVG draws a swim path as a polyline. Like body coordinates, y grows
// downward.
func PathToSVG(points []analysis.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
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

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height, "#0a0a0a"))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := (p.Y - minY) / rangeY * float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
