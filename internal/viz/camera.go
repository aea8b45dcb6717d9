package viz

import (
	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/palamander/internal/geom"
)

// Camera maps body coordinates to canvas dots. When following, its center
// chases a target on a critically damped spring so the view glides after
// the creature rather than jumping.
type Camera struct {
	spring     harmonica.Spring
	x, y       float64
	vx, vy     float64
	Zoom       float64 // dots per body unit
	Follow     bool
	subW, subH int
}

func NewCamera(fps int, zoom float64, subW, subH int) *Camera {
	return &Camera{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		Zoom:   zoom,
		Follow: true,
		subW:   subW,
		subH:   subH,
	}
}

// Update moves the center one frame toward target. Without Follow the
// camera glides back to the origin.
func (c *Camera) Update(target geom.Coordinate) {
	if !c.Follow {
		target = geom.Origin()
	}
	c.x, c.vx = c.spring.Update(c.x, c.vx, target.X())
	c.y, c.vy = c.spring.Update(c.y, c.vy, target.Y())
}

func (c *Camera) Center() geom.Coordinate {
	return geom.Coordinate{c.x, c.y}
}

// Project maps a body coordinate to canvas dots.
func (c *Camera) Project(p geom.Coordinate) (int, int) {
	x := (p.X()-c.x)*c.Zoom + float64(c.subW)/2
	y := (p.Y()-c.y)*c.Zoom + float64(c.subH)/2
	return int(x), int(y)
}

// SetViewport changes the canvas size in dots.
func (c *Camera) SetViewport(subW, subH int) {
	c.subW, c.subH = subW, subH
}

func (c *Camera) ZoomIn()  { c.Zoom *= 1.25 }
func (c *Camera) ZoomOut() { c.Zoom /= 1.25 }

// DrawCircles renders circles onto canvas as seen by c.
func (c *Camera) DrawCircles(canvas *Canvas, circles []geom.Circle, fill bool) {
	for _, circle := range circles {
		x, y := c.Project(circle.Center)
		r := int(circle.Radius*c.Zoom + 0.5)
		if fill {
			canvas.FillCircle(x, y, r)
		} else {
			canvas.DrawCircle(x, y, r)
		}
	}
}
