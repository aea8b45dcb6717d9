package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/palamander"
)

const (
	width       = 70
	height      = 20
	trailLength = 40
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints a top-down view of a creature after each frame. It
// satisfies experiment.Observer.
type LiveRenderer struct {
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	trail     []geom.Coordinate
	// Scale is terminal cells per body unit horizontally. Rows count
	// double since cells are about twice as tall as they are wide.
	Scale float64
	out   io.Writer
	now   func() time.Time
}

func NewLiveRenderer(frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	if frameRate <= 0 {
		frameRate = 20
	}
	return &LiveRenderer{
		frameRate: frameRate,
		canvas:    canvas,
		trail:     make([]geom.Coordinate, 0, trailLength),
		Scale:     0.05,
		out:       os.Stdout,
		now:       time.Now,
	}
}

// SetOutput redirects rendering, mostly for tests.
func (r *LiveRenderer) SetOutput(w io.Writer) { r.out = w }

func (r *LiveRenderer) OnFrame(f palamander.Frame) {
	now := r.now()
	if now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = now

	r.clear()
	r.draw(f)
	r.render(f)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// project centers the view on the pivot.
func (r *LiveRenderer) project(f palamander.Frame, px, py float64) (int, int) {
	x := (px-f.Pivot.X())*r.Scale + width/2
	y := (py-f.Pivot.Y())*r.Scale/2 + height/2
	return int(math.Round(x)), int(math.Round(y))
}

func (r *LiveRenderer) circle(cx, cy int, radius float64, c rune) {
	if radius < 1 {
		r.set(cx, cy, c)
		return
	}
	steps := max(int(radius*8), 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		r.set(cx+int(math.Round(radius*math.Cos(a))), cy+int(math.Round(radius*math.Sin(a)/2)), c)
	}
}

func (r *LiveRenderer) draw(f palamander.Frame) {
	// The trail is kept in body units and projected against the current
	// pivot.
	r.trail = append(r.trail, f.Engine)
	if len(r.trail) > trailLength {
		r.trail = r.trail[1:]
	}
	for _, pt := range r.trail {
		x, y := r.project(f, pt.X(), pt.Y())
		r.set(x, y, '.')
	}

	for i := len(f.Circles) - 1; i >= 0; i-- {
		c := f.Circles[i]
		x, y := r.project(f, c.Center.X(), c.Center.Y())
		mark := 'o'
		if i == 0 {
			mark = '@'
		}
		r.circle(x, y, c.Radius*r.Scale, mark)
	}
}

func (r *LiveRenderer) render(f palamander.Frame) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.2fs\n", f.Type, f.Elapsed/1000))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  heading=%.0f speed=%.1f turn=%+.1f\n", f.Heading, f.Speed, f.Turn))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
