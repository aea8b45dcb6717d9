package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/palamander/internal/palamander"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	panelWidth      = 38
	historyCapacity = 120
	fps             = 30
	// maxInterval caps the measured frame time so a stalled terminal does
	// not fling the creatures across the tank.
	maxInterval = 250.0
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

type Options struct {
	Theme  string
	Follow bool
	Zoom   float64 // dots per body unit, 0 means 0.5
	// Interval fixes the simulated ms per frame; 0 uses wall-clock time.
	Interval float64
	Fill     bool
	GIFPath  string
}

// Model is the bubbletea tank viewer.
type Model struct {
	tank     *palamander.Tank
	frames   []palamander.Frame
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	styles   Styles
	opts     Options
	running  bool
	selected int
	last     time.Time
	err      error
	status   string

	speedHistory   []float64
	headingHistory []float64

	showHelp  bool
	recording bool
	images    []*image.Paletted
}

func NewModel(tank *palamander.Tank, opts Options) Model {
	if opts.Zoom <= 0 {
		opts.Zoom = 0.5
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "palamander.gif"
	}
	canvas := NewCanvas(defaultWidth-panelWidth, defaultHeight-2)
	camera := NewCamera(fps, opts.Zoom, canvas.SubWidth(), canvas.SubHeight())
	camera.Follow = opts.Follow
	theme := GetTheme(opts.Theme)

	m := Model{
		tank:           tank,
		frames:         tank.Frames(),
		canvas:         canvas,
		camera:         camera,
		theme:          theme,
		styles:         NewStyles(theme),
		opts:           opts,
		running:        true,
		speedHistory:   make([]float64, 0, historyCapacity),
		headingHistory: make([]float64, 0, historyCapacity),
	}
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.last = time.Time{}
		case "tab":
			if len(m.frames) > 0 {
				m.selected = (m.selected + 1) % len(m.frames)
				m.speedHistory = m.speedHistory[:0]
				m.headingHistory = m.headingHistory[:0]
			}
		case "f":
			m.camera.Follow = !m.camera.Follow
		case "o":
			m.opts.Fill = !m.opts.Fill
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = NewStyles(m.theme)
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case tea.WindowSizeMsg:
		w := max(msg.Width-panelWidth-4, 10)
		h := max(msg.Height-2, 5)
		m.canvas = NewCanvas(w, h)
		m.camera.SetViewport(m.canvas.SubWidth(), m.canvas.SubHeight())
		m.draw()
	case TickMsg:
		if m.running && m.err == nil {
			m.step(time.Time(msg))
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tick()
	}
	return m, nil
}

// step advances the tank by the time since the previous frame.
func (m *Model) step(now time.Time) {
	interval := m.opts.Interval
	if interval <= 0 {
		interval = 1000.0 / fps
		if !m.last.IsZero() {
			interval = min(float64(now.Sub(m.last))/float64(time.Millisecond), maxInterval)
		}
	}
	m.last = now

	frames, err := m.tank.Tick(interval)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.frames = frames
	if len(frames) == 0 {
		return
	}

	f := frames[m.selected]
	m.speedHistory = appendCapped(m.speedHistory, f.Speed)
	m.headingHistory = appendCapped(m.headingHistory, f.Heading)
	m.camera.Update(f.Pivot)
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, f := range m.frames {
		m.camera.DrawCircles(m.canvas, f.Circles, m.opts.Fill)
	}
}

func (m Model) View() string {
	s := m.styles
	canvasView := s.Canvas.Render(m.canvas.String())

	var b strings.Builder
	b.WriteString(GradientText("PALAMANDER", m.theme.Body, m.theme.Accent) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(s.Paused.Render("ERROR") + "\n" + s.Subtle.Render(m.err.Error()) + "\n")
	case !m.running:
		b.WriteString(s.Paused.Render("PAUSED") + "\n")
	default:
		b.WriteString(s.Running.Render("SWIMMING") + "\n")
	}
	if m.recording {
		b.WriteString(s.Paused.Render(fmt.Sprintf("REC %d", len(m.images))) + "\n")
	}
	if m.status != "" {
		b.WriteString(s.Subtle.Render(m.status) + "\n")
	}
	b.WriteString("\n")

	if len(m.frames) > 0 {
		f := m.frames[m.selected]
		b.WriteString(s.Header.Render(fmt.Sprintf("%s (%d/%d)", f.Type, m.selected+1, len(m.frames))) + "\n")
		b.WriteString(s.Label.Render("Time") + s.Value.Render(fmt.Sprintf("%.1fs", f.Elapsed/1000)) + "\n")
		b.WriteString(s.Label.Render("Heading") + s.Value.Render(fmt.Sprintf("%.0f°", f.Heading)) + "\n")
		b.WriteString(s.Label.Render("Turn") + s.Value.Render(fmt.Sprintf("%+.1f", f.Turn)) + "\n")
		b.WriteString(s.Label.Render("Speed") + s.Bar(f.Speed/100, 16) + s.Value.Render(fmt.Sprintf(" %.0f", f.Speed)) + "\n")
		b.WriteString(s.Label.Render("Segments") + s.Value.Render(fmt.Sprintf("%d", len(f.Circles))) + "\n\n")
		b.WriteString(s.Sparkline(m.speedHistory, 30) + "\n")
	}
	if len(m.headingHistory) > 1 {
		chart := asciigraph.Plot(m.headingHistory, asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("heading"))
		b.WriteString(s.Graph.Render(chart) + "\n")
	}

	b.WriteString("\n" + s.Separator(30) + "\n")
	b.WriteString(s.KeyHint.Render("SP:Pause Tab:Next F:Follow\n+/-:Zoom O:Fill T:Theme\nG:Record ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, s.Panel.Render(b.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  Tab      - Select next creature     ║
║  F        - Toggle camera follow     ║
║  + / -    - Zoom in / out            ║
║  O        - Toggle filled segments   ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.images = m.images[:0]
		m.status = ""
		return
	}
	m.recording = false
	if err := m.saveGIF(); err != nil {
		m.status = "gif: " + err.Error()
	} else if len(m.images) > 0 {
		m.status = fmt.Sprintf("saved %s", m.opts.GIFPath)
	}
	m.images = nil
}

// captureFrame rasterizes the canvas, one 4x4 block per braille dot.
func (m *Model) captureFrame() {
	const dot = 4
	w, h := m.canvas.SubWidth()*dot, m.canvas.SubHeight()*dot
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})
	for y := 0; y < m.canvas.SubHeight(); y++ {
		for x := 0; x < m.canvas.SubWidth(); x++ {
			if !m.canvas.IsSet(x, y) {
				continue
			}
			for py := 0; py < dot; py++ {
				for px := 0; px < dot; px++ {
					img.SetColorIndex(x*dot+px, y*dot+py, 1)
				}
			}
		}
	}
	m.images = append(m.images, img)
}

func (m *Model) saveGIF() error {
	if len(m.images) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, img := range m.images {
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, 100/fps)
	}
	f, err := os.Create(m.opts.GIFPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

// Run shows the tank until the user quits.
func Run(tank *palamander.Tank, opts Options) error {
	_, err := tea.NewProgram(NewModel(tank, opts), tea.WithAltScreen()).Run()
	return err
}
