package viz

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/palamander/internal/experiment"
	"github.com/san-kum/palamander/internal/geom"
	"github.com/san-kum/palamander/internal/palamander"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Error("expected dots to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("expected (1,0) unset")
	}
	if c.Grid[0][0] != BrailleBase|0x1 {
		t.Errorf("expected %x, got %x", BrailleBase|0x1, c.Grid[0][0])
	}
	if c.Grid[0][1] != BrailleBase|0x80 {
		t.Errorf("expected %x, got %x", BrailleBase|0x80, c.Grid[0][1])
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected clear canvas")
	}
}

func TestCanvasCircles(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawCircle(10, 10, 4)

	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected outline dot at %v", p)
		}
	}
	if c.IsSet(10, 10) {
		t.Error("outline should leave the center empty")
	}

	c.FillCircle(10, 10, 2)
	if !c.IsSet(10, 10) || !c.IsSet(11, 11) {
		t.Error("expected filled center")
	}

	c.Clear()
	c.DrawCircle(3, 3, 0)
	if !c.IsSet(3, 3) {
		t.Error("zero radius should draw a dot")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 3 {
		t.Errorf("expected 3 cells, got %d", len([]rune(lines[0])))
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(30, 0.5, 100, 40)
	x, y := cam.Project(geom.Coordinate{20, -10})
	if x != 60 || y != 15 {
		t.Errorf("expected (60,15), got (%d,%d)", x, y)
	}

	cam.ZoomIn()
	if math.Abs(cam.Zoom-0.625) > 1e-9 {
		t.Errorf("expected 0.625, got %v", cam.Zoom)
	}
	cam.ZoomOut()
	if math.Abs(cam.Zoom-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %v", cam.Zoom)
	}
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(30, 1, 100, 40)
	target := geom.Coordinate{100, 50}
	for i := 0; i < 300; i++ {
		cam.Update(target)
	}
	c := cam.Center()
	if math.Abs(c.X()-100) > 1 || math.Abs(c.Y()-50) > 1 {
		t.Errorf("expected camera near %v, got %v", target, c)
	}

	cam.Follow = false
	for i := 0; i < 300; i++ {
		cam.Update(target)
	}
	c = cam.Center()
	if math.Abs(c.X()) > 1 || math.Abs(c.Y()) > 1 {
		t.Errorf("expected camera back at origin, got %v", c)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "reef" {
		t.Error("expected fallback to reef")
	}
	if GetTheme("abyss").Name != "abyss" {
		t.Error("expected abyss")
	}
	if NextTheme("ink").Name != "reef" {
		t.Error("expected wrap around to reef")
	}
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Errorf("expected %d names, got %d", len(Themes), len(names))
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("expected (255,128,0), got (%d,%d,%d)", r, g, b)
	}
	if hexColor(255, 128, 0) != "#ff8000" {
		t.Errorf("expected #ff8000, got %s", hexColor(255, 128, 0))
	}
	r, _, _ = parseHex("bad")
	if r != 255 {
		t.Errorf("expected white fallback, got %d", r)
	}
}

func newTestTank(t *testing.T, names ...string) *palamander.Tank {
	t.Helper()
	reg, err := experiment.NewRegistry(log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	tank := palamander.NewTank()
	for i, name := range names {
		p, err := reg.NewCreature(name, palamander.Noop(), int64(i+1))
		if err != nil {
			t.Fatal(err)
		}
		tank.Add(p)
	}
	return tank
}

func TestModelStep(t *testing.T) {
	m := NewModel(newTestTank(t, "pollywog", "serpent"), Options{Interval: 50})

	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("expected another tick")
	}
	m = next.(Model)
	if m.frames[0].Tick != 1 {
		t.Errorf("expected tick 1, got %d", m.frames[0].Tick)
	}
	if m.frames[0].Elapsed != 50 {
		t.Errorf("expected 50, got %v", m.frames[0].Elapsed)
	}
	if len(m.headingHistory) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(m.headingHistory))
	}
	if !strings.Contains(m.View(), "SWIMMING") {
		t.Error("expected running status")
	}
}

func TestModelKeys(t *testing.T) {
	m := NewModel(newTestTank(t, "pollywog", "serpent"), Options{Interval: 50})

	press := func(k string) {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	press(" ")
	if m.running {
		t.Error("expected paused")
	}
	next, _ := m.Update(TickMsg{})
	m = next.(Model)
	if m.frames[0].Tick != 0 {
		t.Errorf("paused tank should not tick, got %d", m.frames[0].Tick)
	}

	press("tab")
	if m.selected != 1 {
		t.Errorf("expected selection 1, got %d", m.selected)
	}
	press("tab")
	if m.selected != 0 {
		t.Errorf("expected selection to wrap, got %d", m.selected)
	}

	press("t")
	if m.theme.Name != "abyss" {
		t.Errorf("expected abyss, got %s", m.theme.Name)
	}

	follow := m.camera.Follow
	press("f")
	if m.camera.Follow == follow {
		t.Error("expected follow toggled")
	}

	press("?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("expected help overlay")
	}
}

func TestPicker(t *testing.T) {
	entries := []Entry{{Name: "pollywog", Bio: "a tadpole"}, {Name: "serpent", Bio: "a snake"}}
	var built []string
	factory := func(name string) (*palamander.Palamander, error) {
		built = append(built, name)
		return newTestTank(t, name).Pals()[0], nil
	}

	var m tea.Model = newPicker(entries, factory, Options{Interval: 50})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if !strings.Contains(m.View(), "serpent") {
		t.Error("expected creature list")
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected live viewer to start ticking")
	}
	if len(built) != 1 || built[0] != "serpent" {
		t.Errorf("expected [serpent], got %v", built)
	}
	if m.(picker).state != stateTank {
		t.Error("expected tank view")
	}
}
