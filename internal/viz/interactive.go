package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/palamander/internal/palamander"
)

// Entry is one creature offered by the picker.
type Entry struct {
	Name string
	Bio  string
}

// Factory builds the creature for a picked entry.
type Factory func(name string) (*palamander.Palamander, error)

const (
	stateMenu = iota
	stateTank
)

type picker struct {
	state   int
	cursor  int
	entries []Entry
	chosen  map[int]bool
	factory Factory
	opts    Options
	styles  Styles
	theme   Theme
	err     error
	live    Model
}

func newPicker(entries []Entry, factory Factory, opts Options) picker {
	theme := GetTheme(opts.Theme)
	return picker{
		entries: entries,
		chosen:  make(map[int]bool),
		factory: factory,
		opts:    opts,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateTank {
		live, cmd := m.live.Update(msg)
		m.live = live.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case " ", "x":
		m.chosen[m.cursor] = !m.chosen[m.cursor]
	case "enter":
		return m.start()
	}
	return m, nil
}

// start fills the tank with the marked creatures, or the one under the
// cursor when none are marked.
func (m picker) start() (tea.Model, tea.Cmd) {
	var names []string
	for i, e := range m.entries {
		if m.chosen[i] {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 && len(m.entries) > 0 {
		names = []string{m.entries[m.cursor].Name}
	}

	tank := palamander.NewTank()
	for _, name := range names {
		p, err := m.factory(name)
		if err != nil {
			m.err = err
			return m, nil
		}
		tank.Add(p)
	}

	m.state = stateTank
	m.live = NewModel(tank, m.opts)
	return m, m.live.Init()
}

func (m picker) View() string {
	if m.state == stateTank {
		return m.live.View()
	}

	s := m.styles
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("PALAMANDER", m.theme.Body, m.theme.Accent) + "\n")
	b.WriteString("    " + s.Subtle.Render("procedural creatures") + "\n")
	b.WriteString("    " + s.Separator(26) + "\n\n")

	cursorStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	for i, e := range m.entries {
		mark := " "
		if m.chosen[i] {
			mark = "•"
		}
		bio := e.Bio
		if len(bio) > 40 {
			bio = bio[:37] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s%s %s  %s\n",
				cursorStyle.Render("▸"), mark, s.Active.Render(fmt.Sprintf("%-12s", e.Name)), s.Value.Render(bio)))
		} else {
			b.WriteString(fmt.Sprintf("     %s %s  %s\n",
				mark, s.Subtle.Render(fmt.Sprintf("%-12s", e.Name)), s.Subtle.Render(bio)))
		}
	}

	if m.err != nil {
		b.WriteString("\n    " + s.Paused.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + s.KeyHint.Render("j/k navigate  space mark  enter swim  q quit") + "\n")
	return b.String()
}

// RunInteractive lets the user pick creatures, then shows them in the tank.
func RunInteractive(entries []Entry, factory Factory, opts Options) error {
	_, err := tea.NewProgram(newPicker(entries, factory, opts), tea.WithAltScreen()).Run()
	return err
}
