package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Body   lipgloss.Color
	Accent lipgloss.Color
	Water  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Good   lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemeReef = Theme{
		Name:   "reef",
		Body:   lipgloss.Color("#e37b35"), // Nautilus orange
		Accent: lipgloss.Color("#3ed1e5"),
		Water:  lipgloss.Color("#001a33"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Good:   lipgloss.Color("#00ff88"),
		Warn:   lipgloss.Color("#ffcc00"),
	}

	ThemeAbyss = Theme{
		Name:   "abyss",
		Body:   lipgloss.Color("#a10eb4"),
		Accent: lipgloss.Color("#ff00ff"),
		Water:  lipgloss.Color("#0a0a0a"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Good:   lipgloss.Color("#00ff00"),
		Warn:   lipgloss.Color("#ff8800"),
	}

	ThemePond = Theme{
		Name:   "pond",
		Body:   lipgloss.Color("#5ec328"), // Frog green
		Accent: lipgloss.Color("#c7ca21"),
		Water:  lipgloss.Color("#001100"),
		Text:   lipgloss.Color("#d0ffd0"),
		Muted:  lipgloss.Color("#264804"),
		Good:   lipgloss.Color("#88ff88"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeTidepool = Theme{
		Name:   "tidepool",
		Body:   lipgloss.Color("#f096c8"), // Axolotl pink
		Accent: lipgloss.Color("#feca57"),
		Water:  lipgloss.Color("#2d1b2e"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Good:   lipgloss.Color("#5fd068"),
		Warn:   lipgloss.Color("#ffc048"),
	}

	ThemeInk = Theme{
		Name:   "ink",
		Body:   lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Water:  lipgloss.Color("#000000"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Good:   lipgloss.Color("#00ff00"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{
		ThemeReef,
		ThemeAbyss,
		ThemePond,
		ThemeTidepool,
		ThemeInk,
	}
)

// GetTheme returns a theme by name, falling back to reef.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeReef
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
