package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles a page needs to render itself. Two themes exist,
// matching the settings record's light/dark toggle.
type Theme struct {
	Name     string
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabFocus lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Warning  lipgloss.Style
	Subtle   lipgloss.Style
	Border   lipgloss.Color
	Selected lipgloss.Style
}

// ThemeFor returns the theme for a settings theme name. Anything that is
// not "dark" gets the light theme.
func ThemeFor(name string) Theme {
	if name == "dark" {
		return darkTheme()
	}
	return lightTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return lightTheme()
	}
	return darkTheme()
}

func lightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#005F87")),
		Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 1),
		TabFocus: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#005F87")).Underline(true).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		Value:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#00875F")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#D70000")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AF8700")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		Border:   lipgloss.Color("#D0D0D0"),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("#D7E4F0")),
	}
}

func darkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7")),
		Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Padding(0, 1),
		TabFocus: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7")).Underline(true).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B2B2B2")),
		Value:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7AF")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F5F")),
		Border:   lipgloss.Color("#444444"),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("#303F50")),
	}
}
