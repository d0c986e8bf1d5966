// Package ui contains the two chat surfaces: the interactive bubbletea TUI
// and a line-oriented REPL. Both drive the same session view-model.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the TUI.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Accent:     lipgloss.Color("#4db6ac"),
		Muted:      lipgloss.Color("#6b7a90"),
		Border:     lipgloss.Color("#2a3850"),
		Error:      lipgloss.Color("#e53935"),
		IsDark:     true,
	}
}

func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101f38"),
		Accent:     lipgloss.Color("#00796b"),
		Muted:      lipgloss.Color("#8a93a0"),
		Border:     lipgloss.Color("#dce0e5"),
		Error:      lipgloss.Color("#c62828"),
		IsDark:     false,
	}
}

// Styles are the prebuilt lipgloss styles used by the TUI.
type Styles struct {
	Theme       Theme
	Header      lipgloss.Style
	User        lipgloss.Style
	Bot         lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelLabel  lipgloss.Style
	Panel       lipgloss.Style
	Input       lipgloss.Style
	Spinner     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:       t,
		Header:      lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		User:        lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		Bot:         lipgloss.NewStyle().Foreground(t.Foreground),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Error:       lipgloss.NewStyle().Foreground(t.Error),
		Status:      lipgloss.NewStyle().Foreground(t.Muted),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		PanelLabel:  lipgloss.NewStyle().Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// StylesFor maps a config theme name to Styles; anything but "light" is dark.
func StylesFor(name string) Styles {
	if name == "light" {
		return NewStyles(LightTheme())
	}
	return NewStyles(DarkTheme())
}
