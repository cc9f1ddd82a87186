package repl

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atinylittleshell/memsh/internal/config"
)

// Theme holds the styles used to draw the transcript and the prompt.
type Theme struct {
	Prompt lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Accent lipgloss.Style
}

// LightTheme suits terminals with a light background.
func LightTheme() Theme {
	return Theme{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// DarkTheme suits terminals with a dark background.
func DarkTheme() Theme {
	return Theme{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// ThemeFor returns the theme named in the configuration, light by default.
func ThemeFor(name string) Theme {
	if name == config.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}
