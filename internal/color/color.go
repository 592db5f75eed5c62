// Package color applies the terminal theme before any style is rendered.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize sets whether lipgloss resolves adaptive colors for a dark or a
// light background.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Apply configures the renderer for a theme name ("auto", "dark" or
// "light"). With "auto" the terminal's own background is kept. NO_COLOR
// strips all colors.
func Apply(theme string) {
	switch theme {
	case "dark":
		Initialize(true)
	case "light":
		Initialize(false)
	}
	if noColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
