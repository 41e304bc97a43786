package ui

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

// isDarkBg caches the terminal background detection result at package init.
var isDarkBg = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

// AdaptiveColor picks between a light-mode and dark-mode hex color string
// based on the detected terminal background.
func AdaptiveColor(light, dark string) color.Color {
	if isDarkBg {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

// Theme defines the color scheme for the CLI output, based on the
// Catppuccin Latte (light) and Mocha (dark) palettes.
type Theme struct {
	Primary   color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color
	Text      color.Color
	Muted     color.Color
	VeryMuted color.Color
}

var currentTheme = DefaultTheme()

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the built-in Catppuccin-based theme.
func DefaultTheme() Theme {
	return Theme{
		Primary:   AdaptiveColor("#8839ef", "#cba6f7"), // Mauve
		Success:   AdaptiveColor("#40a02b", "#a6e3a1"), // Green
		Warning:   AdaptiveColor("#df8e1d", "#f9e2af"), // Yellow
		Error:     AdaptiveColor("#d20f39", "#f38ba8"), // Red
		Info:      AdaptiveColor("#1e66f5", "#89b4fa"), // Blue
		Text:      AdaptiveColor("#4c4f69", "#cdd6f4"), // Text
		Muted:     AdaptiveColor("#6c6f85", "#a6adc8"), // Subtext 0
		VeryMuted: AdaptiveColor("#9ca0b0", "#6c7086"), // Overlay 0
	}
}

// StyleHeader creates the style for section headers (Answer, Citations,
// Tokens) using the theme's primary color.
func StyleHeader(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
}

// StyleMuted creates the style for de-emphasized text such as citation URLs.
func StyleMuted(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Muted)
}

// TerminalWidth returns the usable output width, accounting for the block
// padding, with a fallback when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	// 2 characters of padding on each side.
	return width - 4
}

// renderContentBlock renders content with a colored left border, in the
// style used for chat blocks throughout the CLI.
func renderContentBlock(content string, width int, borderColor color.Color) string {
	theme := GetTheme()

	style := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingTop(1).
		PaddingBottom(1).
		Foreground(theme.Text).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderLeftForeground(borderColor).
		Width(width - 1)

	return style.Render(content) + "\n"
}
