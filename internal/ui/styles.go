package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan   = lipgloss.Color("#00FFFF")
	ColorGreen  = lipgloss.Color("#00FF00")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorRed    = lipgloss.Color("#FF0000")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	badgeStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(ColorWhite)
)
