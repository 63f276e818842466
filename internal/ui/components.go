package ui

import "fmt"

// EventBadge renders an event name as a bracketed badge
// Example: "[pr-merged]"
func EventBadge(name string) string {
	return badgeStyle.Render(fmt.Sprintf("[%s]", name))
}

// SuccessLine renders a confirmation line with a check mark
func SuccessLine(msg string) string {
	return fmt.Sprintf("%s %s", successStyle.Render("✓"), textStyle.Render(msg))
}

// ErrorLine renders a failure line with a cross mark
func ErrorLine(msg string) string {
	return fmt.Sprintf("%s %s", errorStyle.Render("✗"), textStyle.Render(msg))
}
