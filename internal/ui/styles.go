package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/sitelog/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("214") // Safety orange
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("220") // Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorInfo      = lipgloss.Color("75")  // Blue

	// Base Styles
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().Foreground(ColorSecondary).Width(13)
)

var statusStyles = map[models.Status]lipgloss.Style{
	models.StatusInProgress: StyleInfo,
	models.StatusCompleted:  StyleSuccess,
	models.StatusDelayed:    StyleWarning,
}

// StatusBadge renders the English status name in its color.
func StatusBadge(s models.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		style = StyleSubtle
	}
	return style.Render(s.Label())
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
