package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/sitelog/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := StyleSuccess.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")
}

func TestStatusBadge(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	assert.Contains(t, StatusBadge(models.StatusCompleted), "Completed")
	assert.Contains(t, StatusBadge(models.StatusInProgress), "In Progress")
	assert.NotEqual(t, StatusBadge(models.StatusCompleted), StatusBadge(models.StatusDelayed))
}

func TestIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := Icon("X", StyleError)
	assert.Contains(t, out, "X")
	assert.NotEqual(t, "X", out)
}
