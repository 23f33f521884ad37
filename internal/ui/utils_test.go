package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/josephgoksu/sitelog/models"
	"github.com/stretchr/testify/assert"
)

func TestActivityPanel(t *testing.T) {
	a := models.Activity{
		ID:          "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Date:        "01/06/2024",
		Description: "Poured foundation",
		Responsible: "Ana Silva",
		Status:      models.StatusCompleted,
		Notes:       "none",
		Cost:        1500,
	}

	out := ActivityPanel(2, a)

	for _, want := range []string{"#2 Poured foundation (1b4e28ba)", "Ana Silva", "1500.00", "Completed", "none"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPageHeader(t *testing.T) {
	var buf bytes.Buffer
	RenderPageHeader(&buf, "Schedule", "plan.csv")

	assert.Contains(t, buf.String(), "Schedule")
	assert.Contains(t, buf.String(), "plan.csv")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestSpinner_NonTerminalRunsInline(t *testing.T) {
	var buf bytes.Buffer
	sp := NewSpinner(&buf, "Generating report")

	called := false
	err := sp.Run(func() error {
		called = true
		return errors.New("boom")
	})

	assert.True(t, called)
	assert.EqualError(t, err, "boom")
	assert.Empty(t, buf.String(), "nothing is drawn on a non-terminal")
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
