package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/models"
	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals.
// Prompts are skipped otherwise.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when unknown.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// RenderPageHeader writes a styled header line.
func RenderPageHeader(w io.Writer, title, subtitle string) {
	_, _ = fmt.Fprintln(w, StyleHeader.Render(title))
	if subtitle != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", StyleSubtle.Render(subtitle))
	}
}

// Panel represents a styled panel with optional title and content.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
	Width       int
}

// NewPanel creates a new panel with default styling.
func NewPanel(title, content string) *Panel {
	return &Panel{
		Title:       title,
		Content:     content,
		BorderColor: ColorSecondary,
	}
}

// WithBorderColor sets the border color and returns the panel.
func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

// Render returns the styled panel as a string.
func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)

	if p.Width > 0 {
		style = style.Width(p.Width)
	}

	content := p.Content
	if p.Title != "" {
		content = StylePrimary.Bold(true).Render(p.Title) + "\n" + p.Content
	}
	return style.Render(content)
}

// ActivityPanel renders every field of one activity.
func ActivityPanel(position int, a models.Activity) string {
	photo := a.PhotoPath
	if !a.HasPhoto() {
		photo = StyleSubtle.Render("none")
	}
	lines := []string{
		StyleLabel.Render("ID") + a.ID,
		StyleLabel.Render("Date") + a.Date,
		StyleLabel.Render("Responsible") + a.Responsible,
		StyleLabel.Render("Status") + StatusBadge(a.Status),
		StyleLabel.Render("Cost") + FormatCost(a.Cost),
		StyleLabel.Render("Notes") + a.Notes,
		StyleLabel.Render("Photo") + photo,
	}
	title := fmt.Sprintf("#%d %s (%s)", position, a.Description, util.ShortID(a.ID, 0))
	return NewPanel(title, strings.Join(lines, "\n")).Render()
}

// RenderErrorPanel renders a panel with error styling (red border).
func RenderErrorPanel(title, content string) string {
	return NewPanel(title, content).WithBorderColor(ColorError).Render()
}

// Truncate shortens s to maxLen cells, ending with an ellipsis when cut.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || lipgloss.Width(s) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxLen {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
