package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows indeterminate progress on a terminal. On any other writer
// it does nothing.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner writing to w with the given message.
func NewSpinner(w io.Writer, message string) *Spinner {
	if !IsTerminal(w) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("fgHiYellow")
	return &Spinner{s: s}
}

// Start starts the animation.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop stops the animation and clears the line.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}

// Run shows the spinner while fn executes.
func (sp *Spinner) Run(fn func() error) error {
	sp.Start()
	defer sp.Stop()
	return fn()
}
