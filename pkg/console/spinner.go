package console

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner shows progress while a batch of files is being linted. It is a
// no-op when stdout is not a terminal, so redirected runs stay clean.
type Spinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	s := &Spinner{enabled: isatty.IsTerminal(os.Stdout.Fd())}
	if s.enabled {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.spinner.Suffix = " " + message
		_ = s.spinner.Color("cyan")
	}
	return s
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if s.enabled && s.spinner != nil {
		s.spinner.Start()
	}
}

// Stop stops the spinner animation.
func (s *Spinner) Stop() {
	if s.enabled && s.spinner != nil {
		s.spinner.Stop()
	}
}

// UpdateMessage swaps the message shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	if s.enabled && s.spinner != nil {
		s.spinner.Suffix = " " + message
	}
}
