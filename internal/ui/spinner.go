package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	spinnerFrames = []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●"}
	spinnerFPS    = time.Second / 7
)

// Spinner is an animated waiting indicator shown while the API call is in
// flight. It writes to stderr from its own goroutine so it never mixes with
// the answer on stdout.
type Spinner struct {
	message string
	done    chan struct{}
	stopped chan struct{}
	started bool
	once    sync.Once
}

// NewSpinner creates a spinner with the given status message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. The spinner runs until Stop is called.
func (s *Spinner) Start() {
	s.started = true
	go s.run()
}

// Stop halts the animation and clears the spinner line. It blocks until the
// render loop has exited, so no frame can land after output has started.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		if s.started {
			<-s.stopped
		}
	})
}

func (s *Spinner) run() {
	defer close(s.stopped)

	theme := GetTheme()

	frameStyle := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Italic(true)

	ticker := time.NewTicker(spinnerFPS)
	defer ticker.Stop()

	var frame int
	for {
		select {
		case <-s.done:
			fmt.Fprint(os.Stderr, "\r\033[K")
			return
		case <-ticker.C:
			f := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r %s %s",
				frameStyle.Render(f),
				messageStyle.Render(s.message))
			frame++
		}
	}
}
