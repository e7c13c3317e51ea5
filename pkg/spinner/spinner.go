package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner renders a braille spinner with a message while a long operation
// (cloning, corpus scans) runs. Safe to Start/Stop from one goroutine.
type Spinner struct {
	frames   []string
	interval time.Duration
	message  string
	out      io.Writer
	active   bool
	mu       sync.Mutex
	done     chan struct{}
}

func New(message string) *Spinner {
	return &Spinner{
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 100 * time.Millisecond,
		message:  message,
		out:      os.Stdout,
	}
}

// SetOutput redirects spinner rendering, mainly for tests.
func (s *Spinner) SetOutput(w io.Writer) {
	s.mu.Lock()
	s.out = w
	s.mu.Unlock()
}

func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.out, "\r%s %s", s.frames[frame%len(s.frames)], s.message)
				s.mu.Unlock()
				frame++
			}
		}
	}()
}

func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.done)

	// Clear the spinner line before handing the terminal back.
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", len(s.message)+4)+"\r")
	s.mu.Unlock()
}

func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}
