package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner displays an animation on a single line until stopped
type spinner struct {
	done chan struct{}
	wg   sync.WaitGroup
}

func startSpinner(w io.Writer, text string, interval time.Duration) *spinner {
	s := &spinner{done: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		i := 0
		for {
			fmt.Fprintf(w, "\r%s %s", spinnerFrames[i], text)
			i = (i + 1) % len(spinnerFrames)
			select {
			case <-s.done:
				// Clear the spinner line
				fmt.Fprint(w, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// stop ends the animation and waits until the line is cleared
func (s *spinner) stop() {
	close(s.done)
	s.wg.Wait()
}
