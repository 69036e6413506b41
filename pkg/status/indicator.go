package status

import (
	"fmt"
	"io"
	"sync"
)

// Status represents the state of the pattern currently being measured
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusDone
	StatusFailed
)

// Indicator manages the progress line in the terminal
type Indicator struct {
	mu      sync.Mutex
	status  Status
	pattern string
	enabled bool
	writer  io.Writer
}

// NewIndicator creates a new status indicator
func NewIndicator(writer io.Writer, enabled bool) *Indicator {
	return &Indicator{
		status:  StatusIdle,
		writer:  writer,
		enabled: enabled,
	}
}

// SetStatus updates the current status for pattern
func (i *Indicator) SetStatus(status Status, pattern string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.status = status
	i.pattern = pattern

	// Best effort - don't fail if we can't update the display
	_ = i.draw()
}

// draw renders the status indicator
func (i *Indicator) draw() error {
	if !i.enabled || i.writer == nil {
		return nil
	}

	statusText := i.getStatusText()
	if statusText == "" {
		return nil
	}

	// \0337 - DECSC: save cursor position and attributes
	// \033[999;1H - move to the last line, column 1
	// \033[2K - clear the line
	// \0338 - DECRC: restore cursor
	sequence := fmt.Sprintf("\0337\033[999;1H\033[2K%s\0338", statusText)

	if _, err := fmt.Fprint(i.writer, sequence); err != nil {
		return err
	}

	return nil
}

// getStatusText returns the appropriate status text with color
func (i *Indicator) getStatusText() string {
	switch i.status {
	case StatusRunning:
		return fmt.Sprintf("\033[33m⟳ %s\033[0m", i.pattern) // Yellow spinning arrow
	case StatusDone:
		return fmt.Sprintf("\033[32m✓ %s\033[0m", i.pattern) // Green checkmark
	case StatusFailed:
		return fmt.Sprintf("\033[31m✗ %s\033[0m", i.pattern) // Red X
	}
	return ""
}

// Clear removes the status indicator
func (i *Indicator) Clear() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.enabled || i.writer == nil {
		return nil
	}

	i.status = StatusIdle
	sequence := "\0337\033[999;1H\033[2K\0338"
	if _, err := fmt.Fprint(i.writer, sequence); err != nil {
		return err
	}

	return nil
}
