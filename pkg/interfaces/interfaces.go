// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "time"

// ProgressReporter is told about each pattern as the runner works through it.
type ProgressReporter interface {
	ReportStart(name string)
	ReportDone(name string)
	ReportFailure(name string)
}

// Clock supplies monotonic timestamps for measurements.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the runtime's monotonic clock.
type SystemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns time.Since(t).
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }
