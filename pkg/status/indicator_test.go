package status

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNewIndicator(t *testing.T) {
	buf := &bytes.Buffer{}
	indicator := NewIndicator(buf, true)

	if indicator.status != StatusIdle {
		t.Errorf("expected initial status to be StatusIdle, got %v", indicator.status)
	}

	if indicator.writer != buf {
		t.Errorf("expected writer to be set")
	}

	if !indicator.enabled {
		t.Errorf("expected indicator to be enabled")
	}
}

func TestIndicatorSetStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         Status
		expectedOutput string
		enabled        bool
	}{
		{
			name:           "running status",
			status:         StatusRunning,
			expectedOutput: "⟳ email",
			enabled:        true,
		},
		{
			name:           "done status",
			status:         StatusDone,
			expectedOutput: "✓ email",
			enabled:        true,
		},
		{
			name:           "failed status",
			status:         StatusFailed,
			expectedOutput: "✗ email",
			enabled:        true,
		},
		{
			name:           "idle status shows nothing",
			status:         StatusIdle,
			expectedOutput: "",
			enabled:        true,
		},
		{
			name:           "disabled indicator shows nothing",
			status:         StatusDone,
			expectedOutput: "",
			enabled:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			indicator := NewIndicator(buf, tt.enabled)

			indicator.SetStatus(tt.status, "email")

			output := buf.String()

			if tt.expectedOutput != "" {
				if !strings.Contains(output, tt.expectedOutput) {
					t.Errorf("expected output to contain %q, got %q", tt.expectedOutput, output)
				}
				if !strings.HasPrefix(output, "\0337") || !strings.HasSuffix(output, "\0338") {
					t.Errorf("expected output to save and restore the cursor, got %q", output)
				}
			} else if output != "" {
				t.Errorf("expected no output, got %q", output)
			}
		})
	}
}

func TestIndicatorClear(t *testing.T) {
	buf := &bytes.Buffer{}
	indicator := NewIndicator(buf, true)
	indicator.SetStatus(StatusRunning, "ip")
	buf.Reset()

	if err := indicator.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[2K") {
		t.Errorf("expected clear line sequence, got %q", buf.String())
	}
	if indicator.status != StatusIdle {
		t.Errorf("expected status to be reset to StatusIdle, got %v", indicator.status)
	}

	disabled := NewIndicator(&bytes.Buffer{}, false)
	if err := disabled.Clear(); err != nil {
		t.Errorf("unexpected error from disabled indicator: %v", err)
	}
}

func TestIndicatorConcurrentUpdates(t *testing.T) {
	buf := &bytes.Buffer{}
	indicator := NewIndicator(buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			indicator.SetStatus(StatusRunning, "char_class")
			indicator.SetStatus(StatusDone, "char_class")
		}()
	}
	wg.Wait()

	if indicator.status != StatusDone {
		t.Errorf("expected final status StatusDone, got %v", indicator.status)
	}
}
