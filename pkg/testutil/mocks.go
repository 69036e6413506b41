package testutil

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/interfaces"
)

// ErrMockCompile is returned by MockEngine for sources marked as broken
var ErrMockCompile = errors.New("mock compile failure")

// MockEngine is a mock implementation of engine.Engine for testing
type MockEngine struct {
	mu       sync.Mutex
	counts   map[string]int
	broken   map[string]bool
	compiled []string
}

// NewMockEngine creates a mock engine that reports counts[source] matches
// for each compiled source
func NewMockEngine(counts map[string]int) *MockEngine {
	if counts == nil {
		counts = map[string]int{}
	}
	return &MockEngine{
		counts: counts,
		broken: map[string]bool{},
	}
}

// Ensure MockEngine implements engine.Engine
var _ engine.Engine = (*MockEngine)(nil)

// Name implements engine.Engine
func (m *MockEngine) Name() string { return "mock" }

// Label implements engine.Engine
func (m *MockEngine) Label() string { return "Mock engine" }

// SetBroken makes Compile fail for source
func (m *MockEngine) SetBroken(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broken[source] = true
}

// Compile implements engine.Engine
func (m *MockEngine) Compile(source string) (engine.Matcher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compiled = append(m.compiled, source)
	if m.broken[source] {
		return nil, fmt.Errorf("%w: %s", ErrMockCompile, source)
	}
	return mockMatcher{count: m.counts[source]}, nil
}

// GetCompiled returns the sources passed to Compile, in order
func (m *MockEngine) GetCompiled() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.compiled))
	copy(result, m.compiled)
	return result
}

type mockMatcher struct {
	count int
}

func (m mockMatcher) Count([]byte) (int, error) {
	return m.count, nil
}

// FakeClock is a deterministic interfaces.Clock. Every Since call reports
// Step elapsed.
type FakeClock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewFakeClock creates a fake clock reporting step per measurement
func NewFakeClock(step time.Duration) *FakeClock {
	return &FakeClock{
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Step: step,
	}
}

// Ensure FakeClock implements interfaces.Clock
var _ interfaces.Clock = (*FakeClock)(nil)

// Now implements interfaces.Clock
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since implements interfaces.Clock
func (c *FakeClock) Since(time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.Step)
	return c.Step
}

// MockProgressReporter records progress events as "start:name",
// "done:name" and "fail:name"
type MockProgressReporter struct {
	mu     sync.Mutex
	events []string
}

// NewMockProgressReporter creates a new mock progress reporter
func NewMockProgressReporter() *MockProgressReporter {
	return &MockProgressReporter{}
}

// Ensure MockProgressReporter implements interfaces.ProgressReporter
var _ interfaces.ProgressReporter = (*MockProgressReporter)(nil)

func (m *MockProgressReporter) record(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

// ReportStart implements interfaces.ProgressReporter
func (m *MockProgressReporter) ReportStart(name string) { m.record("start:" + name) }

// ReportDone implements interfaces.ProgressReporter
func (m *MockProgressReporter) ReportDone(name string) { m.record("done:" + name) }

// ReportFailure implements interfaces.ProgressReporter
func (m *MockProgressReporter) ReportFailure(name string) { m.record("fail:" + name) }

// GetEvents returns a copy of the recorded events
func (m *MockProgressReporter) GetEvents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.events))
	copy(result, m.events)
	return result
}
