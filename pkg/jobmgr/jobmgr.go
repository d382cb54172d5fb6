// Package jobmgr runs named background loops with cancellation and
// lifecycle reporting. The bot uses it for its long-running tasks (the
// posting loop), so shutdown and "what is running" queries go through one
// place.
package jobmgr

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StatusReporter receives lifecycle events for jobs, e.g. "running:selfie",
// "error:selfie:connection reset", "done:selfie".
type StatusReporter func(string)

type job struct {
	name   string
	cancel context.CancelFunc
}

// Manager starts, stops and tracks jobs. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*job
	Reporter StatusReporter
}

// NewManager creates a Manager. The reporter callback may be nil.
func NewManager(reporter StatusReporter) *Manager {
	return &Manager{
		jobs:     make(map[string]*job),
		Reporter: reporter,
	}
}

// StartAsync runs a job in its own goroutine and returns immediately. A job
// with a name that is already running is rejected. Jobs deregister
// themselves on completion.
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.mu.Unlock()
		cancel()
		return fmt.Errorf("job '%s' is already running", name)
	}
	m.jobs[name] = &job{name: name, cancel: cancel}
	m.mu.Unlock()

	go func() {
		m.report("running:" + name)

		if err := runner(ctx); err != nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.mu.Lock()
		delete(m.jobs, name)
		m.mu.Unlock()
	}()

	return nil
}

// Stop cancels a running job by name.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}
	j.cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, j := range m.jobs {
		j.cancel()
		delete(m.jobs, name)
	}
}

// Status returns a human-readable summary of active jobs.
func (m *Manager) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.jobs) == 0 {
		return "No jobs are running."
	}
	names := make([]string, 0, len(m.jobs))
	for name := range m.jobs {
		names = append(names, name)
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(names, ", "))
}

func (m *Manager) report(s string) {
	if m.Reporter != nil {
		m.Reporter(s)
	}
}
