package poll

import (
	"slices"
	"sync"
	"time"
)

var (
	now = time.Now

	frameMu sync.Mutex
	started []*Poller
)

// SetClock replaces the time source used for refresh throttling and returns
// the previous one, so tests can restore it during cleanup. A nil clock
// restores the wall clock.
func SetClock(clock func() time.Time) func() time.Time {
	frameMu.Lock()
	defer frameMu.Unlock()
	prev := now
	if clock == nil {
		clock = time.Now
	}
	now = clock
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	frameMu.Lock()
	clock := now
	frameMu.Unlock()
	return clock()
}

// StepFrame steps every started Poller in start order and returns how many
// were stepped. Frame-driven hosts call it once per frame and may stop
// scheduling frames while it returns 0.
func StepFrame() int {
	frameMu.Lock()
	pollers := slices.Clone(started)
	frameMu.Unlock()

	for _, p := range pollers {
		// Refresh errors are logged by the poller.
		_, _ = p.Step()
	}
	return len(pollers)
}

// Start registers the poller with the frame loop so each StepFrame call
// steps it. Starting a started poller does nothing.
func (p *Poller) Start() {
	frameMu.Lock()
	defer frameMu.Unlock()
	if !slices.Contains(started, p) {
		started = append(started, p)
	}
}

// Stop removes the poller from the frame loop.
func (p *Poller) Stop() {
	frameMu.Lock()
	defer frameMu.Unlock()
	started = slices.DeleteFunc(started, func(q *Poller) bool { return q == p })
}
