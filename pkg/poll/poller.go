// Package poll refreshes bindings on an interval.
//
// Bindings pick up changes made outside the panel only when they are read.
// A [Poller] reads them periodically, either from its own loop ([Poller.Run])
// or from a host frame loop ([Poller.Start] plus [StepFrame]). Values are
// single-threaded, so goroutines that mutate bound data hand the mutation
// to the loop with [Poller.Dispatch]:
//
//	p := poll.New(pane, poll.WithInterval(100*time.Millisecond))
//	go func() {
//	    for reading := range sensor {
//	        p.Dispatch(func() { settings["temp"] = reading })
//	    }
//	}()
//	err := p.Run(ctx)
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the refresh interval of a Poller created without
// WithInterval.
const DefaultInterval = 200 * time.Millisecond

// Refresher is refreshed by a Poller. *pane.Pane implements it.
type Refresher interface {
	Refresh() error
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the refresh interval. Non-positive intervals refresh
// on every step.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithLogger sets the poller's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}

// Poller drives periodic refreshes of a Refresher.
type Poller struct {
	target   Refresher
	interval time.Duration
	logger   zerolog.Logger

	mu    sync.Mutex
	queue []func()
	wake  chan struct{}

	last time.Time
}

// New creates a Poller for target.
func New(target Refresher, opts ...Option) *Poller {
	p := &Poller{
		target:   target,
		interval: DefaultInterval,
		logger:   zerolog.Nop(),
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Interval returns the refresh interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Dispatch queues fn to run on the loop before the next refresh. It is
// safe to call from any goroutine.
func (p *Poller) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.queue = append(p.queue, fn)
	p.mu.Unlock()
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Poller) drain() {
	p.mu.Lock()
	callbacks := p.queue
	p.queue = nil
	p.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// Step runs dispatched callbacks, then refreshes the target if at least one
// interval has passed since the previous refresh. It reports whether the
// target was refreshed.
func (p *Poller) Step() (bool, error) {
	p.drain()
	now := Now()
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false, nil
	}
	return true, p.refresh(now)
}

func (p *Poller) refresh(now time.Time) error {
	p.last = now
	if err := p.target.Refresh(); err != nil {
		p.logger.Warn().Err(err).Msg("refresh failed")
		return err
	}
	p.logger.Trace().Time("at", now).Msg("refreshed")
	return nil
}

// Run refreshes the target every interval until ctx is done or a refresh
// fails. Dispatched callbacks run as soon as the loop is idle. Run returns
// nil when ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	p.logger.Debug().Dur("interval", interval).Msg("poller started")
	defer p.logger.Debug().Msg("poller stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
			p.drain()
		case <-t.C:
			p.drain()
			if err := p.refresh(Now()); err != nil {
				return err
			}
		}
	}
}
