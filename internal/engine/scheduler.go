package engine

import (
	"errors"
	"sync"
	"time"
)

// DefaultDebounce is the pause between a completed run and the follow-up run
// for a superseding request. Long enough to coalesce slider-drag bursts,
// short enough to feel immediate.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("engine: scheduler closed")

// ErrSuppressed is returned by Submit while manual override is active.
var ErrSuppressed = errors.New("engine: automatic processing suppressed by manual override")

// Outcome is one delivered scheduler result.
type Outcome struct {
	Result *Result
	Err    error
	Key    string
}

// Processor runs one request to completion. *Engine is the production
// implementation.
type Processor interface {
	Process(Request) (*Result, error)
}

// ManualOverride suppresses automatic reprocessing after a manual edit. It is
// explicit per-scheduler state rather than an ambient flag, so independent
// editing sessions can coexist.
type ManualOverride struct {
	mu     sync.Mutex
	active bool
}

// Set activates the override.
func (m *ManualOverride) Set() {
	m.mu.Lock()
	m.active = true
	m.mu.Unlock()
}

// Clear deactivates the override.
func (m *ManualOverride) Clear() {
	m.mu.Lock()
	m.active = false
	m.mu.Unlock()
}

// Active reports the current state.
func (m *ManualOverride) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Scheduler serializes processing with take-latest semantics: while a run is
// in flight, newer requests replace each other and only the most recent one
// executes once the current run completes, after a debounce pause. Superseded
// intermediate requests are discarded, never queued.
//
// Each Submit carries a complete Request record; the scheduler holds no
// captured state beyond the single pending record.
type Scheduler struct {
	proc     Processor
	debounce time.Duration
	deliver  func(Outcome)
	override ManualOverride

	mu      sync.Mutex
	cond    *sync.Cond
	running bool
	pending *Request
	lastKey string
	timer   *time.Timer
	closed  bool
}

// NewScheduler creates a scheduler delivering outcomes through the given
// callback. The callback is never invoked concurrently with itself: runs are
// strictly sequential. A non-positive debounce uses DefaultDebounce.
func NewScheduler(p Processor, debounce time.Duration, deliver func(Outcome)) *Scheduler {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	s := &Scheduler{proc: p, debounce: debounce, deliver: deliver}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Override exposes the scheduler's manual-override state.
func (s *Scheduler) Override() *ManualOverride {
	return &s.override
}

// Submit hands a request to the scheduler. Invalid rasters are rejected
// before any processing. A request whose key matches the last completed run
// is a no-op. Otherwise the request either starts immediately or becomes the
// pending (latest) request of an in-flight run.
func (s *Scheduler) Submit(req Request) error {
	if err := req.Raster.Validate(); err != nil {
		return err
	}
	if s.override.Active() {
		return ErrSuppressed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.running {
		r := req
		s.pending = &r
		return nil
	}
	if req.Key() == s.lastKey {
		return nil
	}
	s.running = true
	go s.run(req)
	return nil
}

func (s *Scheduler) run(req Request) {
	key := req.Key()
	res, err := s.proc.Process(req)
	if s.deliver != nil {
		s.deliver(Outcome{Result: res, Err: err, Key: key})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.lastKey = key
	}
	p := s.pending
	s.pending = nil

	if p != nil && !s.closed && p.Key() != key {
		// Latest request supersedes the run that just finished; go again
		// after the debounce pause, staying "running" in between.
		next := *p
		s.timer = time.AfterFunc(s.debounce, func() {
			s.mu.Lock()
			if s.closed {
				s.running = false
				s.cond.Broadcast()
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
			s.run(next)
		})
		return
	}
	s.running = false
	s.cond.Broadcast()
}

// Wait blocks until the scheduler is idle (no run in flight, no pending
// request). Intended for tests and batch callers.
func (s *Scheduler) Wait() {
	s.mu.Lock()
	for s.running {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// Close stops the scheduler. An in-flight run finishes and is delivered; a
// pending request is dropped.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.pending = nil
	if s.timer != nil && s.timer.Stop() {
		// Debounced follow-up never starts; the scheduler is idle now.
		s.running = false
		s.cond.Broadcast()
	}
	s.mu.Unlock()
}
