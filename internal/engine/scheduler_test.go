package engine

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anarkade/deliaxe-core/internal/profile"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// slowProcessor records every key it runs and blocks until released.
type slowProcessor struct {
	mu      sync.Mutex
	ran     []string
	started chan struct{}
	release chan struct{}
}

func newSlowProcessor() *slowProcessor {
	return &slowProcessor{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (p *slowProcessor) Process(req Request) (*Result, error) {
	key := req.Key()
	p.started <- struct{}{}
	<-p.release
	p.mu.Lock()
	p.ran = append(p.ran, key)
	p.mu.Unlock()
	return &Result{Key: key, Raster: req.Raster.Clone()}, nil
}

func (p *slowProcessor) runs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.ran...)
}

// distinctRequest builds a request whose key differs by pixel content.
func distinctRequest(n int) Request {
	r := raster.New(2, 2)
	r.Pix[0] = byte(n)
	r.Pix[1] = byte(n >> 8)
	return Request{Raster: r, Profile: profile.Profile{Console: profile.GameBoy}}
}

func TestScheduler_TakeLatest(t *testing.T) {
	proc := newSlowProcessor()
	var mu sync.Mutex
	var delivered []string
	s := NewScheduler(proc, time.Millisecond, func(o Outcome) {
		mu.Lock()
		delivered = append(delivered, o.Key)
		mu.Unlock()
	})
	defer s.Close()

	first := distinctRequest(0)
	require.NoError(t, s.Submit(first))
	<-proc.started // first run is in flight

	// A burst of distinct requests while running: only the last survives.
	var last Request
	for i := 1; i <= 8; i++ {
		last = distinctRequest(i)
		require.NoError(t, s.Submit(last))
	}

	close(proc.release)
	s.Wait()

	runs := proc.runs()
	require.Len(t, runs, 2, "exactly one follow-up run after the in-flight one")
	assert.Equal(t, first.Key(), runs[0])
	assert.Equal(t, last.Key(), runs[1], "follow-up must correspond to the last-submitted key")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, runs, delivered, "outcomes delivered in run order")
}

func TestScheduler_SkipsRepeatedKey(t *testing.T) {
	proc := newSlowProcessor()
	close(proc.release) // never block
	s := NewScheduler(proc, time.Millisecond, nil)
	defer s.Close()

	req := distinctRequest(1)
	require.NoError(t, s.Submit(req))
	s.Wait()
	require.NoError(t, s.Submit(req))
	s.Wait()

	assert.Len(t, proc.runs(), 1, "a request matching the last completed key is a no-op")
}

func TestScheduler_PendingSameKeyDropped(t *testing.T) {
	proc := newSlowProcessor()
	s := NewScheduler(proc, time.Millisecond, nil)
	defer s.Close()

	req := distinctRequest(1)
	require.NoError(t, s.Submit(req))
	<-proc.started
	require.NoError(t, s.Submit(req)) // same key while in flight

	close(proc.release)
	s.Wait()
	assert.Len(t, proc.runs(), 1, "pending request equal to the completing key must be discarded")
}

func TestScheduler_ManualOverride(t *testing.T) {
	proc := newSlowProcessor()
	close(proc.release)
	s := NewScheduler(proc, time.Millisecond, nil)
	defer s.Close()

	s.Override().Set()
	err := s.Submit(distinctRequest(1))
	assert.ErrorIs(t, err, ErrSuppressed)
	assert.Empty(t, proc.runs())

	s.Override().Clear()
	require.NoError(t, s.Submit(distinctRequest(1)))
	s.Wait()
	assert.Len(t, proc.runs(), 1)
}

func TestScheduler_RejectsInvalidRaster(t *testing.T) {
	s := NewScheduler(newSlowProcessor(), time.Millisecond, nil)
	defer s.Close()
	err := s.Submit(Request{Raster: &raster.Raster{}})
	assert.ErrorIs(t, err, raster.ErrEmpty)
}

func TestScheduler_SubmitAfterClose(t *testing.T) {
	s := NewScheduler(newSlowProcessor(), time.Millisecond, nil)
	s.Close()
	assert.ErrorIs(t, s.Submit(distinctRequest(1)), ErrClosed)
}

// failingProcessor fails every run; the last-completed key must not advance.
type failingProcessor struct{ calls int }

func (p *failingProcessor) Process(req Request) (*Result, error) {
	p.calls++
	return nil, fmt.Errorf("boom %d", p.calls)
}

func TestScheduler_FailedRunDoesNotAdvanceKey(t *testing.T) {
	proc := &failingProcessor{}
	var mu sync.Mutex
	var errs []error
	s := NewScheduler(proc, time.Millisecond, func(o Outcome) {
		mu.Lock()
		errs = append(errs, o.Err)
		mu.Unlock()
	})
	defer s.Close()

	req := distinctRequest(1)
	require.NoError(t, s.Submit(req))
	s.Wait()
	require.NoError(t, s.Submit(req)) // same key again: must re-run, not skip
	s.Wait()

	assert.Equal(t, 2, proc.calls, "a failed run must not satisfy later identical requests")
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, errs, 2)
	assert.Error(t, errs[0])
}

func TestSchedulerWithEngine_EndToEnd(t *testing.T) {
	e := New(8)
	var mu sync.Mutex
	var outcomes []Outcome
	s := NewScheduler(e, time.Millisecond, func(o Outcome) {
		mu.Lock()
		outcomes = append(outcomes, o)
		mu.Unlock()
	})
	defer s.Close()

	req := distinctRequest(42)
	require.NoError(t, s.Submit(req))
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)
	assert.Len(t, outcomes[0].Result.Palette, 4)
}
