package schedule

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/zenflow/internal/model"
)

const defaultTickInterval = time.Minute

// Engine owns the recurring once-per-minute evaluation. It holds a snapshot of
// the routine and event collections, re-evaluates them on each tick, and
// delivers non-empty results on its output channel. The snapshot is replaced
// wholesale by SetSchedule, so a tick always sees a consistent pair.
type Engine struct {
	mu       sync.Mutex
	routines []model.Routine
	events   []model.Event
	out      chan TickResult
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	interval time.Duration
	clock    func() time.Time
	dropped  uint64
}

type Option func(*Engine)

// WithInterval overrides the tick cadence. Anything other than the one-minute
// default weakens the exact-match firing guarantee; it exists for tests.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

func NewEngine(bufferSize int, opts ...Option) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	e := &Engine{
		out:      make(chan TickResult, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		interval: defaultTickInterval,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) C() <-chan TickResult {
	return e.out
}

// SetSchedule replaces the evaluated collections. Safe to call before Start
// and from any goroutine afterwards.
func (e *Engine) SetSchedule(routines []model.Routine, events []model.Event) {
	rs := make([]model.Routine, len(routines))
	copy(rs, routines)
	es := make([]model.Event, len(events))
	copy(es, events)

	e.mu.Lock()
	e.routines = rs
	e.events = es
	e.mu.Unlock()
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop cancels the tick loop and waits for it to drain. Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			res := e.evaluate()
			if res.Empty() {
				continue
			}
			select {
			case e.out <- res:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			return
		}
	}
}

func (e *Engine) evaluate() TickResult {
	e.mu.Lock()
	routines := e.routines
	events := e.events
	e.mu.Unlock()
	return EvaluateTick(routines, events, e.clock())
}
