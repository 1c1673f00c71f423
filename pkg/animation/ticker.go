// Package animation provides the frame-driven animation primitives used for
// sheet transitions.
//
// An [AnimationController] runs a value between two numbers over a fixed
// duration, shaped by an easing curve such as [EaseOut]. A [Tween] maps that
// value onto something else, such as a frame ([TweenRect]). Nothing moves
// until the host steps a [Scheduler] once per frame; [StepTickers] steps the
// default one.
//
// Controllers and tickers are meant to be driven from the host's single UI
// loop. The scheduler's registry is locked so tickers may be started from
// callbacks that run during a step.
//
//	c := animation.NewAnimationController(250*time.Millisecond, animation.EaseOut)
//	frames := animation.TweenRect(from, to)
//	c.OnValue(func(t float64) {
//	    content.SetFrame(frames.At(t))
//	})
//	c.Run(0, 1)
//
//	// once per frame
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

// Scheduler owns a set of active tickers and advances them on Step.
type Scheduler struct {
	// Clock supplies the current time. Nil means the package clock.
	Clock Clock

	mu      sync.Mutex
	tickers map[*Ticker]struct{}
}

// NewScheduler returns an empty scheduler reading time from clock.
// A nil clock uses the package-level clock (see SetClock).
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		Clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// defaultScheduler is the scheduler used by StepTickers and by tickers
// created without an explicit scheduler.
var defaultScheduler = NewScheduler(nil)

// DefaultScheduler returns the package-level scheduler.
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

func (s *Scheduler) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return Now()
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	if s.tickers == nil {
		s.tickers = make(map[*Ticker]struct{})
	}
	s.tickers[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	delete(s.tickers, t)
	s.mu.Unlock()
}

// Step advances every active ticker once. Call it once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	active := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		active = append(active, t)
	}
	s.mu.Unlock()

	now := s.now()
	for _, t := range active {
		if t.isActive && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// Active returns the number of running tickers.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers)
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the timing primitive under [AnimationController].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback  func(elapsed time.Duration)
	scheduler *Scheduler
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker on the default scheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultScheduler.NewTicker(callback)
}

// NewTicker creates a ticker bound to s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback, scheduler: s}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.now().Sub(t.start)
}

// StepTickers advances all tickers on the default scheduler.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers returns true if the default scheduler has running tickers.
func HasActiveTickers() bool {
	return defaultScheduler.Active() > 0
}
