package animation

import (
	"fmt"
	"time"
)

// Status is the run state of an AnimationController.
type Status int

const (
	// StatusIdle means the controller has never run.
	StatusIdle Status = iota
	// StatusRunning means a run is in progress.
	StatusRunning
	// StatusCompleted means the last run reached its target.
	StatusCompleted
	// StatusStopped means the last run was interrupted.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// AnimationController moves a value from one number to another over
// Duration, shaped by Curve. The value advances only when its scheduler
// steps.
//
// Starting a run while another is in progress interrupts the first: it
// reports StatusStopped and never StatusCompleted.
type AnimationController struct {
	Duration time.Duration
	// Curve shapes progress. Nil means LinearCurve.
	Curve func(float64) float64
	// Scheduler drives the controller. Nil means the default scheduler.
	Scheduler *Scheduler

	value    float64
	from, to float64
	status   Status
	ticker   *Ticker
	onValue  listeners[float64]
	onStatus listeners[Status]
}

// NewAnimationController returns an idle controller.
func NewAnimationController(d time.Duration, curve func(float64) float64) *AnimationController {
	return &AnimationController{Duration: d, Curve: curve}
}

// Run animates from from to to. A non-positive Duration completes before
// Run returns.
func (c *AnimationController) Run(from, to float64) {
	c.Stop()
	c.from, c.to = from, to
	c.value = from
	c.setStatus(StatusRunning)

	if c.Duration <= 0 {
		c.complete()
		return
	}
	s := c.Scheduler
	if s == nil {
		s = defaultScheduler
	}
	c.ticker = s.NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	t := float64(elapsed) / float64(c.Duration)
	if t >= 1 {
		c.complete()
		return
	}
	curve := c.Curve
	if curve == nil {
		curve = LinearCurve
	}
	c.value = LerpFloat64(c.from, c.to, curve(t))
	c.onValue.notify(c.value)
}

func (c *AnimationController) complete() {
	c.stopTicker()
	c.value = c.to
	c.onValue.notify(c.value)
	c.setStatus(StatusCompleted)
}

// Stop interrupts a run in progress, leaving the value where it is.
func (c *AnimationController) Stop() {
	if c.ticker == nil {
		return
	}
	c.stopTicker()
	c.setStatus(StatusStopped)
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Value returns the current value.
func (c *AnimationController) Value() float64 {
	return c.value
}

// Status returns the run state.
func (c *AnimationController) Status() Status {
	return c.status
}

// IsRunning reports whether a run is in progress.
func (c *AnimationController) IsRunning() bool {
	return c.ticker != nil
}

// OnValue registers fn to receive every new value. The returned func
// unregisters it.
func (c *AnimationController) OnValue(fn func(float64)) (remove func()) {
	return c.onValue.add(fn)
}

// OnStatus registers fn to receive status changes. The returned func
// unregisters it.
func (c *AnimationController) OnStatus(fn func(Status)) (remove func()) {
	return c.onStatus.add(fn)
}

func (c *AnimationController) setStatus(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	c.onStatus.notify(s)
}

// Dispose drops all listeners and stops the run silently.
func (c *AnimationController) Dispose() {
	c.onValue.clear()
	c.onStatus.clear()
	c.Stop()
}
