package sheet

import (
	"time"

	"github.com/go-drift/sheet/pkg/animation"
	"github.com/go-drift/sheet/pkg/graphics"
)

// Animator moves the content frame from one rect to another over time.
//
// Animate calls apply for every intermediate frame and must finish by
// applying to exactly, then calling done once. Starting a new animation
// replaces any running one; the replaced animation's done never fires.
// Callers see this as a WillDisplay with no matching DidDisplay: only the
// last requested state commits and reports DidDisplay.
type Animator interface {
	Animate(from, to graphics.Rect, apply func(graphics.Rect), done func())
}

// ImmediateAnimator jumps straight to the target frame and completes
// synchronously. Useful for headless hosts and tests.
type ImmediateAnimator struct{}

// Animate applies to and calls done.
func (ImmediateAnimator) Animate(_, to graphics.Rect, apply func(graphics.Rect), done func()) {
	apply(to)
	done()
}

// TickerAnimator animates frames with an [animation.AnimationController].
// Frames advance when the host steps the scheduler once per frame
// (animation.StepTickers for the default scheduler).
type TickerAnimator struct {
	Duration time.Duration
	// Curve defaults to animation.EaseOut.
	Curve func(float64) float64
	// Scheduler defaults to the animation package's default scheduler.
	Scheduler *animation.Scheduler

	controller *animation.AnimationController
}

// NewTickerAnimator returns an ease-out animator of the given duration.
func NewTickerAnimator(d time.Duration) *TickerAnimator {
	return &TickerAnimator{Duration: d, Curve: animation.EaseOut}
}

// Animate starts a transition, stopping any running one.
func (a *TickerAnimator) Animate(from, to graphics.Rect, apply func(graphics.Rect), done func()) {
	a.Stop()
	if a.Duration <= 0 {
		apply(to)
		done()
		return
	}

	curve := a.Curve
	if curve == nil {
		curve = animation.EaseOut
	}
	controller := animation.NewAnimationController(a.Duration, curve)
	controller.Scheduler = a.Scheduler

	frames := animation.TweenRect(from, to)
	controller.OnValue(func(t float64) {
		if t < 1 {
			apply(frames.At(t))
		}
	})
	controller.OnStatus(func(status animation.Status) {
		if status != animation.StatusCompleted {
			return
		}
		// Land on the target exactly; the tween may drift by rounding.
		apply(to)
		if a.controller == controller {
			a.controller = nil
		}
		done()
	})
	a.controller = controller
	controller.Run(0, 1)
}

// Stop abandons the running animation, leaving the frame where it is.
func (a *TickerAnimator) Stop() {
	if a.controller != nil {
		a.controller.Dispose()
		a.controller = nil
	}
}

// IsAnimating reports whether a transition is in flight.
func (a *TickerAnimator) IsAnimating() bool {
	return a.controller != nil
}
