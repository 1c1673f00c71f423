package sheet

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-drift/sheet/pkg/graphics"
)

// TweenAnimator animates frames with a gween tween stepped explicitly by the
// host. Call Step once per frame with the time since the previous frame.
type TweenAnimator struct {
	Duration time.Duration
	// Ease defaults to ease.OutQuad.
	Ease ease.TweenFunc

	tween    *gween.Tween
	from, to graphics.Rect
	apply    func(graphics.Rect)
	done     func()
}

// NewTweenAnimator returns an ease-out tween animator of the given duration.
func NewTweenAnimator(d time.Duration) *TweenAnimator {
	return &TweenAnimator{Duration: d, Ease: ease.OutQuad}
}

// Animate starts a transition, replacing any running one.
func (a *TweenAnimator) Animate(from, to graphics.Rect, apply func(graphics.Rect), done func()) {
	a.tween = nil
	if a.Duration <= 0 {
		apply(to)
		done()
		return
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	a.from, a.to = from, to
	a.apply, a.done = apply, done
	a.tween = gween.New(0, 1, float32(a.Duration.Seconds()), fn)
}

// Step advances the running transition by dt.
func (a *TweenAnimator) Step(dt time.Duration) {
	if a.tween == nil {
		return
	}
	progress, finished := a.tween.Update(float32(dt.Seconds()))
	if !finished {
		a.apply(graphics.LerpRect(a.from, a.to, float64(progress)))
		return
	}

	apply, done, to := a.apply, a.done, a.to
	a.tween, a.apply, a.done = nil, nil, nil
	apply(to)
	done()
}

// IsAnimating reports whether a transition is in flight.
func (a *TweenAnimator) IsAnimating() bool {
	return a.tween != nil
}
