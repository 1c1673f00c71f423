package sheet

import (
	stderrors "errors"
	"math"
	"time"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/graphics"
)

// Defaults used when no option overrides them.
const (
	DefaultMinimizedHeight   = 100.0
	DefaultMaximizedHeight   = 300.0
	DefaultTriggerVelocity   = 1000.0
	DefaultTriggerDistance   = 10.0
	DefaultAnimationDuration = 250 * time.Millisecond
)

// ErrNilContent is returned by New when no content region is supplied.
var ErrNilContent = stderrors.New("sheet: content region is required")

// Controller is the bottom sheet state machine. See the package
// documentation for the threading contract.
type Controller struct {
	content   ContentRegion
	animator  Animator
	callbacks Callbacks
	bounds    graphics.Size
	state     DisplayState

	defaultMinimizedHeight float64
	defaultMaximizedHeight float64
	minimizedHeight        float64
	maximizedHeight        float64

	triggerVelocity float64
	triggerDistance float64
	duration        time.Duration

	// pending is the transition the animator is running, if any.
	pending *pendingTransition

	removeSizeListener   func()
	removeOffsetListener func()
	detached             bool
}

type pendingTransition struct {
	state DisplayState
	frame graphics.Rect
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithHeights sets the default minimized and maximized heights.
func WithHeights(minimized, maximized float64) Option {
	return func(c *Controller) {
		c.SetDefaultMinimizedHeight(minimized)
		c.SetDefaultMaximizedHeight(maximized)
	}
}

// WithTriggerVelocity sets the fling velocity, in points per second, that
// switches state regardless of distance.
func WithTriggerVelocity(v float64) Option {
	return func(c *Controller) { c.SetTriggerVelocity(v) }
}

// WithTriggerDistance sets the drag distance, in points, past which the
// release direction decides the state.
func WithTriggerDistance(d float64) Option {
	return func(c *Controller) { c.SetTriggerDistance(d) }
}

// WithInitialState sets the state the sheet starts in.
func WithInitialState(s DisplayState) Option {
	return func(c *Controller) { c.state = s }
}

// WithAnimationDuration sets the duration of the default animator.
// It has no effect when WithAnimator is also given.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Controller) { c.duration = d }
}

// WithAnimator replaces the default TickerAnimator.
func WithAnimator(a Animator) Option {
	return func(c *Controller) { c.animator = a }
}

// WithCallbacks registers transition notifications.
func WithCallbacks(cb Callbacks) Option {
	return func(c *Controller) { c.callbacks = cb }
}

// WithBounds sets the container bounds and lays the content out.
func WithBounds(size graphics.Size) Option {
	return func(c *Controller) { c.bounds = size }
}

// New creates a controller for content and subscribes to its content-size
// changes. Call Detach when the sheet leaves its host.
func New(content ContentRegion, opts ...Option) (*Controller, error) {
	if content == nil {
		return nil, &errors.SheetError{Op: "sheet.New", Kind: errors.KindInit, Err: ErrNilContent}
	}
	c := &Controller{
		content:                content,
		defaultMinimizedHeight: DefaultMinimizedHeight,
		defaultMaximizedHeight: DefaultMaximizedHeight,
		minimizedHeight:        DefaultMinimizedHeight,
		maximizedHeight:        DefaultMaximizedHeight,
		triggerVelocity:        DefaultTriggerVelocity,
		triggerDistance:        DefaultTriggerDistance,
		duration:               DefaultAnimationDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = NewTickerAnimator(c.duration)
	}

	c.removeSizeListener = content.AddContentSizeListener(c.contentSizeChanged)
	if observable, ok := content.(offsetObservable); ok {
		c.removeOffsetListener = observable.AddContentOffsetListener(c.contentOffsetChanged)
	}
	if c.bounds != (graphics.Size{}) {
		c.Layout()
	}
	return c, nil
}

// Detach removes the controller's observers from the content region. It is
// safe to call more than once; only the first call has an effect.
func (c *Controller) Detach() {
	if c.detached {
		return
	}
	c.detached = true
	if c.removeSizeListener != nil {
		c.removeSizeListener()
		c.removeSizeListener = nil
	}
	if c.removeOffsetListener != nil {
		c.removeOffsetListener()
		c.removeOffsetListener = nil
	}
}

// Detached reports whether Detach has been called.
func (c *Controller) Detached() bool {
	return c.detached
}

// Content returns the content region.
func (c *Controller) Content() ContentRegion {
	return c.content
}

// Bounds returns the container bounds.
func (c *Controller) Bounds() graphics.Size {
	return c.bounds
}

// SetBounds updates the container bounds and runs a layout pass.
func (c *Controller) SetBounds(size graphics.Size) {
	c.bounds = size
	c.Layout()
}

// Layout places the content at the snap frame of the current state
// without animating.
func (c *Controller) Layout() {
	c.content.SetFrame(c.frameFor(c.state))
}

// MinFrame returns the minimized snap frame for the current bounds and heights.
func (c *Controller) MinFrame() graphics.Rect {
	minFrame, _ := SnapFrames(c.bounds, c.minimizedHeight, c.maximizedHeight)
	return minFrame
}

// MaxFrame returns the maximized snap frame for the current bounds and heights.
func (c *Controller) MaxFrame() graphics.Rect {
	_, maxFrame := SnapFrames(c.bounds, c.minimizedHeight, c.maximizedHeight)
	return maxFrame
}

func (c *Controller) frameFor(s DisplayState) graphics.Rect {
	if s == Maximized {
		return c.MaxFrame()
	}
	return c.MinFrame()
}

// DisplayState returns the committed state, or the provisional state
// during a drag.
func (c *Controller) DisplayState() DisplayState {
	return c.state
}

// SetDisplayState overrides the state without moving the sheet.
// Normal flow changes the state only through DisplayMax and DisplayMin.
func (c *Controller) SetDisplayState(s DisplayState) {
	c.state = s
}

// DefaultMinimizedHeight returns the configured minimized height.
func (c *Controller) DefaultMinimizedHeight() float64 { return c.defaultMinimizedHeight }

// DefaultMaximizedHeight returns the configured maximized height.
func (c *Controller) DefaultMaximizedHeight() float64 { return c.defaultMaximizedHeight }

// MinimizedHeight returns the effective minimized height.
func (c *Controller) MinimizedHeight() float64 { return c.minimizedHeight }

// MaximizedHeight returns the effective maximized height.
func (c *Controller) MaximizedHeight() float64 { return c.maximizedHeight }

// SetDefaultMinimizedHeight sets the minimized height and resets the
// effective height to it until the next content-size change.
func (c *Controller) SetDefaultMinimizedHeight(h float64) {
	h = math.Max(0, h)
	c.defaultMinimizedHeight = h
	c.minimizedHeight = h
}

// SetDefaultMaximizedHeight sets the maximized height and resets the
// effective height to it until the next content-size change.
func (c *Controller) SetDefaultMaximizedHeight(h float64) {
	h = math.Max(0, h)
	c.defaultMaximizedHeight = h
	c.maximizedHeight = h
}

// TriggerVelocity returns the fling velocity threshold.
func (c *Controller) TriggerVelocity() float64 { return c.triggerVelocity }

// SetTriggerVelocity sets the fling velocity threshold. Negative values
// are clamped to zero.
func (c *Controller) SetTriggerVelocity(v float64) { c.triggerVelocity = math.Max(0, v) }

// TriggerDistance returns the drag distance threshold.
func (c *Controller) TriggerDistance() float64 { return c.triggerDistance }

// SetTriggerDistance sets the drag distance threshold. Negative values
// are clamped to zero.
func (c *Controller) SetTriggerDistance(d float64) { c.triggerDistance = math.Max(0, d) }

// SetCallbacks replaces the transition notifications.
func (c *Controller) SetCallbacks(cb Callbacks) {
	c.callbacks = cb
}

// DisplayMax animates the sheet to the maximized frame. It does nothing
// when the content is already there or already on its way there.
func (c *Controller) DisplayMax() {
	c.transition(Maximized)
}

// DisplayMin animates the sheet to the minimized frame. It does nothing
// when the content is already there or already on its way there.
func (c *Controller) DisplayMin() {
	c.transition(Minimized)
}

// IsTransitioning reports whether a transition has started and not yet
// committed.
func (c *Controller) IsTransitioning() bool {
	return c.pending != nil
}

// targetState is the state the sheet is settling into: the pending
// transition's target while one runs, the committed state otherwise.
func (c *Controller) targetState() DisplayState {
	if c.pending != nil {
		return c.pending.state
	}
	return c.state
}

func (c *Controller) transition(target DisplayState) {
	to := c.frameFor(target)
	from := c.content.Frame()
	heading := from
	if c.pending != nil {
		heading = c.pending.frame
	}
	if heading.Equal(to) {
		return
	}

	c.notifyWillDisplay(target)
	p := &pendingTransition{state: target, frame: to}
	c.pending = p
	c.animator.Animate(from, to, c.content.SetFrame, func() {
		if c.pending == p {
			c.pending = nil
		}
		c.state = target
		c.notifyDidDisplay(target)
	})
}

func (c *Controller) notifyWillDisplay(s DisplayState) {
	if c.callbacks.WillDisplay == nil {
		return
	}
	defer errors.RecoverCallback("sheet.WillDisplay")
	c.callbacks.WillDisplay(c, s)
}

func (c *Controller) notifyDidDisplay(s DisplayState) {
	if c.callbacks.DidDisplay == nil {
		return
	}
	defer errors.RecoverCallback("sheet.DidDisplay")
	c.callbacks.DidDisplay(c, s)
}

// HitTest reports whether p, in container coordinates, belongs to the
// sheet. Points above the content's top edge pass through.
func (c *Controller) HitTest(p graphics.Offset) bool {
	return p.Y >= c.content.Frame().Top
}

// Contains is an alias of HitTest.
func (c *Controller) Contains(p graphics.Offset) bool {
	return c.HitTest(p)
}
