package sheet

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/graphics"
	"github.com/go-drift/sheet/pkg/scroll"
)

func TestNewRejectsNilContent(t *testing.T) {
	c, err := New(nil)
	if c != nil {
		t.Error("expected nil controller")
	}
	if !stderrors.Is(err, ErrNilContent) {
		t.Fatalf("err = %v, want ErrNilContent", err)
	}
	var se *errors.SheetError
	if !stderrors.As(err, &se) {
		t.Fatalf("err = %T, want *errors.SheetError", err)
	}
	if se.Kind != errors.KindInit || se.Op != "sheet.New" {
		t.Errorf("SheetError = %+v, want Op=sheet.New Kind=init", se)
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(newFakeContent(1000))
	if err != nil {
		t.Fatal(err)
	}
	if c.DisplayState() != Minimized {
		t.Errorf("DisplayState() = %v, want minimized", c.DisplayState())
	}
	if c.DefaultMinimizedHeight() != 100 || c.DefaultMaximizedHeight() != 300 {
		t.Errorf("default heights = %v/%v, want 100/300", c.DefaultMinimizedHeight(), c.DefaultMaximizedHeight())
	}
	if c.TriggerVelocity() != 1000 || c.TriggerDistance() != 10 {
		t.Errorf("thresholds = %v/%v, want 1000/10", c.TriggerVelocity(), c.TriggerDistance())
	}
	if _, ok := c.animator.(*TickerAnimator); !ok {
		t.Errorf("default animator = %T, want *TickerAnimator", c.animator)
	}
}

func TestSnapFramesInvariant(t *testing.T) {
	tests := []struct {
		name     string
		bounds   graphics.Size
		min, max float64
	}{
		{"typical", testBounds, 100, 300},
		{"zero bounds", graphics.Size{}, 100, 300},
		{"equal heights", testBounds, 200, 200},
		{"min above max", testBounds, 400, 150},
		{"zero heights", testBounds, 0, 0},
		{"negative min", testBounds, -50, 300},
		{"taller than container", graphics.Size{Width: 10, Height: 100}, 50, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minFrame, maxFrame := SnapFrames(tt.bounds, tt.min, tt.max)
			if minFrame.Top < maxFrame.Top {
				t.Errorf("minFrame.Top %v < maxFrame.Top %v", minFrame.Top, maxFrame.Top)
			}
			if minFrame.Height() != maxFrame.Height() {
				t.Errorf("frame heights differ: %v vs %v", minFrame.Height(), maxFrame.Height())
			}
			if minFrame.Width() != tt.bounds.Width {
				t.Errorf("width = %v, want %v", minFrame.Width(), tt.bounds.Width)
			}
		})
	}
}

func TestSnapFramesGeometry(t *testing.T) {
	minFrame, maxFrame := SnapFrames(testBounds, 100, 300)
	if minFrame != graphics.RectFromLTWH(0, 700, 400, 300) {
		t.Errorf("minFrame = %+v", minFrame)
	}
	if maxFrame != graphics.RectFromLTWH(0, 500, 400, 300) {
		t.Errorf("maxFrame = %+v", maxFrame)
	}
}

func TestLayoutPlacesContentAtStateFrame(t *testing.T) {
	content := newFakeContent(1000)
	c := newTestController(t, content)
	if content.frame != c.MinFrame() {
		t.Errorf("frame = %+v, want minFrame %+v", content.frame, c.MinFrame())
	}

	c.SetDisplayState(Maximized)
	c.SetBounds(graphics.Size{Width: 300, Height: 600})
	want := graphics.RectFromLTWH(0, 300, 300, 300)
	if content.frame != want {
		t.Errorf("frame = %+v, want %+v", content.frame, want)
	}
}

func TestDisplayMaxIdempotent(t *testing.T) {
	content := newFakeContent(1000)
	anim := &manualAnimator{}
	var events []event
	c := newTestController(t, content,
		WithAnimator(anim),
		WithInitialState(Maximized),
		WithCallbacks(recordCallbacks(&events)),
	)

	c.DisplayMax()
	if anim.calls != 0 || len(events) != 0 {
		t.Errorf("DisplayMax at maxFrame: animator calls=%d events=%v, want none", anim.calls, events)
	}
}

func TestDisplayMinIdempotent(t *testing.T) {
	content := newFakeContent(1000)
	anim := &manualAnimator{}
	var events []event
	c := newTestController(t, content, WithAnimator(anim), WithCallbacks(recordCallbacks(&events)))

	c.DisplayMin()
	if anim.calls != 0 || len(events) != 0 {
		t.Errorf("DisplayMin at minFrame: animator calls=%d events=%v, want none", anim.calls, events)
	}
}

func TestDisplayMaxCommitsOnCompletion(t *testing.T) {
	content := newFakeContent(1000)
	anim := &manualAnimator{}
	var events []event
	c := newTestController(t, content, WithAnimator(anim), WithCallbacks(recordCallbacks(&events)))

	c.DisplayMax()
	if len(events) != 1 || events[0] != (event{"will", Maximized}) {
		t.Fatalf("events = %v, want [will maximized]", events)
	}
	if c.DisplayState() != Minimized {
		t.Error("state must not change before the animation completes")
	}
	if anim.to != c.MaxFrame() {
		t.Errorf("animation target = %+v, want maxFrame", anim.to)
	}

	anim.finish()
	if c.DisplayState() != Maximized {
		t.Errorf("DisplayState() = %v, want maximized", c.DisplayState())
	}
	if content.frame != c.MaxFrame() {
		t.Errorf("frame = %+v, want maxFrame", content.frame)
	}
	if len(events) != 2 || events[1] != (event{"did", Maximized}) {
		t.Errorf("events = %v, want [will did] maximized", events)
	}
}

func TestLastDisplayCallWins(t *testing.T) {
	anim, clock, sched := newSteppedAnimator(100 * time.Millisecond)
	content := newFakeContent(1000)
	var events []event
	c := newTestController(t, content, WithAnimator(anim), WithCallbacks(recordCallbacks(&events)))

	c.DisplayMax()
	c.DisplayMin()
	for i := 0; i < 30; i++ {
		clock.Advance(16 * time.Millisecond)
		sched.Step()
	}

	if c.DisplayState() != Minimized {
		t.Errorf("DisplayState() = %v, want minimized", c.DisplayState())
	}
	if content.frame.Top != 700 {
		t.Errorf("frame top = %v, want 700", content.frame.Top)
	}
	want := []event{{"will", Maximized}, {"will", Minimized}, {"did", Minimized}}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
	if c.IsTransitioning() {
		t.Error("IsTransitioning() = true after completion")
	}
}

func TestDisplayMaxWhileMaximizingIsNoop(t *testing.T) {
	content := newFakeContent(1000)
	anim := &manualAnimator{}
	var events []event
	c := newTestController(t, content, WithAnimator(anim), WithCallbacks(recordCallbacks(&events)))

	c.DisplayMax()
	if !c.IsTransitioning() {
		t.Fatal("IsTransitioning() = false while animating")
	}
	c.DisplayMax()
	if anim.calls != 1 || len(events) != 1 {
		t.Errorf("animator calls = %d events = %v, want one request", anim.calls, events)
	}

	anim.finish()
	if c.DisplayState() != Maximized || c.IsTransitioning() {
		t.Errorf("DisplayState() = %v transitioning = %v, want maximized and idle",
			c.DisplayState(), c.IsTransitioning())
	}
	if len(events) != 2 || events[1] != (event{"did", Maximized}) {
		t.Errorf("events = %v, want will then did maximized", events)
	}
}

func TestCallbacksAreOptional(t *testing.T) {
	content := newFakeContent(1000)
	called := false
	c := newTestController(t, content, WithCallbacks(Callbacks{
		DidDisplay: func(*Controller, DisplayState) { called = true },
	}))
	c.DisplayMax()
	if !called {
		t.Error("DidDisplay should fire when WillDisplay is nil")
	}

	c.SetCallbacks(Callbacks{})
	c.DisplayMin()
	if c.DisplayState() != Minimized {
		t.Errorf("DisplayState() = %v, want minimized", c.DisplayState())
	}
}

func TestCallbackPanicIsRecovered(t *testing.T) {
	var reported *errors.SheetError
	old := errors.SetHandler(&callbackRecorder{fn: func(err *errors.SheetError) { reported = err }})
	defer errors.SetHandler(old)

	content := newFakeContent(1000)
	c := newTestController(t, content, WithCallbacks(Callbacks{
		DidDisplay: func(*Controller, DisplayState) { panic("observer bug") },
	}))
	c.DisplayMax()

	if c.DisplayState() != Maximized {
		t.Errorf("DisplayState() = %v, want maximized despite observer panic", c.DisplayState())
	}
	if reported == nil || reported.Op != "sheet.DidDisplay" || reported.Kind != errors.KindCallback {
		t.Fatalf("reported = %+v, want a callback error from sheet.DidDisplay", reported)
	}
	var pe *errors.PanicError
	if !stderrors.As(reported, &pe) || pe.Value != "observer bug" {
		t.Errorf("wrapped panic = %+v, want value %q", pe, "observer bug")
	}
}

func TestSetDefaultHeightsResetEffective(t *testing.T) {
	content := newFakeContent(1000)
	c := newTestController(t, content)
	content.setHeight(50)
	if c.MinimizedHeight() != 50 || c.MaximizedHeight() != 50 {
		t.Fatalf("effective = %v/%v, want 50/50", c.MinimizedHeight(), c.MaximizedHeight())
	}

	c.SetDefaultMinimizedHeight(120)
	c.SetDefaultMaximizedHeight(420)
	if c.MinimizedHeight() != 120 || c.MaximizedHeight() != 420 {
		t.Errorf("effective = %v/%v, want 120/420", c.MinimizedHeight(), c.MaximizedHeight())
	}

	c.SetDefaultMinimizedHeight(-5)
	if c.DefaultMinimizedHeight() != 0 {
		t.Errorf("negative height clamped to %v, want 0", c.DefaultMinimizedHeight())
	}
	c.SetTriggerVelocity(-1)
	c.SetTriggerDistance(-1)
	if c.TriggerVelocity() != 0 || c.TriggerDistance() != 0 {
		t.Error("negative thresholds should clamp to zero")
	}
}

func TestHitTestPassesThroughAboveSheet(t *testing.T) {
	content := newFakeContent(1000)
	c := newTestController(t, content)

	tests := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{699, false},
		{700, true},
		{790, true},
	}
	for _, tt := range tests {
		p := graphics.Offset{X: 20, Y: tt.y}
		if got := c.HitTest(p); got != tt.want {
			t.Errorf("HitTest(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
		if c.Contains(p) != c.HitTest(p) {
			t.Errorf("Contains and HitTest disagree at y=%v", tt.y)
		}
	}

	c.DisplayMax()
	if !c.HitTest(graphics.Offset{Y: 600}) {
		t.Error("y=600 should hit a maximized sheet")
	}
}

func TestDetachRemovesObserversOnce(t *testing.T) {
	content := newFakeContent(1000)
	c := newTestController(t, content)

	c.Detach()
	c.Detach()
	if content.removed != 1 {
		t.Errorf("remove calls = %d, want 1", content.removed)
	}
	if !c.Detached() {
		t.Error("Detached() = false after Detach")
	}

	content.setHeight(20)
	if c.MinimizedHeight() != 100 {
		t.Errorf("detached controller reacted to size change: minimized=%v", c.MinimizedHeight())
	}
}

func TestDetachScrollViewListeners(t *testing.T) {
	view := scroll.NewScrollView(1000)
	c := newTestController(t, view)
	if view.ListenerCount() != 2 {
		t.Fatalf("ListenerCount() = %d, want size and offset listeners", view.ListenerCount())
	}
	c.Detach()
	if view.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d after Detach, want 0", view.ListenerCount())
	}
}

type callbackRecorder struct {
	fn func(*errors.SheetError)
}

func (r *callbackRecorder) HandleError(err *errors.SheetError) { r.fn(err) }

func (r *callbackRecorder) HandlePanic(*errors.PanicError) {}
