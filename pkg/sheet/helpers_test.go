package sheet

import (
	"testing"

	"github.com/go-drift/sheet/pkg/gestures"
	"github.com/go-drift/sheet/pkg/graphics"
)

// Geometry used across tests: a 400x800 container with 100/300 heights
// puts the minimized top at 700 and the maximized top at 500.
var testBounds = graphics.Size{Width: 400, Height: 800}

const (
	testMinTop = 700.0
	testMaxTop = 500.0
)

type fakeContent struct {
	frame   graphics.Rect
	offset  graphics.Offset
	height  float64
	removed int

	listeners map[int]func(float64)
	nextID    int
}

func newFakeContent(height float64) *fakeContent {
	return &fakeContent{height: height, listeners: make(map[int]func(float64))}
}

func (f *fakeContent) Frame() graphics.Rect { return f.frame }

func (f *fakeContent) SetFrame(r graphics.Rect) { f.frame = r }

func (f *fakeContent) ContentOffset() graphics.Offset { return f.offset }

func (f *fakeContent) SetContentOffset(o graphics.Offset) { f.offset = o }

func (f *fakeContent) ContentHeight() float64 { return f.height }

func (f *fakeContent) AddContentSizeListener(fn func(float64)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		delete(f.listeners, id)
		f.removed++
	}
}

func (f *fakeContent) setHeight(h float64) {
	f.height = h
	for _, fn := range f.listeners {
		fn(h)
	}
}

type fakePan struct {
	state       gestures.PanState
	translation graphics.Offset
	velocity    graphics.Offset
}

func (p *fakePan) State() gestures.PanState { return p.state }

func (p *fakePan) Translation() graphics.Offset { return p.translation }

func (p *fakePan) SetTranslation(t graphics.Offset) { p.translation = t }

func (p *fakePan) Velocity() graphics.Offset { return p.velocity }

func changed(dy float64) *fakePan {
	return &fakePan{state: gestures.PanChanged, translation: graphics.Offset{Y: dy}}
}

func ended(vy float64) *fakePan {
	return endedWith(gestures.PanEnded, vy)
}

func endedWith(s gestures.PanState, vy float64) *fakePan {
	return &fakePan{state: s, velocity: graphics.Offset{Y: vy}}
}

// manualAnimator records requests and completes them on demand.
type manualAnimator struct {
	calls int
	to    graphics.Rect
	apply func(graphics.Rect)
	done  func()
}

func (m *manualAnimator) Animate(_, to graphics.Rect, apply func(graphics.Rect), done func()) {
	m.calls++
	m.to, m.apply, m.done = to, apply, done
}

func (m *manualAnimator) finish() {
	if m.done == nil {
		return
	}
	apply, done := m.apply, m.done
	m.apply, m.done = nil, nil
	apply(m.to)
	done()
}

type event struct {
	kind  string
	state DisplayState
}

func recordCallbacks(events *[]event) Callbacks {
	return Callbacks{
		WillDisplay: func(_ *Controller, s DisplayState) { *events = append(*events, event{"will", s}) },
		DidDisplay:  func(_ *Controller, s DisplayState) { *events = append(*events, event{"did", s}) },
	}
}

// newTestController builds a laid-out controller with immediate animation.
func newTestController(t *testing.T, content ContentRegion, opts ...Option) *Controller {
	t.Helper()
	base := []Option{WithAnimator(ImmediateAnimator{}), WithBounds(testBounds)}
	c, err := New(content, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}
