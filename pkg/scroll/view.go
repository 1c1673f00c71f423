// Package scroll provides ScrollView, a headless scrollable content region.
//
// ScrollView tracks a frame in its parent's coordinates, a content offset and
// an intrinsic content height. Content-size and offset listeners are notified
// synchronously, from the caller's goroutine, whenever the value changes.
package scroll

import (
	"math"

	"github.com/go-drift/sheet/pkg/graphics"
)

// ScrollView is a scrollable region with a known content height.
// Not safe for concurrent use; drive it from the host's UI loop.
type ScrollView struct {
	frame         graphics.Rect
	offset        graphics.Offset
	contentHeight float64

	sizeListeners   map[int]func(float64)
	offsetListeners map[int]func(graphics.Offset)
	nextListenerID  int
}

// NewScrollView returns a view with the given intrinsic content height.
func NewScrollView(contentHeight float64) *ScrollView {
	return &ScrollView{contentHeight: math.Max(0, contentHeight)}
}

// Frame returns the view's frame in its parent's coordinates.
func (v *ScrollView) Frame() graphics.Rect {
	return v.frame
}

// SetFrame moves or resizes the view.
func (v *ScrollView) SetFrame(frame graphics.Rect) {
	v.frame = frame
}

// ContentOffset returns the current scroll offset.
func (v *ScrollView) ContentOffset() graphics.Offset {
	return v.offset
}

// SetContentOffset sets the scroll offset without clamping.
func (v *ScrollView) SetContentOffset(offset graphics.Offset) {
	if offset == v.offset {
		return
	}
	v.offset = offset
	for _, listener := range v.offsetListeners {
		listener(offset)
	}
}

// MaxScrollOffset returns the largest vertical offset that keeps content
// filling the frame.
func (v *ScrollView) MaxScrollOffset() float64 {
	return math.Max(0, v.contentHeight-v.frame.Height())
}

// ScrollBy scrolls the content by dy, clamped to [0, MaxScrollOffset].
// Scrolling never bounces past either end.
func (v *ScrollView) ScrollBy(dy float64) {
	y := math.Max(0, math.Min(v.offset.Y+dy, v.MaxScrollOffset()))
	v.SetContentOffset(graphics.Offset{X: v.offset.X, Y: y})
}

// ContentHeight returns the intrinsic height of the content.
func (v *ScrollView) ContentHeight() float64 {
	return v.contentHeight
}

// SetContentHeight updates the intrinsic content height and notifies
// content-size listeners when it changes. Negative heights become zero.
func (v *ScrollView) SetContentHeight(height float64) {
	height = math.Max(0, height)
	if height == v.contentHeight {
		return
	}
	v.contentHeight = height
	for _, listener := range v.sizeListeners {
		listener(height)
	}
}

// AddContentSizeListener registers a callback for content height changes.
// Returns an unsubscribe function.
func (v *ScrollView) AddContentSizeListener(listener func(float64)) func() {
	if listener == nil {
		return func() {}
	}
	if v.sizeListeners == nil {
		v.sizeListeners = make(map[int]func(float64))
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.sizeListeners[id] = listener
	return func() {
		delete(v.sizeListeners, id)
	}
}

// AddContentOffsetListener registers a callback for offset changes.
// Returns an unsubscribe function.
func (v *ScrollView) AddContentOffsetListener(listener func(graphics.Offset)) func() {
	if listener == nil {
		return func() {}
	}
	if v.offsetListeners == nil {
		v.offsetListeners = make(map[int]func(graphics.Offset))
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.offsetListeners[id] = listener
	return func() {
		delete(v.offsetListeners, id)
	}
}

// ListenerCount returns the number of registered listeners of both kinds.
func (v *ScrollView) ListenerCount() int {
	return len(v.sizeListeners) + len(v.offsetListeners)
}
