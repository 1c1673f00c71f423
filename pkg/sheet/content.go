package sheet

import (
	"github.com/go-drift/sheet/pkg/gestures"
	"github.com/go-drift/sheet/pkg/graphics"
)

// ContentRegion is the scrollable content embedded in a sheet. The
// controller owns its frame; the region owns its scroll contents.
//
// AddContentSizeListener must invoke the listener synchronously, on the
// caller's execution context, whenever ContentHeight changes.
type ContentRegion interface {
	Frame() graphics.Rect
	SetFrame(graphics.Rect)
	ContentOffset() graphics.Offset
	SetContentOffset(graphics.Offset)
	ContentHeight() float64
	AddContentSizeListener(func(height float64)) (remove func())
}

// offsetObservable is implemented by content regions that report offset
// changes. The controller uses it to keep the content pinned at the top
// while the sheet is not fully open.
type offsetObservable interface {
	AddContentOffsetListener(func(graphics.Offset)) (remove func())
}

// PanGesture is a pan sample as seen by the controller.
// [gestures.PanRecognizer] implements it.
type PanGesture interface {
	State() gestures.PanState
	// Translation is the movement since the last SetTranslation.
	Translation() graphics.Offset
	SetTranslation(graphics.Offset)
	// Velocity is in points per second; negative Y is upward.
	Velocity() graphics.Offset
}

// Callbacks receive transition notifications. Either field may be nil.
type Callbacks struct {
	// WillDisplay fires before a transition to state starts.
	WillDisplay func(c *Controller, state DisplayState)
	// DidDisplay fires after the transition to state has completed and
	// the state has been committed.
	DidDisplay func(c *Controller, state DisplayState)
}
