// Package sheet implements a draggable bottom sheet that snaps between a
// minimized and a maximized state.
//
// A [Controller] owns the frame of an embedded scrollable [ContentRegion].
// Pan samples decide, one at a time, whether a drag moves the sheet or is
// left to the content's own scrolling. When the gesture ends the controller
// picks a snap state from the drag distance and release velocity, asks its
// [Animator] to move the frame there, and commits the state when the
// animation completes.
//
//	view := scroll.NewScrollView(480)
//	c, err := sheet.New(view,
//	    sheet.WithHeights(100, 300),
//	    sheet.WithCallbacks(sheet.Callbacks{
//	        DidDisplay: func(c *sheet.Controller, s sheet.DisplayState) { ... },
//	    }),
//	)
//	if err != nil { ... }
//	c.SetBounds(graphics.Size{Width: 390, Height: 844})
//	recognizer := gestures.NewPanRecognizer(func(p *gestures.PanRecognizer) {
//	    c.HandlePan(p)
//	})
//
// # Threading
//
// The controller has no internal locking. Every public method, the pan
// gesture callbacks, animator completions and the content region's size
// notifications must all run on the same execution context, normally the
// host's UI loop. Ordering comes from that loop.
//
// # Overlapping transitions
//
// A transition requested while another is running replaces it. The
// replaced animation never commits, so the last request wins. Observers
// receive WillDisplay for every request but DidDisplay only for the one
// that completed. A request for the state already being animated to is
// ignored.
package sheet
