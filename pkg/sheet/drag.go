package sheet

import (
	"math"

	"github.com/go-drift/sheet/pkg/gestures"
	"github.com/go-drift/sheet/pkg/graphics"
)

// Thresholds decide when a released drag switches state.
type Thresholds struct {
	// Velocity is the fling speed in points per second that switches
	// state regardless of distance.
	Velocity float64
	// Distance is how far in points the sheet must travel from its
	// starting snap frame before the release direction decides.
	Distance float64
}

// SnapDecision is the outcome of a released drag.
type SnapDecision struct {
	Target DisplayState
	// ResetOffset is set when the content must be scrolled back to the top.
	ResetOffset bool
}

// DecideSnap picks the snap state for a drag released with the content top
// at top and vertical velocity vy. minTop and maxTop are the tops of the
// minimized and maximized frames. A fling beats distance; past the distance
// threshold the release direction wins; otherwise the sheet returns to state.
func DecideSnap(state DisplayState, top, minTop, maxTop, vy float64, th Thresholds) SnapDecision {
	if state == Minimized {
		if vy < -th.Velocity {
			return SnapDecision{Target: Maximized, ResetOffset: true}
		}
		if minTop-top > th.Distance {
			if vy < 0 {
				return SnapDecision{Target: Maximized, ResetOffset: true}
			}
			return SnapDecision{Target: Minimized}
		}
		return SnapDecision{Target: Minimized}
	}

	if vy > th.Velocity {
		return SnapDecision{Target: Minimized, ResetOffset: true}
	}
	if top-maxTop > th.Distance {
		if vy < 0 {
			return SnapDecision{Target: Maximized}
		}
		return SnapDecision{Target: Minimized}
	}
	return SnapDecision{Target: Maximized}
}

// HandlePan consumes a pan sample. Changed samples move the sheet or leave
// the drag to the content; ended, cancelled and failed samples snap.
func (c *Controller) HandlePan(g PanGesture) {
	switch g.State() {
	case gestures.PanChanged:
		c.dragChanged(g)
	case gestures.PanEnded, gestures.PanCancelled, gestures.PanFailed:
		c.dragEnded(g.Velocity())
	}
}

func (c *Controller) dragChanged(g PanGesture) {
	minFrame, maxFrame := c.MinFrame(), c.MaxFrame()
	frame := c.content.Frame()

	if c.canMoveSheet(frame, maxFrame) {
		top := frame.Top + g.Translation().Y
		top = math.Max(top, maxFrame.Top)
		top = math.Min(top, minFrame.Top)
		frame = frame.WithTop(top)
		c.content.SetFrame(frame)
	}
	g.SetTranslation(graphics.Offset{})

	if c.state == Minimized {
		if frame.Top <= maxFrame.Top {
			c.state = Maximized
		}
	} else if frame.Top >= minFrame.Top {
		c.state = Minimized
	}

	if c.suppressesOffset(frame, maxFrame) {
		c.content.SetContentOffset(graphics.Offset{})
	}
}

// canMoveSheet reports whether a drag sample should move the sheet rather
// than scroll the content. A minimized sheet always moves. A maximized sheet
// moves once it has left the maximized frame or the content is at its top.
func (c *Controller) canMoveSheet(frame, maxFrame graphics.Rect) bool {
	if c.state == Minimized {
		return true
	}
	return frame.Top > maxFrame.Top || c.content.ContentOffset().Y <= 0
}

// suppressesOffset reports whether the content must stay scrolled to the
// top: while the sheet is below its maximized frame, or when the two snap
// heights leave no range to move in.
func (c *Controller) suppressesOffset(frame, maxFrame graphics.Rect) bool {
	return frame.Top > maxFrame.Top || c.minimizedHeight >= c.maximizedHeight
}

func (c *Controller) contentOffsetChanged(offset graphics.Offset) {
	if offset == (graphics.Offset{}) {
		return
	}
	if c.suppressesOffset(c.content.Frame(), c.MaxFrame()) {
		c.content.SetContentOffset(graphics.Offset{})
	}
}

func (c *Controller) dragEnded(velocity graphics.Offset) {
	d := DecideSnap(
		c.state,
		c.content.Frame().Top,
		c.MinFrame().Top,
		c.MaxFrame().Top,
		velocity.Y,
		Thresholds{Velocity: c.triggerVelocity, Distance: c.triggerDistance},
	)
	if d.Target == Maximized {
		c.DisplayMax()
	} else {
		c.DisplayMin()
	}
	if d.ResetOffset {
		c.content.SetContentOffset(graphics.Offset{})
	}
}
