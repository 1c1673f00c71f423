package sheet

import (
	"math"

	"github.com/go-drift/sheet/pkg/graphics"
)

// SnapFrames returns the content frames for the minimized and maximized
// states inside a container of the given bounds.
//
// Both frames are maximized tall; only their top edge differs. A minimized
// height larger than the maximized height is treated as equal to it, so
// minFrame.Top >= maxFrame.Top always holds.
func SnapFrames(bounds graphics.Size, minimized, maximized float64) (minFrame, maxFrame graphics.Rect) {
	minimized = math.Max(0, minimized)
	maximized = math.Max(minimized, maximized)
	minFrame = graphics.RectFromLTWH(0, bounds.Height-minimized, bounds.Width, maximized)
	maxFrame = graphics.RectFromLTWH(0, bounds.Height-maximized, bounds.Width, maximized)
	return minFrame, maxFrame
}
