package sheet

import "math"

// contentSizeChanged clamps the effective heights to the new content height
// and re-snaps the current state when the visible height has to change.
// While a transition runs, its target counts as the current state.
func (c *Controller) contentSizeChanged(height float64) {
	height = math.Max(0, height)

	state := c.targetState()
	var reload bool
	if state == Minimized {
		reload = needsReload(height, c.minimizedHeight, c.defaultMinimizedHeight)
	} else {
		reload = needsReload(height, c.maximizedHeight, c.defaultMaximizedHeight)
	}

	c.minimizedHeight = math.Min(c.defaultMinimizedHeight, height)
	c.maximizedHeight = math.Min(c.defaultMaximizedHeight, height)

	if reload {
		c.transition(state)
	}
}

// needsReload reports whether content of the given height changes the
// effective height: it shrank below it, or grew while still inside the
// clamped range below the default.
func needsReload(height, effective, def float64) bool {
	if height < effective {
		return true
	}
	return height > effective && height <= def
}
