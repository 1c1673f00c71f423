package animation

import "github.com/go-drift/sheet/pkg/graphics"

// Tween maps progress in [0, 1] onto the range Begin to End.
type Tween[T any] struct {
	Begin, End T
	Lerp       func(a, b T, t float64) T
}

// At returns the value at progress t.
func (tw Tween[T]) At(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 interpolates linearly between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TweenRect tweens between two frames.
func TweenRect(begin, end graphics.Rect) Tween[graphics.Rect] {
	return Tween[graphics.Rect]{Begin: begin, End: end, Lerp: graphics.LerpRect}
}
