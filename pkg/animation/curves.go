package animation

import "math"

// A curve maps linear progress t in [0, 1] to eased progress, with
// curve(0) == 0 and curve(1) == 1.

// LinearCurve applies no easing.
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut decelerates into the target. It is the default for sheet
// transitions and matches CSS ease-out.
var EaseOut = CubicBezier(0, 0, 0.58, 1)

// EaseInOut accelerates away from the start and decelerates into the target.
var EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

// bezier holds the polynomial coefficients of one axis of a unit cubic
// bezier whose end points are 0 and 1.
type bezier struct{ a, b, c float64 }

func newBezier(p1, p2 float64) bezier {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return bezier{a: 1 - c - b, b: b, c: c}
}

func (z bezier) at(u float64) float64 {
	return ((z.a*u+z.b)*u + z.c) * u
}

func (z bezier) slope(u float64) float64 {
	return (3*z.a*u+2*z.b)*u + z.c
}

// CubicBezier returns the easing curve of CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	xs, ys := newBezier(x1, x2), newBezier(y1, y2)
	const epsilon = 1e-7

	solve := func(x float64) float64 {
		u := x
		for range 8 {
			d := xs.at(u) - x
			if math.Abs(d) < epsilon {
				return u
			}
			s := xs.slope(u)
			if math.Abs(s) < epsilon {
				break
			}
			u -= d / s
		}

		lo, hi := 0.0, 1.0
		u = math.Max(lo, math.Min(hi, u))
		for lo < hi {
			d := xs.at(u) - x
			if math.Abs(d) < epsilon {
				break
			}
			if d > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
			if hi-lo < epsilon {
				break
			}
		}
		return u
	}

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return ys.at(solve(t))
	}
}
