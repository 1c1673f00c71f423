// Package graphics provides the geometry value types shared by the sheet,
// gesture, scroll and animation packages.
package graphics

import "math"

// tolerance bounds the difference at which two coordinates compare equal.
const tolerance = 1e-4

// Offset is a point or vector in points. It carries positions, pan
// translations, scroll offsets and velocities.
type Offset struct {
	X, Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size is a width and height in points.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle stored by its edges. Y grows downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH builds a Rect from its origin and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin is the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Translate shifts every edge of r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return RectFromLTWH(r.Left+dx, r.Top+dy, r.Width(), r.Height())
}

// WithTop moves r vertically so its top edge sits at top, keeping its height.
func (r Rect) WithTop(top float64) Rect {
	r.Bottom += top - r.Top
	r.Top = top
	return r
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Equal reports whether every edge of r is within tolerance of other's.
func (r Rect) Equal(other Rect) bool {
	return near(r.Left, other.Left) && near(r.Top, other.Top) &&
		near(r.Right, other.Right) && near(r.Bottom, other.Bottom)
}

// LerpRect interpolates each edge from a to b.
func LerpRect(a, b Rect, t float64) Rect {
	lerp := func(x, y float64) float64 { return x + (y-x)*t }
	return Rect{
		Left:   lerp(a.Left, b.Left),
		Top:    lerp(a.Top, b.Top),
		Right:  lerp(a.Right, b.Right),
		Bottom: lerp(a.Bottom, b.Bottom),
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}
