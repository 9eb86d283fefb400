// Package geom provides the 2D value types shared by the layout, paint and
// plot packages. Screen coordinates: x grows right, y grows down.
package geom

import "math"

// Vec2 is a 2D displacement.
type Vec2 struct {
	X, Y float64
}

// Pos2 is a 2D position.
type Pos2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// P is shorthand for Pos2{x, y}.
func P(x, y float64) Pos2 { return Pos2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Add translates p by v.
func (p Pos2) Add(v Vec2) Pos2 { return Pos2{p.X + v.X, p.Y + v.Y} }

// Sub returns the displacement from o to p.
func (p Pos2) Sub(o Pos2) Vec2 { return Vec2{p.X - o.X, p.Y - o.Y} }

// Vec returns p as a displacement from the origin.
func (p Pos2) Vec() Vec2 { return Vec2{p.X, p.Y} }

// Rect is an axis-aligned rectangle given by its min (top-left) and max
// (bottom-right) corners.
type Rect struct {
	Min, Max Pos2
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromMinMax builds a rectangle from two corners.
func RectFromMinMax(min, max Pos2) Rect {
	return Rect{Min: min, Max: max}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle dimensions.
func (r Rect) Size() Vec2 { return Vec2{r.Width(), r.Height()} }

// LeftTop returns the top-left corner.
func (r Rect) LeftTop() Pos2 { return r.Min }

// Center returns the center point.
func (r Rect) Center() Pos2 {
	return Pos2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Translate moves the rectangle by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Pos2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Pos2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)},
		Max: Pos2{math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)},
	}
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{
		Min: Pos2{r.Min.X - m, r.Min.Y - m},
		Max: Pos2{r.Max.X + m, r.Max.Y + m},
	}
}

// Align selects which part of an object sits on an anchor.
type Align int

const (
	AlignMin    Align = iota // left or top
	AlignCenter              // middle
	AlignMax                 // right or bottom
)

func (a Align) String() string {
	switch a {
	case AlignMin:
		return "min"
	case AlignCenter:
		return "center"
	case AlignMax:
		return "max"
	}
	return "unknown"
}

// Offset returns where an extent of the given length starts relative to the
// anchor: 0 for Min, -length/2 for Center, -length for Max.
func (a Align) Offset(length float64) float64 {
	switch a {
	case AlignCenter:
		return -length / 2
	case AlignMax:
		return -length
	}
	return 0
}
