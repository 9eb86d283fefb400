// Package paint holds drawable shapes and the clipped painters that collect
// them into a canvas for a backend to render.
package paint

import (
	"image/color"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/text"
)

// Stroke is a line style.
type Stroke struct {
	Width float64
	Color color.RGBA
}

// NewStroke returns a stroke of the given width and color.
func NewStroke(width float64, c color.RGBA) Stroke {
	return Stroke{Width: width, Color: c}
}

// IsVisible reports whether anything would be drawn with this stroke.
func (s Stroke) IsVisible() bool {
	return s.Width > 0 && s.Color.A > 0
}

// Shape is something a backend knows how to draw.
type Shape interface {
	// BoundingRect is the area the shape may touch.
	BoundingRect() geom.Rect
}

// GalleyShape draws shaped text with its anchor at Pos.
type GalleyShape struct {
	Pos    geom.Pos2
	Galley *text.Galley
	Color  color.RGBA
}

// GalleyWithColor returns a galley shape anchored at pos.
func GalleyWithColor(pos geom.Pos2, g *text.Galley, c color.RGBA) GalleyShape {
	return GalleyShape{Pos: pos, Galley: g, Color: c}
}

func (s GalleyShape) BoundingRect() geom.Rect {
	return s.Galley.Rect.Translate(s.Pos.Vec())
}

// LineSegment is a straight line between two points.
type LineSegment struct {
	Points [2]geom.Pos2
	Stroke Stroke
}

// Line returns a segment from a to b.
func Line(a, b geom.Pos2, stroke Stroke) LineSegment {
	return LineSegment{Points: [2]geom.Pos2{a, b}, Stroke: stroke}
}

func (s LineSegment) BoundingRect() geom.Rect {
	a, b := s.Points[0], s.Points[1]
	r := geom.RectFromMinMax(a, a).Union(geom.RectFromMinMax(b, b))
	return r.Expand(s.Stroke.Width / 2)
}

// Length returns the distance between the segment's endpoints.
func (s LineSegment) Length() float64 {
	return s.Points[1].Sub(s.Points[0]).Length()
}

// RectShape is a filled and/or outlined rectangle.
type RectShape struct {
	Rect   geom.Rect
	Fill   color.RGBA
	Stroke Stroke
}

func (s RectShape) BoundingRect() geom.Rect {
	return s.Rect.Expand(s.Stroke.Width / 2)
}

// ShapeList is an ordered list of shapes under construction.
type ShapeList []Shape

// Add appends a shape.
func (l *ShapeList) Add(s Shape) {
	*l = append(*l, s)
}

// Len returns the number of shapes.
func (l ShapeList) Len() int { return len(l) }
