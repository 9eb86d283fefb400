package paint

import "github.com/ha1tch/plotdeco/pkg/geom"

// Layer names a paint layer; backends draw layers in the order they were
// first painted to.
type Layer string

// Background is the default layer.
const Background Layer = "background"

// ClippedShape is a shape with the clip rect it was painted under.
type ClippedShape struct {
	Layer Layer
	Clip  geom.Rect
	Shape Shape
}

// Canvas collects everything painted during one frame.
type Canvas struct {
	size   geom.Vec2
	shapes []ClippedShape
}

// NewCanvas creates an empty canvas of the given size.
func NewCanvas(size geom.Vec2) *Canvas {
	return &Canvas{size: size}
}

// Size returns the canvas size.
func (c *Canvas) Size() geom.Vec2 { return c.size }

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() geom.Rect {
	return geom.RectFromMinSize(geom.Pos2{}, c.size)
}

// Shapes returns all painted shapes grouped by layer, in paint order within
// each layer.
func (c *Canvas) Shapes() []ClippedShape {
	var order []Layer
	seen := make(map[Layer]bool)
	for _, cs := range c.shapes {
		if !seen[cs.Layer] {
			seen[cs.Layer] = true
			order = append(order, cs.Layer)
		}
	}
	out := make([]ClippedShape, 0, len(c.shapes))
	for _, layer := range order {
		for _, cs := range c.shapes {
			if cs.Layer == layer {
				out = append(out, cs)
			}
		}
	}
	return out
}

// Len returns the number of painted shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Painter paints onto a canvas, clipped to a rectangle.
type Painter struct {
	canvas *Canvas
	layer  Layer
	clip   geom.Rect
}

// NewPainter returns a painter over canvas clipped to clip.
func NewPainter(canvas *Canvas, layer Layer, clip geom.Rect) *Painter {
	return &Painter{canvas: canvas, layer: layer, clip: clip}
}

// ClipRect returns the painter's clip rectangle.
func (p *Painter) ClipRect() geom.Rect { return p.clip }

// Layer returns the layer the painter draws to.
func (p *Painter) Layer() Layer { return p.layer }

// WithClipRect returns a painter on the same canvas and layer whose clip is
// the intersection of the current clip and rect.
func (p *Painter) WithClipRect(rect geom.Rect) *Painter {
	return &Painter{canvas: p.canvas, layer: p.layer, clip: p.clip.Intersect(rect)}
}

// Add paints one shape.
func (p *Painter) Add(s Shape) {
	p.canvas.shapes = append(p.canvas.shapes, ClippedShape{Layer: p.layer, Clip: p.clip, Shape: s})
}

// Extend paints shapes in order.
func (p *Painter) Extend(shapes ShapeList) {
	for _, s := range shapes {
		p.Add(s)
	}
}
