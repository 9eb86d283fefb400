// Package ui is a minimal immediate-mode layout host: widgets are placed
// top to bottom by a cursor, each allocation reporting pointer interaction.
package ui

import (
	"math"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
)

// Sense selects which interactions an allocated rect responds to.
type Sense uint8

const (
	SenseHover Sense = 1 << iota
	SenseClick
	SenseDrag
)

// Hover reports pointer hover only.
func Hover() Sense { return SenseHover }

// Drag reports hover and drag.
func Drag() Sense { return SenseHover | SenseDrag }

// Click reports hover and click.
func Click() Sense { return SenseHover | SenseClick }

// Has reports whether s includes o.
func (s Sense) Has(o Sense) bool { return s&o == o }

// Input is the pointer state for the current frame.
type Input struct {
	Pointer    geom.Pos2
	HasPointer bool
	Pressed    bool // primary button held
	Clicked    bool // primary button released this frame
	Delta      geom.Vec2
}

// Response describes interaction with an allocated rect.
type Response struct {
	Rect      geom.Rect
	Sense     Sense
	Hovered   bool
	Clicked   bool
	Dragged   bool
	DragDelta geom.Vec2
}

// Ui places widgets inside MaxRect.
type Ui struct {
	maxRect geom.Rect
	cursor  geom.Pos2
	minRect geom.Rect
	used    bool
	spacing geom.Vec2
	input   Input
	layer   paint.Layer
	canvas  *paint.Canvas
	widgets []Response
}

// New creates a Ui covering maxRect, painting onto canvas.
func New(canvas *paint.Canvas, maxRect geom.Rect, input Input) *Ui {
	return &Ui{
		maxRect: maxRect,
		cursor:  maxRect.Min,
		minRect: geom.RectFromMinSize(maxRect.Min, geom.Vec2{}),
		spacing: geom.V(0, 4),
		input:   input,
		layer:   paint.Background,
		canvas:  canvas,
	}
}

// SetItemSpacing sets the gap left after every allocation.
func (u *Ui) SetItemSpacing(v geom.Vec2) { u.spacing = v }

// SetLayer sets the layer painters are created on.
func (u *Ui) SetLayer(l paint.Layer) { u.layer = l }

// Cursor returns where the next widget will be placed.
func (u *Ui) Cursor() geom.Pos2 { return u.cursor }

// MinRect returns the area used by allocations so far.
func (u *Ui) MinRect() geom.Rect { return u.minRect }

// Widgets returns the responses of all allocations this frame.
func (u *Ui) Widgets() []Response { return u.widgets }

// AllocateExactSize reserves exactly size at the cursor and advances past it.
func (u *Ui) AllocateExactSize(size geom.Vec2, sense Sense) (geom.Rect, Response) {
	rect := geom.RectFromMinSize(u.cursor, size)
	resp := u.interact(rect, sense)
	u.AdvanceCursorAfterRect(rect)
	return rect, resp
}

// AllocateRect reserves rect, wherever it is, and advances the cursor past it.
func (u *Ui) AllocateRect(rect geom.Rect, sense Sense) Response {
	resp := u.interact(rect, sense)
	u.AdvanceCursorAfterRect(rect)
	return resp
}

// AdvanceCursorAfterRect moves the cursor below rect and marks rect as used.
// The cursor never moves back up.
func (u *Ui) AdvanceCursorAfterRect(rect geom.Rect) {
	u.cursor = geom.P(u.maxRect.Min.X, math.Max(u.cursor.Y, rect.Max.Y+u.spacing.Y))
	if u.used {
		u.minRect = u.minRect.Union(rect)
	} else {
		u.minRect = rect
		u.used = true
	}
}

// Painter returns a painter over rect on the current layer.
func (u *Ui) Painter(rect geom.Rect) *paint.Painter {
	return paint.NewPainter(u.canvas, u.layer, rect)
}

func (u *Ui) interact(rect geom.Rect, sense Sense) Response {
	resp := Response{Rect: rect, Sense: sense}
	in := u.input
	if in.HasPointer && rect.Contains(in.Pointer) {
		resp.Hovered = sense.Has(SenseHover)
		if sense.Has(SenseClick) && in.Clicked {
			resp.Clicked = true
		}
		if sense.Has(SenseDrag) && in.Pressed {
			resp.Dragged = true
			resp.DragDelta = in.Delta
		}
	}
	u.widgets = append(u.widgets, resp)
	return resp
}
