package plot

import (
	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
	"github.com/ha1tch/plotdeco/pkg/ui"
)

// Host is the layout system the plot is placed into. *ui.Ui implements it.
type Host interface {
	AllocateExactSize(size geom.Vec2, sense ui.Sense) (geom.Rect, ui.Response)
	AllocateRect(rect geom.Rect, sense ui.Sense) ui.Response
	AdvanceCursorAfterRect(rect geom.Rect)
	Painter(rect geom.Rect) *paint.Painter
}

// marginAxis maps a layout direction (0 = horizontal, 1 = vertical) to the
// axis whose outside placement consumes space in that direction: a y axis
// drawn outside takes horizontal room, an x axis takes vertical room.
var marginAxis = [2]int{AxisY, AxisX}

// PlotLayout returns the outer size needed for an inner plot of the given
// size and the offset from the outer rect's corner to the inner rect's.
func PlotLayout(size geom.Vec2, positions AxisPositions, axisMargin float64) (outerSize, offsetToInside geom.Vec2) {
	needXMargin := positions[marginAxis[0]].NeedsOutsideMargin()
	needYMargin := positions[marginAxis[1]].NeedsOutsideMargin()
	if !needXMargin && !needYMargin {
		return size, geom.Vec2{}
	}

	var xMargin, yMargin float64
	if needXMargin {
		xMargin = axisMargin
	}
	if needYMargin {
		yMargin = axisMargin
	}
	outerSize = size.Add(geom.V(xMargin, yMargin))

	// A left y axis and a top x axis push the inner rect away from the
	// outer corner; right and bottom margins are appended after it.
	if positions[AxisY] == OutsideLow {
		offsetToInside.X = xMargin
	}
	if positions[AxisX] == OutsideHigh {
		offsetToInside.Y = yMargin
	}
	return outerSize, offsetToInside
}

// AllocateSpaceAndDecoratorForPlot reserves room in host for a plot whose
// data area is size, plus margins for axes drawn outside it. It returns the
// inner plot rect, its drag-sensitive response and a Decorator for the
// outside labels. The host cursor ends up after the outer footprint.
func AllocateSpaceAndDecoratorForPlot(
	host Host,
	size geom.Vec2,
	positions AxisPositions,
	axisMargin float64,
) (geom.Rect, ui.Response, *Decorator) {
	outerSize, offset := PlotLayout(size, positions, axisMargin)

	outsideRect, _ := host.AllocateExactSize(outerSize, ui.Hover())
	outsidePainter := host.Painter(outsideRect)
	rect := geom.RectFromMinSize(outsideRect.LeftTop().Add(offset), size)
	response := host.AllocateRect(rect, ui.Drag())

	host.AdvanceCursorAfterRect(outsideRect)

	return rect, response, &Decorator{
		OutsidePainter: outsidePainter,
		OffsetToInside: offset,
		AxisMargin:     axisMargin,
	}
}
