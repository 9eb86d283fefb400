package plot

import (
	"image/color"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
	"github.com/ha1tch/plotdeco/pkg/text"
)

// labelOffset is the base distance between a gridline end and its label,
// before LabelShift halves it.
const labelOffset = 5.0

// Label alignment per axis: x labels hang centered below their anchor,
// y labels sit right-aligned and vertically centered.
var (
	gridLabelVAlign = [2]geom.Align{geom.AlignMin, geom.AlignCenter}
	gridLabelHAlign = [2]geom.Align{geom.AlignCenter, geom.AlignMax}
)

// Decorator draws axis labels into the margin around a plot. It is built by
// AllocateSpaceAndDecoratorForPlot and lives for one frame.
type Decorator struct {
	OutsidePainter *paint.Painter
	OffsetToInside geom.Vec2
	AxisMargin     float64
}

// AddAxisGridLabel adds the label for one gridline of the given axis to out,
// along with a short line joining the gridline end at posInGui to the label.
// It returns false, adding nothing, when the axis is not drawn outside the
// plot.
func (d *Decorator) AddAxisGridLabel(
	shaper text.Shaper,
	posInGui geom.Pos2,
	label string,
	positions AxisPositions,
	col color.RGBA,
	lineStroke paint.Stroke,
	axis int,
	out *paint.ShapeList,
) bool {
	axisPos := positions[axis]
	if !axisPos.DrawnByDecorator() {
		return false
	}

	job := text.NewJob(label, gridLabelVAlign[axis])
	job.HAlign = gridLabelHAlign[axis]
	galley := shaper.Layout(job)

	textPos := posInGui.Add(axisPos.LabelShift(axis, labelOffset))
	out.Add(paint.GalleyWithColor(textPos, galley, col))
	out.Add(paint.Line(posInGui, textPos, lineStroke))
	return true
}

// Paint hands collected label shapes to the outside painter.
func (d *Decorator) Paint(shapes paint.ShapeList) {
	d.OutsidePainter.Extend(shapes)
}

// OuterRect is the full allocated footprint, margins included.
func (d *Decorator) OuterRect() geom.Rect {
	return d.OutsidePainter.ClipRect()
}

// InnerRect is the plotting area inside the margins.
func (d *Decorator) InnerRect(size geom.Vec2) geom.Rect {
	return geom.RectFromMinSize(d.OuterRect().LeftTop().Add(d.OffsetToInside), size)
}
