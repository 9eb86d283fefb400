package main

import (
	"image/color"
	"math"
	"strconv"

	"github.com/ha1tch/plotdeco/pkg/config"
	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
	"github.com/ha1tch/plotdeco/pkg/plot"
	"github.com/ha1tch/plotdeco/pkg/text"
	"github.com/ha1tch/plotdeco/pkg/ui"
)

// Colors used in the demo plot
var (
	colorFrame = color.RGBA{51, 51, 51, 255}    // #333
	colorGrid  = color.RGBA{204, 204, 204, 255} // #ccc
	colorLabel = color.RGBA{51, 51, 51, 255}
	colorTick  = color.RGBA{102, 102, 102, 255} // #666
	colorData  = color.RGBA{21, 101, 192, 255}  // #1565c0
)

// frameStyle holds the unit-dependent sizes: pixels for images, cells for
// the terminal.
type frameStyle struct {
	Padding     float64
	LineWidth   float64
	InsideInset float64
	Samples     int
}

func pixelStyle() frameStyle {
	return frameStyle{Padding: 10, LineWidth: 1, InsideInset: 3, Samples: 200}
}

func cellStyle() frameStyle {
	return frameStyle{Padding: 0, LineWidth: 1, InsideInset: 1, Samples: 120}
}

// frame is one laid-out and painted plot.
type frame struct {
	Canvas    *paint.Canvas
	Inner     geom.Rect
	Outer     geom.Rect
	Response  ui.Response
	Decorated int // labels placed by the decorator
	Inside    int // labels drawn inside the plot by the frame itself
}

// buildFrame lays out a plot described by cfg and paints gridlines, labels
// and a sample data series onto a fresh canvas.
func buildFrame(cfg config.Plot, positions plot.AxisPositions, shaper text.Shaper, style frameStyle, input ui.Input) *frame {
	size := cfg.Size()
	outerSize, _ := plot.PlotLayout(size, positions, cfg.AxisMargin)

	var title *text.Galley
	titleH := 0.0
	if cfg.Title != "" {
		title = shaper.Layout(text.Job{Text: cfg.Title, VAlign: geom.AlignMin, HAlign: geom.AlignCenter})
		titleH = title.Size().Y
	}

	canvasSize := outerSize.Add(geom.V(2*style.Padding, 2*style.Padding+titleH))
	canvas := paint.NewCanvas(canvasSize)
	area := geom.RectFromMinSize(geom.P(style.Padding, style.Padding), canvasSize.Sub(geom.V(2*style.Padding, 2*style.Padding)))
	u := ui.New(canvas, area, input)
	u.SetItemSpacing(geom.Vec2{})

	if title != nil {
		titleRect, _ := u.AllocateExactSize(geom.V(outerSize.X, titleH), ui.Hover())
		u.Painter(titleRect).Add(paint.GalleyWithColor(geom.P(titleRect.Center().X, titleRect.Min.Y), title, colorLabel))
	}

	rect, resp, dec := plot.AllocateSpaceAndDecoratorForPlot(u, size, positions, cfg.AxisMargin)
	f := &frame{Canvas: canvas, Inner: rect, Outer: dec.OuterRect(), Response: resp}

	inner := u.Painter(rect)
	grid := paint.NewStroke(style.LineWidth, colorGrid)
	tick := paint.NewStroke(style.LineWidth, colorTick)
	tx := newTransform(rect, cfg.XRange, cfg.YRange)
	var shapes paint.ShapeList

	for _, v := range linearTicks(cfg.XRange[0], cfg.XRange[1], cfg.Ticks) {
		sx := tx.x(v)
		inner.Add(paint.Line(geom.P(sx, rect.Min.Y), geom.P(sx, rect.Max.Y), grid))
		anchor := geom.P(sx, xAxisEdge(rect, positions[plot.AxisX], tx))
		if dec.AddAxisGridLabel(shaper, anchor, formatTick(v), positions, colorLabel, tick, plot.AxisX, &shapes) {
			f.Decorated++
			continue
		}
		inner.Add(insideLabel(shaper, anchor, formatTick(v), positions[plot.AxisX], plot.AxisX, style.InsideInset))
		f.Inside++
	}

	for _, v := range linearTicks(cfg.YRange[0], cfg.YRange[1], cfg.Ticks) {
		sy := tx.y(v)
		inner.Add(paint.Line(geom.P(rect.Min.X, sy), geom.P(rect.Max.X, sy), grid))
		anchor := geom.P(yAxisEdge(rect, positions[plot.AxisY], tx), sy)
		if dec.AddAxisGridLabel(shaper, anchor, formatTick(v), positions, colorLabel, tick, plot.AxisY, &shapes) {
			f.Decorated++
			continue
		}
		inner.Add(insideLabel(shaper, anchor, formatTick(v), positions[plot.AxisY], plot.AxisY, style.InsideInset))
		f.Inside++
	}

	drawSeries(inner, tx, cfg, style)
	inner.Add(paint.RectShape{Rect: rect, Stroke: paint.NewStroke(style.LineWidth, colorFrame)})
	dec.Paint(shapes)
	return f
}

// transform maps data values to screen coordinates inside rect.
type transform struct {
	rect   geom.Rect
	xRange [2]float64
	yRange [2]float64
}

func newTransform(rect geom.Rect, xRange, yRange [2]float64) transform {
	return transform{rect: rect, xRange: xRange, yRange: yRange}
}

func (t transform) x(v float64) float64 {
	return t.rect.Min.X + (v-t.xRange[0])/(t.xRange[1]-t.xRange[0])*t.rect.Width()
}

func (t transform) y(v float64) float64 {
	return t.rect.Max.Y - (v-t.yRange[0])/(t.yRange[1]-t.yRange[0])*t.rect.Height()
}

// xAxisEdge is the screen y where x-axis labels attach.
func xAxisEdge(rect geom.Rect, pos plot.AxisPosition, t transform) float64 {
	switch pos {
	case plot.OutsideLow, plot.Low:
		return rect.Max.Y
	case plot.OutsideHigh, plot.High:
		return rect.Min.Y
	case plot.AtCross:
		return t.y(clamp(0, t.yRange[0], t.yRange[1]))
	}
	return rect.Max.Y
}

// yAxisEdge is the screen x where y-axis labels attach.
func yAxisEdge(rect geom.Rect, pos plot.AxisPosition, t transform) float64 {
	switch pos {
	case plot.OutsideLow, plot.Low:
		return rect.Min.X
	case plot.OutsideHigh, plot.High:
		return rect.Max.X
	case plot.AtCross:
		return t.x(clamp(0, t.xRange[0], t.xRange[1]))
	}
	return rect.Min.X
}

// insideLabel places a label for an axis drawn inside the plot, nudged off
// the edge it is attached to.
func insideLabel(shaper text.Shaper, anchor geom.Pos2, label string, pos plot.AxisPosition, axis int, inset float64) paint.Shape {
	job := text.Job{Text: label}
	if axis == plot.AxisX {
		job.HAlign = geom.AlignCenter
		switch pos {
		case plot.High:
			job.VAlign = geom.AlignMin
			anchor.Y += inset
		default:
			job.VAlign = geom.AlignMax
			anchor.Y -= inset
		}
	} else {
		job.VAlign = geom.AlignCenter
		switch pos {
		case plot.High:
			job.HAlign = geom.AlignMax
			anchor.X -= inset
		default:
			job.HAlign = geom.AlignMin
			anchor.X += inset
		}
	}
	return paint.GalleyWithColor(anchor, shaper.Layout(job), colorLabel)
}

// drawSeries draws a sine wave across the x range as connected segments.
func drawSeries(p *paint.Painter, t transform, cfg config.Plot, style frameStyle) {
	stroke := paint.NewStroke(style.LineWidth*1.5, colorData)
	span := cfg.XRange[1] - cfg.XRange[0]
	amp := (cfg.YRange[1] - cfg.YRange[0]) * 0.4
	mid := (cfg.YRange[1] + cfg.YRange[0]) / 2

	var prev geom.Pos2
	for i := 0; i <= style.Samples; i++ {
		v := cfg.XRange[0] + span*float64(i)/float64(style.Samples)
		pt := geom.P(t.x(v), t.y(mid+amp*math.Sin(v)))
		if i > 0 {
			p.Add(paint.Line(prev, pt, stroke))
		}
		prev = pt
	}
}

// linearTicks returns n evenly spaced values from lo to hi inclusive.
func linearTicks(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	ticks := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range ticks {
		ticks[i] = lo + step*float64(i)
	}
	ticks[n-1] = hi
	return ticks
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
