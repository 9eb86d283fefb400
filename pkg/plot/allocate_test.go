package plot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
	"github.com/ha1tch/plotdeco/pkg/ui"
)

// fakeHost places everything at origin and records the calls it receives.
type fakeHost struct {
	origin geom.Pos2
	canvas *paint.Canvas
	calls  []string
	exact  []geom.Vec2
	rects  []geom.Rect
	senses []ui.Sense
	cursor geom.Rect
}

func newFakeHost(origin geom.Pos2) *fakeHost {
	return &fakeHost{origin: origin, canvas: paint.NewCanvas(geom.V(1000, 1000))}
}

func (h *fakeHost) AllocateExactSize(size geom.Vec2, sense ui.Sense) (geom.Rect, ui.Response) {
	h.calls = append(h.calls, "exact")
	h.exact = append(h.exact, size)
	h.senses = append(h.senses, sense)
	r := geom.RectFromMinSize(h.origin, size)
	return r, ui.Response{Rect: r, Sense: sense}
}

func (h *fakeHost) AllocateRect(rect geom.Rect, sense ui.Sense) ui.Response {
	h.calls = append(h.calls, "rect")
	h.rects = append(h.rects, rect)
	h.senses = append(h.senses, sense)
	return ui.Response{Rect: rect, Sense: sense}
}

func (h *fakeHost) AdvanceCursorAfterRect(rect geom.Rect) {
	h.calls = append(h.calls, "advance")
	h.cursor = rect
}

func (h *fakeHost) Painter(rect geom.Rect) *paint.Painter {
	h.calls = append(h.calls, "painter")
	return paint.NewPainter(h.canvas, paint.Background, rect)
}

func TestPlotLayout(t *testing.T) {
	size := geom.V(200, 100)

	tests := []struct {
		positions  AxisPositions
		wantOuter  geom.Vec2
		wantOffset geom.Vec2
	}{
		// x axis on top pushes the plot down, y axis on the left pushes it right
		{AxisPositions{OutsideHigh, OutsideLow}, geom.V(210, 110), geom.V(10, 10)},
		{AxisPositions{OutsideLow, OutsideLow}, geom.V(210, 110), geom.V(10, 0)},
		{AxisPositions{OutsideLow, OutsideHigh}, geom.V(210, 110), geom.V(0, 0)},
		{AxisPositions{OutsideHigh, OutsideHigh}, geom.V(210, 110), geom.V(0, 10)},
		// only the y axis outside: horizontal margin only
		{AxisPositions{Low, OutsideLow}, geom.V(210, 100), geom.V(10, 0)},
		{AxisPositions{AtCross, OutsideHigh}, geom.V(210, 100), geom.V(0, 0)},
		// only the x axis outside: vertical margin only
		{AxisPositions{OutsideLow, High}, geom.V(200, 110), geom.V(0, 0)},
		{AxisPositions{OutsideHigh, AtCross}, geom.V(200, 110), geom.V(0, 10)},
		{AxisPositions{Low, High}, geom.V(200, 100), geom.V(0, 0)},
		{AxisPositions{AtCross, AtCross}, geom.V(200, 100), geom.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.positions[0], tt.positions[1]), func(t *testing.T) {
			outer, offset := PlotLayout(size, tt.positions, 10)
			assert.Equal(t, tt.wantOuter, outer)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestAllocateSpaceAndDecoratorForPlot(t *testing.T) {
	host := newFakeHost(geom.P(20, 30))
	positions := AxisPositions{OutsideLow, OutsideLow}

	rect, resp, dec := AllocateSpaceAndDecoratorForPlot(host, geom.V(200, 100), positions, 10)

	assert.Equal(t, []string{"exact", "painter", "rect", "advance"}, host.calls)
	assert.Equal(t, []geom.Vec2{geom.V(210, 110)}, host.exact)
	assert.Equal(t, []ui.Sense{ui.Hover(), ui.Drag()}, host.senses)

	outer := geom.RectFromMinSize(geom.P(20, 30), geom.V(210, 110))
	wantInner := geom.RectFromMinSize(geom.P(30, 30), geom.V(200, 100))
	assert.Equal(t, wantInner, rect)
	assert.Equal(t, wantInner, resp.Rect)
	require.Len(t, host.rects, 1)
	assert.Equal(t, wantInner, host.rects[0])
	// the cursor is advanced past the whole footprint, not just the plot
	assert.Equal(t, outer, host.cursor)

	require.NotNil(t, dec)
	assert.Equal(t, outer, dec.OuterRect())
	assert.Equal(t, outer, dec.OutsidePainter.ClipRect())
	assert.Equal(t, geom.V(10, 0), dec.OffsetToInside)
	assert.Equal(t, 10.0, dec.AxisMargin)
	assert.Equal(t, wantInner, dec.InnerRect(geom.V(200, 100)))
}

func TestAllocateWithoutOutsideAxes(t *testing.T) {
	host := newFakeHost(geom.P(0, 0))
	positions := AxisPositions{Low, High}

	rect, _, dec := AllocateSpaceAndDecoratorForPlot(host, geom.V(200, 100), positions, 10)

	assert.Equal(t, []geom.Vec2{geom.V(200, 100)}, host.exact)
	assert.Equal(t, geom.RectFromMinSize(geom.P(0, 0), geom.V(200, 100)), rect)
	assert.Equal(t, geom.Vec2{}, dec.OffsetToInside)

	var shapes paint.ShapeList
	for axis := 0; axis < 2; axis++ {
		drawn := dec.AddAxisGridLabel(newFakeShaper(), geom.P(5, 5), "1", positions,
			labelColor, lineStroke, axis, &shapes)
		assert.False(t, drawn)
	}
	assert.Empty(t, shapes)
}

func TestAllocateIsDeterministic(t *testing.T) {
	positions := AxisPositions{OutsideHigh, OutsideLow}

	first := newFakeHost(geom.P(0, 0))
	r1, _, d1 := AllocateSpaceAndDecoratorForPlot(first, geom.V(200, 100), positions, 10)
	second := newFakeHost(geom.P(0, 0))
	r2, _, d2 := AllocateSpaceAndDecoratorForPlot(second, geom.V(200, 100), positions, 10)

	assert.Equal(t, first.exact, second.exact)
	assert.Equal(t, r1, r2)
	assert.Equal(t, d1.OffsetToInside, d2.OffsetToInside)
}

func TestAllocateWithUi(t *testing.T) {
	area := geom.RectFromMinSize(geom.P(0, 0), geom.V(400, 400))
	u := ui.New(paint.NewCanvas(area.Size()), area, ui.Input{})
	u.SetItemSpacing(geom.Vec2{})

	// x axis below: its margin sits under the plot and must still be skipped
	rect, _, dec := AllocateSpaceAndDecoratorForPlot(u, geom.V(200, 100), AxisPositions{OutsideLow, Low}, 30)

	assert.Equal(t, geom.RectFromMinSize(geom.P(0, 0), geom.V(200, 100)), rect)
	assert.Equal(t, geom.RectFromMinSize(geom.P(0, 0), geom.V(200, 130)), dec.OuterRect())
	assert.Equal(t, geom.P(0, 130), u.Cursor())
	assert.Equal(t, dec.OuterRect(), u.MinRect())

	// the hover footprint, then the draggable plot area
	widgets := u.Widgets()
	require.Len(t, widgets, 2)
	assert.Equal(t, dec.OuterRect(), widgets[0].Rect)
	assert.Equal(t, ui.Hover(), widgets[0].Sense)
	assert.Equal(t, rect, widgets[1].Rect)
	assert.Equal(t, ui.Drag(), widgets[1].Sense)
}
