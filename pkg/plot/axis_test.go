package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/plotdeco/pkg/geom"
)

var allPositions = []AxisPosition{OutsideLow, Low, High, OutsideHigh, AtCross}

func TestOutsidePositionsNeedMarginAndDecorator(t *testing.T) {
	for _, p := range allPositions {
		t.Run(p.String(), func(t *testing.T) {
			outside := p == OutsideLow || p == OutsideHigh
			assert.Equal(t, outside, p.NeedsOutsideMargin())
			assert.Equal(t, outside, p.DrawnByDecorator())
		})
	}
}

func TestLabelShiftDirections(t *testing.T) {
	tests := []struct {
		pos  AxisPosition
		axis int
		want geom.Vec2
	}{
		{OutsideLow, AxisX, geom.V(0, 2.5)},
		{OutsideLow, AxisY, geom.V(-2.5, 0)},
		{OutsideHigh, AxisX, geom.V(0, -2.5)},
		{OutsideHigh, AxisY, geom.V(2.5, 0)},
		{Low, AxisX, geom.V(0, 0)},
		{High, AxisY, geom.V(0, 0)},
		{AtCross, AxisX, geom.V(0, 0)},
		{AtCross, AxisY, geom.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.LabelShift(tt.axis, 5))
		})
	}
}

func TestLabelShiftIsHalfTheOffset(t *testing.T) {
	for _, offset := range []float64{0, 1, 5, 13.5, 100} {
		for _, p := range []AxisPosition{OutsideLow, OutsideHigh} {
			for axis := 0; axis < 2; axis++ {
				v := p.LabelShift(axis, offset)
				if axis == AxisX {
					assert.Equal(t, 0.0, v.X)
					assert.Equal(t, offset/2, abs(v.Y))
				} else {
					assert.Equal(t, 0.0, v.Y)
					assert.Equal(t, offset/2, abs(v.X))
				}
			}
		}
	}
}

func TestParseAxisPosition(t *testing.T) {
	tests := []struct {
		in   string
		want AxisPosition
	}{
		{"outside-low", OutsideLow},
		{"OUTSIDE_HIGH", OutsideHigh},
		{" low ", Low},
		{"High", High},
		{"at_cross", AtCross},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxisPosition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAxisPosition("sideways")
	assert.ErrorIs(t, err, ErrUnknownAxisPosition)
}

func TestAxisPositionStringRoundTrip(t *testing.T) {
	for _, p := range allPositions {
		assert.True(t, p.IsValid())
		got, err := ParseAxisPosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	bogus := AxisPosition(42)
	assert.False(t, bogus.IsValid())
	assert.False(t, bogus.NeedsOutsideMargin())
	assert.Equal(t, geom.Vec2{}, bogus.LabelShift(AxisX, 5))
	assert.Equal(t, "unknown", bogus.String())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
