// Package plot reserves space for a plot widget, including the margins needed
// by axes drawn outside the plotting area, and places those axes' labels.
package plot

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ha1tch/plotdeco/pkg/geom"
)

// ErrUnknownAxisPosition is returned when parsing an unrecognised name.
var ErrUnknownAxisPosition = errors.New("unknown axis position")

// AxisPosition says where an axis is drawn relative to the inner plot rect.
type AxisPosition int

const (
	OutsideLow  AxisPosition = iota // margin below (x) or left (y)
	Low                             // inside, at the low edge
	High                            // inside, at the high edge
	OutsideHigh                     // margin above (x) or right (y)
	AtCross                         // inside, where the axes cross
)

// AxisPositions holds the position of the x axis (index 0) and the y axis
// (index 1).
type AxisPositions [2]AxisPosition

// Axis indices.
const (
	AxisX = 0
	AxisY = 1
)

var axisPositionNames = map[AxisPosition]string{
	OutsideLow:  "outside-low",
	Low:         "low",
	High:        "high",
	OutsideHigh: "outside-high",
	AtCross:     "at-cross",
}

func (p AxisPosition) String() string {
	if name, ok := axisPositionNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether p is one of the five positions.
func (p AxisPosition) IsValid() bool {
	_, ok := axisPositionNames[p]
	return ok
}

// ParseAxisPosition parses names such as "outside-low" or "AT_CROSS".
func ParseAxisPosition(s string) (AxisPosition, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for p, name := range axisPositionNames {
		if name == norm {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAxisPosition, "%q", s)
}

// NeedsOutsideMargin reports whether space must be reserved outside the
// inner plot rect for this axis.
func (p AxisPosition) NeedsOutsideMargin() bool {
	switch p {
	case OutsideLow, OutsideHigh:
		return true
	case Low, High, AtCross:
		return false
	}
	return false
}

// DrawnByDecorator reports whether the Decorator draws this axis' labels.
// Labels of inside positions are left to the caller.
func (p AxisPosition) DrawnByDecorator() bool {
	switch p {
	case OutsideLow, OutsideHigh:
		return true
	case Low, High, AtCross:
		return false
	}
	return false
}

// LabelShift returns how far to move a label from its gridline end so that
// it reads outside the gridline. The shift is half of axisOffset, pointing
// away from the plot.
func (p AxisPosition) LabelShift(axis int, axisOffset float64) geom.Vec2 {
	shift := axisOffset * 0.5
	switch p {
	case OutsideLow:
		if axis == AxisX {
			return geom.V(0, shift)
		}
		return geom.V(-shift, 0)
	case OutsideHigh:
		if axis == AxisX {
			return geom.V(0, -shift)
		}
		return geom.V(shift, 0)
	case Low, High, AtCross:
		return geom.Vec2{}
	}
	return geom.Vec2{}
}
