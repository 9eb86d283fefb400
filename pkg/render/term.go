package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
)

// DrawScreen paints canvas onto a terminal screen, one canvas unit per
// cell. Galleys are expected to have been shaped with text.CellShaper.
// The caller shows the screen.
func DrawScreen(screen tcell.Screen, canvas *paint.Canvas) {
	w, h := screen.Size()
	bounds := geom.RectFromMinSize(geom.Pos2{}, geom.V(float64(w), float64(h)))
	for _, cs := range canvas.Shapes() {
		clip := cs.Clip.Intersect(bounds)
		if clip.IsEmpty() {
			continue
		}
		tc := termClip{
			minX: int(math.Floor(clip.Min.X)), minY: int(math.Floor(clip.Min.Y)),
			maxX: int(math.Ceil(clip.Max.X)), maxY: int(math.Ceil(clip.Max.Y)),
		}
		switch s := cs.Shape.(type) {
		case paint.LineSegment:
			drawTermLine(screen, tc, s)
		case paint.GalleyShape:
			drawTermGalley(screen, tc, s)
		case paint.RectShape:
			drawTermRect(screen, tc, s)
		}
	}
}

type termClip struct {
	minX, minY, maxX, maxY int
}

func (c termClip) contains(x, y int) bool {
	return x >= c.minX && x < c.maxX && y >= c.minY && y < c.maxY
}

func setCell(screen tcell.Screen, clip termClip, x, y int, r rune, style tcell.Style) {
	if clip.contains(x, y) {
		screen.SetContent(x, y, r, nil, style)
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawTermLine steps along the segment one cell at a time, using box
// drawing runes for straight segments.
func drawTermLine(screen tcell.Screen, clip termClip, s paint.LineSegment) {
	if !s.Stroke.IsVisible() {
		return
	}
	style := tcell.StyleDefault.Foreground(termColor(s.Stroke.Color))
	a, b := s.Points[0], s.Points[1]
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))

	r := '·'
	switch {
	case y0 == y1 && x0 != x1:
		r = '─'
	case x0 == x1 && y0 != y1:
		r = '│'
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errTerm := dx + dy
	for {
		setCell(screen, clip, x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x0 += sx
		}
		if e2 <= dx {
			errTerm += dx
			y0 += sy
		}
	}
}

func drawTermGalley(screen tcell.Screen, clip termClip, s paint.GalleyShape) {
	if s.Galley == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(termColor(s.Color))
	for _, row := range s.Galley.Rows {
		x := int(math.Round(s.Pos.X + row.Rect.Min.X))
		y := int(math.Round(s.Pos.Y + row.Rect.Min.Y))
		for _, r := range row.Text {
			setCell(screen, clip, x, y, r, style)
			x += runewidth.RuneWidth(r)
		}
	}
}

func drawTermRect(screen tcell.Screen, clip termClip, s paint.RectShape) {
	x0, y0 := int(math.Floor(s.Rect.Min.X)), int(math.Floor(s.Rect.Min.Y))
	x1, y1 := int(math.Ceil(s.Rect.Max.X))-1, int(math.Ceil(s.Rect.Max.Y))-1
	if s.Fill.A > 0 {
		fill := tcell.StyleDefault.Background(termColor(s.Fill))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				setCell(screen, clip, x, y, ' ', fill)
			}
		}
	}
	if !s.Stroke.IsVisible() || x1 <= x0 || y1 <= y0 {
		return
	}
	style := tcell.StyleDefault.Foreground(termColor(s.Stroke.Color))
	for x := x0 + 1; x < x1; x++ {
		setCell(screen, clip, x, y0, '─', style)
		setCell(screen, clip, x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		setCell(screen, clip, x0, y, '│', style)
		setCell(screen, clip, x1, y, '│', style)
	}
	setCell(screen, clip, x0, y0, '┌', style)
	setCell(screen, clip, x1, y0, '┐', style)
	setCell(screen, clip, x0, y1, '└', style)
	setCell(screen, clip, x1, y1, '┘', style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
