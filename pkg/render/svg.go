package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
)

// SVGOptions controls SVG output.
type SVGOptions struct {
	FontSize   float64
	FontFamily string
	Background color.RGBA
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		FontSize:   12,
		FontFamily: "Go, sans-serif",
		Background: colorWhite,
	}
}

// WriteSVG writes canvas as an SVG document. Every distinct clip rect
// becomes a clipPath; consecutive shapes sharing a clip share a group.
func WriteSVG(w io.Writer, canvas *paint.Canvas, opts SVGOptions) error {
	if opts.FontSize <= 0 {
		opts.FontSize = 12
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "sans-serif"
	}
	cw := &countingWriter{w: w}
	size := canvas.Size()
	width, height := int(math.Ceil(size.X)), int(math.Ceil(size.Y))
	shapes := canvas.Shapes()

	s := svg.New(cw)
	s.Start(width, height)
	if opts.Background.A > 0 {
		s.Rect(0, 0, width, height, "fill:"+hexColor(opts.Background))
	}

	clipIDs := make(map[geom.Rect]string)
	var clips []geom.Rect
	for _, cs := range shapes {
		if _, ok := clipIDs[cs.Clip]; !ok {
			clipIDs[cs.Clip] = fmt.Sprintf("clip%d", len(clips))
			clips = append(clips, cs.Clip)
		}
	}
	if len(clips) > 0 {
		s.Def()
		for _, c := range clips {
			s.ClipPath(fmt.Sprintf(`id="%s"`, clipIDs[c]))
			x, y, w, h := svgRect(c)
			s.Rect(x, y, w, h)
			s.ClipEnd()
		}
		s.DefEnd()
	}

	open := ""
	for _, cs := range shapes {
		id := clipIDs[cs.Clip]
		if id != open {
			if open != "" {
				s.Gend()
			}
			s.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
			open = id
		}
		writeSVGShape(s, cs.Shape, opts)
	}
	if open != "" {
		s.Gend()
	}
	s.End()
	return cw.err
}

func writeSVGShape(s *svg.SVG, shape paint.Shape, opts SVGOptions) {
	switch sh := shape.(type) {
	case paint.LineSegment:
		if !sh.Stroke.IsVisible() {
			return
		}
		a, b := sh.Points[0], sh.Points[1]
		s.Line(round(a.X), round(a.Y), round(b.X), round(b.Y), strokeStyle(sh.Stroke))
	case paint.GalleyShape:
		if sh.Galley == nil {
			return
		}
		style := fmt.Sprintf("fill:%s;font-size:%gpx;font-family:%s;text-anchor:%s",
			hexColor(sh.Color), opts.FontSize, opts.FontFamily, textAnchor(sh.Galley.Job.HAlign))
		x := sh.Pos.X + anchorX(sh.Galley.Rect, sh.Galley.Job.HAlign)
		for _, row := range sh.Galley.Rows {
			if row.Text == "" {
				continue
			}
			baseline := sh.Pos.Y + row.Rect.Min.Y + row.Ascent
			s.Text(round(x), round(baseline), row.Text, style)
		}
	case paint.RectShape:
		x, y, w, h := svgRect(sh.Rect)
		style := "fill:none"
		if sh.Fill.A > 0 {
			style = "fill:" + hexColor(sh.Fill)
		}
		if sh.Stroke.IsVisible() {
			style += ";" + strokeStyle(sh.Stroke)
		}
		s.Rect(x, y, w, h, style)
	}
}

func svgRect(r geom.Rect) (x, y, w, h int) {
	return round(r.Min.X), round(r.Min.Y), round(r.Width()), round(r.Height())
}

func strokeStyle(st paint.Stroke) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%g", hexColor(st.Color), st.Width)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// textAnchor maps a horizontal alignment to the SVG text-anchor value, so
// viewers without the measuring font still align labels on their anchor.
func textAnchor(a geom.Align) string {
	switch a {
	case geom.AlignCenter:
		return "middle"
	case geom.AlignMax:
		return "end"
	}
	return "start"
}

// anchorX is the x, relative to the galley position, that text-anchor
// attaches to.
func anchorX(r geom.Rect, a geom.Align) float64 {
	switch a {
	case geom.AlignCenter:
		return r.Center().X
	case geom.AlignMax:
		return r.Max.X
	}
	return r.Min.X
}

func round(v float64) int {
	return int(math.Round(v))
}

// countingWriter remembers the first write error, since svgo does not
// report them.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
