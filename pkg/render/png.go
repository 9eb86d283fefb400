// Package render draws a painted canvas to PNG, SVG or a terminal screen.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/paint"
	"github.com/ha1tch/plotdeco/pkg/text"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Scale      int     // supersampling factor
	FontSize   float64 // size the galleys were shaped at
	Background color.RGBA
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Scale:      4,
		FontSize:   12,
		Background: colorWhite,
	}
}

var colorWhite = color.RGBA{255, 255, 255, 255}

// renderContext holds rendering parameters including scale
type renderContext struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

// EncodePNG renders canvas and writes it as PNG.
func EncodePNG(w io.Writer, canvas *paint.Canvas, opts PNGOptions) error {
	img := RenderImage(canvas, opts)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// RenderImage rasterizes canvas. Drawing happens at opts.Scale times the
// canvas size and is downsampled for smoother lines.
func RenderImage(canvas *paint.Canvas, opts PNGOptions) *image.RGBA {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 12
	}
	size := canvas.Size()
	width := int(math.Ceil(size.X))
	height := int(math.Ceil(size.Y))

	scale := opts.Scale
	large := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.Draw(large, large.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx := &renderContext{
		img:   large,
		scale: float64(scale),
		face:  text.NewFontShaper(opts.FontSize * float64(scale)).Face(),
	}
	for _, cs := range canvas.Shapes() {
		ctx.drawShape(cs)
	}

	if scale == 1 {
		return large
	}
	final := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final
}

// clipped returns the part of the image inside the clip rect.
func (ctx *renderContext) clipped(clip geom.Rect) *image.RGBA {
	r := image.Rect(
		int(math.Floor(clip.Min.X*ctx.scale)),
		int(math.Floor(clip.Min.Y*ctx.scale)),
		int(math.Ceil(clip.Max.X*ctx.scale)),
		int(math.Ceil(clip.Max.Y*ctx.scale)),
	)
	return ctx.img.SubImage(r).(*image.RGBA)
}

func (ctx *renderContext) drawShape(cs paint.ClippedShape) {
	dst := ctx.clipped(cs.Clip)
	if dst.Bounds().Empty() {
		return
	}
	switch s := cs.Shape.(type) {
	case paint.LineSegment:
		if !s.Stroke.IsVisible() {
			return
		}
		a, b := s.Points[0], s.Points[1]
		drawLine(dst, a.X*ctx.scale, a.Y*ctx.scale, b.X*ctx.scale, b.Y*ctx.scale,
			s.Stroke.Width*ctx.scale, s.Stroke.Color)
	case paint.GalleyShape:
		ctx.drawGalley(dst, s)
	case paint.RectShape:
		ctx.drawRect(dst, s)
	}
}

func (ctx *renderContext) drawRect(dst *image.RGBA, s paint.RectShape) {
	r := s.Rect
	if s.Fill.A > 0 {
		fill := image.Rect(
			int(math.Round(r.Min.X*ctx.scale)), int(math.Round(r.Min.Y*ctx.scale)),
			int(math.Round(r.Max.X*ctx.scale)), int(math.Round(r.Max.Y*ctx.scale)),
		)
		draw.Draw(dst, fill.Intersect(dst.Bounds()), image.NewUniform(s.Fill), image.Point{}, draw.Over)
	}
	if !s.Stroke.IsVisible() {
		return
	}
	th := s.Stroke.Width * ctx.scale
	x0, y0 := r.Min.X*ctx.scale, r.Min.Y*ctx.scale
	x1, y1 := r.Max.X*ctx.scale, r.Max.Y*ctx.scale
	drawLine(dst, x0, y0, x1, y0, th, s.Stroke.Color)
	drawLine(dst, x1, y0, x1, y1, th, s.Stroke.Color)
	drawLine(dst, x1, y1, x0, y1, th, s.Stroke.Color)
	drawLine(dst, x0, y1, x0, y0, th, s.Stroke.Color)
}

// drawGalley draws each row of the galley at its shaped position. The face
// is the galley's font scaled up, so row geometry scales linearly.
func (ctx *renderContext) drawGalley(dst *image.RGBA, s paint.GalleyShape) {
	if s.Galley == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(s.Color),
		Face: ctx.face,
	}
	for _, row := range s.Galley.Rows {
		if row.Text == "" {
			continue
		}
		x := (s.Pos.X + row.Rect.Min.X) * ctx.scale
		baseline := (s.Pos.Y + row.Rect.Min.Y + row.Ascent) * ctx.scale
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(baseline * 64)),
		}
		d.DrawString(row.Text)
	}
}

// drawLine draws a line between two points with the given thickness.
func drawLine(img *image.RGBA, x1, y1, x2, y2, thickness float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}
