package text

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontShaper measures text with a font face. Units are pixels.
type FontShaper struct {
	face font.Face
	size float64
}

// NewFontShaper creates a shaper using Go Regular at the given size in
// pixels. If the embedded font cannot be loaded it falls back to the 7x13
// bitmap face.
func NewFontShaper(size float64) *FontShaper {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return &FontShaper{face: basicfont.Face7x13, size: 13}
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return &FontShaper{face: basicfont.Face7x13, size: 13}
	}
	return &FontShaper{face: face, size: size}
}

// NewBitmapShaper returns a shaper over the fixed 7x13 bitmap face.
func NewBitmapShaper() *FontShaper {
	return &FontShaper{face: basicfont.Face7x13, size: 13}
}

// Face returns the underlying font face, for backends that draw glyphs.
func (s *FontShaper) Face() font.Face { return s.face }

// Size returns the font size in pixels.
func (s *FontShaper) Size() float64 { return s.size }

// Layout implements Shaper.
func (s *FontShaper) Layout(job Job) *Galley {
	return buildGalley(job, faceMetrics{s.face})
}

type faceMetrics struct {
	face font.Face
}

func (m faceMetrics) width(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

func (m faceMetrics) rowHeight() float64 {
	return fixedToFloat(m.face.Metrics().Height)
}

func (m faceMetrics) ascent() float64 {
	return fixedToFloat(m.face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// CellShaper measures text in terminal cells: one row per line, one unit per
// column, wide runes taking two.
type CellShaper struct{}

// Layout implements Shaper.
func (CellShaper) Layout(job Job) *Galley {
	return buildGalley(job, cellMetrics{})
}

type cellMetrics struct{}

func (cellMetrics) width(s string) float64 { return float64(runewidth.StringWidth(s)) }
func (cellMetrics) rowHeight() float64     { return 1 }
func (cellMetrics) ascent() float64        { return 1 }
