// Package text turns label strings into positioned glyph runs (galleys).
package text

import (
	"strings"

	"github.com/ha1tch/plotdeco/pkg/geom"
)

// Job describes one piece of text to lay out.
type Job struct {
	Text   string
	VAlign geom.Align
	HAlign geom.Align
}

// NewJob returns a job for text with the given vertical alignment and the
// default (left) horizontal alignment.
func NewJob(s string, valign geom.Align) Job {
	return Job{Text: s, VAlign: valign, HAlign: geom.AlignMin}
}

// Row is a single line of a galley.
type Row struct {
	Text   string
	Rect   geom.Rect // relative to the galley anchor
	Ascent float64   // distance from Rect.Min.Y to the baseline
}

// Galley is shaped text. All rectangles are relative to the anchor point the
// galley is drawn at, so the anchor falls on the aligned edge or center.
type Galley struct {
	Job  Job
	Rows []Row
	Rect geom.Rect
}

// Size returns the galley's bounding size.
func (g *Galley) Size() geom.Vec2 { return g.Rect.Size() }

// IsEmpty reports whether the galley has no visible text.
func (g *Galley) IsEmpty() bool {
	for _, r := range g.Rows {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// Shaper lays out text jobs into galleys.
type Shaper interface {
	Layout(job Job) *Galley
}

// metrics is the measurement a concrete shaper supplies to buildGalley.
type metrics interface {
	width(s string) float64
	rowHeight() float64
	ascent() float64
}

// buildGalley splits the job into rows and positions them around the anchor
// according to the job's alignment.
func buildGalley(job Job, m metrics) *Galley {
	lines := strings.Split(job.Text, "\n")
	rowH := m.rowHeight()

	var maxW float64
	widths := make([]float64, len(lines))
	for i, line := range lines {
		widths[i] = m.width(line)
		if widths[i] > maxW {
			maxW = widths[i]
		}
	}

	totalH := rowH * float64(len(lines))
	top := job.VAlign.Offset(totalH)
	left := job.HAlign.Offset(maxW)

	g := &Galley{
		Job:  job,
		Rows: make([]Row, len(lines)),
		Rect: geom.RectFromMinSize(geom.P(left, top), geom.V(maxW, totalH)),
	}
	for i, line := range lines {
		y := top + float64(i)*rowH
		x := job.HAlign.Offset(widths[i])
		g.Rows[i] = Row{
			Text:   line,
			Rect:   geom.RectFromMinSize(geom.P(x, y), geom.V(widths[i], rowH)),
			Ascent: m.ascent(),
		}
	}
	return g
}
