package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/plotdeco/pkg/geom"
)

func TestCellShaperAlignment(t *testing.T) {
	tests := []struct {
		name    string
		valign  geom.Align
		halign  geom.Align
		wantMin geom.Pos2
	}{
		{"top center", geom.AlignMin, geom.AlignCenter, geom.P(-2, 0)},
		{"center right", geom.AlignCenter, geom.AlignMax, geom.P(-4, -0.5)},
		{"top left", geom.AlignMin, geom.AlignMin, geom.P(0, 0)},
		{"bottom left", geom.AlignMax, geom.AlignMin, geom.P(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := CellShaper{}.Layout(Job{Text: "1.25", VAlign: tt.valign, HAlign: tt.halign})
			assert.Equal(t, tt.wantMin, g.Rect.Min)
			assert.Equal(t, geom.V(4, 1), g.Size())
		})
	}
}

func TestCellShaperWideRunes(t *testing.T) {
	g := CellShaper{}.Layout(NewJob("日本", geom.AlignMin))
	assert.Equal(t, 4.0, g.Size().X)
}

func TestMultiLineRowsAreAlignedIndividually(t *testing.T) {
	g := CellShaper{}.Layout(Job{Text: "100\n5", VAlign: geom.AlignMin, HAlign: geom.AlignMax})
	require.Len(t, g.Rows, 2)

	assert.Equal(t, geom.V(3, 2), g.Size())
	assert.Equal(t, -3.0, g.Rows[0].Rect.Min.X)
	assert.Equal(t, -1.0, g.Rows[1].Rect.Min.X)
	assert.Equal(t, 1.0, g.Rows[1].Rect.Min.Y)
	// right edges line up on the anchor
	assert.Equal(t, 0.0, g.Rows[0].Rect.Max.X)
	assert.Equal(t, 0.0, g.Rows[1].Rect.Max.X)
}

func TestEmptyTextGivesZeroWidthGalley(t *testing.T) {
	g := NewFontShaper(12).Layout(NewJob("", geom.AlignCenter))

	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0.0, g.Size().X)
	assert.Greater(t, g.Size().Y, 0.0)
}

func TestFontShaperMeasures(t *testing.T) {
	s := NewFontShaper(14)
	short := s.Layout(NewJob("1", geom.AlignMin))
	long := s.Layout(NewJob("1000", geom.AlignMin))

	assert.Greater(t, long.Size().X, short.Size().X)
	assert.Equal(t, short.Size().Y, long.Size().Y)
	assert.Equal(t, 14.0, s.Size())
	assert.NotNil(t, s.Face())
}

func TestBitmapShaperFixedAdvance(t *testing.T) {
	g := NewBitmapShaper().Layout(Job{Text: "abc", HAlign: geom.AlignCenter})

	// Face7x13 advances 7 pixels per glyph
	assert.Equal(t, 21.0, g.Size().X)
	assert.Equal(t, -10.5, g.Rect.Min.X)
}
