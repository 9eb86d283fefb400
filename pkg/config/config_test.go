package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/plot"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()

	require.NoError(t, p.Validate())
	positions, err := p.AxisPositions()
	require.NoError(t, err)
	assert.Equal(t, plot.AxisPositions{plot.OutsideLow, plot.OutsideLow}, positions)
	assert.Equal(t, geom.V(400, 240), p.Size())
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
title = "signal"
width = 200
height = 100
axis_margin = 10
x_axis = "outside-high"
y_axis = "outside_low"
x_range = [0.0, 5.0]
`)

	p, err := ParseTOML(data)
	require.NoError(t, err)

	assert.Equal(t, "signal", p.Title)
	assert.Equal(t, geom.V(200, 100), p.Size())
	assert.Equal(t, 10.0, p.AxisMargin)
	assert.Equal(t, [2]float64{0, 5}, p.XRange)
	// untouched fields keep their defaults
	assert.Equal(t, [2]float64{-1, 1}, p.YRange)
	assert.Equal(t, 5, p.Ticks)

	positions, err := p.AxisPositions()
	require.NoError(t, err)
	assert.Equal(t, plot.AxisPositions{plot.OutsideHigh, plot.OutsideLow}, positions)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
width: 300
height: 150
x_axis: low
y_axis: at-cross
y_range: [-10, 10]
ticks: 3
`)

	p, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, geom.V(300, 150), p.Size())
	assert.Equal(t, [2]float64{-10, 10}, p.YRange)
	assert.Equal(t, 3, p.Ticks)
	assert.Equal(t, 30.0, p.AxisMargin)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plot)
	}{
		{"zero width", func(p *Plot) { p.Width = 0 }},
		{"negative height", func(p *Plot) { p.Height = -5 }},
		{"negative margin", func(p *Plot) { p.AxisMargin = -1 }},
		{"empty x range", func(p *Plot) { p.XRange = [2]float64{1, 1} }},
		{"reversed y range", func(p *Plot) { p.YRange = [2]float64{2, 1} }},
		{"one tick", func(p *Plot) { p.Ticks = 1 }},
		{"no font", func(p *Plot) { p.FontSize = 0 }},
		{"bad axis", func(p *Plot) { p.YAxis = "diagonal" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "plot.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("width = 120\n"), 0644))
	p, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 120.0, p.Width)

	yamlPath := filepath.Join(dir, "plot.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("height: 80\n"), 0644))
	p, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.Height)

	_, err = Load(filepath.Join(dir, "plot.json"))
	assert.Error(t, err)

	jsonPath := filepath.Join(dir, "plot.ini")
	require.NoError(t, os.WriteFile(jsonPath, []byte("width=1"), 0644))
	_, err = Load(jsonPath)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestParseErrors(t *testing.T) {
	_, err := ParseTOML([]byte("width = ["))
	assert.ErrorContains(t, err, "parse toml")

	_, err = ParseYAML([]byte("width: [1"))
	assert.ErrorContains(t, err, "parse yaml")
}
