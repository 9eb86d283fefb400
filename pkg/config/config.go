// Package config loads plot settings from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/plot"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid plot config")

// Plot describes one plot to draw.
type Plot struct {
	Title      string     `toml:"title" yaml:"title"`
	Width      float64    `toml:"width" yaml:"width"`   // inner plot width
	Height     float64    `toml:"height" yaml:"height"` // inner plot height
	AxisMargin float64    `toml:"axis_margin" yaml:"axis_margin"`
	XAxis      string     `toml:"x_axis" yaml:"x_axis"`
	YAxis      string     `toml:"y_axis" yaml:"y_axis"`
	XRange     [2]float64 `toml:"x_range" yaml:"x_range"`
	YRange     [2]float64 `toml:"y_range" yaml:"y_range"`
	Ticks      int        `toml:"ticks" yaml:"ticks"`
	FontSize   float64    `toml:"font_size" yaml:"font_size"`
}

// Default returns the settings used when no file is given.
func Default() Plot {
	return Plot{
		Width:      400,
		Height:     240,
		AxisMargin: 30,
		XAxis:      plot.OutsideLow.String(),
		YAxis:      plot.OutsideLow.String(),
		XRange:     [2]float64{0, 10},
		YRange:     [2]float64{-1, 1},
		Ticks:      5,
		FontSize:   12,
	}
}

// Load reads a config file, filling unset fields from Default. The format
// is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Plot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plot{}, errors.Wrapf(err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Plot{}, errors.Errorf("config %s: unsupported format %q", path, ext)
	}
}

// ParseTOML parses TOML config data over the defaults.
func ParseTOML(data []byte) (Plot, error) {
	p := Default()
	if _, err := toml.Decode(string(data), &p); err != nil {
		return Plot{}, errors.Wrap(err, "parse toml")
	}
	return p, p.Validate()
}

// ParseYAML parses YAML config data over the defaults.
func ParseYAML(data []byte) (Plot, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plot{}, errors.Wrap(err, "parse yaml")
	}
	return p, p.Validate()
}

// Validate checks sizes, ranges and axis names.
func (p Plot) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "plot size %gx%g must be positive", p.Width, p.Height)
	}
	if p.AxisMargin < 0 {
		return errors.Wrapf(ErrInvalidConfig, "axis margin %g is negative", p.AxisMargin)
	}
	if p.XRange[0] >= p.XRange[1] {
		return errors.Wrapf(ErrInvalidConfig, "x range %v is empty", p.XRange)
	}
	if p.YRange[0] >= p.YRange[1] {
		return errors.Wrapf(ErrInvalidConfig, "y range %v is empty", p.YRange)
	}
	if p.Ticks < 2 {
		return errors.Wrapf(ErrInvalidConfig, "need at least 2 ticks, got %d", p.Ticks)
	}
	if p.FontSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "font size %g must be positive", p.FontSize)
	}
	if _, err := p.AxisPositions(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	return nil
}

// AxisPositions parses the x and y axis names.
func (p Plot) AxisPositions() (plot.AxisPositions, error) {
	x, err := plot.ParseAxisPosition(p.XAxis)
	if err != nil {
		return plot.AxisPositions{}, errors.Wrap(err, "x_axis")
	}
	y, err := plot.ParseAxisPosition(p.YAxis)
	if err != nil {
		return plot.AxisPositions{}, errors.Wrap(err, "y_axis")
	}
	return plot.AxisPositions{x, y}, nil
}

// Size returns the inner plot size.
func (p Plot) Size() geom.Vec2 {
	return geom.V(p.Width, p.Height)
}
