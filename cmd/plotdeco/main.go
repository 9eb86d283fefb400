// Command plotdeco lays out plots with axis labels drawn in margins around
// the plotting area and renders them to PNG, SVG or the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ha1tch/plotdeco/pkg/config"
	"github.com/ha1tch/plotdeco/pkg/plot"
	"github.com/ha1tch/plotdeco/pkg/render"
	"github.com/ha1tch/plotdeco/pkg/text"
	"github.com/ha1tch/plotdeco/pkg/ui"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newApp(log).Run(os.Args); err != nil {
		log.WithError(err).Error("plotdeco failed")
		os.Exit(1)
	}
}

func newApp(log *logrus.Logger) *cli.App {
	return &cli.App{
		Name:  "plotdeco",
		Usage: "lay out and render plots with outside axis labels",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log layout details"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "png",
				Usage:     "render the demo plot to a PNG file",
				ArgsUsage: " ",
				Flags:     append(plotFlags(), outputFlag("plot.png")),
				Action: func(c *cli.Context) error {
					return cmdImage(c, log, "png")
				},
			},
			{
				Name:      "svg",
				Usage:     "render the demo plot to an SVG file",
				ArgsUsage: " ",
				Flags:     append(plotFlags(), outputFlag("plot.svg")),
				Action: func(c *cli.Context) error {
					return cmdImage(c, log, "svg")
				},
			},
			{
				Name:  "term",
				Usage: "show the plot in the terminal (drag to pan, q to quit)",
				Flags: plotFlags(),
				Action: func(c *cli.Context) error {
					return cmdTerm(c, log)
				},
			},
			{
				Name:  "layout",
				Usage: "print the outer size, offset and inner rect for a plot",
				Flags: plotFlags(),
				Action: func(c *cli.Context) error {
					return cmdLayout(c, log)
				},
			},
		},
	}
}

func plotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{Name: "config", Aliases: []string{"c"}, Usage: "plot config file (.toml, .yaml)"},
		&cli.StringFlag{Name: "x-axis", Usage: "x axis position: outside-low, low, high, outside-high, at-cross"},
		&cli.StringFlag{Name: "y-axis", Usage: "y axis position: outside-low, low, high, outside-high, at-cross"},
		&cli.Float64Flag{Name: "margin", Usage: "width of the outside axis margin"},
		&cli.Float64Flag{Name: "width", Usage: "inner plot width"},
		&cli.Float64Flag{Name: "height", Usage: "inner plot height"},
		&cli.StringFlag{Name: "title", Usage: "plot title"},
	}
}

func outputFlag(def string) cli.Flag {
	return &cli.PathFlag{Name: "output", Aliases: []string{"o"}, Value: def, Usage: "output file"}
}

// loadPlot builds the plot config from the config file, if any, then the
// command line flags.
func loadPlot(c *cli.Context) (config.Plot, plot.AxisPositions, error) {
	cfg := config.Default()
	if path := c.Path("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, plot.AxisPositions{}, err
		}
		cfg = loaded
	}
	if c.IsSet("x-axis") {
		cfg.XAxis = c.String("x-axis")
	}
	if c.IsSet("y-axis") {
		cfg.YAxis = c.String("y-axis")
	}
	if c.IsSet("margin") {
		cfg.AxisMargin = c.Float64("margin")
	}
	if c.IsSet("width") {
		cfg.Width = c.Float64("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Float64("height")
	}
	if c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, plot.AxisPositions{}, err
	}
	positions, err := cfg.AxisPositions()
	return cfg, positions, err
}

func cmdImage(c *cli.Context, log *logrus.Logger, format string) error {
	cfg, positions, err := loadPlot(c)
	if err != nil {
		return err
	}

	shaper := text.NewFontShaper(cfg.FontSize)
	f := buildFrame(cfg, positions, shaper, pixelStyle(), ui.Input{})
	log.WithFields(logrus.Fields{
		"x_axis":    positions[plot.AxisX],
		"y_axis":    positions[plot.AxisY],
		"outer":     f.Outer,
		"inner":     f.Inner,
		"decorated": f.Decorated,
		"inside":    f.Inside,
	}).Debug("plot laid out")

	output := c.Path("output")
	if filepath.Ext(output) == "" {
		output += "." + format
	}
	out, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "create %s", output)
	}
	defer out.Close()

	switch format {
	case "png":
		opts := render.DefaultPNGOptions()
		opts.FontSize = cfg.FontSize
		err = render.EncodePNG(out, f.Canvas, opts)
	case "svg":
		opts := render.DefaultSVGOptions()
		opts.FontSize = cfg.FontSize
		err = render.WriteSVG(out, f.Canvas, opts)
	default:
		err = errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "write %s", output)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "close %s", output)
	}

	fmt.Fprintf(c.App.Writer, "Written: %s\n", output)
	return nil
}

func cmdLayout(c *cli.Context, log *logrus.Logger) error {
	cfg, positions, err := loadPlot(c)
	if err != nil {
		return err
	}

	outer, offset := plot.PlotLayout(cfg.Size(), positions, cfg.AxisMargin)
	log.WithFields(logrus.Fields{"outer": outer, "offset": offset}).Debug("layout computed")

	w := c.App.Writer
	fmt.Fprintf(w, "axes    x=%s y=%s\n", positions[plot.AxisX], positions[plot.AxisY])
	fmt.Fprintf(w, "outer   %g x %g\n", outer.X, outer.Y)
	fmt.Fprintf(w, "offset  %g, %g\n", offset.X, offset.Y)
	fmt.Fprintf(w, "inner   x=%g y=%g w=%g h=%g\n", offset.X, offset.Y, cfg.Width, cfg.Height)
	return nil
}
