package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ha1tch/plotdeco/pkg/config"
	"github.com/ha1tch/plotdeco/pkg/geom"
	"github.com/ha1tch/plotdeco/pkg/plot"
	"github.com/ha1tch/plotdeco/pkg/render"
	"github.com/ha1tch/plotdeco/pkg/text"
	"github.com/ha1tch/plotdeco/pkg/ui"
)

// termMargin is the outside axis margin in cells.
const termMargin = 7

// termView is the interactive terminal plot.
type termView struct {
	screen    tcell.Screen
	log       *logrus.Logger
	cfg       config.Plot
	positions plot.AxisPositions
	input     ui.Input
	last      geom.Pos2
}

func cmdTerm(c *cli.Context, log *logrus.Logger) error {
	cfg, positions, err := loadPlot(c)
	if err != nil {
		return err
	}
	if !c.IsSet("margin") {
		cfg.AxisMargin = termMargin
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &termView{screen: screen, log: log, cfg: cfg, positions: positions}
	v.run()
	return nil
}

func (v *termView) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return
		}
		v.draw()
	}
}

func (v *termView) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := geom.P(float64(x), float64(y))
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := v.input.Pressed

	v.input = ui.Input{Pointer: pos, HasPointer: true, Pressed: pressed}
	if pressed && wasPressed {
		v.input.Delta = pos.Sub(v.last)
	}
	v.input.Clicked = wasPressed && !pressed
	v.last = pos
}

// fitToScreen sizes the inner plot so the whole footprint fills the screen.
func (v *termView) fitToScreen(w, h int) config.Plot {
	cfg := v.cfg
	outer, _ := plot.PlotLayout(geom.V(0, 0), v.positions, cfg.AxisMargin)
	titleH := 0.0
	if cfg.Title != "" {
		titleH = 1
	}
	cfg.Width = float64(w) - outer.X - 1
	cfg.Height = float64(h) - outer.Y - titleH - 1
	if cfg.Width < 4 {
		cfg.Width = 4
	}
	if cfg.Height < 2 {
		cfg.Height = 2
	}
	return cfg
}

func (v *termView) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	cfg := v.fitToScreen(w, h)

	f := buildFrame(cfg, v.positions, text.CellShaper{}, cellStyle(), v.input)
	if f.Response.Dragged {
		v.pan(f.Response.DragDelta, f.Inner)
		f = buildFrame(v.fitToScreen(w, h), v.positions, text.CellShaper{}, cellStyle(), v.input)
	}
	v.input.Delta = geom.Vec2{}

	v.log.WithFields(logrus.Fields{"inner": f.Inner, "outer": f.Outer}).Debug("terminal frame")
	render.DrawScreen(v.screen, f.Canvas)
	v.screen.Show()
}

// pan shifts the data ranges opposite to the pointer drag.
func (v *termView) pan(delta geom.Vec2, inner geom.Rect) {
	xSpan := v.cfg.XRange[1] - v.cfg.XRange[0]
	ySpan := v.cfg.YRange[1] - v.cfg.YRange[0]
	dx := -delta.X / inner.Width() * xSpan
	dy := delta.Y / inner.Height() * ySpan
	v.cfg.XRange = [2]float64{v.cfg.XRange[0] + dx, v.cfg.XRange[1] + dx}
	v.cfg.YRange = [2]float64{v.cfg.YRange[0] + dy, v.cfg.YRange[1] + dy}
}
