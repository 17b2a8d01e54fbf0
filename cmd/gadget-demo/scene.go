package main

import (
	"fmt"
	"time"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/internal/debug"
	"github.com/grindlemire/go-gadget/pkg/layout"
	"github.com/grindlemire/go-gadget/widget"
)

// grid maps scene coordinates, laid out in terminal cells, onto a surface.
// A terminal uses one unit per cell; a raster scales cells to pixels.
type grid struct {
	cellW, cellH int
	line         int // border thickness in surface units
}

var (
	terminalGrid = grid{cellW: 1, cellH: 1, line: 1}
	rasterGrid   = grid{cellW: 8, cellH: 16, line: 2}
)

func (g grid) rect(x, y, w, h int) layout.Rect {
	return layout.NewRect(x*g.cellW, y*g.cellH, w*g.cellW, h*g.cellH)
}

func (g grid) windowBorder() layout.Edges {
	return widget.WindowBorder(g.cellH, g.line)
}

// scene holds the nodes the demo updates after construction.
type scene struct {
	notes      gadget.Handle
	clock      *widget.Label
	clockNode  gadget.Handle
	counter    *widget.Button
	counterHit int
}

// buildScene populates app with two windows and a status line.
func buildScene(app *gadget.App, theme widget.Theme, g grid) (*scene, error) {
	s := &scene{}
	var err error
	add := func(parent gadget.Handle, r layout.Rect, b gadget.Behavior, opts ...gadget.NodeOption) gadget.Handle {
		if err != nil {
			return gadget.Handle{}
		}
		var h gadget.Handle
		h, err = app.Add(parent, r, append(opts, gadget.WithBehavior(b))...)
		return h
	}

	root := app.Root()

	s.notes = add(root, g.rect(2, 1, 34, 12), widget.NewWindow(theme, "Notes"),
		gadget.WithBorder(g.windowBorder()), gadget.WithName("notes"))
	for i, line := range []string{
		"Drag a title bar to move a window.",
		"Only uncovered damage is repainted.",
		"Tab cycles focus, q quits.",
	} {
		add(s.notes, g.rect(1, 1+i*2, 30, 1), widget.NewLabel(theme, line), gadget.WithName(fmt.Sprintf("line%d", i)))
	}

	clockWin := add(root, g.rect(26, 6, 30, 12), widget.NewWindow(theme, "Clock"),
		gadget.WithBorder(g.windowBorder()), gadget.WithName("clock-window"))

	s.clock = widget.NewLabel(theme, time.Now().Format("15:04:05"))
	s.clock.Align = widget.AlignCenter
	s.clockNode = add(clockWin, g.rect(1, 1, 26, 1), s.clock, gadget.WithName("clock"))

	toggle := widget.NewButton(theme, "Hide notes", nil)
	toggle.OnClick = func(ctx *gadget.Context) {
		s.toggleNotes(ctx, toggle)
	}
	add(clockWin, g.rect(1, 3, 12, 3), toggle, gadget.WithBorderSize(g.line), gadget.WithName("toggle"))

	s.counter = widget.NewButton(theme, "Clicks: 0", func(ctx *gadget.Context) {
		s.counterHit++
		s.counter.Text = fmt.Sprintf("Clicks: %d", s.counterHit)
		ctx.App.Invalidate(ctx.Node)
	})
	add(clockWin, g.rect(14, 3, 13, 3), s.counter, gadget.WithBorderSize(g.line), gadget.WithName("counter"))

	quit := widget.NewButton(theme, "Quit", func(ctx *gadget.Context) { ctx.App.Stop() })
	add(clockWin, g.rect(1, 7, 26, 3), quit, gadget.WithBorderSize(g.line), gadget.WithName("quit"))

	bounds := app.Surface().Bounds()
	status := widget.NewLabel(theme, "gadget-demo: q to quit")
	status.Background = theme.Title
	status.Color = theme.TitleText
	add(root, layout.NewRect(0, bounds.Height-g.cellH, bounds.Width, g.cellH), status, gadget.WithName("status"))

	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	return s, nil
}

// toggleNotes hides or shows the notes window and relabels the button.
func (s *scene) toggleNotes(ctx *gadget.Context, toggle *widget.Button) {
	app := ctx.App
	var err error
	if app.Tree().IsVisible(s.notes) {
		err = app.Hide(s.notes)
		toggle.Text = "Show notes"
	} else {
		err = app.Show(s.notes)
		toggle.Text = "Hide notes"
	}
	if err != nil {
		debug.Log("toggleNotes: %v", err)
		return
	}
	app.Invalidate(ctx.Node)
}

// tick updates the clock label.
func (s *scene) tick(app *gadget.App, now time.Time) {
	s.clock.SetText(app, s.clockNode, now.Format("15:04:05"))
}
