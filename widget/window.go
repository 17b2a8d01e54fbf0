package widget

import (
	"image/color"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/internal/debug"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Window is a panel with a title bar drawn in its top border.
// Pressing anywhere on it raises it; dragging the title bar moves it.
type Window struct {
	Title      string
	Background color.Color
	Border     color.Color
	TitleBar   color.Color
	TitleText  color.Color

	dragging     bool
	lastX, lastY int
}

var (
	_ gadget.Behavior       = (*Window)(nil)
	_ gadget.PointerHandler = (*Window)(nil)
	_ gadget.DragHandler    = (*Window)(nil)
)

// NewWindow creates a window in the theme's colors.
func NewWindow(theme Theme, title string) *Window {
	return &Window{
		Title:      title,
		Background: theme.Panel,
		Border:     theme.Border,
		TitleBar:   theme.Title,
		TitleText:  theme.TitleText,
	}
}

// WindowBorder returns the border for a window node: a title bar of
// titleHeight on top and a frame of width side elsewhere.
func WindowBorder(titleHeight, side int) layout.Edges {
	return layout.Edges{Top: titleHeight, Right: side, Bottom: side, Left: side}
}

// Paint draws the part of the window inside region.
func (w *Window) Paint(pc *gadget.PaintContext, c *gadget.Canvas, _ layout.Rect) {
	r := pc.Rect
	edges := pc.Tree.Border(pc.Node)

	title := layout.NewRect(r.X, r.Y, r.Width, edges.Top)
	c.Fill(title, w.TitleBar)
	body := layout.NewRect(r.X, r.Y+edges.Top, r.Width, r.Height-edges.Top)
	if sides := (layout.Edges{Right: edges.Right, Bottom: edges.Bottom, Left: edges.Left}); !sides.IsZero() {
		c.Frame(body, sides, w.Border)
	}
	c.Fill(pc.Client, w.Background)

	drawText(c, title.Inset(layout.Edges{Left: edges.Left, Right: edges.Right}), w.Title, w.TitleText, AlignLeft)
}

// OnPointerDown raises the window and starts a drag when the press is on
// the title bar.
func (w *Window) OnPointerDown(ctx *gadget.Context, ev gadget.PointerEvent) gadget.Result {
	if err := ctx.App.Raise(ctx.Node); err != nil {
		debug.Log("Window.OnPointerDown: raise %q: %v", w.Title, err)
	}
	_, ly := ctx.Local(ev.X, ev.Y)
	w.dragging = ly < ctx.App.Tree().Border(ctx.Node).Top
	w.lastX, w.lastY = ev.X, ev.Y
	return gadget.Result{Consumed: true}
}

// OnDrag moves the window by the pointer delta.
func (w *Window) OnDrag(ctx *gadget.Context, ev gadget.PointerEvent) gadget.Result {
	if !w.dragging {
		return gadget.Result{Consumed: true}
	}
	dx, dy := ev.X-w.lastX, ev.Y-w.lastY
	w.lastX, w.lastY = ev.X, ev.Y
	if dx == 0 && dy == 0 {
		return gadget.Result{Consumed: true}
	}

	r := ctx.App.Tree().Rect(ctx.Node)
	if err := ctx.App.Move(ctx.Node, r.X+dx, r.Y+dy); err != nil {
		debug.Log("Window.OnDrag: move %q: %v", w.Title, err)
	}
	return gadget.Result{Consumed: true}
}

// OnPointerUp ends a drag.
func (w *Window) OnPointerUp(_ *gadget.Context, _ gadget.PointerEvent) gadget.Result {
	w.dragging = false
	return gadget.Result{Consumed: true}
}
