package gadget

import (
	"image/color"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Behavior is the widget-specific part of a node. The dispatcher calls Paint
// once for every fragment of damaged area the node owns.
type Behavior interface {
	// Paint draws the part of the node inside region. The canvas is already
	// clipped to region, so drawing outside it has no effect.
	Paint(pc *PaintContext, c *Canvas, region layout.Rect)
}

// BehaviorFunc adapts a plain function to the Behavior interface.
type BehaviorFunc func(pc *PaintContext, c *Canvas, region layout.Rect)

// Paint calls f.
func (f BehaviorFunc) Paint(pc *PaintContext, c *Canvas, region layout.Rect) {
	f(pc, c, region)
}

// PaintContext describes the node being painted.
type PaintContext struct {
	Tree *Tree
	Node Handle

	// Rect is the node's absolute rectangle; Client is the area inside its border.
	Rect   layout.Rect
	Client layout.Rect

	Focused bool // node holds keyboard focus
	Pressed bool // node received the pointer press currently held down
}

// Result reports what an input handler did with an event.
type Result struct {
	Consumed bool // stop bubbling to ancestors
	Redraw   bool // node appearance changed; damage its visible area
}

// Context is passed to input handlers. It gives explicit access to the app
// so handlers can mutate the tree without global state.
type Context struct {
	App  *App
	Node Handle
}

// Rect returns the handler node's absolute rectangle.
func (c *Context) Rect() layout.Rect {
	return c.App.tree.AbsoluteRect(c.Node)
}

// Local converts surface coordinates to coordinates relative to the node.
func (c *Context) Local(x, y int) (int, int) {
	r := c.Rect()
	return x - r.X, y - r.Y
}

// State returns the app's current pointer and focus state.
func (c *Context) State() UIState {
	return c.App.state
}

// PointerHandler is implemented by behaviors that react to button presses.
type PointerHandler interface {
	OnPointerDown(ctx *Context, ev PointerEvent) Result
	OnPointerUp(ctx *Context, ev PointerEvent) Result
}

// DragHandler is implemented by behaviors that track pointer motion while
// they hold the press.
type DragHandler interface {
	OnDrag(ctx *Context, ev PointerEvent) Result
}

// KeyHandler is implemented by behaviors that accept keys while focused.
type KeyHandler interface {
	OnKey(ctx *Context, ev KeyEvent) Result
}

// Focusable is implemented by behaviors that can take keyboard focus.
type Focusable interface {
	CanFocus() bool
}

// Fill is a Behavior that paints its whole area with a single color.
type Fill struct {
	Color color.Color
}

// Paint fills region.
func (f Fill) Paint(_ *PaintContext, c *Canvas, region layout.Rect) {
	c.Fill(region, f.Color)
}
