package widget

import (
	"image/color"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Button is a focusable push button. OnClick runs when the press is
// released over the button, or on Enter or space while it has focus.
type Button struct {
	Text       string
	Color      color.Color
	Background color.Color
	Pressed    color.Color // background while held down
	Border     color.Color
	Focus      color.Color // border while focused
	OnClick    func(ctx *gadget.Context)
}

var (
	_ gadget.Behavior       = (*Button)(nil)
	_ gadget.PointerHandler = (*Button)(nil)
	_ gadget.KeyHandler     = (*Button)(nil)
	_ gadget.Focusable      = (*Button)(nil)
)

// NewButton creates a button in the theme's colors.
func NewButton(theme Theme, text string, onClick func(ctx *gadget.Context)) *Button {
	return &Button{
		Text:       text,
		Color:      theme.ButtonText,
		Background: theme.Button,
		Pressed:    Shade(theme.Button, -0.3),
		Border:     theme.Border,
		Focus:      theme.Focus,
		OnClick:    onClick,
	}
}

// Paint draws the part of the button inside region.
func (b *Button) Paint(pc *gadget.PaintContext, c *gadget.Canvas, _ layout.Rect) {
	bg, border := b.Background, b.Border
	if pc.Pressed {
		bg = b.Pressed
	}
	if pc.Focused {
		border = b.Focus
	}
	paintBox(pc, c, bg, border)
	drawText(c, pc.Client, b.Text, b.Color, AlignCenter)
}

// OnPointerDown shows the pressed state.
func (b *Button) OnPointerDown(_ *gadget.Context, _ gadget.PointerEvent) gadget.Result {
	return gadget.Result{Consumed: true, Redraw: true}
}

// OnPointerUp clicks if the pointer is still over the button.
func (b *Button) OnPointerUp(ctx *gadget.Context, ev gadget.PointerEvent) gadget.Result {
	if ctx.Rect().ContainsPoint(ev.X, ev.Y) {
		b.click(ctx)
	}
	return gadget.Result{Consumed: true, Redraw: true}
}

// OnKey clicks on Enter and space.
func (b *Button) OnKey(ctx *gadget.Context, ev gadget.KeyEvent) gadget.Result {
	if ev.Key == gadget.KeyEnter || (ev.Key == gadget.KeyRune && ev.Rune == ' ') {
		b.click(ctx)
		return gadget.Result{Consumed: true}
	}
	return gadget.Result{}
}

// CanFocus implements gadget.Focusable.
func (b *Button) CanFocus() bool {
	return true
}

func (b *Button) click(ctx *gadget.Context) {
	if b.OnClick != nil {
		b.OnClick(ctx)
	}
}
