package widget

import (
	"image/color"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Align is the horizontal placement of text inside a box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label draws one line of text on a solid background.
type Label struct {
	Text       string
	Color      color.Color
	Background color.Color
	Align      Align
}

var _ gadget.Behavior = (*Label)(nil)

// NewLabel creates a left-aligned label in the theme's colors.
func NewLabel(theme Theme, text string) *Label {
	return &Label{Text: text, Color: theme.Text, Background: theme.Panel}
}

// Paint draws the part of the label inside region.
func (l *Label) Paint(pc *gadget.PaintContext, c *gadget.Canvas, _ layout.Rect) {
	c.Fill(pc.Rect, l.Background)
	drawText(c, pc.Client, l.Text, l.Color, l.Align)
}

// SetText replaces the text and damages node if it changed.
func (l *Label) SetText(app *gadget.App, node gadget.Handle, text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	app.Invalidate(node)
}

// drawText places text in box, vertically centered, clipped to box.
func drawText(c *gadget.Canvas, box layout.Rect, text string, col color.Color, align Align) {
	if text == "" {
		return
	}
	c = c.Sub(box)
	w, h := c.MeasureText(text)
	x := box.X
	switch align {
	case AlignCenter:
		x += (box.Width - w) / 2
	case AlignRight:
		x += box.Width - w
	}
	y := box.Y + (box.Height-h)/2
	c.DrawText(x, y, text, col)
}
