package widget

import (
	"image/color"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Panel fills its client area and draws its border in a solid color.
type Panel struct {
	Background color.Color
	Border     color.Color
}

var _ gadget.Behavior = (*Panel)(nil)

// NewPanel creates a panel in the theme's colors.
func NewPanel(theme Theme) *Panel {
	return &Panel{Background: theme.Panel, Border: theme.Border}
}

// Paint draws the part of the panel inside region.
func (p *Panel) Paint(pc *gadget.PaintContext, c *gadget.Canvas, _ layout.Rect) {
	paintBox(pc, c, p.Background, p.Border)
}

// paintBox fills the client area and frames the border. The two are
// disjoint, so every pixel is written once.
func paintBox(pc *gadget.PaintContext, c *gadget.Canvas, bg, border color.Color) {
	c.Fill(pc.Client, bg)
	if edges := pc.Tree.Border(pc.Node); !edges.IsZero() {
		c.Frame(pc.Rect, edges, border)
	}
}
