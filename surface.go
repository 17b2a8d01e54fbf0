package gadget

import (
	"image/color"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Surface is the host drawing target the dispatcher paints into.
// Coordinates are absolute; implementations must not touch pixels outside
// clip when drawing text.
type Surface interface {
	// Bounds returns the drawable area, normally starting at (0, 0).
	Bounds() layout.Rect

	// Fill paints r with c.
	Fill(r layout.Rect, c color.Color)

	// DrawText draws text with its top-left corner at (x, y), clipped to clip.
	DrawText(x, y int, text string, c color.Color, clip layout.Rect)
}

// Presenter is implemented by surfaces that buffer drawing and need an
// explicit call to make a frame visible.
type Presenter interface {
	Show()
}

// Resizer is implemented by surfaces whose size follows the host window.
type Resizer interface {
	Resize(width, height int)
}

// TextMeasurer is implemented by surfaces that know their text metrics.
type TextMeasurer interface {
	MeasureText(text string) (width, height int)
}

// Canvas is a Surface view restricted to one clip rectangle.
// Behaviors receive a Canvas so they cannot paint outside their region.
type Canvas struct {
	surface Surface
	clip    layout.Rect
}

// NewCanvas returns a canvas drawing into s, clipped to clip.
func NewCanvas(s Surface, clip layout.Rect) *Canvas {
	return &Canvas{surface: s, clip: clip}
}

// Clip returns the canvas clip rectangle.
func (c *Canvas) Clip() layout.Rect {
	return c.clip
}

// Sub returns a canvas on the same surface clipped to the part of r inside
// this canvas' clip.
func (c *Canvas) Sub(r layout.Rect) *Canvas {
	clip, _ := layout.Intersect(c.clip, r)
	return &Canvas{surface: c.surface, clip: clip}
}

// Fill paints the part of r inside the clip.
func (c *Canvas) Fill(r layout.Rect, col color.Color) {
	if r, ok := layout.Intersect(r, c.clip); ok {
		c.surface.Fill(r, col)
	}
}

// DrawText draws text at (x, y), clipped.
func (c *Canvas) DrawText(x, y int, text string, col color.Color) {
	if c.clip.IsEmpty() || text == "" {
		return
	}
	c.surface.DrawText(x, y, text, col, c.clip)
}

// Frame paints the border strips of r, that is r minus r.Inset(edges).
func (c *Canvas) Frame(r layout.Rect, edges layout.Edges, col color.Color) {
	inner := r.Inset(edges)
	if _, ok, strips := layout.SplitAgainst(inner, r); ok {
		for _, s := range strips {
			c.Fill(s, col)
		}
		return
	}
	// border swallows the whole rect
	c.Fill(r, col)
}

// MeasureText returns the size of text on the underlying surface.
// Surfaces without metrics count one unit per rune on a single line.
func (c *Canvas) MeasureText(text string) (int, int) {
	if m, ok := c.surface.(TextMeasurer); ok {
		return m.MeasureText(text)
	}
	return len([]rune(text)), 1
}
