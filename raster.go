package gadget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// RasterSurface is an in-memory RGBA surface. Text uses a fixed 7x13 bitmap face.
type RasterSurface struct {
	img  *image.RGBA
	face font.Face
}

var (
	_ Surface      = (*RasterSurface)(nil)
	_ Resizer      = (*RasterSurface)(nil)
	_ TextMeasurer = (*RasterSurface)(nil)
)

// NewRasterSurface creates a transparent raster of the given size.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		face: basicfont.Face7x13,
	}
}

func toImageRect(r layout.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Bounds returns the raster size.
func (s *RasterSurface) Bounds() layout.Rect {
	b := s.img.Bounds()
	return layout.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// Fill paints r with c, replacing what was there.
func (s *RasterSurface) Fill(r layout.Rect, c color.Color) {
	draw.Draw(s.img, toImageRect(r), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawText draws text with its top-left corner at (x, y), clipped to clip.
func (s *RasterSurface) DrawText(x, y int, text string, c color.Color, clip layout.Rect) {
	dst, ok := s.img.SubImage(toImageRect(clip)).(*image.RGBA)
	if !ok || dst.Bounds().Empty() {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(x, y+s.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// MeasureText returns the pixel size of text in the surface face.
func (s *RasterSurface) MeasureText(text string) (int, int) {
	w := font.MeasureString(s.face, text).Ceil()
	return w, s.face.Metrics().Height.Ceil()
}

// Resize reallocates the raster, keeping the overlapping old content.
func (s *RasterSurface) Resize(width, height int) {
	next := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.Draw(next, next.Bounds(), s.img, image.Point{}, draw.Src)
	s.img = next
}

// Image returns the live backing image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current frame.
func (s *RasterSurface) Snapshot() *image.NRGBA {
	return imaging.Clone(s.img)
}

// SavePNG writes the current frame to path. The format follows the extension.
func (s *RasterSurface) SavePNG(path string) error {
	if err := imaging.Save(s.img, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
