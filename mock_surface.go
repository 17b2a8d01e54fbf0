package gadget

import (
	"image/color"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// MockSurface is an in-memory Surface for testing.
// It records every operation and counts how many times each pixel was filled.
type MockSurface struct {
	width, height int
	pixels        []color.Color
	paints        []int
	fills         []layout.Rect
	texts         []MockText
	shows         int
}

// MockText is one recorded DrawText call.
type MockText struct {
	X, Y int
	Text string
	Clip layout.Rect
}

var (
	_ Surface   = (*MockSurface)(nil)
	_ Presenter = (*MockSurface)(nil)
	_ Resizer   = (*MockSurface)(nil)
)

// NewMockSurface creates a mock surface with the given dimensions.
func NewMockSurface(width, height int) *MockSurface {
	return &MockSurface{
		width:  width,
		height: height,
		pixels: make([]color.Color, width*height),
		paints: make([]int, width*height),
	}
}

// Bounds returns the surface size.
func (m *MockSurface) Bounds() layout.Rect {
	return layout.NewRect(0, 0, m.width, m.height)
}

// Fill records the fill and paints every in-bounds pixel of r.
func (m *MockSurface) Fill(r layout.Rect, c color.Color) {
	m.fills = append(m.fills, r)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if x < 0 || x >= m.width || y < 0 || y >= m.height {
				continue
			}
			idx := y*m.width + x
			m.pixels[idx] = c
			m.paints[idx]++
		}
	}
}

// DrawText records the call.
func (m *MockSurface) DrawText(x, y int, text string, _ color.Color, clip layout.Rect) {
	m.texts = append(m.texts, MockText{X: x, Y: y, Text: text, Clip: clip})
}

// Show counts presented frames.
func (m *MockSurface) Show() {
	m.shows++
}

// Resize changes the dimensions and clears all content and counters.
func (m *MockSurface) Resize(width, height int) {
	*m = *NewMockSurface(width, height)
}

// ColorAt returns the last color filled at (x, y), or nil.
func (m *MockSurface) ColorAt(x, y int) color.Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return nil
	}
	return m.pixels[y*m.width+x]
}

// PaintCount returns how many times (x, y) was filled since the last Reset.
func (m *MockSurface) PaintCount(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.paints[y*m.width+x]
}

// MaxPaintCount returns the highest per-pixel fill count.
func (m *MockSurface) MaxPaintCount() int {
	highest := 0
	for _, n := range m.paints {
		highest = max(highest, n)
	}
	return highest
}

// PaintedArea returns the number of pixels filled at least once.
func (m *MockSurface) PaintedArea() int {
	area := 0
	for _, n := range m.paints {
		if n > 0 {
			area++
		}
	}
	return area
}

// Fills returns the recorded fill rectangles.
func (m *MockSurface) Fills() []layout.Rect {
	return m.fills
}

// Texts returns the recorded DrawText calls.
func (m *MockSurface) Texts() []MockText {
	return m.texts
}

// Shows returns the number of presented frames.
func (m *MockSurface) Shows() int {
	return m.shows
}

// Reset clears the recorded operations and paint counters, keeping pixels.
func (m *MockSurface) Reset() {
	clear(m.paints)
	m.fills = nil
	m.texts = nil
	m.shows = 0
}
