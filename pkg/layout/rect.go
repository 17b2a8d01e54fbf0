package layout

import "fmt"

// Rect represents an axis-aligned rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
// A Rect with zero or negative width or height is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (inclusive).
func (r Rect) Right() int {
	return r.X + r.Width - 1
}

// Bottom returns the y-coordinate of the bottom edge (inclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height - 1
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// ContainsPoint returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; x == X+Width and y == Y+Height are outside.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of r and other; see Intersect.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	return Intersect(r, other)
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	_, ok := Intersect(r, other)
	return ok
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x + 1, Height: bottom - y + 1}
}

// String formats the rect as (x,y wxh).
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Intersect returns the overlap of a and b.
// The second result is false when the rectangles do not overlap or either is empty.
func Intersect(a, b Rect) (Rect, bool) {
	if a.IsEmpty() || b.IsEmpty() {
		return Rect{}, false
	}

	x := max(a.X, b.X)
	y := max(a.Y, b.Y)
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())

	out := Rect{X: x, Y: y, Width: right - x + 1, Height: bottom - y + 1}
	if out.IsEmpty() {
		return Rect{}, false
	}
	return out, true
}

// SplitAgainst decomposes other into the part overlapping base and the
// strips of other lying outside base.
//
// When the rectangles are disjoint, ok is false and remainder is nil.
// Otherwise strips are carved off a working copy of other in a fixed order:
// left, right, top, bottom. The top and bottom strips are cut from the
// horizontally trimmed rectangle, so they only span the overlap's columns.
// The overlap and the strips are pairwise disjoint and together cover other exactly.
func SplitAgainst(base, other Rect) (overlap Rect, ok bool, remainder []Rect) {
	if _, hit := Intersect(base, other); !hit {
		return Rect{}, false, nil
	}

	work := other

	if work.X < base.X {
		w := base.X - work.X
		remainder = appendNonEmpty(remainder, Rect{X: work.X, Y: work.Y, Width: w, Height: work.Height})
		work.X = base.X
		work.Width -= w
	}

	if work.Right() > base.Right() {
		w := work.Right() - base.Right()
		remainder = appendNonEmpty(remainder, Rect{X: base.Right() + 1, Y: work.Y, Width: w, Height: work.Height})
		work.Width -= w
	}

	if work.Y < base.Y {
		h := base.Y - work.Y
		remainder = appendNonEmpty(remainder, Rect{X: work.X, Y: work.Y, Width: work.Width, Height: h})
		work.Y = base.Y
		work.Height -= h
	}

	if work.Bottom() > base.Bottom() {
		h := work.Bottom() - base.Bottom()
		remainder = appendNonEmpty(remainder, Rect{X: work.X, Y: base.Bottom() + 1, Width: work.Width, Height: h})
		work.Height -= h
	}

	if work.IsEmpty() {
		return Rect{}, false, nil
	}
	return work, true, remainder
}

// Subtract removes cut from every rectangle in rects and returns the
// surviving fragments. Rectangles that do not touch cut are kept as-is.
func Subtract(rects []Rect, cut Rect) []Rect {
	out := make([]Rect, 0, len(rects))
	for _, r := range rects {
		if _, ok, rest := SplitAgainst(cut, r); ok {
			out = append(out, rest...)
			continue
		}
		out = appendNonEmpty(out, r)
	}
	return out
}

// TotalArea sums the areas of rects. Overlaps are counted more than once.
func TotalArea(rects []Rect) int {
	total := 0
	for _, r := range rects {
		total += r.Area()
	}
	return total
}

func appendNonEmpty(rects []Rect, r Rect) []Rect {
	if r.IsEmpty() {
		return rects
	}
	return append(rects, r)
}
