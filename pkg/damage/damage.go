// Package damage accumulates screen areas that must be repainted.
//
// A Set stores mutually disjoint rectangles. New regions are split against
// the existing members so that only previously undamaged area is stored;
// adjacent fragments are never merged back together.
package damage

import "github.com/grindlemire/go-gadget/pkg/layout"

// Set is a collection of pairwise disjoint damaged rectangles.
// The zero value is an empty set ready for use. A Set is not safe for
// concurrent use; the owning event loop serializes access.
type Set struct {
	rects []layout.Rect
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// AddRegion marks r as damaged.
// Parts of r already covered by the set are discarded; the rest is appended
// as disjoint fragments. Empty rectangles are ignored.
func (s *Set) AddRegion(r layout.Rect) {
	if r.IsEmpty() {
		return
	}

	queue := []layout.Rect{r}
	for _, existing := range s.rects {
		next := queue[:0:0]
		for _, pending := range queue {
			if _, ok, rest := layout.SplitAgainst(existing, pending); ok {
				next = append(next, rest...)
				continue
			}
			next = append(next, pending)
		}
		queue = next
		if len(queue) == 0 {
			return
		}
	}

	s.rects = append(s.rects, queue...)
}

// AddRegions calls AddRegion for each rectangle in order.
func (s *Set) AddRegions(rects ...layout.Rect) {
	for _, r := range rects {
		s.AddRegion(r)
	}
}

// Drain removes and returns all members. The set is empty afterward.
func (s *Set) Drain() []layout.Rect {
	out := s.rects
	s.rects = nil
	return out
}

// Clip drops every part of the set lying outside bounds.
// Clipping preserves disjointness since each member only shrinks.
func (s *Set) Clip(bounds layout.Rect) {
	kept := s.rects[:0]
	for _, r := range s.rects {
		if c, ok := layout.Intersect(bounds, r); ok {
			kept = append(kept, c)
		}
	}
	clear(s.rects[len(kept):])
	s.rects = kept
}

// Rects returns a copy of the current members.
func (s *Set) Rects() []layout.Rect {
	out := make([]layout.Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Len returns the number of disjoint fragments in the set.
func (s *Set) Len() int {
	return len(s.rects)
}

// Area returns the total damaged area. Members are disjoint, so this is
// exactly the number of damaged pixels.
func (s *Set) Area() int {
	return layout.TotalArea(s.rects)
}

// IsEmpty reports whether nothing is damaged.
func (s *Set) IsEmpty() bool {
	return len(s.rects) == 0
}
