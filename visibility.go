package gadget

import (
	"slices"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// VisibleRegions returns the disjoint on-screen fragments of h that no
// higher sibling of h or of any of its ancestors covers.
//
// The walk starts from the clip rect of h and, climbing to the root,
// subtracts every visible sibling stacked above the node visited at each
// level. A hidden node, or one under a hidden ancestor, has no visible regions.
func (t *Tree) VisibleRegions(h Handle) []layout.Rect {
	if !t.IsShowing(h) {
		return nil
	}
	clip, ok := t.ClipRect(h)
	if !ok {
		return nil
	}

	regions := []layout.Rect{clip}
	for cur := h; cur != t.root; {
		parent := t.Parent(cur)
		siblings := t.Children(parent)
		above := siblings[slices.Index(siblings, cur)+1:]

		for _, sib := range above {
			if !t.IsVisible(sib) {
				continue
			}
			regions = layout.Subtract(regions, t.AbsoluteRect(sib))
			if len(regions) == 0 {
				return nil
			}
		}
		cur = parent
	}
	return regions
}
