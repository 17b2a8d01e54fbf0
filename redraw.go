package gadget

import "github.com/grindlemire/go-gadget/pkg/layout"

// FlushStats summarizes one Flush.
type FlushStats struct {
	Regions     int // damaged rectangles handed to the dispatcher
	PaintCalls  int // Paint invocations
	PaintedArea int // pixels handed to Paint
}

// Dispatcher routes damaged rectangles to the nodes that own them.
// Every damaged pixel is painted once, by the topmost node covering it.
type Dispatcher struct {
	tree    *Tree
	surface Surface
	state   *UIState
}

// NewDispatcher returns a dispatcher painting tree into surface.
// state may be nil; it only feeds the Focused/Pressed flags of PaintContext.
func NewDispatcher(tree *Tree, surface Surface, state *UIState) *Dispatcher {
	return &Dispatcher{tree: tree, surface: surface, state: state}
}

// Flush paints damaged, starting at root. The slice is consumed.
// Damage outside root is dropped.
func (d *Dispatcher) Flush(root Handle, damaged []layout.Rect) FlushStats {
	stats := FlushStats{Regions: len(damaged)}
	pending := damaged
	d.paintNode(root, &pending, &stats)
	return stats
}

// paintNode claims the part of pending covered by h, lets the children of h
// claim what they cover from top to bottom, and paints the rest itself.
// Whatever h does not cover stays in pending for the caller's next sibling.
func (d *Dispatcher) paintNode(h Handle, pending *[]layout.Rect, stats *FlushStats) {
	if !d.tree.IsVisible(h) || len(*pending) == 0 {
		return
	}
	nodeRect, ok := d.tree.ClipRect(h)
	if !ok {
		return
	}

	var intersecting []layout.Rect
	rest := make([]layout.Rect, 0, len(*pending))
	for _, r := range *pending {
		overlap, ok, remainder := layout.SplitAgainst(nodeRect, r)
		if !ok {
			rest = append(rest, r)
			continue
		}
		rest = append(rest, remainder...)
		intersecting = append(intersecting, overlap)
	}
	*pending = rest

	if len(intersecting) == 0 {
		return
	}

	children := d.tree.Children(h)
	for i := len(children) - 1; i >= 0 && len(intersecting) > 0; i-- {
		d.paintNode(children[i], &intersecting, stats)
	}

	b := d.tree.Behavior(h)
	if b == nil || len(intersecting) == 0 {
		return
	}
	pc := d.paintContext(h)
	for _, r := range intersecting {
		b.Paint(pc, NewCanvas(d.surface, r), r)
		stats.PaintCalls++
		stats.PaintedArea += r.Area()
	}
}

func (d *Dispatcher) paintContext(h Handle) *PaintContext {
	pc := &PaintContext{
		Tree:   d.tree,
		Node:   h,
		Rect:   d.tree.AbsoluteRect(h),
		Client: d.tree.ClientRect(h),
	}
	if d.state != nil {
		pc.Focused = d.state.Focused == h
		pc.Pressed = d.state.Clicked == h
	}
	return pc
}
