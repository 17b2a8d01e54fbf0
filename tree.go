package gadget

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

var (
	// ErrInvalidHandle is returned when a Handle does not name a live node.
	ErrInvalidHandle = errors.New("gadget: invalid node handle")
	// ErrRootRemoval is returned when removing or reordering the root node.
	ErrRootRemoval = errors.New("gadget: operation not allowed on the root node")
	// ErrNotFocusable is returned when focusing a node that cannot take focus.
	ErrNotFocusable = errors.New("gadget: node cannot take focus")
)

// Handle identifies a node in a Tree. The zero Handle is invalid.
// Handles of removed nodes stay invalid even when their slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// IsValid reports whether h was ever issued by a Tree.
// Use Tree.Contains to check that the node is still live.
func (h Handle) IsValid() bool {
	return h.gen != 0
}

func (h Handle) String() string {
	if !h.IsValid() {
		return "node(nil)"
	}
	return fmt.Sprintf("node(%d.%d)", h.index, h.gen)
}

// node is one arena slot.
type node struct {
	gen  uint32
	live bool

	// Tree structure. children[0] is bottommost, the last child is topmost.
	parent   Handle
	children []Handle

	// Geometry; rect is relative to the parent's top-left corner.
	rect   layout.Rect
	border layout.Edges

	visible bool
	enabled bool

	behavior Behavior
	name     string
}

// NodeOption configures a node created by Tree.Add or NewTree.
type NodeOption func(*node)

// WithBehavior sets the behavior that paints the node and handles its input.
func WithBehavior(b Behavior) NodeOption {
	return func(n *node) {
		n.behavior = b
	}
}

// WithBorder sets a per-side border inset. Children are clipped to the
// area inside the border.
func WithBorder(edges layout.Edges) NodeOption {
	return func(n *node) {
		n.border = edges
	}
}

// WithBorderSize sets the same border inset on all four sides.
func WithBorderSize(size int) NodeOption {
	return func(n *node) {
		n.border = layout.EdgeAll(size)
	}
}

// WithHidden creates the node hidden.
func WithHidden() NodeOption {
	return func(n *node) {
		n.visible = false
	}
}

// WithDisabled creates the node disabled; it still paints but receives no input.
func WithDisabled() NodeOption {
	return func(n *node) {
		n.enabled = false
	}
}

// WithName attaches a label used in debug output.
func WithName(name string) NodeOption {
	return func(n *node) {
		n.name = name
	}
}

// Tree is an arena of nodes forming a single rooted hierarchy.
// Sibling order encodes z-order: later siblings are drawn on top.
type Tree struct {
	nodes []node
	free  []uint32
	root  Handle
	live  int
}

// NewTree creates a tree whose root covers bounds.
func NewTree(bounds layout.Rect, opts ...NodeOption) *Tree {
	t := &Tree{}
	t.root = t.alloc(Handle{}, bounds, opts)
	return t
}

func (t *Tree) alloc(parent Handle, rect layout.Rect, opts []NodeOption) Handle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}

	slot := &t.nodes[idx]
	gen := slot.gen + 1
	*slot = node{
		gen:     gen,
		live:    true,
		parent:  parent,
		rect:    rect,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		opt(slot)
	}
	t.live++
	return Handle{index: idx, gen: gen}
}

// get returns the live node for h, or nil.
func (t *Tree) get(h Handle) *node {
	if !h.IsValid() || int(h.index) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[h.index]
	if !n.live || n.gen != h.gen {
		return nil
	}
	return n
}

func (t *Tree) lookup(h Handle) (*node, error) {
	n := t.get(h)
	if n == nil {
		return nil, fmt.Errorf("%v: %w", h, ErrInvalidHandle)
	}
	return n, nil
}

// Root returns the root node.
func (t *Tree) Root() Handle {
	return t.root
}

// Len returns the number of live nodes, including the root.
func (t *Tree) Len() int {
	return t.live
}

// Contains reports whether h names a live node.
func (t *Tree) Contains(h Handle) bool {
	return t.get(h) != nil
}

// Add creates a node as the topmost child of parent.
func (t *Tree) Add(parent Handle, rect layout.Rect, opts ...NodeOption) (Handle, error) {
	if _, err := t.lookup(parent); err != nil {
		return Handle{}, fmt.Errorf("add child: %w", err)
	}
	h := t.alloc(parent, rect, opts)
	// alloc may grow t.nodes, so look the parent up again
	p := t.get(parent)
	p.children = append(p.children, h)
	return h, nil
}

// Remove detaches h and its whole subtree from the tree.
// Handles into the removed subtree become invalid.
func (t *Tree) Remove(h Handle) error {
	n, err := t.lookup(h)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if h == t.root {
		return fmt.Errorf("remove: %w", ErrRootRemoval)
	}

	p := t.get(n.parent)
	if i := slices.Index(p.children, h); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	t.release(h)
	return nil
}

func (t *Tree) release(h Handle) {
	n := t.get(h)
	for _, c := range n.children {
		t.release(c)
	}
	gen := n.gen
	t.nodes[h.index] = node{gen: gen}
	t.free = append(t.free, h.index)
	t.live--
}

// Parent returns the parent of h, or the zero Handle for the root.
func (t *Tree) Parent(h Handle) Handle {
	if n := t.get(h); n != nil {
		return n.parent
	}
	return Handle{}
}

// Children returns the children of h from bottommost to topmost.
// The slice is owned by the tree and must not be modified.
func (t *Tree) Children(h Handle) []Handle {
	if n := t.get(h); n != nil {
		return n.children
	}
	return nil
}

// Rect returns the node rectangle relative to its parent.
func (t *Tree) Rect(h Handle) layout.Rect {
	if n := t.get(h); n != nil {
		return n.rect
	}
	return layout.Rect{}
}

// SetRect moves and resizes h without recording damage.
func (t *Tree) SetRect(h Handle, r layout.Rect) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	n.rect = r
	return nil
}

// Border returns the border inset of h.
func (t *Tree) Border(h Handle) layout.Edges {
	if n := t.get(h); n != nil {
		return n.border
	}
	return layout.Edges{}
}

// SetBorder changes the border inset of h without recording damage.
func (t *Tree) SetBorder(h Handle, edges layout.Edges) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	n.border = edges
	return nil
}

// IsVisible reports the visible flag of h itself.
func (t *Tree) IsVisible(h Handle) bool {
	n := t.get(h)
	return n != nil && n.visible
}

// SetVisible sets the visible flag of h without recording damage.
func (t *Tree) SetVisible(h Handle, visible bool) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	n.visible = visible
	return nil
}

// IsShowing reports whether h and all of its ancestors are visible.
func (t *Tree) IsShowing(h Handle) bool {
	for cur := h; cur.IsValid(); {
		n := t.get(cur)
		if n == nil || !n.visible {
			return false
		}
		cur = n.parent
	}
	return h.IsValid()
}

// IsEnabled reports the enabled flag of h itself. See IsInteractive.
func (t *Tree) IsEnabled(h Handle) bool {
	n := t.get(h)
	return n != nil && n.enabled
}

// IsInteractive reports whether h can receive input: it is showing and
// neither it nor any ancestor is disabled.
func (t *Tree) IsInteractive(h Handle) bool {
	if !t.IsShowing(h) {
		return false
	}
	for cur := h; cur.IsValid(); cur = t.get(cur).parent {
		if !t.get(cur).enabled {
			return false
		}
	}
	return true
}

// SetEnabled sets the enabled flag of h.
func (t *Tree) SetEnabled(h Handle, enabled bool) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	n.enabled = enabled
	return nil
}

// Behavior returns the behavior of h, which may be nil.
func (t *Tree) Behavior(h Handle) Behavior {
	if n := t.get(h); n != nil {
		return n.behavior
	}
	return nil
}

// SetBehavior replaces the behavior of h.
func (t *Tree) SetBehavior(h Handle, b Behavior) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	n.behavior = b
	return nil
}

// Name returns the debug label of h.
func (t *Tree) Name(h Handle) string {
	if n := t.get(h); n != nil {
		return n.name
	}
	return ""
}

// AbsoluteRect returns the rectangle of h in surface coordinates.
func (t *Tree) AbsoluteRect(h Handle) layout.Rect {
	n := t.get(h)
	if n == nil {
		return layout.Rect{}
	}
	r := n.rect
	for p := t.get(n.parent); p != nil; p = t.get(p.parent) {
		r = r.Translate(p.rect.X, p.rect.Y)
	}
	return r
}

// ClientRect returns the area inside the border of h, in surface coordinates.
func (t *Tree) ClientRect(h Handle) layout.Rect {
	n := t.get(h)
	if n == nil {
		return layout.Rect{}
	}
	return t.AbsoluteRect(h).Inset(n.border)
}

// ClipRect returns the absolute rectangle of h intersected with the client
// rect of every ancestor. The second result is false when nothing is left.
func (t *Tree) ClipRect(h Handle) (layout.Rect, bool) {
	n := t.get(h)
	if n == nil {
		return layout.Rect{}, false
	}

	clip := t.AbsoluteRect(h)
	if clip.IsEmpty() {
		return layout.Rect{}, false
	}
	for p := n.parent; p.IsValid(); p = t.Parent(p) {
		var ok bool
		if clip, ok = layout.Intersect(clip, t.ClientRect(p)); !ok {
			return layout.Rect{}, false
		}
	}
	return clip, true
}

// IndexOf returns the z-order position of h among its siblings, or -1.
func (t *Tree) IndexOf(h Handle) int {
	n := t.get(h)
	if n == nil {
		return -1
	}
	p := t.get(n.parent)
	if p == nil {
		return 0
	}
	return slices.Index(p.children, h)
}

// Raise moves h above all of its siblings.
func (t *Tree) Raise(h Handle) error {
	return t.reorder(h, func(children []Handle, i int) []Handle {
		children = slices.Delete(children, i, i+1)
		return append(children, h)
	})
}

// Lower moves h below all of its siblings.
func (t *Tree) Lower(h Handle) error {
	return t.reorder(h, func(children []Handle, i int) []Handle {
		children = slices.Delete(children, i, i+1)
		return slices.Insert(children, 0, h)
	})
}

func (t *Tree) reorder(h Handle, fn func([]Handle, int) []Handle) error {
	n, err := t.lookup(h)
	if err != nil {
		return err
	}
	if h == t.root {
		return ErrRootRemoval
	}
	p := t.get(n.parent)
	i := slices.Index(p.children, h)
	p.children = fn(p.children, i)
	return nil
}

// HitTest returns the topmost visible node whose clip rect contains (x, y),
// or the zero Handle if the point is outside the root.
func (t *Tree) HitTest(x, y int) Handle {
	return t.hitTest(t.root, x, y)
}

func (t *Tree) hitTest(h Handle, x, y int) Handle {
	n := t.get(h)
	if n == nil || !n.visible {
		return Handle{}
	}
	clip, ok := t.ClipRect(h)
	if !ok || !clip.ContainsPoint(x, y) {
		return Handle{}
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := t.hitTest(n.children[i], x, y); hit.IsValid() {
			return hit
		}
	}
	return h
}

// Walk visits h and its descendants depth-first, bottommost child first.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(h Handle, fn func(Handle) bool) {
	if t.get(h) == nil || !fn(h) {
		return
	}
	for _, c := range t.Children(h) {
		t.Walk(c, fn)
	}
}
