package gadget

import (
	"fmt"

	"github.com/grindlemire/go-gadget/internal/debug"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Tree mutations. Each one records the node's visible regions before and
// after the change, so the area it left and the area it now covers are both
// repainted on the next flush.

// mutate runs fn between two visibility snapshots of h.
func (a *App) mutate(op string, h Handle, fn func() error) error {
	if !a.tree.Contains(h) {
		return fmt.Errorf("%s %v: %w", op, h, ErrInvalidHandle)
	}
	before := a.tree.VisibleRegions(h)
	if err := fn(); err != nil {
		return fmt.Errorf("%s %v: %w", op, h, err)
	}
	a.damage.AddRegions(before...)
	a.damage.AddRegions(a.tree.VisibleRegions(h)...)
	debug.Log("App.%s: %v %q damage=%d", op, h, a.tree.Name(h), a.damage.Area())
	return nil
}

// Add creates a node as the topmost child of parent and damages its area.
func (a *App) Add(parent Handle, rect layout.Rect, opts ...NodeOption) (Handle, error) {
	h, err := a.tree.Add(parent, rect, opts...)
	if err != nil {
		return Handle{}, err
	}
	a.damage.AddRegions(a.tree.VisibleRegions(h)...)
	debug.Log("App.Add: %v %q under %v", h, a.tree.Name(h), parent)
	return h, nil
}

// Remove deletes h and its subtree, damaging the area it uncovers.
// Pointer and focus state pointing into the subtree is cleared.
func (a *App) Remove(h Handle) error {
	if !a.tree.Contains(h) {
		return fmt.Errorf("remove %v: %w", h, ErrInvalidHandle)
	}
	before := a.tree.VisibleRegions(h)
	if err := a.tree.Remove(h); err != nil {
		return err
	}
	a.damage.AddRegions(before...)

	if !a.tree.Contains(a.state.Clicked) {
		a.state.Clicked = Handle{}
	}
	if !a.tree.Contains(a.state.Focused) {
		a.state.Focused = Handle{}
	}
	debug.Log("App.Remove: %v", h)
	return nil
}

// Move places h at (x, y) relative to its parent.
func (a *App) Move(h Handle, x, y int) error {
	return a.mutate("move", h, func() error {
		r := a.tree.Rect(h)
		r.X, r.Y = x, y
		return a.tree.SetRect(h, r)
	})
}

// Resize changes the size of h, keeping its position.
func (a *App) Resize(h Handle, width, height int) error {
	return a.mutate("resize", h, func() error {
		r := a.tree.Rect(h)
		r.Width, r.Height = width, height
		return a.tree.SetRect(h, r)
	})
}

// SetRect moves and resizes h in one step.
func (a *App) SetRect(h Handle, r layout.Rect) error {
	return a.mutate("setRect", h, func() error {
		return a.tree.SetRect(h, r)
	})
}

// SetBorder changes the border inset of h.
func (a *App) SetBorder(h Handle, edges layout.Edges) error {
	return a.mutate("setBorder", h, func() error {
		return a.tree.SetBorder(h, edges)
	})
}

// Show makes h visible.
func (a *App) Show(h Handle) error {
	return a.mutate("show", h, func() error {
		return a.tree.SetVisible(h, true)
	})
}

// Hide makes h invisible. A press or focus held inside the hidden subtree
// is released.
func (a *App) Hide(h Handle) error {
	err := a.mutate("hide", h, func() error {
		return a.tree.SetVisible(h, false)
	})
	if err == nil {
		a.releaseInactive()
	}
	return err
}

// Raise moves h above its siblings.
func (a *App) Raise(h Handle) error {
	return a.mutate("raise", h, func() error {
		return a.tree.Raise(h)
	})
}

// Lower moves h below its siblings.
func (a *App) Lower(h Handle) error {
	return a.mutate("lower", h, func() error {
		return a.tree.Lower(h)
	})
}

// SetEnabled enables or disables input for h and its subtree. Widgets
// usually draw disabled nodes differently, so the node is repainted.
func (a *App) SetEnabled(h Handle, enabled bool) error {
	err := a.mutate("setEnabled", h, func() error {
		return a.tree.SetEnabled(h, enabled)
	})
	if err == nil && !enabled {
		a.releaseInactive()
	}
	return err
}

// releaseInactive drops the pointer press and the focus when their nodes
// can no longer receive input.
func (a *App) releaseInactive() {
	if a.state.Clicked.IsValid() && !a.tree.IsInteractive(a.state.Clicked) {
		a.state.Clicked = Handle{}
	}
	if a.state.Focused.IsValid() && !a.CanFocus(a.state.Focused) {
		a.Blur()
	}
}

// Invalidate damages the visible area of h, for changes that do not touch
// geometry (a new label, an animation frame).
func (a *App) Invalidate(h Handle) {
	a.damage.AddRegions(a.tree.VisibleRegions(h)...)
}
