package gadget

import (
	"fmt"

	"github.com/grindlemire/go-gadget/internal/debug"
)

// CanFocus reports whether h can currently take keyboard focus: it must be
// interactive (showing, no disabled ancestor) and have a Focusable behavior
// that accepts focus.
func (a *App) CanFocus(h Handle) bool {
	if !a.tree.IsInteractive(h) {
		return false
	}
	f, ok := a.tree.Behavior(h).(Focusable)
	return ok && f.CanFocus()
}

// Focus moves keyboard focus to h. The old and the new focus owner are
// both repainted.
func (a *App) Focus(h Handle) error {
	if !a.tree.Contains(h) {
		return fmt.Errorf("focus %v: %w", h, ErrInvalidHandle)
	}
	if !a.CanFocus(h) {
		return fmt.Errorf("focus %v: %w", h, ErrNotFocusable)
	}
	if a.state.Focused == h {
		return nil
	}

	prev := a.state.Focused
	a.state.Focused = h
	a.Invalidate(prev)
	a.Invalidate(h)
	debug.Log("App.Focus: %v -> %v %q", prev, h, a.tree.Name(h))
	return nil
}

// Blur clears keyboard focus.
func (a *App) Blur() {
	if !a.state.Focused.IsValid() {
		return
	}
	prev := a.state.Focused
	a.state.Focused = Handle{}
	a.Invalidate(prev)
	debug.Log("App.Blur: %v", prev)
}

// FocusNext moves focus to the next focusable node in tree order, wrapping
// around. Does nothing if no node can take focus.
func (a *App) FocusNext() {
	a.cycleFocus(1)
}

// FocusPrev moves focus to the previous focusable node in tree order.
func (a *App) FocusPrev() {
	a.cycleFocus(-1)
}

func (a *App) cycleFocus(step int) {
	candidates := a.focusables()
	if len(candidates) == 0 {
		return
	}

	next := 0
	if step < 0 {
		next = len(candidates) - 1
	}
	for i, h := range candidates {
		if h == a.state.Focused {
			next = (i + step + len(candidates)) % len(candidates)
			break
		}
	}
	// candidates are pre-checked, so Focus cannot fail
	_ = a.Focus(candidates[next])
}

// focusables lists focusable nodes bottom to top in depth-first order.
func (a *App) focusables() []Handle {
	var out []Handle
	a.tree.Walk(a.tree.Root(), func(h Handle) bool {
		if !a.tree.IsVisible(h) {
			return false
		}
		if a.CanFocus(h) {
			out = append(out, h)
		}
		return true
	})
	return out
}
