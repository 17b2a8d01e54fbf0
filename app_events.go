package gadget

import "github.com/grindlemire/go-gadget/internal/debug"

// Dispatch handles one input event on the loop goroutine.
// Pointer events go to the node under the pointer (or to the node holding
// the press), key events to the focused node, resize events resize the
// surface. Returns true if the event was consumed.
func (a *App) Dispatch(event Event) bool {
	var consumed bool
	switch ev := event.(type) {
	case ResizeEvent:
		a.resize(ev.Width, ev.Height)
		consumed = true
	case PointerEvent:
		consumed = a.dispatchPointer(ev)
	case KeyEvent:
		consumed = a.dispatchKey(ev)
	}

	if a.flushOnInput {
		a.Flush()
	}
	return consumed
}

func (a *App) dispatchPointer(ev PointerEvent) bool {
	switch ev.Action {
	case PointerPress:
		return a.pointerDown(ev)
	case PointerRelease:
		return a.pointerUp(ev)
	case PointerMove:
		return a.pointerDrag(ev)
	}
	return false
}

// pointerDown hit-tests the press and bubbles it from the topmost node
// under the pointer towards the root until a handler consumes it.
func (a *App) pointerDown(ev PointerEvent) bool {
	target := a.tree.HitTest(ev.X, ev.Y)
	if !target.IsValid() {
		return false
	}
	debug.Log("App.pointerDown: (%d,%d) hit %v %q", ev.X, ev.Y, target, a.tree.Name(target))

	if !a.tree.IsInteractive(target) {
		// a disabled node or ancestor swallows the press without reacting
		return true
	}

	a.state.Clicked = target
	if a.CanFocus(target) {
		_ = a.Focus(target)
	}

	for h := target; h.IsValid(); h = a.tree.Parent(h) {
		handler, ok := a.tree.Behavior(h).(PointerHandler)
		if !ok {
			continue
		}
		res := handler.OnPointerDown(&Context{App: a, Node: h}, ev)
		if res.Consumed {
			a.state.Clicked = h
		}
		a.apply(h, res)
		if res.Consumed {
			return true
		}
	}
	return false
}

func (a *App) pointerUp(ev PointerEvent) bool {
	h := a.state.Clicked
	a.state.Clicked = Handle{}
	if !a.tree.Contains(h) {
		return false
	}

	handler, ok := a.tree.Behavior(h).(PointerHandler)
	if !ok {
		return false
	}
	res := handler.OnPointerUp(&Context{App: a, Node: h}, ev)
	a.apply(h, res)
	return res.Consumed
}

func (a *App) pointerDrag(ev PointerEvent) bool {
	h := a.state.Clicked
	if !a.tree.Contains(h) {
		return false
	}
	handler, ok := a.tree.Behavior(h).(DragHandler)
	if !ok {
		return false
	}
	res := handler.OnDrag(&Context{App: a, Node: h}, ev)
	a.apply(h, res)
	return res.Consumed
}

func (a *App) dispatchKey(ev KeyEvent) bool {
	if a.globalKeyHandler != nil && a.globalKeyHandler(ev) {
		return true
	}

	h := a.state.Focused
	if a.CanFocus(h) {
		if handler, ok := a.tree.Behavior(h).(KeyHandler); ok {
			res := handler.OnKey(&Context{App: a, Node: h}, ev)
			a.apply(h, res)
			if res.Consumed {
				return true
			}
		}
	}

	switch ev.Key {
	case KeyTab:
		a.FocusNext()
		return true
	case KeyBacktab:
		a.FocusPrev()
		return true
	}
	return false
}

// apply records the damage a handler asked for. The node may have been
// removed by the handler itself.
func (a *App) apply(h Handle, res Result) {
	if res.Redraw {
		a.Invalidate(h)
	}
}
