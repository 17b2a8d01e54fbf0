package gadget

// KeyMap is an ordered list of key bindings, typically installed as the
// app's global key handler.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, later bindings do not fire and the event is consumed
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key     Key  // Specific non-printable key; ignored when Rune or AnyRune is set
	Rune    rune // Specific printable character, or 0
	AnyRune bool // Match any printable character
}

// Matches reports whether ev matches the pattern.
func (p KeyPattern) Matches(ev KeyEvent) bool {
	switch {
	case p.AnyRune:
		return ev.Key == KeyRune
	case p.Rune != 0:
		return ev.Key == KeyRune && ev.Rune == p.Rune
	default:
		return p.Key != KeyRune && ev.Key == p.Key
	}
}

// OnKey creates a broadcast binding for a specific key.
// Other handlers for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    false,
	}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    false,
	}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    true,
	}
}

// OnRunes creates a broadcast binding for all printable characters.
func OnRunes(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{AnyRune: true},
		Handler: handler,
		Stop:    false,
	}
}

// Handle runs every matching binding in order until one with Stop fires.
// It returns true if a Stop binding matched, meaning the event is consumed.
func (m KeyMap) Handle(ev KeyEvent) bool {
	for _, b := range m {
		if !b.Pattern.Matches(ev) {
			continue
		}
		if b.Handler != nil {
			b.Handler(ev)
		}
		if b.Stop {
			return true
		}
	}
	return false
}

// WithKeyMap installs m as the global key handler.
func WithKeyMap(m KeyMap) AppOption {
	return WithGlobalKeyHandler(m.Handle)
}
