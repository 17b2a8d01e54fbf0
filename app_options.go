package gadget

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithTickInterval sets the period of the repaint tick.
// Default is 16ms. Must be positive.
func WithTickInterval(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("tick interval must be positive, got %v", d)
		}
		a.tickInterval = d
		return nil
	}
}

// WithFrameRate sets the repaint tick from a frame rate.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.tickInterval = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithInputLatency sets the polling timeout for the event reader.
// Default is 50ms. Must be positive.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive, got %v", d)
		}
		a.inputLatency = d
		return nil
	}
}

// WithEventReader sets the source of input events consumed by Run.
func WithEventReader(r EventReader) AppOption {
	return func(a *App) error {
		if r == nil {
			return fmt.Errorf("event reader must not be nil")
		}
		a.reader = r
		return nil
	}
}

// WithFlushOnInput flushes damage right after every input event instead of
// waiting for the next tick.
func WithFlushOnInput(enabled bool) AppOption {
	return func(a *App) error {
		a.flushOnInput = enabled
		return nil
	}
}

// WithFlushObserver registers fn to receive the stats of every non-empty flush.
func WithFlushObserver(fn func(FlushStats)) AppOption {
	return func(a *App) error {
		a.onFlush = fn
		return nil
	}
}

// WithRootBehavior sets the behavior of the root node, typically a
// background fill.
func WithRootBehavior(b Behavior) AppOption {
	return func(a *App) error {
		a.rootBehavior = b
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs before dispatching to the focused node.
// If the handler returns true, the event is consumed and not dispatched further.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}
