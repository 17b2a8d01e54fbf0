package gadget

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-gadget/pkg/damage"
)

// App owns the node tree, the accumulated damage and the pointer/focus
// state, and drives them from a single-threaded event loop.
//
// All methods except QueueUpdate and Stop must be called from the loop
// goroutine (inside Run, a queued update, or an input handler), or before
// Run starts.
type App struct {
	tree       *Tree
	surface    Surface
	damage     *damage.Set
	dispatcher *Dispatcher
	state      UIState
	reader     EventReader

	// Event loop fields
	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool

	globalKeyHandler func(KeyEvent) bool // Returns true if event consumed
	onFlush          func(FlushStats)

	// Configuration (set via options)
	tickInterval   time.Duration // Period of the repaint tick (default 16ms)
	inputLatency   time.Duration // Polling timeout for the event reader (default 50ms)
	eventQueueSize int           // Capacity of event queue (default 256)
	flushOnInput   bool          // Flush right after each input event
	rootBehavior   Behavior      // Paints whatever no other node covers
}

// NewApp creates an app drawing into surface. The root node covers the
// surface bounds and starts fully damaged, so the first flush paints everything.
func NewApp(surface Surface, opts ...AppOption) (*App, error) {
	app := &App{
		surface:        surface,
		damage:         damage.New(),
		stopCh:         make(chan struct{}),
		tickInterval:   16 * time.Millisecond, // Default ~60fps
		inputLatency:   50 * time.Millisecond,
		eventQueueSize: 256,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	app.eventQueue = make(chan func(), app.eventQueueSize)
	app.tree = NewTree(surface.Bounds(), WithBehavior(app.rootBehavior), WithName("root"))
	app.dispatcher = NewDispatcher(app.tree, surface, &app.state)
	app.damage.AddRegion(surface.Bounds())

	return app, nil
}

// Tree returns the node tree. Mutating it directly bypasses damage
// tracking; prefer the App mutation methods.
func (a *App) Tree() *Tree {
	return a.tree
}

// Root returns the root node.
func (a *App) Root() Handle {
	return a.tree.Root()
}

// Surface returns the surface the app paints into.
func (a *App) Surface() Surface {
	return a.surface
}

// State returns the current pointer and focus state.
func (a *App) State() UIState {
	return a.state
}

// Focused returns the focused node, or the zero Handle.
func (a *App) Focused() Handle {
	return a.state.Focused
}

// Damage returns the damage accumulated since the last flush.
func (a *App) Damage() *damage.Set {
	return a.damage
}

// SetGlobalKeyHandler sets a handler that runs before dispatching to the focused node.
// If the handler returns true, the event is consumed and not dispatched further.
func (a *App) SetGlobalKeyHandler(fn func(KeyEvent) bool) {
	a.globalKeyHandler = fn
}
