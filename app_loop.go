package gadget

import (
	"context"
	"time"

	"github.com/grindlemire/go-gadget/internal/debug"
)

// Run starts the event loop and blocks until Stop is called or ctx is done.
// Input events and queued updates run one at a time on this goroutine; a
// ticker flushes whatever damage they produced.
func (a *App) Run(ctx context.Context) error {
	if a.reader != nil {
		go a.readInputEvents()
	}

	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	// Initial paint
	a.Flush()

	for {
		select {
		case <-ctx.Done():
			a.Stop()
			return ctx.Err()
		case <-a.stopCh:
			return nil
		case fn := <-a.eventQueue:
			fn()
		case <-ticker.C:
			a.Flush()
		}
	}
}

// Stop signals the Run loop to exit. Stop is idempotent and safe to call
// from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
	})
}

// QueueUpdate enqueues fn to run on the loop goroutine.
// Safe to call from any goroutine; blocks while the queue is full and
// drops fn once the app is stopping.
func (a *App) QueueUpdate(fn func()) {
	if a.stopped.Load() {
		return
	}
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	}
}

// readInputEvents polls the reader in a goroutine and queues dispatches.
// It never touches the tree itself.
func (a *App) readInputEvents() {
	for !a.stopped.Load() {
		event, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			continue
		}
		a.QueueUpdate(func() {
			a.Dispatch(event)
		})
	}
	debug.Log("App: input reader stopped")
}
