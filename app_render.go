package gadget

import (
	"github.com/grindlemire/go-gadget/internal/debug"
	"github.com/grindlemire/go-gadget/pkg/layout"
)

// Flush paints all damage accumulated since the previous flush and presents
// the surface. It is a no-op when nothing is damaged.
func (a *App) Flush() FlushStats {
	if a.damage.IsEmpty() {
		return FlushStats{}
	}

	a.damage.Clip(a.surface.Bounds())
	damaged := a.damage.Drain()
	if debug.Enabled() {
		debug.Log("App.Flush: damage %v", damaged)
	}
	stats := a.dispatcher.Flush(a.tree.Root(), damaged)

	if p, ok := a.surface.(Presenter); ok {
		p.Show()
	}
	debug.Log("App.Flush: regions=%d paints=%d area=%d", stats.Regions, stats.PaintCalls, stats.PaintedArea)

	if a.onFlush != nil {
		a.onFlush(stats)
	}
	return stats
}

// resize follows a host size change: the surface and root take the new
// size and everything is damaged.
func (a *App) resize(width, height int) {
	if r, ok := a.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	bounds := a.surface.Bounds()
	if err := a.tree.SetRect(a.tree.Root(), bounds); err != nil {
		debug.Log("App.resize: root: %v", err)
	}
	a.damage.AddRegion(bounds)
	debug.Log("App.resize: %v", bounds)
}

// InvalidateAll damages the whole surface.
func (a *App) InvalidateAll() {
	a.damage.AddRegion(a.surface.Bounds())
}

// InvalidateRect damages r in surface coordinates.
func (a *App) InvalidateRect(r layout.Rect) {
	a.damage.AddRegion(r)
}
