package gadget

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// ScreenSurface draws into a terminal through tcell. One cell is one pixel.
type ScreenSurface struct {
	screen tcell.Screen
}

var (
	_ Surface      = (*ScreenSurface)(nil)
	_ Presenter    = (*ScreenSurface)(nil)
	_ Resizer      = (*ScreenSurface)(nil)
	_ TextMeasurer = (*ScreenSurface)(nil)
)

// NewScreenSurface wraps an initialized tcell screen.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// Bounds returns the terminal size in cells.
func (s *ScreenSurface) Bounds() layout.Rect {
	w, h := s.screen.Size()
	return layout.NewRect(0, 0, w, h)
}

// Fill sets the background of every cell in r and blanks its content.
func (s *ScreenSurface) Fill(r layout.Rect, c color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text along one row, keeping each cell's background.
// Wide runes are only drawn when all their cells are inside clip.
func (s *ScreenSurface) DrawText(x, y int, text string, c color.Color, clip layout.Rect) {
	fg := tcell.FromImageColor(c)
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w > 0 && clip.ContainsPoint(col, y) && clip.ContainsPoint(col+w-1, y) {
			_, _, style, _ := s.screen.GetContent(col, y)
			s.screen.SetContent(col, y, r, nil, style.Foreground(fg))
		}
		col += w
	}
}

// MeasureText returns the number of cells text occupies on one row.
func (s *ScreenSurface) MeasureText(text string) (int, int) {
	return runewidth.StringWidth(text), 1
}

// Show presents the frame.
func (s *ScreenSurface) Show() {
	s.screen.Show()
}

// Resize resynchronizes tcell's buffers after the terminal changed size.
// The new size is read back from the screen.
func (s *ScreenSurface) Resize(_, _ int) {
	s.screen.Sync()
}

// ScreenEventReader adapts tcell events to gadget events.
type ScreenEventReader struct {
	events  chan tcell.Event
	quit    chan struct{}
	buttons tcell.ButtonMask
}

var _ EventReader = (*ScreenEventReader)(nil)

// NewScreenEventReader starts pumping events from screen.
func NewScreenEventReader(screen tcell.Screen) *ScreenEventReader {
	r := &ScreenEventReader{
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go r.pump(screen)
	return r
}

func (r *ScreenEventReader) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case r.events <- ev:
		case <-r.quit:
			return
		}
	}
}

// PollEvent waits up to timeout for the next event tcell can translate.
func (r *ScreenEventReader) PollEvent(timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-r.events:
			if out, ok := r.translate(ev); ok {
				return out, true
			}
		case <-timer.C:
			return nil, false
		case <-r.quit:
			return nil, false
		}
	}
}

// Close stops the pump goroutine.
func (r *ScreenEventReader) Close() error {
	select {
	case <-r.quit:
	default:
		close(r.quit)
	}
	return nil
}

const pointerButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// translate converts a tcell event. Mouse button state is diffed against the
// previous event, since tcell reports held buttons rather than transitions.
func (r *ScreenEventReader) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		now := ev.Buttons() & pointerButtons
		prev := r.buttons
		r.buttons = now

		switch {
		case now&^prev != 0:
			return PointerEvent{Action: PointerPress, Button: buttonOf(now &^ prev), X: x, Y: y}, true
		case prev&^now != 0:
			return PointerEvent{Action: PointerRelease, Button: buttonOf(prev &^ now), X: x, Y: y}, true
		default:
			return PointerEvent{Action: PointerMove, Button: buttonOf(now), X: x, Y: y}, true
		}
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent{Width: w, Height: h}, true
	}
	return nil, false
}

func buttonOf(mask tcell.ButtonMask) PointerButton {
	switch {
	case mask&tcell.Button1 != 0:
		return ButtonPrimary
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	case mask&tcell.Button2 != 0:
		return ButtonSecondary
	}
	return ButtonNone
}

func translateKey(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}, true
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab}, true
	case tcell.KeyBacktab:
		return KeyEvent{Key: KeyBacktab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}, true
	case tcell.KeyCtrlC:
		return KeyEvent{Key: KeyCtrlC}, true
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	}
	return nil, false
}
