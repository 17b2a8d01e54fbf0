package gadget

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

// fakeScreen is a minimal in-memory tcell.Screen. Methods the surface does
// not use fall through to the nil embedded interface.
type fakeScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]fakeCell
	shows, syncs  int
	events        chan tcell.Event
}

type fakeCell struct {
	r     rune
	style tcell.Style
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		width:  width,
		height: height,
		cells:  make(map[[2]int]fakeCell),
		events: make(chan tcell.Event, 8),
	}
}

func (f *fakeScreen) Size() (int, int) { return f.width, f.height }
func (f *fakeScreen) Show()            { f.shows++ }
func (f *fakeScreen) Sync()            { f.syncs++ }

func (f *fakeScreen) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = fakeCell{r: mainc, style: style}
}

func (f *fakeScreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	c, ok := f.cells[[2]int{x, y}]
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return c.r, nil, c.style, 1
}

func (f *fakeScreen) PollEvent() tcell.Event {
	return <-f.events
}

func TestScreenSurface_FillAndText(t *testing.T) {
	screen := newFakeScreen(10, 3)
	s := NewScreenSurface(screen)

	if got, want := s.Bounds(), layout.NewRect(0, 0, 10, 3); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}

	s.Fill(layout.NewRect(0, 0, 10, 3), colorBlue)
	s.DrawText(2, 1, "hello", colorRed, layout.NewRect(0, 0, 5, 3))

	wantBg := tcell.FromImageColor(colorBlue)
	wantFg := tcell.FromImageColor(colorRed)
	for x, want := range []rune("  hel     ") {
		c := screen.cells[[2]int{x, 1}]
		if c.r != want {
			t.Errorf("cell (%d,1) = %q, want %q", x, c.r, want)
		}
		fg, bg, _ := c.style.Decompose()
		if bg != wantBg {
			t.Errorf("cell (%d,1) background = %v, want %v", x, bg, wantBg)
		}
		if want != ' ' && fg != wantFg {
			t.Errorf("cell (%d,1) foreground = %v, want %v", x, fg, wantFg)
		}
	}

	if w, h := s.MeasureText("héllo"); w != 5 || h != 1 {
		t.Errorf("MeasureText() = %d,%d, want 5,1", w, h)
	}

	s.Show()
	s.Resize(0, 0)
	if screen.shows != 1 || screen.syncs != 1 {
		t.Errorf("shows = %d syncs = %d, want 1 and 1", screen.shows, screen.syncs)
	}
}

func TestScreenEventReader_Translate(t *testing.T) {
	type step struct {
		ev   tcell.Event
		want Event
		ok   bool
	}

	tests := map[string][]step{
		"click": {
			{ev: tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), want: PointerEvent{Action: PointerPress, Button: ButtonPrimary, X: 3, Y: 4}, ok: true},
			{ev: tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone), want: PointerEvent{Action: PointerMove, Button: ButtonPrimary, X: 5, Y: 4}, ok: true},
			{ev: tcell.NewEventMouse(6, 4, tcell.ButtonNone, tcell.ModNone), want: PointerEvent{Action: PointerRelease, Button: ButtonPrimary, X: 6, Y: 4}, ok: true},
		},
		"secondary button": {
			{ev: tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone), want: PointerEvent{Action: PointerPress, Button: ButtonSecondary, X: 1, Y: 1}, ok: true},
			{ev: tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), want: PointerEvent{Action: PointerRelease, Button: ButtonSecondary, X: 1, Y: 1}, ok: true},
		},
		"hover": {
			{ev: tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone), want: PointerEvent{Action: PointerMove, Button: ButtonNone, X: 2, Y: 2}, ok: true},
		},
		"resize": {
			{ev: tcell.NewEventResize(80, 24), want: ResizeEvent{Width: 80, Height: 24}, ok: true},
		},
		"keys": {
			{ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: KeyEvent{Key: KeyRune, Rune: 'q'}, ok: true},
			{ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: KeyEvent{Key: KeyEnter}, ok: true},
			{ev: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), want: KeyEvent{Key: KeyTab}, ok: true},
			{ev: tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ok: false},
		},
	}

	for name, steps := range tests {
		t.Run(name, func(t *testing.T) {
			r := &ScreenEventReader{}
			for i, s := range steps {
				got, ok := r.translate(s.ev)
				if ok != s.ok {
					t.Fatalf("step %d: ok = %v, want %v", i, ok, s.ok)
				}
				if ok && got != s.want {
					t.Errorf("step %d: translate() = %+v, want %+v", i, got, s.want)
				}
			}
		})
	}
}

func TestScreenEventReader_Poll(t *testing.T) {
	screen := newFakeScreen(10, 10)
	r := NewScreenEventReader(screen)
	defer r.Close()

	if _, ok := r.PollEvent(5 * time.Millisecond); ok {
		t.Fatal("PollEvent() returned an event from an idle screen")
	}

	screen.events <- tcell.NewEventResize(20, 5)
	ev, ok := r.PollEvent(time.Second)
	if !ok {
		t.Fatal("PollEvent() timed out")
	}
	if ev != (ResizeEvent{Width: 20, Height: 5}) {
		t.Errorf("PollEvent() = %+v, want resize to 20x5", ev)
	}

	r.Close()
	if _, ok := r.PollEvent(time.Second); ok {
		t.Error("PollEvent() after Close returned an event")
	}
}
