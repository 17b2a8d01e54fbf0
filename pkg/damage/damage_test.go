package damage

import (
	"math/rand/v2"
	"testing"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

func coverage(rects ...layout.Rect) map[[2]int]int {
	px := make(map[[2]int]int)
	for _, r := range rects {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				px[[2]int{x, y}]++
			}
		}
	}
	return px
}

func assertDisjoint(t *testing.T, s *Set) {
	t.Helper()
	rects := s.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Fatalf("members %v and %v overlap", rects[i], rects[j])
			}
		}
	}
}

func TestSet_AddRegion(t *testing.T) {
	type tc struct {
		regions  []layout.Rect
		wantArea int
	}

	tests := map[string]tc{
		"single region": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 20, 20)},
			wantArea: 400,
		},
		"same region twice": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 20, 20), layout.NewRect(0, 0, 20, 20)},
			wantArea: 400,
		},
		"sub region after region": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 20, 20), layout.NewRect(5, 5, 3, 3)},
			wantArea: 400,
		},
		"partial overlap": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 10, 10), layout.NewRect(5, 5, 10, 10)},
			wantArea: 175,
		},
		"disjoint regions": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 5, 5), layout.NewRect(10, 10, 5, 5)},
			wantArea: 50,
		},
		"empty region ignored": {
			regions:  []layout.Rect{layout.NewRect(0, 0, 0, 5), layout.NewRect(1, 1, 3, -2)},
			wantArea: 0,
		},
		"larger region swallows smaller": {
			regions:  []layout.Rect{layout.NewRect(5, 5, 2, 2), layout.NewRect(0, 0, 10, 10)},
			wantArea: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var s Set
			s.AddRegions(tt.regions...)

			if got := s.Area(); got != tt.wantArea {
				t.Errorf("Area() = %d, want %d", got, tt.wantArea)
			}
			assertDisjoint(t, &s)
		})
	}
}

func TestSet_AddRegion_Idempotent(t *testing.T) {
	s := New()
	r := layout.NewRect(3, 4, 17, 9)

	s.AddRegion(r)
	before := s.Len()
	s.AddRegion(r)
	s.AddRegion(layout.NewRect(5, 5, 2, 2))

	if s.Len() != before {
		t.Errorf("Len() = %d after re-adding covered area, want %d", s.Len(), before)
	}
	if s.Area() != r.Area() {
		t.Errorf("Area() = %d, want %d", s.Area(), r.Area())
	}
}

func TestSet_CoverageInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 50; round++ {
		s := New()
		var added []layout.Rect
		for i := 0; i < 8; i++ {
			r := layout.NewRect(rng.IntN(30), rng.IntN(30), rng.IntN(15), rng.IntN(15))
			added = append(added, r)
			s.AddRegion(r)
			assertDisjoint(t, s)
		}

		want := coverage(added...)
		got := coverage(s.Rects()...)
		if len(got) != len(want) {
			t.Fatalf("round %d: covered %d pixels, want %d", round, len(got), len(want))
		}
		for p, n := range got {
			if n != 1 {
				t.Fatalf("round %d: pixel %v covered %d times", round, p, n)
			}
			if want[p] == 0 {
				t.Fatalf("round %d: pixel %v damaged but never added", round, p)
			}
		}
	}
}

func TestSet_Drain(t *testing.T) {
	s := New()
	s.AddRegion(layout.NewRect(0, 0, 4, 4))
	s.AddRegion(layout.NewRect(10, 0, 4, 4))

	got := s.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d rects, want 2", len(got))
	}
	if !s.IsEmpty() || s.Len() != 0 || s.Area() != 0 {
		t.Errorf("set not empty after Drain(): %v", s.Rects())
	}

	// the set is reusable after a drain
	s.AddRegion(layout.NewRect(0, 0, 4, 4))
	if s.Area() != 16 {
		t.Errorf("Area() after refill = %d, want 16", s.Area())
	}
}

func TestSet_Clip(t *testing.T) {
	s := New()
	s.AddRegion(layout.NewRect(-5, -5, 10, 10))
	s.AddRegion(layout.NewRect(50, 50, 5, 5))
	s.AddRegion(layout.NewRect(8, 8, 4, 4))

	s.Clip(layout.NewRect(0, 0, 10, 10))

	if got := s.Area(); got != 25+4 {
		t.Errorf("Area() after Clip = %d, want %d", got, 29)
	}
	for _, r := range s.Rects() {
		if !layout.NewRect(0, 0, 10, 10).ContainsRect(r) {
			t.Errorf("member %v escapes the clip bounds", r)
		}
	}
	assertDisjoint(t, s)
}
