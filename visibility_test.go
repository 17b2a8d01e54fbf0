package gadget

import (
	"testing"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

func TestVisibleRegions(t *testing.T) {
	type tc struct {
		build    func(t *testing.T, tree *Tree) Handle
		wantArea int
		want     []layout.Rect // exact decomposition, when given
	}

	tests := map[string]tc{
		"no siblings": {
			build: func(t *testing.T, tree *Tree) Handle {
				return mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 20, 20))
			},
			wantArea: 400,
			want:     []layout.Rect{layout.NewRect(10, 10, 20, 20)},
		},
		"only lower siblings": {
			build: func(t *testing.T, tree *Tree) Handle {
				mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 50, 50))
				return mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 20, 20))
			},
			wantArea: 400,
			want:     []layout.Rect{layout.NewRect(10, 10, 20, 20)},
		},
		"L-shape under overlapping sibling": {
			build: func(t *testing.T, tree *Tree) Handle {
				a := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 10, 10))
				mustAdd(t, tree, tree.Root(), layout.NewRect(5, 5, 10, 10))
				return a
			},
			wantArea: 75,
			want: []layout.Rect{
				layout.NewRect(0, 0, 5, 10),
				layout.NewRect(5, 0, 5, 5),
			},
		},
		"fully covered by larger sibling": {
			build: func(t *testing.T, tree *Tree) Handle {
				a := mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 10, 10))
				mustAdd(t, tree, tree.Root(), layout.NewRect(5, 5, 30, 30))
				return a
			},
			wantArea: 0,
		},
		"covered by equal sibling": {
			build: func(t *testing.T, tree *Tree) Handle {
				a := mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 10, 10))
				mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 10, 10))
				return a
			},
			wantArea: 0,
		},
		"hidden occluder ignored": {
			build: func(t *testing.T, tree *Tree) Handle {
				a := mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 10, 10))
				mustAdd(t, tree, tree.Root(), layout.NewRect(5, 5, 30, 30), WithHidden())
				return a
			},
			wantArea: 100,
		},
		"hidden node": {
			build: func(t *testing.T, tree *Tree) Handle {
				return mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 10, 10), WithHidden())
			},
			wantArea: 0,
		},
		"child of hidden parent": {
			build: func(t *testing.T, tree *Tree) Handle {
				p := mustAdd(t, tree, tree.Root(), layout.NewRect(10, 10, 30, 30), WithHidden())
				return mustAdd(t, tree, p, layout.NewRect(0, 0, 10, 10))
			},
			wantArea: 0,
		},
		"occluded at ancestor level": {
			build: func(t *testing.T, tree *Tree) Handle {
				win := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 40, 40))
				btn := mustAdd(t, tree, win, layout.NewRect(0, 0, 20, 10))
				// another window over the right half of the button
				mustAdd(t, tree, tree.Root(), layout.NewRect(10, 0, 40, 40))
				return btn
			},
			wantArea: 100,
			want:     []layout.Rect{layout.NewRect(0, 0, 10, 10)},
		},
		"clipped by parent client rect": {
			build: func(t *testing.T, tree *Tree) Handle {
				win := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 20, 20), WithBorderSize(1))
				return mustAdd(t, tree, win, layout.NewRect(10, 10, 20, 20))
			},
			wantArea: 81,
			want:     []layout.Rect{layout.NewRect(10, 10, 9, 9)},
		},
		"root": {
			build: func(t *testing.T, tree *Tree) Handle {
				mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 10, 10))
				return tree.Root()
			},
			wantArea: 100 * 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree(layout.NewRect(0, 0, 100, 100))
			h := tt.build(t, tree)

			got := tree.VisibleRegions(h)
			if a := area(got); a != tt.wantArea {
				t.Errorf("VisibleRegions() area = %d, want %d (%v)", a, tt.wantArea, got)
			}
			if tt.wantArea == 0 && len(got) != 0 {
				t.Errorf("VisibleRegions() = %v, want empty", got)
			}
			if tt.want != nil {
				if len(got) != len(tt.want) {
					t.Fatalf("VisibleRegions() = %v, want %v", got, tt.want)
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("VisibleRegions()[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
			for i := range got {
				for j := i + 1; j < len(got); j++ {
					if got[i].Intersects(got[j]) {
						t.Errorf("fragments %v and %v overlap", got[i], got[j])
					}
				}
			}
		})
	}
}
