package gadget

import (
	"errors"
	"slices"
	"testing"

	"github.com/grindlemire/go-gadget/pkg/layout"
)

func TestTree_AddAndRemove(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 100, 100))
	root := tree.Root()

	a := mustAdd(t, tree, root, layout.NewRect(0, 0, 10, 10), WithName("a"))
	b := mustAdd(t, tree, root, layout.NewRect(20, 0, 10, 10), WithName("b"))
	child := mustAdd(t, tree, a, layout.NewRect(1, 1, 2, 2))

	if got := tree.Children(root); !slices.Equal(got, []Handle{a, b}) {
		t.Fatalf("Children(root) = %v, want [a b]", got)
	}
	if tree.Parent(child) != a {
		t.Errorf("Parent(child) = %v, want %v", tree.Parent(child), a)
	}
	if tree.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tree.Len())
	}

	if err := tree.Remove(a); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if tree.Contains(a) || tree.Contains(child) {
		t.Error("removed subtree still reachable")
	}
	if got := tree.Children(root); !slices.Equal(got, []Handle{b}) {
		t.Errorf("Children(root) after Remove = %v, want [b]", got)
	}
	if tree.Len() != 2 {
		t.Errorf("Len() after Remove = %d, want 2", tree.Len())
	}

	// a reused slot must not revive the old handle
	c := mustAdd(t, tree, root, layout.NewRect(0, 0, 1, 1))
	if c == a || tree.Contains(a) {
		t.Error("stale handle resolved to a new node")
	}
}

func TestTree_Errors(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 10, 10))

	if _, err := tree.Add(Handle{}, layout.NewRect(0, 0, 1, 1)); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Add(invalid parent) error = %v, want ErrInvalidHandle", err)
	}
	if err := tree.Remove(tree.Root()); !errors.Is(err, ErrRootRemoval) {
		t.Errorf("Remove(root) error = %v, want ErrRootRemoval", err)
	}
	if err := tree.Raise(tree.Root()); !errors.Is(err, ErrRootRemoval) {
		t.Errorf("Raise(root) error = %v, want ErrRootRemoval", err)
	}

	h := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 1, 1))
	if err := tree.Remove(h); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := tree.Remove(h); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("double Remove() error = %v, want ErrInvalidHandle", err)
	}
	if err := tree.SetRect(h, layout.Rect{}); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("SetRect(removed) error = %v, want ErrInvalidHandle", err)
	}
}

func TestTree_Geometry(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 100, 100))
	win := mustAdd(t, tree, tree.Root(), layout.NewRect(10, 20, 30, 30), WithBorderSize(2))
	btn := mustAdd(t, tree, win, layout.NewRect(5, 5, 40, 4))

	if got, want := tree.AbsoluteRect(btn), layout.NewRect(15, 25, 40, 4); got != want {
		t.Errorf("AbsoluteRect() = %v, want %v", got, want)
	}
	if got, want := tree.ClientRect(win), layout.NewRect(12, 22, 26, 26); got != want {
		t.Errorf("ClientRect() = %v, want %v", got, want)
	}

	// button sticks out of the window's client area on the right
	clip, ok := tree.ClipRect(btn)
	if !ok {
		t.Fatal("ClipRect() reported nothing left")
	}
	if want := layout.NewRect(15, 25, 23, 4); clip != want {
		t.Errorf("ClipRect() = %v, want %v", clip, want)
	}

	// entirely under the border
	edge := mustAdd(t, tree, win, layout.NewRect(0, 0, 2, 2))
	if _, ok := tree.ClipRect(edge); ok {
		t.Error("ClipRect() of a node hidden by the border should be empty")
	}
}

func TestTree_RaiseLower(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 10, 10))
	root := tree.Root()
	a := mustAdd(t, tree, root, layout.NewRect(0, 0, 1, 1))
	b := mustAdd(t, tree, root, layout.NewRect(0, 0, 1, 1))
	c := mustAdd(t, tree, root, layout.NewRect(0, 0, 1, 1))

	if err := tree.Raise(a); err != nil {
		t.Fatalf("Raise() error = %v", err)
	}
	if got := tree.Children(root); !slices.Equal(got, []Handle{b, c, a}) {
		t.Errorf("after Raise(a) = %v, want [b c a]", got)
	}
	if err := tree.Lower(c); err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	if got := tree.Children(root); !slices.Equal(got, []Handle{c, b, a}) {
		t.Errorf("after Lower(c) = %v, want [c b a]", got)
	}
	if tree.IndexOf(a) != 2 {
		t.Errorf("IndexOf(a) = %d, want 2", tree.IndexOf(a))
	}
}

func TestTree_HitTest(t *testing.T) {
	type tc struct {
		x, y int
		want string
	}

	tree := NewTree(layout.NewRect(0, 0, 100, 100), WithName("root"))
	root := tree.Root()
	back := mustAdd(t, tree, root, layout.NewRect(0, 0, 50, 50), WithName("back"))
	mustAdd(t, tree, root, layout.NewRect(40, 40, 50, 50), WithName("front"))
	mustAdd(t, tree, back, layout.NewRect(5, 5, 10, 10), WithName("button"))
	mustAdd(t, tree, root, layout.NewRect(0, 80, 10, 10), WithName("hidden"), WithHidden())

	tests := map[string]tc{
		"nested child":         {x: 7, y: 7, want: "button"},
		"back window":          {x: 30, y: 30, want: "back"},
		"front wins overlap":   {x: 45, y: 45, want: "front"},
		"hidden node skipped":  {x: 5, y: 85, want: "root"},
		"outside root":         {x: 150, y: 5, want: ""},
		"right edge exclusive": {x: 89, y: 89, want: "front"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tree.Name(tree.HitTest(tt.x, tt.y)); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTree_IsShowing(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 10, 10))
	parent := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 5, 5), WithHidden())
	child := mustAdd(t, tree, parent, layout.NewRect(0, 0, 2, 2))

	if !tree.IsVisible(child) {
		t.Error("child's own flag should be visible")
	}
	if tree.IsShowing(child) {
		t.Error("child of a hidden parent must not be showing")
	}
	if tree.IsShowing(Handle{}) {
		t.Error("zero handle must not be showing")
	}
}

func TestTree_IsInteractive(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 10, 10))
	parent := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 5, 5))
	child := mustAdd(t, tree, parent, layout.NewRect(0, 0, 2, 2))

	if !tree.IsInteractive(child) {
		t.Fatal("enabled, showing child must be interactive")
	}
	if err := tree.SetEnabled(parent, false); err != nil {
		t.Fatal(err)
	}
	if !tree.IsEnabled(child) {
		t.Error("child's own flag should stay enabled")
	}
	if tree.IsInteractive(child) {
		t.Error("child of a disabled parent must not be interactive")
	}
	if err := tree.SetEnabled(parent, true); err != nil {
		t.Fatal(err)
	}
	if err := tree.SetVisible(parent, false); err != nil {
		t.Fatal(err)
	}
	if tree.IsInteractive(child) {
		t.Error("child of a hidden parent must not be interactive")
	}
	if tree.IsInteractive(Handle{}) {
		t.Error("zero handle must not be interactive")
	}
}

func TestTree_Walk(t *testing.T) {
	tree := NewTree(layout.NewRect(0, 0, 10, 10), WithName("root"))
	a := mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 1, 1), WithName("a"))
	mustAdd(t, tree, a, layout.NewRect(0, 0, 1, 1), WithName("a1"))
	mustAdd(t, tree, tree.Root(), layout.NewRect(0, 0, 1, 1), WithName("b"))

	var names []string
	tree.Walk(tree.Root(), func(h Handle) bool {
		names = append(names, tree.Name(h))
		return tree.Name(h) != "a"
	})
	if want := []string{"root", "a", "b"}; !slices.Equal(names, want) {
		t.Errorf("Walk() = %v, want %v", names, want)
	}
}
