package edit

import (
	"testing"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func TestSplitAtIntersections(t *testing.T) {
	target := line("t", 0, 0, 30, 0)
	others := []drawing.Element{
		target,
		line("b", 20, -5, 20, 5),
		line("a", 10, -5, 10, 5),
		drawing.Circle{Attrs: drawing.Attrs{ID: "far"}, CX: 100, CY: 100, Radius: 1},
	}

	frags := seqIDs().SplitAtIntersections(target, others)
	if len(frags) != 3 {
		t.Fatalf("got %d fragments, want 3", len(frags))
	}
	want := [][2]geom.Point{
		{geom.Pt(0, 0), geom.Pt(10, 0)},
		{geom.Pt(10, 0), geom.Pt(20, 0)},
		{geom.Pt(20, 0), geom.Pt(30, 0)},
	}
	for i, w := range want {
		l := lineAt(t, frags[i])
		if !near(l.Start(), w[0]) || !near(l.End(), w[1]) {
			t.Errorf("fragment %d = %v-%v, want %v-%v", i, l.Start(), l.End(), w[0], w[1])
		}
	}
}

func TestSplitAtIntersectionsNone(t *testing.T) {
	target := line("t", 0, 0, 10, 0)
	frags := New().SplitAtIntersections(target, []drawing.Element{line("o", 0, 5, 10, 5)})
	if len(frags) != 1 || frags[0].ElementID() != "t" {
		t.Errorf("expected the target back, got %v", frags)
	}
}

func TestSplitAtIntersectionsRectangleAndArc(t *testing.T) {
	target := line("t", -20, 5, 20, 5)
	others := []drawing.Element{
		drawing.Rectangle{Attrs: drawing.Attrs{ID: "r"}, X: -10, Y: 0, Width: 20, Height: 10},
		// Upper half only: it crosses y=5 on both sides of the center.
		drawing.Arc{Attrs: drawing.Attrs{ID: "a"}, CX: 0, CY: 0, Radius: 15, StartAngle: 0, EndAngle: 180},
		// Lower half never reaches y=5.
		drawing.Arc{Attrs: drawing.Attrs{ID: "b"}, CX: 0, CY: 0, Radius: 30, StartAngle: 180, EndAngle: 360},
	}
	frags := New().SplitAtIntersections(target, others)
	if len(frags) != 5 {
		t.Fatalf("got %d fragments, want 5", len(frags))
	}
	if lineAt(t, frags[0]).Start() != geom.Pt(-20, 5) || lineAt(t, frags[4]).End() != geom.Pt(20, 5) {
		t.Error("outer fragments should keep the original ends")
	}
}

func TestSplitAtIntersectionsCircle(t *testing.T) {
	c := drawing.Circle{Attrs: drawing.Attrs{ID: "c"}, Radius: 10}
	frags := New().SplitAtIntersections(c, []drawing.Element{line("l", -20, 0, 20, 0)})
	// The first cut opens the circle into an arc; the second halves that arc.
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2", len(frags))
	}
	for _, f := range frags {
		if _, ok := f.(drawing.Arc); !ok {
			t.Errorf("fragment %T, want arc", f)
		}
	}
}
