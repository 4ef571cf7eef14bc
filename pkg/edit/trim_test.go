package edit

import (
	"testing"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func TestTrimKeepsFarSide(t *testing.T) {
	target := line("t", 0, 0, 10, 0)
	edge := line("e", 5, -5, 5, 5)

	out := seqIDs().Trim(target, geom.Pt(2, 0), []drawing.Element{edge})
	if len(out) != 1 {
		t.Fatalf("got %d pieces, want 1", len(out))
	}
	kept := lineAt(t, out[0])
	if !near(kept.Start(), geom.Pt(5, 0)) || kept.End() != geom.Pt(10, 0) {
		t.Errorf("kept %v-%v, want (5,0)-(10,0)", kept.Start(), kept.End())
	}
	if kept.ID != "f1" || kept.LayerID != "walls" {
		t.Errorf("kept attrs = %+v", kept.Attrs)
	}
}

func TestTrimMiddleBetweenTwoEdges(t *testing.T) {
	target := line("t", 0, 0, 30, 0)
	edges := []drawing.Element{
		line("b", 20, -5, 20, 5),
		line("a", 10, -5, 10, 5),
	}
	out := New().Trim(target, geom.Pt(15, 1), edges)
	if len(out) != 2 {
		t.Fatalf("got %d pieces, want 2", len(out))
	}
	left, right := lineAt(t, out[0]), lineAt(t, out[1])
	if left.Start() != geom.Pt(0, 0) || !near(left.End(), geom.Pt(10, 0)) {
		t.Errorf("left = %v-%v", left.Start(), left.End())
	}
	if !near(right.Start(), geom.Pt(20, 0)) || right.End() != geom.Pt(30, 0) {
		t.Errorf("right = %v-%v", right.Start(), right.End())
	}
}

func TestTrimDropsShortPieces(t *testing.T) {
	// Edges sit 0.5 from each end, so both outer pieces are too short.
	target := line("t", 0, 0, 10, 0)
	edges := []drawing.Element{
		line("a", 0.5, -1, 0.5, 1),
		line("b", 9.5, -1, 9.5, 1),
	}
	out := New().Trim(target, geom.Pt(5, 0), edges)
	if out == nil || len(out) != 0 {
		t.Errorf("expected an empty, non-nil result, got %v", out)
	}
}

func TestTrimNoIntersections(t *testing.T) {
	target := line("t", 0, 0, 10, 0)
	out := New().Trim(target, geom.Pt(2, 0), []drawing.Element{line("e", 0, 5, 10, 5)})
	if len(out) != 1 || out[0].ElementID() != "t" {
		t.Errorf("expected the target back, got %v", out)
	}
}

func TestTrimNonLineUnchanged(t *testing.T) {
	c := drawing.Circle{Attrs: drawing.Attrs{ID: "c"}, Radius: 5}
	out := New().Trim(c, geom.Pt(5, 0), []drawing.Element{line("e", 0, -10, 0, 10)})
	if len(out) != 1 || out[0].ElementID() != "c" {
		t.Errorf("circle should come back unchanged, got %v", out)
	}
}

// A click away from the bracketed piece clips the line to the bracket
// instead of deleting anything.
func TestTrimFallbackClipsToBracket(t *testing.T) {
	target := line("t", 0, 0, 10, 0)
	edge := line("e", 5, -5, 5, 5)

	out := seqIDs().Trim(target, geom.Pt(2, 20), []drawing.Element{edge})
	if len(out) != 1 {
		t.Fatalf("got %d pieces, want 1", len(out))
	}
	l := lineAt(t, out[0])
	if !near(l.Start(), geom.Pt(5, 0)) || l.End() != geom.Pt(10, 0) {
		t.Errorf("clipped to %v-%v, want (5,0)-(10,0)", l.Start(), l.End())
	}
	if l.ID != "f1" {
		t.Errorf("clipped line should get a fresh id, got %s", l.ID)
	}
}
