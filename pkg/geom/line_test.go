package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < tol }

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.p1, tt.p2); !approx(got, tt.want) {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointToLineDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"above middle", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"beyond end clamps", Pt(13, 4), Pt(0, 0), Pt(10, 0), 5},
		{"before start clamps", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 5},
		{"on segment", Pt(4, 0), Pt(0, 0), Pt(10, 0), 0},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointToLineDistance(tt.p, tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("PointToLineDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointToLineDistanceDegenerateEqualsDistance(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(7, -2), Pt(-100.5, 33.25)}
	a := Pt(1.5, 2.5)
	for _, p := range points {
		if got, want := PointToLineDistance(p, a, a), Distance(p, a); !approx(got, want) {
			t.Errorf("PointToLineDistance(%v, a, a) = %v, want %v", p, got, want)
		}
	}
}

func TestClosestPointOnLine(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	if got := ClosestPointOnLine(Pt(15, 5), a, b); got != b {
		t.Errorf("bounded projection past end = %v, want %v", got, b)
	}
	if got := ClosestPointOnLineUnbounded(Pt(15, 5), a, b); !got.Approx(Pt(15, 0), tol) {
		t.Errorf("unbounded projection past end = %v, want (15,0)", got)
	}
	if got := ClosestPointOnLineUnbounded(Pt(15, 5), a, a); got != a {
		t.Errorf("unbounded projection on degenerate line = %v, want %v", got, a)
	}
}

func TestLineLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           Point
		wantOK         bool
	}{
		{"cross", Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5), Pt(5, 0), true},
		{"diagonals", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), Pt(5, 5), true},
		{"touching at end", Pt(0, 0), Pt(10, 0), Pt(10, -5), Pt(10, 5), Pt(10, 0), true},
		{"parallel", Pt(0, 0), Pt(10, 0), Pt(0, 1), Pt(10, 1), Point{}, false},
		{"collinear", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0), Point{}, false},
		{"outside first segment", Pt(0, 0), Pt(4, 0), Pt(5, -5), Pt(5, 5), Point{}, false},
		{"outside second segment", Pt(0, 0), Pt(10, 0), Pt(5, 1), Pt(5, 5), Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := LineLineIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			if ok != tt.wantOK {
				t.Fatalf("LineLineIntersection() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !hit.Point.Approx(tt.want, tol) {
				t.Errorf("LineLineIntersection() = %v, want %v", hit.Point, tt.want)
			}
		})
	}
}

func TestLineLineIntersectionSwapEndpoints(t *testing.T) {
	p1, p2 := Pt(1, 2), Pt(9, 7)
	p3, p4 := Pt(2, 8), Pt(8, 0)

	fwd, ok := LineLineIntersection(p1, p2, p3, p4)
	if !ok {
		t.Fatal("expected intersection")
	}
	rev, ok := LineLineIntersection(p2, p1, p3, p4)
	if !ok {
		t.Fatal("expected intersection with swapped endpoints")
	}

	if !fwd.Point.Approx(rev.Point, 1e-9) {
		t.Errorf("points differ: %v vs %v", fwd.Point, rev.Point)
	}
	if !approx(rev.T, 1-fwd.T) {
		t.Errorf("swapped T = %v, want %v", rev.T, 1-fwd.T)
	}
}

func TestLineLineIntersectionUnbounded(t *testing.T) {
	hit, ok := LineLineIntersectionUnbounded(Pt(0, 0), Pt(1, 0), Pt(5, 1), Pt(5, 2))
	if !ok {
		t.Fatal("expected intersection of infinite lines")
	}
	if !hit.Point.Approx(Pt(5, 0), tol) {
		t.Errorf("point = %v, want (5,0)", hit.Point)
	}
	if !approx(hit.T, 5) || !approx(hit.U, -1) {
		t.Errorf("T, U = %v, %v, want 5, -1", hit.T, hit.U)
	}

	if _, ok := LineLineIntersectionUnbounded(Pt(0, 0), Pt(1, 1), Pt(0, 1), Pt(1, 2)); ok {
		t.Error("parallel lines should not intersect")
	}
}

func TestOnSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	if !OnSegment(Pt(3, 0), a, b, 0.01) {
		t.Error("point on segment not detected")
	}
	if OnSegment(Pt(12, 0), a, b, 0.01) {
		t.Error("point past segment end accepted")
	}
}
