package geom

import (
	"math"
	"testing"
)

func TestLineCircleIntersection(t *testing.T) {
	center := Pt(0, 0)

	tests := []struct {
		name   string
		p1, p2 Point
		radius float64
		want   []Point
	}{
		{"through center", Pt(-10, 0), Pt(10, 0), 5, []Point{Pt(-5, 0), Pt(5, 0)}},
		{"starts inside", Pt(0, 0), Pt(10, 0), 5, []Point{Pt(5, 0)}},
		{"tangent", Pt(-10, 5), Pt(10, 5), 5, []Point{Pt(0, 5)}},
		{"miss", Pt(-10, 6), Pt(10, 6), 5, nil},
		{"segment too short", Pt(-1, 0), Pt(1, 0), 5, nil},
		{"zero length", Pt(5, 0), Pt(5, 0), 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineCircleIntersection(tt.p1, tt.p2, center, tt.radius)
			if len(got) != len(tt.want) {
				t.Fatalf("LineCircleIntersection() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i].Approx(tt.want[i], 1e-9) {
					t.Errorf("point[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCircleCircleIntersection(t *testing.T) {
	got := CircleCircleIntersection(Pt(0, 0), 5, Pt(8, 0), 5)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	for _, p := range got {
		if !approx(p.X, 4) || !approx(math.Abs(p.Y), 3) {
			t.Errorf("point %v, want (4, ±3)", p)
		}
	}
	if got[0].Y == got[1].Y {
		t.Errorf("points should be mirrored: %v", got)
	}
}

func TestCircleCircleIntersectionEquidistant(t *testing.T) {
	tests := []struct {
		c1, c2 Point
		r1, r2 float64
	}{
		{Pt(0, 0), Pt(3, 4), 4, 3},
		{Pt(-2, 7), Pt(1, 1), 6, 2.5},
		{Pt(10, 10), Pt(12, 9), 1.5, 2},
	}

	for _, tt := range tests {
		d := Distance(tt.c1, tt.c2)
		if !(math.Abs(tt.r1-tt.r2) < d && d < tt.r1+tt.r2) {
			t.Fatalf("bad fixture %+v", tt)
		}
		pts := CircleCircleIntersection(tt.c1, tt.r1, tt.c2, tt.r2)
		if len(pts) != 2 {
			t.Fatalf("got %d points, want 2", len(pts))
		}
		for _, p := range pts {
			if e := math.Abs(Distance(p, tt.c1) - tt.r1); e > 1e-9 {
				t.Errorf("point %v off first circle by %g", p, e)
			}
			if e := math.Abs(Distance(p, tt.c2) - tt.r2); e > 1e-9 {
				t.Errorf("point %v off second circle by %g", p, e)
			}
		}
	}
}

func TestCircleCircleIntersectionNone(t *testing.T) {
	tests := []struct {
		name   string
		c2     Point
		r1, r2 float64
	}{
		{"separated", Pt(20, 0), 5, 5},
		{"nested", Pt(1, 0), 10, 2},
		{"concentric", Pt(0, 0), 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircleIntersection(Pt(0, 0), tt.r1, tt.c2, tt.r2); len(got) != 0 {
				t.Errorf("CircleCircleIntersection() = %v, want none", got)
			}
		})
	}
}

func TestCircleCircleIntersectionTangent(t *testing.T) {
	got := CircleCircleIntersection(Pt(0, 0), 5, Pt(10, 0), 5)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if !got[0].Approx(got[1], 1e-9) || !got[0].Approx(Pt(5, 0), 1e-9) {
		t.Errorf("tangent points = %v, want two copies of (5,0)", got)
	}
}

func TestTangentPointsOnCircle(t *testing.T) {
	center := Pt(0, 0)

	if got := TangentPointsOnCircle(Pt(1, 1), center, 5); len(got) != 0 {
		t.Errorf("inside point: got %v, want none", got)
	}

	on := Pt(5, 0)
	if got := TangentPointsOnCircle(on, center, 5); len(got) != 1 || got[0] != on {
		t.Errorf("point on circle: got %v, want [%v]", got, on)
	}

	ext := Pt(10, 0)
	got := TangentPointsOnCircle(ext, center, 5)
	if len(got) != 2 {
		t.Fatalf("external point: got %d points, want 2", len(got))
	}
	for _, p := range got {
		if !approx(Distance(p, center), 5) {
			t.Errorf("tangent point %v not on circle", p)
		}
		// radius is perpendicular to the tangent line
		if d := p.Sub(center).Dot(ext.Sub(p)); math.Abs(d) > 1e-9 {
			t.Errorf("tangent at %v not perpendicular to radius (dot %g)", p, d)
		}
	}
}

func TestArcEndpoints(t *testing.T) {
	start, end := ArcEndpoints(Pt(1, 1), 2, 0, 90)
	if !start.Approx(Pt(3, 1), 1e-9) {
		t.Errorf("start = %v, want (3,1)", start)
	}
	if !end.Approx(Pt(1, 3), 1e-9) {
		t.Errorf("end = %v, want (1,3)", end)
	}
}

func TestAngles(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"normalize negative", NormalizeAngle(-90), 270},
		{"normalize wrap", NormalizeAngle(720 + 45), 45},
		{"angle of left", AngleOf(Pt(0, 0), Pt(-1, 0)), 180},
		{"angle of below", AngleOf(Pt(0, 0), Pt(0, -1)), 270},
		{"sweep simple", Sweep(10, 100), 90},
		{"sweep wrapping", Sweep(350, 10), 20},
		{"sweep full", Sweep(30, 30), 360},
		{"sweep reversed storage", Sweep(91, 89), 358},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestAngleInSweep(t *testing.T) {
	tests := []struct {
		angle, start, end float64
		want              bool
	}{
		{45, 0, 90, true},
		{0, 0, 90, true},
		{90, 0, 90, true},
		{180, 0, 90, false},
		{5, 350, 10, true},
		{340, 350, 10, false},
		{90, 91, 89, false},
		{270, 91, 89, true},
	}

	for _, tt := range tests {
		if got := AngleInSweep(tt.angle, tt.start, tt.end); got != tt.want {
			t.Errorf("AngleInSweep(%v, %v, %v) = %v, want %v", tt.angle, tt.start, tt.end, got, tt.want)
		}
	}
}
