package geom

import "math"

// Intersection is a crossing between two lines together with the parametric
// positions along each: Point = p1 + T*(p2-p1) = p3 + U*(p4-p3).
type Intersection struct {
	Point Point
	T, U  float64
}

// PointToLineDistance returns the distance from p to the segment [a, b], not
// the infinite line. A zero-length segment degrades to [Distance].
func PointToLineDistance(p, a, b Point) float64 {
	return Distance(p, ClosestPointOnLine(p, a, b))
}

// ClosestPointOnLine projects p onto the segment [a, b], clamping the
// projection parameter to [0, 1].
func ClosestPointOnLine(p, a, b Point) Point {
	t, ok := projectParam(p, a, b)
	if !ok {
		return a
	}
	return a.Lerp(b, clamp01(t))
}

// ClosestPointOnLineUnbounded projects p onto the infinite line through a and
// b. When a and b coincide the line is undefined and a is returned.
func ClosestPointOnLineUnbounded(p, a, b Point) Point {
	t, ok := projectParam(p, a, b)
	if !ok {
		return a
	}
	return a.Lerp(b, t)
}

// LineLineIntersection intersects segment [p1, p2] with segment [p3, p4].
// Parallel and collinear input reports false, as does a crossing that lies
// outside either segment.
func LineLineIntersection(p1, p2, p3, p4 Point) (Intersection, bool) {
	hit, ok := LineLineIntersectionUnbounded(p1, p2, p3, p4)
	if !ok {
		return Intersection{}, false
	}
	if hit.T < 0 || hit.T > 1 || hit.U < 0 || hit.U > 1 {
		return Intersection{}, false
	}
	return hit, true
}

// LineLineIntersectionUnbounded intersects the infinite lines through
// (p1, p2) and (p3, p4). It reports false only when the lines are parallel or
// collinear, so T and U may fall anywhere on the real line.
func LineLineIntersectionUnbounded(p1, p2, p3, p4 Point) (Intersection, bool) {
	r := p2.Sub(p1)
	s := p4.Sub(p3)
	d := r.Cross(s)
	if math.Abs(d) < Epsilon {
		return Intersection{}, false
	}
	qp := p3.Sub(p1)
	t := qp.Cross(s) / d
	u := qp.Cross(r) / d
	return Intersection{Point: p1.Add(r.Mul(t)), T: t, U: u}, true
}

// SegmentLength returns the length of [a, b].
func SegmentLength(a, b Point) float64 {
	return Distance(a, b)
}

// OnSegment reports whether p lies on [a, b] using the triangle equality
// |d(p,a) + d(p,b) - d(a,b)| < tol.
func OnSegment(p, a, b Point, tol float64) bool {
	return math.Abs(Distance(p, a)+Distance(p, b)-Distance(a, b)) < tol
}

func projectParam(p, a, b Point) (float64, bool) {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq < Epsilon {
		return 0, false
	}
	return p.Sub(a).Dot(ab) / lenSq, true
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Segment is the straight piece of an element between two points, such as a
// polyline span or a rectangle edge.
type Segment struct {
	A, B Point
}

// Length returns the distance between the segment ends.
func (s Segment) Length() float64 { return Distance(s.A, s.B) }

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point { return s.A.Midpoint(s.B) }
