package geom

import "math"

// LineCircleIntersection intersects segment [p1, p2] with the circle of the
// given center and radius. It returns 0-2 points ordered along the segment.
// A tangent contact (coincident roots) yields a single point. A zero-length
// segment yields none.
func LineCircleIntersection(p1, p2, center Point, radius float64) []Point {
	d := p2.Sub(p1)
	f := p1.Sub(center)

	a := d.Dot(d)
	if a < Epsilon {
		return nil
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	var out []Point
	if t1 >= 0 && t1 <= 1 {
		out = append(out, p1.Add(d.Mul(t1)))
	}
	if math.Abs(t2-t1) < Epsilon {
		return out
	}
	if t2 >= 0 && t2 <= 1 {
		out = append(out, p1.Add(d.Mul(t2)))
	}
	return out
}

// CircleCircleIntersection intersects two circles. It returns nothing for
// separated (d > r1+r2), nested (d < |r1-r2|) and concentric circles, and
// exactly two points otherwise. Tangent circles yield two coincident points.
func CircleCircleIntersection(c1 Point, r1 float64, c2 Point, r2 float64) []Point {
	d := Distance(c1, c2)
	if d < Epsilon || d > r1+r2 || d < math.Abs(r1-r2) {
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r1*r1-a*a))

	dx := (c2.X - c1.X) / d
	dy := (c2.Y - c1.Y) / d
	mid := Point{X: c1.X + a*dx, Y: c1.Y + a*dy}

	return []Point{
		{X: mid.X + h*dy, Y: mid.Y - h*dx},
		{X: mid.X - h*dy, Y: mid.Y + h*dx},
	}
}

// TangentPointsOnCircle returns the points where lines through an external
// point touch the circle: none when the point is strictly inside, the point
// itself when it lies on the circle, two points otherwise.
func TangentPointsOnCircle(external, center Point, radius float64) []Point {
	v := external.Sub(center)
	d := v.Length()
	if d < radius-Epsilon {
		return nil
	}
	if math.Abs(d-radius) <= Epsilon {
		return []Point{external}
	}

	base := math.Atan2(v.Y, v.X)
	alpha := math.Acos(radius / d)
	return []Point{
		{X: center.X + radius*math.Cos(base+alpha), Y: center.Y + radius*math.Sin(base+alpha)},
		{X: center.X + radius*math.Cos(base-alpha), Y: center.Y + radius*math.Sin(base-alpha)},
	}
}

// PointOnCircle evaluates the circle at angle degrees.
func PointOnCircle(center Point, radius, degrees float64) Point {
	rad := Radians(degrees)
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// ArcEndpoints evaluates an arc at its start and end angles.
func ArcEndpoints(center Point, radius, startAngle, endAngle float64) (start, end Point) {
	return PointOnCircle(center, radius, startAngle), PointOnCircle(center, radius, endAngle)
}

// AngleOf returns the direction from center to p in degrees, in [0, 360).
func AngleOf(center, p Point) float64 {
	return NormalizeAngle(Degrees(math.Atan2(p.Y-center.Y, p.X-center.X)))
}

// NormalizeAngle maps degrees into [0, 360).
func NormalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// Sweep returns how many degrees an arc covers going from start towards
// increasing angle until end. Coincident angles describe a full turn.
func Sweep(startAngle, endAngle float64) float64 {
	s := NormalizeAngle(endAngle - startAngle)
	if s < Epsilon {
		return 360
	}
	return s
}

// AngleInSweep reports whether degrees lies on the arc from startAngle to
// endAngle, endpoints included.
func AngleInSweep(degrees, startAngle, endAngle float64) bool {
	offset := NormalizeAngle(degrees - startAngle)
	return offset <= Sweep(startAngle, endAngle)+1e-9
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 { return degrees * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 { return radians * 180 / math.Pi }
