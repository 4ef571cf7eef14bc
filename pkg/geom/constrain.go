package geom

import "math"

// ApplyOrtho constrains end to the horizontal or vertical axis through start,
// whichever end deviates from less. Equal deviations resolve to horizontal.
func ApplyOrtho(start, end Point) Point {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)
	if dx >= dy {
		return Point{X: end.X, Y: start.Y}
	}
	return Point{X: start.X, Y: end.Y}
}

// ApplyPolar keeps end at its distance from start but rotates it to the
// nearest multiple of increment degrees. A non-positive increment disables the
// constraint.
func ApplyPolar(start, end Point, increment float64) Point {
	if increment <= 0 {
		return end
	}
	v := end.Sub(start)
	dist := v.Length()
	if dist < Epsilon {
		return end
	}
	angle := Degrees(math.Atan2(v.Y, v.X))
	snapped := math.Round(angle/increment) * increment
	return PointOnCircle(start, dist, snapped)
}

// SnapToGrid rounds both coordinates to the nearest multiple of size.
// A non-positive size returns p unchanged.
func SnapToGrid(p Point, size float64) Point {
	if size <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/size) * size,
		Y: math.Round(p.Y/size) * size,
	}
}
