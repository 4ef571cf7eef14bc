package drawing

import (
	"math"

	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// DistanceTo returns the distance from p to the outline of e. Filled
// rectangles and circles, and text boxes, count as solid, so points inside
// them are at distance zero. Elements without geometry are infinitely far.
func DistanceTo(e Element, p geom.Point) float64 {
	switch v := e.(type) {
	case Line:
		return geom.PointToLineDistance(p, v.Start(), v.End())
	case Polyline:
		switch len(v.Points) {
		case 0:
			return math.Inf(1)
		case 1:
			return geom.Distance(p, v.Points[0])
		}
		return segmentsDistance(p, v.Segments())
	case Rectangle:
		if filled(v.Fill) {
			if b, _ := Bounds(v); geom.PointInRect(p, b) {
				return 0
			}
		}
		return segmentsDistance(p, v.Edges())
	case Circle:
		d := geom.Distance(p, v.Center())
		if filled(v.Fill) && d <= v.Radius {
			return 0
		}
		return math.Abs(d - v.Radius)
	case Arc:
		if v.Contains(geom.AngleOf(v.Center(), p)) {
			return math.Abs(geom.Distance(p, v.Center()) - v.Radius)
		}
		s, end := v.Endpoints()
		return math.Min(geom.Distance(p, s), geom.Distance(p, end))
	case Text:
		b, _ := Bounds(v)
		dx := math.Max(0, math.Max(b.MinX-p.X, p.X-b.MaxX))
		dy := math.Max(0, math.Max(b.MinY-p.Y, p.Y-b.MaxY))
		return math.Hypot(dx, dy)
	}
	return math.Inf(1)
}

func segmentsDistance(p geom.Point, segs []geom.Segment) float64 {
	best := math.Inf(1)
	for _, s := range segs {
		best = math.Min(best, geom.PointToLineDistance(p, s.A, s.B))
	}
	return best
}

func filled(fill string) bool {
	return fill != "" && fill != "none" && fill != "transparent"
}

// HitTest returns the topmost visible element within tolerance of p.
func HitTest(elements []Element, layers Layers, p geom.Point, tolerance float64) (Element, bool) {
	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		if !layers.IsVisible(e.Layer()) {
			continue
		}
		if DistanceTo(e, p) <= tolerance {
			return e, true
		}
	}
	return nil, false
}

// SelectWindow returns the visible elements whose bounds lie entirely
// inside r, in z-order.
func SelectWindow(elements []Element, layers Layers, r geom.Rect) []Element {
	return selectBy(elements, layers, func(b geom.Rect) bool { return geom.RectContains(r, b) })
}

// SelectCrossing returns the visible elements whose bounds touch r.
func SelectCrossing(elements []Element, layers Layers, r geom.Rect) []Element {
	return selectBy(elements, layers, func(b geom.Rect) bool { return geom.RectsIntersect(r, b) })
}

func selectBy(elements []Element, layers Layers, keep func(geom.Rect) bool) []Element {
	var out []Element
	for _, e := range elements {
		if !layers.IsVisible(e.Layer()) {
			continue
		}
		if b, ok := Bounds(e); ok && keep(b) {
			out = append(out, e)
		}
	}
	return out
}
