package drawing

import (
	"unicode/utf8"

	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// TextWidthFactor estimates glyph advance as a fraction of text height.
const TextWidthFactor = 0.6

// Bounds returns the axis-aligned bounding box of e. It reports false for a
// polyline with fewer than two points.
func Bounds(e Element) (geom.Rect, bool) {
	switch v := e.(type) {
	case Line:
		return geom.RectFromPoints(v.Start(), v.End())
	case Polyline:
		if len(v.Points) < 2 {
			return geom.Rect{}, false
		}
		return geom.RectFromPoints(v.Points...)
	case Rectangle:
		return geom.Rect{MinX: v.X, MinY: v.Y, MaxX: v.X + v.Width, MaxY: v.Y + v.Height}, true
	case Circle:
		return geom.Rect{MinX: v.CX - v.Radius, MinY: v.CY - v.Radius, MaxX: v.CX + v.Radius, MaxY: v.CY + v.Radius}, true
	case Arc:
		return arcBounds(v), true
	case Text:
		w := float64(utf8.RuneCountInString(v.Text)) * v.Height * TextWidthFactor
		return geom.Rect{MinX: v.X, MinY: v.Y - v.Height, MaxX: v.X + w, MaxY: v.Y}, true
	}
	return geom.Rect{}, false
}

// arcBounds covers both endpoints plus every axis extreme the sweep passes.
func arcBounds(a Arc) geom.Rect {
	start, end := a.Endpoints()
	r, _ := geom.RectFromPoints(start, end)
	c := a.Center()
	for _, deg := range []float64{0, 90, 180, 270} {
		if a.Contains(deg) {
			r = r.Include(geom.PointOnCircle(c, a.Radius, deg))
		}
	}
	return r
}

// BoundsAll returns the union of the bounds of every boundable element.
func BoundsAll(elements []Element) (geom.Rect, bool) {
	var (
		out   geom.Rect
		found bool
	)
	for _, e := range elements {
		b, ok := Bounds(e)
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out, found
}
