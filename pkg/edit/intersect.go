package edit

import (
	"slices"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// round is a circle, or the swept part of one for arcs.
type round struct {
	center     geom.Point
	radius     float64
	arc        bool
	start, end float64
}

func (r round) contains(p geom.Point) bool {
	return !r.arc || geom.AngleInSweep(geom.AngleOf(r.center, p), r.start, r.end)
}

// shape is an element broken into straight and round pieces.
type shape struct {
	segs   []geom.Segment
	rounds []round
}

func shapeOf(e drawing.Element) shape {
	switch v := e.(type) {
	case drawing.Line:
		return shape{segs: []geom.Segment{{A: v.Start(), B: v.End()}}}
	case drawing.Polyline:
		return shape{segs: v.Segments()}
	case drawing.Rectangle:
		return shape{segs: v.Edges()}
	case drawing.Circle:
		return shape{rounds: []round{{center: v.Center(), radius: v.Radius}}}
	case drawing.Arc:
		return shape{rounds: []round{{center: v.Center(), radius: v.Radius, arc: true, start: v.StartAngle, end: v.EndAngle}}}
	}
	return shape{}
}

// intersect returns every crossing between two shapes, segment pieces
// bounded and arc pieces limited to their sweep.
func intersect(a, b shape) []geom.Point {
	var out []geom.Point
	for _, s := range a.segs {
		for _, t := range b.segs {
			if x, ok := geom.LineLineIntersection(s.A, s.B, t.A, t.B); ok {
				out = append(out, x.Point)
			}
		}
		for _, r := range b.rounds {
			out = appendOnRound(out, geom.LineCircleIntersection(s.A, s.B, r.center, r.radius), r)
		}
	}
	for _, r := range a.rounds {
		for _, t := range b.segs {
			out = appendOnRound(out, geom.LineCircleIntersection(t.A, t.B, r.center, r.radius), r)
		}
		for _, q := range b.rounds {
			for _, p := range geom.CircleCircleIntersection(r.center, r.radius, q.center, q.radius) {
				if r.contains(p) && q.contains(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func appendOnRound(out, pts []geom.Point, r round) []geom.Point {
	for _, p := range pts {
		if r.contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// intersections collects the crossings of e with every other element,
// skipping e itself.
func intersections(e drawing.Element, others []drawing.Element) []geom.Point {
	target := shapeOf(e)
	var out []geom.Point
	for _, o := range others {
		if o.ElementID() == e.ElementID() {
			continue
		}
		out = append(out, intersect(target, shapeOf(o))...)
	}
	return out
}

// samePoint merges intersections found twice, such as at a shared vertex.
const samePoint = 1e-6

// sortFrom orders points by distance from origin and drops duplicates.
func sortFrom(origin geom.Point, pts []geom.Point) []geom.Point {
	slices.SortStableFunc(pts, func(a, b geom.Point) int {
		da, db := geom.Distance(origin, a), geom.Distance(origin, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	return slices.CompactFunc(pts, func(a, b geom.Point) bool { return a.Approx(b, samePoint) })
}

// startOf is the point that intersections are ordered from.
func startOf(e drawing.Element) geom.Point {
	switch v := e.(type) {
	case drawing.Line:
		return v.Start()
	case drawing.Polyline:
		if len(v.Points) > 0 {
			return v.Points[0]
		}
	case drawing.Rectangle:
		return geom.Pt(v.X, v.Y)
	case drawing.Circle:
		return geom.PointOnCircle(v.Center(), v.Radius, 0)
	case drawing.Arc:
		s, _ := v.Endpoints()
		return s
	case drawing.Text:
		return geom.Pt(v.X, v.Y)
	}
	return geom.Point{}
}
