package snap

import (
	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func endpoints(e drawing.Element) []geom.Point {
	switch v := e.(type) {
	case drawing.Line:
		return []geom.Point{v.Start(), v.End()}
	case drawing.Polyline:
		if len(v.Points) < 2 {
			return nil
		}
		return v.Points
	case drawing.Rectangle:
		c := v.Corners()
		return c[:]
	case drawing.Arc:
		s, end := v.Endpoints()
		return []geom.Point{s, end}
	}
	return nil
}

func midpoints(e drawing.Element) []geom.Point {
	var segs []geom.Segment
	switch v := e.(type) {
	case drawing.Line:
		return []geom.Point{v.Start().Midpoint(v.End())}
	case drawing.Polyline:
		segs = v.Segments()
	case drawing.Rectangle:
		segs = v.Edges()
	}
	out := make([]geom.Point, len(segs))
	for i, s := range segs {
		out[i] = s.Midpoint()
	}
	return out
}

func center(e drawing.Element) (geom.Point, bool) {
	switch v := e.(type) {
	case drawing.Circle:
		return v.Center(), true
	case drawing.Arc:
		return v.Center(), true
	case drawing.Rectangle:
		return v.Center(), true
	}
	return geom.Point{}, false
}

// intersections covers line/line, line/circle in either order and
// circle/circle. Other pairings yield nothing.
func intersections(a, b drawing.Element) []geom.Point {
	switch u := a.(type) {
	case drawing.Line:
		switch v := b.(type) {
		case drawing.Line:
			if x, ok := geom.LineLineIntersection(u.Start(), u.End(), v.Start(), v.End()); ok {
				return []geom.Point{x.Point}
			}
		case drawing.Circle:
			return geom.LineCircleIntersection(u.Start(), u.End(), v.Center(), v.Radius)
		}
	case drawing.Circle:
		switch v := b.(type) {
		case drawing.Line:
			return geom.LineCircleIntersection(v.Start(), v.End(), u.Center(), u.Radius)
		case drawing.Circle:
			return geom.CircleCircleIntersection(u.Center(), u.Radius, v.Center(), v.Radius)
		}
	}
	return nil
}

func perpendicularFoot(ref geom.Point, e drawing.Element) (geom.Point, bool) {
	l, ok := e.(drawing.Line)
	if !ok {
		return geom.Point{}, false
	}
	a, b := l.Start(), l.End()
	foot := geom.ClosestPointOnLineUnbounded(ref, a, b)
	if !geom.OnSegment(foot, a, b, perpendicularSlack) {
		return geom.Point{}, false
	}
	return foot, true
}

func tangents(ref geom.Point, e drawing.Element) []geom.Point {
	switch v := e.(type) {
	case drawing.Circle:
		return geom.TangentPointsOnCircle(ref, v.Center(), v.Radius)
	case drawing.Arc:
		return geom.TangentPointsOnCircle(ref, v.Center(), v.Radius)
	}
	return nil
}
