package edit

import (
	"math"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Split cuts e in two at p. It reports false when p is not within
// SplitTolerance of e, when p sits on an open end, or when e is a rectangle
// or text. A circle has no ends, so splitting one opens it into a single arc
// with a CircleSplitGap degree gap centered on p.
func (o *Operator) Split(e drawing.Element, p geom.Point) ([]drawing.Element, bool) {
	switch v := e.(type) {
	case drawing.Line:
		return o.splitLine(v, p)
	case drawing.Polyline:
		return o.splitPolyline(v, p)
	case drawing.Circle:
		return o.splitCircle(v, p)
	case drawing.Arc:
		return o.splitArc(v, p)
	}
	return nil, false
}

func (o *Operator) splitLine(l drawing.Line, p geom.Point) ([]drawing.Element, bool) {
	a, b := l.Start(), l.End()
	if geom.PointToLineDistance(p, a, b) > SplitTolerance {
		return nil, false
	}
	if geom.Distance(p, a) < SplitTolerance || geom.Distance(p, b) < SplitTolerance {
		return nil, false
	}
	return []drawing.Element{
		o.fresh(l.WithPoints(a, p)),
		o.fresh(l.WithPoints(p, b)),
	}, true
}

func (o *Operator) splitPolyline(pl drawing.Polyline, p geom.Point) ([]drawing.Element, bool) {
	pts := pl.Points
	if len(pts) < 2 {
		return nil, false
	}
	if !pl.Closed && (geom.Distance(p, pts[0]) < SplitTolerance || geom.Distance(p, pts[len(pts)-1]) < SplitTolerance) {
		return nil, false
	}
	seg := -1
	for i, s := range pl.Segments() {
		if geom.PointToLineDistance(p, s.A, s.B) <= SplitTolerance {
			seg = i
			break
		}
	}
	if seg < 0 {
		return nil, false
	}

	first := make([]geom.Point, 0, seg+2)
	first = append(first, pts[:seg+1]...)
	first = append(first, p)

	second := []geom.Point{p}
	if seg+1 < len(pts) {
		second = append(second, pts[seg+1:]...)
	}
	if pl.Closed {
		second = append(second, pts[0])
	}

	a, b := pl, pl
	a.Points, a.Closed = first, false
	b.Points, b.Closed = second, false
	return []drawing.Element{o.fresh(a), o.fresh(b)}, true
}

func (o *Operator) splitCircle(c drawing.Circle, p geom.Point) ([]drawing.Element, bool) {
	if math.Abs(geom.Distance(p, c.Center())-c.Radius) > SplitTolerance {
		return nil, false
	}
	theta := geom.AngleOf(c.Center(), p)
	arc := drawing.Arc{
		Attrs:      c.Attrs,
		CX:         c.CX,
		CY:         c.CY,
		Radius:     c.Radius,
		StartAngle: theta + CircleSplitGap/2,
		EndAngle:   theta - CircleSplitGap/2,
	}
	return []drawing.Element{o.fresh(arc)}, true
}

func (o *Operator) splitArc(a drawing.Arc, p geom.Point) ([]drawing.Element, bool) {
	if math.Abs(geom.Distance(p, a.Center())-a.Radius) > SplitTolerance {
		return nil, false
	}
	theta := geom.AngleOf(a.Center(), p)
	offset := geom.NormalizeAngle(theta - a.StartAngle)
	sweep := geom.Sweep(a.StartAngle, a.EndAngle)
	if offset <= geom.Epsilon || offset >= sweep-geom.Epsilon {
		return nil, false
	}
	head, tail := a, a
	head.EndAngle = theta
	tail.StartAngle = theta
	return []drawing.Element{o.fresh(head), o.fresh(tail)}, true
}

// SplitAtIntersections cuts e wherever it crosses one of others. Cuts are
// applied nearest-first from e's start, each to every fragment produced so
// far. Without crossings the result is e alone.
func (o *Operator) SplitAtIntersections(e drawing.Element, others []drawing.Element) []drawing.Element {
	pts := sortFrom(startOf(e), intersections(e, others))
	frags := []drawing.Element{e}
	for _, p := range pts {
		next := make([]drawing.Element, 0, len(frags)+1)
		for _, f := range frags {
			if parts, ok := o.Split(f, p); ok {
				next = append(next, parts...)
				continue
			}
			next = append(next, f)
		}
		frags = next
	}
	return frags
}
