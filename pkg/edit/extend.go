package edit

import (
	"math"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Extend lengthens l past its end point (X2,Y2) to the nearest boundary
// ahead of it. It reports false, returning l unchanged, when no boundary is
// hit or l has no direction. The extended line keeps its id.
func (o *Operator) Extend(l drawing.Line, boundaries []drawing.Element) (drawing.Line, bool) {
	p, ok := reach(l.ElementID(), l.Start(), l.End(), boundaries)
	if !ok {
		return l, false
	}
	return l.WithPoints(l.Start(), p), true
}

// ExtendNearest extends whichever end of l is nearer to pick.
func (o *Operator) ExtendNearest(l drawing.Line, boundaries []drawing.Element, pick geom.Point) (drawing.Line, bool) {
	if geom.Distance(pick, l.Start()) >= geom.Distance(pick, l.End()) {
		return o.Extend(l, boundaries)
	}
	p, ok := reach(l.ElementID(), l.End(), l.Start(), boundaries)
	if !ok {
		return l, false
	}
	return l.WithPoints(p, l.End()), true
}

// reach casts a ray from tip away from tail and returns the nearest boundary
// crossing strictly ahead of tip.
func reach(id string, tail, tip geom.Point, boundaries []drawing.Element) (geom.Point, bool) {
	dir := tip.Sub(tail)
	if dir.Length() < geom.Epsilon {
		return geom.Point{}, false
	}
	dir = dir.Normalize()
	ray := shape{segs: []geom.Segment{{A: tip, B: tip.Add(dir.Mul(ExtendReach))}}}

	best, bestDist := geom.Point{}, math.Inf(1)
	for _, b := range boundaries {
		if b.ElementID() == id {
			continue
		}
		for _, p := range intersect(ray, shapeOf(b)) {
			ahead := p.Sub(tip)
			if ahead.Dot(dir) <= geom.Epsilon {
				continue
			}
			if d := ahead.Length(); d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
