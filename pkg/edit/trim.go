package edit

import (
	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Trim removes the piece of a line lying between the cutting edges around
// click. Only lines are trimmed; any other target, or a line no edge
// crosses, comes back unchanged as the only element.
//
// The crossings are ordered from the line's start. Crossings nearer to the
// start than the click open the bracket, the first one beyond it closes the
// bracket, and the line ends stand in for missing sides. When the click is
// within TrimClickTolerance of the bracketed piece, that piece is removed
// and the outer pieces at least MinFragmentLength long survive; the result
// may be empty. Otherwise the line is clipped to the bracket and returned as
// a single new line, which shortens it without removing the clicked side.
func (o *Operator) Trim(target drawing.Element, click geom.Point, edges []drawing.Element) []drawing.Element {
	l, ok := target.(drawing.Line)
	if !ok {
		return []drawing.Element{target}
	}
	start, end := l.Start(), l.End()
	hits := sortFrom(start, intersections(l, edges))
	if len(hits) == 0 {
		return []drawing.Element{target}
	}

	clickDist := geom.Distance(start, click)
	trimStart, trimEnd := start, end
	for _, h := range hits {
		if geom.Distance(start, h) < clickDist {
			trimStart = h
			continue
		}
		trimEnd = h
		break
	}

	if geom.PointToLineDistance(click, trimStart, trimEnd) > TrimClickTolerance {
		return []drawing.Element{o.fresh(l.WithPoints(trimStart, trimEnd))}
	}

	out := make([]drawing.Element, 0, 2)
	if geom.Distance(start, trimStart) >= MinFragmentLength {
		out = append(out, o.fresh(l.WithPoints(start, trimStart)))
	}
	if geom.Distance(trimEnd, end) >= MinFragmentLength {
		out = append(out, o.fresh(l.WithPoints(trimEnd, end)))
	}
	return out
}
