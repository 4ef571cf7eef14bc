package drawing

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Kind is the element type discriminator used on the wire.
type Kind string

// Element kinds.
const (
	KindLine      Kind = "line"
	KindPolyline  Kind = "polyline"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindArc       Kind = "arc"
	KindText      Kind = "text"
)

// Kinds lists every element kind in declaration order.
var Kinds = []Kind{KindLine, KindPolyline, KindRectangle, KindCircle, KindArc, KindText}

// Attrs holds the attributes every element variant shares.
type Attrs struct {
	ID          string  `json:"id"`
	LayerID     string  `json:"layerId,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// ElementID returns the element's identifier.
func (a Attrs) ElementID() string { return a.ID }

// Layer returns the id of the layer the element belongs to.
func (a Attrs) Layer() string { return a.LayerID }

func (a Attrs) common() Attrs { return a }

// Element is one drawable primitive. The set of implementations is closed.
type Element interface {
	Kind() Kind
	ElementID() string
	Layer() string
	common() Attrs
}

// AttrsOf returns the shared attributes of e.
func AttrsOf(e Element) Attrs { return e.common() }

// NewID mints a fresh element or project identifier.
func NewID() string { return uuid.NewString() }

// Line is a straight segment from (X1,Y1) to (X2,Y2).
type Line struct {
	Attrs
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Kind implements Element.
func (Line) Kind() Kind { return KindLine }

// Start returns the first endpoint.
func (l Line) Start() geom.Point { return geom.Pt(l.X1, l.Y1) }

// End returns the second endpoint.
func (l Line) End() geom.Point { return geom.Pt(l.X2, l.Y2) }

// Length returns the segment length.
func (l Line) Length() float64 { return geom.Distance(l.Start(), l.End()) }

// WithPoints returns a copy of l running from a to b.
func (l Line) WithPoints(a, b geom.Point) Line {
	l.X1, l.Y1, l.X2, l.Y2 = a.X, a.Y, b.X, b.Y
	return l
}

// Polyline is an ordered chain of vertices, optionally closed back to the
// first vertex. It needs at least two points to be snapped or bounded.
type Polyline struct {
	Attrs
	Points []geom.Point `json:"points"`
	Closed bool         `json:"closed,omitempty"`
}

// Kind implements Element.
func (Polyline) Kind() Kind { return KindPolyline }

// Segments returns the spans of the chain in point order. A closed polyline
// ends with the span from the last vertex back to the first.
func (p Polyline) Segments() []geom.Segment {
	if len(p.Points) < 2 {
		return nil
	}
	out := make([]geom.Segment, 0, len(p.Points))
	for i := 0; i+1 < len(p.Points); i++ {
		out = append(out, geom.Segment{A: p.Points[i], B: p.Points[i+1]})
	}
	if p.Closed && len(p.Points) > 2 {
		out = append(out, geom.Segment{A: p.Points[len(p.Points)-1], B: p.Points[0]})
	}
	return out
}

// Rectangle is an axis-aligned box with (X,Y) as its minimum corner.
type Rectangle struct {
	Attrs
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill,omitempty"`
}

// Kind implements Element.
func (Rectangle) Kind() Kind { return KindRectangle }

// Corners returns the four corners going around from the minimum corner.
func (r Rectangle) Corners() [4]geom.Point {
	return [4]geom.Point{
		geom.Pt(r.X, r.Y),
		geom.Pt(r.X+r.Width, r.Y),
		geom.Pt(r.X+r.Width, r.Y+r.Height),
		geom.Pt(r.X, r.Y+r.Height),
	}
}

// Edges returns the four sides in the same order as Corners.
func (r Rectangle) Edges() []geom.Segment {
	c := r.Corners()
	return []geom.Segment{{A: c[0], B: c[1]}, {A: c[1], B: c[2]}, {A: c[2], B: c[3]}, {A: c[3], B: c[0]}}
}

// Center returns the centroid.
func (r Rectangle) Center() geom.Point {
	return geom.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Circle is a full circle.
type Circle struct {
	Attrs
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill,omitempty"`
}

// Kind implements Element.
func (Circle) Kind() Kind { return KindCircle }

// Center returns the circle center.
func (c Circle) Center() geom.Point { return geom.Pt(c.CX, c.CY) }

// Arc is part of a circle, swept from StartAngle towards increasing angle
// until EndAngle. Angles are degrees and stored as given, so EndAngle may be
// numerically smaller than StartAngle.
type Arc struct {
	Attrs
	CX         float64 `json:"cx"`
	CY         float64 `json:"cy"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Kind implements Element.
func (Arc) Kind() Kind { return KindArc }

// Center returns the arc center.
func (a Arc) Center() geom.Point { return geom.Pt(a.CX, a.CY) }

// Endpoints evaluates the arc at its start and end angles.
func (a Arc) Endpoints() (start, end geom.Point) {
	return geom.ArcEndpoints(a.Center(), a.Radius, a.StartAngle, a.EndAngle)
}

// Contains reports whether the direction degrees lies within the sweep.
func (a Arc) Contains(degrees float64) bool {
	return geom.AngleInSweep(degrees, a.StartAngle, a.EndAngle)
}

// Text is a single-line label anchored at its baseline start (X,Y).
type Text struct {
	Attrs
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Kind implements Element.
func (Text) Kind() Kind { return KindText }

// WithID returns a copy of e carrying a different id. Polyline points are
// copied so the result never aliases e.
func WithID(e Element, id string) Element {
	switch v := e.(type) {
	case Line:
		v.ID = id
		return v
	case Polyline:
		v.ID = id
		v.Points = slices.Clone(v.Points)
		return v
	case Rectangle:
		v.ID = id
		return v
	case Circle:
		v.ID = id
		return v
	case Arc:
		v.ID = id
		return v
	case Text:
		v.ID = id
		return v
	}
	return e
}

// Clone returns a copy of e that shares no mutable state with it.
func Clone(e Element) Element {
	return WithID(e, e.ElementID())
}
