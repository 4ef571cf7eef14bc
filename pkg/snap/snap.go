package snap

import (
	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Kind identifies what a snap point was derived from.
type Kind string

// Snap kinds.
const (
	KindGrid          Kind = "grid"
	KindEndpoint      Kind = "endpoint"
	KindMidpoint      Kind = "midpoint"
	KindCenter        Kind = "center"
	KindIntersection  Kind = "intersection"
	KindPerpendicular Kind = "perpendicular"
	KindTangent       Kind = "tangent"
)

// Priority is the evaluation order of the cascade.
var Priority = []Kind{
	KindEndpoint,
	KindMidpoint,
	KindCenter,
	KindIntersection,
	KindPerpendicular,
	KindTangent,
	KindGrid,
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Priority {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown snap kind %q", s)
}

// NeedsReference reports whether k is only evaluated with a reference point.
func (k Kind) NeedsReference() bool {
	return k == KindPerpendicular || k == KindTangent
}

// Defaults.
const (
	DefaultTolerance = 10
	DefaultGridSize  = 20
)

// perpendicularSlack is how far a perpendicular foot may stray from its
// segment, measured by the triangle equality test.
const perpendicularSlack = 0.01

// Result is a resolved snap point.
type Result struct {
	Point    geom.Point        `json:"point"`
	Kind     Kind              `json:"type"`
	Distance float64           `json:"distance"`
	Sources  []drawing.Element `json:"source,omitempty"`
}

// Query is one resolution request.
type Query struct {
	// Point is the cursor position in drawing units.
	Point geom.Point
	// Elements is the current element snapshot.
	Elements []drawing.Element
	// Layers filters out elements on hidden layers. Nil means all visible.
	Layers drawing.Layers
	// Zoom divides the base tolerance. Values <= 0 are treated as 1.
	Zoom float64
	// Reference enables perpendicular and tangent snaps.
	Reference *geom.Point
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTolerance sets the base catch radius in screen pixels.
func WithTolerance(px float64) Option {
	return func(r *Resolver) { r.tolerance = px }
}

// WithGridSize sets the grid spacing. Zero or less disables grid snapping.
func WithGridSize(size float64) Option {
	return func(r *Resolver) { r.gridSize = size }
}

// WithKinds enables exactly the given kinds.
func WithKinds(kinds ...Kind) Option {
	return func(r *Resolver) {
		r.enabled = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			r.enabled[k] = true
		}
	}
}

// Disable turns the given kinds off.
func Disable(kinds ...Kind) Option {
	return func(r *Resolver) {
		for _, k := range kinds {
			r.enabled[k] = false
		}
	}
}

// Resolver picks the best snap point for a cursor position.
type Resolver struct {
	tolerance float64
	gridSize  float64
	enabled   map[Kind]bool
}

// New returns a Resolver with every kind enabled, a 10 px tolerance and a
// 20 unit grid unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		tolerance: DefaultTolerance,
		gridSize:  DefaultGridSize,
		enabled:   make(map[Kind]bool, len(Priority)),
	}
	for _, k := range Priority {
		r.enabled[k] = true
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether kind k takes part in resolution.
func (r *Resolver) Enabled(k Kind) bool { return r.enabled[k] }

// GridSize returns the grid spacing.
func (r *Resolver) GridSize() float64 { return r.gridSize }

// Tolerance returns the catch radius in drawing units at the given zoom.
func (r *Resolver) Tolerance(zoom float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return r.tolerance / zoom
}

// Resolve returns the winning snap for q, or false when nothing is in range.
func (r *Resolver) Resolve(q Query) (Result, bool) {
	tol := r.Tolerance(q.Zoom)
	elements := q.Layers.Visible(q.Elements)

	best := Result{Distance: tol}
	found := false
	r.objectCandidates(q, elements, func(c Result) {
		if c.Distance < best.Distance {
			best, found = c, true
		}
	})
	if found {
		return best, true
	}
	return r.grid(q.Point, tol)
}

// Candidates returns every candidate within tolerance in evaluation order,
// without the cascade. The grid candidate is included when in range.
func (r *Resolver) Candidates(q Query) []Result {
	tol := r.Tolerance(q.Zoom)
	var out []Result
	r.objectCandidates(q, q.Layers.Visible(q.Elements), func(c Result) {
		if c.Distance < tol {
			out = append(out, c)
		}
	})
	if g, ok := r.grid(q.Point, tol); ok {
		out = append(out, g)
	}
	return out
}

func (r *Resolver) grid(p geom.Point, tol float64) (Result, bool) {
	if !r.enabled[KindGrid] || r.gridSize <= 0 {
		return Result{}, false
	}
	g := geom.SnapToGrid(p, r.gridSize)
	d := geom.Distance(p, g)
	if d >= tol {
		return Result{}, false
	}
	return Result{Point: g, Kind: KindGrid, Distance: d}, true
}

// objectCandidates emits every object snap candidate in priority order.
func (r *Resolver) objectCandidates(q Query, elements []drawing.Element, emit func(Result)) {
	cursor := q.Point
	for _, k := range Priority {
		if k == KindGrid || !r.enabled[k] {
			continue
		}
		if k.NeedsReference() && q.Reference == nil {
			continue
		}
		point := func(p geom.Point, src ...drawing.Element) {
			emit(Result{Point: p, Kind: k, Distance: geom.Distance(cursor, p), Sources: src})
		}
		switch k {
		case KindEndpoint:
			for _, e := range elements {
				for _, p := range endpoints(e) {
					point(p, e)
				}
			}
		case KindMidpoint:
			for _, e := range elements {
				for _, p := range midpoints(e) {
					point(p, e)
				}
			}
		case KindCenter:
			for _, e := range elements {
				if p, ok := center(e); ok {
					point(p, e)
				}
			}
		case KindIntersection:
			for i := 0; i < len(elements); i++ {
				for j := i + 1; j < len(elements); j++ {
					for _, p := range intersections(elements[i], elements[j]) {
						point(p, elements[i], elements[j])
					}
				}
			}
		case KindPerpendicular:
			for _, e := range elements {
				if p, ok := perpendicularFoot(*q.Reference, e); ok {
					point(p, e)
				}
			}
		case KindTangent:
			for _, e := range elements {
				for _, p := range tangents(*q.Reference, e) {
					point(p, e)
				}
			}
		}
	}
}
