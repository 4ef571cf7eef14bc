package workspace

import (
	"context"
	"time"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
	"github.com/matzehuels/hydrodraw/pkg/observability"
	"github.com/matzehuels/hydrodraw/pkg/snap"
)

// SnapRequest is a cursor query against a stored project.
type SnapRequest struct {
	Point     geom.Point  `json:"point"`
	Zoom      float64     `json:"zoom,omitempty"`
	Reference *geom.Point `json:"reference,omitempty"`
}

// Resolver returns the snap resolver for p: the service's base options plus
// the project's grid size, with grid snapping off when the project disables
// it.
func (s *Service) Resolver(p *drawing.Project) *snap.Resolver {
	opts := append([]snap.Option{}, s.snapOpts...)
	if p.GridSize > 0 {
		opts = append(opts, snap.WithGridSize(p.GridSize))
	}
	if !p.SnapToGrid {
		opts = append(opts, snap.Disable(snap.KindGrid))
	}
	return snap.New(opts...)
}

// Snap resolves req against the project's current elements.
func (s *Service) Snap(ctx context.Context, projectID string, req SnapRequest) (snap.Result, bool, error) {
	start := time.Now()
	p, err := s.store.Get(ctx, projectID)
	if err != nil {
		return snap.Result{}, false, err
	}
	res, ok := s.Resolver(p).Resolve(snap.Query{
		Point:     req.Point,
		Elements:  p.Elements,
		Layers:    p.Layers,
		Zoom:      req.Zoom,
		Reference: req.Reference,
	})
	kind := ""
	if ok {
		kind = string(res.Kind)
	}
	observability.Snap().OnSnap(ctx, projectID, kind, len(p.Elements), time.Since(start))
	return res, ok, nil
}

// Split cuts an element in two at a point.
func (s *Service) Split(ctx context.Context, projectID, elementID string, at geom.Point) (Change, error) {
	return s.mutate(ctx, "split", projectID, func(p *drawing.Project) (Change, error) {
		e, err := target(p, elementID)
		if err != nil {
			return Change{}, err
		}
		switch e.(type) {
		case drawing.Rectangle, drawing.Text:
			return Change{}, errors.New(errors.ErrCodeUnsupported, "%s elements cannot be split", e.Kind())
		}
		parts, ok := s.ops.Split(e, at)
		if !ok {
			return Change{}, errors.New(errors.ErrCodeInvalidInput, "point (%g, %g) does not split %s %s", at.X, at.Y, e.Kind(), elementID)
		}
		return replace(p, elementID, parts), nil
	})
}

// SplitAll cuts an element at every crossing with the other visible
// elements. An element without crossings is left alone.
func (s *Service) SplitAll(ctx context.Context, projectID, elementID string) (Change, error) {
	return s.mutate(ctx, "split-all", projectID, func(p *drawing.Project) (Change, error) {
		e, err := target(p, elementID)
		if err != nil {
			return Change{}, err
		}
		others, err := references(p, elementID, nil)
		if err != nil {
			return Change{}, err
		}
		frags := s.ops.SplitAtIntersections(e, others)
		if len(frags) == 1 && frags[0].ElementID() == elementID {
			return Change{}, nil
		}
		return replace(p, elementID, frags), nil
	})
}

// Trim removes the piece of a line between cutting edges around click.
// Without edge ids every other visible element cuts.
func (s *Service) Trim(ctx context.Context, projectID, elementID string, click geom.Point, edgeIDs []string) (Change, error) {
	return s.mutate(ctx, "trim", projectID, func(p *drawing.Project) (Change, error) {
		e, err := target(p, elementID)
		if err != nil {
			return Change{}, err
		}
		if _, ok := e.(drawing.Line); !ok {
			return Change{}, errors.New(errors.ErrCodeUnsupported, "only lines can be trimmed, %s is a %s", elementID, e.Kind())
		}
		edges, err := references(p, elementID, edgeIDs)
		if err != nil {
			return Change{}, err
		}
		out := s.ops.Trim(e, click, edges)
		if len(out) == 1 && out[0].ElementID() == elementID {
			return Change{}, nil
		}
		return replace(p, elementID, out), nil
	})
}

// Extend lengthens a line to the nearest boundary. With a pick point the
// end nearer to it is extended, otherwise the end point.
func (s *Service) Extend(ctx context.Context, projectID, elementID string, boundaryIDs []string, pick *geom.Point) (Change, error) {
	return s.mutate(ctx, "extend", projectID, func(p *drawing.Project) (Change, error) {
		e, err := target(p, elementID)
		if err != nil {
			return Change{}, err
		}
		l, ok := e.(drawing.Line)
		if !ok {
			return Change{}, errors.New(errors.ErrCodeUnsupported, "only lines can be extended, %s is a %s", elementID, e.Kind())
		}
		boundaries, err := references(p, elementID, boundaryIDs)
		if err != nil {
			return Change{}, err
		}
		var extended drawing.Line
		if pick != nil {
			extended, ok = s.ops.ExtendNearest(l, boundaries, *pick)
		} else {
			extended, ok = s.ops.Extend(l, boundaries)
		}
		if !ok {
			return Change{}, nil
		}
		return replace(p, elementID, []drawing.Element{extended}), nil
	})
}
