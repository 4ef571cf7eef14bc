// Package workspace applies snapping and editing to stored projects.
//
// A [Service] loads a project, checks the target's layer, runs an operator
// from package edit, splices the result into the element list at the
// target's z position and saves the project. Mutations of one project are
// serialized, so every operation works on one consistent snapshot.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/edit"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/observability"
	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/store"
)

// Change describes what an operation did to a project's element list.
type Change struct {
	Removed []string          `json:"removed"`
	Added   []drawing.Element `json:"added"`
}

// Empty reports whether the operation changed nothing.
func (c Change) Empty() bool { return len(c.Removed) == 0 && len(c.Added) == 0 }

// Service runs operations against projects in a store.
type Service struct {
	store    store.Store
	ops      *edit.Operator
	snapOpts []snap.Option
	logger   *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithOperator sets the edit operator, for example one with deterministic ids.
func WithOperator(op *edit.Operator) Option {
	return func(s *Service) { s.ops = op }
}

// WithSnapOptions sets the base resolver options. The project's grid
// settings are applied on top of them for every query.
func WithSnapOptions(opts ...snap.Option) Option {
	return func(s *Service) { s.snapOpts = opts }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New returns a Service over st.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		ops:    edit.New(),
		logger: log.Default(),
		locks:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// lock returns the mutex guarding project id.
func (s *Service) lock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

// forget drops the mutex of a project that no longer exists.
func (s *Service) forget(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

// mutate runs fn on a fresh copy of the project under its lock and saves
// the result unless fn reports an empty change.
func (s *Service) mutate(ctx context.Context, op, projectID string, fn func(p *drawing.Project) (Change, error)) (Change, error) {
	m := s.lock(projectID)
	m.Lock()
	defer m.Unlock()

	start := time.Now()
	report := func(c Change, err error) (Change, error) {
		observability.Edit().OnEdit(ctx, op, projectID, len(c.Removed), len(c.Added), time.Since(start), err)
		return c, err
	}

	p, err := s.store.Get(ctx, projectID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.forget(projectID)
		}
		return report(Change{}, err)
	}
	c, err := fn(p)
	if err != nil {
		return report(Change{}, err)
	}
	if c.Empty() {
		return report(c, nil)
	}
	p.Touch()
	if err := s.store.Update(ctx, p); err != nil {
		return report(Change{}, err)
	}
	s.logger.Debug("applied", "op", op, "project", projectID, "removed", len(c.Removed), "added", len(c.Added))
	return report(c, nil)
}

// target looks up an element that is about to be modified.
func target(p *drawing.Project, id string) (drawing.Element, error) {
	e, _, ok := p.Element(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeElementNotFound, "element %s not found in project %s", id, p.ID)
	}
	layer := e.Layer()
	if !p.Layers.IsVisible(layer) {
		return nil, errors.New(errors.ErrCodeLayerHidden, "element %s is on hidden layer %s", id, layer)
	}
	if !p.Layers.IsEditable(layer) {
		return nil, errors.New(errors.ErrCodeLayerLocked, "element %s is on locked layer %s", id, layer)
	}
	return e, nil
}

// references resolves cutting edges or boundaries. Without ids, every other
// visible element is used.
func references(p *drawing.Project, self string, ids []string) ([]drawing.Element, error) {
	if len(ids) == 0 {
		var out []drawing.Element
		for _, e := range p.Layers.Visible(p.Elements) {
			if e.ElementID() != self {
				out = append(out, e)
			}
		}
		return out, nil
	}
	out := make([]drawing.Element, 0, len(ids))
	for _, id := range ids {
		e, _, ok := p.Element(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeElementNotFound, "element %s not found in project %s", id, p.ID)
		}
		if !p.Layers.IsVisible(e.Layer()) {
			return nil, errors.New(errors.ErrCodeLayerHidden, "element %s is on hidden layer %s", id, e.Layer())
		}
		out = append(out, e)
	}
	return out, nil
}

// replace splices replacements in for the element with the given id.
func replace(p *drawing.Project, id string, replacements []drawing.Element) Change {
	p.Replace(id, replacements...)
	return Change{Removed: []string{id}, Added: replacements}
}
