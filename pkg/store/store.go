// Package store persists projects.
//
// [Store] is implemented by several backends:
//   - memory: in-process map, for tests and throwaway servers
//   - file: one projects.json array in a data directory, the desktop default
//   - sqlite: a local database file
//   - redis: one hash field per project
//   - mongo: one document per project
//
// Every backend returns a PROJECT_NOT_FOUND error wrapping [ErrNotFound] for
// unknown ids and a CONFLICT error when creating an id that exists. Projects
// handed in and out are copies; callers may modify them freely.
//
// Use [Open] to build the backend named in a [Config]. The result reports
// every call to the registered observability store hooks.
package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/observability"
)

// Sentinel errors wrapped by backend errors.
var (
	// ErrNotFound is returned when a project does not exist.
	ErrNotFound = stderrors.New("project not found")

	// ErrExists is returned when creating a project whose id is taken.
	ErrExists = stderrors.New("project already exists")
)

// Store is the interface for project storage backends.
type Store interface {
	// List returns every project, oldest first.
	List(ctx context.Context) ([]*drawing.Project, error)

	// Get returns the project with the given id.
	Get(ctx context.Context, id string) (*drawing.Project, error)

	// Create stores a new project.
	Create(ctx context.Context, p *drawing.Project) error

	// Update replaces a stored project.
	Update(ctx context.Context, p *drawing.Project) error

	// Delete removes a project.
	Delete(ctx context.Context, id string) error

	// Close releases the backend's resources.
	Close() error
}

func notFound(id string) error {
	return errors.Wrap(errors.ErrCodeProjectNotFound, ErrNotFound, "project %s not found", id)
}

func exists(id string) error {
	return errors.Wrap(errors.ErrCodeConflict, ErrExists, "project %s already exists", id)
}

func storageErr(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}

// instrumented reports each call to the observability store hooks.
type instrumented struct {
	Store
	backend string
}

// Instrument wraps s so every call is reported as backend.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

func (s *instrumented) report(ctx context.Context, op string, start time.Time, err error) {
	observability.Store().OnStoreOp(ctx, s.backend, op, time.Since(start), err)
}

func (s *instrumented) List(ctx context.Context) ([]*drawing.Project, error) {
	start := time.Now()
	ps, err := s.Store.List(ctx)
	s.report(ctx, "list", start, err)
	return ps, err
}

func (s *instrumented) Get(ctx context.Context, id string) (*drawing.Project, error) {
	start := time.Now()
	p, err := s.Store.Get(ctx, id)
	s.report(ctx, "get", start, err)
	return p, err
}

func (s *instrumented) Create(ctx context.Context, p *drawing.Project) error {
	start := time.Now()
	err := s.Store.Create(ctx, p)
	s.report(ctx, "create", start, err)
	return err
}

func (s *instrumented) Update(ctx context.Context, p *drawing.Project) error {
	start := time.Now()
	err := s.Store.Update(ctx, p)
	s.report(ctx, "update", start, err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.Store.Delete(ctx, id)
	s.report(ctx, "delete", start, err)
	return err
}
