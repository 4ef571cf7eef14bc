package workspace

import (
	"context"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
)

// NewProjectRequest holds the fields a client may set on creation.
type NewProjectRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	CanvasWidth  float64 `json:"canvas_width,omitempty"`
	CanvasHeight float64 `json:"canvas_height,omitempty"`
}

// List returns every stored project.
func (s *Service) List(ctx context.Context) ([]*drawing.Project, error) {
	return s.store.List(ctx)
}

// Get returns one project.
func (s *Service) Get(ctx context.Context, id string) (*drawing.Project, error) {
	return s.store.Get(ctx, id)
}

// Create stores a new project with default settings.
func (s *Service) Create(ctx context.Context, req NewProjectRequest) (*drawing.Project, error) {
	if req.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "project name is required")
	}
	p := drawing.NewProject(req.Name, req.Description)
	if req.CanvasWidth > 0 {
		p.CanvasWidth = req.CanvasWidth
	}
	if req.CanvasHeight > 0 {
		p.CanvasHeight = req.CanvasHeight
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("project created", "id", p.ID, "name", p.Name)
	return p, nil
}

// Import stores an existing project document as is.
func (s *Service) Import(ctx context.Context, p *drawing.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.store.Create(ctx, p)
}

// Update merges the set fields of u into the project and saves it.
func (s *Service) Update(ctx context.Context, id string, u drawing.ProjectUpdate) (*drawing.Project, error) {
	m := s.lock(id)
	m.Lock()
	defer m.Unlock()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			s.forget(id)
		}
		return nil, err
	}
	u.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	m := s.lock(id)
	m.Lock()
	defer m.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			s.forget(id)
		}
		return err
	}
	s.forget(id)
	s.logger.Info("project deleted", "id", id)
	return nil
}
