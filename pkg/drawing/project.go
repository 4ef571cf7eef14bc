package drawing

import (
	"slices"
	"time"

	"github.com/matzehuels/hydrodraw/pkg/errors"
)

// Project defaults.
const (
	DefaultCanvasWidth  = 2000
	DefaultCanvasHeight = 1500
	DefaultGridSize     = 20
)

// Project is a named drawing: its elements in z-order and its layer table.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Elements     Elements  `json:"elements"`
	Layers       Layers    `json:"layers"`
	CanvasWidth  float64   `json:"canvas_width"`
	CanvasHeight float64   `json:"canvas_height"`
	GridSize     float64   `json:"grid_size"`
	GridEnabled  bool      `json:"grid_enabled"`
	SnapToGrid   bool      `json:"snap_to_grid"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProject returns an empty project with a fresh id, the default layer and
// default canvas settings.
func NewProject(name, description string) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:           NewID(),
		Name:         name,
		Description:  description,
		Elements:     Elements{},
		Layers:       Layers{DefaultLayer()},
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		GridSize:     DefaultGridSize,
		GridEnabled:  true,
		SnapToGrid:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate checks every element and that element ids are unique.
func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "project %s: missing name", p.ID)
	}
	seen := make(map[string]bool, len(p.Elements))
	for _, e := range p.Elements {
		if err := Validate(e); err != nil {
			return err
		}
		if seen[e.ElementID()] {
			return errors.New(errors.ErrCodeConflict, "project %s: duplicate element id %s", p.ID, e.ElementID())
		}
		seen[e.ElementID()] = true
	}
	return nil
}

// Element returns the element with the given id and its z position.
func (p *Project) Element(id string) (Element, int, bool) {
	for i, e := range p.Elements {
		if e.ElementID() == id {
			return e, i, true
		}
	}
	return nil, -1, false
}

// Add validates elements and appends them on top.
func (p *Project) Add(elements ...Element) error {
	for _, e := range elements {
		if err := Validate(e); err != nil {
			return err
		}
		if _, _, ok := p.Element(e.ElementID()); ok {
			return errors.New(errors.ErrCodeConflict, "element %s already exists", e.ElementID())
		}
		p.Elements = append(p.Elements, e)
	}
	return nil
}

// Replace swaps the element with the given id for replacements, inserted at
// the same z position. Passing no replacements removes the element.
func (p *Project) Replace(id string, replacements ...Element) bool {
	_, i, ok := p.Element(id)
	if !ok {
		return false
	}
	out := make(Elements, 0, len(p.Elements)-1+len(replacements))
	out = append(out, p.Elements[:i]...)
	out = append(out, replacements...)
	p.Elements = append(out, p.Elements[i+1:]...)
	return true
}

// Remove deletes the element with the given id.
func (p *Project) Remove(id string) bool {
	return p.Replace(id)
}

// Touch bumps UpdatedAt.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	c := *p
	c.Elements = make(Elements, len(p.Elements))
	for i, e := range p.Elements {
		c.Elements[i] = Clone(e)
	}
	c.Layers = slices.Clone(p.Layers)
	return &c
}

// ProjectUpdate is a partial update. Nil fields are left untouched.
type ProjectUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Elements     *Elements `json:"elements,omitempty"`
	Layers       *Layers   `json:"layers,omitempty"`
	CanvasWidth  *float64  `json:"canvas_width,omitempty"`
	CanvasHeight *float64  `json:"canvas_height,omitempty"`
	GridSize     *float64  `json:"grid_size,omitempty"`
	GridEnabled  *bool     `json:"grid_enabled,omitempty"`
	SnapToGrid   *bool     `json:"snap_to_grid,omitempty"`
}

// Apply merges the non-nil fields of u into p and bumps UpdatedAt.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Elements != nil {
		p.Elements = *u.Elements
	}
	if u.Layers != nil {
		p.Layers = *u.Layers
	}
	if u.CanvasWidth != nil {
		p.CanvasWidth = *u.CanvasWidth
	}
	if u.CanvasHeight != nil {
		p.CanvasHeight = *u.CanvasHeight
	}
	if u.GridSize != nil {
		p.GridSize = *u.GridSize
	}
	if u.GridEnabled != nil {
		p.GridEnabled = *u.GridEnabled
	}
	if u.SnapToGrid != nil {
		p.SnapToGrid = *u.SnapToGrid
	}
	p.Touch()
}
