package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
)

// ReadJSON decodes a project document from r. Missing settings are filled
// with project defaults and the result is validated.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*drawing.Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read project")
	}
	return decode(data, "")
}

// ImportJSON reads the project document at path. A bare element array is
// named after the file.
func ImportJSON(path string) (*drawing.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := decode(data, name)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return p, nil
}

func decode(data []byte, name string) (*drawing.Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var els drawing.Elements
		if err := json.Unmarshal(trimmed, &els); err != nil {
			return nil, formatError(err)
		}
		if name == "" {
			name = "Untitled"
		}
		p := drawing.NewProject(name, "")
		p.Elements = els
		return p, p.Validate()
	}

	defaults := drawing.NewProject(name, "")
	p := *defaults
	p.Layers = nil
	p.Elements = nil
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, formatError(err)
	}
	fillDefaults(&p, defaults)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// formatError keeps coded element errors and marks everything else as a
// malformed document.
func formatError(err error) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode project")
}

func fillDefaults(p, d *drawing.Project) {
	if p.ID == "" {
		p.ID = d.ID
	}
	if p.Name == "" {
		p.Name = d.Name
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if len(p.Layers) == 0 {
		p.Layers = d.Layers
	}
	if p.Elements == nil {
		p.Elements = drawing.Elements{}
	}
	if p.CanvasWidth <= 0 {
		p.CanvasWidth = d.CanvasWidth
	}
	if p.CanvasHeight <= 0 {
		p.CanvasHeight = d.CanvasHeight
	}
	if p.GridSize <= 0 {
		p.GridSize = d.GridSize
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = d.CreatedAt
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = d.UpdatedAt
	}
}
