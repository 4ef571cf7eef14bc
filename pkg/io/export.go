package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
)

// WriteJSON encodes p as indented JSON and writes it to w. The output can be
// read back with [ReadJSON].
func WriteJSON(p *drawing.Project, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode project %s", p.ID)
	}
	return nil
}

// ExportJSON writes p to a JSON file at path, replacing it atomically.
func ExportJSON(p *drawing.Project, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", path)
	}
	if err := WriteJSON(p, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	return nil
}
