package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// parsePoint parses "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	p := geom.Pt(x, y)
	if !p.IsFinite() {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q is not finite", s)
	}
	return p, nil
}

// optionalPoint parses s unless it is empty.
func optionalPoint(s string) (*geom.Point, error) {
	if s == "" {
		return nil, nil
	}
	p, err := parsePoint(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
