package drawing

import (
	"math"

	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Validate checks that e is well-formed: it has an id, every coordinate is
// finite and no radius, size or stroke width is negative.
func Validate(e Element) error {
	a := e.common()
	if a.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s: missing id", e.Kind())
	}
	if err := finite(e, "strokeWidth", a.StrokeWidth); err != nil {
		return err
	}
	if a.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s %s: negative stroke width %g", e.Kind(), a.ID, a.StrokeWidth)
	}

	switch v := e.(type) {
	case Line:
		return finite(e, "coordinate", v.X1, v.Y1, v.X2, v.Y2)
	case Polyline:
		for _, p := range v.Points {
			if err := finite(e, "point", p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	case Rectangle:
		if err := finite(e, "coordinate", v.X, v.Y, v.Width, v.Height); err != nil {
			return err
		}
		return nonNegative(e, "size", v.Width, v.Height)
	case Circle:
		if err := finite(e, "coordinate", v.CX, v.CY, v.Radius); err != nil {
			return err
		}
		return nonNegative(e, "radius", v.Radius)
	case Arc:
		if err := finite(e, "coordinate", v.CX, v.CY, v.Radius, v.StartAngle, v.EndAngle); err != nil {
			return err
		}
		return nonNegative(e, "radius", v.Radius)
	case Text:
		if err := finite(e, "coordinate", v.X, v.Y, v.Height, v.Rotation); err != nil {
			return err
		}
		return nonNegative(e, "height", v.Height)
	}
	return errors.New(errors.ErrCodeUnsupported, "unknown element type %T", e)
}

func finite(e Element, what string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidGeometry, "%s %s: non-finite %s", e.Kind(), e.ElementID(), what)
		}
	}
	return nil
}

func nonNegative(e Element, what string, vs ...float64) error {
	for _, v := range vs {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidGeometry, "%s %s: negative %s %g", e.Kind(), e.ElementID(), what, v)
		}
	}
	return nil
}

// NewLine builds a validated line from a to b.
func NewLine(attrs Attrs, a, b geom.Point) (Line, error) {
	l := Line{Attrs: attrs, X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
	return l, Validate(l)
}

// NewPolyline builds a validated polyline. The points are copied.
func NewPolyline(attrs Attrs, points []geom.Point, closed bool) (Polyline, error) {
	p := Polyline{Attrs: attrs, Points: append([]geom.Point(nil), points...), Closed: closed}
	return p, Validate(p)
}

// NewRectangle builds a validated rectangle. A negative width or height is
// folded into the origin, so the stored box always has non-negative size.
func NewRectangle(attrs Attrs, x, y, width, height float64) (Rectangle, error) {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	r := Rectangle{Attrs: attrs, X: x, Y: y, Width: width, Height: height}
	return r, Validate(r)
}

// NewRectangleFromCorners builds the rectangle spanned by two opposite
// corners given in any order.
func NewRectangleFromCorners(attrs Attrs, a, b geom.Point) (Rectangle, error) {
	return NewRectangle(attrs, a.X, a.Y, b.X-a.X, b.Y-a.Y)
}

// NewCircle builds a validated circle.
func NewCircle(attrs Attrs, center geom.Point, radius float64) (Circle, error) {
	c := Circle{Attrs: attrs, CX: center.X, CY: center.Y, Radius: radius}
	return c, Validate(c)
}

// NewArc builds a validated arc. Angles are kept as given.
func NewArc(attrs Attrs, center geom.Point, radius, startAngle, endAngle float64) (Arc, error) {
	a := Arc{Attrs: attrs, CX: center.X, CY: center.Y, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	return a, Validate(a)
}

// NewText builds a validated text label.
func NewText(attrs Attrs, at geom.Point, text string, height, rotation float64) (Text, error) {
	t := Text{Attrs: attrs, X: at.X, Y: at.Y, Text: text, Height: height, Rotation: rotation}
	return t, Validate(t)
}
