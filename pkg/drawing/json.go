package drawing

import (
	"encoding/json"

	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// Each variant marshals through an alias type so the "type" discriminator is
// written next to its own fields.

// MarshalJSON implements json.Marshaler.
func (l Line) MarshalJSON() ([]byte, error) {
	type alias Line
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindLine, alias(l)})
}

// MarshalJSON implements json.Marshaler.
func (p Polyline) MarshalJSON() ([]byte, error) {
	type alias Polyline
	if p.Points == nil {
		p.Points = []geom.Point{}
	}
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindPolyline, alias(p)})
}

// MarshalJSON implements json.Marshaler.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	type alias Rectangle
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindRectangle, alias(r)})
}

// MarshalJSON implements json.Marshaler.
func (c Circle) MarshalJSON() ([]byte, error) {
	type alias Circle
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindCircle, alias(c)})
}

// MarshalJSON implements json.Marshaler.
func (a Arc) MarshalJSON() ([]byte, error) {
	type alias Arc
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindArc, alias(a)})
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindText, alias(t)})
}

// DecodeElement decodes one JSON element, dispatching on its "type" field.
// The decoded element is validated.
func DecodeElement(data []byte) (Element, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode element")
	}

	var (
		e   Element
		err error
	)
	switch head.Type {
	case KindLine:
		var v Line
		err = json.Unmarshal(data, &v)
		e = v
	case KindPolyline:
		var v Polyline
		err = json.Unmarshal(data, &v)
		e = v
	case KindRectangle:
		var v Rectangle
		err = json.Unmarshal(data, &v)
		e = v
	case KindCircle:
		var v Circle
		err = json.Unmarshal(data, &v)
		e = v
	case KindArc:
		var v Arc
		err = json.Unmarshal(data, &v)
		e = v
	case KindText:
		var v Text
		err = json.Unmarshal(data, &v)
		e = v
	case "":
		return nil, errors.New(errors.ErrCodeInvalidFormat, "element without type")
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown element type %q", head.Type)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", head.Type)
	}
	if err := Validate(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Elements is an ordered element list that knows how to decode itself.
type Elements []Element

// UnmarshalJSON decodes a JSON array of tagged elements.
func (es *Elements) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode elements")
	}
	out := make(Elements, 0, len(raw))
	for i, r := range raw {
		e, err := DecodeElement(r)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "element %d", i)
		}
		out = append(out, e)
	}
	*es = out
	return nil
}

// MarshalJSON writes an empty list as [] rather than null.
func (es Elements) MarshalJSON() ([]byte, error) {
	if es == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Element(es))
}
