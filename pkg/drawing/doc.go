// Package drawing defines the element model shared by snapping, editing,
// storage and rendering.
//
// # Elements
//
// [Element] is a closed sum type over six value variants: [Line],
// [Polyline], [Rectangle], [Circle], [Arc] and [Text]. The interface carries
// an unexported method, so no other package can add variants and a type
// switch over the six is exhaustive:
//
//	switch e := el.(type) {
//	case drawing.Line:
//	case drawing.Polyline:
//	case drawing.Rectangle:
//	case drawing.Circle:
//	case drawing.Arc:
//	case drawing.Text:
//	}
//
// Variants are plain values. Operations that change geometry return new
// values and never modify their input; polyline point slices are copied
// before they are changed.
//
// # Validation
//
// The New* constructors and [Validate] fail fast with an INVALID_GEOMETRY
// error for NaN or infinite coordinates and negative radii or sizes, so bad
// numbers never reach the geometry kernel.
//
// # Projects and Layers
//
// A [Project] owns an insertion-ordered element list: order is z-order, the
// last element is topmost. Elements reference a [Layer] by id. Hidden layers
// are skipped by snapping, selection and editing. Locked layers are skipped
// by editing only.
package drawing
