// Package geom is the 2D geometry kernel behind snapping and editing.
//
// Every function is pure and deterministic: no package state, no allocation
// beyond the returned slices. Coordinates are drawing units and angles are
// degrees at the API boundary; radians only appear internally.
//
// # Degenerate Input
//
// "No result" is ordinary control flow. Parallel lines, separated circles and
// points inside a circle are reported with a false flag or an empty slice,
// never with an error. Comparisons against zero go through [Epsilon] so
// floating-point noise does not misclassify nearly-parallel or nearly-coincident
// input.
//
// # Segments and Lines
//
// Most functions come in two flavors. The plain form treats (a, b) as the
// segment between the two points; the Unbounded form treats it as the infinite
// line through them. Tangent and perpendicular snapping and the Extend
// operator need the unbounded forms because they project past segment ends.
//
//	hit, ok := geom.LineLineIntersection(a1, a2, b1, b2)
//	if ok {
//	    fmt.Println(hit.Point, hit.T, hit.U)
//	}
package geom

// Epsilon guards divisions by near-zero denominators such as zero-length
// lines and coincident circle centers.
const Epsilon = 1e-10
