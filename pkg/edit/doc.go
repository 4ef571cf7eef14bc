// Package edit implements the modify operators of the drafting core: Split,
// Split at all intersections, Trim and Extend.
//
// Operators are pure. They read the elements they are given and return
// replacement elements; the caller splices the result into its project,
// usually with [drawing.Project.Replace]. Every new fragment gets a fresh id
// from the [Operator]'s id generator and inherits the layer, stroke and fill
// of its source. Extend moves an endpoint of an existing line and keeps its
// id.
//
// Split works to an absolute tolerance of [SplitTolerance] drawing units,
// independent of zoom.
package edit
