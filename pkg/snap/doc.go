// Package snap resolves a raw cursor position to the most significant nearby
// point of the drawing.
//
// A [Resolver] evaluates snap kinds in a fixed priority order rather than
// picking the nearest candidate overall:
//
//	endpoint → midpoint → center → intersection → perpendicular → tangent → grid
//
// The catch threshold starts at the zoom-adjusted tolerance. A candidate wins
// only when it is strictly closer than the current threshold, and the winner's
// distance becomes the new threshold. A later kind can therefore displace an
// earlier winner only by being closer. Equal distances keep the first
// candidate found in scan order.
//
// Perpendicular and tangent snaps need a reference point, typically the first
// endpoint of the segment being drawn. Grid snapping is the fallback: it is
// only considered when no object snap was found at all.
//
// Elements on hidden layers never produce candidates. The resolver keeps no
// state besides its configuration, so one Resolver may serve concurrent
// callers.
//
// Intersection candidates are found by a pairwise scan, which makes each call
// quadratic in the number of visible elements.
package snap
