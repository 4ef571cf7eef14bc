// Package pkg provides the core libraries for HydroDraw, a 2D CAD core for
// piping and site plans.
//
// # Overview
//
// HydroDraw keeps drawings as projects of typed elements on layers and offers
// the operations a drafting client needs while the user draws: snapping the
// cursor to meaningful points and editing existing geometry. The pkg
// directory is organized into three main areas:
//
//  1. Geometry and editing ([geom], [drawing], [snap], [edit])
//  2. Persistence and exchange ([store], [io], [render])
//  3. Services ([workspace], [api], [config], [observability])
//
// # Architecture
//
// The typical data flow for an edit:
//
//	Client request (CLI or HTTP)
//	         ↓
//	    [workspace] package (load project, check layers, serialize per project)
//	         ↓
//	    [snap] / [edit] packages (resolve cursor, split, trim, extend)
//	         ↓
//	    [store] package (file, memory, SQLite, Redis or MongoDB)
//
// # Quick Start
//
// Snap a cursor and split the line it lands on:
//
//	import (
//	    "github.com/matzehuels/hydrodraw/pkg/drawing"
//	    "github.com/matzehuels/hydrodraw/pkg/edit"
//	    "github.com/matzehuels/hydrodraw/pkg/geom"
//	    "github.com/matzehuels/hydrodraw/pkg/snap"
//	)
//
//	p := drawing.NewProject("pump house", "")
//	_ = p.Add(drawing.Line{Attrs: drawing.Attrs{ID: "w1", LayerID: drawing.DefaultLayerID}, X2: 100})
//
//	// 1. Resolve the cursor
//	res, ok := snap.New().Resolve(snap.Query{Point: geom.Pt(49, 3), Elements: p.Elements, Layers: p.Layers})
//
//	// 2. Split at the snapped point
//	if ok {
//	    pieces, _ := edit.New().Split(p.Elements[0], res.Point)
//	    p.Replace("w1", pieces...)
//	}
//
// # Main Packages
//
// [geom] - Points, segments, circles, arcs and rectangles with intersection,
// projection and ortho/polar constraints. Everything is value-typed.
//
// [drawing] - The element model (line, polyline, rectangle, circle, arc,
// text), layers, projects, bounds and hit testing.
//
// [snap] - Object snap resolution with a fixed priority cascade and a grid
// fallback.
//
// [edit] - Split, split at all intersections, trim and extend.
//
// [store] - Project persistence behind one interface.
//
// [workspace] - The service used by the CLI and the HTTP API. It enforces
// layer visibility and locks and returns the elements each edit changed.
//
// [api] - The HTTP surface of the desktop client.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/snap/...     # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/geom
// [drawing]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/drawing
// [snap]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/snap
// [edit]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/edit
// [store]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/store
// [io]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/render
// [workspace]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/workspace
// [api]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/api
// [config]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/hydrodraw/pkg/observability
package pkg
