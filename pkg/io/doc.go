// Package io reads and writes project documents as JSON.
//
// # Format
//
// A document is a project object with snake_case project fields and an
// "elements" array of tagged elements:
//
//	{
//	  "id": "8f1c...",
//	  "name": "Pump room",
//	  "canvas_width": 2000,
//	  "canvas_height": 1500,
//	  "grid_size": 20,
//	  "layers": [{"id": "default", "name": "Layer 1", "visible": true, "locked": false}],
//	  "elements": [
//	    {"type": "line", "id": "a", "x1": 0, "y1": 0, "x2": 10, "y2": 0, "layerId": "default"},
//	    {"type": "circle", "id": "b", "cx": 5, "cy": 5, "radius": 2}
//	  ]
//	}
//
// A bare element array is accepted too and is wrapped in a new project.
//
// Missing project settings fall back to the defaults of [drawing.NewProject],
// so hand-written files only need their elements. Every element is validated
// on read; element ids must be unique.
//
// # Import
//
// Use [ImportJSON] to read a project from a file path, or [ReadJSON] to read
// from any io.Reader. [ExportJSON] and [WriteJSON] are the inverse and write
// indented JSON.
package io
